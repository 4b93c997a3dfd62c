package payload

import (
	"errors"
	"math/big"
	"regexp"

	"chainflow/internal/core"
	"chainflow/internal/flow"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	amountRegex  = regexp.MustCompile(`^[0-9]+$`)
	flowIDRegex  = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

type StartFlowRequest struct {
	Kind string `json:"kind"`
	// Amount in base units of the token, as a decimal string.
	Amount    string `json:"amount"`
	Delegatee string `json:"delegatee,omitempty"`
}

func (s StartFlowRequest) Validate() error {
	kinds := make([]any, 0, len(flow.Kinds))
	for _, k := range flow.Kinds {
		kinds = append(kinds, string(k))
	}

	return validation.ValidateStruct(&s,
		validation.Field(&s.Kind, validation.Required, validation.In(kinds...)),
		validation.Field(&s.Amount, validation.Required, validation.Match(amountRegex), validation.By(positive)),
		validation.Field(&s.Delegatee,
			validation.When(s.Kind == string(flow.KindMintDelegate), validation.Required),
			validation.Match(addressRegex),
		),
	)
}

// ToStartRequest expects a request that passed Validate.
func (s StartFlowRequest) ToStartRequest() core.StartRequest {
	amount, _ := new(big.Int).SetString(s.Amount, 10)

	req := core.StartRequest{
		Kind:   s.Kind,
		Amount: amount,
	}
	if s.Delegatee != "" {
		req.Delegatee = common.HexToAddress(s.Delegatee)
	}
	return req
}

type FlowIDRequest struct {
	ID string
}

func (f FlowIDRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ID, validation.Required, validation.Match(flowIDRegex)),
	)
}

type BalancesRequest struct {
	Owner string
}

func (b BalancesRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Owner, validation.Required, validation.Match(addressRegex)),
	)
}

func (b BalancesRequest) OwnerAddress() common.Address {
	return common.HexToAddress(b.Owner)
}

func positive(value any) error {
	s, _ := value.(string)
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() <= 0 {
		return errors.New("must be a positive integer")
	}
	return nil
}
