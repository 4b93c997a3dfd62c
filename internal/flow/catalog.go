package flow

import (
	"errors"
	"fmt"
	"math/big"

	"chainflow/internal/contracts"

	"github.com/ethereum/go-ethereum/common"
)

type Kind string

const (
	KindMintDelegate Kind = "mint-delegate"
	KindMintUSDCCUSD Kind = "mint-usdc-cusd"
	KindVaultDeposit Kind = "vault-deposit"
	KindLoanRepay    Kind = "loan-repay"
)

var ErrUnknownKind = errors.New("unknown flow kind")
var ErrInvalidParams = errors.New("invalid flow parameters")

// Kinds lists every flow the catalogue can build.
var Kinds = []Kind{KindMintDelegate, KindMintUSDCCUSD, KindVaultDeposit, KindLoanRepay}

type Params struct {
	Owner  common.Address
	Amount *big.Int
	// Operator receives the delegation in KindMintDelegate.
	Operator common.Address
}

// NewDefinition builds the two writes of kind for p.
func NewDefinition(kind Kind, p Params) (Definition, error) {
	if p.Amount == nil || p.Amount.Sign() <= 0 {
		return Definition{}, fmt.Errorf("%w: amount must be positive", ErrInvalidParams)
	}
	if p.Owner == (common.Address{}) {
		return Definition{}, fmt.Errorf("%w: owner is required", ErrInvalidParams)
	}

	switch kind {
	case KindMintDelegate:
		if p.Operator == (common.Address{}) {
			return Definition{}, fmt.Errorf("%w: operator is required", ErrInvalidParams)
		}
		return Definition{
			Kind:   kind,
			First:  Call{Contract: contracts.CUSD, Method: "mint", Args: []any{p.Owner, p.Amount}},
			Second: Call{Contract: contracts.Delegation, Method: "delegate", Args: []any{p.Operator, p.Amount}},
		}, nil
	case KindMintUSDCCUSD:
		return Definition{
			Kind:  kind,
			First: Call{Contract: contracts.USDC, Method: "mint", Args: []any{p.Owner, p.Amount}},
			Second: Call{Contract: contracts.CUSD, Method: "mintWithCollateral", Args: []any{
				ContractRef(contracts.USDC), p.Amount, p.Owner,
			}},
		}, nil
	case KindVaultDeposit:
		return Definition{
			Kind:   kind,
			First:  Call{Contract: contracts.CUSD, Method: "approve", Args: []any{ContractRef(contracts.Vault), p.Amount}},
			Second: Call{Contract: contracts.Vault, Method: "deposit", Args: []any{p.Amount, p.Owner}},
		}, nil
	case KindLoanRepay:
		return Definition{
			Kind:   kind,
			First:  Call{Contract: contracts.CUSD, Method: "approve", Args: []any{ContractRef(contracts.Lender), p.Amount}},
			Second: Call{Contract: contracts.Lender, Method: "repay", Args: []any{p.Amount, p.Owner}},
		}, nil
	}

	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
