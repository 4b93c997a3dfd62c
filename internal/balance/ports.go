package balance

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Reader . Reader
type Reader interface {
	ReadBalance(ctx context.Context, token, owner common.Address) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name TokenBook . TokenBook
type TokenBook interface {
	Resolve(name string, chainID uint64) (common.Address, error)
	TrackedTokens(chainID uint64) []string
}

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	BalanceReadFailed(token string)
}
