package flow

import (
	"context"

	"chainflow/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	Connected(ctx context.Context) (uint64, error)
	SimulateThenSubmit(ctx context.Context, call ledger.Call) (common.Hash, error)
	AwaitConfirmation(ctx context.Context, hash common.Hash) error
}

//counterfeiter:generate -o fake -fake-name Resolver . Resolver
type Resolver interface {
	Resolve(name string, chainID uint64) (common.Address, error)
}

//counterfeiter:generate -o fake -fake-name BalanceRefresher . BalanceRefresher
type BalanceRefresher interface {
	Refresh(ctx context.Context, owner common.Address)
}

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	StepOutcome(kind string, step int, outcome string)
}
