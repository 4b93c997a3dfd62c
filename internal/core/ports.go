package core

import (
	"context"

	"chainflow/internal/balance"
	"chainflow/internal/ledger"
	"chainflow/internal/repository"
	tokenIssuer "chainflow/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	SaveFlow(ctx context.Context, record repository.FlowRecord) error
	GetFlow(ctx context.Context, id string) (repository.FlowRecord, error)
	GetUserFlows(ctx context.Context, userID string) ([]repository.FlowRecord, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	Connected(ctx context.Context) (uint64, error)
	SignerAddress() common.Address
	SimulateThenSubmit(ctx context.Context, call ledger.Call) (common.Hash, error)
	AwaitConfirmation(ctx context.Context, hash common.Hash) error
	FetchReceipts(ctx context.Context, hashes []common.Hash) ([]*ledger.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name Resolver . Resolver
type Resolver interface {
	Resolve(name string, chainID uint64) (common.Address, error)
}

//counterfeiter:generate -o fake -fake-name Balances . Balances
type Balances interface {
	Refresh(ctx context.Context, owner common.Address)
	Balances(owner common.Address) []balance.Balance
}
