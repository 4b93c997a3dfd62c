package handler

import (
	"context"
	"net/http"

	"chainflow/internal/core"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name FlowService . FlowService
type FlowService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	StartFlow(ctx context.Context, token string, req core.StartRequest) (core.FlowView, error)
	GetFlow(ctx context.Context, token, id string) (core.FlowView, error)
	RetryFlow(ctx context.Context, token, id string) (core.FlowView, error)
	ResetFlow(ctx context.Context, token, id string) (core.FlowView, error)
	WatchFlow(ctx context.Context, token, id string) (<-chan core.FlowView, error)
	GetHistory(ctx context.Context, token string) ([]core.FlowView, error)
	GetBalances(ctx context.Context, token string, owner common.Address) ([]core.BalanceView, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
