package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"chainflow/internal/core"
	"chainflow/internal/http/handler/middleware"
	"chainflow/internal/http/payload"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var (
	Authenticate = "POST /chainflow/authenticate"
	StartFlow    = "POST /chainflow/flows"
	GetFlow      = "GET /chainflow/flows/{id}"
	RetryFlow    = "POST /chainflow/flows/{id}/retry"
	ResetFlow    = "POST /chainflow/flows/{id}/reset"
	WatchFlow    = "GET /chainflow/flows/{id}/events"
	GetHistory   = "GET /chainflow/history"
	GetBalances  = "GET /chainflow/balances/{owner}"
	Metrics      = "GET /metrics"
)

const authTokenHeader = "AUTH_TOKEN"

type FlowHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	flows            FlowService
	upgrader         websocket.Upgrader
}

// NewFlowHandler builds the handler. allowedOrigins lists the browser origins
// other than the service's own that may open the event stream.
func NewFlowHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, flowService FlowService, allowedOrigins []string) *FlowHandler {
	return &FlowHandler{
		logs:             logger,
		requestValidator: requestValidator,
		flows:            flowService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Register adds every flow route to mux.
func (h *FlowHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(StartFlow, h.HandleStartFlow)
	mux.HandleFunc(GetFlow, h.HandleGetFlow)
	mux.HandleFunc(RetryFlow, h.HandleRetryFlow)
	mux.HandleFunc(ResetFlow, h.HandleResetFlow)
	mux.HandleFunc(WatchFlow, h.HandleWatchFlow)
	mux.HandleFunc(GetHistory, h.HandleGetHistory)
	mux.HandleFunc(GetBalances, h.HandleGetBalances)
}

func (h *FlowHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.flows.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Authenticate, requestId)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, requestId)
}

func (h *FlowHandler) HandleStartFlow(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	token, ok := h.authToken(w, r, StartFlow, requestId)
	if !ok {
		return
	}

	var req payload.StartFlowRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not start flow",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", StartFlow,
			"request_id", requestId)
		return
	}

	h.logs.Infow("start flow request received",
		"kind", req.Kind,
		"amount", req.Amount,
		"handler", StartFlow,
		"request_id", requestId)

	view, err := h.flows.StartFlow(r.Context(), token, req.ToStartRequest())
	if err != nil {
		h.fail(w, "Could not start flow", err, StartFlow, requestId)
		return
	}

	h.respond(w, Response{Message: "Flow started", Data: view}, http.StatusAccepted, requestId)
}

func (h *FlowHandler) HandleGetFlow(w http.ResponseWriter, r *http.Request) {
	h.handleFlowByID(w, r, GetFlow, "Could not get flow", http.StatusOK, h.flows.GetFlow)
}

func (h *FlowHandler) HandleRetryFlow(w http.ResponseWriter, r *http.Request) {
	h.handleFlowByID(w, r, RetryFlow, "Could not retry flow", http.StatusAccepted, h.flows.RetryFlow)
}

func (h *FlowHandler) HandleResetFlow(w http.ResponseWriter, r *http.Request) {
	h.handleFlowByID(w, r, ResetFlow, "Could not reset flow", http.StatusOK, h.flows.ResetFlow)
}

func (h *FlowHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	token, ok := h.authToken(w, r, GetHistory, requestId)
	if !ok {
		return
	}

	flows, err := h.flows.GetHistory(r.Context(), token)
	if err != nil {
		h.fail(w, "Could not get history", err, GetHistory, requestId)
		return
	}

	h.respond(w, map[string][]core.FlowView{"flows": flows}, http.StatusOK, requestId)
}

func (h *FlowHandler) HandleGetBalances(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	token, ok := h.authToken(w, r, GetBalances, requestId)
	if !ok {
		return
	}

	req := payload.BalancesRequest{Owner: r.PathValue("owner")}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate owner: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		return
	}

	balances, err := h.flows.GetBalances(r.Context(), token, req.OwnerAddress())
	if err != nil {
		h.fail(w, "Could not get balances", err, GetBalances, requestId)
		return
	}

	h.respond(w, map[string][]core.BalanceView{"balances": balances}, http.StatusOK, requestId)
}

type flowByID func(ctx context.Context, token, id string) (core.FlowView, error)

func (h *FlowHandler) handleFlowByID(w http.ResponseWriter, r *http.Request, route, failMessage string, okCode int, call flowByID) {
	requestId := middleware.RequestIDFrom(r.Context())

	token, ok := h.authToken(w, r, route, requestId)
	if !ok {
		return
	}

	req := payload.FlowIDRequest{ID: r.PathValue("id")}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate flow id: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		return
	}

	view, err := call(r.Context(), token, req.ID)
	if err != nil {
		h.fail(w, failMessage, err, route, requestId)
		return
	}

	h.respond(w, Response{Data: view}, okCode, requestId)
}

func (h *FlowHandler) authToken(w http.ResponseWriter, r *http.Request, route, requestId string) (string, bool) {
	token := r.Header.Get(authTokenHeader)
	if token == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return "", false
	}
	return token, true
}

func (h *FlowHandler) fail(w http.ResponseWriter, message string, err error, route, requestId string) {
	code, detail := statusFor(err)
	h.respond(w, Response{Message: message, Error: detail}, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

func (h *FlowHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
