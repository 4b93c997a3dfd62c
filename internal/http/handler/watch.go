package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chainflow/internal/http/handler/middleware"
	"chainflow/internal/http/payload"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// originChecker accepts requests without an Origin header, same-origin
// requests and the listed origins.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[strings.ToLower(strings.TrimRight(o, "/"))] = struct{}{}
	}
	_, anyOrigin := set["*"]

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || anyOrigin {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		if strings.EqualFold(u.Host, r.Host) {
			return true
		}
		_, ok := set[strings.ToLower(origin)]
		return ok
	}
}

// HandleWatchFlow upgrades to a websocket and pushes every state change of a
// live flow as a JSON FlowView. Browsers cannot set headers on the upgrade
// request, so the token may also come as the "token" query parameter.
func (h *FlowHandler) HandleWatchFlow(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if r.Header.Get(authTokenHeader) == "" {
		if token := r.URL.Query().Get("token"); token != "" {
			r.Header.Set(authTokenHeader, token)
		}
	}
	token, ok := h.authToken(w, r, WatchFlow, requestId)
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

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	views, err := h.flows.WatchFlow(ctx, token, req.ID)
	if err != nil {
		h.fail(w, "Could not watch flow", err, WatchFlow, requestId)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.logs.Errorw("websocket upgrade failed", "error", err, "request_id", requestId)
		return
	}
	defer conn.Close()

	// the client sends nothing; reading only notices when it goes away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case view, ok := <-views:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(view); err != nil {
				h.logs.Warnw("websocket write failed", "error", err, "flow_id", req.ID, "request_id", requestId)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
