package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"chainflow/internal/http/handler/middleware"
	"chainflow/internal/http/handler/middleware/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w        *httptest.ResponseRecorder
		seenID   string
		teapot   http.Handler
		observer *fake.RequestObserver
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		seenID = ""
		observer = new(fake.RequestObserver)
		teapot = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = middleware.RequestIDFrom(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("assigns an id when the caller has none", func() {
			middleware.NewRequestIDMiddleware().RequestID(teapot).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

			Expect(seenID).NotTo(BeEmpty())
			Expect(w.Header().Get("X-Request-Id")).To(Equal(seenID))
		})

		It("keeps the caller's id", func() {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("X-Request-Id", "abc")
			middleware.NewRequestIDMiddleware().RequestID(teapot).ServeHTTP(w, req)

			Expect(seenID).To(Equal("abc"))
		})
	})

	Describe("Logging", func() {
		It("passes the response through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(teapot).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})

		It("exposes hijacking of the wrapped writer", func() {
			var hijackErr error
			hijacker := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h, ok := w.(http.Hijacker)
				Expect(ok).To(BeTrue())
				_, _, hijackErr = h.Hijack()
			})

			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(hijacker).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

			// the recorder underneath cannot be hijacked
			Expect(hijackErr).To(MatchError(ContainSubstring("does not support hijacking")))
		})
	})

	Describe("Metrics", func() {
		It("reports the matched route and status", func() {
			mux := http.NewServeMux()
			mux.Handle("GET /chainflow/flows/{id}", teapot)

			middleware.NewMetricsMiddleware(observer).Metrics(mux).ServeHTTP(w, httptest.NewRequest("GET", "/chainflow/flows/1", nil))

			Expect(observer.ObserveRequestCallCount()).To(Equal(1))
			route, status, _ := observer.ObserveRequestArgsForCall(0)
			Expect(route).To(Equal("GET /chainflow/flows/{id}"))
			Expect(status).To(Equal(http.StatusTeapot))
		})

		It("reports unmatched requests", func() {
			middleware.NewMetricsMiddleware(observer).Metrics(http.NewServeMux()).ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))

			route, status, _ := observer.ObserveRequestArgsForCall(0)
			Expect(route).To(Equal("unmatched"))
			Expect(status).To(Equal(http.StatusNotFound))
		})
	})
})
