package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"chainflow/internal/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var registry *metrics.Registry

	BeforeEach(func() {
		registry = metrics.NewRegistry()
	})

	scrape := func() string {
		rec := httptest.NewRecorder()
		registry.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
		body, err := io.ReadAll(rec.Body)
		Expect(err).NotTo(HaveOccurred())
		return string(body)
	}

	It("exposes step outcomes", func() {
		registry.StepOutcome("vault-deposit", 2, "failed")
		registry.StepOutcome("vault-deposit", 2, "failed")

		Expect(scrape()).To(ContainSubstring(
			`chainflow_flow_step_outcomes_total{kind="vault-deposit",outcome="failed",step="2"} 2`))
	})

	It("exposes balance read failures", func() {
		registry.BalanceReadFailed("cusd")
		Expect(scrape()).To(ContainSubstring(`chainflow_balance_read_failures_total{token="cusd"} 1`))
	})

	It("exposes request counts and latency", func() {
		registry.ObserveRequest("/chainflow/flows", http.StatusAccepted, 30*time.Millisecond)

		body := scrape()
		Expect(body).To(ContainSubstring(`chainflow_http_requests_total{route="/chainflow/flows",status="202"} 1`))
		Expect(body).To(ContainSubstring(`chainflow_http_request_duration_ms_count{route="/chainflow/flows"} 1`))
	})
})
