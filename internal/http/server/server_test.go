package server_test

import (
	"net/http"

	"chainflow/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("stops with ErrServerClosed after shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NewServeMux(), "0")
		errChan := srv.Run()

		Consistently(errChan, "50ms").ShouldNot(Receive())
		Expect(srv.Shutdown()).To(Succeed())

		var err error
		Eventually(errChan).Should(Receive(&err))
		Expect(err).To(MatchError(http.ErrServerClosed))
	})
})
