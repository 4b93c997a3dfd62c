package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"chainflow/internal/core"
	"chainflow/internal/flow"
	"chainflow/internal/http/handler"
	"chainflow/internal/http/handler/fake"
	"chainflow/internal/ledger"
	tokenIssuer "chainflow/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const flowID = "3f1c2b7e-9a41-4d3c-8f0a-2c5e6b7d8e9f"

var _ = Describe("FlowHandler", func() {
	var (
		fh            *handler.FlowHandler
		mux           *http.ServeMux
		fakeService   *fake.FlowService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		testToken     string
		fakeErr       error
	)

	BeforeEach(func() {
		req = nil
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.FlowService)
		fakeService.AuthenticateReturns(testToken, nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, object any) error {
			return json.NewDecoder(r.Body).Decode(object)
		}

		w = httptest.NewRecorder()
		fh = handler.NewFlowHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, nil)
		mux = http.NewServeMux()
		fh.Register(mux)
	})

	JustBeforeEach(func() {
		if req != nil {
			mux.ServeHTTP(w, req)
		}
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/chainflow/authenticate", strings.NewReader(`{"username":"test","password":"pass"}`))
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal(testToken))

				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "test", Password: "pass"}))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleStartFlow", func() {
		var body string

		BeforeEach(func() {
			body = `{"kind":"vault-deposit","amount":"1000"}`
			fakeService.StartFlowReturns(core.FlowView{ID: flowID, Kind: "vault-deposit", Live: true}, nil)
		})

		When("the request is authenticated", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/chainflow/flows", strings.NewReader(body))
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should start the flow and return 202", func() {
				Expect(w.Code).To(Equal(http.StatusAccepted))
				Expect(fakeService.StartFlowCallCount()).To(Equal(1))

				_, token, start := fakeService.StartFlowArgsForCall(0)
				Expect(token).To(Equal(testToken))
				Expect(start.Kind).To(Equal("vault-deposit"))
				Expect(start.Amount.String()).To(Equal("1000"))

				var response struct {
					Data core.FlowView `json:"data"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Data.ID).To(Equal(flowID))
			})
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/chainflow/flows", strings.NewReader(body))
			})

			It("should return 401 without decoding", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(0))
				Expect(fakeService.StartFlowCallCount()).To(Equal(0))
			})
		})
	})

	DescribeTable("service errors map to status codes",
		func(serviceErr error, code int) {
			fakeService.StartFlowReturns(core.FlowView{}, serviceErr)
			r := httptest.NewRequest("POST", "/chainflow/flows", strings.NewReader(`{"kind":"vault-deposit","amount":"1"}`))
			r.Header.Set("AUTH_TOKEN", testToken)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, r)

			Expect(rec.Code).To(Equal(code))
		},
		Entry("expired token", fmt.Errorf("validate: %w", tokenIssuer.ErrTokenExpired), http.StatusUnauthorized),
		Entry("unknown kind", flow.ErrUnknownKind, http.StatusBadRequest),
		Entry("invalid params", flow.ErrInvalidParams, http.StatusBadRequest),
		Entry("flow busy", flow.ErrFlowBusy, http.StatusConflict),
		Entry("not connected", ledger.ErrNotConnected, http.StatusServiceUnavailable),
		Entry("anything else", errors.New("boom"), http.StatusInternalServerError),
	)

	Describe("flow by id routes", func() {
		When("getting a flow", func() {
			BeforeEach(func() {
				fakeService.GetFlowReturns(core.FlowView{ID: flowID, Step: 2}, nil)
				req = httptest.NewRequest("GET", "/chainflow/flows/"+flowID, nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should pass the path id to the service", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, token, id := fakeService.GetFlowArgsForCall(0)
				Expect(token).To(Equal(testToken))
				Expect(id).To(Equal(flowID))
			})
		})

		When("the flow does not exist", func() {
			BeforeEach(func() {
				fakeService.GetFlowReturns(core.FlowView{}, core.ErrFlowNotFound)
				req = httptest.NewRequest("GET", "/chainflow/flows/"+flowID, nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not a uuid", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/chainflow/flows/nope", nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetFlowCallCount()).To(Equal(0))
			})
		})

		When("retrying", func() {
			BeforeEach(func() {
				fakeService.RetryFlowReturns(core.FlowView{ID: flowID, Step: 2, Step2Pending: true}, nil)
				req = httptest.NewRequest("POST", "/chainflow/flows/"+flowID+"/retry", nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return 202", func() {
				Expect(w.Code).To(Equal(http.StatusAccepted))
				Expect(fakeService.RetryFlowCallCount()).To(Equal(1))
			})
		})

		When("retrying a flow that only exists in history", func() {
			BeforeEach(func() {
				fakeService.RetryFlowReturns(core.FlowView{}, core.ErrFlowNotLive)
				req = httptest.NewRequest("POST", "/chainflow/flows/"+flowID+"/retry", nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("resetting", func() {
			BeforeEach(func() {
				fakeService.ResetFlowReturns(core.FlowView{ID: flowID}, nil)
				req = httptest.NewRequest("POST", "/chainflow/flows/"+flowID+"/reset", nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.ResetFlowCallCount()).To(Equal(1))
			})
		})
	})

	Describe("HandleGetHistory", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/chainflow/history", nil)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		When("the service returns flows", func() {
			BeforeEach(func() {
				fakeService.GetHistoryReturns([]core.FlowView{{ID: "a"}, {ID: "b"}}, nil)
			})

			It("should list them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string][]core.FlowView
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["flows"]).To(HaveLen(2))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.GetHistoryReturns(nil, fakeErr)
			})

			It("should hide the error detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetBalances", func() {
		owner := "0x00000000000000000000000000000000000000aa"

		When("the owner is valid", func() {
			BeforeEach(func() {
				fakeService.GetBalancesReturns([]core.BalanceView{{Token: "usdc", Amount: "5", Known: true}}, nil)
				req = httptest.NewRequest("GET", "/chainflow/balances/"+owner, nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return the balances", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, addr := fakeService.GetBalancesArgsForCall(0)
				Expect(addr).To(Equal(common.HexToAddress(owner)))

				var response map[string][]core.BalanceView
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["balances"]).To(HaveLen(1))
			})
		})

		When("the owner is not an address", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/chainflow/balances/0x12", nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetBalancesCallCount()).To(Equal(0))
			})
		})
	})
})
