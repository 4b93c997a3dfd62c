package payload_test

import (
	"math/big"
	"net/http/httptest"
	"strings"

	"chainflow/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload", func() {
	Describe("Decoder", func() {
		var decoder payload.Decoder

		It("decodes and validates the body", func() {
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"pw"}`))
			var auth payload.AuthRequest
			Expect(decoder.DecodeJSONPayload(req, &auth)).To(Succeed())
			Expect(auth.ToMessage().Username).To(Equal("alice"))
		})

		It("rejects unknown fields", func() {
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"pw","admin":true}`))
			var auth payload.AuthRequest
			Expect(decoder.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("decoding json payload")))
		})

		It("rejects invalid payloads", func() {
			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice"}`))
			var auth payload.AuthRequest
			Expect(decoder.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("password")))
		})
	})

	DescribeTable("StartFlowRequest.Validate",
		func(req payload.StartFlowRequest, valid bool) {
			err := req.Validate()
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("vault deposit", payload.StartFlowRequest{Kind: "vault-deposit", Amount: "1000"}, true),
		Entry("delegation with delegatee", payload.StartFlowRequest{
			Kind: "mint-delegate", Amount: "1", Delegatee: "0x00000000000000000000000000000000000000bb",
		}, true),
		Entry("delegation without delegatee", payload.StartFlowRequest{Kind: "mint-delegate", Amount: "1"}, false),
		Entry("malformed delegatee", payload.StartFlowRequest{Kind: "loan-repay", Amount: "1", Delegatee: "0x12"}, false),
		Entry("unknown kind", payload.StartFlowRequest{Kind: "bridge", Amount: "1"}, false),
		Entry("zero amount", payload.StartFlowRequest{Kind: "vault-deposit", Amount: "0"}, false),
		Entry("decimal amount", payload.StartFlowRequest{Kind: "vault-deposit", Amount: "1.5"}, false),
		Entry("missing amount", payload.StartFlowRequest{Kind: "vault-deposit"}, false),
	)

	It("converts a start request", func() {
		req := payload.StartFlowRequest{
			Kind:      "mint-delegate",
			Amount:    "123456789012345678901234567890",
			Delegatee: "0x00000000000000000000000000000000000000bb",
		}.ToStartRequest()

		expected, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
		Expect(req.Amount).To(Equal(expected))
		Expect(req.Delegatee).To(Equal(common.HexToAddress("0xbb")))
	})

	DescribeTable("FlowIDRequest.Validate",
		func(id string, valid bool) {
			err := payload.FlowIDRequest{ID: id}.Validate()
			Expect(err == nil).To(Equal(valid))
		},
		Entry("uuid", "5f0c6f0e-8a1b-4c8e-9d3a-2b1f4e6a7c90", true),
		Entry("empty", "", false),
		Entry("garbage", "../etc", false),
	)

	DescribeTable("BalancesRequest.Validate",
		func(owner string, valid bool) {
			err := payload.BalancesRequest{Owner: owner}.Validate()
			Expect(err == nil).To(Equal(valid))
		},
		Entry("address", "0x00000000000000000000000000000000000000AA", true),
		Entry("short", "0xaa", false),
		Entry("empty", "", false),
	)
})
