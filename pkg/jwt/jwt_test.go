package jwt_test

import (
	"time"

	tokenIssuer "chainflow/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("secret"), "chainflow")
		info = tokenIssuer.TokenInfo{
			UserName: "alice",
			Subject:  "user-1",
			TTL:      time.Hour,
		}
	})

	It("validates the tokens it signs", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("user-1"))
		Expect(claims["username"]).To(Equal("alice"))
		Expect(claims["iss"]).To(Equal("chainflow"))
	})

	When("the token has expired", func() {
		It("reports expiry", func() {
			info.TTL = -time.Minute
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})
	})

	When("the token comes from another issuer", func() {
		It("rejects it", func() {
			other := tokenIssuer.NewJWTService([]byte("secret"), "someone-else")
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token was signed with another secret", func() {
		It("rejects it", func() {
			other := tokenIssuer.NewJWTService([]byte("other"), "chainflow")
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token uses a non HMAC method", func() {
		It("rejects it", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
			signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})

	When("the token is garbage", func() {
		It("rejects it", func() {
			_, err := service.Validate("not.a.token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
