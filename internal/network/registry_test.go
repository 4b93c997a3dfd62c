package network_test

import (
	"os"
	"path/filepath"

	"chainflow/internal/network"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const networksYAML = `
networks:
  - chainId: 11155111
    name: sepolia
    contracts:
      cUSD: "0x1111111111111111111111111111111111111111"
      usdc: "0x2222222222222222222222222222222222222222"
      vault: "0x0000000000000000000000000000000000000000"
    balances: [usdc, cusd]
`

var _ = Describe("Registry", func() {
	var (
		registry *network.Registry
		err      error
	)

	BeforeEach(func() {
		path := filepath.Join(GinkgoT().TempDir(), "networks.yaml")
		Expect(os.WriteFile(path, []byte(networksYAML), 0o600)).To(Succeed())

		registry, err = network.LoadRegistry(path)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Resolve", func() {
		It("returns the deployment address case-insensitively", func() {
			addr, err := registry.Resolve("cusd", 11155111)
			Expect(err).NotTo(HaveOccurred())
			Expect(addr).To(Equal(common.HexToAddress("0x1111111111111111111111111111111111111111")))
		})

		It("treats a zero address as unavailable", func() {
			addr, err := registry.Resolve("vault", 11155111)
			Expect(err).To(MatchError(network.ErrContractUnavailable))
			Expect(addr).To(Equal(network.Sentinel))
		})

		It("treats a missing contract as unavailable", func() {
			_, err := registry.Resolve("lender", 11155111)
			Expect(err).To(MatchError(network.ErrContractUnavailable))
		})

		It("treats an unknown chain as unavailable", func() {
			addr, err := registry.Resolve("cusd", 1)
			Expect(err).To(MatchError(network.ErrContractUnavailable))
			Expect(addr).To(Equal(network.Sentinel))
		})
	})

	It("exposes tracked tokens and names", func() {
		Expect(registry.TrackedTokens(11155111)).To(Equal([]string{"usdc", "cusd"}))
		Expect(registry.NetworkName(11155111)).To(Equal("sepolia"))
		Expect(registry.NetworkName(5)).To(Equal("chain-5"))
	})

	It("rejects malformed addresses", func() {
		_, err := network.NewRegistry([]network.Deployment{{
			ChainID:   1,
			Contracts: map[string]string{"cusd": "not-an-address"},
		}})
		Expect(err).To(MatchError(ContainSubstring("invalid contract address")))
	})
})
