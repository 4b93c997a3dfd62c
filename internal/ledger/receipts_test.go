package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"chainflow/internal/ledger"
	"chainflow/internal/ledger/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("FetchReceipts", func() {
	var (
		l          *ledger.Ledger
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
		signedTx1  *types.Transaction
		signedTx2  *types.Transaction
		hashes     []common.Hash
		results    []*ledger.Receipt
		err        error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		testErr = errors.New("test error")
		l = ledger.NewLedger(zap.NewNop().Sugar(), fakeClient, nil, ledger.Options{})

		privateKey, keyErr := crypto.GenerateKey()
		Expect(keyErr).NotTo(HaveOccurred())

		chainID := big.NewInt(5)
		signer := types.LatestSignerForChainID(chainID)

		tx1 := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)
		tx2 := types.NewTransaction(1, common.Address{}, big.NewInt(1), 21000, big.NewInt(1), nil)
		signedTx1, _ = types.SignTx(tx1, signer, privateKey)
		signedTx2, _ = types.SignTx(tx2, signer, privateKey)

		hashes = []common.Hash{signedTx1.Hash(), signedTx2.Hash()}

		fakeClient.ChainIDReturns(chainID, nil)
		fakeClient.TransactionReceiptReturns(&types.Receipt{
			Status:      1,
			BlockHash:   common.HexToHash("0xabc"),
			BlockNumber: big.NewInt(100),
			GasUsed:     21000,
		}, nil)
	})

	JustBeforeEach(func() {
		results, err = l.FetchReceipts(ctx, hashes)
	})

	When("all receipts are fetched", func() {
		BeforeEach(func() {
			fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
				if hash == signedTx1.Hash() {
					return signedTx1, false, nil
				}
				return signedTx2, false, nil
			}
		})

		It("returns every receipt", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect([]string{results[0].TransactionHash, results[1].TransactionHash}).To(ConsistOf(
				signedTx1.Hash().Hex(),
				signedTx2.Hash().Hex(),
			))
			Expect(results[0].BlockNumber).To(Equal(uint64(100)))
			Expect(fakeClient.TransactionByHashCallCount()).To(Equal(2))
			Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
		})
	})

	When("some lookups fail", func() {
		BeforeEach(func() {
			fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
				if hash == signedTx1.Hash() {
					return nil, false, testErr
				}
				return signedTx2, false, nil
			}
		})

		It("returns partial results with the error", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(fmt.Sprintf("fetching receipt %q: %s", signedTx1.Hash().Hex(), testErr)))
			Expect(results).To(HaveLen(1))
			Expect(results[0].TransactionHash).To(Equal(signedTx2.Hash().Hex()))
		})
	})

	When("there is nothing to fetch", func() {
		BeforeEach(func() {
			hashes = nil
		})

		It("does not contact the node", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(BeEmpty())
			Expect(fakeClient.ChainIDCallCount()).To(Equal(0))
		})
	})
})
