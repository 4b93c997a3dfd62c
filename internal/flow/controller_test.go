package flow_test

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"chainflow/internal/flow"
	"chainflow/internal/flow/fake"
	"chainflow/internal/ledger"
	"chainflow/internal/network"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type stateLog struct {
	mu     sync.Mutex
	states []flow.State
}

func (l *stateLog) add(s flow.State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.states = append(l.states, s)
}

func (l *stateLog) steps() []flow.Step {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []flow.Step
	for _, s := range l.states {
		if len(out) == 0 || out[len(out)-1] != s.Step {
			out = append(out, s.Step)
		}
	}
	return out
}

func (l *stateLog) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.states)
}

var _ = Describe("Controller", func() {
	const chainID = uint64(11155111)

	var (
		controller    *flow.Controller
		fakeLedger    *fake.Ledger
		fakeResolver  *fake.Resolver
		fakeRefresher *fake.BalanceRefresher
		fakeRecorder  *fake.Recorder
		ctx           context.Context

		kind      flow.Kind
		owner     common.Address
		addresses map[string]common.Address
		t1, t2    common.Hash
		changes   *stateLog

		completedMu sync.Mutex
		completed   []flow.State

		err error
	)

	completions := func() []flow.State {
		completedMu.Lock()
		defer completedMu.Unlock()
		return append([]flow.State(nil), completed...)
	}

	BeforeEach(func() {
		fakeLedger = new(fake.Ledger)
		fakeResolver = new(fake.Resolver)
		fakeRefresher = new(fake.BalanceRefresher)
		fakeRecorder = new(fake.Recorder)
		ctx = context.Background()
		changes = &stateLog{}
		completed = nil

		kind = flow.KindVaultDeposit
		owner = common.HexToAddress("0x00000000000000000000000000000000000000aa")
		t1 = common.HexToHash("0x01")
		t2 = common.HexToHash("0x02")
		addresses = map[string]common.Address{
			"usdc":       common.HexToAddress("0x1000000000000000000000000000000000000001"),
			"cusd":       common.HexToAddress("0x1000000000000000000000000000000000000002"),
			"delegation": common.HexToAddress("0x1000000000000000000000000000000000000003"),
			"vault":      common.HexToAddress("0x1000000000000000000000000000000000000004"),
			"lender":     common.HexToAddress("0x1000000000000000000000000000000000000005"),
		}

		fakeLedger.ConnectedReturns(chainID, nil)
		fakeLedger.SimulateThenSubmitReturnsOnCall(0, t1, nil)
		fakeLedger.SimulateThenSubmitReturnsOnCall(1, t2, nil)
		fakeLedger.AwaitConfirmationReturns(nil)

		fakeResolver.ResolveStub = func(name string, id uint64) (common.Address, error) {
			addr, ok := addresses[name]
			if !ok || id != chainID {
				return network.Sentinel, fmt.Errorf("%w: %s", network.ErrContractUnavailable, name)
			}
			return addr, nil
		}
	})

	JustBeforeEach(func() {
		def, defErr := flow.NewDefinition(kind, flow.Params{
			Owner:    owner,
			Amount:   big.NewInt(10),
			Operator: common.HexToAddress("0x00000000000000000000000000000000000000bb"),
		})
		Expect(defErr).NotTo(HaveOccurred())

		controller = flow.NewController(zap.NewNop().Sugar(), def, fakeLedger, fakeResolver, fakeRefresher, flow.Options{
			Owner:        owner,
			RefreshDelay: 10 * time.Millisecond,
			OnChange:     changes.add,
			OnComplete: func(s flow.State) {
				completedMu.Lock()
				defer completedMu.Unlock()
				completed = append(completed, s)
			},
			Recorder: fakeRecorder,
		})
	})

	Describe("Start", func() {
		JustBeforeEach(func() {
			err = controller.Start(ctx)
		})

		When("both writes succeed", func() {
			It("ends in the terminal state with both ids and no error", func() {
				Expect(err).NotTo(HaveOccurred())

				state := controller.State()
				Expect(state.Step).To(Equal(flow.StepDone))
				Expect(*state.Step1TxID).To(Equal(t1))
				Expect(*state.Step2TxID).To(Equal(t2))
				Expect(state.Step1Pending).To(BeFalse())
				Expect(state.Step2Pending).To(BeFalse())
				Expect(state.LastError).To(BeEmpty())
			})

			It("walks through every step in order", func() {
				Expect(changes.steps()).To(Equal([]flow.Step{flow.StepFirst, flow.StepSecond, flow.StepDone}))
			})

			It("never populates step 2 fields before step 2", func() {
				changes.mu.Lock()
				defer changes.mu.Unlock()
				for _, s := range changes.states {
					if s.Step < flow.StepSecond {
						Expect(s.Step2TxID).To(BeNil())
						Expect(s.Step2Pending).To(BeFalse())
					}
				}
			})

			It("submits the approve before the deposit, with addresses resolved", func() {
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(2))

				_, first := fakeLedger.SimulateThenSubmitArgsForCall(0)
				Expect(first.To).To(Equal(addresses["cusd"]))
				Expect(first.Method).To(Equal("approve"))
				Expect(first.Args).To(Equal([]any{addresses["vault"], big.NewInt(10)}))

				_, second := fakeLedger.SimulateThenSubmitArgsForCall(1)
				Expect(second.To).To(Equal(addresses["vault"]))
				Expect(second.Method).To(Equal("deposit"))
				Expect(second.Args).To(Equal([]any{big.NewInt(10), owner}))

				Expect(fakeLedger.AwaitConfirmationCallCount()).To(Equal(2))
				_, confirmed := fakeLedger.AwaitConfirmationArgsForCall(0)
				Expect(confirmed).To(Equal(t1))
			})

			It("refreshes balances and notifies the caller after the delay", func() {
				Eventually(fakeRefresher.RefreshCallCount).Should(Equal(1))
				_, refreshed := fakeRefresher.RefreshArgsForCall(0)
				Expect(refreshed).To(Equal(owner))

				Eventually(completions).Should(HaveLen(1))
				Expect(completions()[0].Step).To(Equal(flow.StepDone))
			})

			It("records step outcomes", func() {
				Expect(fakeRecorder.StepOutcomeCallCount()).To(Equal(4))
				k, step, outcome := fakeRecorder.StepOutcomeArgsForCall(3)
				Expect(k).To(Equal(string(flow.KindVaultDeposit)))
				Expect(step).To(Equal(2))
				Expect(outcome).To(Equal("confirmed"))
			})
		})

		When("no signer is connected", func() {
			BeforeEach(func() {
				fakeLedger.ConnectedReturns(0, ledger.ErrNotConnected)
			})

			It("fails immediately without changing state", func() {
				Expect(err).To(MatchError(ledger.ErrNotConnected))
				Expect(controller.State()).To(Equal(flow.State{}))
				Expect(changes.len()).To(Equal(0))
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(0))
			})
		})

		When("the first contract is not deployed on the network", func() {
			BeforeEach(func() {
				delete(addresses, "cusd")
			})

			It("fails with contract unavailable before submitting", func() {
				Expect(err).To(MatchError(network.ErrContractUnavailable))
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(0))

				state := controller.State()
				Expect(state.Step).To(Equal(flow.StepIdle))
				Expect(state.LastError).To(ContainSubstring("contract unavailable"))
				Expect(state.Step1Pending).To(BeFalse())
			})
		})

		When("an argument references a contract missing on the network", func() {
			BeforeEach(func() {
				delete(addresses, "vault")
			})

			It("fails before submitting", func() {
				Expect(err).To(MatchError(network.ErrContractUnavailable))
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(0))
				Expect(controller.State().Step).To(Equal(flow.StepIdle))
			})
		})

		When("the signer rejects the first write", func() {
			BeforeEach(func() {
				fakeLedger.SimulateThenSubmitReturnsOnCall(0, common.Hash{}, ledger.ErrUserRejected)
			})

			It("returns to idle with the error", func() {
				Expect(err).To(MatchError(ledger.ErrUserRejected))
				state := controller.State()
				Expect(state.Step).To(Equal(flow.StepIdle))
				Expect(state.Step1TxID).To(BeNil())
				Expect(state.Step2TxID).To(BeNil())
				Expect(state.LastError).To(Equal(ledger.ErrUserRejected.Error()))
			})
		})

		When("the first write reverts on-chain", func() {
			BeforeEach(func() {
				fakeLedger.AwaitConfirmationReturnsOnCall(0, ledger.ErrConfirmationFailed)
			})

			It("returns to idle and never starts step 2", func() {
				Expect(err).To(MatchError(ledger.ErrConfirmationFailed))
				state := controller.State()
				Expect(state.Step).To(Equal(flow.StepIdle))
				Expect(state.Step2TxID).To(BeNil())
				Expect(state.LastError).NotTo(BeEmpty())
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(1))
			})
		})

		When("the second simulation reverts", func() {
			BeforeEach(func() {
				fakeLedger.SimulateThenSubmitReturnsOnCall(1, common.Hash{},
					fmt.Errorf("%w: insufficient allowance", ledger.ErrSimulationRejected))
			})

			It("keeps the first write and regresses to step 1", func() {
				Expect(err).To(MatchError(ledger.ErrSimulationRejected))

				state := controller.State()
				Expect(state.Step).To(Equal(flow.StepFirst))
				Expect(*state.Step1TxID).To(Equal(t1))
				Expect(state.Step2TxID).To(BeNil())
				Expect(state.Step2Pending).To(BeFalse())
				Expect(state.LastError).To(ContainSubstring("insufficient allowance"))

				Consistently(completions, 50*time.Millisecond).Should(BeEmpty())
			})
		})

		When("the second write times out", func() {
			BeforeEach(func() {
				fakeLedger.AwaitConfirmationReturnsOnCall(1, ledger.ErrConfirmationTimeout)
			})

			It("regresses to step 1 and keeps the broadcast second id", func() {
				Expect(err).To(MatchError(ledger.ErrConfirmationTimeout))
				state := controller.State()
				Expect(state.Step).To(Equal(flow.StepFirst))
				Expect(state.Step1TxID).NotTo(BeNil())
				Expect(*state.Step2TxID).To(Equal(t2))
				Expect(state.Step2Pending).To(BeFalse())
			})
		})

		When("the second write reverts on-chain", func() {
			BeforeEach(func() {
				fakeLedger.AwaitConfirmationReturnsOnCall(1, ledger.ErrConfirmationFailed)
				fakeLedger.SimulateThenSubmitReturnsOnCall(2, common.HexToHash("0x03"), nil)
			})

			It("keeps the reverted id until the retry submits a new one", func() {
				Expect(err).To(MatchError(ledger.ErrConfirmationFailed))
				state := controller.State()
				Expect(state.Step).To(Equal(flow.StepFirst))
				Expect(*state.Step2TxID).To(Equal(t2))
				Expect(state.LastError).To(ContainSubstring(ledger.ErrConfirmationFailed.Error()))

				Expect(controller.RetryStep2(ctx)).To(Succeed())
				state = controller.State()
				Expect(state.Step).To(Equal(flow.StepDone))
				Expect(*state.Step2TxID).To(Equal(common.HexToHash("0x03")))
			})
		})

		When("the second contract is not deployed", func() {
			BeforeEach(func() {
				kind = flow.KindMintUSDCCUSD
				delete(addresses, "cusd")
			})

			It("keeps the first write and submits nothing further", func() {
				Expect(err).To(MatchError(network.ErrContractUnavailable))
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(1))
				state := controller.State()
				Expect(state.Step).To(Equal(flow.StepFirst))
				Expect(*state.Step1TxID).To(Equal(t1))
			})
		})
	})

	Describe("Start on a flow that is not idle", func() {
		BeforeEach(func() {
			fakeLedger.SimulateThenSubmitReturnsOnCall(1, common.Hash{}, ledger.ErrSubmissionFailed)
		})

		It("is refused", func() {
			Expect(controller.Start(ctx)).To(MatchError(ledger.ErrSubmissionFailed))
			Expect(controller.Start(ctx)).To(MatchError(flow.ErrFlowBusy))
			Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(2))
		})
	})

	Describe("RetryStep2", func() {
		When("the second write previously failed", func() {
			BeforeEach(func() {
				fakeLedger.SimulateThenSubmitReturnsOnCall(1, common.Hash{}, ledger.ErrSubmissionFailed)
				fakeLedger.SimulateThenSubmitReturnsOnCall(2, t2, nil)
			})

			It("re-runs only the second write", func() {
				Expect(controller.Start(ctx)).To(MatchError(ledger.ErrSubmissionFailed))
				Expect(controller.RetryStep2(ctx)).To(Succeed())

				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(3))
				_, retried := fakeLedger.SimulateThenSubmitArgsForCall(2)
				Expect(retried.Method).To(Equal("deposit"))

				state := controller.State()
				Expect(state.Step).To(Equal(flow.StepDone))
				Expect(*state.Step1TxID).To(Equal(t1))
				Expect(*state.Step2TxID).To(Equal(t2))
				Expect(state.LastError).To(BeEmpty())
			})
		})

		When("the flow is idle", func() {
			It("is not allowed", func() {
				Expect(controller.RetryStep2(ctx)).To(MatchError(flow.ErrInvalidTransition))
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(0))
			})
		})

		When("the signer disconnected in the meantime", func() {
			BeforeEach(func() {
				fakeLedger.SimulateThenSubmitReturnsOnCall(1, common.Hash{}, ledger.ErrSubmissionFailed)
			})

			It("fails without changing state", func() {
				Expect(controller.Start(ctx)).To(HaveOccurred())
				before := controller.State()

				fakeLedger.ConnectedReturns(0, ledger.ErrNotConnected)
				Expect(controller.RetryStep2(ctx)).To(MatchError(ledger.ErrNotConnected))
				Expect(controller.State()).To(Equal(before))
			})
		})
	})

	Describe("Reset", func() {
		It("clears a completed flow and refreshes balances", func() {
			Expect(controller.Start(ctx)).To(Succeed())
			controller.Reset()

			Expect(controller.State()).To(Equal(flow.State{}))
			Eventually(fakeRefresher.RefreshCallCount).Should(Equal(2))
		})

		It("clears a failed flow", func() {
			fakeLedger.SimulateThenSubmitReturnsOnCall(1, common.Hash{}, ledger.ErrSubmissionFailed)
			Expect(controller.Start(ctx)).To(HaveOccurred())

			controller.Reset()
			Expect(controller.State()).To(Equal(flow.State{}))
			Expect(controller.Start(ctx)).To(Succeed())
		})

		When("the second write is still pending", func() {
			var (
				release chan struct{}
				done    chan error
			)

			BeforeEach(func() {
				release = make(chan struct{})
				done = make(chan error, 1)
				fakeLedger.AwaitConfirmationStub = func(_ context.Context, hash common.Hash) error {
					if hash == t2 {
						<-release
					}
					return nil
				}
			})

			It("ignores the late confirmation", func() {
				go func() {
					defer GinkgoRecover()
					done <- controller.Start(ctx)
				}()

				Eventually(fakeLedger.AwaitConfirmationCallCount).Should(Equal(2))
				Expect(controller.State().Step).To(Equal(flow.StepSecond))

				controller.Reset()
				Expect(controller.State()).To(Equal(flow.State{}))

				close(release)

				var startErr error
				Eventually(done).Should(Receive(&startErr))
				Expect(startErr).To(MatchError(flow.ErrFlowReset))
				Expect(controller.State()).To(Equal(flow.State{}))
				Consistently(completions, 50*time.Millisecond).Should(BeEmpty())
			})

			It("refuses a second submission of write #2 while it is pending", func() {
				go func() {
					defer GinkgoRecover()
					done <- controller.Start(ctx)
				}()

				Eventually(fakeLedger.AwaitConfirmationCallCount).Should(Equal(2))

				Expect(controller.RetryStep2(ctx)).To(MatchError(flow.ErrFlowBusy))
				Expect(controller.Start(ctx)).To(MatchError(flow.ErrFlowBusy))
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(2))

				close(release)
				Eventually(done).Should(Receive(Not(HaveOccurred())))
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(2))
				Expect(controller.State().Step).To(Equal(flow.StepDone))
			})
		})

		When("the first write is still pending", func() {
			var (
				release chan struct{}
				done    chan error
			)

			BeforeEach(func() {
				release = make(chan struct{})
				done = make(chan error, 1)
				fakeLedger.AwaitConfirmationStub = func(_ context.Context, hash common.Hash) error {
					if hash == t1 {
						<-release
					}
					return nil
				}
			})

			It("drops the late confirmation and never submits write #2", func() {
				go func() {
					defer GinkgoRecover()
					done <- controller.Start(ctx)
				}()

				Eventually(fakeLedger.AwaitConfirmationCallCount).Should(Equal(1))
				Expect(controller.State().Step1Pending).To(BeTrue())

				controller.Reset()
				close(release)

				var startErr error
				Eventually(done).Should(Receive(&startErr))
				Expect(startErr).To(MatchError(flow.ErrFlowReset))
				Expect(controller.State()).To(Equal(flow.State{}))
				Expect(fakeLedger.SimulateThenSubmitCallCount()).To(Equal(1))
			})
		})

		When("a state change is still being delivered", func() {
			var (
				reached chan struct{}
				release chan struct{}
				done    chan error
			)

			BeforeEach(func() {
				reached = make(chan struct{})
				release = make(chan struct{})
				done = make(chan error, 1)
			})

			JustBeforeEach(func() {
				def, defErr := flow.NewDefinition(kind, flow.Params{Owner: owner, Amount: big.NewInt(10)})
				Expect(defErr).NotTo(HaveOccurred())

				var once sync.Once
				controller = flow.NewController(zap.NewNop().Sugar(), def, fakeLedger, fakeResolver, fakeRefresher, flow.Options{
					Owner:        owner,
					RefreshDelay: 10 * time.Millisecond,
					OnChange: func(s flow.State) {
						changes.add(s)
						if s.Step == flow.StepSecond && s.Step2TxID != nil {
							once.Do(func() {
								close(reached)
								<-release
							})
						}
					},
				})
			})

			It("delivers the reset last", func() {
				go func() {
					defer GinkgoRecover()
					done <- controller.Start(ctx)
				}()

				Eventually(reached).Should(BeClosed())
				controller.Reset()
				close(release)

				Eventually(done).Should(Receive())
				last := func() flow.State {
					changes.mu.Lock()
					defer changes.mu.Unlock()
					return changes.states[len(changes.states)-1]
				}
				Eventually(last).Should(Equal(flow.State{}))
				Consistently(last, 50*time.Millisecond).Should(Equal(flow.State{}))
				Expect(controller.State()).To(Equal(flow.State{}))
			})
		})
	})
})
