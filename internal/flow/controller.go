package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"chainflow/internal/contracts"
	"chainflow/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrFlowBusy          = errors.New("flow already in progress")
	ErrInvalidTransition = errors.New("operation not allowed in current step")
	ErrFlowReset         = errors.New("flow was reset")
)

const genericFailure = "transaction failed"

const (
	outcomeSubmitted = "submitted"
	outcomeConfirmed = "confirmed"
	outcomeFailed    = "failed"
)

type Options struct {
	// Owner is the account whose balances are refreshed after the flow.
	Owner        common.Address
	RefreshDelay time.Duration
	// OnChange receives state transitions in order, outside the controller
	// lock. Calls never overlap. A state superseded while an earlier call is
	// still running is skipped in favour of the newest one.
	OnChange func(State)
	// OnComplete is called once both writes are confirmed and balances were refreshed.
	OnComplete func(State)
	Recorder   Recorder
}

// Controller executes the two writes of a Definition in order.
//
// Failure policy: a failure during the first write returns the flow to
// StepIdle; a failure during the second write returns it to StepFirst so the
// confirmed first write is kept and only the second is retried (RetryStep2).
// Step2TxID survives a second-write failure only when that write was
// broadcast (reverted on-chain or unconfirmed), so its receipt stays findable.
type Controller struct {
	logs      *zap.SugaredLogger
	def       Definition
	ledger    Ledger
	resolver  Resolver
	refresher BalanceRefresher
	opts      Options

	mu         sync.Mutex
	state      State
	generation uint64
	running    bool
	// seq numbers every state change under mu.
	seq uint64

	outMu      sync.Mutex
	pending    State
	pendingSeq uint64
	hasPending bool
	delivering bool
}

func NewController(logger *zap.SugaredLogger, def Definition, l Ledger, resolver Resolver, refresher BalanceRefresher, opts Options) *Controller {
	return &Controller{
		logs:      logger.With("flow", string(def.Kind)),
		def:       def,
		ledger:    l,
		resolver:  resolver,
		refresher: refresher,
		opts:      opts,
	}
}

func (c *Controller) Definition() Definition {
	return c.def
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Start runs the first write and, once it is confirmed, the second one. It
// blocks until the flow completes, fails, or is reset.
func (c *Controller) Start(ctx context.Context) error {
	chainID, err := c.ledger.Connected(ctx)
	if err != nil {
		c.logs.Errorw("start refused", "error", err)
		return err
	}

	c.mu.Lock()
	if c.running || c.state.Step != StepIdle {
		c.mu.Unlock()
		return ErrFlowBusy
	}
	c.running = true
	gen := c.generation
	c.state = State{Step: StepFirst, Step1Pending: true}
	seq, snapshot := c.snapshotLocked()
	c.mu.Unlock()
	c.changed(seq, snapshot)

	hash, err := c.submit(ctx, chainID, c.def.First)
	if err != nil {
		return c.failFirst(gen, err)
	}
	c.record(1, outcomeSubmitted)

	if _, ok := c.update(gen, func(s *State) { s.Step1TxID = &hash }); !ok {
		return ErrFlowReset
	}

	if err := c.ledger.AwaitConfirmation(ctx, hash); err != nil {
		return c.failFirst(gen, err)
	}
	c.record(1, outcomeConfirmed)

	if _, ok := c.update(gen, func(s *State) { s.Step1Pending = false }); !ok {
		c.logs.Infow("ignoring confirmation of abandoned write", "hash", hash.Hex())
		return ErrFlowReset
	}

	return c.advanceToStep2(ctx, gen, chainID)
}

// RetryStep2 re-runs the second write of a flow whose first write is
// confirmed and whose second write failed.
func (c *Controller) RetryStep2(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrFlowBusy
	}
	if c.state.Step != StepFirst || c.state.Step1Pending || c.state.Step1TxID == nil {
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	c.running = true
	gen := c.generation
	c.mu.Unlock()

	chainID, err := c.ledger.Connected(ctx)
	if err != nil {
		c.mu.Lock()
		if gen == c.generation {
			c.running = false
		}
		c.mu.Unlock()
		return err
	}

	return c.advanceToStep2(ctx, gen, chainID)
}

// Reset returns the flow to StepIdle and detaches it from any write still in
// flight; late results of that write are dropped. Balances are refreshed
// after the refresh delay.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.generation++
	c.running = false
	c.state = State{}
	seq, snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.changed(seq, snapshot)
	c.logs.Infow("flow reset")

	time.AfterFunc(c.opts.RefreshDelay, func() {
		c.refresher.Refresh(context.Background(), c.opts.Owner)
	})
}

func (c *Controller) advanceToStep2(ctx context.Context, gen uint64, chainID uint64) error {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return ErrFlowReset
	}
	if c.state.Step != StepFirst || c.state.Step1Pending || c.state.Step2Pending {
		c.running = false
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	c.state.Step = StepSecond
	c.state.Step2Pending = true
	c.state.Step2TxID = nil
	c.state.LastError = ""
	seq, snapshot := c.snapshotLocked()
	c.mu.Unlock()
	c.changed(seq, snapshot)

	hash, err := c.submit(ctx, chainID, c.def.Second)
	if err != nil {
		return c.failSecond(gen, err, false)
	}
	c.record(2, outcomeSubmitted)

	if _, ok := c.update(gen, func(s *State) { s.Step2TxID = &hash }); !ok {
		return ErrFlowReset
	}

	if err := c.ledger.AwaitConfirmation(ctx, hash); err != nil {
		return c.failSecond(gen, err, true)
	}
	c.record(2, outcomeConfirmed)

	final, ok := c.update(gen, func(s *State) {
		s.Step = StepDone
		s.Step2Pending = false
	})
	if !ok {
		c.logs.Infow("ignoring confirmation of abandoned write", "hash", hash.Hex())
		return ErrFlowReset
	}

	c.mu.Lock()
	if gen == c.generation {
		c.running = false
	}
	c.mu.Unlock()

	c.logs.Infow("flow completed",
		"step1_tx", final.Step1TxID.Hex(),
		"step2_tx", final.Step2TxID.Hex())

	time.AfterFunc(c.opts.RefreshDelay, func() {
		c.refresher.Refresh(context.Background(), c.opts.Owner)
		if c.opts.OnComplete != nil {
			c.opts.OnComplete(final)
		}
	})

	return nil
}

// submit resolves the target and any ContractRef arguments on chainID and
// hands the call to the ledger. Nothing is submitted if any address resolves
// to the sentinel.
func (c *Controller) submit(ctx context.Context, chainID uint64, call Call) (common.Hash, error) {
	to, err := c.resolver.Resolve(call.Contract, chainID)
	if err != nil {
		return common.Hash{}, err
	}

	args := make([]any, len(call.Args))
	for i, arg := range call.Args {
		ref, ok := arg.(ContractRef)
		if !ok {
			args[i] = arg
			continue
		}
		addr, err := c.resolver.Resolve(string(ref), chainID)
		if err != nil {
			return common.Hash{}, err
		}
		args[i] = addr
	}

	contractABI, err := contracts.ABIFor(call.Contract)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %w", ledger.ErrSimulationRejected, err)
	}

	return c.ledger.SimulateThenSubmit(ctx, ledger.Call{
		To:     to,
		ABI:    contractABI,
		Method: call.Method,
		Args:   args,
	})
}

func (c *Controller) failFirst(gen uint64, err error) error {
	c.record(1, outcomeFailed)
	c.logs.Errorw("first write failed", "error", err)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return err
	}
	c.running = false
	c.state = State{Step: StepIdle, LastError: errorMessage(err)}
	seq, snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.changed(seq, snapshot)
	return err
}

// failSecond regresses to StepFirst. broadcast tells whether the second write
// reached the network, in which case its id is kept.
func (c *Controller) failSecond(gen uint64, err error, broadcast bool) error {
	c.record(2, outcomeFailed)
	c.logs.Errorw("second write failed", "error", err)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return err
	}
	c.running = false
	c.state.Step = StepFirst
	c.state.Step2Pending = false
	if !broadcast {
		c.state.Step2TxID = nil
	}
	c.state.LastError = errorMessage(err)
	seq, snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.changed(seq, snapshot)
	return err
}

// update applies fn if the flow has not been reset since gen and reports the new state.
func (c *Controller) update(gen uint64, fn func(s *State)) (State, bool) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return State{}, false
	}
	fn(&c.state)
	seq, snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.changed(seq, snapshot)
	return snapshot, true
}

// snapshotLocked numbers the current state. c.mu must be held.
func (c *Controller) snapshotLocked() (uint64, State) {
	c.seq++
	return c.seq, c.state.clone()
}

// changed hands s to OnChange unless a newer state was already handed over.
// If another goroutine is delivering, s is queued for it and changed returns
// at once; that goroutine delivers the newest queued state when it is done.
func (c *Controller) changed(seq uint64, s State) {
	if c.opts.OnChange == nil {
		return
	}

	c.outMu.Lock()
	if seq <= c.pendingSeq {
		c.outMu.Unlock()
		return
	}
	c.pending, c.pendingSeq, c.hasPending = s, seq, true
	if c.delivering {
		c.outMu.Unlock()
		return
	}
	c.delivering = true
	for c.hasPending {
		next := c.pending
		c.hasPending = false
		c.outMu.Unlock()
		c.opts.OnChange(next)
		c.outMu.Lock()
	}
	c.delivering = false
	c.outMu.Unlock()
}

func (c *Controller) record(step int, outcome string) {
	if c.opts.Recorder != nil {
		c.opts.Recorder.StepOutcome(string(c.def.Kind), step, outcome)
	}
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return genericFailure
	}
	return err.Error()
}
