package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"chainflow/internal/balance"
	"chainflow/internal/flow"
	"chainflow/internal/repository"
	tokenIssuer "chainflow/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrFlowNotFound error = errors.New("flow not found")
var ErrFlowNotLive error = errors.New("flow is no longer active")

const tokenTTL = 24 * time.Hour

type Options struct {
	RefreshDelay time.Duration
	Recorder     flow.Recorder
}

type session struct {
	controller *flow.Controller
	record     repository.FlowRecord

	// mu serialises persistence of this flow's state changes and guards watchers.
	mu       sync.Mutex
	watchers map[int]chan FlowView
	nextID   int
}

// FlowService starts chained flows on behalf of authenticated users, keeps the
// live ones in memory and mirrors every state change into the history store.
type FlowService struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	ledger    Ledger
	resolver  Resolver
	balances  Balances
	opts      Options

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewFlowService(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, l Ledger, resolver Resolver, balances Balances, opts Options) *FlowService {
	return &FlowService{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		ledger:    l,
		resolver:  resolver,
		balances:  balances,
		opts:      opts,
		sessions:  make(map[string]*session),
	}
}

// Authenticate checks the provided username and password against the database
// and issues a JWT for the user.
func (s *FlowService) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := s.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName: user.Username,
		Subject:  user.ID,
		TTL:      tokenTTL,
	}
	token := s.jwtIssuer.Generate(tokenInfo)
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// StartFlow builds the flow for req, records it and runs it in the background.
// The returned view is the state right after the flow was accepted.
func (s *FlowService) StartFlow(ctx context.Context, token string, req StartRequest) (FlowView, error) {
	userID, err := s.userID(token)
	if err != nil {
		return FlowView{}, err
	}

	chainID, err := s.ledger.Connected(ctx)
	if err != nil {
		return FlowView{}, err
	}

	owner := s.ledger.SignerAddress()
	def, err := flow.NewDefinition(flow.Kind(req.Kind), flow.Params{
		Owner:    owner,
		Amount:   req.Amount,
		Operator: req.Delegatee,
	})
	if err != nil {
		return FlowView{}, err
	}

	now := time.Now().UTC()
	record := repository.FlowRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      string(def.Kind),
		ChainID:   chainID,
		Owner:     owner.Hex(),
		Amount:    req.Amount.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if def.Kind == flow.KindMintDelegate {
		delegatee := req.Delegatee.Hex()
		record.Delegatee = &delegatee
	}

	if err := s.repo.SaveFlow(ctx, record); err != nil {
		return FlowView{}, fmt.Errorf("save flow: %w", err)
	}

	sess := &session{record: record}
	sess.controller = flow.NewController(s.logs, def, s.ledger, s.resolver, s.balances, flow.Options{
		Owner:        owner,
		RefreshDelay: s.opts.RefreshDelay,
		OnChange:     func(st flow.State) { s.persist(sess, st) },
		OnComplete: func(st flow.State) {
			s.logs.Infow("flow finished", "flow_id", record.ID, "kind", record.Kind)
		},
		Recorder: s.opts.Recorder,
	})

	s.mu.Lock()
	s.sessions[record.ID] = sess
	s.mu.Unlock()

	s.logs.Infow("starting flow", "flow_id", record.ID, "kind", record.Kind, "user_id", userID, "chain_id", chainID)

	view := liveView(record, sess.controller.State())

	go func() {
		if err := sess.controller.Start(context.Background()); err != nil {
			s.logs.Errorw("flow stopped", "flow_id", record.ID, "error", err)
		}
	}()

	return view, nil
}

// GetFlow returns the live state of a flow, or its last recorded state when it
// is not running in this process.
func (s *FlowService) GetFlow(ctx context.Context, token, id string) (FlowView, error) {
	userID, err := s.userID(token)
	if err != nil {
		return FlowView{}, err
	}

	if sess, ok := s.session(id, userID); ok {
		return liveView(sess.snapshot(), sess.controller.State()), nil
	}

	record, err := s.repo.GetFlow(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFlowNotFound) {
			return FlowView{}, ErrFlowNotFound
		}
		return FlowView{}, fmt.Errorf("get flow: %w", err)
	}
	if record.UserID != userID {
		return FlowView{}, ErrFlowNotFound
	}

	return recordView(record), nil
}

// RetryFlow re-runs the second write of a flow whose second write failed.
func (s *FlowService) RetryFlow(ctx context.Context, token, id string) (FlowView, error) {
	userID, err := s.userID(token)
	if err != nil {
		return FlowView{}, err
	}

	sess, ok := s.session(id, userID)
	if !ok {
		return FlowView{}, s.missing(ctx, id, userID)
	}

	st := sess.controller.State()
	if st.Step != flow.StepFirst || st.Step1Pending || st.Step1TxID == nil {
		return FlowView{}, flow.ErrInvalidTransition
	}

	if _, err := s.ledger.Connected(ctx); err != nil {
		return FlowView{}, err
	}

	s.logs.Infow("retrying second write", "flow_id", id)

	go func() {
		if err := sess.controller.RetryStep2(context.Background()); err != nil {
			s.logs.Errorw("retry stopped", "flow_id", id, "error", err)
		}
	}()

	return liveView(sess.snapshot(), st), nil
}

// ResetFlow returns a live flow to idle.
func (s *FlowService) ResetFlow(ctx context.Context, token, id string) (FlowView, error) {
	userID, err := s.userID(token)
	if err != nil {
		return FlowView{}, err
	}

	sess, ok := s.session(id, userID)
	if !ok {
		return FlowView{}, s.missing(ctx, id, userID)
	}

	sess.controller.Reset()
	return liveView(sess.snapshot(), sess.controller.State()), nil
}

// WatchFlow streams the state of a live flow, starting with the current one,
// until ctx is done. A slow reader only sees the latest state.
func (s *FlowService) WatchFlow(ctx context.Context, token, id string) (<-chan FlowView, error) {
	userID, err := s.userID(token)
	if err != nil {
		return nil, err
	}

	sess, ok := s.session(id, userID)
	if !ok {
		return nil, s.missing(ctx, id, userID)
	}

	ch := make(chan FlowView, 1)

	sess.mu.Lock()
	if sess.watchers == nil {
		sess.watchers = make(map[int]chan FlowView)
	}
	watchID := sess.nextID
	sess.nextID++
	sess.watchers[watchID] = ch
	ch <- liveView(sess.record, sess.controller.State())
	sess.mu.Unlock()

	go func() {
		<-ctx.Done()
		sess.mu.Lock()
		delete(sess.watchers, watchID)
		close(ch)
		sess.mu.Unlock()
	}()

	return ch, nil
}

// GetHistory lists the user's flows, newest first, with the receipts of their
// mined writes. Receipts that cannot be fetched are left out.
func (s *FlowService) GetHistory(ctx context.Context, token string) ([]FlowView, error) {
	userID, err := s.userID(token)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.GetUserFlows(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user flows: %w", err)
	}

	var hashes []common.Hash
	for _, r := range records {
		for _, h := range []*string{r.Step1TxHash, r.Step2TxHash} {
			if h != nil {
				hashes = append(hashes, common.HexToHash(*h))
			}
		}
	}

	receipts, err := s.ledger.FetchReceipts(ctx, hashes)
	if err != nil {
		s.logs.Errorw("getting receipts from node", "error", err)
	}

	byHash := make(map[string]ReceiptRecord, len(receipts))
	for _, r := range receipts {
		byHash[r.TransactionHash] = ReceiptRecord(*r)
	}

	views := make([]FlowView, 0, len(records))
	for _, r := range records {
		view := recordView(r)
		if sess, ok := s.session(r.ID, userID); ok {
			view = liveView(sess.snapshot(), sess.controller.State())
		}
		for _, h := range []*string{view.Step1TxID, view.Step2TxID} {
			if h == nil {
				continue
			}
			if receipt, ok := byHash[common.HexToHash(*h).Hex()]; ok {
				view.Receipts = append(view.Receipts, receipt)
			}
		}
		views = append(views, view)
	}

	s.logs.Infow("user flow history fetched", "user_id", userID, "count", len(views))

	return views, nil
}

// GetBalances returns the cached balances of owner. An owner never read before
// is refreshed first and then kept up to date by polling.
func (s *FlowService) GetBalances(ctx context.Context, token string, owner common.Address) ([]BalanceView, error) {
	if _, err := s.userID(token); err != nil {
		return nil, err
	}

	balances := s.balances.Balances(owner)
	if !anyKnown(balances) {
		s.balances.Refresh(ctx, owner)
		balances = s.balances.Balances(owner)
	}

	views := make([]BalanceView, 0, len(balances))
	for _, b := range balances {
		view := BalanceView{
			Token:     b.Token,
			Amount:    b.Amount.String(),
			Known:     b.Known,
			UpdatedAt: b.UpdatedAt,
		}
		if b.Known {
			view.Address = b.Address.Hex()
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *FlowService) userID(token string) (string, error) {
	claims, err := s.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("validate jwt token: missing subject: %w", tokenIssuer.ErrTokenNotValid)
	}

	return userID, nil
}

func (s *FlowService) session(id, userID string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || sess.record.UserID != userID {
		return nil, false
	}
	return sess, true
}

// missing tells apart flows that never existed for userID from flows that only
// live in history.
func (s *FlowService) missing(ctx context.Context, id, userID string) error {
	record, err := s.repo.GetFlow(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFlowNotFound) {
			return ErrFlowNotFound
		}
		return fmt.Errorf("get flow: %w", err)
	}
	if record.UserID != userID {
		return ErrFlowNotFound
	}
	return ErrFlowNotLive
}

func (s *FlowService) persist(sess *session, st flow.State) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.record.Step = int(st.Step)
	sess.record.Step1TxHash = hashString(st.Step1TxID)
	sess.record.Step2TxHash = hashString(st.Step2TxID)
	sess.record.LastError = st.LastError
	sess.record.UpdatedAt = time.Now().UTC()

	if err := s.repo.SaveFlow(context.Background(), sess.record); err != nil {
		s.logs.Errorw("failed to save flow state", "flow_id", sess.record.ID, "step", st.Step.String(), "error", err)
	}

	view := liveView(sess.record, st)
	for _, ch := range sess.watchers {
		offer(ch, view)
	}
}

// offer replaces whatever ch still holds with view. Watchers only ever care
// about the newest state.
func offer(ch chan FlowView, view FlowView) {
	select {
	case ch <- view:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- view
}

func (sess *session) snapshot() repository.FlowRecord {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.record
}

func liveView(record repository.FlowRecord, st flow.State) FlowView {
	view := recordView(record)
	view.Step = int(st.Step)
	view.StepName = st.Step.String()
	view.Step1TxID = hashString(st.Step1TxID)
	view.Step2TxID = hashString(st.Step2TxID)
	view.Step1Pending = st.Step1Pending
	view.Step2Pending = st.Step2Pending
	view.LastError = st.LastError
	view.Live = true
	return view
}

func recordView(r repository.FlowRecord) FlowView {
	return FlowView{
		ID:        r.ID,
		Kind:      r.Kind,
		ChainID:   r.ChainID,
		Owner:     r.Owner,
		Delegatee: r.Delegatee,
		Amount:    r.Amount,
		Step:      r.Step,
		StepName:  flow.Step(r.Step).String(),
		Step1TxID: r.Step1TxHash,
		Step2TxID: r.Step2TxHash,
		LastError: r.LastError,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func hashString(h *common.Hash) *string {
	if h == nil {
		return nil
	}
	s := h.Hex()
	return &s
}

func anyKnown(balances []balance.Balance) bool {
	for _, b := range balances {
		if b.Known {
			return true
		}
	}
	return false
}
