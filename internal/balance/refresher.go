package balance

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultTTL = time.Minute

type Options struct {
	ChainID uint64
	// TTL is how long a read balance is served from cache.
	TTL      time.Duration
	Recorder Recorder
}

// Refresher re-reads token balances of owners and keeps the last values in
// memory for readers that must not hit the node.
type Refresher struct {
	logs   *zap.SugaredLogger
	reader Reader
	tokens TokenBook
	opts   Options

	cache *ristretto.Cache
	group singleflight.Group

	mu      sync.Mutex
	watched map[common.Address]struct{}
}

func NewRefresher(logger *zap.SugaredLogger, reader Reader, tokens TokenBook, opts Options) (*Refresher, error) {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("balance cache: %w", err)
	}

	return &Refresher{
		logs:    logger,
		reader:  reader,
		tokens:  tokens,
		opts:    opts,
		cache:   cache,
		watched: make(map[common.Address]struct{}),
	}, nil
}

// Refresh reads every tracked token balance of owner. Failed reads are logged
// and stored as unknown; they never abort the refresh.
func (r *Refresher) Refresh(ctx context.Context, owner common.Address) {
	r.mu.Lock()
	r.watched[owner] = struct{}{}
	r.mu.Unlock()

	names := r.tokens.TrackedTokens(r.opts.ChainID)

	wg := sync.WaitGroup{}
	wg.Add(len(names))
	for _, name := range names {
		go func(name string) {
			defer wg.Done()
			r.refreshOne(ctx, name, owner)
		}(name)
	}
	wg.Wait()

	r.cache.Wait()
}

func (r *Refresher) refreshOne(ctx context.Context, name string, owner common.Address) {
	token, err := r.tokens.Resolve(name, r.opts.ChainID)
	if err != nil {
		r.failed(name, owner, err)
		return
	}

	key := cacheKey(name, owner)
	v, err, shared := r.group.Do(key, func() (any, error) {
		return r.reader.ReadBalance(ctx, token, owner)
	})
	if err != nil {
		r.failed(name, owner, err)
		return
	}

	if shared {
		r.logs.Debugw("balance read shared", "token", name, "owner", owner.Hex())
	}

	r.store(Balance{
		Token:     name,
		Address:   token,
		Amount:    new(big.Int).Set(v.(*big.Int)),
		Known:     true,
		UpdatedAt: time.Now(),
	}, owner)
}

func (r *Refresher) failed(name string, owner common.Address, err error) {
	r.logs.Warnw("balance read failed", "token", name, "owner", owner.Hex(), "error", err)
	if r.opts.Recorder != nil {
		r.opts.Recorder.BalanceReadFailed(name)
	}
	r.store(Balance{Token: name, Amount: big.NewInt(0), UpdatedAt: time.Now()}, owner)
}

func (r *Refresher) store(b Balance, owner common.Address) {
	r.cache.SetWithTTL(cacheKey(b.Token, owner), b, 1, r.opts.TTL)
}

// Balances returns the cached balances of owner in tracked token order.
// Tokens never read, or whose value expired, are reported unknown.
func (r *Refresher) Balances(owner common.Address) []Balance {
	names := r.tokens.TrackedTokens(r.opts.ChainID)
	out := make([]Balance, 0, len(names))
	for _, name := range names {
		v, ok := r.cache.Get(cacheKey(name, owner))
		if !ok {
			out = append(out, Balance{Token: name, Amount: big.NewInt(0)})
			continue
		}
		b := v.(Balance)
		b.Amount = new(big.Int).Set(b.Amount)
		out = append(out, b)
	}
	return out
}

// Poll refreshes every owner seen so far on each tick until ctx is done.
func (r *Refresher) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logs.Infow("balance polling stopped")
			return
		case <-ticker.C:
			for _, owner := range r.owners() {
				r.Refresh(ctx, owner)
			}
		}
	}
}

func (r *Refresher) owners() []common.Address {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]common.Address, 0, len(r.watched))
	for owner := range r.watched {
		out = append(out, owner)
	}
	return out
}

func (r *Refresher) Close() {
	r.cache.Close()
}

func cacheKey(token string, owner common.Address) string {
	return token + ":" + owner.Hex()
}
