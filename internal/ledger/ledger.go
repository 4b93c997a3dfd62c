package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"chainflow/internal/contracts"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

type Options struct {
	// ConfirmationTimeout bounds AwaitConfirmation.
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
}

// Ledger submits contract writes from a single signing identity and tracks them
// until they are mined.
type Ledger struct {
	logs   *zap.SugaredLogger
	client EthClient
	signer Signer
	opts   Options
}

// NewLedger builds a Ledger. A nil signer yields a read-only ledger whose
// writes fail with ErrNotConnected.
func NewLedger(logger *zap.SugaredLogger, client EthClient, signer Signer, opts Options) *Ledger {
	if opts.ConfirmationTimeout <= 0 {
		opts.ConfirmationTimeout = 2 * time.Minute
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	return &Ledger{
		logs:   logger,
		client: client,
		signer: signer,
		opts:   opts,
	}
}

// Connected reports the chain id of the live connection, or ErrNotConnected.
func (l *Ledger) Connected(ctx context.Context) (uint64, error) {
	if l.client == nil || l.signer == nil {
		return 0, ErrNotConnected
	}

	chainID, err := l.client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}

	return chainID.Uint64(), nil
}

// SignerAddress is the account writes are sent from. Zero when read-only.
func (l *Ledger) SignerAddress() common.Address {
	if l.signer == nil {
		return common.Address{}
	}
	return l.signer.Address()
}

// SimulateThenSubmit dry-runs call with eth_call and broadcasts it once the
// dry run succeeds.
func (l *Ledger) SimulateThenSubmit(ctx context.Context, call Call) (common.Hash, error) {
	if l.signer == nil {
		return common.Hash{}, ErrNotConnected
	}

	data, err := call.ABI.Pack(call.Method, call.Args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: encode %s: %w", ErrSimulationRejected, call.Method, err)
	}

	from := l.signer.Address()
	msg := ethereum.CallMsg{
		From: from,
		To:   &call.To,
		Data: data,
	}

	if _, err := l.client.CallContract(ctx, msg, nil); err != nil {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrSimulationRejected, revertReason(err))
	}

	chainID, err := l.client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: fetch chain id: %w", ErrSubmissionFailed, err)
	}

	nonce, err := l.client.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: fetch nonce: %w", ErrSubmissionFailed, err)
	}

	gasPrice, err := l.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: suggest gas price: %w", ErrSubmissionFailed, err)
	}

	gas, err := l.client.EstimateGas(ctx, msg)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: estimate gas: %w", ErrSubmissionFailed, err)
	}

	tx := types.NewTransaction(nonce, call.To, big.NewInt(0), gas, gasPrice, data)

	signed, err := l.signer.SignTx(ctx, tx, chainID)
	if err != nil {
		if errors.Is(err, ErrUserRejected) {
			return common.Hash{}, err
		}
		return common.Hash{}, fmt.Errorf("%w: sign: %w", ErrSubmissionFailed, err)
	}

	if err := l.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("%w: send: %w", ErrSubmissionFailed, err)
	}

	l.logs.Infow("transaction submitted",
		"hash", signed.Hash().Hex(),
		"to", call.To.Hex(),
		"method", call.Method,
		"nonce", nonce)

	return signed.Hash(), nil
}

// AwaitConfirmation polls for the receipt of hash until it is mined or the
// configured confirmation timeout elapses.
func (l *Ledger) AwaitConfirmation(ctx context.Context, hash common.Hash) error {
	ctx, cancel := context.WithTimeout(ctx, l.opts.ConfirmationTimeout)
	defer cancel()

	ticker := time.NewTicker(l.opts.PollInterval)
	defer ticker.Stop()

	for {
		receipt, err := l.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return fmt.Errorf("%w: %s in block %v", ErrConfirmationFailed, hash.Hex(), receipt.BlockNumber)
			}
			l.logs.Infow("transaction confirmed", "hash", hash.Hex(), "block", receipt.BlockNumber)
			return nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) && ctx.Err() == nil {
			l.logs.Warnw("receipt lookup failed, retrying", "hash", hash.Hex(), "error", err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s: %w", ErrConfirmationTimeout, hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// ReadBalance returns the ERC-20 balance of owner at token.
func (l *Ledger) ReadBalance(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	erc20 := contracts.ERC20()

	data, err := erc20.Pack("balanceOf", owner)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrBalanceReadFailed, err)
	}

	out, err := l.client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBalanceReadFailed, err)
	}

	values, err := erc20.Unpack("balanceOf", out)
	if err != nil || len(values) != 1 {
		return nil, fmt.Errorf("%w: decode %d bytes: %v", ErrBalanceReadFailed, len(out), err)
	}

	amount, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected type %T", ErrBalanceReadFailed, values[0])
	}

	return amount, nil
}

// revertReason extracts the decoded Error(string) payload from an eth_call
// failure, falling back to the raw error text.
func revertReason(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if hexData, ok := dataErr.ErrorData().(string); ok {
			if reason, uerr := abi.UnpackRevert(common.FromHex(hexData)); uerr == nil {
				return reason
			}
		}
	}
	return err.Error()
}
