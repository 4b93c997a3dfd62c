package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// FetchReceipts looks up the mined receipts of hashes concurrently. Hashes that
// fail are reported in the joined error; the rest are returned.
func (l *Ledger) FetchReceipts(ctx context.Context, hashes []common.Hash) ([]*Receipt, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	chainID, err := l.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch chain id: %w", err)
	}
	signer := types.LatestSignerForChainID(chainID)

	resultsChan := make(chan *ReceiptResult)

	var wg sync.WaitGroup
	for _, hash := range hashes {
		wg.Add(1)
		go func(hash common.Hash) {
			defer wg.Done()
			res := l.getReceipt(ctx, signer, hash)
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching receipt %q: %w", hash.Hex(), res.Error)
			}
			resultsChan <- res
		}(hash)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Receipt
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Receipt)
	}

	return results, aggrErr
}

func (l *Ledger) getReceipt(ctx context.Context, signer types.Signer, hash common.Hash) *ReceiptResult {
	tx, _, err := l.client.TransactionByHash(ctx, hash)
	if err != nil {
		return &ReceiptResult{nil, err}
	}

	receipt, err := l.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return &ReceiptResult{nil, err}
	}

	from, err := types.Sender(signer, tx)
	if err != nil {
		return &ReceiptResult{nil, err}
	}

	var to *string
	if tx.To() != nil {
		addr := tx.To().Hex()
		to = &addr
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &ReceiptResult{
		Receipt: &Receipt{
			TransactionHash: tx.Hash().Hex(),
			Status:          receipt.Status,
			BlockHash:       receipt.BlockHash.Hex(),
			BlockNumber:     blockNumber,
			From:            from.Hex(),
			To:              to,
			GasUsed:         receipt.GasUsed,
			LogsCount:       len(receipt.Logs),
		},
		Error: nil,
	}
}
