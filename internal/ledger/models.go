package ledger

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Call is a single state-changing contract invocation.
type Call struct {
	To     common.Address
	ABI    abi.ABI
	Method string
	Args   []any
}

type ReceiptResult struct {
	Receipt *Receipt
	Error   error
}

type Receipt struct {
	TransactionHash string
	Status          uint64
	BlockHash       string
	BlockNumber     uint64
	From            string
	To              *string
	GasUsed         uint64
	LogsCount       int
}
