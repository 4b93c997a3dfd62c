package core

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type StartRequest struct {
	Kind   string
	Amount *big.Int
	// Delegatee is the operator of a mint-delegate flow.
	Delegatee common.Address
}

// FlowView is what clients see of a flow. Live is false for flows that are
// only known from history and can no longer be driven.
type FlowView struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	ChainID      uint64          `json:"chainId"`
	Owner        string          `json:"owner"`
	Delegatee    *string         `json:"delegatee,omitempty"`
	Amount       string          `json:"amount"`
	Step         int             `json:"step"`
	StepName     string          `json:"stepName"`
	Step1TxID    *string         `json:"step1TxId"`
	Step2TxID    *string         `json:"step2TxId"`
	Step1Pending bool            `json:"step1Pending"`
	Step2Pending bool            `json:"step2Pending"`
	LastError    string          `json:"lastError,omitempty"`
	Live         bool            `json:"live"`
	Receipts     []ReceiptRecord `json:"receipts,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type ReceiptRecord struct {
	TransactionHash string  `json:"transactionHash"`
	Status          uint64  `json:"status"`
	BlockHash       string  `json:"blockHash"`
	BlockNumber     uint64  `json:"blockNumber"`
	From            string  `json:"from"`
	To              *string `json:"to"`
	GasUsed         uint64  `json:"gasUsed"`
	LogsCount       int     `json:"logsCount"`
}

type BalanceView struct {
	Token     string    `json:"token"`
	Address   string    `json:"address,omitempty"`
	Amount    string    `json:"amount"`
	Known     bool      `json:"known"`
	UpdatedAt time.Time `json:"updatedAt"`
}
