package ledger

import "errors"

var (
	ErrNotConnected        = errors.New("no connected signer or ledger")
	ErrSimulationRejected  = errors.New("simulation rejected")
	ErrUserRejected        = errors.New("rejected by signer")
	ErrSubmissionFailed    = errors.New("submission failed")
	ErrConfirmationFailed  = errors.New("transaction reverted")
	ErrConfirmationTimeout = errors.New("confirmation timed out")
	ErrBalanceReadFailed   = errors.New("balance read failed")
)
