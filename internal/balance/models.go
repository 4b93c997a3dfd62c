package balance

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Balance of one token for one owner. Known is false when the last read
// failed or the value has expired; Amount is zero then.
type Balance struct {
	Token     string
	Address   common.Address
	Amount    *big.Int
	Known     bool
	UpdatedAt time.Time
}
