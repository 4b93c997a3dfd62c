package contracts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Logical contract names used by the address book and the flow catalogue.
const (
	USDC       = "usdc"
	CUSD       = "cusd"
	Delegation = "delegation"
	Vault      = "vault"
	Lender     = "lender"
)

var ErrUnknownContract error = errors.New("unknown contract")

const erc20ABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

// cUSD is an ERC-20 that can additionally be minted against deposited collateral.
const cusdABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"mintWithCollateral","stateMutability":"nonpayable","inputs":[{"name":"asset","type":"address"},{"name":"amountIn","type":"uint256"},{"name":"receiver","type":"address"}],"outputs":[{"name":"amountOut","type":"uint256"}]}
]`

const delegationABI = `[
	{"type":"function","name":"delegate","stateMutability":"nonpayable","inputs":[{"name":"operator","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

// Vault follows ERC-4626; shares are an ERC-20 so balanceOf is included.
const vaultABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"deposit","stateMutability":"nonpayable","inputs":[{"name":"assets","type":"uint256"},{"name":"receiver","type":"address"}],"outputs":[{"name":"shares","type":"uint256"}]}
]`

const lenderABI = `[
	{"type":"function","name":"repay","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"},{"name":"onBehalfOf","type":"address"}],"outputs":[]}
]`

var parsed = map[string]abi.ABI{}

func init() {
	for name, raw := range map[string]string{
		USDC:       erc20ABI,
		CUSD:       cusdABI,
		Delegation: delegationABI,
		Vault:      vaultABI,
		Lender:     lenderABI,
	} {
		parsed[name] = mustParse(raw)
	}
}

func mustParse(raw string) abi.ABI {
	a, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse abi: %s", err))
	}
	return a
}

// ABIFor returns the ABI of a logical contract name.
func ABIFor(name string) (abi.ABI, error) {
	a, ok := parsed[strings.ToLower(name)]
	if !ok {
		return abi.ABI{}, fmt.Errorf("%w: %s", ErrUnknownContract, name)
	}
	return a, nil
}

// ERC20 returns the ABI used for balance reads of any tracked token.
func ERC20() abi.ABI {
	return parsed[USDC]
}
