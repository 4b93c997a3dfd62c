package network

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// ErrContractUnavailable is returned when a contract is not deployed on the
// requested network. The accompanying address is always the zero address.
var ErrContractUnavailable error = errors.New("contract unavailable on this network")

var errInvalidAddress error = errors.New("invalid contract address")

// Sentinel is the "no deployment" address.
var Sentinel = common.Address{}

type Deployment struct {
	ChainID   uint64            `yaml:"chainId"`
	Name      string            `yaml:"name"`
	Contracts map[string]string `yaml:"contracts"`
	// Balances lists the logical token names whose balances are tracked.
	Balances []string `yaml:"balances"`
}

type file struct {
	Networks []Deployment `yaml:"networks"`
}

// Registry maps (logical contract name, chain id) to a deployment address.
type Registry struct {
	deployments map[uint64]map[string]common.Address
	balances    map[uint64][]string
	names       map[uint64]string
}

func NewRegistry(deployments []Deployment) (*Registry, error) {
	r := &Registry{
		deployments: make(map[uint64]map[string]common.Address, len(deployments)),
		balances:    make(map[uint64][]string, len(deployments)),
		names:       make(map[uint64]string, len(deployments)),
	}

	for _, d := range deployments {
		contracts := make(map[string]common.Address, len(d.Contracts))
		for name, hex := range d.Contracts {
			if !common.IsHexAddress(hex) {
				return nil, fmt.Errorf("%w: %s on chain %d: %q", errInvalidAddress, name, d.ChainID, hex)
			}
			contracts[strings.ToLower(name)] = common.HexToAddress(hex)
		}
		r.deployments[d.ChainID] = contracts
		r.balances[d.ChainID] = d.Balances
		r.names[d.ChainID] = d.Name
	}

	return r, nil
}

// LoadRegistry reads a YAML address book from disk.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read networks file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode networks file: %w", err)
	}

	return NewRegistry(f.Networks)
}

// Resolve returns the deployment address of name on chainID. The sentinel
// address is never returned together with a nil error.
func (r *Registry) Resolve(name string, chainID uint64) (common.Address, error) {
	contracts, ok := r.deployments[chainID]
	if !ok {
		return Sentinel, fmt.Errorf("%w: %s (unknown chain %d)", ErrContractUnavailable, name, chainID)
	}

	addr, ok := contracts[strings.ToLower(name)]
	if !ok || addr == Sentinel {
		return Sentinel, fmt.Errorf("%w: %s on chain %d", ErrContractUnavailable, name, chainID)
	}

	return addr, nil
}

// TrackedTokens returns the logical names of tokens whose balances are shown for chainID.
func (r *Registry) TrackedTokens(chainID uint64) []string {
	return r.balances[chainID]
}

func (r *Registry) NetworkName(chainID uint64) string {
	if name, ok := r.names[chainID]; ok {
		return name
	}
	return fmt.Sprintf("chain-%d", chainID)
}
