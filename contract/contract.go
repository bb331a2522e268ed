package contract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"evm-connect/chain"
	"evm-connect/config"
)

// Contract binds a checksum-normalized address and a parsed ABI to one
// connection handle. It shares that handle's transport and is only usable
// while the handle stays open.
type Contract struct {
	address common.Address
	abi     abi.ABI
	entries int
	bound   *bind.BoundContract
}

// New builds a contract handle on client's transport from a descriptor
// record. The address is normalized to its EIP-55 checksum form.
func New(client *chain.Client, info config.ContractInfo) (*Contract, error) {
	raw, err := info.RawABI()
	if err != nil {
		return nil, fmt.Errorf("can't encode abi: %w", err)
	}
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("can't parse abi: %w", err)
	}
	address := common.HexToAddress(info.Address)
	eth := client.Eth()
	return &Contract{
		address: address,
		abi:     parsed,
		entries: len(info.ABI),
		bound:   bind.NewBoundContract(address, parsed, eth, eth, eth),
	}, nil
}

// Address returns the bound address in EIP-55 checksum form.
func (c *Contract) Address() string {
	return c.address.Hex()
}

// ABIEntries returns the number of function and event records in the source
// descriptor.
func (c *Contract) ABIEntries() int {
	return c.entries
}

// Call performs a read-only call of method against the latest state and
// unpacks the outputs into results.
func (c *Contract) Call(ctx context.Context, results *[]interface{}, method string, args ...interface{}) error {
	if _, ok := c.abi.Methods[method]; !ok {
		return fmt.Errorf("contract has no method %q", method)
	}
	return c.bound.Call(&bind.CallOpts{Context: ctx}, results, method, args...)
}
