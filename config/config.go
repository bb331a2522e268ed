package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

// BSCKey is the only descriptor entry the loader consumes.
const BSCKey = "bsc"

// ContractInfo is one network's record in a contract descriptor file: a
// checksum-able address and the contract's ABI. Immutable after load.
type ContractInfo struct {
	Address string            `json:"address" validate:"required"`
	ABI     []json.RawMessage `json:"abi" validate:"required"`
}

// Descriptor maps a network key to its contract record.
type Descriptor map[string]ContractInfo

var validate = validator.New()

// Load reads a contract descriptor from path. Malformed JSON fails here,
// before any network I/O happens.
func Load(path string) (Descriptor, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := Descriptor{}
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("can't parse contract descriptor: %w", err)
	}
	return d, nil
}

// Entry returns the record for key after validating it.
func (d Descriptor) Entry(key string) (ContractInfo, error) {
	info, ok := d[key]
	if !ok {
		return ContractInfo{}, fmt.Errorf("descriptor has no %q entry", key)
	}
	if err := info.check(); err != nil {
		return ContractInfo{}, fmt.Errorf("invalid %q entry: %w", key, err)
	}
	return info, nil
}

func (info ContractInfo) check() error {
	if err := validate.Struct(info); err != nil {
		return err
	}
	if !common.IsHexAddress(info.Address) {
		return fmt.Errorf("invalid contract address %s", info.Address)
	}
	return nil
}

// RawABI re-encodes the abi array as one JSON document, the form the ABI
// parser takes.
func (info ContractInfo) RawABI() (string, error) {
	b, err := json.Marshal(info.ABI)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
