// Package connect holds the two entry procedures: connecting to Ethereum
// mainnet, and connecting to the BNB Smart Chain testnet with a contract
// handle built from a JSON descriptor.
package connect

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"evm-connect/chain"
	"evm-connect/config"
	"evm-connect/contract"
)

// Eth connects to Ethereum mainnet and verifies the endpoint answers.
func Eth(ctx context.Context, logger *zap.Logger) (*chain.Client, error) {
	return chain.Connect(ctx, chain.EthereumMainnet, chain.WithLogger(logger))
}

// WithContract reads the contract descriptor at path, connects to the BNB
// Smart Chain testnet with the proof-of-authority transport in place, and
// binds the descriptor's bsc record to that connection. The connection and
// the contract handle share one transport and are returned as a pair.
func WithContract(ctx context.Context, path string, logger *zap.Logger) (*chain.Client, *contract.Contract, error) {
	return withContract(ctx, path, chain.BSCTestnet, logger)
}

func withContract(ctx context.Context, path string, n chain.Network, logger *zap.Logger) (*chain.Client, *contract.Contract, error) {
	d, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("can't load contract descriptor: %w", err)
	}
	info, err := d.Entry(config.BSCKey)
	if err != nil {
		return nil, nil, err
	}
	client, err := chain.Connect(ctx, n, chain.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	c, err := contract.New(client, info)
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("can't bind contract: %w", err)
	}
	return client, c, nil
}
