package main

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"evm-connect/connect"
)

func main() {
	descriptor := flag.String("contract", "contract_info.json", "path to the contract descriptor")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Errorf("can't initialize logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	eth, err := connect.Eth(ctx, logger)
	if err != nil {
		logger.Fatal("can't connect to ethereum mainnet", zap.Error(err))
	}
	defer eth.Close()
	fmt.Printf("connected to %s: %t\n", eth.Network().Name, eth.Connected(ctx))
	fmt.Printf("chain id: %d\n", eth.ChainID().Uint64())

	header, err := eth.LatestHeader(ctx)
	if err != nil {
		logger.Fatal("can't fetch latest block", zap.Error(err))
	}
	fmt.Printf("latest block number: %d\n", header.Number.Uint64())
	fmt.Printf("latest block timestamp: %d\n", header.Time)

	bsc, token, err := connect.WithContract(ctx, *descriptor, logger)
	if err != nil {
		logger.Fatal("can't connect to bsc testnet", zap.Error(err))
	}
	defer bsc.Close()
	fmt.Printf("connected to %s: %t\n", bsc.Network().Name, bsc.Connected(ctx))
	fmt.Printf("chain id: %d\n", bsc.ChainID().Uint64())
	fmt.Printf("contract address: %s\n", token.Address())
	fmt.Printf("abi entries: %d\n", token.ABIEntries())

	// The read is optional: merkleRoot may be unset or absent entirely.
	var out []interface{}
	if err := token.Call(ctx, &out, "merkleRoot"); err != nil {
		fmt.Printf("note: could not read merkleRoot: %v\n", err)
	} else if len(out) == 1 {
		if root, ok := out[0].([32]byte); ok {
			fmt.Printf("contract merkleRoot: 0x%x\n", root)
		} else {
			fmt.Printf("contract merkleRoot: %v\n", out[0])
		}
	}
}
