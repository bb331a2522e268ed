package chain

// Network describes one JSON-RPC endpoint this module knows how to reach.
type Network struct {
	Name     string
	Endpoint string
	// ChainID is the id the endpoint is expected to report. Zero skips the
	// check.
	ChainID uint64
	// POA marks chains whose block headers carry consensus data in
	// extraData past the 32-byte vanity prefix.
	POA bool
}

var (
	EthereumMainnet = Network{
		Name:     "ethereum-mainnet",
		Endpoint: "https://eth.llamarpc.com",
		ChainID:  1,
	}
	BSCTestnet = Network{
		Name:     "bsc-testnet",
		Endpoint: "https://data-seed-prebsc-1-s1.binance.org:8545/",
		ChainID:  97,
		POA:      true,
	}
)

// Alternate public endpoints for the two networks, kept for reference only.
var (
	EthereumAlternates = []string{
		"https://rpc.ankr.com/eth",
		"https://ethereum.publicnode.com",
		"https://1rpc.io/eth",
	}
	BSCTestnetAlternates = []string{
		"https://data-seed-prebsc-2-s1.binance.org:8545/",
		"https://bsc-testnet.publicnode.com",
	}
)
