package chain

import (
	"context"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// Client is a connection handle bound to a single endpoint. Each handle owns
// its transport exclusively and is created fresh per dial, never pooled.
type Client struct {
	network Network
	rpc     *rpc.Client
	eth     *ethclient.Client
	chainID *big.Int
	logger  *zap.Logger
}

type Option func(*Client)

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// Connect dials the network's endpoint over HTTP and performs one liveness
// round trip. There is no retry: a single failure is returned to the caller
// and no handle escapes. POA networks get the extra-data relaxation injected
// at the innermost transport layer before the first request.
func Connect(ctx context.Context, n Network, opts ...Option) (*Client, error) {
	c := &Client{network: n, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	httpClient := new(http.Client)
	if n.POA {
		httpClient.Transport = NewPOATransport(nil)
	}
	rpcClient, err := rpc.DialHTTPWithClient(n.Endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("can't dial %s: %w", n.Endpoint, err)
	}
	c.rpc = rpcClient
	c.eth = ethclient.NewClient(rpcClient)

	id, err := c.eth.ChainID(ctx)
	if err != nil {
		rpcClient.Close()
		return nil, fmt.Errorf("endpoint %s is unreachable: %w", n.Endpoint, err)
	}
	if n.ChainID != 0 && id.Uint64() != n.ChainID {
		rpcClient.Close()
		return nil, fmt.Errorf("endpoint %s reports chain id %d, want %d", n.Endpoint, id.Uint64(), n.ChainID)
	}
	c.chainID = id
	c.logger.Info("connected",
		zap.String("network", n.Name),
		zap.Uint64("chainId", id.Uint64()))
	return c, nil
}

func (c *Client) Network() Network {
	return c.network
}

// ChainID returns the id reported by the endpoint during the liveness check.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Connected reports whether the endpoint still answers. One round trip.
func (c *Client) Connected(ctx context.Context) bool {
	_, err := c.eth.BlockNumber(ctx)
	return err == nil
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return c.eth.BlockNumber(ctx)
}

// LatestHeader fetches the head block's header.
func (c *Client) LatestHeader(ctx context.Context) (*types.Header, error) {
	return c.eth.HeaderByNumber(ctx, nil)
}

// Eth exposes the underlying client for contract binding.
func (c *Client) Eth() *ethclient.Client {
	return c.eth
}

func (c *Client) Close() {
	c.rpc.Close()
}
