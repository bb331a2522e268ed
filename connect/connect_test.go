package connect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"evm-connect/chain"
)

const sampleDescriptor = `{
	"bsc": {
		"address": "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"abi": [
			{"type": "function", "name": "merkleRoot", "inputs": [], "outputs": [{"name": "", "type": "bytes32"}], "stateMutability": "view"}
		]
	}
}`

func writeDescriptor(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contract_info.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// serveBSC stubs a BSC testnet endpoint and counts the requests it sees.
func serveBSC(t *testing.T, requests *int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(requests, 1)
		var req struct {
			ID json.RawMessage `json:"id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0", "id": req.ID, "result": "0x61",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWithContractPair(t *testing.T) {
	var requests int64
	srv := serveBSC(t, &requests)
	n := chain.Network{Name: "bsc-test", Endpoint: srv.URL, ChainID: 97, POA: true}

	client, c, err := withContract(context.Background(), writeDescriptor(t, sampleDescriptor), n, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, uint64(97), client.ChainID().Uint64())
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BEAed", c.Address())
	assert.Equal(t, 1, c.ABIEntries())
	assert.EqualValues(t, 1, atomic.LoadInt64(&requests))
}

func TestWithContractMissingKeyFailsBeforeDial(t *testing.T) {
	var requests int64
	srv := serveBSC(t, &requests)
	n := chain.Network{Name: "bsc-test", Endpoint: srv.URL, ChainID: 97, POA: true}

	_, _, err := withContract(context.Background(), writeDescriptor(t, `{"eth": {"address": "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "abi": [{}]}}`), n, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no "bsc" entry`)
	assert.Zero(t, atomic.LoadInt64(&requests))
}

func TestWithContractMissingFile(t *testing.T) {
	var requests int64
	srv := serveBSC(t, &requests)
	n := chain.Network{Name: "bsc-test", Endpoint: srv.URL, ChainID: 97, POA: true}

	_, _, err := withContract(context.Background(), filepath.Join(t.TempDir(), "absent.json"), n, zap.NewNop())
	require.Error(t, err)
	assert.Zero(t, atomic.LoadInt64(&requests))
}

func TestWithContractUnreachableEndpoint(t *testing.T) {
	var requests int64
	srv := serveBSC(t, &requests)
	url := srv.URL
	srv.Close()
	n := chain.Network{Name: "bsc-down", Endpoint: url, ChainID: 97, POA: true}

	_, _, err := withContract(context.Background(), writeDescriptor(t, sampleDescriptor), n, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}
