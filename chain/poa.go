package chain

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// "0x" plus the 32-byte clique vanity prefix.
const vanityHexLen = 2 + 2*32

// POATransport relaxes header decoding for proof-of-authority chains. Their
// headers append signer seals to extraData, so the field runs past the
// 32-byte vanity prefix strict validators accept. The transport sits below
// the RPC client and cuts oversized extraData in responses back to the
// prefix before anything decodes them.
type POATransport struct {
	base http.RoundTripper
}

// NewPOATransport wraps base, defaulting to http.DefaultTransport.
func NewPOATransport(base http.RoundTripper) *POATransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &POATransport{base: base}
}

func (t *POATransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	if fixed, changed := sanitizeExtraData(body); changed {
		body = fixed
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	resp.Header.Del("Content-Length")
	return resp, nil
}

// sanitizeExtraData trims an oversized extraData member in a JSON-RPC result
// object. Responses without one pass through untouched.
func sanitizeExtraData(body []byte) ([]byte, bool) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false
	}
	rawResult, ok := envelope["result"]
	if !ok {
		return nil, false
	}
	var result map[string]json.RawMessage
	if err := json.Unmarshal(rawResult, &result); err != nil {
		return nil, false
	}
	rawExtra, ok := result["extraData"]
	if !ok {
		return nil, false
	}
	var extra string
	if err := json.Unmarshal(rawExtra, &extra); err != nil {
		return nil, false
	}
	if len(extra) <= vanityHexLen {
		return nil, false
	}
	result["extraData"], _ = json.Marshal(extra[:vanityHexLen])
	fixedResult, err := json.Marshal(result)
	if err != nil {
		return nil, false
	}
	envelope["result"] = fixedResult
	fixed, err := json.Marshal(envelope)
	if err != nil {
		return nil, false
	}
	return fixed, true
}
