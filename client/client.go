// Package client wraps net/http with a transport that authenticates every
// outgoing request: a fresh bearer token per call, the wallet second factor
// when configured, and correlation data when the SDK identifies itself.
package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/axent-pl/apiauth/common/logx"
	"github.com/axent-pl/apiauth/headers"
	"github.com/go-softwarelab/common/pkg/to"
)

// New returns an HTTP client whose transport derives a complete
// authentication header set for each request before delegating to the base
// transport. Headers already set by the caller are left untouched.
func New(cfg Config, opts ...Option) *http.Client {
	o := to.OptionsWithDefault(options{base: http.DefaultTransport}, opts...)

	var transport http.RoundTripper = &authTransport{cfg: cfg, next: o.base}
	for i := len(o.interceptors) - 1; i >= 0; i-- {
		transport = o.interceptors[i](transport)
	}
	return &http.Client{Transport: transport}
}

// authTransport decorates a base RoundTripper with per-request
// authentication. Credentials are read once at construction and never
// mutated; every request recomputes its own claims, nonce and signatures.
type authTransport struct {
	cfg  Config
	next http.RoundTripper
}

// RoundTrip authenticates req and forwards it. The incoming request is never
// mutated; headers are merged into a clone with caller-set values winning.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	body, err := t.bufferBody(out)
	if err != nil {
		return nil, err
	}

	authHeaders, err := headers.GetAuthHeaders(headers.Options{
		APIKeyID:      t.cfg.APIKeyID,
		APIKeySecret:  t.cfg.APIKeySecret,
		WalletSecret:  t.cfg.WalletSecret,
		RequestMethod: req.Method,
		RequestHost:   req.URL.Host,
		RequestPath:   req.URL.Path,
		Body:          body,
		ExpiresIn:     t.cfg.ExpiresIn,
		Source:        t.cfg.Source,
		SourceVersion: t.cfg.SourceVersion,
	})
	if err != nil {
		return nil, err
	}

	for name, value := range authHeaders {
		if out.Header.Get(name) == "" {
			out.Header.Set(name, value)
		}
	}

	logx.L().Debug("authenticated request", "method", req.Method, "url", req.URL.String())
	return t.next.RoundTrip(out)
}

// bufferBody reads the request body so the wallet signature can cover it,
// then restores it for the onward trip. A request without a body, or a
// client without a wallet secret, leaves the body stream alone.
func (t *authTransport) bufferBody(req *http.Request) (any, error) {
	if t.cfg.WalletSecret == "" || req.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(req.Body)
	if closeErr := req.Body.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(data))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	req.ContentLength = int64(len(data))
	if len(data) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}
