// Package apiauth authenticates SDK calls to the platform API. It mints
// short-lived signed bearer tokens, assembles per-request authentication
// headers for REST calls and streaming handshakes, and computes the wallet
// second-factor signature for operations touching custodial state.
//
// The root package is a facade over the operational subpackages; callers
// needing the authenticated HTTP transport or the key-export utilities use
// the client and export subpackages directly.
package apiauth

import (
	"github.com/axent-pl/apiauth/headers"
	"github.com/axent-pl/apiauth/token"
	"github.com/axent-pl/apiauth/wallet"
)

// SDKVersion is the library version reported in correlation data.
const SDKVersion = headers.SDKVersion

// JWTOptions configures GenerateJWT.
type JWTOptions = token.Options

// AuthHeadersOptions configures GetAuthHeaders.
type AuthHeadersOptions = headers.Options

// WebSocketAuthHeadersOptions configures GetWebSocketAuthHeaders.
type WebSocketAuthHeadersOptions = headers.WebSocketOptions

// WalletSignOptions configures SignWalletPayload.
type WalletSignOptions = wallet.Options

// GenerateJWT mints a signed bearer token for one REST call or one streaming
// connection.
func GenerateJWT(o JWTOptions) (string, error) {
	return token.Generate(o)
}

// GetAuthHeaders builds the complete authentication header mapping for one
// REST call.
func GetAuthHeaders(o AuthHeadersOptions) (map[string]string, error) {
	return headers.GetAuthHeaders(o)
}

// GetWebSocketAuthHeaders builds the authentication header mapping for one
// streaming subscription handshake.
func GetWebSocketAuthHeaders(o WebSocketAuthHeadersOptions) (map[string]string, error) {
	return headers.GetWebSocketAuthHeaders(o)
}

// SignWalletPayload computes the wallet second-factor signature over the
// canonicalized request body.
func SignWalletPayload(o WalletSignOptions) (string, error) {
	return wallet.Sign(o)
}
