// Package headers assembles the authentication header sets attached to REST
// calls and streaming handshakes.
package headers

import (
	"fmt"
	"time"

	"github.com/axent-pl/apiauth/common"
	"github.com/axent-pl/apiauth/common/logx"
	"github.com/axent-pl/apiauth/token"
	"github.com/axent-pl/apiauth/wallet"
)

// Header names produced by the assemblers.
const (
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderWalletAuth         = "X-Wallet-Auth"
	HeaderCorrelationContext = "Correlation-Context"
)

const contentTypeJSON = "application/json"

// Options configures one REST header set.
type Options struct {
	// APIKeyID and APIKeySecret sign the bearer token.
	APIKeyID     string
	APIKeySecret string

	// WalletSecret, when set, adds the second-factor signature over Body.
	WalletSecret string

	// RequestMethod, RequestHost and RequestPath are required.
	RequestMethod string
	RequestHost   string
	RequestPath   string

	// Body is the request payload covered by the wallet signature.
	Body any

	// ExpiresIn overrides the bearer token validity window.
	ExpiresIn *time.Duration

	// Audience overrides the bearer token aud claim.
	Audience []string

	// Source and SourceVersion identify the SDK flavor for correlation.
	Source        string
	SourceVersion string
}

// GetAuthHeaders builds the complete header mapping for one REST call. The
// result is all-or-nothing: any failure returns a nil map. The wallet header
// is attached whenever a wallet secret is configured, read-only calls
// included.
func GetAuthHeaders(o Options) (map[string]string, error) {
	if o.RequestMethod == "" || o.RequestHost == "" || o.RequestPath == "" {
		return nil, fmt.Errorf("request method, host and path are required: %w", common.ErrMissingRequestContext)
	}

	bearer, err := token.Generate(token.Options{
		KeyID:         o.APIKeyID,
		KeySecret:     o.APIKeySecret,
		RequestMethod: o.RequestMethod,
		RequestHost:   o.RequestHost,
		RequestPath:   o.RequestPath,
		ExpiresIn:     o.ExpiresIn,
		Audience:      o.Audience,
	})
	if err != nil {
		logx.L().Debug("could not generate bearer token", "error", err)
		return nil, err
	}

	headers := map[string]string{
		HeaderAuthorization: "Bearer " + bearer,
		HeaderContentType:   contentTypeJSON,
	}

	if o.WalletSecret != "" {
		signature, err := wallet.Sign(wallet.Options{WalletSecret: o.WalletSecret, Body: o.Body})
		if err != nil {
			logx.L().Debug("could not generate wallet signature", "error", err)
			return nil, err
		}
		headers[HeaderWalletAuth] = signature
	}

	if o.Source != "" || o.SourceVersion != "" {
		headers[HeaderCorrelationContext] = EncodeCorrelation(o.Source, o.SourceVersion)
	}

	return headers, nil
}
