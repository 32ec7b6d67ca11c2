package headers

import (
	"time"

	"github.com/axent-pl/apiauth/common/logx"
	"github.com/axent-pl/apiauth/token"
)

// WebSocketOptions configures one streaming handshake header set. It has no
// request method, host or path fields: a streaming token authorizes the
// connection, not a single endpoint.
type WebSocketOptions struct {
	// APIKeyID and APIKeySecret sign the bearer token.
	APIKeyID     string
	APIKeySecret string

	// ExpiresIn overrides the bearer token validity window.
	ExpiresIn *time.Duration

	// Audience overrides the bearer token aud claim.
	Audience []string

	// Source and SourceVersion identify the SDK flavor for correlation.
	Source        string
	SourceVersion string
}

// GetWebSocketAuthHeaders builds the header mapping for a streaming
// subscription handshake. The bearer token carries no uri claim and a wallet
// signature is never attached; streaming channels are subscribe-only.
func GetWebSocketAuthHeaders(o WebSocketOptions) (map[string]string, error) {
	bearer, err := token.Generate(token.Options{
		KeyID:     o.APIKeyID,
		KeySecret: o.APIKeySecret,
		ExpiresIn: o.ExpiresIn,
		Audience:  o.Audience,
	})
	if err != nil {
		logx.L().Debug("could not generate bearer token", "error", err)
		return nil, err
	}

	headers := map[string]string{
		HeaderAuthorization: "Bearer " + bearer,
		HeaderContentType:   contentTypeJSON,
	}

	if o.Source != "" || o.SourceVersion != "" {
		headers[HeaderCorrelationContext] = EncodeCorrelation(o.Source, o.SourceVersion)
	}

	return headers, nil
}
