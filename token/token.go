// Package token mints the short-lived signed bearer credential attached to
// every platform API call.
package token

import (
	"crypto/rand"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/axent-pl/apiauth/common"
	"github.com/axent-pl/apiauth/keys"
	"github.com/go-softwarelab/common/pkg/to"
	jwtx "github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer is the identity the platform expects in the iss claim.
	Issuer = "cdp"

	// DefaultExpiresIn bounds token validity when no override is given.
	DefaultExpiresIn = 2 * time.Minute

	nonceLength = 16
)

var defaultAudience = []string{"cdp_service"}

var allowedMethods = map[string]struct{}{
	"GET":    {},
	"POST":   {},
	"PUT":    {},
	"DELETE": {},
	"PATCH":  {},
}

// Options carries everything needed to mint one bearer token.
type Options struct {
	// KeyID identifies the API key; verifiers use it to look up the public key.
	KeyID string
	// KeySecret is the signing key material, PEM EC P-256 or base64 Ed25519.
	KeySecret string

	// RequestMethod, RequestHost and RequestPath bind the token to a single
	// REST call. Either all three are set or, for streaming tokens, none.
	RequestMethod string
	RequestHost   string
	RequestPath   string

	// ExpiresIn overrides the default validity window.
	ExpiresIn *time.Duration

	// Audience overrides the default aud claim.
	Audience []string
}

// Generate mints a compact signed bearer token. The signature algorithm
// follows the resolved key family: ES256 for EC P-256 secrets, EdDSA for
// Ed25519 secrets. Every call draws a fresh nonce and recomputes the
// validity window; tokens are never cached or reused.
func Generate(o Options) (string, error) {
	if o.KeyID == "" || o.KeySecret == "" {
		return "", fmt.Errorf("key id and key secret are required: %w", common.ErrInvalidInput)
	}

	key, err := keys.Resolve(o.KeySecret)
	if err != nil {
		return "", err
	}
	key.Kid = o.KeyID

	uri, err := requestURI(o.RequestMethod, o.RequestHost, o.RequestPath)
	if err != nil {
		return "", err
	}

	now := time.Now()
	expiresIn := to.ValueOr(o.ExpiresIn, DefaultExpiresIn)
	audience := o.Audience
	if len(audience) == 0 {
		audience = defaultAudience
	}

	claims := jwtx.MapClaims{
		"sub": o.KeyID,
		"iss": Issuer,
		"aud": audience,
		"nbf": now.Unix(),
		"exp": now.Add(expiresIn).Unix(),
	}
	if uri != "" {
		claims["uri"] = uri
	}

	nonce, err := generateNonce()
	if err != nil {
		return "", err
	}

	signingMethod, err := key.Alg.ToGoJWT()
	if err != nil {
		return "", fmt.Errorf("could not sign claims: %w", err)
	}
	token := jwtx.NewWithClaims(signingMethod, claims)
	token.Header["kid"] = key.Kid
	token.Header["nonce"] = nonce

	signed, err := token.SignedString(key.Key)
	if err != nil {
		return "", fmt.Errorf("could not sign claims: %w", err)
	}
	return signed, nil
}

// requestURI builds the uri claim from the request context. All three parts
// must be supplied together; a token minted with none of them authorizes a
// streaming connection and carries no uri claim at all.
func requestURI(method, host, path string) (string, error) {
	if method == "" && host == "" && path == "" {
		return "", nil
	}
	if method == "" || host == "" || path == "" {
		return "", fmt.Errorf("method, host and path must be supplied together: %w", common.ErrInvalidClaims)
	}
	method = strings.ToUpper(method)
	if _, ok := allowedMethods[method]; !ok {
		return "", fmt.Errorf("unsupported request method %q: %w", method, common.ErrInvalidClaims)
	}
	// Parsing the joined host and path strips a scheme prefix and drops
	// query and fragment, matching what verifiers reconstruct server-side.
	joined := host + path
	if !strings.Contains(host, "://") {
		joined = "https://" + joined
	}
	parsed, err := url.Parse(joined)
	if err != nil {
		return "", fmt.Errorf("could not parse request host and path: %w", common.ErrInvalidClaims)
	}
	return fmt.Sprintf("%s %s%s", method, parsed.Host, parsed.Path), nil
}

func generateNonce() (string, error) {
	const digits = "0123456789"
	buf := make([]byte, nonceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate nonce: %w", err)
	}
	for i, b := range buf {
		buf[i] = digits[int(b)%len(digits)]
	}
	return string(buf), nil
}
