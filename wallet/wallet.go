// Package wallet computes the second-factor signature proving authorization
// to mutate custodial account state.
package wallet

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/axent-pl/apiauth/common"
	"github.com/axent-pl/apiauth/common/sig"
	"github.com/axent-pl/apiauth/jsonx"
	"github.com/axent-pl/apiauth/keys"
)

// Options carries the wallet secret and the request payload to sign.
type Options struct {
	// WalletSecret is the base64-encoded Ed25519 key pair.
	WalletSecret string
	// Body is the request payload. Raw JSON ([]byte, json.RawMessage) is
	// canonicalized as-is; any other value is serialized first. A nil body
	// signs the canonical empty object.
	Body any
}

// Sign canonicalizes the request body and signs it with the wallet key,
// returning the signature as lowercase hex. The result is stable under any
// reordering of the body's keys. A wallet secret that resolves to anything
// but an Ed25519 key is rejected.
func Sign(o Options) (string, error) {
	if o.WalletSecret == "" {
		return "", fmt.Errorf("wallet secret is required: %w", common.ErrInvalidInput)
	}
	key, err := keys.Resolve(o.WalletSecret)
	if err != nil {
		return "", err
	}
	if key.Alg != sig.SigAlgEdDSA {
		return "", fmt.Errorf("wallet secret must be an Ed25519 key: %w", common.ErrKeyFormat)
	}
	canonical, err := CanonicalBody(o.Body)
	if err != nil {
		return "", err
	}
	signature, err := key.SignBytes(canonical)
	if err != nil {
		return "", fmt.Errorf("could not sign request body: %w", err)
	}
	return hex.EncodeToString(signature), nil
}

// CanonicalBody returns the exact bytes Sign signs for a given body.
func CanonicalBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return []byte("{}"), nil
	case json.RawMessage:
		return jsonx.CanonicalizeJSON(b)
	case []byte:
		return jsonx.CanonicalizeJSON(b)
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not encode request body: %w", err)
		}
		return jsonx.CanonicalizeJSON(raw)
	}
}
