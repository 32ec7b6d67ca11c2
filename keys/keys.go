// Package keys classifies opaque secret material into one of the two key
// families the platform accepts and binds it to its signature algorithm.
package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"

	"github.com/axent-pl/apiauth/common"
	"github.com/axent-pl/apiauth/common/sig"
)

// Resolve sniffs the encoding of a secret and returns the signing key bound
// to its algorithm. PEM-encoded EC keys on P-256 resolve to ES256;
// base64-encoded 64-byte Ed25519 key pairs (32-byte seed followed by the
// 32-byte public key) resolve to EdDSA. The two families are never coerced
// into one another.
func Resolve(secret string) (sig.SignatureKey, error) {
	if secret == "" {
		return sig.SignatureKey{}, fmt.Errorf("empty secret: %w", common.ErrKeyFormat)
	}
	if block, _ := pem.Decode([]byte(secret)); block != nil {
		key, err := parsePEM(block)
		if err != nil {
			return sig.SignatureKey{}, err
		}
		return sig.SignatureKey{Key: key, Alg: sig.SigAlgES256}, nil
	}
	key, err := parseEd25519(secret)
	if err != nil {
		return sig.SignatureKey{}, err
	}
	return sig.SignatureKey{Key: key, Alg: sig.SigAlgEdDSA}, nil
}

func parsePEM(block *pem.Block) (*ecdsa.PrivateKey, error) {
	var parsed any
	var err error
	switch block.Type {
	case "EC PRIVATE KEY":
		parsed, err = x509.ParseECPrivateKey(block.Bytes)
	case "PRIVATE KEY":
		parsed, err = x509.ParsePKCS8PrivateKey(block.Bytes)
	default:
		return nil, fmt.Errorf("unsupported PEM block %q: %w", block.Type, common.ErrKeyFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse PEM key: %w", common.ErrKeyFormat)
	}
	ecKey, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("PEM key of type %T: %w", parsed, common.ErrKeyFormat)
	}
	if ecKey.Curve != elliptic.P256() {
		return nil, fmt.Errorf("EC key on curve %s: %w", ecKey.Curve.Params().Name, common.ErrUnsupportedCurve)
	}
	return ecKey, nil
}

func parseEd25519(secret string) (ed25519.PrivateKey, error) {
	decoded, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("secret is neither PEM nor base64: %w", common.ErrKeyFormat)
	}
	if len(decoded) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("decoded key is %d bytes, want %d: %w", len(decoded), ed25519.PrivateKeySize, common.ErrKeyFormat)
	}
	key := ed25519.NewKeyFromSeed(decoded[:ed25519.SeedSize])
	// The trailing 32 bytes carry the public key; a mismatch with the one the
	// seed derives means the material is corrupt or spliced together.
	if !key.Public().(ed25519.PublicKey).Equal(ed25519.PublicKey(decoded[ed25519.SeedSize:])) {
		return nil, fmt.Errorf("embedded public key does not match the seed: %w", common.ErrKeyFormat)
	}
	return key, nil
}
