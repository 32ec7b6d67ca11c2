package sig

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SigAlg represents a unified signature algorithm across the jwt lib and raw signing.
// The set is closed: API keys sign with ECDSA over P-256, wallet keys with Ed25519.
type SigAlg int

const (
	SigAlgUnknown SigAlg = iota

	// ECDSA over P-256 with SHA-256
	SigAlgES256

	// Ed25519
	SigAlgEdDSA
)

func (sa SigAlg) String() string {
	mapping := map[SigAlg]string{
		SigAlgES256: "ES256",
		SigAlgEdDSA: "EdDSA",
	}
	if alg, ok := mapping[sa]; ok {
		return alg
	}
	return "unknown"
}

// ---------- JWT package ---
func (sa SigAlg) ToGoJWT() (jwt.SigningMethod, error) {
	mapping := map[SigAlg]jwt.SigningMethod{
		SigAlgES256: jwt.SigningMethodES256,
		SigAlgEdDSA: jwt.SigningMethodEdDSA,
	}
	if alg, ok := mapping[sa]; ok {
		return alg, nil
	}
	return nil, fmt.Errorf("unknown alg: %s", sa)
}

// FromKey infers the algorithm from the private key type. ECDSA keys on a
// curve other than P-256 are rejected rather than mapped to a wider alg.
func FromKey(key crypto.PrivateKey) (SigAlg, error) {
	switch k := key.(type) {
	case *ecdsa.PrivateKey:
		if k.Curve != elliptic.P256() {
			return SigAlgUnknown, fmt.Errorf("unsupported ECDSA curve %s", k.Curve.Params().Name)
		}
		return SigAlgES256, nil
	case ed25519.PrivateKey:
		return SigAlgEdDSA, nil
	default:
		return SigAlgUnknown, fmt.Errorf("unsupported key type %T", key)
	}
}
