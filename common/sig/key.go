package sig

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
)

// structure to hold a key used to produce signatures
type SignatureKey struct {
	Kid string
	Key crypto.PrivateKey
	Alg SigAlg
}

// SignBytes signs raw bytes with the algorithm bound to the key. ECDSA keys
// sign the SHA-256 digest and emit the fixed-width r||s form used by JOSE;
// Ed25519 keys sign the message directly.
func (k *SignatureKey) SignBytes(data []byte) ([]byte, error) {
	if k.Key == nil {
		return nil, errors.New("nil key")
	}
	switch pk := k.Key.(type) {
	case *ecdsa.PrivateKey:
		digest := sha256.Sum256(data)
		r, s, err := ecdsa.Sign(rand.Reader, pk, digest[:])
		if err != nil {
			return nil, fmt.Errorf("could not sign payload: %w", err)
		}
		size := (pk.Curve.Params().BitSize + 7) / 8
		out := make([]byte, 2*size)
		r.FillBytes(out[:size])
		s.FillBytes(out[size:])
		return out, nil
	case ed25519.PrivateKey:
		return ed25519.Sign(pk, data), nil
	default:
		return nil, fmt.Errorf("unsupported key type: %T", pk)
	}
}

// PublicKey returns the verification half of the key.
func (k *SignatureKey) PublicKey() (crypto.PublicKey, error) {
	signer, ok := k.Key.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("unsupported key type: %T", k.Key)
	}
	return signer.Public(), nil
}
