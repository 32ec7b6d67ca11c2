package keys_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"testing"

	"github.com/axent-pl/apiauth/common"
	"github.com/axent-pl/apiauth/common/sig"
	"github.com/axent-pl/apiauth/keys"
)

func pemSEC1(t *testing.T, curve elliptic.Curve) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		t.Fatalf("could not generate EC key: %v", err)
	}
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("could not marshal EC key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}))
}

func pemPKCS8(t *testing.T, key any) string {
	t.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("could not marshal PKCS8 key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

func base64Ed25519(t *testing.T) string {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("could not generate Ed25519 key: %v", err)
	}
	return base64.StdEncoding.EncodeToString(priv)
}

func base64SplicedEd25519(t *testing.T) string {
	t.Helper()
	_, first, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("could not generate Ed25519 key: %v", err)
	}
	_, second, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("could not generate Ed25519 key: %v", err)
	}
	spliced := append([]byte{}, first.Seed()...)
	spliced = append(spliced, second.Public().(ed25519.PublicKey)...)
	return base64.StdEncoding.EncodeToString(spliced)
}

func TestResolve(t *testing.T) {
	ecdsaKeyP256, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	rsaKey2048, _ := rsa.GenerateKey(rand.Reader, 2048)
	_, ed25519Key, _ := ed25519.GenerateKey(rand.Reader)

	tests := []struct {
		name      string
		secret    string
		wantAlg   sig.SigAlg
		wantErrIs error
	}{
		{
			name:    "EC P-256 SEC1 PEM",
			secret:  pemSEC1(t, elliptic.P256()),
			wantAlg: sig.SigAlgES256,
		},
		{
			name:    "EC P-256 PKCS8 PEM",
			secret:  pemPKCS8(t, ecdsaKeyP256),
			wantAlg: sig.SigAlgES256,
		},
		{
			name:    "Ed25519 base64",
			secret:  base64Ed25519(t),
			wantAlg: sig.SigAlgEdDSA,
		},
		{
			name:      "EC P-384 PEM",
			secret:    pemSEC1(t, elliptic.P384()),
			wantErrIs: common.ErrUnsupportedCurve,
		},
		{
			name:      "EC P-521 PEM",
			secret:    pemSEC1(t, elliptic.P521()),
			wantErrIs: common.ErrUnsupportedCurve,
		},
		{
			name:      "RSA PKCS8 PEM",
			secret:    pemPKCS8(t, rsaKey2048),
			wantErrIs: common.ErrKeyFormat,
		},
		{
			name:      "Ed25519 PKCS8 PEM",
			secret:    pemPKCS8(t, ed25519Key),
			wantErrIs: common.ErrKeyFormat,
		},
		{
			name:      "base64 of wrong length",
			secret:    base64.StdEncoding.EncodeToString([]byte("short seed")),
			wantErrIs: common.ErrKeyFormat,
		},
		{
			name:      "embedded public key does not match the seed",
			secret:    base64SplicedEd25519(t),
			wantErrIs: common.ErrKeyFormat,
		},
		{
			name:      "not PEM nor base64",
			secret:    "not-a-key!!",
			wantErrIs: common.ErrKeyFormat,
		},
		{
			name:      "empty",
			secret:    "",
			wantErrIs: common.ErrKeyFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := keys.Resolve(tt.secret)
			if tt.wantErrIs != nil {
				if gotErr == nil {
					t.Fatal("Resolve() succeeded unexpectedly")
				}
				if !errors.Is(gotErr, tt.wantErrIs) {
					t.Errorf("Resolve() error = %v, want %v", gotErr, tt.wantErrIs)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("Resolve() failed: %v", gotErr)
			}
			if got.Alg != tt.wantAlg {
				t.Errorf("Resolve() alg = %v, want %v", got.Alg, tt.wantAlg)
			}
			if got.Key == nil {
				t.Error("Resolve() returned a nil key")
			}
		})
	}
}

func TestResolve_Ed25519SeedDeterminesKey(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(rand.Reader)
	secret := base64.StdEncoding.EncodeToString(priv)

	got, err := keys.Resolve(secret)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	key, ok := got.Key.(ed25519.PrivateKey)
	if !ok {
		t.Fatalf("Resolve() key type = %T, want ed25519.PrivateKey", got.Key)
	}
	if !key.Public().(ed25519.PublicKey).Equal(pub) {
		t.Error("resolved key does not derive the original public key")
	}
}

func TestResolve_FamiliesNeverCoerced(t *testing.T) {
	// A valid EC secret must never resolve to EdDSA and vice versa.
	ecResolved, err := keys.Resolve(pemSEC1(t, elliptic.P256()))
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if ecResolved.Alg != sig.SigAlgES256 {
		t.Errorf("EC secret resolved to %v", ecResolved.Alg)
	}
	edResolved, err := keys.Resolve(base64Ed25519(t))
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if edResolved.Alg != sig.SigAlgEdDSA {
		t.Errorf("Ed25519 secret resolved to %v", edResolved.Alg)
	}
}
