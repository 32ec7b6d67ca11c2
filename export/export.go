// Package export implements the key-export utilities: an RSA-4096 envelope
// key pair for receiving encrypted key material from the platform, OAEP
// decryption of that material, and formatting of decrypted Solana seeds for
// wallet import.
package export

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/axent-pl/apiauth/common"
	"github.com/mr-tron/base58"
)

const keyPairBits = 4096

// GenerateKeyPair mints a fresh RSA-4096 encryption key pair. The public key
// is base64 PKIX/SPKI DER, handed to the platform to encrypt exported
// material; the private key is base64 PKCS#1 DER, kept by the caller for
// Decrypt.
func GenerateKeyPair() (publicB64, privateB64 string, err error) {
	key, err := rsa.GenerateKey(rand.Reader, keyPairBits)
	if err != nil {
		return "", "", fmt.Errorf("could not generate export key pair: %w", err)
	}

	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("could not encode export public key: %w", err)
	}
	privateDER := x509.MarshalPKCS1PrivateKey(key)

	return base64.StdEncoding.EncodeToString(publicDER),
		base64.StdEncoding.EncodeToString(privateDER), nil
}

// Decrypt unwraps platform-encrypted key material with the private half of a
// GenerateKeyPair pair. The ciphertext is RSA-OAEP with SHA-256; the
// plaintext comes back hex-encoded.
func Decrypt(privateB64, cipherB64 string) (string, error) {
	privateDER, err := base64.StdEncoding.DecodeString(privateB64)
	if err != nil {
		return "", fmt.Errorf("private key is not base64: %w", common.ErrKeyFormat)
	}
	key, err := x509.ParsePKCS1PrivateKey(privateDER)
	if err != nil {
		return "", fmt.Errorf("private key is not PKCS#1 DER: %w", common.ErrKeyFormat)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(cipherB64)
	if err != nil {
		return "", fmt.Errorf("ciphertext is not base64: %w", common.ErrInvalidInput)
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, key, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("could not decrypt key material: %w", err)
	}
	return hex.EncodeToString(plaintext), nil
}

// FormatSolanaPrivateKey turns a decrypted 32-byte hex seed into the base58
// seed-plus-public-key form Solana wallet apps import.
func FormatSolanaPrivateKey(hexSeed string) (string, error) {
	seed, err := hex.DecodeString(hexSeed)
	if err != nil {
		return "", fmt.Errorf("seed is not hex: %w", common.ErrKeyFormat)
	}
	if len(seed) != ed25519.SeedSize {
		return "", fmt.Errorf("seed is %d bytes, want %d: %w", len(seed), ed25519.SeedSize, common.ErrKeyFormat)
	}
	// An ed25519 private key is already seed || public key, the exact layout
	// wallet apps expect.
	key := ed25519.NewKeyFromSeed(seed)
	return base58.Encode(key), nil
}
