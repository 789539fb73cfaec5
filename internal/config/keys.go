package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

const rsaKeyBits = 2048

// loadJWTKeys reads base64 encoded PEM keys from JWT_PRIVATE_KEY and
// JWT_PUBLIC_KEY. The public key alone is enough to verify tokens, which
// is the usual production setup. Outside production a missing public key
// is replaced by a freshly generated pair.
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateB64 := os.Getenv("JWT_PRIVATE_KEY")
	publicB64 := os.Getenv("JWT_PUBLIC_KEY")

	if publicB64 == "" {
		if c.IsProduction() {
			return nil, nil, errors.New("JWT_PUBLIC_KEY must be set in production")
		}
		slog.Info("generating an ephemeral RSA keypair, tokens will not survive a restart")
		return GenerateRSAKeyPair()
	}

	publicKey, err := decodeKey("JWT_PUBLIC_KEY", publicB64, parseRSAPublicKey)
	if err != nil {
		return nil, nil, err
	}
	if privateB64 == "" {
		return nil, publicKey, nil
	}

	privateKey, err := decodeKey("JWT_PRIVATE_KEY", privateB64, parseRSAPrivateKey)
	if err != nil {
		return nil, nil, err
	}
	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, nil, errors.New("JWT_PRIVATE_KEY does not match JWT_PUBLIC_KEY")
	}
	return privateKey, publicKey, nil
}

func decodeKey[K any](name, encoded string, parse func([]byte) (K, error)) (K, error) {
	var zero K
	pemData, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return zero, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	key, err := parse(pemData)
	if err != nil {
		return zero, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return key, nil
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}
	return privateKey, &privateKey.PublicKey, nil
}

// parseRSAPrivateKey accepts PKCS#1 and PKCS#8 PEM blocks
func parseRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("expected an RSA private key, got %T", parsed)
	}
	return key, nil
}

func parseRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("expected an RSA public key, got %T", parsed)
	}
	return key, nil
}
