// Package keygen produces random key material and renders it as text.
package keygen

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"genrs/domain"
)

// RandomBytes returns n cryptographically random bytes from the OS source.
// A failing OS source is fatal and surfaces as a RandomSourceError.
func RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, domain.NewInvalidLengthError(n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, domain.NewRandomSourceError(err)
	}
	return b, nil
}

// Encode renders key bytes in the requested text format.
func Encode(key []byte, format domain.Format) (string, error) {
	switch format {
	case domain.FormatHex:
		return hex.EncodeToString(key), nil
	case domain.FormatBase64:
		return base64.StdEncoding.EncodeToString(key), nil
	default:
		return "", fmt.Errorf("unsupported encoding format: %s", format)
	}
}

// Generate runs the full key pipeline: resolve the byte length, draw random
// bytes and encode them.
func Generate(req domain.KeyRequest) (string, error) {
	length, err := ResolveLength(req.Preset, req.Length)
	if err != nil {
		return "", err
	}
	key, err := RandomBytes(length)
	if err != nil {
		return "", err
	}
	return Encode(key, req.Format)
}
