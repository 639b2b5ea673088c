package kdf

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Digest is the output of Stretch.
type Digest [DigestSize]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Stretch hashes salt||key once with SHA3-256, then re-hashes the result
// Iterations-1 more times.
func Stretch(cfg Config) (Digest, error) {
	if err := cfg.Validate(); err != nil {
		return Digest{}, err
	}

	message := make([]byte, 0, len(cfg.Salt)+len(cfg.Key))
	message = append(message, cfg.Salt[:]...)
	message = append(message, cfg.Key...)
	defer zeroBytes(message)

	d := Digest(sha3.Sum256(message))
	for i := uint32(1); i < cfg.Iterations; i++ {
		d = sha3.Sum256(d[:])
	}
	return d, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
