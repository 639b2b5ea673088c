package kdf

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

const (
	// SaltSize is the salt length in bytes.
	SaltSize = 32
	// DigestSize is the SHA3-256 output length in bytes.
	DigestSize = 32
	// MnemonicWords is the phrase length produced for a DigestSize entropy.
	MnemonicWords = 24

	// chosen by dice roll
	defaultSaltHex = "afa2064c4afe76d976ddea35e79c04deac4c60d1dc372563bf43a3e93e47efcf"
)

// DefaultSalt is the salt compiled into every build. Arrays are copied on
// assignment, so callers cannot mutate it through a Config.
var DefaultSalt = mustDecodeSalt(defaultSaltHex)

// Config holds the inputs of one derivation.
type Config struct {
	Key        []byte
	Iterations uint32
	Salt       [SaltSize]byte
}

// Option customizes a Config built by NewConfig.
type Option func(*Config) error

// WithSalt replaces DefaultSalt. The salt must be exactly SaltSize bytes.
func WithSalt(salt []byte) Option {
	return func(c *Config) error {
		if len(salt) != SaltSize {
			return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
		}
		copy(c.Salt[:], salt)
		return nil
	}
}

// NewConfig builds a Config from raw secret bytes. The key is used as given,
// without Unicode normalization or trimming.
func NewConfig(key []byte, iterations uint32, opts ...Option) (Config, error) {
	cfg := Config{
		Key:        key,
		Iterations: iterations,
		Salt:       DefaultSalt,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, configError("new config", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig builds a Config from a secret string and a decimal iteration
// count as typed by a user.
func ParseConfig(secret, iterations string, opts ...Option) (Config, error) {
	n, err := ParseIterations(iterations)
	if err != nil {
		return Config{}, err
	}
	return NewConfig([]byte(secret), n, opts...)
}

// ParseIterations parses a decimal iteration count. Surrounding whitespace
// is ignored. Zero is rejected.
func ParseIterations(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, configError("parse iterations", fmt.Errorf("%w: %q is not a number", ErrInvalidIterations, s))
	}
	if n < 1 {
		return 0, configError("parse iterations", fmt.Errorf("%w: must be at least 1", ErrInvalidIterations))
	}
	return uint32(n), nil
}

// Validate reports whether the Config can be stretched.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return configError("validate", fmt.Errorf("%w: must be at least 1", ErrInvalidIterations))
	}
	return nil
}

func mustDecodeSalt(s string) [SaltSize]byte {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != SaltSize {
		panic("kdf: malformed built-in salt")
	}
	var salt [SaltSize]byte
	copy(salt[:], b)
	return salt
}
