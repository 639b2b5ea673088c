package kdf

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// Vectors computed over hex(salt||"secret123") with an independent SHA3-256 tool.
const (
	secret123Iter1 = "69668080f55b44c865d8d645926e844cf22b5ecc43a5f64c29ed69a5a89ad744"
	secret123Iter2 = "3f7246827d8bb72a8366537692ee4c78a8db66f930d1bef4f496a4314d99e25e"
)

func mustConfig(t *testing.T, secret string, iterations uint32, opts ...Option) Config {
	t.Helper()
	cfg, err := NewConfig([]byte(secret), iterations, opts...)
	require.NoError(t, err)
	return cfg
}

func TestStretch_Vectors(t *testing.T) {
	tests := []struct {
		name       string
		iterations uint32
		want       string
	}{
		{name: "one iteration", iterations: 1, want: secret123Iter1},
		{name: "two iterations", iterations: 2, want: secret123Iter2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Stretch(mustConfig(t, "secret123", tt.iterations))
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestStretch_SingleIterationHashesSaltThenKey(t *testing.T) {
	cfg := mustConfig(t, "secret123", 1)

	message := append(append([]byte{}, DefaultSalt[:]...), "secret123"...)
	want := sha3.Sum256(message)

	d, err := Stretch(cfg)
	require.NoError(t, err)
	assert.Equal(t, Digest(want), d)
}

func TestStretch_Deterministic(t *testing.T) {
	for _, secret := range []string{"", "secret123", "päßwörd", "\x00\xff\x10"} {
		cfg := mustConfig(t, secret, 17)

		first, err := Stretch(cfg)
		require.NoError(t, err)
		second, err := Stretch(cfg)
		require.NoError(t, err)

		assert.Equal(t, first, second, "secret %q", secret)
	}
}

func TestStretch_Chaining(t *testing.T) {
	for n := uint32(1); n <= 8; n++ {
		prev, err := Stretch(mustConfig(t, "chain", n))
		require.NoError(t, err)
		next, err := Stretch(mustConfig(t, "chain", n+1))
		require.NoError(t, err)

		assert.Equal(t, Digest(sha3.Sum256(prev[:])), next, "n=%d", n)
	}
}

func TestStretch_SaltIsSignificant(t *testing.T) {
	other := make([]byte, SaltSize)
	for i := range other {
		other[i] = byte(i)
	}

	withDefault, err := Stretch(mustConfig(t, "secret123", 3))
	require.NoError(t, err)
	withOther, err := Stretch(mustConfig(t, "secret123", 3, WithSalt(other)))
	require.NoError(t, err)

	assert.NotEqual(t, withDefault, withOther)
}

func TestStretch_KeyNotNormalized(t *testing.T) {
	a, err := Stretch(mustConfig(t, "secret123", 1))
	require.NoError(t, err)
	b, err := Stretch(mustConfig(t, "secret123 ", 1))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestStretch_RejectsZeroIterations(t *testing.T) {
	cfg := Config{Key: []byte("secret123"), Salt: DefaultSalt}

	_, err := Stretch(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidIterations)
	assert.True(t, IsConfiguration(err))
}

func TestStretch_DoesNotMutateKey(t *testing.T) {
	key := []byte("secret123")
	cfg := mustConfig(t, "", 4)
	cfg.Key = key

	_, err := Stretch(cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret123"), key)
}

func TestDefaultSalt(t *testing.T) {
	assert.Equal(t, defaultSaltHex, hex.EncodeToString(DefaultSalt[:]))
	assert.Len(t, DefaultSalt, SaltSize)
}
