package kdf

import (
	"errors"
	"fmt"
)

// ErrorKind classifies derivation failures.
type ErrorKind int

const (
	// KindConfiguration covers bad iteration counts and salts.
	KindConfiguration ErrorKind = iota + 1
	// KindEncoding covers entropy and mnemonic encoding failures.
	KindEncoding
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindEncoding:
		return "encoding"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidIterations is returned when the iteration count is not a
	// positive integer or exceeds a caller-imposed ceiling.
	ErrInvalidIterations = errors.New("invalid iteration count")

	// ErrInvalidSalt is returned when a salt is not SaltSize bytes.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrEntropyLength is returned when entropy is not 128, 160, 192, 224
	// or 256 bits long.
	ErrEntropyLength = errors.New("unsupported entropy length")

	// ErrInvalidMnemonic is returned when a phrase contains unknown words,
	// has the wrong word count, or fails its checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// Error is the error type returned by this package.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func configError(op string, err error) error {
	return &Error{Kind: KindConfiguration, Op: op, Err: err}
}

func encodingError(op string, err error) error {
	return &Error{Kind: KindEncoding, Op: op, Err: err}
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return hasKind(err, KindConfiguration)
}

// IsEncoding reports whether err is an encoding error.
func IsEncoding(err error) bool {
	return hasKind(err, KindEncoding)
}

func hasKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
