// Package kdf derives a deterministic BIP39 recovery phrase from a secret.
//
// # Pipeline
//
// A derivation runs two pure stages:
//
//   - [Stretch] hashes salt||key with SHA3-256, then re-hashes the digest
//     until Iterations hashes have been applied in total.
//
//   - [EntropyToMnemonic] encodes the 32-byte digest as a 24-word BIP39
//     sentence over the English wordlist (SHA-256 checksum, 11-bit groups).
//
// [Derive] composes both:
//
//	cfg, err := kdf.NewConfig([]byte("secret123"), 2)
//	if err != nil {
//	    return err
//	}
//	phrase, err := kdf.Derive(cfg)
//
// # Compatibility
//
// Outputs are reproducible only while the hash, the salt, the concatenation
// order and the wordlist stay fixed. [DefaultSalt] is part of the format;
// changing it changes every phrase.
//
// The iteration count is not bounded here. Callers that accept it from
// untrusted input must enforce their own ceiling.
package kdf
