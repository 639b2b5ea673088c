package kdf

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39"
)

// English is the only wordlist used. bip39.SetWordList is never called, so
// the package-level list inside go-bip39 stays the English one.
var wordIndex = sync.OnceValue(func() map[string]int {
	words := bip39.GetWordList()
	idx := make(map[string]int, len(words))
	for i, w := range words {
		idx[w] = i
	}
	return idx
})

// EntropyToMnemonic encodes entropy as a BIP39 sentence. Entropy must be
// 16, 20, 24, 28 or 32 bytes; 32 bytes yield MnemonicWords words.
func EntropyToMnemonic(entropy []byte) (string, error) {
	if !validEntropyLength(len(entropy)) {
		return "", encodingError("entropy to mnemonic",
			fmt.Errorf("%w: %d bits", ErrEntropyLength, len(entropy)*8))
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", encodingError("entropy to mnemonic", err)
	}
	return mnemonic, nil
}

// MnemonicToEntropy decodes a BIP39 sentence back to its entropy. Case and
// runs of whitespace are normalized before decoding.
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	words := strings.Fields(strings.ToLower(mnemonic))
	if len(words) == 0 {
		return nil, encodingError("mnemonic to entropy", fmt.Errorf("%w: empty phrase", ErrInvalidMnemonic))
	}
	for i, w := range words {
		if !IsWord(w) {
			return nil, encodingError("mnemonic to entropy",
				fmt.Errorf("%w: word %d (%q) is not in the wordlist", ErrInvalidMnemonic, i+1, w))
		}
	}

	entropy, err := bip39.EntropyFromMnemonic(strings.Join(words, " "))
	if err != nil {
		return nil, encodingError("mnemonic to entropy", fmt.Errorf("%w: %v", ErrInvalidMnemonic, err))
	}
	return entropy, nil
}

// IsWord reports whether word is in the English BIP39 wordlist.
func IsWord(word string) bool {
	_, ok := wordIndex()[word]
	return ok
}

func validEntropyLength(n int) bool {
	switch n * 8 {
	case 128, 160, 192, 224, 256:
		return true
	}
	return false
}
