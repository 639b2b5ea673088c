package kdf

// Derive stretches cfg and encodes the digest as a 24-word phrase.
func Derive(cfg Config) (string, error) {
	_, mnemonic, err := DeriveDigest(cfg)
	return mnemonic, err
}

// DeriveDigest is Derive but also returns the intermediate digest, which is
// the phrase's entropy.
func DeriveDigest(cfg Config) (Digest, string, error) {
	d, err := Stretch(cfg)
	if err != nil {
		return Digest{}, "", err
	}
	mnemonic, err := EntropyToMnemonic(d[:])
	if err != nil {
		return Digest{}, "", err
	}
	return d, mnemonic, nil
}
