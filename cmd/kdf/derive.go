package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kdf/internal/kdf"
)

func (a *app) runDerive(cmd *cobra.Command, args []string) error {
	iterations, err := a.resolveIterations(args)
	if err != nil {
		return err
	}

	secret, err := a.secret(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to get secret: %w", err)
	}
	defer zeroBytes(secret)

	if len(secret) == 0 {
		return fmt.Errorf("secret cannot be empty")
	}

	cfg, err := kdf.NewConfig(secret, iterations)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.log.Debug("deriving", "iterations", iterations)
	start := time.Now()

	digest, phrase, err := kdf.DeriveDigest(cfg)
	if err != nil {
		return fmt.Errorf("derivation failed: %w", err)
	}

	a.log.Debug("derived", "iterations", iterations, "words", len(strings.Fields(phrase)), "duration", time.Since(start))

	w := bufio.NewWriter(cmd.OutOrStdout())
	if a.showEntropy {
		fmt.Fprintf(w, "Entropy: %s\n", digest)
	}
	fmt.Fprintf(w, "BIP39: %s\n", phrase)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
