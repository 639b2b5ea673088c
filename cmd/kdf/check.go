package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"kdf/internal/kdf"
)

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	var phrase string
	if len(args) > 0 {
		phrase = strings.Join(args, " ")
	} else {
		input, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
		if err != nil {
			return fmt.Errorf("failed to read phrase: %w", err)
		}
		phrase = string(input)
	}

	words := len(strings.Fields(phrase))
	a.log.Debug("checking phrase", "words", words)

	entropy, err := kdf.MnemonicToEntropy(phrase)
	if err != nil {
		return fmt.Errorf("phrase rejected: %w", err)
	}
	defer zeroBytes(entropy)

	w := bufio.NewWriter(cmd.OutOrStdout())
	fmt.Fprintf(w, "Valid: %d words\n", words)
	fmt.Fprintf(w, "Entropy: %s\n", hex.EncodeToString(entropy))

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
