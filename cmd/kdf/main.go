package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"

	// Environment variable for the secret
	SecretEnvVar = "KDF_SECRET"
	// Environment variable overriding the settings file path
	ConfigEnvVar = "KDF_CONFIG"

	ExitSuccess = 0
	ExitError   = 1
)

// app holds flag values and the state built before a command runs
type app struct {
	configPath  string
	verbose     bool
	logFormat   string
	confirm     bool
	showEntropy bool
	workers     int

	// readPassword prompts with label and reads one secret. nil means the
	// terminal.
	readPassword passwordReader

	settings Settings
	log      *slog.Logger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}

func newRootCmd() *cobra.Command {
	return (&app{}).command()
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "kdf [iterations]",
		Short: "Derive a BIP39 recovery phrase from a secret",
		Long: `kdf - Deterministic recovery phrase derivation

Hashes a fixed salt followed by your secret with SHA3-256, re-hashes the
digest until [iterations] hashes have been applied, and prints the 256-bit
result as a 24-word BIP39 mnemonic (English wordlist).

The same secret and iteration count always give the same phrase. Both are
needed to recover it; write the iteration count down.

SECRET:
    Set KDF_SECRET environment variable, or enter interactively.

CONFIG:
    Optional YAML settings at $KDF_CONFIG or <user config dir>/kdf/config.yaml:

        iterations: 100000   # used when [iterations] is omitted
        max_iterations: 0    # refuse larger counts (0 = no limit)
        log:
          level: info
          format: text

EXAMPLES:
    # Derive with 100000 iterations
    kdf 100000

    # Show the entropy as hex as well
    kdf 100000 --show-entropy

    # Verify a written-down phrase
    echo "disorder mutual ... sheriff" | kdf check`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: a.setup,
		RunE:              a.runDerive,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to settings file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format (text|json)")

	root.Flags().BoolVarP(&a.confirm, "confirm", "c", false, "Prompt for the secret twice")
	root.Flags().BoolVarP(&a.showEntropy, "show-entropy", "e", false, "Also print the derived entropy as hex")

	batch := &cobra.Command{
		Use:   "batch [iterations]",
		Short: "Derive one phrase per secret line read from STDIN",
		Long: `Reads newline-separated secrets from STDIN and prints one phrase per
line, in input order. A blank input line gives a blank output line, so
line N of the output always belongs to line N of the input. Derivations run
in parallel.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runBatch,
	}
	batch.Flags().IntVarP(&a.workers, "workers", "w", runtime.NumCPU(), "Number of parallel derivations")

	check := &cobra.Command{
		Use:   "check [words...]",
		Short: "Validate a phrase and print its entropy",
		Long: `Checks wordlist membership and the BIP39 checksum of a phrase given as
arguments or on STDIN, then prints the entropy it encodes.`,
		RunE: a.runCheck,
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "kdf version %s\n", Version)
			return nil
		},
	}

	root.AddCommand(batch, check, version)
	return root
}
