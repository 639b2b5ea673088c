package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kdf/internal/kdf"
)

type batchItem struct {
	line   int
	secret []byte
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	iterations, err := a.resolveIterations(args)
	if err != nil {
		return err
	}
	if a.workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}

	items, err := readBatch(cmd.InOrStdin())
	defer func() {
		for _, it := range items {
			zeroBytes(it.secret)
		}
	}()
	if err != nil {
		return fmt.Errorf("failed to read secrets: %w", err)
	}

	a.log.Debug("batch started", "count", len(items), "iterations", iterations, "workers", a.workers)
	start := time.Now()

	phrases := make([]string, len(items))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.workers)
	for i, it := range items {
		if len(it.secret) == 0 {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg, err := kdf.NewConfig(it.secret, iterations)
			if err != nil {
				return fmt.Errorf("line %d: %w", it.line, err)
			}
			phrase, err := kdf.Derive(cfg)
			if err != nil {
				return fmt.Errorf("line %d: %w", it.line, err)
			}
			phrases[i] = phrase
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	a.log.Debug("batch finished", "count", len(items), "duration", time.Since(start))

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, p := range phrases {
		fmt.Fprintln(w, p)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// readBatch returns one item per input line, blank lines included, so
// output line N always answers input line N. A trailing CR is stripped so
// files written on Windows derive the same phrases. Lines have no length
// limit.
func readBatch(r io.Reader) ([]batchItem, error) {
	var items []batchItem
	br := bufio.NewReader(r)
	for line := 1; ; line++ {
		b, err := br.ReadBytes('\n')
		if len(b) > 0 {
			b = bytes.TrimSuffix(bytes.TrimSuffix(b, []byte("\n")), []byte("\r"))
			items = append(items, batchItem{line: line, secret: b})
		}
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return items, err
		}
	}
}
