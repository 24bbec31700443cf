package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brailleworks/louis-go/pkg/louis"
)

const maxLineBytes = 1 << 20

func (a *app) runTranslate(cmd *cobra.Command, args []string) error {
	h, err := a.open()
	if err != nil {
		return err
	}
	tables := louis.Tables(args...)
	dir := a.cfg.direction()
	mode := a.cfg.mode()

	a.logger.Debug("translating standard input")
	return translateLines(cmd.InOrStdin(), cmd.OutOrStdout(), func(line string) (string, error) {
		return h.Translate(tables, line, dir, mode)
	})
}

// translateLines applies fn to every line of r and writes the results to w,
// one per line. It stops at the first failure.
func translateLines(r io.Reader, w io.Writer, fn func(string) (string, error)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	bw := bufio.NewWriter(w)

	n := 0
	for sc.Scan() {
		n++
		out, err := fn(strings.TrimSuffix(sc.Text(), "\r"))
		if err != nil {
			_ = bw.Flush()
			return fmt.Errorf("line %d: %w", n, err)
		}
		if _, err := bw.WriteString(out + "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		_ = bw.Flush()
		return fmt.Errorf("read input: %w", err)
	}
	return bw.Flush()
}
