package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same number: 0 pins every draw to the lower bound of its band.
type fixedSource uint64

func (s fixedSource) Uint64() uint64 { return uint64(s) }

// setup points the application to a temporary portfolio document and captures its output.
func setup(t *testing.T) (string, *bytes.Buffer) {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "data", "portfolio.json")

	prevFile, prevSeed, prevOut, prevPrint := *portfolioFile, *seed, stdout, printMarkdown
	t.Cleanup(func() {
		*portfolioFile, *seed, stdout, printMarkdown = prevFile, prevSeed, prevOut, prevPrint
	})

	var out bytes.Buffer
	*portfolioFile = filename
	*seed = 1
	stdout = &out
	printMarkdown = func(w io.Writer, markdown string) { fmt.Fprint(w, markdown) }
	return filename, &out
}

// execute parses args with the command flags and executes it.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}

// copyFile copies src into a temporary file and returns its name.
func copyFile(t *testing.T, src string) string {
	t.Helper()
	content, err := os.ReadFile(src)
	require.NoError(t, err)
	dst := filepath.Join(t.TempDir(), filepath.Base(src))
	require.NoError(t, os.WriteFile(dst, content, 0644))
	return dst
}
