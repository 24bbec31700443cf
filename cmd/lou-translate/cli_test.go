package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brailleworks/louis-go/pkg/louis"
)

// requireEngine skips when the native engine is not linked into this build.
func requireEngine(t *testing.T) {
	t.Helper()
	l, err := louis.New(louis.Config{})
	if errors.Is(err, louis.ErrNotBuilt) {
		t.Skip("liblouis not linked")
	}
	require.NoError(t, err)
	require.NoError(t, l.Close())
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.NoError(t, a.close())
	return out.String(), err
}

func TestCLITranslate(t *testing.T) {
	requireEngine(t)

	out, err := run(t, "Dies ist ein kurzer Satz.\n", "de.tbl")
	require.NoError(t, err)
	assert.Equal(t, "d0s } 6 kz7 sz.\n", out)
}

func TestCLIUnknownTable(t *testing.T) {
	requireEngine(t)

	_, err := run(t, "text\n", "no-such-table.tbl")
	require.ErrorIs(t, err, louis.ErrTranslation)
}

func TestCLITables(t *testing.T) {
	requireEngine(t)

	out, err := run(t, "", "tables")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "en_US.tbl")
}

func TestCLIVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lou-translate "+louis.WrapperVersion()+"\n"), "got %q", out)
}
