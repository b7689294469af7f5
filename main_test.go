package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/contact-manager/internal/config"
	"github.com/pdxmph/contact-manager/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListPrintsSeed(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"Priya Sharma", "Rahul Mehta", "Param Aggarwal", "Jatin Malhotra", "Aditya", "Interviewer"} {
		assert.Contains(t, out, name)
	}
}

func TestListSearch(t *testing.T) {
	out, err := execute(t, "list", "--search", "PUNJAB")
	require.NoError(t, err)
	assert.Contains(t, out, "Priya Sharma")
	assert.Contains(t, out, "Param Aggarwal")
	assert.Contains(t, out, "Interviewer")
	assert.NotContains(t, out, "Rahul Mehta")
}

func TestPrintContactsKeepsFullValues(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printContacts(&out, store.Seed()))

	for _, c := range store.Seed() {
		assert.Contains(t, out.String(), c.Name)
		assert.Contains(t, out.String(), c.Email)
		if c.ContactNo != "" {
			assert.Contains(t, out.String(), c.ContactNo)
		}
	}
	assert.Contains(t, out.String(), "Address")
	assert.NotContains(t, out.String(), "…")
}

func TestListNoMatches(t *testing.T) {
	out, err := execute(t, "list", "-s", "nobody-here")
	require.NoError(t, err)
	assert.Contains(t, out, "No contacts found.")
}

func TestListRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, "list", "--log-level", "loud")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cm", "config.toml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.GeneratorUUID, cfg.IDs.Generator)

	_, err = execute(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}

func TestConfigInitDefaultLocation(t *testing.T) {
	out, err := execute(t, "config", "init")
	require.NoError(t, err)

	path, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "contact-manager version "+Version)
}

func TestNewStoreCounterGenerator(t *testing.T) {
	cfg := config.Default()
	cfg.IDs.Generator = config.GeneratorCounter

	s := newStore(cfg, nil)
	c := s.Add(s.Items()[0].Input())
	assert.Equal(t, "7", c.ID)
}
