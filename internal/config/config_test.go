package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "exact", cfg.TagMatch)
	assert.Equal(t, "info@securiwisetraining.co.uk", cfg.EnquiryTo)
	assert.False(t, cfg.IsProd())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\ntag_match: contains\nenquiry_to: file@example.com\n"), 0o644))
	t.Setenv("SECURIWISE_WEB_ENQUIRY_TO", "env@example.com")
	t.Setenv("SECURIWISE_WEB_DEV", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "contains", cfg.TagMatch)
	assert.Equal(t, "env@example.com", cfg.EnquiryTo)
	assert.True(t, cfg.Dev)
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.TagMatch = "fuzzy"
	cfg.EnquiryTo = " "
	cfg.Env = "prod"
	cfg.SessionBlockKey = "short"
	cfg.CoveragePrefixes = " , "

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"tag_match", "enquiry_to", "session_hash_key", "session_block_key", "coverage_prefixes"} {
		assert.True(t, strings.Contains(msg, want), "missing %s in %s", want, msg)
	}

	cfg = Default()
	cfg.Env = "prod"
	cfg.SessionHashKey = strings.Repeat("k", 32)
	assert.NoError(t, cfg.Validate())
}
