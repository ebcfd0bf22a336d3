package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/config"
	"paygate/internal"
)

// GetConfig loads once per process, so this is the only test calling run.
func TestRun_BadKeyMaterialReturnsError(t *testing.T) {
	t.Setenv("HASH_KEY", "too-short")
	t.Setenv("HASH_IV", "1234567890123456")

	err := run(filepath.Join(t.TempDir(), "missing.env"), internal.NewLogger("test", false, nil))
	require.Error(t, err)
	var configError *internal.ConfigurationError
	assert.True(t, errors.As(err, &configError))

	// the cached result stays available to later callers
	conf, err := config.GetConfig("")
	require.NoError(t, err)
	assert.Equal(t, "too-short", conf.Gateway.HashKey)
}
