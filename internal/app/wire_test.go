package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma/internal/domain"
)

func TestNew_WiresServices(t *testing.T) {
	home := filepath.Join(t.TempDir(), "enigma")
	a, err := New(Config{Home: home, Defaults: domain.DefaultSettings()})
	require.NoError(t, err)
	assert.DirExists(t, home)

	res, err := a.Machine.Encrypt(a.Defaults, "A")
	require.NoError(t, err)
	assert.Equal(t, "B", res.Output)

	list, err := a.KeySheets.ListKeySheets("pass")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNew_RequiresHome(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
