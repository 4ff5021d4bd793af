package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma/internal/domain"
)

func newTestStore(t *testing.T) *KeySheetFileStore {
	t.Helper()
	s := NewKeySheetFileStore(t.TempDir())
	s.kdf = scryptParams{N: 1 << 10, R: 8, P: 1}
	return s
}

func sheet(name, positions string) domain.KeySheet {
	return domain.KeySheet{
		Name: name,
		Settings: domain.Settings{
			Rotors:    []string{"III", "I", "II"},
			Positions: positions,
			Plugboard: []string{"AB", "CD"},
		},
		CreatedUTC: 1700000000,
	}
}

func TestKeySheet_SaveLoad_OK(t *testing.T) {
	s := newTestStore(t)
	want := sheet("monday", "QEV")

	require.NoError(t, s.SaveKeySheet("pass", want))

	got, ok, err := s.LoadKeySheet("pass", "monday")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(s.dir, keySheetsFilename))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestKeySheet_FileIsSealed(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveKeySheet("pass", sheet("monday", "QEV")))

	b, err := os.ReadFile(filepath.Join(s.dir, keySheetsFilename))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "monday")
	assert.NotContains(t, string(b), "QEV")
}

func TestKeySheet_WrongPassphrase(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveKeySheet("pass", sheet("monday", "QEV")))

	_, _, err := s.LoadKeySheet("nope", "monday")
	assert.ErrorIs(t, err, domain.ErrWrongPassphrase)

	err = s.SaveKeySheet("nope", sheet("tuesday", "ABC"))
	assert.ErrorIs(t, err, domain.ErrWrongPassphrase)
}

func TestKeySheet_MissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.LoadKeySheet("pass", "monday")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := s.ListKeySheets("pass")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestKeySheet_ListSortedAndDelete(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"wednesday", "monday", "tuesday"} {
		require.NoError(t, s.SaveKeySheet("pass", sheet(name, "AAA")))
	}

	list, err := s.ListKeySheets("pass")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "monday", list[0].Name)
	assert.Equal(t, "tuesday", list[1].Name)
	assert.Equal(t, "wednesday", list[2].Name)

	ok, err := s.DeleteKeySheet("pass", "tuesday")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteKeySheet("pass", "tuesday")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err = s.ListKeySheets("pass")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestKeySheet_SaveReplaces(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveKeySheet("pass", sheet("monday", "AAA")))
	require.NoError(t, s.SaveKeySheet("pass", sheet("monday", "ZZZ")))

	got, ok, err := s.LoadKeySheet("pass", "monday")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ZZZ", got.Settings.Positions)
}

func TestOpen_RejectsNewerFormat(t *testing.T) {
	_, err := open("pass", []byte(`{"v":2}`))
	assert.ErrorContains(t, err, "unsupported")
}
