package machine_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma/internal/domain"
	"enigma/internal/services/machine"
)

func TestEncrypt_UppercasesAndFilters(t *testing.T) {
	svc := machine.New(nil)
	res, err := svc.Encrypt(domain.DefaultSettings(), "Hello, World!")
	require.NoError(t, err)
	assert.Equal(t, domain.Result{Output: "ILBDAAMTAZ", Start: "AAA", End: "AAK", Letters: 10}, res)
}

func TestEncrypt_SymmetricAcrossCalls(t *testing.T) {
	svc := machine.New(nil)
	s := domain.Settings{Rotors: []string{"iii", "i", "ii"}, Positions: "qev", Plugboard: []string{"ab cd ef"}}

	ct, err := svc.Encrypt(s, "attack at dawn")
	require.NoError(t, err)
	assert.Equal(t, "CUKNORHNQFUM", ct.Output)

	pt, err := svc.Encrypt(s, ct.Output)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", pt.Output)
}

func TestEncrypt_InvalidSettings(t *testing.T) {
	svc := machine.New(nil)
	_, err := svc.Encrypt(domain.Settings{Rotors: []string{"I", "II", "VI"}, Positions: "AAA"}, "A")
	assert.ErrorIs(t, err, domain.ErrUnknownRotorType)

	_, err = svc.Encrypt(domain.Settings{Rotors: []string{"I", "II", "III"}, Positions: "A?A"}, "A")
	assert.ErrorIs(t, err, domain.ErrInvalidPosition)
}

func TestEncrypt_LogsRunAndDuplicatePlugs(t *testing.T) {
	var buf bytes.Buffer
	svc := machine.New(log.New(&buf, "", 0))

	s := domain.DefaultSettings()
	s.Plugboard = []string{"AB", "AC"}
	res, err := svc.Encrypt(s, "ABC")
	require.NoError(t, err)
	assert.Equal(t, "QDZ", res.Output)

	assert.Contains(t, buf.String(), `plugboard: letters "A" used in more than one pair`)
	assert.Contains(t, buf.String(), "rotors=I-II-III start=AAA end=AAD letters=3")
}
