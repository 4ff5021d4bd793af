package crypto

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"enigma/internal/domain"
)

// Fingerprint returns a 16 hex digit digest of the settings.
//
// Rotor order, positions and plugboard pairs are hashed in the order given,
// since pair order decides which cable wins for a repeated letter.
func Fingerprint(s domain.Settings) string {
	canonical := strings.Join([]string{
		strings.Join(s.Rotors, " "),
		s.Positions,
		strings.Join(s.Plugboard, " "),
	}, "|")
	return fmt.Sprintf("%016x", xxhash.Sum64String(canonical))
}
