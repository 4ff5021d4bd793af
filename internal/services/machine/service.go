package machine

import (
	"io"
	"log"
	"strings"

	"enigma/internal/domain"
	"enigma/internal/protocol/enigma"
)

// Service encrypts (and, symmetrically, decrypts) messages.
type Service struct {
	log *log.Logger
}

// New constructs a machine Service. A nil logger discards output.
func New(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{log: logger}
}

// Encrypt uppercases message, builds a machine from settings and transforms
// every letter. Characters other than A-Z after uppercasing are dropped.
func (s *Service) Encrypt(settings domain.Settings, message string) (domain.Result, error) {
	settings = domain.NormalizeSettings(settings)
	if err := settings.Validate(); err != nil {
		return domain.Result{}, err
	}
	if dups := enigma.DuplicateLetters(settings.Plugboard); len(dups) > 0 {
		s.log.Printf("plugboard: letters %q used in more than one pair; last pair wins", string(dups))
	}

	e, err := enigma.New(settings)
	if err != nil {
		return domain.Result{}, err
	}
	e.Reset()

	start := e.Positions()
	out := e.Encrypt(strings.ToUpper(message))
	res := domain.Result{
		Output:  out,
		Start:   start,
		End:     e.Positions(),
		Letters: len(out),
	}
	s.log.Printf("rotors=%s start=%s end=%s letters=%d",
		strings.Join(settings.Rotors, "-"), res.Start, res.End, res.Letters)
	return res, nil
}

// Compile-time assertion that Service implements domain.MachineService.
var _ domain.MachineService = (*Service)(nil)
