package keysheet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"enigma/internal/domain"
)

// ErrEmptyName is returned when a key sheet is saved without a name.
var ErrEmptyName = errors.New("key sheet name required")

// Service validates settings and persists them through a KeySheetStore.
type Service struct {
	store domain.KeySheetStore
	now   func() time.Time
}

// New constructs a key-sheet Service over store.
func New(store domain.KeySheetStore) *Service {
	return &Service{store: store, now: time.Now}
}

// SaveKeySheet normalises and validates settings, then stores them under name.
func (s *Service) SaveKeySheet(passphrase, name string, settings domain.Settings) (domain.KeySheet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.KeySheet{}, ErrEmptyName
	}
	settings = domain.NormalizeSettings(settings)
	if err := settings.Validate(); err != nil {
		return domain.KeySheet{}, fmt.Errorf("key sheet %q: %w", name, err)
	}
	sheet := domain.KeySheet{
		Name:       name,
		Settings:   settings,
		CreatedUTC: s.now().UTC().Unix(),
	}
	if err := s.store.SaveKeySheet(passphrase, sheet); err != nil {
		return domain.KeySheet{}, err
	}
	return sheet, nil
}

// LoadKeySheet returns the sheet stored under name or domain.ErrKeySheetNotFound.
func (s *Service) LoadKeySheet(passphrase, name string) (domain.KeySheet, error) {
	sheet, ok, err := s.store.LoadKeySheet(passphrase, strings.TrimSpace(name))
	if err != nil {
		return domain.KeySheet{}, err
	}
	if !ok {
		return domain.KeySheet{}, fmt.Errorf("%w: %q", domain.ErrKeySheetNotFound, name)
	}
	return sheet, nil
}

// ListKeySheets returns every stored sheet sorted by name.
func (s *Service) ListKeySheets(passphrase string) ([]domain.KeySheet, error) {
	return s.store.ListKeySheets(passphrase)
}

// DeleteKeySheet removes the sheet stored under name or returns domain.ErrKeySheetNotFound.
func (s *Service) DeleteKeySheet(passphrase, name string) error {
	ok, err := s.store.DeleteKeySheet(passphrase, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrKeySheetNotFound, name)
	}
	return nil
}

// Compile-time assertion that Service implements domain.KeySheetService.
var _ domain.KeySheetService = (*Service)(nil)
