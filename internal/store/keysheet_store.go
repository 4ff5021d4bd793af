package store

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"sync"

	"enigma/internal/crypto"
	"enigma/internal/domain"
)

const keySheetsFilename = "keysheets.json.enc"

// KeySheetFileStore keeps every key sheet in one passphrase-sealed file.
type KeySheetFileStore struct {
	dir string
	kdf scryptParams
	mu  sync.Mutex
}

// NewKeySheetFileStore returns a KeySheetFileStore rooted at dir.
func NewKeySheetFileStore(dir string) *KeySheetFileStore {
	return &KeySheetFileStore{dir: dir, kdf: scryptParamsDefault()}
}

// SaveKeySheet stores or replaces the sheet under sheet.Name.
func (s *KeySheetFileStore) SaveKeySheet(passphrase string, sheet domain.KeySheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(passphrase)
	if err != nil {
		return err
	}
	book[sheet.Name] = sheet
	return s.write(passphrase, book)
}

// LoadKeySheet retrieves the sheet stored under name.
func (s *KeySheetFileStore) LoadKeySheet(passphrase, name string) (domain.KeySheet, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(passphrase)
	if err != nil {
		return domain.KeySheet{}, false, err
	}
	sheet, ok := book[name]
	return sheet, ok, nil
}

// ListKeySheets returns every stored sheet sorted by name.
func (s *KeySheetFileStore) ListKeySheets(passphrase string) ([]domain.KeySheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(passphrase)
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeySheet, 0, len(book))
	for _, sheet := range book {
		out = append(out, sheet)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteKeySheet removes the sheet stored under name and reports whether it existed.
func (s *KeySheetFileStore) DeleteKeySheet(passphrase, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(passphrase)
	if err != nil {
		return false, err
	}
	if _, ok := book[name]; !ok {
		return false, nil
	}
	delete(book, name)
	return true, s.write(passphrase, book)
}

func (s *KeySheetFileStore) path() string { return filepath.Join(s.dir, keySheetsFilename) }

// load opens the sealed book; a missing file is an empty book.
func (s *KeySheetFileStore) load(passphrase string) (map[string]domain.KeySheet, error) {
	book := make(map[string]domain.KeySheet)
	b, err := readFile(s.path())
	if err != nil || b == nil {
		return book, err
	}
	raw, err := open(passphrase, b)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(raw)
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *KeySheetFileStore) write(passphrase string, book map[string]domain.KeySheet) error {
	raw, err := json.Marshal(book)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)
	ct, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.path(), ct, 0o600)
}

// Compile-time assertion that KeySheetFileStore implements domain.KeySheetStore.
var _ domain.KeySheetStore = (*KeySheetFileStore)(nil)
