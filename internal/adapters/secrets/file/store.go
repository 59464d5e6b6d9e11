package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
)

const (
	keyDirMode  = 0o700
	keyFileMode = 0o600
)

// Store keeps each wallet key in its own 0600 file below root.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Put(ctx context.Context, ref string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.resolve(ref)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), keyDirMode); err != nil {
		return fmt.Errorf("create key directory: %w", err)
	}

	// WriteFile keeps the mode of an existing file, so tighten it explicitly.
	if err := os.WriteFile(path, []byte(value), keyFileMode); err != nil {
		return fmt.Errorf("write key %q: %w", ref, err)
	}
	if err := os.Chmod(path, keyFileMode); err != nil {
		return fmt.Errorf("chmod key %q: %w", ref, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.resolve(ref)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("key %q: %w", ref, domain.ErrSecretNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read key %q: %w", ref, err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

func (s *Store) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.resolve(ref)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete key %q: %w", ref, err)
	}

	return nil
}

func (s *Store) resolve(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", errors.New("secret ref is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid secret ref %q", ref)
	}

	return filepath.Join(s.root, cleaned), nil
}
