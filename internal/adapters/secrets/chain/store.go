package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/contractlock-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/contractlock-cli/internal/adapters/secrets/pass"
	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/rs/zerolog"
)

// Store tries primary first and falls back to the second backend unless the
// caller's context is done.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	logger   zerolog.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, logger zerolog.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback, logger: logger}, nil
}

// NewPassFirstWithFileFallback keeps keys in pass when it is installed and
// in 0600 files under fileRoot otherwise.
func NewPassFirstWithFileFallback(fileRoot string, logger zerolog.Logger) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot), logger)
}

func (s *Store) Put(ctx context.Context, ref string, value string) error {
	_, err := attempt(s, "put", ref, func(store ports.SecretStore) (struct{}, error) {
		return struct{}{}, store.Put(ctx, ref, value)
	})
	return err
}

func (s *Store) Get(ctx context.Context, ref string) (string, error) {
	return attempt(s, "get", ref, func(store ports.SecretStore) (string, error) {
		return store.Get(ctx, ref)
	})
}

func (s *Store) Delete(ctx context.Context, ref string) error {
	_, err := attempt(s, "delete", ref, func(store ports.SecretStore) (struct{}, error) {
		return struct{}{}, store.Delete(ctx, ref)
	})
	return err
}

func attempt[T any](s *Store, op string, ref string, fn func(ports.SecretStore) (T, error)) (T, error) {
	value, err := fn(s.primary)
	if err == nil || isContextErr(err) {
		return value, err
	}

	s.logger.Debug().Err(err).Str("op", op).Str("ref", ref).Msg("primary secret store failed, using fallback")

	value, fallbackErr := fn(s.fallback)
	if fallbackErr == nil {
		return value, nil
	}

	var zero T
	if errors.Is(fallbackErr, domain.ErrSecretNotFound) &&
		(errors.Is(err, domain.ErrSecretNotFound) || errors.Is(err, passstore.ErrUnavailable)) {
		return zero, fmt.Errorf("secret %q: %w", ref, domain.ErrSecretNotFound)
	}

	return zero, fmt.Errorf("primary backend %s failed: %w; fallback backend %s failed: %w", op, err, op, fallbackErr)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
