package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/rs/zerolog"
)

// WalletService manages the local wallet profiles the key wallet signs with.
// Profiles hold only the address and a secret ref. The key goes to the
// secret store.
type WalletService struct {
	repo   ports.WalletProfileRepository
	store  ports.SecretStore
	keys   ports.KeyManager
	logger zerolog.Logger
}

func NewWalletService(repo ports.WalletProfileRepository, store ports.SecretStore, keys ports.KeyManager, logger zerolog.Logger) *WalletService {
	return &WalletService{repo: repo, store: store, keys: keys, logger: logger}
}

// Import stores rawKey under name. An existing profile is only replaced when
// overwrite is set.
func (s *WalletService) Import(ctx context.Context, name string, rawKey string, overwrite bool) (domain.WalletProfile, error) {
	if err := domain.ValidateWalletName(name); err != nil {
		return domain.WalletProfile{}, err
	}

	address, key, err := s.keys.Parse(rawKey)
	if err != nil {
		return domain.WalletProfile{}, fmt.Errorf("parse private key: %w", err)
	}

	return s.save(ctx, name, address, key, overwrite)
}

// Create generates a fresh key, mostly useful against local dev chains.
func (s *WalletService) Create(ctx context.Context, name string) (domain.WalletProfile, error) {
	if err := domain.ValidateWalletName(name); err != nil {
		return domain.WalletProfile{}, err
	}

	address, key, err := s.keys.Generate()
	if err != nil {
		return domain.WalletProfile{}, err
	}

	return s.save(ctx, name, address, key, false)
}

func (s *WalletService) List(ctx context.Context) ([]domain.WalletProfile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wallet profiles: %w", err)
	}
	return profiles, nil
}

func (s *WalletService) Get(ctx context.Context, name string) (domain.WalletProfile, error) {
	return s.repo.GetByName(ctx, name)
}

// Remove drops the profile and then its key. If the key cannot be deleted the
// profile is restored so the key is never orphaned.
func (s *WalletService) Remove(ctx context.Context, name string) error {
	profile, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete wallet profile: %w", err)
	}

	if err := s.store.Delete(ctx, profile.SecretRef); err != nil {
		if restoreErr := s.repo.Save(ctx, profile); restoreErr != nil {
			return fmt.Errorf("delete wallet key and restore profile: %w", errors.Join(err, restoreErr))
		}
		return fmt.Errorf("delete wallet key: %w", err)
	}

	s.logger.Info().Str("wallet", name).Msg("wallet removed")
	return nil
}

func (s *WalletService) save(ctx context.Context, name string, address domain.Address, key string, overwrite bool) (domain.WalletProfile, error) {
	existing, err := s.repo.GetByName(ctx, name)
	switch {
	case err == nil && !overwrite:
		return domain.WalletProfile{}, fmt.Errorf("%w: %q", domain.ErrWalletExists, name)
	case err != nil && !errors.Is(err, domain.ErrWalletNotFound):
		return domain.WalletProfile{}, fmt.Errorf("get wallet profile: %w", err)
	}

	profile := domain.WalletProfile{
		Name:      name,
		Address:   address,
		SecretRef: domain.WalletSecretRef(name),
	}

	var previousKey string
	if existing.SecretRef == profile.SecretRef {
		previousKey, err = s.store.Get(ctx, profile.SecretRef)
		if err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			return domain.WalletProfile{}, fmt.Errorf("read previous wallet key: %w", err)
		}
	}

	if err := s.store.Put(ctx, profile.SecretRef, key); err != nil {
		return domain.WalletProfile{}, fmt.Errorf("store wallet key: %w", err)
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		if rollbackErr := s.restoreKey(ctx, profile.SecretRef, previousKey); rollbackErr != nil {
			return domain.WalletProfile{}, fmt.Errorf("save wallet profile and rollback stored key: %w", errors.Join(err, rollbackErr))
		}
		return domain.WalletProfile{}, fmt.Errorf("save wallet profile: %w", err)
	}

	// A replaced profile written by an older layout may point elsewhere.
	if existing.SecretRef != "" && existing.SecretRef != profile.SecretRef {
		if err := s.store.Delete(ctx, existing.SecretRef); err != nil {
			s.logger.Warn().Err(err).Str("wallet", name).Msg("previous wallet key not deleted")
		}
	}

	s.logger.Info().Str("wallet", name).Str("address", address.String()).Msg("wallet saved")
	return profile, nil
}

func (s *WalletService) restoreKey(ctx context.Context, ref string, previous string) error {
	if previous == "" {
		return s.store.Delete(ctx, ref)
	}
	return s.store.Put(ctx, ref, previous)
}
