package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	walletsFileMode = 0o600
	walletsDirMode  = 0o700
	tempFilePattern = ".wallets-*.toml.tmp"
)

// WalletRepository stores wallet profiles in a versioned TOML file. Writers
// sharing a path share one lock, and every write replaces the file atomically.
type WalletRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.WalletProfileRepository = (*WalletRepository)(nil)

func NewWalletRepository(cfg *viper.Viper) (*WalletRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(KeyWalletsPath)
	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "wallets.toml")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve wallets path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &WalletRepository{path: absPath, mu: lockForPath(absPath)}, nil
}

func (r *WalletRepository) Path() string {
	return r.path
}

func (r *WalletRepository) Save(ctx context.Context, profile domain.WalletProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateWalletName(profile.Name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := walletSchema{
		Name:      profile.Name,
		Address:   profile.Address.String(),
		SecretRef: profile.SecretRef,
	}

	replaced := false
	for i := range file.Wallets {
		if file.Wallets[i].Name == encoded.Name {
			file.Wallets[i] = encoded
			replaced = true
			break
		}
	}
	if !replaced {
		file.Wallets = append(file.Wallets, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *WalletRepository) GetByName(ctx context.Context, name string) (domain.WalletProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.WalletProfile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.WalletProfile{}, err
	}

	for _, entry := range file.Wallets {
		if entry.Name == name {
			return fromSchema(entry), nil
		}
	}

	return domain.WalletProfile{}, fmt.Errorf("%w: %q", domain.ErrWalletNotFound, name)
}

// List returns profiles sorted by name.
func (r *WalletRepository) List(ctx context.Context) ([]domain.WalletProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.WalletProfile, 0, len(file.Wallets))
	for _, entry := range file.Wallets {
		profiles = append(profiles, fromSchema(entry))
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })

	return profiles, nil
}

func (r *WalletRepository) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Wallets[:0]
	found := false
	for _, entry := range file.Wallets {
		if entry.Name == name {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return fmt.Errorf("%w: %q", domain.ErrWalletNotFound, name)
	}
	file.Wallets = kept

	return r.writeSchema(file)
}

func (r *WalletRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read wallets file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode wallets file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *WalletRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, walletsDirMode); err != nil {
		return fmt.Errorf("create wallets directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode wallets file: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp wallets file: %w", err)
	}

	tempName := tempFile.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp wallets file: %w", err)
	}
	if err := tempFile.Chmod(walletsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp wallets file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp wallets file: %w", err)
	}
	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace wallets file: %w", err)
	}
	committed = true

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func fromSchema(entry walletSchema) domain.WalletProfile {
	secretRef := entry.SecretRef
	if secretRef == "" {
		secretRef = domain.WalletSecretRef(entry.Name)
	}

	return domain.WalletProfile{
		Name:      entry.Name,
		Address:   domain.Address(entry.Address),
		SecretRef: secretRef,
	}
}
