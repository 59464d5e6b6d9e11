package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".contractlock"

	KeyRPCURL          = "rpc.url"
	KeyContractAddress = "contract.address"
	KeyDefaultWallet   = "wallet.default"
	KeyWalletsPath     = "wallets.path"
	KeyLogLevel        = "log.level"
	KeyLogPath         = "log.path"

	DefaultRPCURL          = "http://127.0.0.1:8545"
	DefaultContractAddress = "0x6c1890822B283F5f222E0c1dd507fFfd79d9885d"
	DefaultWalletName      = "main"
)

// ConfigDir is ~/.contractlock.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir), nil
}

// LoadConfig registers defaults on cfg and merges ~/.contractlock/config.toml
// when it exists.
func LoadConfig(cfg *viper.Viper) (*viper.Viper, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)

	cfg.SetDefault(KeyRPCURL, DefaultRPCURL)
	cfg.SetDefault(KeyContractAddress, DefaultContractAddress)
	cfg.SetDefault(KeyDefaultWallet, DefaultWalletName)
	cfg.SetDefault(KeyWalletsPath, filepath.Join(dir, "wallets.toml"))
	cfg.SetDefault(KeyLogPath, filepath.Join(dir, "contractlock.log"))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}
