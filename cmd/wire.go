package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/contractlock-cli/internal/adapters/ethereum"
	escrowrender "github.com/bnema/contractlock-cli/internal/adapters/render/escrow"
	tomlrepo "github.com/bnema/contractlock-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/contractlock-cli/internal/adapters/secrets/chain"
	"github.com/bnema/contractlock-cli/internal/adapters/tui"
	"github.com/bnema/contractlock-cli/internal/application"
	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/observability"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type settings struct {
	RPCURL          string
	ContractAddress domain.Address
	WalletName      string
	LogLevel        string
	LogPath         string
}

// walletSource opens the signing wallet for a profile name. A nil wallet
// makes the session report domain.ErrWalletUnavailable.
type walletSource func(ctx context.Context, name string, logger zerolog.Logger) (ports.Wallet, ports.ContractDialer)

type app struct {
	settings     settings
	logger       zerolog.Logger
	wallets      *application.WalletService
	openWallet   walletSource
	clock        ports.Clock
	location     *time.Location
	renderEscrow func(escrowrender.Report, escrowrender.RenderOptions) (string, error)
	runUI        func(ctx context.Context, deps tui.Deps) error
	uiLogger     func() (zerolog.Logger, io.Closer, error)
}

func wireApp() (*app, error) {
	cfg, err := tomlrepo.LoadConfig(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	conf := settings{
		RPCURL:          envOrDefault("CONTRACTLOCK_RPC_URL", cfg.GetString(tomlrepo.KeyRPCURL)),
		ContractAddress: domain.Address(envOrDefault("CONTRACTLOCK_CONTRACT", cfg.GetString(tomlrepo.KeyContractAddress))),
		WalletName:      envOrDefault("CONTRACTLOCK_WALLET", cfg.GetString(tomlrepo.KeyDefaultWallet)),
		LogLevel:        cfg.GetString(tomlrepo.KeyLogLevel),
		LogPath:         cfg.GetString(tomlrepo.KeyLogPath),
	}

	logger, err := observability.NewLogger(os.Stderr, conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewWalletRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire wallet repository: %w", err)
	}

	configDir, err := tomlrepo.ConfigDir()
	if err != nil {
		return nil, err
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(configDir, "secrets"), logger)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	wallets := application.NewWalletService(repo, secretStore, ethereum.KeyManager{}, logger)

	return &app{
		settings:     conf,
		logger:       logger,
		wallets:      wallets,
		openWallet:   keyWalletSource(conf.RPCURL, wallets, secretStore),
		clock:        ports.SystemClock{},
		location:     time.Local,
		renderEscrow: escrowrender.Render,
		uiLogger:     fileLogger(conf),
		runUI: func(ctx context.Context, deps tui.Deps) error {
			return tui.Run(ctx, deps)
		},
	}, nil
}

func keyWalletSource(rpcURL string, wallets *application.WalletService, secrets ports.SecretStore) walletSource {
	return func(ctx context.Context, name string, logger zerolog.Logger) (ports.Wallet, ports.ContractDialer) {
		profile, err := wallets.Get(ctx, name)
		if err != nil {
			logger.Warn().Err(err).Str("wallet", name).Msg("wallet profile unavailable")
			profile = domain.WalletProfile{}
		}

		wallet := ethereum.NewKeyWallet(rpcURL, profile, secrets)
		return wallet, ethereum.NewDialer(wallet)
	}
}

// fileLogger keeps the interactive UI's terminal free of log lines.
func fileLogger(conf settings) func() (zerolog.Logger, io.Closer, error) {
	return func() (zerolog.Logger, io.Closer, error) {
		file, err := observability.OpenLogFile(conf.LogPath)
		if err != nil {
			return zerolog.Nop(), nil, err
		}

		level := conf.LogLevel
		if level == "" {
			level = "info"
		}

		logger, err := observability.NewLogger(file, level)
		if err != nil {
			_ = file.Close()
			return zerolog.Nop(), nil, err
		}

		return logger, file, nil
	}
}

func (a *app) sessionController(ctx context.Context, logger zerolog.Logger) *application.SessionController {
	wallet, dialer := a.openWallet(ctx, a.settings.WalletName, logger)
	return application.NewSessionController(wallet, dialer, a.settings.ContractAddress, logger)
}

func (a *app) connect(ctx context.Context) (application.Session, error) {
	return a.sessionController(ctx, a.logger).Connect(ctx)
}

func (a *app) dashboard(ctx context.Context) (*application.PayerDashboard, application.Session, error) {
	session, err := a.connect(ctx)
	if err != nil {
		return nil, application.Session{}, err
	}

	return application.NewPayerDashboard(session, a.clock, a.logger), session, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
