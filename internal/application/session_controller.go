package application

import (
	"context"
	"fmt"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/rs/zerolog"
)

// Session is what a connected wallet hands to the creator form and the payer
// dashboard. It is read-only once Connect returns it.
type Session struct {
	Account  domain.Address
	Network  domain.Network
	Contract ports.EscrowContract
}

type SessionController struct {
	wallet          ports.Wallet
	dialer          ports.ContractDialer
	contractAddress domain.Address
	logger          zerolog.Logger

	state   domain.SessionState
	role    domain.Role
	session *Session
}

func NewSessionController(wallet ports.Wallet, dialer ports.ContractDialer, contractAddress domain.Address, logger zerolog.Logger) *SessionController {
	return &SessionController{
		wallet:          wallet,
		dialer:          dialer,
		contractAddress: contractAddress,
		logger:          logger,
		state:           domain.SessionDisconnected,
	}
}

func (c *SessionController) Connect(ctx context.Context) (Session, error) {
	if c.session != nil {
		return *c.session, nil
	}

	session, err := c.connect(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("wallet connection failed")
		return Session{}, err
	}

	c.session = &session
	c.state = domain.SessionConnected
	c.logger.Info().
		Str("account", session.Account.String()).
		Str("network", session.Network.String()).
		Str("contract", c.contractAddress.String()).
		Msg("wallet connected")

	return session, nil
}

func (c *SessionController) connect(ctx context.Context) (Session, error) {
	if c.wallet == nil || c.dialer == nil {
		return Session{}, domain.ErrWalletUnavailable
	}

	accounts, err := c.wallet.RequestAccounts(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return Session{}, fmt.Errorf("request accounts: %w: no accounts exposed", domain.ErrWalletUnavailable)
	}

	network, err := c.wallet.GetNetwork(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("get network: %w", err)
	}

	signer, err := c.wallet.GetSigner(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("get signer: %w", err)
	}

	contract, err := c.dialer.Dial(ctx, c.contractAddress, signer)
	if err != nil {
		return Session{}, fmt.Errorf("bind escrow contract: %w", err)
	}

	return Session{
		Account:  accounts[0],
		Network:  network,
		Contract: contract,
	}, nil
}

func (c *SessionController) SelectRole(role domain.Role) error {
	if c.session == nil {
		return domain.ErrNotConnected
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}

	c.role = role
	c.state = domain.SessionRoleSelected
	c.logger.Debug().Str("role", string(role)).Msg("role selected")

	return nil
}

func (c *SessionController) ClearRole() {
	if c.session == nil {
		return
	}

	c.role = domain.RoleNone
	c.state = domain.SessionConnected
}

func (c *SessionController) State() domain.SessionState {
	return c.state
}

func (c *SessionController) Role() domain.Role {
	return c.role
}

// Session reports the connected session, if any.
func (c *SessionController) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

func (c *SessionController) ContractAddress() domain.Address {
	return c.contractAddress
}
