package domain

import (
	"fmt"
	"unicode"
)

type SessionState string

const (
	SessionDisconnected SessionState = "disconnected"
	SessionConnected    SessionState = "connected"
	SessionRoleSelected SessionState = "role_selected"
)

type Role string

const (
	RoleNone    Role = ""
	RoleCreator Role = "creator"
	RolePayer   Role = "payer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCreator, RolePayer:
		return true
	default:
		return false
	}
}

func (r Role) Label() string {
	switch r {
	case RoleCreator:
		return "Contract Creator"
	case RolePayer:
		return "Payer"
	default:
		return "none"
	}
}

type Network struct {
	Name    string
	ChainID uint64
}

func (n Network) String() string {
	if n.Name == "" {
		return fmt.Sprintf("chain %d", n.ChainID)
	}
	return fmt.Sprintf("%s (%d)", n.Name, n.ChainID)
}

// WalletProfile names a locally imported key. The key itself lives in the
// secret store under SecretRef.
type WalletProfile struct {
	Name      string
	Address   Address
	SecretRef string
}

// WalletSecretRef is the secret store key holding the named wallet's key.
func WalletSecretRef(name string) string {
	return "contractlock/wallets/" + name + "/private_key"
}

// ValidateWalletName accepts names usable as a single path segment.
func ValidateWalletName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidWalletName, name)
	}
	for _, r := range name {
		if r == '/' || r == '\\' || unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q", ErrInvalidWalletName, name)
		}
	}

	return nil
}
