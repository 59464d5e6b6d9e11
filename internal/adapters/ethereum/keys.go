package ethereum

import (
	"fmt"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyManager handles secp256k1 account keys in 0x-prefixed hex form.
type KeyManager struct{}

var _ ports.KeyManager = KeyManager{}

func (KeyManager) Parse(raw string) (domain.Address, string, error) {
	key, err := ParsePrivateKey(raw)
	if err != nil {
		return "", "", err
	}

	return AddressOf(key), hexutil.Encode(crypto.FromECDSA(key)), nil
}

func (KeyManager) Generate() (domain.Address, string, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", "", fmt.Errorf("generate private key: %w", err)
	}

	return AddressOf(key), hexutil.Encode(crypto.FromECDSA(key)), nil
}
