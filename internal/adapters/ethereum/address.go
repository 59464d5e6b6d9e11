package ethereum

import (
	"fmt"
	"strings"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common"
)

func toCommonAddress(address domain.Address) (common.Address, error) {
	trimmed := strings.TrimSpace(address.String())
	if !common.IsHexAddress(trimmed) {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address.String())
	}
	return common.HexToAddress(trimmed), nil
}

func toCommonAddresses(addresses []domain.Address) ([]common.Address, error) {
	result := make([]common.Address, 0, len(addresses))
	for _, address := range addresses {
		converted, err := toCommonAddress(address)
		if err != nil {
			return nil, err
		}
		result = append(result, converted)
	}
	return result, nil
}

func fromCommonAddress(address common.Address) domain.Address {
	return domain.Address(address.Hex())
}
