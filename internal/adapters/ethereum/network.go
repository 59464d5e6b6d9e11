package ethereum

import "github.com/bnema/contractlock-cli/internal/domain"

var networkNames = map[uint64]string{
	1:        "mainnet",
	10:       "optimism",
	56:       "bnb",
	137:      "polygon",
	1337:     "localhost",
	8453:     "base",
	17000:    "holesky",
	31337:    "localhost",
	42161:    "arbitrum",
	80002:    "amoy",
	84532:    "base-sepolia",
	11155111: "sepolia",
}

func networkFor(chainID uint64) domain.Network {
	name, ok := networkNames[chainID]
	if !ok {
		name = "unknown"
	}
	return domain.Network{Name: name, ChainID: chainID}
}
