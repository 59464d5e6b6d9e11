package ethereum

import (
	"testing"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// First account of the default hardhat/anvil mnemonic.
const devKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestKeyManagerParseCanonicalizes(t *testing.T) {
	var keys KeyManager

	for _, raw := range []string{devKey, "0x" + devKey, "  0x" + devKey + "\n"} {
		address, encoded, err := keys.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, domain.Address("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), address)
		assert.Equal(t, "0x"+devKey, encoded)
	}

	_, _, err := keys.Parse("0x1234")
	require.Error(t, err)
}

func TestKeyManagerGenerateRoundTrips(t *testing.T) {
	var keys KeyManager

	address, encoded, err := keys.Generate()
	require.NoError(t, err)

	parsed, reencoded, err := keys.Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, address, parsed)
	assert.Equal(t, encoded, reencoded)
}
