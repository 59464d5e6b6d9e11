package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEther(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "whole", raw: "1", want: "1000000000000000000"},
		{name: "fraction", raw: "0.25", want: "250000000000000000"},
		{name: "leading point", raw: ".5", want: "500000000000000000"},
		{name: "trailing point", raw: "2.", want: "2000000000000000000"},
		{name: "surrounding space", raw: " 1.5 ", want: "1500000000000000000"},
		{name: "one wei", raw: "0.000000000000000001", want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEther(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseEtherRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"", "   ", ".", "-1", "1e18", "abc", "1.2.3", "0.0000000000000000001"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseEther(raw)
			require.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "0", FormatEther(nil))
	assert.Equal(t, "0", FormatEther(big.NewInt(0)))
	assert.Equal(t, "1", FormatEther(mustParseEther(t, "1")))
	assert.Equal(t, "0.25", FormatEther(mustParseEther(t, "0.25")))
	assert.Equal(t, "0.000000000000000001", FormatEther(big.NewInt(1)))
	assert.Equal(t, "-1.5", FormatEther(new(big.Int).Neg(mustParseEther(t, "1.5"))))
}

func TestParsePayerListKeepsOrderAndDuplicates(t *testing.T) {
	got := ParsePayerList(" 0xB , 0xA,0xB ,")

	assert.Equal(t, []Address{"0xB", "0xA", "0xB", ""}, got)
}

func TestParseDeadline(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	got, err := ParseDeadline("2026-03-01T14:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC).Unix(), got.Unix())

	withSeconds, err := ParseDeadline("2026-03-01 14:30:45", loc)
	require.NoError(t, err)
	assert.Equal(t, got.Unix()+45, withSeconds.Unix())

	_, err = ParseDeadline("tomorrow", loc)
	require.ErrorIs(t, err, ErrInvalidDeadline)

	_, err = ParseDeadline("", loc)
	require.ErrorIs(t, err, ErrInvalidDeadline)
}

func TestParseEscrowID(t *testing.T) {
	id, err := ParseEscrowID(" 007 ")
	require.NoError(t, err)
	assert.Equal(t, EscrowID("7"), id)

	value, err := id.BigInt()
	require.NoError(t, err)
	assert.Equal(t, int64(7), value.Int64())

	for _, raw := range []string{"", "-1", "0x10", "one"} {
		_, err := ParseEscrowID(raw)
		require.ErrorIs(t, err, ErrInvalidEscrowID, raw)
	}
}

func TestAddressEqualIgnoresCase(t *testing.T) {
	a := Address("0xAbCdEf0123456789aBcDeF0123456789AbCdEf01")

	assert.True(t, a.Equal("0xabcdef0123456789abcdef0123456789abcdef01"))
	assert.True(t, a.Equal(" 0XABCDEF0123456789ABCDEF0123456789ABCDEF01"))
	assert.False(t, a.Equal(NativeToken))
	assert.True(t, NativeToken.IsZero())
	assert.Equal(t, "0xAbCd…Ef01", a.Short())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RolePayer.Valid())
	assert.True(t, RoleCreator.Valid())
	assert.False(t, RoleNone.Valid())
	assert.False(t, Role("admin").Valid())
}

func TestValidateWalletName(t *testing.T) {
	for _, name := range []string{"main", "ledger-2", "hot_wallet"} {
		assert.NoError(t, ValidateWalletName(name), name)
	}
	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "two words", "tab\t"} {
		assert.ErrorIs(t, ValidateWalletName(name), ErrInvalidWalletName, name)
	}
	assert.Equal(t, "contractlock/wallets/main/private_key", WalletSecretRef("main"))
}

func mustParseEther(t *testing.T, raw string) *big.Int {
	t.Helper()
	v, err := ParseEther(raw)
	require.NoError(t, err)
	return v
}
