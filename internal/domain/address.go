package domain

import "strings"

// Address is a hex account or contract address as typed or returned by the
// chain. Checksummed and lower-case forms of the same address are Equal.
type Address string

// NativeToken is the token sentinel for escrows funded in the chain's native
// currency rather than an ERC-20 token.
const NativeToken Address = "0x0000000000000000000000000000000000000000"

func (a Address) Normalized() string {
	return strings.ToLower(strings.TrimSpace(string(a)))
}

func (a Address) Equal(other Address) bool {
	return a.Normalized() == other.Normalized()
}

func (a Address) IsZero() bool {
	return a.Equal(NativeToken)
}

func (a Address) String() string {
	return string(a)
}

// Short renders 0x1234…abcd for narrow terminal columns.
func (a Address) Short() string {
	s := strings.TrimSpace(string(a))
	if len(s) <= 12 {
		return s
	}

	return s[:6] + "…" + s[len(s)-4:]
}
