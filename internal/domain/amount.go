package domain

import (
	"fmt"
	"math/big"
	"strings"
)

const etherDecimals = 18

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(etherDecimals), nil)

// ParseEther converts a decimal ether amount such as "0.25" into wei.
func ParseEther(raw string) (*big.Int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	whole, frac, hasPoint := strings.Cut(value, ".")
	if hasPoint && frac == "" && whole == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if len(frac) > etherDecimals {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, raw, etherDecimals)
	}

	digits := whole + frac + strings.Repeat("0", etherDecimals-len(frac))
	wei, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	return wei, nil
}

// FormatEther renders wei as a decimal ether string without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	sign := ""
	abs := new(big.Int).Set(wei)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}

	whole, rem := new(big.Int).QuoRem(abs, weiPerEther, new(big.Int))
	if rem.Sign() == 0 {
		return sign + whole.String()
	}

	frac := rem.String()
	frac = strings.Repeat("0", etherDecimals-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")

	return sign + whole.String() + "." + frac
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
