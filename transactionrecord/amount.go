// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math/big"
	"strings"
)

// AmountDecimals - fractional digits of the base unit
const AmountDecimals = 8

var amountDivisor = new(big.Int).Exp(big.NewInt(10), big.NewInt(AmountDecimals), nil)

// AmountString - render base units as a decimal currency value
// e.g. 123456789 becomes "1.23456789"
func AmountString(amount *big.Int) string {
	sign := ""
	a := new(big.Int).Set(amount)
	if a.Sign() < 0 {
		sign = "-"
		a.Neg(a)
	}
	whole := new(big.Int)
	frac := new(big.Int)
	whole.QuoRem(a, amountDivisor, frac)
	s := sign + whole.String()
	if 0 != frac.Sign() {
		f := frac.String()
		f = strings.Repeat("0", AmountDecimals-len(f)) + f
		f = strings.TrimRight(f, "0")
		s += "." + f
	}
	return s
}
