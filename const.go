package decimal

import "math/big"

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
	bigTen = big.NewInt(10)
)

// Frequently used small values. They must never be used as operation
// destinations.
var (
	decimalZero = New(0, 0)
	decimalOne  = New(1, 0)
	decimalHalf = New(5, -1)
)
