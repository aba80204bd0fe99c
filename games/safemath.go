package games

import (
	"math"

	gcty "github.com/dicether/gamechannel/types"
)

// SafeAdd 溢出即报错的加法
func SafeAdd(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, gcty.ErrAmountOverflow
	}
	return a + b, nil
}

// SafeSub 溢出即报错的减法
func SafeSub(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, gcty.ErrAmountOverflow
	}
	return a - b, nil
}

// SafeMul 溢出即报错的乘法
func SafeMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, gcty.ErrAmountOverflow
	}
	c := a * b
	if c/b != a {
		return 0, gcty.ErrAmountOverflow
	}
	return c, nil
}
