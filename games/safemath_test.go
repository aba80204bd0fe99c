package games

import (
	"math"
	"testing"

	gcty "github.com/dicether/gamechannel/types"
	"github.com/stretchr/testify/assert"
)

func TestSafeAdd(t *testing.T) {
	r, err := SafeAdd(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), r)

	r, err = SafeAdd(math.MaxInt64, -1)
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), r)

	_, err = SafeAdd(math.MaxInt64, 1)
	assert.Equal(t, gcty.ErrAmountOverflow, err)
	_, err = SafeAdd(math.MinInt64, -1)
	assert.Equal(t, gcty.ErrAmountOverflow, err)
}

func TestSafeSub(t *testing.T) {
	r, err := SafeSub(5, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(-2), r)

	_, err = SafeSub(math.MinInt64, 1)
	assert.Equal(t, gcty.ErrAmountOverflow, err)
	_, err = SafeSub(math.MaxInt64, -1)
	assert.Equal(t, gcty.ErrAmountOverflow, err)
	_, err = SafeSub(0, math.MinInt64)
	assert.Equal(t, gcty.ErrAmountOverflow, err)
}

func TestSafeMul(t *testing.T) {
	r, err := SafeMul(0, math.MinInt64)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), r)

	r, err = SafeMul(-3, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(-12), r)

	_, err = SafeMul(math.MinInt64, -1)
	assert.Equal(t, gcty.ErrAmountOverflow, err)
	_, err = SafeMul(-1, math.MinInt64)
	assert.Equal(t, gcty.ErrAmountOverflow, err)
	_, err = SafeMul(math.MaxInt64, 2)
	assert.Equal(t, gcty.ErrAmountOverflow, err)
	_, err = SafeMul(math.MaxInt64/2, 3)
	assert.Equal(t, gcty.ErrAmountOverflow, err)
}
