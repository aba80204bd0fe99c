package games

import "math/bits"

const chooseRange = 12

func init() {
	Register(WagerChooseFrom12, &chooseFrom12{})
}

// chooseFrom12 num为12格的位掩码, 不允许空选或全选
type chooseFrom12 struct{}

func (c *chooseFrom12) Name() string { return "choosefrom12" }

func (c *chooseFrom12) CheckNum(num int64) bool {
	return num >= 1 && num <= (1<<chooseRange)-2
}

func (c *chooseFrom12) UserProfit(num, betValue int64, serverSeed, userSeed []byte) (int64, error) {
	res := Outcome(serverSeed, userSeed, chooseRange)
	if num&(1<<uint(res)) != 0 {
		return winProfit(betValue, chooseRange, int64(bits.OnesCount64(uint64(num))))
	}
	return -betValue, nil
}

func (c *chooseFrom12) MaxUserProfit(num, betValue int64) (int64, error) {
	return winProfit(betValue, chooseRange, int64(bits.OnesCount64(uint64(num))))
}
