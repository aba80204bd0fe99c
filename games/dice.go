package games

const diceRange = 100

func init() {
	Register(WagerDiceLower, &diceLower{})
	Register(WagerDiceHigher, &diceHigher{})
}

// diceLower 结果小于num即中奖, num为1..98, 0和99留作不可能的边界
type diceLower struct{}

func (d *diceLower) Name() string { return "dicelower" }

func (d *diceLower) CheckNum(num int64) bool {
	return num >= 1 && num <= diceRange-2
}

func (d *diceLower) UserProfit(num, betValue int64, serverSeed, userSeed []byte) (int64, error) {
	if Outcome(serverSeed, userSeed, diceRange) < num {
		return winProfit(betValue, diceRange, num)
	}
	return -betValue, nil
}

func (d *diceLower) MaxUserProfit(num, betValue int64) (int64, error) {
	return winProfit(betValue, diceRange, num)
}

// diceHigher 结果大于num即中奖
type diceHigher struct{}

func (d *diceHigher) Name() string { return "dicehigher" }

func (d *diceHigher) CheckNum(num int64) bool {
	return num >= 1 && num <= diceRange-2
}

func (d *diceHigher) UserProfit(num, betValue int64, serverSeed, userSeed []byte) (int64, error) {
	if Outcome(serverSeed, userSeed, diceRange) > num {
		return winProfit(betValue, diceRange, diceRange-num-1)
	}
	return -betValue, nil
}

func (d *diceHigher) MaxUserProfit(num, betValue int64) (int64, error) {
	return winProfit(betValue, diceRange, diceRange-num-1)
}
