package games

func init() {
	Register(WagerWheel, &wheel{})
}

// 千分数倍率表, 按风险等级和段数索引, 已含抽水
var wheelPayTable = map[int64][]int64{
	110: {0, 1200, 1200, 0, 1200, 1200, 1200, 0, 1200, 2200},
	120: {0, 1500, 1200, 0, 1200, 1200, 0, 1200, 1200, 0, 1200, 1500, 0, 1200, 1200, 0, 1200, 1200, 0, 2600},
	210: {0, 1600, 0, 1600, 0, 1600, 0, 1600, 0, 3850},
	220: {0, 1800, 0, 1700, 0, 1700, 0, 1800, 0, 1700, 0, 1700, 0, 1800, 0, 1700, 0, 1700, 0, 4900},
	310: {0, 0, 0, 0, 0, 0, 0, 0, 0, 9850},
	320: {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 19700},
}

// wheel num为风险等级*100+段数, 风险1..3, 段数10或20
type wheel struct{}

func (w *wheel) Name() string { return "wheel" }

func (w *wheel) CheckNum(num int64) bool {
	_, ok := wheelPayTable[num]
	return ok
}

func (w *wheel) UserProfit(num, betValue int64, serverSeed, userSeed []byte) (int64, error) {
	table := wheelPayTable[num]
	res := Outcome(serverSeed, userSeed, int64(len(table)))
	return tableProfit(betValue, table[res])
}

func (w *wheel) MaxUserProfit(num, betValue int64) (int64, error) {
	table := wheelPayTable[num]
	max := int64(0)
	for _, m := range table {
		if m > max {
			max = m
		}
	}
	return tableProfit(betValue, max)
}
