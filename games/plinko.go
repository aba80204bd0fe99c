package games

func init() {
	Register(WagerPlinko, &plinko{})
}

// 千分数倍率表, 按风险等级和行数索引, 桶号为向右次数, 已含抽水
var plinkoPayTable = map[int64][]int64{
	108: {5600, 2100, 1100, 1000, 500, 1000, 1100, 2100, 5600},
	112: {8100, 3000, 1600, 1300, 1100, 1000, 500, 1000, 1100, 1300, 1600, 3000, 8100},
	116: {16000, 9000, 2000, 1400, 1400, 1200, 1100, 1000, 500, 1000, 1100, 1200, 1400, 1400, 2000, 9000, 16000},
	208: {13000, 3000, 1300, 700, 400, 700, 1300, 3000, 13000},
	212: {33000, 11000, 4000, 2000, 1100, 600, 300, 600, 1100, 2000, 4000, 11000, 33000},
	216: {110000, 41000, 10000, 5000, 3000, 1500, 1000, 500, 300, 500, 1000, 1500, 3000, 5000, 10000, 41000, 110000},
	308: {29000, 4000, 1500, 300, 200, 300, 1500, 4000, 29000},
	312: {170000, 24000, 8100, 2000, 700, 200, 200, 200, 700, 2000, 8100, 24000, 170000},
	316: {1000000, 130000, 26000, 9000, 4000, 2000, 200, 200, 200, 200, 200, 2000, 4000, 9000, 26000, 130000, 1000000},
}

// plinko num为风险等级*100+行数, 风险1..3, 行数8/12/16
type plinko struct{}

func (p *plinko) Name() string { return "plinko" }

func (p *plinko) CheckNum(num int64) bool {
	_, ok := plinkoPayTable[num]
	return ok
}

func (p *plinko) UserProfit(num, betValue int64, serverSeed, userSeed []byte) (int64, error) {
	table := plinkoPayTable[num]
	rows := len(table) - 1
	chain := newOutcomeChain(serverSeed, userSeed)
	bucket := 0
	for i := 0; i < rows; i++ {
		if chain.next(2) == 1 {
			bucket++
		}
	}
	return tableProfit(betValue, table[bucket])
}

func (p *plinko) MaxUserProfit(num, betValue int64) (int64, error) {
	table := plinkoPayTable[num]
	max := int64(0)
	for _, m := range table {
		if m > max {
			max = m
		}
	}
	return tableProfit(betValue, max)
}
