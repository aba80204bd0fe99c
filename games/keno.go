package games

import "math/bits"

const (
	kenoField    = 40
	kenoDraws    = 10
	kenoMaxPicks = 10
)

// 千分数倍率表, 按选中个数和命中个数索引, 已含抽水
var kenoPayTable = [kenoMaxPicks + 1][]int64{
	nil,
	{0, 3940},
	{0, 1790, 5370},
	{0, 0, 2740, 25000},
	{0, 0, 1700, 9000, 72000},
	{0, 0, 1400, 4000, 12000, 300000},
	{0, 0, 0, 3000, 8000, 50000, 500000},
	{0, 0, 0, 2000, 6000, 12000, 100000, 700000},
	{0, 0, 0, 2000, 4000, 11000, 67000, 400000, 900000},
	{0, 0, 0, 2000, 2500, 5000, 24000, 160000, 1000000, 1000000},
	{0, 0, 0, 1600, 2000, 4000, 7000, 26000, 100000, 500000, 1000000},
}

func init() {
	Register(WagerKeno, &keno{})
}

// keno num为40格的位掩码, 最多选10格, 从中抽出10个互不相同的号
type keno struct{}

func (k *keno) Name() string { return "keno" }

func (k *keno) CheckNum(num int64) bool {
	if num < 1 || num >= 1<<kenoField {
		return false
	}
	picks := bits.OnesCount64(uint64(num))
	return picks >= 1 && picks <= kenoMaxPicks
}

func (k *keno) UserProfit(num, betValue int64, serverSeed, userSeed []byte) (int64, error) {
	drawn := kenoDraw(serverSeed, userSeed)
	picks := bits.OnesCount64(uint64(num))
	hits := bits.OnesCount64(uint64(num & drawn))
	return tableProfit(betValue, kenoPayTable[picks][hits])
}

func (k *keno) MaxUserProfit(num, betValue int64) (int64, error) {
	picks := bits.OnesCount64(uint64(num))
	return tableProfit(betValue, kenoPayTable[picks][picks])
}

// kenoDraw 沿哈希链抽号, 重复则继续抽下一个
func kenoDraw(serverSeed, userSeed []byte) int64 {
	chain := newOutcomeChain(serverSeed, userSeed)
	var drawn int64
	count := 0
	for count < kenoDraws {
		slot := chain.next(kenoField)
		if drawn&(1<<uint(slot)) != 0 {
			continue
		}
		drawn |= 1 << uint(slot)
		count++
	}
	return drawn
}
