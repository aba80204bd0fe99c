// Package games 定义押注玩法的赔付模块和注册表
package games

import (
	"math/big"
	"sync"

	"github.com/33cn/chain33/common"
	gcty "github.com/dicether/gamechannel/types"
)

// 玩法类型标签
const (
	WagerDiceLower    = 1
	WagerDiceHigher   = 2
	WagerChooseFrom12 = 3
	WagerFlipACoin    = 4
	WagerKeno         = 5
	WagerWheel        = 6
	WagerPlinko       = 7
)

// Wager 单一玩法的赔付模块
// UserProfit 返回该回合用户的净盈亏(正为用户赢), 输时为 -betValue
// MaxUserProfit 返回该注理论上的最大净赢, 用于风控和强制结算
type Wager interface {
	Name() string
	CheckNum(num int64) bool
	UserProfit(num, betValue int64, serverSeed, userSeed []byte) (int64, error)
	MaxUserProfit(num, betValue int64) (int64, error)
}

var (
	regMu  sync.RWMutex
	wagers = make(map[int32]Wager)
)

// Register 注册玩法, 重复注册会panic
func Register(wagerType int32, w Wager) {
	regMu.Lock()
	defer regMu.Unlock()
	if w == nil {
		panic("games: Register wager is nil")
	}
	if _, dup := wagers[wagerType]; dup {
		panic("games: Register called twice for wager " + w.Name())
	}
	wagers[wagerType] = w
}

// Get 按类型取玩法
func Get(wagerType int32) (Wager, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	w, ok := wagers[wagerType]
	if !ok {
		return nil, gcty.ErrInvalidWagerType
	}
	return w, nil
}

// Outcome 从双方种子推导 [0, modulus) 上的均匀结果
func Outcome(serverSeed, userSeed []byte, modulus int64) int64 {
	h := common.Sha256(append(append([]byte{}, serverSeed...), userSeed...))
	n := new(big.Int).SetBytes(h)
	return n.Mod(n, big.NewInt(modulus)).Int64()
}

// outcomeChain 哈希链抽取, 用于需要多次抽样的玩法
type outcomeChain struct {
	h []byte
}

func newOutcomeChain(serverSeed, userSeed []byte) *outcomeChain {
	return &outcomeChain{h: common.Sha256(append(append([]byte{}, serverSeed...), userSeed...))}
}

func (c *outcomeChain) next(modulus int64) int64 {
	n := new(big.Int).SetBytes(c.h)
	r := n.Mod(n, big.NewInt(modulus)).Int64()
	c.h = common.Sha256(c.h)
	return r
}

// winProfit 中奖净赢: 毛赔付按份额计算后扣除抽水, 再减去本金
func winProfit(betValue, modulus, winSlots int64) (int64, error) {
	gross, err := SafeMul(betValue, modulus)
	if err != nil {
		return 0, err
	}
	gross /= winSlots
	edged, err := SafeMul(gross, gcty.HouseEdgeDivisor-gcty.HouseEdge)
	if err != nil {
		return 0, err
	}
	return SafeSub(edged/gcty.HouseEdgeDivisor, betValue)
}

// tableProfit 查表净赢, 表值为千分数倍率(含抽水)
func tableProfit(betValue, mult int64) (int64, error) {
	gross, err := SafeMul(betValue, mult)
	if err != nil {
		return 0, err
	}
	return SafeSub(gross/1000, betValue)
}

// ComputeBalance 校验参数并计算回合后的新余额
func ComputeBalance(wagerType int32, num, betValue int64, serverSeed, userSeed []byte, priorBalance int64) (int64, error) {
	w, err := Get(wagerType)
	if err != nil {
		return 0, err
	}
	if !w.CheckNum(num) {
		return 0, gcty.ErrInvalidWagerNum
	}
	profit, err := w.UserProfit(num, betValue, serverSeed, userSeed)
	if err != nil {
		return 0, err
	}
	return SafeAdd(priorBalance, profit)
}

// CheckBet 校验押注参数和单注风险上限
func CheckBet(wagerType int32, num, betValue, minBankroll int64) error {
	if betValue <= 0 {
		return gcty.ErrInvalidParam
	}
	w, err := Get(wagerType)
	if err != nil {
		return err
	}
	if !w.CheckNum(num) {
		return gcty.ErrInvalidWagerNum
	}
	maxProfit, err := w.MaxUserProfit(num, betValue)
	if err != nil {
		return err
	}
	if maxProfit > minBankroll/gcty.MaxBetDivisor {
		return gcty.ErrBetTooHigh
	}
	return nil
}

// MaxBet 给定中奖概率(以ProbabilityDivisor为基数)下可接受的最大押注,
// 保证单局最坏净赢不超过 minBankroll/MaxBetDivisor
func MaxBet(winProbability, minBankroll int64) (int64, error) {
	if winProbability <= 0 || winProbability >= gcty.ProbabilityDivisor {
		return 0, gcty.ErrInvalidParam
	}
	maxWin := minBankroll / gcty.MaxBetDivisor
	num, err := SafeMul(winProbability, gcty.HouseEdgeDivisor)
	if err != nil {
		return 0, err
	}
	den := int64(gcty.ProbabilityDivisor)*(gcty.HouseEdgeDivisor-gcty.HouseEdge) - num
	if den <= 0 {
		return maxWin, nil
	}
	bet, err := SafeMul(maxWin, num)
	if err != nil {
		return 0, err
	}
	return bet / den, nil
}
