package executor

import (
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/types"
	"github.com/dicether/gamechannel/games"
	gcty "github.com/dicether/gamechannel/types"
)

func (a *action) requireOwner() error {
	if a.fromaddr != subcfg.OwnerAddr {
		return gcty.ErrNotOwnerAddr
	}
	return nil
}

func (a *action) ledgerReceipt(actionTy int32, ledger *gcty.HouseLedger, transfers ...*types.Receipt) *types.Receipt {
	receipt := &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{{Key: ledgerKey(), Value: types.Encode(ledger)}},
		Logs: []*types.ReceiptLog{ledgerLog(actionTy, ledger)},
	}
	return mergeReceipt(receipt, transfers...)
}

// HouseDeposit 庄家追加抵押, 资金冻结在执行器下
func (a *action) HouseDeposit(payload *gcty.HouseDeposit) (*types.Receipt, error) {
	if err := a.requireOwner(); err != nil {
		return nil, err
	}
	if payload.Amount <= 0 {
		return nil, gcty.ErrInvalidParam
	}
	ledger, err := getLedger(a.db)
	if err != nil {
		return nil, err
	}
	if acc := a.coinsAccount.LoadExecAccount(a.fromaddr, a.execaddr); acc.Balance < payload.Amount {
		return nil, types.ErrNoBalance
	}
	receipt, err := a.coinsAccount.ExecFrozen(a.fromaddr, a.execaddr, payload.Amount)
	if err != nil {
		glog.Error("house deposit", "addr", a.fromaddr, "amount", payload.Amount, "err", err)
		return nil, err
	}
	ledger.HouseStake, err = games.SafeAdd(ledger.HouseStake, payload.Amount)
	if err != nil {
		return nil, err
	}
	return a.ledgerReceipt(gcty.GameChannelActionHouseDeposit, ledger, receipt), nil
}

// HouseWithdraw 庄家提取抵押, 不得削减到无法覆盖未结会话的最坏敞口;
// all为真是停摆清算, 仅在暂停足够久后允许
func (a *action) HouseWithdraw(payload *gcty.HouseWithdraw) (*types.Receipt, error) {
	if err := a.requireOwner(); err != nil {
		return nil, err
	}
	ledger, err := getLedger(a.db)
	if err != nil {
		return nil, err
	}
	if payload.All {
		if !ledger.Paused {
			return nil, gcty.ErrChannelNotPaused
		}
		if a.blocktime-ledger.PausedSince < subcfg.WithdrawAllTimeout {
			return nil, gcty.ErrTimeoutNotReached
		}
		amount := ledger.HouseStake
		ledger.HouseStake = 0
		ledger.HouseProfit = 0
		var transfers []*types.Receipt
		if amount > 0 {
			receipt, err := a.coinsAccount.ExecActive(a.fromaddr, a.execaddr, amount)
			if err != nil {
				glog.Error("house withdraw all", "amount", amount, "err", err)
				return nil, err
			}
			transfers = append(transfers, receipt)
		}
		return a.ledgerReceipt(gcty.GameChannelActionHouseWithdraw, ledger, transfers...), nil
	}
	if payload.Amount <= 0 {
		return nil, gcty.ErrInvalidParam
	}
	newStake, err := games.SafeSub(ledger.HouseStake, payload.Amount)
	if err != nil || newStake < 0 {
		return nil, gcty.ErrBankrollTooLow
	}
	needed, err := games.SafeMul(int64(ledger.ActiveSessionCount), a.maxBalance())
	if err != nil {
		return nil, err
	}
	if newStake < needed {
		return nil, gcty.ErrBankrollTooLow
	}
	if ledger.HouseProfit > 0 && newStake < ledger.HouseProfit {
		return nil, gcty.ErrBankrollTooLow
	}
	receipt, err := a.coinsAccount.ExecActive(a.fromaddr, a.execaddr, payload.Amount)
	if err != nil {
		glog.Error("house withdraw", "amount", payload.Amount, "err", err)
		return nil, err
	}
	ledger.HouseStake = newStake
	return a.ledgerReceipt(gcty.GameChannelActionHouseWithdraw, ledger, receipt), nil
}

// ProfitTransfer 任何人可触发, 冷却期后把正的累计利润划给金库地址
func (a *action) ProfitTransfer(payload *gcty.ProfitTransfer) (*types.Receipt, error) {
	ledger, err := getLedger(a.db)
	if err != nil {
		return nil, err
	}
	if a.blocktime-ledger.LastProfitTransfer < ledger.ProfitTransferTimeSpan {
		return nil, gcty.ErrProfitCooldown
	}
	ledger.LastProfitTransfer = a.blocktime
	var transfers []*types.Receipt
	if ledger.HouseProfit > 0 {
		treasury := ledger.TreasuryAddr
		if treasury == "" {
			treasury = subcfg.OwnerAddr
		}
		profit := ledger.HouseProfit
		r1, err := a.coinsAccount.ExecActive(subcfg.OwnerAddr, a.execaddr, profit)
		if err != nil {
			glog.Error("profit transfer", "profit", profit, "err", err)
			return nil, err
		}
		r2, err := a.coinsAccount.ExecTransfer(subcfg.OwnerAddr, treasury, a.execaddr, profit)
		if err != nil {
			return nil, err
		}
		ledger.HouseStake, err = games.SafeSub(ledger.HouseStake, profit)
		if err != nil {
			return nil, err
		}
		ledger.HouseProfit = 0
		transfers = append(transfers, r1, r2)
	}
	return a.ledgerReceipt(gcty.GameChannelActionProfitTransfer, ledger, transfers...), nil
}

// SetConfig 调整押注边界, 冷却时长和金库地址, 零值字段保持不变
func (a *action) SetConfig(payload *gcty.SetConfig) (*types.Receipt, error) {
	if err := a.requireOwner(); err != nil {
		return nil, err
	}
	ledger, err := getLedger(a.db)
	if err != nil {
		return nil, err
	}
	minStake := ledger.MinStake
	maxStake := ledger.MaxStake
	if payload.MinStake > 0 {
		minStake = payload.MinStake
	}
	if payload.MaxStake > 0 {
		maxStake = payload.MaxStake
	}
	if minStake <= 0 || maxStake < minStake {
		return nil, gcty.ErrStakeOutOfRange
	}
	ledger.MinStake = minStake
	ledger.MaxStake = maxStake
	if payload.ProfitTransferTimeSpan != 0 {
		if payload.ProfitTransferTimeSpan < gcty.MinProfitTransferTimeSpan ||
			payload.ProfitTransferTimeSpan > gcty.MaxProfitTransferTimeSpan {
			return nil, gcty.ErrTimeSpanRange
		}
		ledger.ProfitTransferTimeSpan = payload.ProfitTransferTimeSpan
	}
	if payload.TreasuryAddr != "" {
		if err := address.CheckAddress(payload.TreasuryAddr); err != nil {
			return nil, gcty.ErrInvalidParam
		}
		ledger.TreasuryAddr = payload.TreasuryAddr
	}
	return a.ledgerReceipt(gcty.GameChannelActionSetConfig, ledger), nil
}

// TogglePause 暂停只拦截开新通道, 不影响争议结算
func (a *action) TogglePause(payload *gcty.TogglePause) (*types.Receipt, error) {
	if err := a.requireOwner(); err != nil {
		return nil, err
	}
	ledger, err := getLedger(a.db)
	if err != nil {
		return nil, err
	}
	if payload.Pause {
		if ledger.Paused {
			return nil, gcty.ErrChannelPaused
		}
		ledger.Paused = true
		ledger.PausedSince = a.blocktime
	} else {
		if !ledger.Paused {
			return nil, gcty.ErrChannelNotPaused
		}
		ledger.Paused = false
		ledger.PausedSince = 0
	}
	return a.ledgerReceipt(gcty.GameChannelActionTogglePause, ledger), nil
}
