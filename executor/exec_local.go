package executor

import (
	"github.com/33cn/chain33/types"
	gcty "github.com/dicether/gamechannel/types"
)

func isChannelLog(ty int32) bool {
	switch ty {
	case gcty.TyLogChannelCreate, gcty.TyLogChannelClose, gcty.TyLogChannelConflict,
		gcty.TyLogChannelCancel, gcty.TyLogChannelForceEnd:
		return true
	}
	return false
}

func addSessionIndex(log *gcty.ReceiptGameChannel) []*types.KeyValue {
	record := types.Encode(&gcty.ReqSessionById{SessionId: log.SessionId})
	return []*types.KeyValue{
		{Key: calcSessionStatusIndexKey(log.Status, log.Index), Value: record},
		{Key: calcSessionAddrIndexKey(log.Status, log.UserAddr, log.Index), Value: record},
	}
}

func delSessionIndex(log *gcty.ReceiptGameChannel) []*types.KeyValue {
	return []*types.KeyValue{
		{Key: calcSessionStatusIndexKey(log.Status, log.Index), Value: nil},
		{Key: calcSessionAddrIndexKey(log.Status, log.UserAddr, log.Index), Value: nil},
	}
}

func addPrevSessionIndex(log *gcty.ReceiptGameChannel) []*types.KeyValue {
	record := types.Encode(&gcty.ReqSessionById{SessionId: log.SessionId})
	return []*types.KeyValue{
		{Key: calcSessionStatusIndexKey(log.PrevStatus, log.PrevIndex), Value: record},
		{Key: calcSessionAddrIndexKey(log.PrevStatus, log.UserAddr, log.PrevIndex), Value: record},
	}
}

func delPrevSessionIndex(log *gcty.ReceiptGameChannel) []*types.KeyValue {
	return []*types.KeyValue{
		{Key: calcSessionStatusIndexKey(log.PrevStatus, log.PrevIndex), Value: nil},
		{Key: calcSessionAddrIndexKey(log.PrevStatus, log.UserAddr, log.PrevIndex), Value: nil},
	}
}

// execLocal 按收据维护状态和地址两类索引
func (g *GameChannel) execLocal(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receiptData.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receiptData.Logs {
		if !isChannelLog(item.Ty) {
			continue
		}
		var log gcty.ReceiptGameChannel
		if err := types.Decode(item.Log, &log); err != nil {
			panic(err) //数据错误了, 已经被修改了
		}
		set.KV = append(set.KV, addSessionIndex(&log)...)
		if item.Ty != gcty.TyLogChannelCreate {
			set.KV = append(set.KV, delPrevSessionIndex(&log)...)
		}
	}
	return set, nil
}

// execDelLocal 回滚索引
func (g *GameChannel) execDelLocal(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receiptData.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receiptData.Logs {
		if !isChannelLog(item.Ty) {
			continue
		}
		var log gcty.ReceiptGameChannel
		if err := types.Decode(item.Log, &log); err != nil {
			panic(err) //数据错误了, 已经被修改了
		}
		set.KV = append(set.KV, delSessionIndex(&log)...)
		if item.Ty != gcty.TyLogChannelCreate {
			set.KV = append(set.KV, addPrevSessionIndex(&log)...)
		}
	}
	return set, nil
}

// ExecLocal_Create 开通道索引
func (g *GameChannel) ExecLocal_Create(payload *gcty.GameChannelCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocal(receiptData)
}

// ExecLocal_Close 协作关闭索引
func (g *GameChannel) ExecLocal_Close(payload *gcty.GameChannelClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocal(receiptData)
}

// ExecLocal_Conflict 争议索引
func (g *GameChannel) ExecLocal_Conflict(payload *gcty.GameChannelConflict, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocal(receiptData)
}

// ExecLocal_Cancel 撤销索引
func (g *GameChannel) ExecLocal_Cancel(payload *gcty.GameChannelCancel, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocal(receiptData)
}

// ExecLocal_ForceEnd 强制结算索引
func (g *GameChannel) ExecLocal_ForceEnd(payload *gcty.GameChannelForceEnd, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execLocal(receiptData)
}

// ExecLocal_HouseDeposit 账本操作不维护索引
func (g *GameChannel) ExecLocal_HouseDeposit(payload *gcty.HouseDeposit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_HouseWithdraw 账本操作不维护索引
func (g *GameChannel) ExecLocal_HouseWithdraw(payload *gcty.HouseWithdraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_ProfitTransfer 账本操作不维护索引
func (g *GameChannel) ExecLocal_ProfitTransfer(payload *gcty.ProfitTransfer, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_SetConfig 账本操作不维护索引
func (g *GameChannel) ExecLocal_SetConfig(payload *gcty.SetConfig, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecLocal_TogglePause 账本操作不维护索引
func (g *GameChannel) ExecLocal_TogglePause(payload *gcty.TogglePause, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}
