package executor

import (
	"github.com/33cn/chain33/types"
	gcty "github.com/dicether/gamechannel/types"
)

// ExecDelLocal_Create 回滚开通道索引
func (g *GameChannel) ExecDelLocal_Create(payload *gcty.GameChannelCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocal(receiptData)
}

// ExecDelLocal_Close 回滚协作关闭索引
func (g *GameChannel) ExecDelLocal_Close(payload *gcty.GameChannelClose, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocal(receiptData)
}

// ExecDelLocal_Conflict 回滚争议索引
func (g *GameChannel) ExecDelLocal_Conflict(payload *gcty.GameChannelConflict, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocal(receiptData)
}

// ExecDelLocal_Cancel 回滚撤销索引
func (g *GameChannel) ExecDelLocal_Cancel(payload *gcty.GameChannelCancel, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocal(receiptData)
}

// ExecDelLocal_ForceEnd 回滚强制结算索引
func (g *GameChannel) ExecDelLocal_ForceEnd(payload *gcty.GameChannelForceEnd, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return g.execDelLocal(receiptData)
}

// ExecDelLocal_HouseDeposit 账本操作无索引可回滚
func (g *GameChannel) ExecDelLocal_HouseDeposit(payload *gcty.HouseDeposit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_HouseWithdraw 账本操作无索引可回滚
func (g *GameChannel) ExecDelLocal_HouseWithdraw(payload *gcty.HouseWithdraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_ProfitTransfer 账本操作无索引可回滚
func (g *GameChannel) ExecDelLocal_ProfitTransfer(payload *gcty.ProfitTransfer, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_SetConfig 账本操作无索引可回滚
func (g *GameChannel) ExecDelLocal_SetConfig(payload *gcty.SetConfig, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal_TogglePause 账本操作无索引可回滚
func (g *GameChannel) ExecDelLocal_TogglePause(payload *gcty.TogglePause, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}
