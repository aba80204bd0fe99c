package executor

import (
	"github.com/33cn/chain33/types"
	gcty "github.com/dicether/gamechannel/types"
)

// Exec_Create 开通道
func (g *GameChannel) Exec_Create(payload *gcty.GameChannelCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).Create(payload)
}

// Exec_Close 协作关闭
func (g *GameChannel) Exec_Close(payload *gcty.GameChannelClose, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).Close(payload)
}

// Exec_Conflict 争议
func (g *GameChannel) Exec_Conflict(payload *gcty.GameChannelConflict, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).Conflict(payload)
}

// Exec_Cancel 撤销
func (g *GameChannel) Exec_Cancel(payload *gcty.GameChannelCancel, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).Cancel(payload)
}

// Exec_ForceEnd 超时强制结算
func (g *GameChannel) Exec_ForceEnd(payload *gcty.GameChannelForceEnd, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).ForceEnd(payload)
}

// Exec_HouseDeposit 庄家注入抵押
func (g *GameChannel) Exec_HouseDeposit(payload *gcty.HouseDeposit, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).HouseDeposit(payload)
}

// Exec_HouseWithdraw 庄家提取抵押
func (g *GameChannel) Exec_HouseWithdraw(payload *gcty.HouseWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).HouseWithdraw(payload)
}

// Exec_ProfitTransfer 利润划转
func (g *GameChannel) Exec_ProfitTransfer(payload *gcty.ProfitTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).ProfitTransfer(payload)
}

// Exec_SetConfig 参数调整
func (g *GameChannel) Exec_SetConfig(payload *gcty.SetConfig, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).SetConfig(payload)
}

// Exec_TogglePause 暂停或恢复开通道
func (g *GameChannel) Exec_TogglePause(payload *gcty.TogglePause, tx *types.Transaction, index int) (*types.Receipt, error) {
	return newAction(g, tx, index).TogglePause(payload)
}
