package rpc

import (
	"context"

	"github.com/33cn/chain33/types"
	gcty "github.com/dicether/gamechannel/types"
)

func (c *channelClient) createTx(action *gcty.GameChannelAction) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(gcty.GameChannelX), types.Encode(action))
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

// Create 构造开通道交易
func (c *channelClient) Create(ctx context.Context, head *gcty.GameChannelCreate) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionCreate,
		Value: &gcty.GameChannelAction_Create{Create: head},
	})
}

// Close 构造协作关闭交易
func (c *channelClient) Close(ctx context.Context, head *gcty.GameChannelClose) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionClose,
		Value: &gcty.GameChannelAction_Close{Close: head},
	})
}

// Conflict 构造争议交易
func (c *channelClient) Conflict(ctx context.Context, head *gcty.GameChannelConflict) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionConflict,
		Value: &gcty.GameChannelAction_Conflict{Conflict: head},
	})
}

// Cancel 构造撤销交易
func (c *channelClient) Cancel(ctx context.Context, head *gcty.GameChannelCancel) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionCancel,
		Value: &gcty.GameChannelAction_Cancel{Cancel: head},
	})
}

// ForceEnd 构造强制结算交易
func (c *channelClient) ForceEnd(ctx context.Context, head *gcty.GameChannelForceEnd) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionForceEnd,
		Value: &gcty.GameChannelAction_ForceEnd{ForceEnd: head},
	})
}

// HouseDeposit 构造抵押注入交易
func (c *channelClient) HouseDeposit(ctx context.Context, head *gcty.HouseDeposit) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionHouseDeposit,
		Value: &gcty.GameChannelAction_HouseDeposit{HouseDeposit: head},
	})
}

// HouseWithdraw 构造抵押提取交易
func (c *channelClient) HouseWithdraw(ctx context.Context, head *gcty.HouseWithdraw) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionHouseWithdraw,
		Value: &gcty.GameChannelAction_HouseWithdraw{HouseWithdraw: head},
	})
}

// ProfitTransfer 构造利润划转交易
func (c *channelClient) ProfitTransfer(ctx context.Context, head *gcty.ProfitTransfer) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionProfitTransfer,
		Value: &gcty.GameChannelAction_ProfitTransfer{ProfitTransfer: head},
	})
}

// SetConfig 构造参数调整交易
func (c *channelClient) SetConfig(ctx context.Context, head *gcty.SetConfig) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionSetConfig,
		Value: &gcty.GameChannelAction_SetConfig{SetConfig: head},
	})
}

// TogglePause 构造暂停恢复交易
func (c *channelClient) TogglePause(ctx context.Context, head *gcty.TogglePause) (*types.UnsignTx, error) {
	return c.createTx(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionTogglePause,
		Value: &gcty.GameChannelAction_TogglePause{TogglePause: head},
	})
}
