package rpc

import (
	"context"
	"encoding/hex"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"
	gcty "github.com/dicether/gamechannel/types"
)

// CreateChannelTx 构造开通道交易(未签名, hex编码)
func (c *Jrpc) CreateChannelTx(parm *CreateChannelTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	serverCommitment, err := common.FromHex(parm.ServerCommitment)
	if err != nil {
		return types.ErrInvalidParam
	}
	userCommitment, err := common.FromHex(parm.UserCommitment)
	if err != nil {
		return types.ErrInvalidParam
	}
	sig, err := parm.ServerSig.toPack()
	if err != nil {
		return err
	}
	head := &gcty.GameChannelCreate{
		Stake:            parm.Stake,
		PrevSessionId:    parm.PrevSessionID,
		CreateBefore:     parm.CreateBefore,
		ServerCommitment: serverCommitment,
		UserCommitment:   userCommitment,
		ServerSig:        sig,
	}
	reply, err := c.cli.Create(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// CloseChannelTx 构造协作关闭交易
func (c *Jrpc) CloseChannelTx(parm *CloseChannelTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	serverCommitment, err := common.FromHex(parm.ServerCommitment)
	if err != nil {
		return types.ErrInvalidParam
	}
	userCommitment, err := common.FromHex(parm.UserCommitment)
	if err != nil {
		return types.ErrInvalidParam
	}
	sig, err := parm.PeerSig.toPack()
	if err != nil {
		return err
	}
	head := &gcty.GameChannelClose{
		SessionId:        parm.SessionID,
		RoundId:          parm.RoundID,
		Balance:          parm.Balance,
		ServerCommitment: serverCommitment,
		UserCommitment:   userCommitment,
		PeerSig:          sig,
		UserAddr:         parm.UserAddr,
	}
	reply, err := c.cli.Close(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// ConflictTx 构造争议交易
func (c *Jrpc) ConflictTx(parm *ConflictTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	serverCommitment, err := common.FromHex(parm.ServerCommitment)
	if err != nil {
		return types.ErrInvalidParam
	}
	userCommitment, err := common.FromHex(parm.UserCommitment)
	if err != nil {
		return types.ErrInvalidParam
	}
	sig, err := parm.PeerSig.toPack()
	if err != nil {
		return err
	}
	var serverSeed, userSeed []byte
	if parm.ServerSeed != "" {
		if serverSeed, err = common.FromHex(parm.ServerSeed); err != nil {
			return types.ErrInvalidParam
		}
	}
	if parm.UserSeed != "" {
		if userSeed, err = common.FromHex(parm.UserSeed); err != nil {
			return types.ErrInvalidParam
		}
	}
	head := &gcty.GameChannelConflict{
		SessionId:        parm.SessionID,
		RoundId:          parm.RoundID,
		WagerType:        parm.WagerType,
		Num:              parm.Num,
		BetValue:         parm.BetValue,
		Balance:          parm.Balance,
		ServerCommitment: serverCommitment,
		UserCommitment:   userCommitment,
		PeerSig:          sig,
		ServerSeed:       serverSeed,
		UserSeed:         userSeed,
		UserAddr:         parm.UserAddr,
	}
	reply, err := c.cli.Conflict(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// CancelTx 构造撤销交易
func (c *Jrpc) CancelTx(parm *SessionTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Cancel(context.Background(), &gcty.GameChannelCancel{
		SessionId: parm.SessionID,
		UserAddr:  parm.UserAddr,
	})
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// ForceEndTx 构造强制结算交易
func (c *Jrpc) ForceEndTx(parm *SessionTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.ForceEnd(context.Background(), &gcty.GameChannelForceEnd{
		SessionId: parm.SessionID,
		UserAddr:  parm.UserAddr,
	})
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// HouseDepositTx 构造抵押注入交易
func (c *Jrpc) HouseDepositTx(parm *HouseDepositTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.HouseDeposit(context.Background(), &gcty.HouseDeposit{Amount: parm.Amount})
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// HouseWithdrawTx 构造抵押提取交易
func (c *Jrpc) HouseWithdrawTx(parm *HouseWithdrawTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.HouseWithdraw(context.Background(), &gcty.HouseWithdraw{
		Amount: parm.Amount,
		All:    parm.All,
	})
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// ProfitTransferTx 构造利润划转交易
func (c *Jrpc) ProfitTransferTx(parm *ProfitTransferTxReq, result *interface{}) error {
	reply, err := c.cli.ProfitTransfer(context.Background(), &gcty.ProfitTransfer{})
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// SetConfigTx 构造参数调整交易
func (c *Jrpc) SetConfigTx(parm *SetConfigTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.SetConfig(context.Background(), &gcty.SetConfig{
		MinStake:               parm.MinStake,
		MaxStake:               parm.MaxStake,
		ProfitTransferTimeSpan: parm.ProfitTransferTimeSpan,
		TreasuryAddr:           parm.TreasuryAddr,
	})
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// TogglePauseTx 构造暂停恢复交易
func (c *Jrpc) TogglePauseTx(parm *TogglePauseTxReq, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.TogglePause(context.Background(), &gcty.TogglePause{Pause: parm.Pause})
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}
