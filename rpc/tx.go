package rpc

import (
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"
	gcty "github.com/dicether/gamechannel/types"
)

// SignaturePackReq 十六进制表示的签名数据
type SignaturePackReq struct {
	Ty        int32  `json:"ty"`
	Pubkey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

func (r *SignaturePackReq) toPack() (*gcty.SignaturePack, error) {
	pubkey, err := common.FromHex(r.Pubkey)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	sig, err := common.FromHex(r.Signature)
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	return &gcty.SignaturePack{Ty: r.Ty, Pubkey: pubkey, Signature: sig}, nil
}

// CreateChannelTxReq 开通道交易请求
type CreateChannelTxReq struct {
	Stake            int64            `json:"stake"`
	PrevSessionID    int64            `json:"prevSessionId"`
	CreateBefore     int64            `json:"createBefore"`
	ServerCommitment string           `json:"serverCommitment"`
	UserCommitment   string           `json:"userCommitment"`
	ServerSig        SignaturePackReq `json:"serverSig"`
}

// CloseChannelTxReq 协作关闭交易请求
type CloseChannelTxReq struct {
	SessionID        int64            `json:"sessionId"`
	RoundID          int32            `json:"roundId"`
	Balance          int64            `json:"balance"`
	ServerCommitment string           `json:"serverCommitment"`
	UserCommitment   string           `json:"userCommitment"`
	PeerSig          SignaturePackReq `json:"peerSig"`
	UserAddr         string           `json:"userAddr"`
}

// ConflictTxReq 争议交易请求
type ConflictTxReq struct {
	SessionID        int64            `json:"sessionId"`
	RoundID          int32            `json:"roundId"`
	WagerType        int32            `json:"wagerType"`
	Num              int64            `json:"num"`
	BetValue         int64            `json:"betValue"`
	Balance          int64            `json:"balance"`
	ServerCommitment string           `json:"serverCommitment"`
	UserCommitment   string           `json:"userCommitment"`
	PeerSig          SignaturePackReq `json:"peerSig"`
	ServerSeed       string           `json:"serverSeed"`
	UserSeed         string           `json:"userSeed"`
	UserAddr         string           `json:"userAddr"`
}

// SessionTxReq 只带会话定位信息的交易请求
type SessionTxReq struct {
	SessionID int64  `json:"sessionId"`
	UserAddr  string `json:"userAddr"`
}

// HouseDepositTxReq 抵押注入交易请求
type HouseDepositTxReq struct {
	Amount int64 `json:"amount"`
}

// HouseWithdrawTxReq 抵押提取交易请求
type HouseWithdrawTxReq struct {
	Amount int64 `json:"amount"`
	All    bool  `json:"all"`
}

// SetConfigTxReq 参数调整交易请求
type SetConfigTxReq struct {
	MinStake               int64  `json:"minStake"`
	MaxStake               int64  `json:"maxStake"`
	ProfitTransferTimeSpan int64  `json:"profitTransferTimeSpan"`
	TreasuryAddr           string `json:"treasuryAddr"`
}

// ProfitTransferTxReq 利润划转交易请求, 无参数
type ProfitTransferTxReq struct {
}

// TogglePauseTxReq 暂停恢复交易请求
type TogglePauseTxReq struct {
	Pause bool `json:"pause"`
}
