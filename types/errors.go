package types

import "errors"

// 错误定义
var (
	ErrSessionNotClosed  = errors.New("ErrSessionNotClosed")
	ErrSessionNotFound   = errors.New("ErrSessionNotFound")
	ErrSessionStatus     = errors.New("ErrSessionStatus")
	ErrSessionUserAddr   = errors.New("ErrSessionUserAddr")
	ErrStakeOutOfRange   = errors.New("ErrStakeOutOfRange")
	ErrBalanceOutOfRange = errors.New("ErrBalanceOutOfRange")
	ErrInvalidSignature  = errors.New("ErrInvalidSignature")
	ErrAuthExpired       = errors.New("ErrAuthExpired")
	ErrInvalidSessionSeq = errors.New("ErrInvalidSessionSeq")
	ErrStaleRound        = errors.New("ErrStaleRound")
	ErrInvalidWagerType  = errors.New("ErrInvalidWagerType")
	ErrInvalidWagerNum   = errors.New("ErrInvalidWagerNum")
	ErrSeedMismatch      = errors.New("ErrSeedMismatch")
	ErrTimeoutNotReached = errors.New("ErrTimeoutNotReached")
	ErrNotServerAddr     = errors.New("ErrNotServerAddr")
	ErrNotOwnerAddr      = errors.New("ErrNotOwnerAddr")
	ErrChannelPaused     = errors.New("ErrChannelPaused")
	ErrChannelNotPaused  = errors.New("ErrChannelNotPaused")
	ErrBankrollTooLow    = errors.New("ErrBankrollTooLow")
	ErrProfitCooldown    = errors.New("ErrProfitCooldown")
	ErrTimeSpanRange     = errors.New("ErrTimeSpanRange")
	ErrAmountOverflow    = errors.New("ErrAmountOverflow")
	ErrBetTooHigh        = errors.New("ErrBetTooHigh")
	ErrInvalidParam      = errors.New("ErrInvalidParam")
)
