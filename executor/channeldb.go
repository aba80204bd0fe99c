package executor

import (
	"github.com/33cn/chain33/account"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	"github.com/dicether/gamechannel/games"
	gcty "github.com/dicether/gamechannel/types"
)

type action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
	cfg          *types.Chain33Config
}

func newAction(g *GameChannel, tx *types.Transaction, index int) *action {
	return &action{
		coinsAccount: g.GetCoinsAccount(),
		db:           g.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    g.GetBlockTime(),
		height:       g.GetHeight(),
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		index:        index,
		cfg:          g.GetAPI().GetConfig(),
	}
}

func (a *action) heightIndex() int64 {
	return a.height*types.MaxTxsPerBlock + int64(a.index)
}

func (a *action) maxBalance() int64 {
	return subcfg.MinBankroll / 2
}

func clampBalance(balance, stake, maxBalance int64) int64 {
	if balance < -stake {
		return -stake
	}
	if balance > maxBalance {
		return maxBalance
	}
	return balance
}

func getLedger(db dbm.KV) (*gcty.HouseLedger, error) {
	value, err := db.Get(ledgerKey())
	if err == types.ErrNotFound {
		return &gcty.HouseLedger{
			MinStake:               subcfg.MinStake,
			MaxStake:               subcfg.MaxStake,
			ProfitTransferTimeSpan: subcfg.ProfitTransferTimeSpan,
			TreasuryAddr:           subcfg.TreasuryAddr,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	var ledger gcty.HouseLedger
	if err := types.Decode(value, &ledger); err != nil {
		return nil, err
	}
	return &ledger, nil
}

func getSession(db dbm.KV, sessionID int64) (*gcty.GameSession, error) {
	value, err := db.Get(sessionKey(sessionID))
	if err == types.ErrNotFound {
		return nil, gcty.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session gcty.GameSession
	if err := types.Decode(value, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func getUserState(db dbm.KV, addr string) (*gcty.UserState, error) {
	value, err := db.Get(userKey(addr))
	if err == types.ErrNotFound {
		return &gcty.UserState{}, nil
	}
	if err != nil {
		return nil, err
	}
	var state gcty.UserState
	if err := types.Decode(value, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// sessionParty 校验调用方身份并返回会话, 庄家调用时以userAddr定位用户
func (a *action) sessionParty(sessionID int64, userAddr string) (*gcty.GameSession, bool, error) {
	session, err := getSession(a.db, sessionID)
	if err != nil {
		return nil, false, err
	}
	isServer := a.fromaddr == subcfg.ServerAddr
	if isServer {
		if userAddr != session.UserAddr {
			return nil, false, gcty.ErrSessionUserAddr
		}
	} else {
		if a.fromaddr != session.UserAddr {
			return nil, false, gcty.ErrSessionUserAddr
		}
	}
	return session, isServer, nil
}

func (a *action) roundHash(sessionID int64, roundID, wagerType int32, num, betValue, balance int64, serverCommitment, userCommitment []byte) []byte {
	return gcty.RoundHash(&gcty.RoundMessage{
		ExecAddr:         a.execaddr,
		Title:            a.cfg.GetTitle(),
		SessionId:        sessionID,
		RoundId:          roundID,
		WagerType:        wagerType,
		Num:              num,
		BetValue:         betValue,
		Balance:          balance,
		ServerCommitment: serverCommitment,
		UserCommitment:   userCommitment,
	})
}

func sessionLog(logTy int32, session *gcty.GameSession, prevStatus int32, payout int64) *types.ReceiptLog {
	return &types.ReceiptLog{
		Ty: logTy,
		Log: types.Encode(&gcty.ReceiptGameChannel{
			SessionId:   session.SessionId,
			UserAddr:    session.UserAddr,
			Status:      session.Status,
			PrevStatus:  prevStatus,
			Balance:     session.Balance,
			Payout:      payout,
			ReasonEnded: session.ReasonEnded,
			Index:       session.Index,
			PrevIndex:   session.PrevIndex,
		}),
	}
}

func ledgerLog(actionTy int32, ledger *gcty.HouseLedger) *types.ReceiptLog {
	return &types.ReceiptLog{
		Ty: gcty.TyLogHouseLedger,
		Log: types.Encode(&gcty.ReceiptHouseLedger{
			ActionTy:           actionTy,
			HouseStake:         ledger.HouseStake,
			HouseProfit:        ledger.HouseProfit,
			ActiveSessionCount: ledger.ActiveSessionCount,
		}),
	}
}

func mergeReceipt(receipt *types.Receipt, extra ...*types.Receipt) *types.Receipt {
	for _, r := range extra {
		receipt.KV = append(receipt.KV, r.KV...)
		receipt.Logs = append(receipt.Logs, r.Logs...)
	}
	return receipt
}

// Create 开通道: 校验庄家授权, 冻结用户押金
func (a *action) Create(payload *gcty.GameChannelCreate) (*types.Receipt, error) {
	ledger, err := getLedger(a.db)
	if err != nil {
		return nil, err
	}
	if ledger.Paused {
		return nil, gcty.ErrChannelPaused
	}
	if payload.Stake < ledger.MinStake || payload.Stake > ledger.MaxStake {
		return nil, gcty.ErrStakeOutOfRange
	}
	if a.blocktime > payload.CreateBefore {
		return nil, gcty.ErrAuthExpired
	}
	if len(payload.ServerCommitment) != gcty.CommitmentLen || len(payload.UserCommitment) != gcty.CommitmentLen {
		return nil, gcty.ErrInvalidParam
	}
	userState, err := getUserState(a.db, a.fromaddr)
	if err != nil {
		return nil, err
	}
	if userState.LastSessionId != payload.PrevSessionId {
		return nil, gcty.ErrInvalidSessionSeq
	}
	var sessionNonce int64
	if userState.LastSessionId != 0 {
		prev, err := getSession(a.db, userState.LastSessionId)
		if err != nil {
			return nil, err
		}
		if prev.Status != gcty.StatusClosed {
			return nil, gcty.ErrSessionNotClosed
		}
		sessionNonce = prev.SessionNonce
	}
	needed, err := games.SafeMul(int64(ledger.ActiveSessionCount)+1, a.maxBalance())
	if err != nil {
		return nil, err
	}
	if ledger.HouseStake < needed {
		return nil, gcty.ErrBankrollTooLow
	}
	hash := gcty.OpenAuthHash(&gcty.OpenAuthMessage{
		ExecAddr:         a.execaddr,
		Title:            a.cfg.GetTitle(),
		UserAddr:         a.fromaddr,
		PrevSessionId:    payload.PrevSessionId,
		CreateBefore:     payload.CreateBefore,
		ServerCommitment: payload.ServerCommitment,
	})
	if err := gcty.VerifySignaturePack(hash, payload.ServerSig, subcfg.ServerAddr); err != nil {
		return nil, err
	}
	if acc := a.coinsAccount.LoadExecAccount(a.fromaddr, a.execaddr); acc.Balance < payload.Stake {
		return nil, types.ErrNoBalance
	}
	receipt, err := a.coinsAccount.ExecFrozen(a.fromaddr, a.execaddr, payload.Stake)
	if err != nil {
		glog.Error("channel create", "addr", a.fromaddr, "frozen", payload.Stake, "err", err)
		return nil, err
	}
	ledger.SessionCounter++
	ledger.ActiveSessionCount++
	session := &gcty.GameSession{
		SessionId:        ledger.SessionCounter,
		SessionNonce:     sessionNonce + 1,
		UserAddr:         a.fromaddr,
		Status:           gcty.StatusActive,
		Stake:            payload.Stake,
		ServerCommitment: payload.ServerCommitment,
		UserCommitment:   payload.UserCommitment,
		CreateTime:       a.blocktime,
		Index:            a.heightIndex(),
	}
	userState.LastSessionId = session.SessionId

	kvs := []*types.KeyValue{
		{Key: sessionKey(session.SessionId), Value: types.Encode(session)},
		{Key: userKey(a.fromaddr), Value: types.Encode(userState)},
		{Key: ledgerKey(), Value: types.Encode(ledger)},
	}
	logs := []*types.ReceiptLog{
		sessionLog(gcty.TyLogChannelCreate, session, gcty.StatusClosed, 0),
		ledgerLog(gcty.GameChannelActionCreate, ledger),
	}
	return mergeReceipt(&types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, receipt), nil
}

// Close 协作关闭: 对手方共签的最终余额直接结算
func (a *action) Close(payload *gcty.GameChannelClose) (*types.Receipt, error) {
	session, isServer, err := a.sessionParty(payload.SessionId, payload.UserAddr)
	if err != nil {
		return nil, err
	}
	if session.Status != gcty.StatusActive {
		return nil, gcty.ErrSessionStatus
	}
	if payload.RoundId <= 0 || payload.RoundId <= session.RoundId {
		return nil, gcty.ErrStaleRound
	}
	if payload.Balance < -session.Stake || payload.Balance > a.maxBalance() {
		return nil, gcty.ErrBalanceOutOfRange
	}
	hash := a.roundHash(session.SessionId, payload.RoundId, 0, 0, 0,
		payload.Balance, payload.ServerCommitment, payload.UserCommitment)
	signer := subcfg.ServerAddr
	if isServer {
		signer = session.UserAddr
	}
	if err := gcty.VerifySignaturePack(hash, payload.PeerSig, signer); err != nil {
		return nil, err
	}
	return a.settle(session, payload.Balance, gcty.ReasonRegularEnded, gcty.TyLogChannelClose)
}

// Conflict 争议路径: 出示对手方最后签名的回合并揭示己方种子
func (a *action) Conflict(payload *gcty.GameChannelConflict) (*types.Receipt, error) {
	session, isServer, err := a.sessionParty(payload.SessionId, payload.UserAddr)
	if err != nil {
		return nil, err
	}
	if payload.RoundId <= 0 {
		return nil, gcty.ErrStaleRound
	}
	if err := games.CheckBet(payload.WagerType, payload.Num, payload.BetValue, subcfg.MinBankroll); err != nil {
		return nil, err
	}
	if payload.Balance < -session.Stake || payload.Balance > a.maxBalance() {
		return nil, gcty.ErrBalanceOutOfRange
	}
	if len(payload.ServerCommitment) != gcty.CommitmentLen || len(payload.UserCommitment) != gcty.CommitmentLen {
		return nil, gcty.ErrInvalidParam
	}
	hash := a.roundHash(session.SessionId, payload.RoundId, payload.WagerType,
		payload.Num, payload.BetValue, payload.Balance,
		payload.ServerCommitment, payload.UserCommitment)
	signer := subcfg.ServerAddr
	if isServer {
		signer = session.UserAddr
	}
	if err := gcty.VerifySignaturePack(hash, payload.PeerSig, signer); err != nil {
		return nil, err
	}
	if isServer {
		if !gcty.CheckCommitment(payload.ServerSeed, payload.ServerCommitment) ||
			!gcty.CheckCommitment(payload.UserSeed, payload.UserCommitment) {
			return nil, gcty.ErrSeedMismatch
		}
	} else {
		if !gcty.CheckCommitment(payload.UserSeed, payload.UserCommitment) {
			return nil, gcty.ErrSeedMismatch
		}
		if len(payload.ServerSeed) != 0 {
			return nil, gcty.ErrInvalidParam
		}
	}

	switch session.Status {
	case gcty.StatusActive:
		return a.recordConflict(session, payload, isServer)
	case gcty.StatusUserInitiatedEnd:
		if !isServer {
			return nil, gcty.ErrSessionStatus
		}
		if session.HasRoundData && payload.RoundId == session.RoundId {
			// 双方种子齐备, 直接按回合结果加罚金结算
			if !gcty.CheckCommitment(payload.ServerSeed, session.ServerCommitment) {
				return nil, gcty.ErrSeedMismatch
			}
			return a.settleConflict(session, payload.ServerSeed, session.UserSeed)
		}
		if payload.RoundId > session.RoundId {
			return a.recordConflict(session, payload, isServer)
		}
		return nil, gcty.ErrStaleRound
	case gcty.StatusServerInitiatedEnd:
		if isServer {
			return nil, gcty.ErrSessionStatus
		}
		if session.HasRoundData && payload.RoundId == session.RoundId {
			if !gcty.CheckCommitment(payload.UserSeed, session.UserCommitment) {
				return nil, gcty.ErrSeedMismatch
			}
			return a.settleConflict(session, session.ServerSeed, payload.UserSeed)
		}
		if payload.RoundId > session.RoundId {
			return a.recordConflict(session, payload, isServer)
		}
		return nil, gcty.ErrStaleRound
	default:
		return nil, gcty.ErrSessionStatus
	}
}

// recordConflict 记录发起方的争议主张, 等待对方同回合揭示或超时
func (a *action) recordConflict(session *gcty.GameSession, payload *gcty.GameChannelConflict, isServer bool) (*types.Receipt, error) {
	prevStatus := session.Status
	session.PrevIndex = session.Index
	session.Index = a.heightIndex()
	if isServer {
		session.Status = gcty.StatusServerInitiatedEnd
		session.ServerSeed = payload.ServerSeed
	} else {
		session.Status = gcty.StatusUserInitiatedEnd
		session.ServerSeed = nil
	}
	session.RoundId = payload.RoundId
	session.WagerType = payload.WagerType
	session.Num = payload.Num
	session.BetValue = payload.BetValue
	session.Balance = payload.Balance
	session.ServerCommitment = payload.ServerCommitment
	session.UserCommitment = payload.UserCommitment
	session.UserSeed = payload.UserSeed
	session.HasRoundData = true
	session.EndInitiatedTime = a.blocktime

	kvs := []*types.KeyValue{
		{Key: sessionKey(session.SessionId), Value: types.Encode(session)},
	}
	logs := []*types.ReceiptLog{
		sessionLog(gcty.TyLogChannelConflict, session, prevStatus, 0),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, nil
}

// settleConflict 同回合双向争议的即时结算
func (a *action) settleConflict(session *gcty.GameSession, serverSeed, userSeed []byte) (*types.Receipt, error) {
	computed, err := games.ComputeBalance(session.WagerType, session.Num,
		session.BetValue, serverSeed, userSeed, session.Balance)
	if err != nil {
		return nil, err
	}
	newBalance, err := games.SafeSub(computed, subcfg.ConflictEndFine)
	if err != nil {
		return nil, err
	}
	newBalance = clampBalance(newBalance, session.Stake, a.maxBalance())
	session.ServerSeed = serverSeed
	session.UserSeed = userSeed
	return a.settle(session, newBalance, gcty.ReasonConflictEnded, gcty.TyLogChannelConflict)
}

// Cancel 尚未有签名回合时的撤销, 双方都撤销则按固定罚金结算
func (a *action) Cancel(payload *gcty.GameChannelCancel) (*types.Receipt, error) {
	session, isServer, err := a.sessionParty(payload.SessionId, payload.UserAddr)
	if err != nil {
		return nil, err
	}
	switch session.Status {
	case gcty.StatusActive:
		prevStatus := session.Status
		session.PrevIndex = session.Index
		session.Index = a.heightIndex()
		if isServer {
			session.Status = gcty.StatusServerInitiatedEnd
		} else {
			session.Status = gcty.StatusUserInitiatedEnd
		}
		session.HasRoundData = false
		session.EndInitiatedTime = a.blocktime
		kvs := []*types.KeyValue{
			{Key: sessionKey(session.SessionId), Value: types.Encode(session)},
		}
		logs := []*types.ReceiptLog{
			sessionLog(gcty.TyLogChannelCancel, session, prevStatus, 0),
		}
		return &types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, nil
	case gcty.StatusUserInitiatedEnd, gcty.StatusServerInitiatedEnd:
		if session.HasRoundData {
			return nil, gcty.ErrSessionStatus
		}
		if isServer == (session.Status == gcty.StatusServerInitiatedEnd) {
			return nil, gcty.ErrSessionStatus
		}
		newBalance := clampBalance(-subcfg.ConflictEndFine, session.Stake, a.maxBalance())
		return a.settle(session, newBalance, gcty.ReasonConflictEnded, gcty.TyLogChannelCancel)
	default:
		return nil, gcty.ErrSessionStatus
	}
}

// ForceEnd 对方在响应窗口内未回应, 发起方强制结算并附加罚金
func (a *action) ForceEnd(payload *gcty.GameChannelForceEnd) (*types.Receipt, error) {
	session, isServer, err := a.sessionParty(payload.SessionId, payload.UserAddr)
	if err != nil {
		return nil, err
	}
	var newBalance int64
	var reason int32
	if isServer {
		if session.Status != gcty.StatusServerInitiatedEnd {
			return nil, gcty.ErrSessionStatus
		}
		if a.blocktime-session.EndInitiatedTime < subcfg.UserTimeout {
			return nil, gcty.ErrTimeoutNotReached
		}
		if session.HasRoundData {
			computed, err := games.ComputeBalance(session.WagerType, session.Num,
				session.BetValue, session.ServerSeed, session.UserSeed, session.Balance)
			if err != nil {
				return nil, err
			}
			newBalance, err = games.SafeSub(computed, subcfg.NotEndedFine)
			if err != nil {
				return nil, err
			}
		} else {
			newBalance = -subcfg.NotEndedFine
		}
		reason = gcty.ReasonServerForcedEnd
	} else {
		if session.Status != gcty.StatusUserInitiatedEnd {
			return nil, gcty.ErrSessionStatus
		}
		if a.blocktime-session.EndInitiatedTime < subcfg.ServerTimeout {
			return nil, gcty.ErrTimeoutNotReached
		}
		if session.HasRoundData {
			w, err := games.Get(session.WagerType)
			if err != nil {
				return nil, err
			}
			maxProfit, err := w.MaxUserProfit(session.Num, session.BetValue)
			if err != nil {
				return nil, err
			}
			newBalance, err = games.SafeAdd(session.Balance, maxProfit)
			if err != nil {
				return nil, err
			}
			newBalance, err = games.SafeAdd(newBalance, subcfg.NotEndedFine)
			if err != nil {
				return nil, err
			}
		} else {
			newBalance = subcfg.NotEndedFine
		}
		reason = gcty.ReasonUserForcedEnd
	}
	newBalance = clampBalance(newBalance, session.Stake, a.maxBalance())
	return a.settle(session, newBalance, reason, gcty.TyLogChannelForceEnd)
}

// settle 结算关闭会话: 先完成状态转移和账本更新, 再划转资金
func (a *action) settle(session *gcty.GameSession, balance int64, reason int32, logTy int32) (*types.Receipt, error) {
	ledger, err := getLedger(a.db)
	if err != nil {
		return nil, err
	}
	payout, err := games.SafeAdd(session.Stake, balance)
	if err != nil {
		return nil, err
	}
	ledger.HouseStake, err = games.SafeSub(ledger.HouseStake, balance)
	if err != nil {
		return nil, err
	}
	ledger.HouseProfit, err = games.SafeSub(ledger.HouseProfit, balance)
	if err != nil {
		return nil, err
	}
	ledger.ActiveSessionCount--

	prevStatus := session.Status
	session.PrevIndex = session.Index
	session.Index = a.heightIndex()
	session.Status = gcty.StatusClosed
	session.Balance = balance
	session.ReasonEnded = reason
	session.CloseTime = a.blocktime

	var transfers []*types.Receipt
	switch {
	case balance > 0:
		r1, err := a.coinsAccount.ExecActive(subcfg.OwnerAddr, a.execaddr, balance)
		if err != nil {
			glog.Error("channel settle", "sessionId", session.SessionId, "house active", balance, "err", err)
			return nil, err
		}
		r2, err := a.coinsAccount.ExecTransfer(subcfg.OwnerAddr, session.UserAddr, a.execaddr, balance)
		if err != nil {
			return nil, err
		}
		r3, err := a.coinsAccount.ExecActive(session.UserAddr, a.execaddr, session.Stake)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, r1, r2, r3)
	case balance < 0:
		r1, err := a.coinsAccount.ExecActive(session.UserAddr, a.execaddr, session.Stake)
		if err != nil {
			glog.Error("channel settle", "sessionId", session.SessionId, "user active", session.Stake, "err", err)
			return nil, err
		}
		r2, err := a.coinsAccount.ExecTransfer(session.UserAddr, subcfg.OwnerAddr, a.execaddr, -balance)
		if err != nil {
			return nil, err
		}
		r3, err := a.coinsAccount.ExecFrozen(subcfg.OwnerAddr, a.execaddr, -balance)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, r1, r2, r3)
	default:
		r1, err := a.coinsAccount.ExecActive(session.UserAddr, a.execaddr, session.Stake)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, r1)
	}

	kvs := []*types.KeyValue{
		{Key: sessionKey(session.SessionId), Value: types.Encode(session)},
		{Key: ledgerKey(), Value: types.Encode(ledger)},
	}
	logs := []*types.ReceiptLog{
		sessionLog(logTy, session, prevStatus, payout),
		ledgerLog(gcty.GameChannelActionClose, ledger),
	}
	return mergeReceipt(&types.Receipt{Ty: types.ExecOk, KV: kvs, Logs: logs}, transfers...), nil
}
