package executor

import (
	"encoding/json"
	"testing"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client/mocks"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	dbm "github.com/33cn/chain33/common/db"
	_ "github.com/33cn/chain33/system"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	"github.com/dicether/gamechannel/games"
	gcty "github.com/dicether/gamechannel/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	cfg *types.Chain33Config

	privUser   = privFromHex("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	privServer = privFromHex("BC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	privOwner  = privFromHex("4257D8692EF7FE13C68B65D6A52F03933DB2FA5CE8FAF210B5B8B80C721CED01")
	privOther  = privFromHex("AC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")

	addrUser     = address.PubKeyToAddress(privUser.PubKey().Bytes()).String()
	addrServer   = address.PubKeyToAddress(privServer.PubKey().Bytes()).String()
	addrOwner    = address.PubKeyToAddress(privOwner.PubKey().Bytes()).String()
	addrTreasury = address.PubKeyToAddress(privOther.PubKey().Bytes()).String()

	execAddr string

	serverSeed = []byte("server secret seed used in tests")
	userSeed   = []byte("user secret seed used in tests..")
)

func privFromHex(key string) crypto.PrivKey {
	c, err := crypto.New(types.GetSignName("", types.SECP256K1))
	if err != nil {
		panic(err)
	}
	bkey, err := common.FromHex(key)
	if err != nil {
		panic(err)
	}
	priv, err := c.PrivKeyFromBytes(bkey)
	if err != nil {
		panic(err)
	}
	return priv
}

func init() {
	cfg = types.NewChain33Config(types.GetDefaultCfgstring())
	cfg.SetTitleOnlyForTest("chain33")
	execAddr = dapp.ExecAddress(gcty.GameChannelX)
	sub, err := json.Marshal(&subConfig{
		ServerAddr:   addrServer,
		OwnerAddr:    addrOwner,
		TreasuryAddr: addrTreasury,
		MinBankroll:  100 * gcty.CoinPrecision,
	})
	if err != nil {
		panic(err)
	}
	Init(gcty.GameChannelX, cfg, sub)
}

type testEnv struct {
	t         *testing.T
	sdb       dbm.DB
	kvdb      dbm.KVDB
	driver    *GameChannel
	acc       *account.DB
	height    int64
	blocktime int64
	nonce     int64
}

func newTestEnv(t *testing.T) *testEnv {
	_, sdb, kvdb := util.CreateTestDB()
	api := new(mocks.QueueProtocolAPI)
	api.On("GetConfig", mock.Anything).Return(cfg)

	driver := newGameChannel().(*GameChannel)
	driver.SetAPI(api)
	driver.SetStateDB(sdb)
	driver.SetLocalDB(kvdb)

	acc := account.NewCoinsAccount(cfg)
	acc.SetDB(sdb)
	acc.SaveExecAccount(execAddr, &types.Account{Addr: addrUser, Balance: 1000 * gcty.CoinPrecision})
	acc.SaveExecAccount(execAddr, &types.Account{Addr: addrOwner, Balance: 2000 * gcty.CoinPrecision})

	return &testEnv{
		t:         t,
		sdb:       sdb,
		kvdb:      kvdb,
		driver:    driver,
		acc:       acc,
		height:    1,
		blocktime: 1600000000,
	}
}

func (e *testEnv) exec(action *gcty.GameChannelAction, priv crypto.PrivKey) (*types.Receipt, error) {
	e.nonce++
	e.height++
	tx := &types.Transaction{
		Execer:  []byte(gcty.GameChannelX),
		Payload: types.Encode(action),
		Fee:     1e6,
		Nonce:   e.nonce,
		To:      execAddr,
	}
	tx.Sign(types.SECP256K1, priv)
	e.driver.SetEnv(e.height, e.blocktime, 1)
	receipt, err := e.driver.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	for _, kv := range receipt.KV {
		require.NoError(e.t, e.sdb.Set(kv.Key, kv.Value))
	}
	set, err := e.driver.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
	require.NoError(e.t, err)
	for _, kv := range set.KV {
		require.NoError(e.t, e.kvdb.Set(kv.Key, kv.Value))
	}
	return receipt, nil
}

func (e *testEnv) ledger() *gcty.HouseLedger {
	ledger, err := getLedger(e.sdb)
	require.NoError(e.t, err)
	return ledger
}

func (e *testEnv) session(id int64) *gcty.GameSession {
	session, err := getSession(e.sdb, id)
	require.NoError(e.t, err)
	return session
}

// 校验庄家冻结余额与账本抵押始终一致
func (e *testEnv) checkLedgerInvariant() {
	acc := e.acc.LoadExecAccount(addrOwner, execAddr)
	assert.Equal(e.t, e.ledger().HouseStake, acc.Frozen)
}

func createAction(stake, prevSessionID, createBefore int64) *gcty.GameChannelAction {
	sc := gcty.SeedHash(serverSeed)
	uc := gcty.SeedHash(userSeed)
	hash := gcty.OpenAuthHash(&gcty.OpenAuthMessage{
		ExecAddr:         execAddr,
		Title:            cfg.GetTitle(),
		UserAddr:         addrUser,
		PrevSessionId:    prevSessionID,
		CreateBefore:     createBefore,
		ServerCommitment: sc,
	})
	return &gcty.GameChannelAction{
		Ty: gcty.GameChannelActionCreate,
		Value: &gcty.GameChannelAction_Create{Create: &gcty.GameChannelCreate{
			Stake:            stake,
			PrevSessionId:    prevSessionID,
			CreateBefore:     createBefore,
			ServerCommitment: sc,
			UserCommitment:   uc,
			ServerSig:        gcty.SignHash(hash, types.SECP256K1, privServer),
		}},
	}
}

func roundSig(priv crypto.PrivKey, sessionID int64, roundID, wagerType int32, num, betValue, balance int64) *gcty.SignaturePack {
	hash := gcty.RoundHash(&gcty.RoundMessage{
		ExecAddr:         execAddr,
		Title:            cfg.GetTitle(),
		SessionId:        sessionID,
		RoundId:          roundID,
		WagerType:        wagerType,
		Num:              num,
		BetValue:         betValue,
		Balance:          balance,
		ServerCommitment: gcty.SeedHash(serverSeed),
		UserCommitment:   gcty.SeedHash(userSeed),
	})
	return gcty.SignHash(hash, types.SECP256K1, priv)
}

func depositAction(amount int64) *gcty.GameChannelAction {
	return &gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionHouseDeposit,
		Value: &gcty.GameChannelAction_HouseDeposit{HouseDeposit: &gcty.HouseDeposit{Amount: amount}},
	}
}

func cancelAction(sessionID int64, userAddr string) *gcty.GameChannelAction {
	return &gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionCancel,
		Value: &gcty.GameChannelAction_Cancel{Cancel: &gcty.GameChannelCancel{SessionId: sessionID, UserAddr: userAddr}},
	}
}

func forceEndAction(sessionID int64, userAddr string) *gcty.GameChannelAction {
	return &gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionForceEnd,
		Value: &gcty.GameChannelAction_ForceEnd{ForceEnd: &gcty.GameChannelForceEnd{SessionId: sessionID, UserAddr: userAddr}},
	}
}

func (e *testEnv) openChannel(stake, prevSessionID int64) int64 {
	_, err := e.exec(createAction(stake, prevSessionID, e.blocktime+100), privUser)
	require.NoError(e.t, err)
	return e.ledger().SessionCounter
}

func TestChannelLifecycle(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(100*gcty.CoinPrecision), e.ledger().HouseStake)
	e.checkLedgerInvariant()

	id := e.openChannel(10*gcty.CoinPrecision, 0)
	assert.Equal(t, int64(1), id)
	session := e.session(id)
	assert.Equal(t, int32(gcty.StatusActive), session.Status)
	assert.Equal(t, int64(1), session.SessionNonce)
	assert.Equal(t, addrUser, session.UserAddr)
	userAcc := e.acc.LoadExecAccount(addrUser, execAddr)
	assert.Equal(t, int64(10*gcty.CoinPrecision), userAcc.Frozen)
	assert.Equal(t, int32(1), e.ledger().ActiveSessionCount)

	// 用户带着庄家签名的最终回合协作关闭, 用户净赢2个币
	balance := int64(2 * gcty.CoinPrecision)
	_, err = e.exec(&gcty.GameChannelAction{
		Ty: gcty.GameChannelActionClose,
		Value: &gcty.GameChannelAction_Close{Close: &gcty.GameChannelClose{
			SessionId:        id,
			RoundId:          5,
			Balance:          balance,
			ServerCommitment: gcty.SeedHash(serverSeed),
			UserCommitment:   gcty.SeedHash(userSeed),
			PeerSig:          roundSig(privServer, id, 5, 0, 0, 0, balance),
		}},
	}, privUser)
	require.NoError(t, err)

	session = e.session(id)
	assert.Equal(t, int32(gcty.StatusClosed), session.Status)
	assert.Equal(t, balance, session.Balance)
	assert.Equal(t, int32(gcty.ReasonRegularEnded), session.ReasonEnded)

	userAcc = e.acc.LoadExecAccount(addrUser, execAddr)
	assert.Equal(t, int64(1002*gcty.CoinPrecision), userAcc.Balance)
	assert.Equal(t, int64(0), userAcc.Frozen)
	ledger := e.ledger()
	assert.Equal(t, int64(98*gcty.CoinPrecision), ledger.HouseStake)
	assert.Equal(t, int64(-2*gcty.CoinPrecision), ledger.HouseProfit)
	assert.Equal(t, int32(0), ledger.ActiveSessionCount)
	e.checkLedgerInvariant()

	// 重复关闭已关闭的会话被拒绝
	_, err = e.exec(cancelAction(id, ""), privUser)
	assert.Equal(t, gcty.ErrSessionStatus, err)

	// 下一个会话必须衔接上一个id
	_, err = e.exec(createAction(10*gcty.CoinPrecision, 0, e.blocktime+100), privUser)
	assert.Equal(t, gcty.ErrInvalidSessionSeq, err)
	id2 := e.openChannel(10*gcty.CoinPrecision, id)
	assert.Equal(t, int64(2), id2)
	assert.Equal(t, int64(2), e.session(id2).SessionNonce)
}

func TestCreateValidation(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.exec(createAction(gcty.CoinPrecision/2, 0, e.blocktime+100), privUser)
	assert.Equal(t, gcty.ErrStakeOutOfRange, err)

	_, err = e.exec(createAction(10*gcty.CoinPrecision, 0, e.blocktime-1), privUser)
	assert.Equal(t, gcty.ErrAuthExpired, err)

	_, err = e.exec(createAction(10*gcty.CoinPrecision, 7, e.blocktime+100), privUser)
	assert.Equal(t, gcty.ErrInvalidSessionSeq, err)

	// 庄家抵押不足以覆盖新会话的最坏敞口
	_, err = e.exec(createAction(10*gcty.CoinPrecision, 0, e.blocktime+100), privUser)
	assert.Equal(t, gcty.ErrBankrollTooLow, err)

	_, err = e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)

	// 授权必须由庄家签名
	bad := createAction(10*gcty.CoinPrecision, 0, e.blocktime+100)
	create := bad.GetCreate()
	hash := gcty.OpenAuthHash(&gcty.OpenAuthMessage{
		ExecAddr:         execAddr,
		Title:            cfg.GetTitle(),
		UserAddr:         addrUser,
		PrevSessionId:    0,
		CreateBefore:     create.CreateBefore,
		ServerCommitment: create.ServerCommitment,
	})
	create.ServerSig = gcty.SignHash(hash, types.SECP256K1, privOwner)
	_, err = e.exec(bad, privUser)
	assert.Equal(t, gcty.ErrInvalidSignature, err)

	// 暂停期间不能开新通道
	_, err = e.exec(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionTogglePause,
		Value: &gcty.GameChannelAction_TogglePause{TogglePause: &gcty.TogglePause{Pause: true}},
	}, privOwner)
	require.NoError(t, err)
	_, err = e.exec(createAction(10*gcty.CoinPrecision, 0, e.blocktime+100), privUser)
	assert.Equal(t, gcty.ErrChannelPaused, err)
}

func conflictAction(sessionID int64, roundID int32, balance int64, peerSig *gcty.SignaturePack, sSeed, uSeed []byte, userAddr string) *gcty.GameChannelAction {
	return &gcty.GameChannelAction{
		Ty: gcty.GameChannelActionConflict,
		Value: &gcty.GameChannelAction_Conflict{Conflict: &gcty.GameChannelConflict{
			SessionId:        sessionID,
			RoundId:          roundID,
			WagerType:        games.WagerDiceLower,
			Num:              50,
			BetValue:         1 * gcty.CoinPrecision,
			Balance:          balance,
			ServerCommitment: gcty.SeedHash(serverSeed),
			UserCommitment:   gcty.SeedHash(userSeed),
			PeerSig:          peerSig,
			ServerSeed:       sSeed,
			UserSeed:         uSeed,
			UserAddr:         userAddr,
		}},
	}
}

func TestConflictBothReveal(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	id := e.openChannel(10*gcty.CoinPrecision, 0)

	prior := int64(-1 * gcty.CoinPrecision)
	// 用户先提出争议, 揭示自己的种子
	serverSigned := roundSig(privServer, id, 2, games.WagerDiceLower, 50, 1*gcty.CoinPrecision, prior)
	_, err = e.exec(conflictAction(id, 2, prior, serverSigned, nil, userSeed, ""), privUser)
	require.NoError(t, err)
	session := e.session(id)
	assert.Equal(t, int32(gcty.StatusUserInitiatedEnd), session.Status)
	assert.True(t, session.HasRoundData)

	// 用户此时不能再提争议
	_, err = e.exec(conflictAction(id, 2, prior, serverSigned, nil, userSeed, ""), privUser)
	assert.Equal(t, gcty.ErrSessionStatus, err)

	// 庄家同回合揭示双方种子, 立即按结果加罚金结算
	userSigned := roundSig(privUser, id, 2, games.WagerDiceLower, 50, 1*gcty.CoinPrecision, prior)
	_, err = e.exec(conflictAction(id, 2, prior, userSigned, serverSeed, userSeed, addrUser), privServer)
	require.NoError(t, err)

	computed, err := games.ComputeBalance(games.WagerDiceLower, 50, 1*gcty.CoinPrecision, serverSeed, userSeed, prior)
	require.NoError(t, err)
	expect := clampBalance(computed-subcfg.ConflictEndFine, 10*gcty.CoinPrecision, subcfg.MinBankroll/2)

	session = e.session(id)
	assert.Equal(t, int32(gcty.StatusClosed), session.Status)
	assert.Equal(t, int32(gcty.ReasonConflictEnded), session.ReasonEnded)
	assert.Equal(t, expect, session.Balance)
	assert.Equal(t, int64(100*gcty.CoinPrecision)-expect, e.ledger().HouseStake)
	e.checkLedgerInvariant()
}

func TestConflictSupersedesCancel(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	id := e.openChannel(10*gcty.CoinPrecision, 0)

	_, err = e.exec(cancelAction(id, ""), privUser)
	require.NoError(t, err)
	assert.Equal(t, int32(gcty.StatusUserInitiatedEnd), e.session(id).Status)
	assert.False(t, e.session(id).HasRoundData)

	// 庄家持有更高回合的签名, 争议主张覆盖用户的撤销
	userSigned := roundSig(privUser, id, 1, games.WagerDiceLower, 50, 1*gcty.CoinPrecision, 0)
	_, err = e.exec(conflictAction(id, 1, 0, userSigned, serverSeed, userSeed, addrUser), privServer)
	require.NoError(t, err)
	session := e.session(id)
	assert.Equal(t, int32(gcty.StatusServerInitiatedEnd), session.Status)
	assert.True(t, session.HasRoundData)

	// 用户同回合揭示种子完成结算
	serverSigned := roundSig(privServer, id, 1, games.WagerDiceLower, 50, 1*gcty.CoinPrecision, 0)
	_, err = e.exec(conflictAction(id, 1, 0, serverSigned, nil, userSeed, ""), privUser)
	require.NoError(t, err)
	assert.Equal(t, int32(gcty.StatusClosed), e.session(id).Status)
	e.checkLedgerInvariant()
}

func TestMutualCancel(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	id := e.openChannel(10*gcty.CoinPrecision, 0)

	_, err = e.exec(cancelAction(id, ""), privUser)
	require.NoError(t, err)
	// 同一方重复撤销无效
	_, err = e.exec(cancelAction(id, ""), privUser)
	assert.Equal(t, gcty.ErrSessionStatus, err)

	_, err = e.exec(cancelAction(id, addrUser), privServer)
	require.NoError(t, err)

	session := e.session(id)
	assert.Equal(t, int32(gcty.StatusClosed), session.Status)
	assert.Equal(t, -subcfg.ConflictEndFine, session.Balance)
	userAcc := e.acc.LoadExecAccount(addrUser, execAddr)
	assert.Equal(t, int64(999*gcty.CoinPrecision), userAcc.Balance)
	assert.Equal(t, int64(0), userAcc.Frozen)
	ledger := e.ledger()
	assert.Equal(t, int64(101*gcty.CoinPrecision), ledger.HouseStake)
	assert.Equal(t, int64(1*gcty.CoinPrecision), ledger.HouseProfit)
	e.checkLedgerInvariant()
}

func TestForceEndUserTimeout(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	id := e.openChannel(10*gcty.CoinPrecision, 0)

	serverSigned := roundSig(privServer, id, 1, games.WagerDiceLower, 50, 1*gcty.CoinPrecision, 0)
	_, err = e.exec(conflictAction(id, 1, 0, serverSigned, nil, userSeed, ""), privUser)
	require.NoError(t, err)
	started := e.blocktime

	_, err = e.exec(forceEndAction(id, ""), privUser)
	assert.Equal(t, gcty.ErrTimeoutNotReached, err)

	// 窗口整点到达即可强制结算
	e.blocktime = started + subcfg.ServerTimeout
	_, err = e.exec(forceEndAction(id, ""), privUser)
	require.NoError(t, err)

	w, err := games.Get(games.WagerDiceLower)
	require.NoError(t, err)
	maxProfit, err := w.MaxUserProfit(50, 1*gcty.CoinPrecision)
	require.NoError(t, err)
	expect := clampBalance(maxProfit+subcfg.NotEndedFine, 10*gcty.CoinPrecision, subcfg.MinBankroll/2)

	session := e.session(id)
	assert.Equal(t, int32(gcty.StatusClosed), session.Status)
	assert.Equal(t, int32(gcty.ReasonUserForcedEnd), session.ReasonEnded)
	assert.Equal(t, expect, session.Balance)
	e.checkLedgerInvariant()
}

func TestForceEndServerTimeout(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	id := e.openChannel(10*gcty.CoinPrecision, 0)

	_, err = e.exec(cancelAction(id, addrUser), privServer)
	require.NoError(t, err)
	started := e.blocktime

	_, err = e.exec(forceEndAction(id, addrUser), privServer)
	assert.Equal(t, gcty.ErrTimeoutNotReached, err)

	e.blocktime = started + subcfg.UserTimeout
	_, err = e.exec(forceEndAction(id, addrUser), privServer)
	require.NoError(t, err)

	session := e.session(id)
	assert.Equal(t, int32(gcty.StatusClosed), session.Status)
	assert.Equal(t, int32(gcty.ReasonServerForcedEnd), session.ReasonEnded)
	assert.Equal(t, -subcfg.NotEndedFine, session.Balance)
	userAcc := e.acc.LoadExecAccount(addrUser, execAddr)
	assert.Equal(t, int64(996*gcty.CoinPrecision), userAcc.Balance)
	e.checkLedgerInvariant()
}

func TestStaleRound(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	id := e.openChannel(10*gcty.CoinPrecision, 0)

	serverSigned := roundSig(privServer, id, 3, games.WagerDiceLower, 50, 1*gcty.CoinPrecision, 0)
	_, err = e.exec(conflictAction(id, 3, 0, serverSigned, nil, userSeed, ""), privUser)
	require.NoError(t, err)

	// 庄家拿更低回合的主张来应诉无效
	userSigned := roundSig(privUser, id, 2, games.WagerDiceLower, 50, 1*gcty.CoinPrecision, 0)
	_, err = e.exec(conflictAction(id, 2, 0, userSigned, serverSeed, userSeed, addrUser), privServer)
	assert.Equal(t, gcty.ErrStaleRound, err)
}

func TestHouseOps(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	_, err = e.exec(depositAction(100*gcty.CoinPrecision), privUser)
	assert.Equal(t, gcty.ErrNotOwnerAddr, err)
	_, err = e.exec(depositAction(0), privOwner)
	assert.Equal(t, gcty.ErrInvalidParam, err)

	withdraw := func(amount int64, all bool) error {
		_, err := e.exec(&gcty.GameChannelAction{
			Ty:    gcty.GameChannelActionHouseWithdraw,
			Value: &gcty.GameChannelAction_HouseWithdraw{HouseWithdraw: &gcty.HouseWithdraw{Amount: amount, All: all}},
		}, privOwner)
		return err
	}

	assert.Equal(t, gcty.ErrBankrollTooLow, withdraw(150*gcty.CoinPrecision, false))
	require.NoError(t, withdraw(40*gcty.CoinPrecision, false))
	assert.Equal(t, int64(60*gcty.CoinPrecision), e.ledger().HouseStake)
	e.checkLedgerInvariant()

	// 清算提取需要先暂停并等待冷静期
	assert.Equal(t, gcty.ErrChannelNotPaused, withdraw(0, true))
	_, err = e.exec(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionTogglePause,
		Value: &gcty.GameChannelAction_TogglePause{TogglePause: &gcty.TogglePause{Pause: true}},
	}, privOwner)
	require.NoError(t, err)
	assert.Equal(t, gcty.ErrTimeoutNotReached, withdraw(0, true))
	e.blocktime += subcfg.WithdrawAllTimeout
	require.NoError(t, withdraw(0, true))
	assert.Equal(t, int64(0), e.ledger().HouseStake)
	e.checkLedgerInvariant()

	_, err = e.exec(&gcty.GameChannelAction{
		Ty:    gcty.GameChannelActionTogglePause,
		Value: &gcty.GameChannelAction_TogglePause{TogglePause: &gcty.TogglePause{Pause: true}},
	}, privOwner)
	assert.Equal(t, gcty.ErrChannelPaused, err)
}

func TestProfitTransfer(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	id := e.openChannel(10*gcty.CoinPrecision, 0)
	_, err = e.exec(cancelAction(id, ""), privUser)
	require.NoError(t, err)
	_, err = e.exec(cancelAction(id, addrUser), privServer)
	require.NoError(t, err)
	assert.Equal(t, int64(1*gcty.CoinPrecision), e.ledger().HouseProfit)

	profitTransfer := func() error {
		_, err := e.exec(&gcty.GameChannelAction{
			Ty:    gcty.GameChannelActionProfitTransfer,
			Value: &gcty.GameChannelAction_ProfitTransfer{ProfitTransfer: &gcty.ProfitTransfer{}},
		}, privUser)
		return err
	}

	require.NoError(t, profitTransfer())
	ledger := e.ledger()
	assert.Equal(t, int64(0), ledger.HouseProfit)
	assert.Equal(t, int64(100*gcty.CoinPrecision), ledger.HouseStake)
	assert.Equal(t, e.blocktime, ledger.LastProfitTransfer)
	treasuryAcc := e.acc.LoadExecAccount(addrTreasury, execAddr)
	assert.Equal(t, int64(1*gcty.CoinPrecision), treasuryAcc.Balance)
	e.checkLedgerInvariant()

	// 冷却期内再次划转被拒绝
	assert.Equal(t, gcty.ErrProfitCooldown, profitTransfer())
	e.blocktime += e.ledger().ProfitTransferTimeSpan
	require.NoError(t, profitTransfer())
}

func TestSetConfig(t *testing.T) {
	e := newTestEnv(t)

	setConfig := func(payload *gcty.SetConfig, priv crypto.PrivKey) error {
		_, err := e.exec(&gcty.GameChannelAction{
			Ty:    gcty.GameChannelActionSetConfig,
			Value: &gcty.GameChannelAction_SetConfig{SetConfig: payload},
		}, priv)
		return err
	}

	assert.Equal(t, gcty.ErrNotOwnerAddr, setConfig(&gcty.SetConfig{MinStake: 2 * gcty.CoinPrecision}, privUser))

	require.NoError(t, setConfig(&gcty.SetConfig{MinStake: 2 * gcty.CoinPrecision, MaxStake: 50 * gcty.CoinPrecision}, privOwner))
	ledger := e.ledger()
	assert.Equal(t, int64(2*gcty.CoinPrecision), ledger.MinStake)
	assert.Equal(t, int64(50*gcty.CoinPrecision), ledger.MaxStake)

	assert.Equal(t, gcty.ErrStakeOutOfRange,
		setConfig(&gcty.SetConfig{MaxStake: 1 * gcty.CoinPrecision}, privOwner))
	assert.Equal(t, gcty.ErrTimeSpanRange,
		setConfig(&gcty.SetConfig{ProfitTransferTimeSpan: 100}, privOwner))
	assert.Equal(t, gcty.ErrInvalidParam,
		setConfig(&gcty.SetConfig{TreasuryAddr: "not-an-address"}, privOwner))

	require.NoError(t, setConfig(&gcty.SetConfig{TreasuryAddr: addrServer}, privOwner))
	assert.Equal(t, addrServer, e.ledger().TreasuryAddr)
}

func TestQueries(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)
	id := e.openChannel(10*gcty.CoinPrecision, 0)

	msg, err := e.driver.Query_QuerySessionById(&gcty.ReqSessionById{SessionId: id})
	require.NoError(t, err)
	assert.Equal(t, id, msg.(*gcty.ReplySession).Session.SessionId)

	_, err = e.driver.Query_QuerySessionById(&gcty.ReqSessionById{SessionId: 99})
	assert.Equal(t, gcty.ErrSessionNotFound, err)

	msg, err = e.driver.Query_QuerySessionByAddr(&gcty.ReqSessionByAddr{Addr: addrUser})
	require.NoError(t, err)
	assert.Equal(t, id, msg.(*gcty.ReplySession).Session.SessionId)

	_, err = e.driver.Query_QuerySessionByAddr(&gcty.ReqSessionByAddr{Addr: addrTreasury})
	assert.Equal(t, gcty.ErrSessionNotFound, err)

	msg, err = e.driver.Query_QuerySessionList(&gcty.ReqSessionList{Status: gcty.StatusActive})
	require.NoError(t, err)
	require.Len(t, msg.(*gcty.ReplySessionList).Sessions, 1)
	assert.Equal(t, id, msg.(*gcty.ReplySessionList).Sessions[0].SessionId)

	msg, err = e.driver.Query_QuerySessionList(&gcty.ReqSessionList{Status: gcty.StatusActive, Addr: addrUser})
	require.NoError(t, err)
	require.Len(t, msg.(*gcty.ReplySessionList).Sessions, 1)

	msg, err = e.driver.Query_QueryLedger(&types.ReqNil{})
	require.NoError(t, err)
	assert.Equal(t, int64(100*gcty.CoinPrecision), msg.(*gcty.HouseLedger).HouseStake)

	msg, err = e.driver.Query_QueryMaxBet(&gcty.ReqMaxBet{WinProbability: 5000})
	require.NoError(t, err)
	assert.True(t, msg.(*gcty.ReplyMaxBet).MaxBet > 0)

	// 关闭后会话出现在已关闭状态的索引下
	_, err = e.exec(cancelAction(id, ""), privUser)
	require.NoError(t, err)
	_, err = e.exec(cancelAction(id, addrUser), privServer)
	require.NoError(t, err)
	msg, err = e.driver.Query_QuerySessionList(&gcty.ReqSessionList{Status: gcty.StatusClosed})
	require.NoError(t, err)
	require.Len(t, msg.(*gcty.ReplySessionList).Sessions, 1)
	assert.Equal(t, int32(gcty.StatusClosed), msg.(*gcty.ReplySessionList).Sessions[0].Status)
}

func TestExecLocalRollback(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.exec(depositAction(100*gcty.CoinPrecision), privOwner)
	require.NoError(t, err)

	e.nonce++
	e.height++
	tx := &types.Transaction{
		Execer:  []byte(gcty.GameChannelX),
		Payload: types.Encode(createAction(10*gcty.CoinPrecision, 0, e.blocktime+100)),
		Fee:     1e6,
		Nonce:   e.nonce,
		To:      execAddr,
	}
	tx.Sign(types.SECP256K1, privUser)
	e.driver.SetEnv(e.height, e.blocktime, 1)
	receipt, err := e.driver.Exec(tx, 0)
	require.NoError(t, err)
	for _, kv := range receipt.KV {
		require.NoError(t, e.sdb.Set(kv.Key, kv.Value))
	}
	receiptData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}

	addSet, err := e.driver.ExecLocal(tx, receiptData, 0)
	require.NoError(t, err)
	require.Len(t, addSet.KV, 2)
	delSet, err := e.driver.ExecDelLocal(tx, receiptData, 0)
	require.NoError(t, err)
	require.Len(t, delSet.KV, 2)
	for i := range addSet.KV {
		assert.Equal(t, addSet.KV[i].Key, delSet.KV[i].Key)
		assert.Nil(t, delSet.KV[i].Value)
	}
}
