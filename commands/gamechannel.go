package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	gcty "github.com/dicether/gamechannel/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// GameChannelCmd 通道命令入口
func GameChannelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gamechannel",
		Short: "payment channel wagering management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		createChannelCmd(),
		closeChannelCmd(),
		conflictCmd(),
		cancelCmd(),
		forceEndCmd(),
		houseDepositCmd(),
		houseWithdrawCmd(),
		profitTransferCmd(),
		setConfigCmd(),
		togglePauseCmd(),
		querySessionCmd(),
		querySessionListCmd(),
		queryLedgerCmd(),
		queryMaxBetCmd(),
	)
	return cmd
}

func sendTxReq(cmd *cobra.Command, method string, params interface{}) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	var res string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, gcty.JRPCName+"."+method, params, &res)
	ctx.RunWithoutMarshal()
}

func parseSig(cmd *cobra.Command) (sigReq, error) {
	ty, _ := cmd.Flags().GetInt32("sigTy")
	pubkey, _ := cmd.Flags().GetString("pubkey")
	sig, _ := cmd.Flags().GetString("sig")
	if pubkey == "" || sig == "" {
		return sigReq{}, errors.New("pubkey and sig are required")
	}
	return sigReq{Ty: ty, Pubkey: pubkey, Signature: sig}, nil
}

// sigReq 与rpc包的签名请求结构字段一致
type sigReq struct {
	Ty        int32  `json:"ty"`
	Pubkey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

func addSigFlags(cmd *cobra.Command) {
	cmd.Flags().Int32P("sigTy", "t", 1, "signature type, 1 for secp256k1")
	cmd.Flags().StringP("pubkey", "k", "", "signer pubkey, hex")
	cmd.MarkFlagRequired("pubkey")
	cmd.Flags().StringP("sig", "g", "", "signature, hex")
	cmd.MarkFlagRequired("sig")
}

func createChannelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a new game channel session",
		Run:   createChannel,
	}
	cmd.Flags().Float64P("stake", "a", 0, "stake amount in coins")
	cmd.MarkFlagRequired("stake")
	cmd.Flags().Int64P("prevSessionId", "p", 0, "previous session id of this user, 0 for the first")
	cmd.Flags().Int64P("createBefore", "b", 0, "latest block time the authorization is valid for")
	cmd.MarkFlagRequired("createBefore")
	cmd.Flags().StringP("serverCommitment", "s", "", "server seed commitment, hex")
	cmd.MarkFlagRequired("serverCommitment")
	cmd.Flags().StringP("userCommitment", "u", "", "user seed commitment, hex")
	cmd.MarkFlagRequired("userCommitment")
	addSigFlags(cmd)
	return cmd
}

func createChannel(cmd *cobra.Command, args []string) {
	stake, _ := cmd.Flags().GetFloat64("stake")
	prevSessionID, _ := cmd.Flags().GetInt64("prevSessionId")
	createBefore, _ := cmd.Flags().GetInt64("createBefore")
	serverCommitment, _ := cmd.Flags().GetString("serverCommitment")
	userCommitment, _ := cmd.Flags().GetString("userCommitment")
	sig, err := parseSig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := struct {
		Stake            int64  `json:"stake"`
		PrevSessionID    int64  `json:"prevSessionId"`
		CreateBefore     int64  `json:"createBefore"`
		ServerCommitment string `json:"serverCommitment"`
		UserCommitment   string `json:"userCommitment"`
		ServerSig        sigReq `json:"serverSig"`
	}{
		Stake:            int64(stake * gcty.CoinPrecision),
		PrevSessionID:    prevSessionID,
		CreateBefore:     createBefore,
		ServerCommitment: serverCommitment,
		UserCommitment:   userCommitment,
		ServerSig:        sig,
	}
	sendTxReq(cmd, "CreateChannelTx", params)
}

func closeChannelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close",
		Short: "cooperatively close a session with the peer signed final round",
		Run:   closeChannel,
	}
	addRoundFlags(cmd)
	addSigFlags(cmd)
	return cmd
}

func addRoundFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("sessionId", "i", 0, "session id")
	cmd.MarkFlagRequired("sessionId")
	cmd.Flags().Int32P("roundId", "r", 0, "round id")
	cmd.Flags().Float64P("balance", "l", 0, "session balance in coins, user view")
	cmd.Flags().StringP("serverCommitment", "s", "", "server seed commitment, hex")
	cmd.MarkFlagRequired("serverCommitment")
	cmd.Flags().StringP("userCommitment", "u", "", "user seed commitment, hex")
	cmd.MarkFlagRequired("userCommitment")
	cmd.Flags().StringP("userAddr", "d", "", "user address, required when sent by the server")
}

func closeChannel(cmd *cobra.Command, args []string) {
	sessionID, _ := cmd.Flags().GetInt64("sessionId")
	roundID, _ := cmd.Flags().GetInt32("roundId")
	balance, _ := cmd.Flags().GetFloat64("balance")
	serverCommitment, _ := cmd.Flags().GetString("serverCommitment")
	userCommitment, _ := cmd.Flags().GetString("userCommitment")
	userAddr, _ := cmd.Flags().GetString("userAddr")
	sig, err := parseSig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := struct {
		SessionID        int64  `json:"sessionId"`
		RoundID          int32  `json:"roundId"`
		Balance          int64  `json:"balance"`
		ServerCommitment string `json:"serverCommitment"`
		UserCommitment   string `json:"userCommitment"`
		PeerSig          sigReq `json:"peerSig"`
		UserAddr         string `json:"userAddr"`
	}{
		SessionID:        sessionID,
		RoundID:          roundID,
		Balance:          int64(balance * gcty.CoinPrecision),
		ServerCommitment: serverCommitment,
		UserCommitment:   userCommitment,
		PeerSig:          sig,
		UserAddr:         userAddr,
	}
	sendTxReq(cmd, "CloseChannelTx", params)
}

func conflictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflict",
		Short: "raise or answer a dispute with the last signed round",
		Run:   conflict,
	}
	addRoundFlags(cmd)
	addSigFlags(cmd)
	cmd.Flags().Int32P("wagerType", "w", 0, "wager type of the disputed round")
	cmd.Flags().Int64P("num", "n", 0, "wager parameter of the disputed round")
	cmd.Flags().Float64P("betValue", "v", 0, "bet value in coins")
	cmd.Flags().String("serverSeed", "", "revealed server seed, hex")
	cmd.Flags().String("userSeed", "", "revealed user seed, hex")
	return cmd
}

func conflict(cmd *cobra.Command, args []string) {
	sessionID, _ := cmd.Flags().GetInt64("sessionId")
	roundID, _ := cmd.Flags().GetInt32("roundId")
	wagerType, _ := cmd.Flags().GetInt32("wagerType")
	num, _ := cmd.Flags().GetInt64("num")
	betValue, _ := cmd.Flags().GetFloat64("betValue")
	balance, _ := cmd.Flags().GetFloat64("balance")
	serverCommitment, _ := cmd.Flags().GetString("serverCommitment")
	userCommitment, _ := cmd.Flags().GetString("userCommitment")
	serverSeed, _ := cmd.Flags().GetString("serverSeed")
	userSeed, _ := cmd.Flags().GetString("userSeed")
	userAddr, _ := cmd.Flags().GetString("userAddr")
	sig, err := parseSig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	params := struct {
		SessionID        int64  `json:"sessionId"`
		RoundID          int32  `json:"roundId"`
		WagerType        int32  `json:"wagerType"`
		Num              int64  `json:"num"`
		BetValue         int64  `json:"betValue"`
		Balance          int64  `json:"balance"`
		ServerCommitment string `json:"serverCommitment"`
		UserCommitment   string `json:"userCommitment"`
		PeerSig          sigReq `json:"peerSig"`
		ServerSeed       string `json:"serverSeed"`
		UserSeed         string `json:"userSeed"`
		UserAddr         string `json:"userAddr"`
	}{
		SessionID:        sessionID,
		RoundID:          roundID,
		WagerType:        wagerType,
		Num:              num,
		BetValue:         int64(betValue * gcty.CoinPrecision),
		Balance:          int64(balance * gcty.CoinPrecision),
		ServerCommitment: serverCommitment,
		UserCommitment:   userCommitment,
		PeerSig:          sig,
		ServerSeed:       serverSeed,
		UserSeed:         userSeed,
		UserAddr:         userAddr,
	}
	sendTxReq(cmd, "ConflictTx", params)
}

func cancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "cancel a session without round data",
		Run: func(cmd *cobra.Command, args []string) {
			sendTxReq(cmd, "CancelTx", sessionParams(cmd))
		},
	}
	addSessionFlags(cmd)
	return cmd
}

func forceEndCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force_end",
		Short: "force settle a disputed session after the response window",
		Run: func(cmd *cobra.Command, args []string) {
			sendTxReq(cmd, "ForceEndTx", sessionParams(cmd))
		},
	}
	addSessionFlags(cmd)
	return cmd
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("sessionId", "i", 0, "session id")
	cmd.MarkFlagRequired("sessionId")
	cmd.Flags().StringP("userAddr", "d", "", "user address, required when sent by the server")
}

func sessionParams(cmd *cobra.Command) interface{} {
	sessionID, _ := cmd.Flags().GetInt64("sessionId")
	userAddr, _ := cmd.Flags().GetString("userAddr")
	return struct {
		SessionID int64  `json:"sessionId"`
		UserAddr  string `json:"userAddr"`
	}{SessionID: sessionID, UserAddr: userAddr}
}

func houseDepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "owner deposits collateral into the house pot",
		Run: func(cmd *cobra.Command, args []string) {
			amount, _ := cmd.Flags().GetFloat64("amount")
			sendTxReq(cmd, "HouseDepositTx", struct {
				Amount int64 `json:"amount"`
			}{Amount: int64(amount * gcty.CoinPrecision)})
		},
	}
	cmd.Flags().Float64P("amount", "a", 0, "amount in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func houseWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "owner withdraws collateral from the house pot",
		Run: func(cmd *cobra.Command, args []string) {
			amount, _ := cmd.Flags().GetFloat64("amount")
			all, _ := cmd.Flags().GetBool("all")
			sendTxReq(cmd, "HouseWithdrawTx", struct {
				Amount int64 `json:"amount"`
				All    bool  `json:"all"`
			}{Amount: int64(amount * gcty.CoinPrecision), All: all})
		},
	}
	cmd.Flags().Float64P("amount", "a", 0, "amount in coins")
	cmd.Flags().BoolP("all", "A", false, "withdraw everything, requires pause and drained sessions")
	return cmd
}

func profitTransferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profit_transfer",
		Short: "move accumulated house profit to the treasury address",
		Run: func(cmd *cobra.Command, args []string) {
			sendTxReq(cmd, "ProfitTransferTx", struct{}{})
		},
	}
}

func setConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_config",
		Short: "owner adjusts stake limits, profit transfer span or treasury",
		Run: func(cmd *cobra.Command, args []string) {
			minStake, _ := cmd.Flags().GetFloat64("minStake")
			maxStake, _ := cmd.Flags().GetFloat64("maxStake")
			span, _ := cmd.Flags().GetInt64("profitTransferTimeSpan")
			treasury, _ := cmd.Flags().GetString("treasuryAddr")
			sendTxReq(cmd, "SetConfigTx", struct {
				MinStake               int64  `json:"minStake"`
				MaxStake               int64  `json:"maxStake"`
				ProfitTransferTimeSpan int64  `json:"profitTransferTimeSpan"`
				TreasuryAddr           string `json:"treasuryAddr"`
			}{
				MinStake:               int64(minStake * gcty.CoinPrecision),
				MaxStake:               int64(maxStake * gcty.CoinPrecision),
				ProfitTransferTimeSpan: span,
				TreasuryAddr:           treasury,
			})
		},
	}
	cmd.Flags().Float64("minStake", 0, "minimum stake in coins, 0 keeps current")
	cmd.Flags().Float64("maxStake", 0, "maximum stake in coins, 0 keeps current")
	cmd.Flags().Int64("profitTransferTimeSpan", 0, "profit transfer cooldown in seconds, 0 keeps current")
	cmd.Flags().String("treasuryAddr", "", "treasury address, empty keeps current")
	return cmd
}

func togglePauseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle_pause",
		Short: "owner pauses or resumes session creation",
		Run: func(cmd *cobra.Command, args []string) {
			pause, _ := cmd.Flags().GetBool("pause")
			sendTxReq(cmd, "TogglePauseTx", struct {
				Pause bool `json:"pause"`
			}{Pause: pause})
		},
	}
	cmd.Flags().BoolP("pause", "p", false, "true to pause, false to resume")
	cmd.MarkFlagRequired("pause")
	return cmd
}

func querySessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "query a session by id or the latest session of an address",
		Run:   querySession,
	}
	cmd.Flags().Int64P("sessionId", "i", 0, "session id")
	cmd.Flags().StringP("addr", "d", "", "user address")
	return cmd
}

func querySession(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	sessionID, _ := cmd.Flags().GetInt64("sessionId")
	addr, _ := cmd.Flags().GetString("addr")

	var params rpctypes.Query4Jrpc
	params.Execer = execName(cmd)
	if sessionID > 0 {
		params.FuncName = gcty.FuncNameQuerySessionByID
		params.Payload = types.MustPBToJSON(&gcty.ReqSessionById{SessionId: sessionID})
	} else if addr != "" {
		params.FuncName = gcty.FuncNameQuerySessionByAddr
		params.Payload = types.MustPBToJSON(&gcty.ReqSessionByAddr{Addr: addr})
	} else {
		fmt.Fprintln(os.Stderr, "either sessionId or addr is required")
		return
	}
	var res gcty.ReplySession
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func querySessionListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query_list",
		Short: "list sessions by status, optionally filtered by address",
		Run:   querySessionList,
	}
	cmd.Flags().Int32P("status", "s", 0, "session status, 0 closed 1 active 3 user end 4 server end")
	cmd.Flags().StringP("addr", "d", "", "user address filter")
	cmd.Flags().Int64P("index", "i", 0, "list from this index, 0 for the newest")
	cmd.Flags().Int32P("count", "c", 0, "max entries, 0 for default")
	cmd.Flags().Int32("direction", 0, "0 descending, 1 ascending")
	return cmd
}

func querySessionList(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	status, _ := cmd.Flags().GetInt32("status")
	addr, _ := cmd.Flags().GetString("addr")
	index, _ := cmd.Flags().GetInt64("index")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")

	var params rpctypes.Query4Jrpc
	params.Execer = execName(cmd)
	params.FuncName = gcty.FuncNameQuerySessionList
	params.Payload = types.MustPBToJSON(&gcty.ReqSessionList{
		Status:    status,
		Addr:      addr,
		Index:     index,
		Count:     count,
		Direction: direction,
	})
	var res gcty.ReplySessionList
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func queryLedgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "query the house ledger",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			var params rpctypes.Query4Jrpc
			params.Execer = execName(cmd)
			params.FuncName = gcty.FuncNameQueryLedger
			params.Payload = types.MustPBToJSON(&types.ReqNil{})
			var res gcty.HouseLedger
			ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
			ctx.Run()
		},
	}
}

func queryMaxBetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "max_bet",
		Short: "query the max allowed bet for a win probability",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			prob, _ := cmd.Flags().GetInt64("probability")
			var params rpctypes.Query4Jrpc
			params.Execer = execName(cmd)
			params.FuncName = gcty.FuncNameQueryMaxBet
			params.Payload = types.MustPBToJSON(&gcty.ReqMaxBet{WinProbability: prob})
			var res gcty.ReplyMaxBet
			ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
			ctx.Run()
		},
	}
	cmd.Flags().Int64P("probability", "p", 0, "win probability in units of 1/10000")
	cmd.MarkFlagRequired("probability")
	return cmd
}

func execName(cmd *cobra.Command) string {
	paraName, _ := cmd.Flags().GetString("paraName")
	if paraName != "" && !strings.HasSuffix(paraName, ".") {
		paraName += "."
	}
	return paraName + gcty.GameChannelX
}
