package types

// action类型
const (
	GameChannelActionCreate = iota + 1
	GameChannelActionClose
	GameChannelActionConflict
	GameChannelActionCancel
	GameChannelActionForceEnd
	GameChannelActionHouseDeposit
	GameChannelActionHouseWithdraw
	GameChannelActionProfitTransfer
	GameChannelActionSetConfig
	GameChannelActionTogglePause
)

// log类型
const (
	TyLogChannelCreate   = 860
	TyLogChannelClose    = 861
	TyLogChannelConflict = 862
	TyLogChannelCancel   = 863
	TyLogChannelForceEnd = 864
	TyLogHouseLedger     = 865
)

// 会话状态
const (
	StatusClosed             = 0
	StatusActive             = 1
	StatusUserInitiatedEnd   = 3
	StatusServerInitiatedEnd = 4
)

// 结束原因
const (
	ReasonRegularEnded = iota
	ReasonServerForcedEnd
	ReasonUserForcedEnd
	ReasonConflictEnded
)

// 查询方法名
const (
	FuncNameQuerySessionByID   = "QuerySessionById"
	FuncNameQuerySessionByAddr = "QuerySessionByAddr"
	FuncNameQuerySessionList   = "QuerySessionList"
	FuncNameQueryLedger        = "QueryLedger"
	FuncNameQueryMaxBet        = "QueryMaxBet"
)

// 资金单位为 1e8 的基础币值
const (
	CoinPrecision = 1e8

	DefaultMinStake    = 1 * CoinPrecision
	DefaultMaxStake    = 200 * CoinPrecision
	DefaultMinBankroll = 1000 * CoinPrecision

	DefaultConflictEndFine = 1 * CoinPrecision
	DefaultNotEndedFine    = 4 * CoinPrecision

	// 单位秒, 等待对方响应的窗口
	DefaultServerTimeout      = 12 * 3600
	DefaultUserTimeout        = 48 * 3600
	DefaultWithdrawAllTimeout = 3 * 24 * 3600

	DefaultProfitTransferTimeSpan = 14 * 24 * 3600
	MinProfitTransferTimeSpan     = 1 * 24 * 3600
	MaxProfitTransferTimeSpan     = 180 * 24 * 3600
)

// 抽水和概率的定点基数
const (
	HouseEdge          = 150
	HouseEdgeDivisor   = 10000
	ProbabilityDivisor = 10000

	// 单局最大净赢不超过 minBankroll/MaxBetDivisor
	MaxBetDivisor = 100
)

var (
	// GameChannelX 执行器名
	GameChannelX = "gamechannel"
	// ExecerGameChannel 执行器名的字节形式
	ExecerGameChannel = []byte(GameChannelX)
	// JRPCName json rpc 前缀
	JRPCName = "gamechannel"
)
