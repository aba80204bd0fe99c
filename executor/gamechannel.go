package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	gcty "github.com/dicether/gamechannel/types"
)

var glog = log.New("module", "execs.gamechannel")

var driverName = gcty.GameChannelX

// 链级配置, 由执行器子配置提供, 缺省值见 types/const.go
type subConfig struct {
	ServerAddr             string `json:"serverAddr"`
	OwnerAddr              string `json:"ownerAddr"`
	TreasuryAddr           string `json:"treasuryAddr"`
	MinStake               int64  `json:"minStake"`
	MaxStake               int64  `json:"maxStake"`
	MinBankroll            int64  `json:"minBankroll"`
	ConflictEndFine        int64  `json:"conflictEndFine"`
	NotEndedFine           int64  `json:"notEndedFine"`
	ServerTimeout          int64  `json:"serverTimeout"`
	UserTimeout            int64  `json:"userTimeout"`
	WithdrawAllTimeout     int64  `json:"withdrawAllTimeout"`
	ProfitTransferTimeSpan int64  `json:"profitTransferTimeSpan"`
}

var subcfg subConfig

// Init 注册执行器
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	driverName = name
	if sub != nil {
		types.MustDecode(sub, &subcfg)
	}
	applyConfigDefaults(&subcfg)
	drivers.Register(cfg, driverName, newGameChannel, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType 初始化反射调用表
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&GameChannel{}))
}

func applyConfigDefaults(c *subConfig) {
	if c.MinStake <= 0 {
		c.MinStake = gcty.DefaultMinStake
	}
	if c.MaxStake <= 0 {
		c.MaxStake = gcty.DefaultMaxStake
	}
	if c.MinBankroll <= 0 {
		c.MinBankroll = gcty.DefaultMinBankroll
	}
	if c.ConflictEndFine <= 0 {
		c.ConflictEndFine = gcty.DefaultConflictEndFine
	}
	if c.NotEndedFine <= 0 {
		c.NotEndedFine = gcty.DefaultNotEndedFine
	}
	if c.ServerTimeout <= 0 {
		c.ServerTimeout = gcty.DefaultServerTimeout
	}
	if c.UserTimeout <= 0 {
		c.UserTimeout = gcty.DefaultUserTimeout
	}
	if c.WithdrawAllTimeout <= 0 {
		c.WithdrawAllTimeout = gcty.DefaultWithdrawAllTimeout
	}
	if c.ProfitTransferTimeSpan <= 0 {
		c.ProfitTransferTimeSpan = gcty.DefaultProfitTransferTimeSpan
	}
}

// GameChannel 支付通道执行器
type GameChannel struct {
	drivers.DriverBase
}

func newGameChannel() drivers.Driver {
	g := &GameChannel{}
	g.SetChild(g)
	g.SetExecutorType(types.LoadExecutorType(driverName))
	return g
}

// GetName 执行器名
func GetName() string {
	return newGameChannel().GetName()
}

// GetDriverName 驱动名
func (g *GameChannel) GetDriverName() string {
	return driverName
}

// CheckReceiptExecOk 只有执行成功的交易才保存localdb索引
func (g *GameChannel) CheckReceiptExecOk() bool {
	return true
}
