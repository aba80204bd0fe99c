package types

import (
	"reflect"

	"github.com/33cn/chain33/types"
)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, ExecerGameChannel)
	types.RegFork(GameChannelX, InitFork)
	types.RegExec(GameChannelX, InitExecutor)
}

// InitFork 注册fork
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(GameChannelX, "Enable", 0)
}

// InitExecutor 注册执行器类型
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(GameChannelX, NewType(cfg))
}

// GameChannelType 执行器类型
type GameChannelType struct {
	types.ExecTypeBase
}

// NewType 创建类型对象
func NewType(cfg *types.Chain33Config) *GameChannelType {
	c := &GameChannelType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// GetPayload 返回payload原型
func (t *GameChannelType) GetPayload() types.Message {
	return &GameChannelAction{}
}

// GetTypeMap 返回action名到类型值的映射
func (t *GameChannelType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Create":         GameChannelActionCreate,
		"Close":          GameChannelActionClose,
		"Conflict":       GameChannelActionConflict,
		"Cancel":         GameChannelActionCancel,
		"ForceEnd":       GameChannelActionForceEnd,
		"HouseDeposit":   GameChannelActionHouseDeposit,
		"HouseWithdraw":  GameChannelActionHouseWithdraw,
		"ProfitTransfer": GameChannelActionProfitTransfer,
		"SetConfig":      GameChannelActionSetConfig,
		"TogglePause":    GameChannelActionTogglePause,
	}
}

// GetLogMap 返回log类型映射
func (t *GameChannelType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogChannelCreate:   {Ty: reflect.TypeOf(ReceiptGameChannel{}), Name: "TyLogChannelCreate"},
		TyLogChannelClose:    {Ty: reflect.TypeOf(ReceiptGameChannel{}), Name: "TyLogChannelClose"},
		TyLogChannelConflict: {Ty: reflect.TypeOf(ReceiptGameChannel{}), Name: "TyLogChannelConflict"},
		TyLogChannelCancel:   {Ty: reflect.TypeOf(ReceiptGameChannel{}), Name: "TyLogChannelCancel"},
		TyLogChannelForceEnd: {Ty: reflect.TypeOf(ReceiptGameChannel{}), Name: "TyLogChannelForceEnd"},
		TyLogHouseLedger:     {Ty: reflect.TypeOf(ReceiptHouseLedger{}), Name: "TyLogHouseLedger"},
	}
}
