package gamechannel

import (
	"github.com/33cn/chain33/pluginmgr"
	"github.com/dicether/gamechannel/commands"
	"github.com/dicether/gamechannel/executor"
	"github.com/dicether/gamechannel/rpc"
	gcty "github.com/dicether/gamechannel/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     gcty.GameChannelX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.GameChannelCmd,
		RPC:      rpc.Init,
	})
}
