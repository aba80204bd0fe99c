package rpc

import (
	rpctypes "github.com/33cn/chain33/rpc/types"
	gcty "github.com/dicether/gamechannel/types"
)

// Jrpc json rpc服务
type Jrpc struct {
	cli *channelClient
}

// Grpc grpc服务
type Grpc struct {
	*channelClient
}

type channelClient struct {
	rpctypes.ChannelClient
}

// Init 注册rpc服务
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	grpc := &Grpc{channelClient: cli}
	cli.Init(name, s, &Jrpc{cli: cli}, grpc)
	gcty.RegisterGameChannelServer(s.GRPC(), grpc)
}
