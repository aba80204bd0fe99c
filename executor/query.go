package executor

import (
	"github.com/33cn/chain33/types"
	"github.com/dicether/gamechannel/games"
	gcty "github.com/dicether/gamechannel/types"
)

const defaultListCount = 20

// Query_QuerySessionById 按会话id查询
func (g *GameChannel) Query_QuerySessionById(in *gcty.ReqSessionById) (types.Message, error) {
	session, err := getSession(g.GetStateDB(), in.GetSessionId())
	if err != nil {
		return nil, err
	}
	return &gcty.ReplySession{Session: session}, nil
}

// Query_QuerySessionByAddr 查询用户最近一次会话
func (g *GameChannel) Query_QuerySessionByAddr(in *gcty.ReqSessionByAddr) (types.Message, error) {
	state, err := getUserState(g.GetStateDB(), in.GetAddr())
	if err != nil {
		return nil, err
	}
	if state.LastSessionId == 0 {
		return nil, gcty.ErrSessionNotFound
	}
	session, err := getSession(g.GetStateDB(), state.LastSessionId)
	if err != nil {
		return nil, err
	}
	return &gcty.ReplySession{Session: session}, nil
}

// Query_QuerySessionList 按状态(可选地址)翻页查询
func (g *GameChannel) Query_QuerySessionList(in *gcty.ReqSessionList) (types.Message, error) {
	var prefix, key []byte
	if in.GetAddr() != "" {
		prefix = calcSessionAddrIndexPrefix(in.GetStatus(), in.GetAddr())
		if in.GetIndex() > 0 {
			key = calcSessionAddrIndexKey(in.GetStatus(), in.GetAddr(), in.GetIndex())
		}
	} else {
		prefix = calcSessionStatusIndexPrefix(in.GetStatus())
		if in.GetIndex() > 0 {
			key = calcSessionStatusIndexKey(in.GetStatus(), in.GetIndex())
		}
	}
	count := in.GetCount()
	if count <= 0 {
		count = defaultListCount
	}
	values, err := g.GetLocalDB().List(prefix, key, count, in.GetDirection())
	if err != nil {
		return nil, err
	}
	reply := &gcty.ReplySessionList{}
	for _, value := range values {
		var record gcty.ReqSessionById
		if err := types.Decode(value, &record); err != nil {
			return nil, err
		}
		session, err := getSession(g.GetStateDB(), record.SessionId)
		if err != nil {
			return nil, err
		}
		reply.Sessions = append(reply.Sessions, session)
	}
	return reply, nil
}

// Query_QueryLedger 查询庄家账本
func (g *GameChannel) Query_QueryLedger(in *types.ReqNil) (types.Message, error) {
	return getLedger(g.GetStateDB())
}

// Query_QueryMaxBet 按中奖概率查询可接受的最大押注
func (g *GameChannel) Query_QueryMaxBet(in *gcty.ReqMaxBet) (types.Message, error) {
	maxBet, err := games.MaxBet(in.GetWinProbability(), subcfg.MinBankroll)
	if err != nil {
		return nil, err
	}
	return &gcty.ReplyMaxBet{MaxBet: maxBet}, nil
}
