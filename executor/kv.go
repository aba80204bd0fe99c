package executor

import (
	"fmt"

	gcty "github.com/dicether/gamechannel/types"
)

func sessionKey(sessionID int64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-session-%018d", gcty.GameChannelX, sessionID))
}

func userKey(addr string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-user-%s", gcty.GameChannelX, addr))
}

func ledgerKey() []byte {
	return []byte(fmt.Sprintf("mavl-%s-ledger", gcty.GameChannelX))
}

func calcSessionStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:%018d", gcty.GameChannelX, status, index))
}

func calcSessionStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-%s-status:%d:", gcty.GameChannelX, status))
}

func calcSessionAddrIndexKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addr:%s:%d:%018d", gcty.GameChannelX, addr, status, index))
}

func calcSessionAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-addr:%s:%d:", gcty.GameChannelX, addr, status))
}
