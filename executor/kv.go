// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rpst "github.com/33cn/rps/types"
)

// Key gameId对应的statedb key
func Key(gameID uint64) []byte {
	return []byte(fmt.Sprintf("mavl-"+rpst.RPSX+"-%018d", gameID))
}

// calcRpsGameIDKey 游戏id计数器的statedb key
func calcRpsGameIDKey() []byte {
	return []byte("mavl-" + rpst.RPSX + "-gameid")
}

func calcRpsGameStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-"+rpst.RPSX+"-status:%d:%018d", status, index))
}

func calcRpsGameStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-"+rpst.RPSX+"-status:%d:", status))
}

func calcRpsGameAddrIndexKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("LODB-"+rpst.RPSX+"-addr:%s:%d:%018d", addr, status, index))
}

func calcRpsGameAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-"+rpst.RPSX+"-addr:%s:%d:", addr, status))
}
