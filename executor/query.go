// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

// Query_GetRpsGameInfo 按id查询单局游戏
func (r *RPS) Query_GetRpsGameInfo(in *rpst.ReqRpsGameInfo) (types.Message, error) {
	game, err := readGame(r.GetStateDB(), in.GetGameId())
	if err != nil {
		return nil, err
	}
	return &rpst.ReplyRpsGame{Game: game}, nil
}

// Query_GetRpsGameList 按状态和地址分页查询游戏列表
func (r *RPS) Query_GetRpsGameList(in *rpst.ReqRpsGameList) (types.Message, error) {
	if in.GetStatus() < rpst.RpsGameStatusCreated || in.GetStatus() > rpst.RpsGameStatusResolved {
		return nil, types.ErrInvalidParam
	}
	return queryGameListByStatusAndAddr(r.GetLocalDB(), r.GetStateDB(), in)
}

func queryGameListByStatusAndAddr(localDB dbm.Lister, stateDB dbm.KV, param *rpst.ReqRpsGameList) (types.Message, error) {
	direction := rpst.ListDESC
	if param.GetDirection() == rpst.ListASC {
		direction = rpst.ListASC
	}
	count := rpst.DefaultCount
	if 0 < param.GetCount() && param.GetCount() <= rpst.MaxCount {
		count = param.GetCount()
	}
	var prefix []byte
	var key []byte
	if param.GetAddr() == "" {
		prefix = calcRpsGameStatusIndexPrefix(param.GetStatus())
		key = calcRpsGameStatusIndexKey(param.GetStatus(), param.GetIndex())
	} else {
		prefix = calcRpsGameAddrIndexPrefix(param.GetStatus(), param.GetAddr())
		key = calcRpsGameAddrIndexKey(param.GetStatus(), param.GetAddr(), param.GetIndex())
	}
	var values [][]byte
	var err error
	if param.GetIndex() == 0 { // 第一页
		values, err = localDB.List(prefix, nil, count, direction)
	} else {
		values, err = localDB.List(prefix, key, count, direction)
	}
	if err != nil {
		return nil, err
	}
	var games []*rpst.RpsGame
	for _, value := range values {
		var record rpst.RpsGameRecord
		err := types.Decode(value, &record)
		if err != nil {
			continue
		}
		game, err := readGame(stateDB, record.GetGameId())
		if err != nil {
			rlog.Error("queryGameList", "id", record.GetGameId(), "err", err)
			continue
		}
		games = append(games, game)
	}
	return &rpst.ReplyRpsGameList{Games: games}, nil
}
