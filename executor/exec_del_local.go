// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

// rollbackIndex 区块回滚时把updateIndex产生的索引变更逆向执行
// 状态数据库由默克尔树保证回滚，这里只回滚localdb
func (r *RPS) rollbackIndex(log *rpst.ReceiptRpsGame) (kvs []*types.KeyValue) {
	if log.Status == rpst.RpsGameStatusResolved && log.PrevStatus == rpst.RpsGameStatusResolved {
		return nil
	}
	switch log.Status {
	case rpst.RpsGameStatusCreated:
		kvs = append(kvs, delRpsGameStatusIndex(log.Status, log.Index))
		kvs = append(kvs, delRpsGameAddrIndex(log.Status, log.CreateAddr, log.Index))
	case rpst.RpsGameStatusPlaying:
		kvs = append(kvs, delRpsGameStatusIndex(log.Status, log.Index))
		kvs = append(kvs, delRpsGameAddrIndex(log.Status, log.Player1, log.Index))
		kvs = append(kvs, addRpsGameStatusIndex(rpst.RpsGameStatusCreated, log.GameId, log.PrevIndex))
		kvs = append(kvs, addRpsGameAddrIndex(rpst.RpsGameStatusCreated, log.GameId, log.CreateAddr, log.PrevIndex))
	case rpst.RpsGameStatusReady:
		kvs = append(kvs, delRpsGameStatusIndex(log.Status, log.Index))
		kvs = append(kvs, delRpsGameAddrIndex(log.Status, log.Player1, log.Index))
		kvs = append(kvs, delRpsGameAddrIndex(log.Status, log.Player2, log.Index))
		kvs = append(kvs, addRpsGameStatusIndex(rpst.RpsGameStatusPlaying, log.GameId, log.PrevIndex))
		kvs = append(kvs, addRpsGameAddrIndex(rpst.RpsGameStatusPlaying, log.GameId, log.Player1, log.PrevIndex))
	case rpst.RpsGameStatusResolved:
		kvs = append(kvs, delRpsGameStatusIndex(log.Status, log.Index))
		kvs = append(kvs, delRpsGameAddrIndex(log.Status, log.Player1, log.Index))
		kvs = append(kvs, delRpsGameAddrIndex(log.Status, log.Player2, log.Index))
		kvs = append(kvs, addRpsGameStatusIndex(rpst.RpsGameStatusReady, log.GameId, log.PrevIndex))
		kvs = append(kvs, addRpsGameAddrIndex(rpst.RpsGameStatusReady, log.GameId, log.Player1, log.PrevIndex))
		kvs = append(kvs, addRpsGameAddrIndex(rpst.RpsGameStatusReady, log.GameId, log.Player2, log.PrevIndex))
	}
	return kvs
}

func (r *RPS) execDelLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if !isRpsGameLog(item.Ty) {
			continue
		}
		var gameLog rpst.ReceiptRpsGame
		err := types.Decode(item.Log, &gameLog)
		if err != nil {
			panic(err) // 数据错误了，已经被修改了
		}
		set.KV = append(set.KV, r.rollbackIndex(&gameLog)...)
	}
	return set, nil
}

// ExecDelLocal_Create 创建游戏的localdb回滚
func (r *RPS) ExecDelLocal_Create(payload *rpst.RpsGameCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(receipt)
}

// ExecDelLocal_Play 加入游戏的localdb回滚
func (r *RPS) ExecDelLocal_Play(payload *rpst.RpsGamePlay, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(receipt)
}

// ExecDelLocal_Reveal 开奖的localdb回滚
func (r *RPS) ExecDelLocal_Reveal(payload *rpst.RpsGameReveal, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execDelLocal(receipt)
}
