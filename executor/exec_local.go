// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

func isRpsGameLog(ty int32) bool {
	return ty == rpst.TyLogRpsGameCreate || ty == rpst.TyLogRpsGamePlay || ty == rpst.TyLogRpsGameReveal
}

func addRpsGameStatusIndex(status int32, gameID uint64, index int64) *types.KeyValue {
	record := &rpst.RpsGameRecord{GameId: gameID, Index: index}
	return &types.KeyValue{Key: calcRpsGameStatusIndexKey(status, index), Value: types.Encode(record)}
}

func addRpsGameAddrIndex(status int32, gameID uint64, addr string, index int64) *types.KeyValue {
	record := &rpst.RpsGameRecord{GameId: gameID, Index: index}
	return &types.KeyValue{Key: calcRpsGameAddrIndexKey(status, addr, index), Value: types.Encode(record)}
}

func delRpsGameStatusIndex(status int32, index int64) *types.KeyValue {
	// value置nil，提交时会自动执行删除操作
	return &types.KeyValue{Key: calcRpsGameStatusIndexKey(status, index), Value: nil}
}

func delRpsGameAddrIndex(status int32, addr string, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcRpsGameAddrIndexKey(status, addr, index), Value: nil}
}

// updateIndex 每次状态变更时维护localdb索引，旧状态的索引要同时删除
func (r *RPS) updateIndex(log *rpst.ReceiptRpsGame) (kvs []*types.KeyValue) {
	if log.Status == rpst.RpsGameStatusResolved && log.PrevStatus == rpst.RpsGameStatusResolved {
		// 重复开奖的日志重放，索引不动
		return nil
	}
	switch log.Status {
	case rpst.RpsGameStatusCreated:
		kvs = append(kvs, addRpsGameStatusIndex(log.Status, log.GameId, log.Index))
		kvs = append(kvs, addRpsGameAddrIndex(log.Status, log.GameId, log.CreateAddr, log.Index))
	case rpst.RpsGameStatusPlaying:
		kvs = append(kvs, delRpsGameStatusIndex(rpst.RpsGameStatusCreated, log.PrevIndex))
		kvs = append(kvs, delRpsGameAddrIndex(rpst.RpsGameStatusCreated, log.CreateAddr, log.PrevIndex))
		kvs = append(kvs, addRpsGameStatusIndex(log.Status, log.GameId, log.Index))
		kvs = append(kvs, addRpsGameAddrIndex(log.Status, log.GameId, log.Player1, log.Index))
	case rpst.RpsGameStatusReady:
		kvs = append(kvs, delRpsGameStatusIndex(rpst.RpsGameStatusPlaying, log.PrevIndex))
		kvs = append(kvs, delRpsGameAddrIndex(rpst.RpsGameStatusPlaying, log.Player1, log.PrevIndex))
		kvs = append(kvs, addRpsGameStatusIndex(log.Status, log.GameId, log.Index))
		kvs = append(kvs, addRpsGameAddrIndex(log.Status, log.GameId, log.Player1, log.Index))
		kvs = append(kvs, addRpsGameAddrIndex(log.Status, log.GameId, log.Player2, log.Index))
	case rpst.RpsGameStatusResolved:
		kvs = append(kvs, delRpsGameStatusIndex(rpst.RpsGameStatusReady, log.PrevIndex))
		kvs = append(kvs, delRpsGameAddrIndex(rpst.RpsGameStatusReady, log.Player1, log.PrevIndex))
		kvs = append(kvs, delRpsGameAddrIndex(rpst.RpsGameStatusReady, log.Player2, log.PrevIndex))
		kvs = append(kvs, addRpsGameStatusIndex(log.Status, log.GameId, log.Index))
		kvs = append(kvs, addRpsGameAddrIndex(log.Status, log.GameId, log.Player1, log.Index))
		kvs = append(kvs, addRpsGameAddrIndex(log.Status, log.GameId, log.Player2, log.Index))
	}
	return kvs
}

func (r *RPS) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
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
		set.KV = append(set.KV, r.updateIndex(&gameLog)...)
	}
	return set, nil
}

// ExecLocal_Create 创建游戏的localdb处理
func (r *RPS) ExecLocal_Create(payload *rpst.RpsGameCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt)
}

// ExecLocal_Play 加入游戏的localdb处理
func (r *RPS) ExecLocal_Play(payload *rpst.RpsGamePlay, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt)
}

// ExecLocal_Reveal 开奖的localdb处理
func (r *RPS) ExecLocal_Reveal(payload *rpst.RpsGameReveal, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt)
}
