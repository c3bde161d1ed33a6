// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

// Exec_Create 创建游戏
func (r *RPS) Exec_Create(payload *rpst.RpsGameCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.GameCreate(payload)
}

// Exec_Play 加入游戏
func (r *RPS) Exec_Play(payload *rpst.RpsGamePlay, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.GamePlay(payload)
}

// Exec_Reveal 开奖
func (r *RPS) Exec_Reveal(payload *rpst.RpsGameReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.GameReveal(payload)
}
