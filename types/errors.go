// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrRpsGameNotFound 游戏id不存在
	ErrRpsGameNotFound = errors.New("ErrRpsGameNotFound")
	// ErrRpsGameIsFull 两个位置都已被占用
	ErrRpsGameIsFull = errors.New("ErrRpsGameIsFull")
	// ErrRpsPlayerAlreadyInGame 玩家重复加入同一局游戏
	ErrRpsPlayerAlreadyInGame = errors.New("ErrRpsPlayerAlreadyInGame")
	// ErrRpsPlayerNotInGame 开奖人或对手不在游戏中
	ErrRpsPlayerNotInGame = errors.New("ErrRpsPlayerNotInGame")
	// ErrRpsInvalidHash 公布的出拳和秘钥与保存的hash不匹配
	ErrRpsInvalidHash = errors.New("ErrRpsInvalidHash")
	// ErrRpsInvalidMovement 出拳类型非法，只能是1,2,3
	ErrRpsInvalidMovement = errors.New("ErrRpsInvalidMovement")
	// ErrRpsInvalidStakeAmount 押注金额非法
	ErrRpsInvalidStakeAmount = errors.New("ErrRpsInvalidStakeAmount")
)
