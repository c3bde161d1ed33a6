// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"encoding/binary"

	"github.com/33cn/chain33/common"
)

// CommitmentLen hash承诺的原文长度，1字节出拳+8字节秘钥
const CommitmentLen = 9

// CalcRpsCommitment 计算出拳的hash承诺
// 原文固定9字节：首字节为出拳类型(1石头 2布 3剪刀)，后8字节为小端序秘钥
func CalcRpsCommitment(movement int32, secret uint64) ([]byte, error) {
	if movement < RpsMovementRock || movement > RpsMovementScissors {
		return nil, ErrRpsInvalidMovement
	}
	var buf [CommitmentLen]byte
	buf[0] = byte(movement)
	binary.LittleEndian.PutUint64(buf[1:], secret)
	return common.Sha256(buf[:]), nil
}

// CheckRpsCommitment 校验出拳和秘钥是否与保存的hash承诺一致
func CheckRpsCommitment(commitment []byte, movement int32, secret uint64) bool {
	hash, err := CalcRpsCommitment(movement, secret)
	if err != nil {
		return false
	}
	return bytes.Equal(hash, commitment)
}

// RpsResult 以m1的视角判定胜负，石头胜剪刀，剪刀胜布，布胜石头
func RpsResult(m1, m2 int32) int32 {
	if m1 == m2 {
		return RpsResultDraw
	}
	switch m1 {
	case RpsMovementRock:
		if m2 == RpsMovementScissors {
			return RpsResultWin
		}
	case RpsMovementPaper:
		if m2 == RpsMovementRock {
			return RpsResultWin
		}
	case RpsMovementScissors:
		if m2 == RpsMovementPaper {
			return RpsResultWin
		}
	}
	return RpsResultLose
}
