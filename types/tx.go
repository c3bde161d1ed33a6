// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// RpsGameCreateTx 创建游戏的json请求
type RpsGameCreateTx struct {
	Stake int64 `json:"stake"`
	Fee   int64 `json:"fee"`
}

// RpsGamePlayTx 加入游戏的json请求
type RpsGamePlayTx struct {
	GameId   uint64 `json:"gameId"`
	Movement int32  `json:"movement"`
	Secret   uint64 `json:"secret"`
	Fee      int64  `json:"fee"`
}

// RpsGameRevealTx 开奖的json请求
type RpsGameRevealTx struct {
	GameId    uint64 `json:"gameId"`
	Movement1 int32  `json:"movement1"`
	Secret1   uint64 `json:"secret1"`
	Player2   string `json:"player2"`
	Movement2 int32  `json:"movement2"`
	Secret2   uint64 `json:"secret2"`
	Fee       int64  `json:"fee"`
}
