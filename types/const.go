// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// RPSX 执行器名称
var RPSX = "rps"

// ExecerRps 执行器名称字节表示
var ExecerRps = []byte(RPSX)

// action类型
const (
	RpsGameActionCreate = iota + 1
	RpsGameActionPlay
	RpsGameActionReveal
)

// 游戏状态
// created: 游戏刚创建，没有玩家加入
// playing: 已有一个玩家提交了hash
// ready:   两个玩家都提交了hash，等待开奖
// resolved: 已开奖
const (
	RpsGameStatusCreated = int32(iota + 1)
	RpsGameStatusPlaying
	RpsGameStatusReady
	RpsGameStatusResolved
)

// 出拳类型，与hash承诺的首字节编码保持一致
const (
	RpsMovementRock     = int32(1)
	RpsMovementPaper    = int32(2)
	RpsMovementScissors = int32(3)
)

// 开奖结果，均以player1的出拳视角判定
const (
	RpsResultNotPlayed = int32(0)
	RpsResultWin       = int32(1)
	RpsResultLose      = int32(2)
	RpsResultDraw      = int32(3)
)

// log类型
const (
	TyLogRpsGameCreate = 901
	TyLogRpsGamePlay   = 902
	TyLogRpsGameReveal = 903
)

// 查询方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// 分页查询默认条数
const (
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

// CreateTx接口的action名称
const (
	ActionRpsCreate = "RpsCreate"
	ActionRpsPlay   = "RpsPlay"
	ActionRpsReveal = "RpsReveal"
)

// 查询方法名称
const (
	FuncNameQueryGameInfo = "GetRpsGameInfo"
	FuncNameQueryGameList = "GetRpsGameList"
)
