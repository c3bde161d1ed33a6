// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 石头剪刀布(rps)合约的类型定义
// 游戏采用hash承诺的方式出拳，双方都提交承诺后公布原文开奖
package types

import (
	"encoding/json"
	"reflect"

	"github.com/33cn/chain33/common/address"
	log "github.com/33cn/chain33/common/log/log15"
	"github.com/33cn/chain33/types"
)

var tlog = log.New("module", RPSX)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, ExecerRps)
	types.RegistorExecutor(RPSX, NewType())
	types.RegisterDappFork(RPSX, "Enable", 0)
}

// RPSType 执行器类型
type RPSType struct {
	types.ExecTypeBase
}

// NewType 创建执行器类型
func NewType() *RPSType {
	c := &RPSType{}
	c.SetChild(c)
	return c
}

// GetPayload 返回payload结构
func (t *RPSType) GetPayload() types.Message {
	return &RpsGameAction{}
}

// GetTypeMap 返回actionName与action ty的映射
func (t *RPSType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Create": RpsGameActionCreate,
		"Play":   RpsGameActionPlay,
		"Reveal": RpsGameActionReveal,
	}
}

// GetLogMap 返回log类型映射
func (t *RPSType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogRpsGameCreate: {Ty: reflect.TypeOf(ReceiptRpsGame{}), Name: "LogRpsGameCreate"},
		TyLogRpsGamePlay:   {Ty: reflect.TypeOf(ReceiptRpsGame{}), Name: "LogRpsGamePlay"},
		TyLogRpsGameReveal: {Ty: reflect.TypeOf(ReceiptRpsGame{}), Name: "LogRpsGameReveal"},
	}
}

// ActionName 返回交易的action名称
func (t RPSType) ActionName(tx *types.Transaction) string {
	var action RpsGameAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return "unknown-rps-err"
	}
	if action.Ty == RpsGameActionCreate && action.GetCreate() != nil {
		return "createRpsGame"
	} else if action.Ty == RpsGameActionPlay && action.GetPlay() != nil {
		return "playRpsGame"
	} else if action.Ty == RpsGameActionReveal && action.GetReveal() != nil {
		return "revealRpsGame"
	}
	return "unknown"
}

// Amount 交易中与合约相关的金额
func (t RPSType) Amount(tx *types.Transaction) (int64, error) {
	return 0, nil
}

// CreateTx 通过json参数构造原始交易
func (t RPSType) CreateTx(action string, message json.RawMessage) (*types.Transaction, error) {
	tlog.Debug("rps.CreateTx", "action", action)
	if action == ActionRpsCreate {
		var param RpsGameCreateTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawRpsCreateTx(&param)
	} else if action == ActionRpsPlay {
		var param RpsGamePlayTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawRpsPlayTx(&param)
	} else if action == ActionRpsReveal {
		var param RpsGameRevealTx
		err := json.Unmarshal(message, &param)
		if err != nil {
			tlog.Error("CreateTx", "Error", err)
			return nil, types.ErrInvalidParam
		}
		return CreateRawRpsRevealTx(&param)
	}
	return nil, types.ErrNotSupport
}

// 平行链上需要带上para前缀
func getRealExecName(paraName string) string {
	return types.ExecName(paraName + RPSX)
}

// CreateRawRpsCreateTx 构造创建游戏的原始交易
func CreateRawRpsCreateTx(parm *RpsGameCreateTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	if parm.Stake < 0 {
		return nil, ErrRpsInvalidStakeAmount
	}
	v := &RpsGameCreate{
		Stake: parm.Stake,
	}
	create := &RpsGameAction{
		Ty:    RpsGameActionCreate,
		Value: &RpsGameAction_Create{v},
	}
	name := getRealExecName(types.GetParaName())
	tx := &types.Transaction{
		Execer:  []byte(name),
		Payload: types.Encode(create),
		Fee:     parm.Fee,
		To:      address.ExecAddress(name),
	}
	return types.FormatTx(name, tx)
}

// CreateRawRpsPlayTx 构造加入游戏的原始交易
func CreateRawRpsPlayTx(parm *RpsGamePlayTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	v := &RpsGamePlay{
		GameId:   parm.GameId,
		Movement: parm.Movement,
		Secret:   parm.Secret,
	}
	play := &RpsGameAction{
		Ty:    RpsGameActionPlay,
		Value: &RpsGameAction_Play{v},
	}
	name := getRealExecName(types.GetParaName())
	tx := &types.Transaction{
		Execer:  []byte(name),
		Payload: types.Encode(play),
		Fee:     parm.Fee,
		To:      address.ExecAddress(name),
	}
	return types.FormatTx(name, tx)
}

// CreateRawRpsRevealTx 构造开奖的原始交易
func CreateRawRpsRevealTx(parm *RpsGameRevealTx) (*types.Transaction, error) {
	if parm == nil {
		return nil, types.ErrInvalidParam
	}
	v := &RpsGameReveal{
		GameId:    parm.GameId,
		Movement1: parm.Movement1,
		Secret1:   parm.Secret1,
		Player2:   parm.Player2,
		Movement2: parm.Movement2,
		Secret2:   parm.Secret2,
	}
	reveal := &RpsGameAction{
		Ty:    RpsGameActionReveal,
		Value: &RpsGameAction_Reveal{v},
	}
	name := getRealExecName(types.GetParaName())
	tx := &types.Transaction{
		Execer:  []byte(name),
		Payload: types.Encode(reveal),
		Fee:     parm.Fee,
		To:      address.ExecAddress(name),
	}
	return types.FormatTx(name, tx)
}
