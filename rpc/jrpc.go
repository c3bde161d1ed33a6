// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"encoding/hex"

	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

// RpsCreateTx 创建游戏的未签名交易，hex编码返回
func (c *Jrpc) RpsCreateTx(parm *rpst.RpsGameCreateTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &rpst.RpsGameCreate{
		Stake: parm.Stake,
	}
	reply, err := c.cli.RpsCreateTx(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// RpsPlayTx 加入游戏的未签名交易，hex编码返回
func (c *Jrpc) RpsPlayTx(parm *rpst.RpsGamePlayTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &rpst.RpsGamePlay{
		GameId:   parm.GameId,
		Movement: parm.Movement,
		Secret:   parm.Secret,
	}
	reply, err := c.cli.RpsPlayTx(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}

// RpsRevealTx 开奖的未签名交易，hex编码返回
func (c *Jrpc) RpsRevealTx(parm *rpst.RpsGameRevealTx, result *interface{}) error {
	if parm == nil {
		return types.ErrInvalidParam
	}
	head := &rpst.RpsGameReveal{
		GameId:    parm.GameId,
		Movement1: parm.Movement1,
		Secret1:   parm.Secret1,
		Player2:   parm.Player2,
		Movement2: parm.Movement2,
		Secret2:   parm.Secret2,
	}
	reply, err := c.cli.RpsRevealTx(context.Background(), head)
	if err != nil {
		return err
	}
	*result = hex.EncodeToString(reply.Data)
	return nil
}
