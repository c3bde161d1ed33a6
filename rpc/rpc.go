// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"math/rand"

	context "golang.org/x/net/context"

	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

func (c *channelClient) unsignTx(action *rpst.RpsGameAction) (*types.UnsignTx, error) {
	tx := &types.Transaction{
		Execer:  rpst.ExecerRps,
		Payload: types.Encode(action),
		Fee:     0,
		Nonce:   rand.New(rand.NewSource(types.Now().UnixNano())).Int63(),
		To:      address.ExecAddress(string(rpst.ExecerRps)),
	}
	err := tx.SetRealFee(types.MinFee)
	if err != nil {
		return nil, err
	}
	return &types.UnsignTx{Data: types.Encode(tx)}, nil
}

// RpsCreateTx 构造创建游戏的未签名交易
func (c *channelClient) RpsCreateTx(ctx context.Context, head *rpst.RpsGameCreate) (*types.UnsignTx, error) {
	if head.GetStake() < 0 {
		return nil, rpst.ErrRpsInvalidStakeAmount
	}
	val := &rpst.RpsGameAction{
		Ty:    rpst.RpsGameActionCreate,
		Value: &rpst.RpsGameAction_Create{Create: head},
	}
	return c.unsignTx(val)
}

// RpsPlayTx 构造加入游戏的未签名交易
func (c *channelClient) RpsPlayTx(ctx context.Context, head *rpst.RpsGamePlay) (*types.UnsignTx, error) {
	val := &rpst.RpsGameAction{
		Ty:    rpst.RpsGameActionPlay,
		Value: &rpst.RpsGameAction_Play{Play: head},
	}
	return c.unsignTx(val)
}

// RpsRevealTx 构造开奖的未签名交易
func (c *channelClient) RpsRevealTx(ctx context.Context, head *rpst.RpsGameReveal) (*types.UnsignTx, error) {
	val := &rpst.RpsGameAction{
		Ty:    rpst.RpsGameActionReveal,
		Value: &rpst.RpsGameAction_Reveal{Reveal: head},
	}
	return c.unsignTx(val)
}
