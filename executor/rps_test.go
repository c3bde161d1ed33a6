// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

var (
	random   = rand.New(rand.NewSource(types.Now().UnixNano()))
	execAddr = address.ExecAddress(rpst.RPSX)
)

type testEnv struct {
	r      *RPS
	state  *testDB
	local  *testDB
	height int64
}

func newTestEnv() *testEnv {
	r := newRPS().(*RPS)
	e := &testEnv{
		r:      r,
		state:  newTestDB(),
		local:  newTestDB(),
		height: 1,
	}
	r.SetStateDB(e.state)
	r.SetLocalDB(e.local)
	r.SetEnv(e.height, 1539918074, 1)
	return e
}

// nextBlock 推进一个区块高度，让每笔交易拿到不同的index
func (e *testEnv) nextBlock() {
	e.height++
	e.r.SetEnv(e.height, 1539918074+e.height, 1)
}

func (e *testEnv) fund(addr string, balance int64) {
	acc := e.r.GetCoinsAccount().LoadExecAccount(addr, execAddr)
	acc.Balance = balance
	e.r.GetCoinsAccount().SaveExecAccount(execAddr, acc)
}

func (e *testEnv) execAccount(addr string) *types.Account {
	return e.r.GetCoinsAccount().LoadExecAccount(addr, execAddr)
}

// applyLocal 模拟区块连接时localdb的提交，value为nil表示删除
func (e *testEnv) applyLocal(t *testing.T, receipt *types.Receipt) {
	set, err := e.r.execLocal(&types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs})
	require.NoError(t, err)
	for _, kv := range set.KV {
		if kv.Value == nil {
			delete(e.local.cache, string(kv.Key))
		} else {
			e.local.cache[string(kv.Key)] = kv.Value
		}
	}
}

// applyDelLocal 模拟区块回滚时localdb的提交
func (e *testEnv) applyDelLocal(t *testing.T, receipt *types.Receipt) {
	set, err := e.r.execDelLocal(&types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs})
	require.NoError(t, err)
	for _, kv := range set.KV {
		if kv.Value == nil {
			delete(e.local.cache, string(kv.Key))
		} else {
			e.local.cache[string(kv.Key)] = kv.Value
		}
	}
}

func genaddress() (string, crypto.PrivKey) {
	cr, err := crypto.New(types.GetSignatureTypeName(types.SECP256K1))
	if err != nil {
		panic(err)
	}
	privto, err := cr.GenKey()
	if err != nil {
		panic(err)
	}
	addrto := address.PubKeyToAddress(privto.PubKey().Bytes())
	return addrto.String(), privto
}

func signTx(priv crypto.PrivKey, action *rpst.RpsGameAction) *types.Transaction {
	tx := &types.Transaction{
		Execer:  rpst.ExecerRps,
		Payload: types.Encode(action),
		Fee:     1e6,
		To:      execAddr,
	}
	tx.Nonce = random.Int63()
	tx.Sign(types.SECP256K1, priv)
	return tx
}

func createTx(priv crypto.PrivKey, stake int64) *types.Transaction {
	action := &rpst.RpsGameAction{
		Ty:    rpst.RpsGameActionCreate,
		Value: &rpst.RpsGameAction_Create{Create: &rpst.RpsGameCreate{Stake: stake}},
	}
	return signTx(priv, action)
}

func playTx(priv crypto.PrivKey, gameID uint64, movement int32, secret uint64) *types.Transaction {
	action := &rpst.RpsGameAction{
		Ty:    rpst.RpsGameActionPlay,
		Value: &rpst.RpsGameAction_Play{Play: &rpst.RpsGamePlay{GameId: gameID, Movement: movement, Secret: secret}},
	}
	return signTx(priv, action)
}

func revealTx(priv crypto.PrivKey, gameID uint64, m1 int32, s1 uint64, player2 string, m2 int32, s2 uint64) *types.Transaction {
	action := &rpst.RpsGameAction{
		Ty: rpst.RpsGameActionReveal,
		Value: &rpst.RpsGameAction_Reveal{Reveal: &rpst.RpsGameReveal{
			GameId:    gameID,
			Movement1: m1,
			Secret1:   s1,
			Player2:   player2,
			Movement2: m2,
			Secret2:   s2,
		}},
	}
	return signTx(priv, action)
}

func decodeGameLog(t *testing.T, log *types.ReceiptLog) *rpst.ReceiptRpsGame {
	var gameLog rpst.ReceiptRpsGame
	err := types.Decode(log.Log, &gameLog)
	require.NoError(t, err)
	return &gameLog
}

func TestGameCreate(t *testing.T) {
	e := newTestEnv()
	addrA, privA := genaddress()

	receipt, err := e.r.Exec(createTx(privA, 0), 0)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(rpst.TyLogRpsGameCreate), receipt.Logs[0].Ty)

	gameLog := decodeGameLog(t, receipt.Logs[0])
	assert.Equal(t, uint64(1), gameLog.GameId)
	assert.Equal(t, rpst.RpsGameStatusCreated, gameLog.Status)
	assert.Equal(t, int32(0), gameLog.PrevStatus)
	assert.Equal(t, addrA, gameLog.CreateAddr)

	game, err := readGame(e.state, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), game.GetGameId())
	assert.Equal(t, rpst.RpsGameStatusCreated, game.GetStatus())
	assert.Equal(t, addrA, game.GetCreateAddr())
	assert.Equal(t, e.height*types.MaxTxsPerBlock, game.GetIndex())
	assert.Nil(t, game.GetPlayer1())
	assert.Nil(t, game.GetPlayer2())

	// id是递增的
	e.nextBlock()
	receipt, err = e.r.Exec(createTx(privA, 0), 0)
	require.NoError(t, err)
	gameLog = decodeGameLog(t, receipt.Logs[0])
	assert.Equal(t, uint64(2), gameLog.GameId)
}

func TestGameCreateInvalidStake(t *testing.T) {
	e := newTestEnv()
	_, privA := genaddress()

	_, err := e.r.Exec(createTx(privA, -1), 0)
	assert.Equal(t, rpst.ErrRpsInvalidStakeAmount, err)
}

func TestGamePlay(t *testing.T) {
	e := newTestEnv()
	_, privA := genaddress()
	addrB, privB := genaddress()
	addrC, privC := genaddress()
	_, privD := genaddress()

	_, err := e.r.Exec(createTx(privA, 0), 0)
	require.NoError(t, err)

	// 游戏不存在
	e.nextBlock()
	_, err = e.r.Exec(playTx(privB, 99, rpst.RpsMovementRock, 111), 0)
	assert.Equal(t, rpst.ErrRpsGameNotFound, err)

	// 第一个玩家加入
	receipt, err := e.r.Exec(playTx(privB, 1, rpst.RpsMovementRock, 111), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(rpst.TyLogRpsGamePlay), receipt.Logs[0].Ty)

	game, err := readGame(e.state, 1)
	require.NoError(t, err)
	assert.Equal(t, rpst.RpsGameStatusPlaying, game.GetStatus())
	require.NotNil(t, game.GetPlayer1())
	assert.Equal(t, addrB, game.GetPlayer1().Addr)
	commitment, _ := rpst.CalcRpsCommitment(rpst.RpsMovementRock, 111)
	assert.Equal(t, commitment, game.GetPlayer1().Commitment)

	// 重复加入
	e.nextBlock()
	_, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementPaper, 222), 0)
	assert.Equal(t, rpst.ErrRpsPlayerAlreadyInGame, err)

	// 非法出拳
	_, err = e.r.Exec(playTx(privC, 1, 4, 222), 0)
	assert.Equal(t, rpst.ErrRpsInvalidMovement, err)

	// 第二个玩家加入
	receipt, err = e.r.Exec(playTx(privC, 1, rpst.RpsMovementPaper, 222), 0)
	require.NoError(t, err)
	gameLog := decodeGameLog(t, receipt.Logs[0])
	assert.Equal(t, rpst.RpsGameStatusReady, gameLog.Status)
	assert.Equal(t, rpst.RpsGameStatusPlaying, gameLog.PrevStatus)

	game, err = readGame(e.state, 1)
	require.NoError(t, err)
	assert.Equal(t, rpst.RpsGameStatusReady, game.GetStatus())
	require.NotNil(t, game.GetPlayer2())
	assert.Equal(t, addrC, game.GetPlayer2().Addr)

	// 满员后不能再加入
	e.nextBlock()
	_, err = e.r.Exec(playTx(privD, 1, rpst.RpsMovementScissors, 333), 0)
	assert.Equal(t, rpst.ErrRpsGameIsFull, err)
}

func TestGamePlayNoBalance(t *testing.T) {
	e := newTestEnv()
	stake := types.Coin
	_, privA := genaddress()
	addrB, privB := genaddress()

	_, err := e.r.Exec(createTx(privA, stake), 0)
	require.NoError(t, err)

	// 没有余额
	e.nextBlock()
	_, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementRock, 111), 0)
	assert.Equal(t, types.ErrNoBalance, err)

	// 余额不足
	e.fund(addrB, stake/2)
	_, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementRock, 111), 0)
	assert.Equal(t, types.ErrNoBalance, err)

	// 余额刚好够，押注被冻结
	e.fund(addrB, stake)
	_, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementRock, 111), 0)
	require.NoError(t, err)
	acc := e.execAccount(addrB)
	assert.Equal(t, int64(0), acc.GetBalance())
	assert.Equal(t, stake, acc.GetFrozen())
}

func TestGameRevealCallerWins(t *testing.T) {
	e := newTestEnv()
	stake := types.Coin
	addrA, privA := genaddress()
	addrB, privB := genaddress()
	e.fund(addrA, stake)
	e.fund(addrB, stake)

	_, err := e.r.Exec(createTx(privA, stake), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(playTx(privA, 1, rpst.RpsMovementRock, 111), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementScissors, 222), 0)
	require.NoError(t, err)

	// 石头胜剪刀，开奖人是player1
	e.nextBlock()
	receipt, err := e.r.Exec(revealTx(privA, 1, rpst.RpsMovementRock, 111, addrB, rpst.RpsMovementScissors, 222), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)

	game, err := readGame(e.state, 1)
	require.NoError(t, err)
	assert.Equal(t, rpst.RpsGameStatusResolved, game.GetStatus())
	assert.Equal(t, rpst.RpsResultWin, game.GetResult())
	assert.Equal(t, addrA, game.GetWinner())

	accA := e.execAccount(addrA)
	assert.Equal(t, 2*stake, accA.GetBalance())
	assert.Equal(t, int64(0), accA.GetFrozen())
	accB := e.execAccount(addrB)
	assert.Equal(t, int64(0), accB.GetBalance())
	assert.Equal(t, int64(0), accB.GetFrozen())
}

func TestGameRevealOpponentWins(t *testing.T) {
	e := newTestEnv()
	stake := types.Coin
	addrA, privA := genaddress()
	addrB, privB := genaddress()
	e.fund(addrA, stake)
	e.fund(addrB, stake)

	_, err := e.r.Exec(createTx(privA, stake), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(playTx(privA, 1, rpst.RpsMovementRock, 111), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementPaper, 222), 0)
	require.NoError(t, err)

	// 布胜石头，胜者是player2
	e.nextBlock()
	_, err = e.r.Exec(revealTx(privA, 1, rpst.RpsMovementRock, 111, addrB, rpst.RpsMovementPaper, 222), 0)
	require.NoError(t, err)

	game, err := readGame(e.state, 1)
	require.NoError(t, err)
	assert.Equal(t, rpst.RpsResultLose, game.GetResult())
	assert.Equal(t, addrB, game.GetWinner())

	accA := e.execAccount(addrA)
	assert.Equal(t, int64(0), accA.GetBalance())
	assert.Equal(t, int64(0), accA.GetFrozen())
	accB := e.execAccount(addrB)
	assert.Equal(t, 2*stake, accB.GetBalance())
	assert.Equal(t, int64(0), accB.GetFrozen())
}

func TestGameRevealDraw(t *testing.T) {
	e := newTestEnv()
	stake := types.Coin
	addrA, privA := genaddress()
	addrB, privB := genaddress()
	e.fund(addrA, stake)
	e.fund(addrB, stake)

	_, err := e.r.Exec(createTx(privA, stake), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(playTx(privA, 1, rpst.RpsMovementRock, 111), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementRock, 222), 0)
	require.NoError(t, err)

	e.nextBlock()
	_, err = e.r.Exec(revealTx(privA, 1, rpst.RpsMovementRock, 111, addrB, rpst.RpsMovementRock, 222), 0)
	require.NoError(t, err)

	game, err := readGame(e.state, 1)
	require.NoError(t, err)
	assert.Equal(t, rpst.RpsResultDraw, game.GetResult())
	assert.Equal(t, "", game.GetWinner())

	// 平局双方解冻
	for _, addr := range []string{addrA, addrB} {
		acc := e.execAccount(addr)
		assert.Equal(t, stake, acc.GetBalance())
		assert.Equal(t, int64(0), acc.GetFrozen())
	}
}

func TestGameRevealIdempotent(t *testing.T) {
	e := newTestEnv()
	stake := types.Coin
	addrA, privA := genaddress()
	addrB, privB := genaddress()
	e.fund(addrA, stake)
	e.fund(addrB, stake)

	_, err := e.r.Exec(createTx(privA, stake), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(playTx(privA, 1, rpst.RpsMovementRock, 111), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementPaper, 222), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(revealTx(privA, 1, rpst.RpsMovementRock, 111, addrB, rpst.RpsMovementPaper, 222), 0)
	require.NoError(t, err)

	game, err := readGame(e.state, 1)
	require.NoError(t, err)
	resolvedIndex := game.GetIndex()
	accB := e.execAccount(addrB)
	require.Equal(t, 2*stake, accB.GetBalance())

	// 重复开奖只重放结果日志，状态、index、余额都不变
	e.nextBlock()
	receipt, err := e.r.Exec(revealTx(privA, 1, rpst.RpsMovementRock, 111, addrB, rpst.RpsMovementPaper, 222), 0)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Empty(t, receipt.KV)

	gameLog := decodeGameLog(t, receipt.Logs[0])
	assert.Equal(t, rpst.RpsGameStatusResolved, gameLog.Status)
	assert.Equal(t, rpst.RpsGameStatusResolved, gameLog.PrevStatus)
	assert.Equal(t, resolvedIndex, gameLog.Index)
	assert.Equal(t, rpst.RpsResultLose, gameLog.Result)
	assert.Equal(t, addrB, gameLog.Winner)

	game, err = readGame(e.state, 1)
	require.NoError(t, err)
	assert.Equal(t, resolvedIndex, game.GetIndex())
	accB = e.execAccount(addrB)
	assert.Equal(t, 2*stake, accB.GetBalance())

	// 重放日志不产生localdb变更
	set, err := e.r.execLocal(&types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs})
	require.NoError(t, err)
	assert.Empty(t, set.KV)
}

func TestGameRevealErrors(t *testing.T) {
	e := newTestEnv()
	addrA, privA := genaddress()
	addrB, privB := genaddress()
	_, privD := genaddress()

	// 游戏不存在
	_, err := e.r.Exec(revealTx(privA, 99, rpst.RpsMovementRock, 111, addrB, rpst.RpsMovementPaper, 222), 0)
	assert.Equal(t, rpst.ErrRpsGameNotFound, err)

	_, err = e.r.Exec(createTx(privA, 0), 0)
	require.NoError(t, err)
	e.nextBlock()
	_, err = e.r.Exec(playTx(privA, 1, rpst.RpsMovementRock, 111), 0)
	require.NoError(t, err)

	// 只有一个玩家时不能开奖
	e.nextBlock()
	_, err = e.r.Exec(revealTx(privA, 1, rpst.RpsMovementRock, 111, addrB, rpst.RpsMovementPaper, 222), 0)
	assert.Equal(t, rpst.ErrRpsPlayerNotInGame, err)

	_, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementPaper, 222), 0)
	require.NoError(t, err)
	e.nextBlock()

	// 局外人不能开奖
	_, err = e.r.Exec(revealTx(privD, 1, rpst.RpsMovementRock, 111, addrB, rpst.RpsMovementPaper, 222), 0)
	assert.Equal(t, rpst.ErrRpsPlayerNotInGame, err)

	// player2不在游戏中
	addrX, _ := genaddress()
	_, err = e.r.Exec(revealTx(privA, 1, rpst.RpsMovementRock, 111, addrX, rpst.RpsMovementPaper, 222), 0)
	assert.Equal(t, rpst.ErrRpsPlayerNotInGame, err)

	// 非法出拳
	_, err = e.r.Exec(revealTx(privA, 1, 0, 111, addrB, rpst.RpsMovementPaper, 222), 0)
	assert.Equal(t, rpst.ErrRpsInvalidMovement, err)

	// 秘钥不对
	_, err = e.r.Exec(revealTx(privA, 1, rpst.RpsMovementRock, 999, addrB, rpst.RpsMovementPaper, 222), 0)
	assert.Equal(t, rpst.ErrRpsInvalidHash, err)

	// 出拳与承诺不符
	_, err = e.r.Exec(revealTx(privA, 1, rpst.RpsMovementScissors, 111, addrB, rpst.RpsMovementPaper, 222), 0)
	assert.Equal(t, rpst.ErrRpsInvalidHash, err)

	// 出错之后游戏还在等待开奖
	game, err := readGame(e.state, 1)
	require.NoError(t, err)
	assert.Equal(t, rpst.RpsGameStatusReady, game.GetStatus())
}

func TestExecLocalAndQuery(t *testing.T) {
	e := newTestEnv()
	addrA, privA := genaddress()
	addrB, privB := genaddress()

	receipt, err := e.r.Exec(createTx(privA, 0), 0)
	require.NoError(t, err)
	e.applyLocal(t, receipt)

	msg, err := e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: rpst.RpsGameStatusCreated, Addr: addrA})
	require.NoError(t, err)
	reply := msg.(*rpst.ReplyRpsGameList)
	require.Len(t, reply.Games, 1)
	assert.Equal(t, uint64(1), reply.Games[0].GetGameId())

	e.nextBlock()
	receipt, err = e.r.Exec(playTx(privA, 1, rpst.RpsMovementRock, 111), 0)
	require.NoError(t, err)
	e.applyLocal(t, receipt)

	// created索引被迁移到playing
	msg, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: rpst.RpsGameStatusCreated})
	require.NoError(t, err)
	assert.Empty(t, msg.(*rpst.ReplyRpsGameList).Games)
	msg, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: rpst.RpsGameStatusPlaying, Addr: addrA})
	require.NoError(t, err)
	assert.Len(t, msg.(*rpst.ReplyRpsGameList).Games, 1)

	e.nextBlock()
	receipt, err = e.r.Exec(playTx(privB, 1, rpst.RpsMovementPaper, 222), 0)
	require.NoError(t, err)
	e.applyLocal(t, receipt)

	msg, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: rpst.RpsGameStatusReady, Addr: addrB})
	require.NoError(t, err)
	assert.Len(t, msg.(*rpst.ReplyRpsGameList).Games, 1)

	e.nextBlock()
	revealReceipt, err := e.r.Exec(revealTx(privA, 1, rpst.RpsMovementRock, 111, addrB, rpst.RpsMovementPaper, 222), 0)
	require.NoError(t, err)
	e.applyLocal(t, revealReceipt)

	msg, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: rpst.RpsGameStatusReady})
	require.NoError(t, err)
	assert.Empty(t, msg.(*rpst.ReplyRpsGameList).Games)
	msg, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: rpst.RpsGameStatusResolved})
	require.NoError(t, err)
	require.Len(t, msg.(*rpst.ReplyRpsGameList).Games, 1)
	assert.Equal(t, addrB, msg.(*rpst.ReplyRpsGameList).Games[0].GetWinner())

	// 按id查询
	msg, err = e.r.Query_GetRpsGameInfo(&rpst.ReqRpsGameInfo{GameId: 1})
	require.NoError(t, err)
	assert.Equal(t, rpst.RpsGameStatusResolved, msg.(*rpst.ReplyRpsGame).GetGame().GetStatus())
	_, err = e.r.Query_GetRpsGameInfo(&rpst.ReqRpsGameInfo{GameId: 99})
	assert.Equal(t, rpst.ErrRpsGameNotFound, err)

	// 非法状态
	_, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: 0})
	assert.Equal(t, types.ErrInvalidParam, err)

	// 区块回滚后ready索引恢复
	e.applyDelLocal(t, revealReceipt)
	msg, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: rpst.RpsGameStatusResolved})
	require.NoError(t, err)
	assert.Empty(t, msg.(*rpst.ReplyRpsGameList).Games)
	msg, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: rpst.RpsGameStatusReady})
	require.NoError(t, err)
	assert.Len(t, msg.(*rpst.ReplyRpsGameList).Games, 1)
}

func TestQueryGameListPaging(t *testing.T) {
	e := newTestEnv()
	_, privA := genaddress()

	for i := 0; i < 3; i++ {
		receipt, err := e.r.Exec(createTx(privA, 0), 0)
		require.NoError(t, err)
		e.applyLocal(t, receipt)
		e.nextBlock()
	}

	// 默认倒序，第一页取最新的两条
	msg, err := e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{Status: rpst.RpsGameStatusCreated, Count: 2})
	require.NoError(t, err)
	games := msg.(*rpst.ReplyRpsGameList).Games
	require.Len(t, games, 2)
	assert.Equal(t, uint64(3), games[0].GetGameId())
	assert.Equal(t, uint64(2), games[1].GetGameId())

	// 用上一页最后的index翻页
	msg, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{
		Status: rpst.RpsGameStatusCreated,
		Count:  2,
		Index:  games[1].GetIndex(),
	})
	require.NoError(t, err)
	games = msg.(*rpst.ReplyRpsGameList).Games
	require.Len(t, games, 1)
	assert.Equal(t, uint64(1), games[0].GetGameId())

	// 正序
	msg, err = e.r.Query_GetRpsGameList(&rpst.ReqRpsGameList{
		Status:    rpst.RpsGameStatusCreated,
		Direction: rpst.ListASC,
	})
	require.NoError(t, err)
	games = msg.(*rpst.ReplyRpsGameList).Games
	require.Len(t, games, 3)
	assert.Equal(t, uint64(1), games[0].GetGameId())
}

type testDB struct {
	db.TransactionDB
	cache map[string][]byte
}

func newTestDB() *testDB {
	return &testDB{cache: make(map[string][]byte)}
}

func (d *testDB) Get(key []byte) ([]byte, error) {
	if value, ok := d.cache[string(key)]; ok {
		return value, nil
	}
	return nil, types.ErrNotFound
}

func (d *testDB) Set(key []byte, value []byte) error {
	d.cache[string(key)] = value
	return nil
}

func (d *testDB) BatchGet(keys [][]byte) ([][]byte, error) {
	return nil, types.ErrNotFound
}

func (d *testDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	var keys []string
	for k := range d.cache {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if direction == rpst.ListDESC {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	var values [][]byte
	for _, k := range keys {
		if key != nil {
			if direction == rpst.ListASC && k <= string(key) {
				continue
			}
			if direction == rpst.ListDESC && k >= string(key) {
				continue
			}
		}
		values = append(values, d.cache[k])
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	return values, nil
}

func (d *testDB) PrefixCount(prefix []byte) int64 {
	var count int64
	for k := range d.cache {
		if bytes.HasPrefix([]byte(k), prefix) {
			count++
		}
	}
	return count
}
