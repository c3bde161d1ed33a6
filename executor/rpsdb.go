// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/account"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

// Action 一次交易执行的上下文
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	localDB      dbm.Lister
	index        int
}

// NewAction 从driver和交易构造Action
func NewAction(r *RPS, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: r.GetCoinsAccount(),
		db:           r.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    r.GetBlockTime(),
		height:       r.GetHeight(),
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		localDB:      r.GetLocalDB(),
		index:        index,
	}
}

// GetIndex 当前交易的全局index
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

// CheckExecAccountBalance 检查合约子账户的可用和冻结余额
func (action *Action) CheckExecAccountBalance(fromAddr string, toFrozen, toActive int64) bool {
	acc := action.coinsAccount.LoadExecAccount(fromAddr, action.execaddr)
	if acc.GetBalance() >= toFrozen && acc.GetFrozen() >= toActive {
		return true
	}
	return false
}

func (action *Action) saveStateDB(game *rpst.RpsGame) {
	action.db.Set(Key(game.GetGameId()), types.Encode(game))
}

func (action *Action) readGame(id uint64) (*rpst.RpsGame, error) {
	data, err := action.db.Get(Key(id))
	if err != nil {
		return nil, err
	}
	var game rpst.RpsGame
	err = types.Decode(data, &game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// newGameID 分配游戏id，先递增再读取，首个id为1
func (action *Action) newGameID() (uint64, *types.KeyValue, error) {
	var count types.Int64
	data, err := action.db.Get(calcRpsGameIDKey())
	if err != nil && err != types.ErrNotFound {
		return 0, nil, err
	}
	if data != nil {
		err = types.Decode(data, &count)
		if err != nil {
			return 0, nil, err
		}
	}
	count.Data++
	value := types.Encode(&count)
	action.db.Set(calcRpsGameIDKey(), value)
	return uint64(count.Data), &types.KeyValue{Key: calcRpsGameIDKey(), Value: value}, nil
}

func hasPlayer(game *rpst.RpsGame, addr string) bool {
	if game.GetPlayer1() != nil && game.GetPlayer1().Addr == addr {
		return true
	}
	if game.GetPlayer2() != nil && game.GetPlayer2().Addr == addr {
		return true
	}
	return false
}

// GetKVSet 游戏状态的statedb kv
func (action *Action) GetKVSet(game *rpst.RpsGame) (kvset []*types.KeyValue) {
	kvset = append(kvset, &types.KeyValue{Key: Key(game.GetGameId()), Value: types.Encode(game)})
	return kvset
}

// GetReceiptLog 构造游戏状态变更的回执日志
func (action *Action) GetReceiptLog(game *rpst.RpsGame, prevStatus int32) *types.ReceiptLog {
	log := &types.ReceiptLog{}
	r := &rpst.ReceiptRpsGame{
		GameId:     game.GetGameId(),
		Status:     game.GetStatus(),
		PrevStatus: prevStatus,
		Addr:       action.fromaddr,
		CreateAddr: game.GetCreateAddr(),
		Result:     game.GetResult(),
		Winner:     game.GetWinner(),
		Index:      game.GetIndex(),
		PrevIndex:  game.GetPrevIndex(),
	}
	if game.GetPlayer1() != nil {
		r.Player1 = game.GetPlayer1().Addr
	}
	if game.GetPlayer2() != nil {
		r.Player2 = game.GetPlayer2().Addr
	}
	switch game.GetStatus() {
	case rpst.RpsGameStatusCreated:
		log.Ty = rpst.TyLogRpsGameCreate
	case rpst.RpsGameStatusPlaying, rpst.RpsGameStatusReady:
		log.Ty = rpst.TyLogRpsGamePlay
	case rpst.RpsGameStatusResolved:
		log.Ty = rpst.TyLogRpsGameReveal
	}
	log.Log = types.Encode(r)
	return log
}

// GameCreate 创建一局新游戏
func (action *Action) GameCreate(create *rpst.RpsGameCreate) (*types.Receipt, error) {
	if create.GetStake() < 0 {
		rlog.Error("GameCreate", "addr", action.fromaddr, "stake", create.GetStake(),
			"err", rpst.ErrRpsInvalidStakeAmount)
		return nil, rpst.ErrRpsInvalidStakeAmount
	}
	gameID, idKV, err := action.newGameID()
	if err != nil {
		rlog.Error("GameCreate.newGameID", "addr", action.fromaddr, "err", err)
		return nil, err
	}
	game := &rpst.RpsGame{
		GameId:     gameID,
		Stake:      create.GetStake(),
		Status:     rpst.RpsGameStatusCreated,
		CreateAddr: action.fromaddr,
		CreateTime: action.blocktime,
	}
	game.Index = action.GetIndex()
	action.saveStateDB(game)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	logs = append(logs, action.GetReceiptLog(game, 0))
	kv = append(kv, action.GetKVSet(game)...)
	kv = append(kv, idKV)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GamePlay 加入游戏，提交hash承诺
// 校验顺序：游戏存在 -> 是否已满 -> 是否重复加入 -> 出拳合法 -> 押注冻结
func (action *Action) GamePlay(play *rpst.RpsGamePlay) (*types.Receipt, error) {
	game, err := action.readGame(play.GetGameId())
	if err != nil {
		if err == types.ErrNotFound {
			err = rpst.ErrRpsGameNotFound
		}
		rlog.Error("GamePlay", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", play.GetGameId(), "err", err)
		return nil, err
	}
	if game.GetPlayer1() != nil && game.GetPlayer2() != nil {
		rlog.Error("GamePlay", "addr", action.fromaddr, "id", play.GetGameId(),
			"err", rpst.ErrRpsGameIsFull)
		return nil, rpst.ErrRpsGameIsFull
	}
	if hasPlayer(game, action.fromaddr) {
		rlog.Error("GamePlay", "addr", action.fromaddr, "id", play.GetGameId(),
			"err", rpst.ErrRpsPlayerAlreadyInGame)
		return nil, rpst.ErrRpsPlayerAlreadyInGame
	}
	commitment, err := rpst.CalcRpsCommitment(play.GetMovement(), play.GetSecret())
	if err != nil {
		rlog.Error("GamePlay", "addr", action.fromaddr, "id", play.GetGameId(),
			"movement", play.GetMovement(), "err", err)
		return nil, err
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	if game.GetStake() > 0 {
		if !action.CheckExecAccountBalance(action.fromaddr, game.GetStake(), 0) {
			rlog.Error("GamePlay", "addr", action.fromaddr, "execaddr", action.execaddr,
				"id", play.GetGameId(), "err", types.ErrNoBalance)
			return nil, types.ErrNoBalance
		}
		receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, game.GetStake())
		if err != nil {
			rlog.Error("GamePlay.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr,
				"amount", game.GetStake(), "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	prevStatus := game.GetStatus()
	player := &rpst.RpsPlayer{Addr: action.fromaddr, Commitment: commitment}
	if game.GetPlayer1() == nil {
		game.Player1 = player
		game.Status = rpst.RpsGameStatusPlaying
	} else {
		game.Player2 = player
		game.Status = rpst.RpsGameStatusReady
	}
	game.PrevIndex = game.GetIndex()
	game.Index = action.GetIndex()
	action.saveStateDB(game)

	logs = append(logs, action.GetReceiptLog(game, prevStatus))
	kv = append(kv, action.GetKVSet(game)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// GameReveal 公布双方出拳和秘钥并开奖
// 校验顺序：游戏存在 -> 双方都在游戏中 -> 出拳合法 -> hash匹配
// 已开奖的游戏重复开奖只重放开奖日志，不改变任何状态
func (action *Action) GameReveal(reveal *rpst.RpsGameReveal) (*types.Receipt, error) {
	game, err := action.readGame(reveal.GetGameId())
	if err != nil {
		if err == types.ErrNotFound {
			err = rpst.ErrRpsGameNotFound
		}
		rlog.Error("GameReveal", "addr", action.fromaddr, "execaddr", action.execaddr,
			"id", reveal.GetGameId(), "err", err)
		return nil, err
	}
	if game.GetPlayer1() == nil || game.GetPlayer2() == nil {
		rlog.Error("GameReveal", "addr", action.fromaddr, "id", reveal.GetGameId(),
			"err", rpst.ErrRpsPlayerNotInGame)
		return nil, rpst.ErrRpsPlayerNotInGame
	}
	if !hasPlayer(game, action.fromaddr) || !hasPlayer(game, reveal.GetPlayer2()) {
		rlog.Error("GameReveal", "addr", action.fromaddr, "player2", reveal.GetPlayer2(),
			"id", reveal.GetGameId(), "err", rpst.ErrRpsPlayerNotInGame)
		return nil, rpst.ErrRpsPlayerNotInGame
	}
	if _, err := rpst.CalcRpsCommitment(reveal.GetMovement1(), reveal.GetSecret1()); err != nil {
		return nil, err
	}
	if _, err := rpst.CalcRpsCommitment(reveal.GetMovement2(), reveal.GetSecret2()); err != nil {
		return nil, err
	}
	if !rpst.CheckRpsCommitment(game.GetPlayer1().Commitment, reveal.GetMovement1(), reveal.GetSecret1()) ||
		!rpst.CheckRpsCommitment(game.GetPlayer2().Commitment, reveal.GetMovement2(), reveal.GetSecret2()) {
		rlog.Error("GameReveal", "addr", action.fromaddr, "id", reveal.GetGameId(),
			"err", rpst.ErrRpsInvalidHash)
		return nil, rpst.ErrRpsInvalidHash
	}
	if game.GetStatus() == rpst.RpsGameStatusResolved {
		// 幂等开奖，重放保存的结果
		return action.replayRevealReceipt(game), nil
	}

	result := rpst.RpsResult(reveal.GetMovement1(), reveal.GetMovement2())
	var winner string
	if result == rpst.RpsResultWin {
		winner = action.fromaddr
	} else if result == rpst.RpsResultLose {
		winner = reveal.GetPlayer2()
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	if game.GetStake() > 0 {
		settleLogs, settleKV, err := action.settleStake(game, result, winner)
		if err != nil {
			return nil, err
		}
		logs = append(logs, settleLogs...)
		kv = append(kv, settleKV...)
	}

	prevStatus := game.GetStatus()
	game.Status = rpst.RpsGameStatusResolved
	game.Result = result
	game.Winner = winner
	game.ResolveTime = action.blocktime
	game.PrevIndex = game.GetIndex()
	game.Index = action.GetIndex()
	action.saveStateDB(game)

	logs = append(logs, action.GetReceiptLog(game, prevStatus))
	kv = append(kv, action.GetKVSet(game)...)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// replayRevealReceipt 重放已保存的开奖日志，index保持原值，状态不变
func (action *Action) replayRevealReceipt(game *rpst.RpsGame) *types.Receipt {
	r := &rpst.ReceiptRpsGame{
		GameId:     game.GetGameId(),
		Status:     game.GetStatus(),
		PrevStatus: game.GetStatus(),
		Addr:       action.fromaddr,
		CreateAddr: game.GetCreateAddr(),
		Player1:    game.GetPlayer1().Addr,
		Player2:    game.GetPlayer2().Addr,
		Result:     game.GetResult(),
		Winner:     game.GetWinner(),
		Index:      game.GetIndex(),
		PrevIndex:  game.GetPrevIndex(),
	}
	log := &types.ReceiptLog{Ty: rpst.TyLogRpsGameReveal, Log: types.Encode(r)}
	return &types.Receipt{Ty: types.ExecOk, Logs: []*types.ReceiptLog{log}}
}

// settleStake 开奖时的押注结算
// 胜者解冻自己的押注并拿走败者的冻结押注，平局双方解冻
func (action *Action) settleStake(game *rpst.RpsGame, result int32, winner string) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	stake := game.GetStake()
	addr1 := game.GetPlayer1().Addr
	addr2 := game.GetPlayer2().Addr
	if !action.CheckExecAccountBalance(addr1, 0, stake) {
		rlog.Error("settleStake", "addr", addr1, "execaddr", action.execaddr,
			"id", game.GetGameId(), "err", types.ErrNoBalance)
		return nil, nil, types.ErrNoBalance
	}
	if !action.CheckExecAccountBalance(addr2, 0, stake) {
		rlog.Error("settleStake", "addr", addr2, "execaddr", action.execaddr,
			"id", game.GetGameId(), "err", types.ErrNoBalance)
		return nil, nil, types.ErrNoBalance
	}

	if result == rpst.RpsResultDraw {
		receipt, err := action.coinsAccount.ExecActive(addr1, action.execaddr, stake)
		if err != nil {
			rlog.Error("settleStake.ExecActive", "addr", addr1, "execaddr", action.execaddr,
				"amount", stake, "err", err)
			return nil, nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
		receipt, err = action.coinsAccount.ExecActive(addr2, action.execaddr, stake)
		if err != nil {
			action.coinsAccount.ExecFrozen(addr1, action.execaddr, stake) // rollback
			rlog.Error("settleStake.ExecActive", "addr", addr2, "execaddr", action.execaddr,
				"amount", stake, "err", err)
			return nil, nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
		return logs, kv, nil
	}

	loser := addr1
	if winner == addr1 {
		loser = addr2
	}
	receipt, err := action.coinsAccount.ExecActive(winner, action.execaddr, stake)
	if err != nil {
		rlog.Error("settleStake.ExecActive", "addr", winner, "execaddr", action.execaddr,
			"amount", stake, "err", err)
		return nil, nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	receipt, err = action.coinsAccount.ExecTransferFrozen(loser, winner, action.execaddr, stake)
	if err != nil {
		action.coinsAccount.ExecFrozen(winner, action.execaddr, stake) // rollback
		rlog.Error("settleStake.ExecTransferFrozen", "from", loser, "to", winner,
			"execaddr", action.execaddr, "amount", stake, "err", err)
		return nil, nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	return logs, kv, nil
}

func readGame(db dbm.KV, id uint64) (*rpst.RpsGame, error) {
	data, err := db.Get(Key(id))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, rpst.ErrRpsGameNotFound
		}
		rlog.Error("readGame", "id", id, "err", err)
		return nil, err
	}
	var game rpst.RpsGame
	err = types.Decode(data, &game)
	if err != nil {
		rlog.Error("readGame decode", "id", id, "err", err)
		return nil, err
	}
	return &game, nil
}
