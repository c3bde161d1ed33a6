// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 石头剪刀布合约的命令行工具
package commands

import (
	"github.com/spf13/cobra"

	"github.com/33cn/chain33/rpc/jsonclient"
	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

// Chain33.Query的请求参数
type queryParams struct {
	Execer   string      `json:"execer"`
	FuncName string      `json:"funcName"`
	Payload  interface{} `json:"payload"`
}

// RPSCmd rps合约命令
func RPSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock-paper-scissors game management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		rpsCreateCmd(),
		rpsPlayCmd(),
		rpsRevealCmd(),
		rpsQueryCmd(),
		rpsListCmd(),
	)
	return cmd
}

func rpsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new rps game",
		Run:   rpsCreate,
	}
	cmd.Flags().Float64P("stake", "s", 0, "stake amount each player freezes on join, 0 for a free game")
	defaultFee := float64(types.GInt("MinFee")) / float64(types.Coin)
	cmd.Flags().Float64P("fee", "f", defaultFee, "transaction fee")
	return cmd
}

func rpsCreate(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	stake, _ := cmd.Flags().GetFloat64("stake")
	fee, _ := cmd.Flags().GetFloat64("fee")

	params := &rpst.RpsGameCreateTx{
		Stake: int64(stake*types.InputPrecision) * types.Multiple1E4,
		Fee:   int64(fee*types.InputPrecision) * types.Multiple1E4,
	}
	var res string
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "rps.RpsCreateTx", params, &res)
	ctx.RunWithoutMarshal()
}

func rpsPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Join an rps game with a committed movement",
		Run:   rpsPlay,
	}
	cmd.Flags().Uint64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	cmd.Flags().Int32P("movement", "m", 0, "movement, 1 rock 2 paper 3 scissors")
	cmd.MarkFlagRequired("movement")
	cmd.Flags().Uint64P("secret", "s", 0, "secret number used in the commitment")
	cmd.MarkFlagRequired("secret")
	defaultFee := float64(types.GInt("MinFee")) / float64(types.Coin)
	cmd.Flags().Float64P("fee", "f", defaultFee, "transaction fee")
	return cmd
}

func rpsPlay(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetUint64("gameId")
	movement, _ := cmd.Flags().GetInt32("movement")
	secret, _ := cmd.Flags().GetUint64("secret")
	fee, _ := cmd.Flags().GetFloat64("fee")

	params := &rpst.RpsGamePlayTx{
		GameId:   gameID,
		Movement: movement,
		Secret:   secret,
		Fee:      int64(fee*types.InputPrecision) * types.Multiple1E4,
	}
	var res string
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "rps.RpsPlayTx", params, &res)
	ctx.RunWithoutMarshal()
}

func rpsRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal both movements and settle an rps game",
		Run:   rpsReveal,
	}
	cmd.Flags().Uint64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	cmd.Flags().Int32P("movement1", "m", 0, "slot 1 movement, 1 rock 2 paper 3 scissors")
	cmd.MarkFlagRequired("movement1")
	cmd.Flags().Uint64P("secret1", "s", 0, "slot 1 secret")
	cmd.MarkFlagRequired("secret1")
	cmd.Flags().StringP("player2", "p", "", "opponent address")
	cmd.MarkFlagRequired("player2")
	cmd.Flags().Int32P("movement2", "n", 0, "slot 2 movement, 1 rock 2 paper 3 scissors")
	cmd.MarkFlagRequired("movement2")
	cmd.Flags().Uint64P("secret2", "t", 0, "slot 2 secret")
	cmd.MarkFlagRequired("secret2")
	defaultFee := float64(types.GInt("MinFee")) / float64(types.Coin)
	cmd.Flags().Float64P("fee", "f", defaultFee, "transaction fee")
	return cmd
}

func rpsReveal(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetUint64("gameId")
	movement1, _ := cmd.Flags().GetInt32("movement1")
	secret1, _ := cmd.Flags().GetUint64("secret1")
	player2, _ := cmd.Flags().GetString("player2")
	movement2, _ := cmd.Flags().GetInt32("movement2")
	secret2, _ := cmd.Flags().GetUint64("secret2")
	fee, _ := cmd.Flags().GetFloat64("fee")

	params := &rpst.RpsGameRevealTx{
		GameId:    gameID,
		Movement1: movement1,
		Secret1:   secret1,
		Player2:   player2,
		Movement2: movement2,
		Secret2:   secret2,
		Fee:       int64(fee*types.InputPrecision) * types.Multiple1E4,
	}
	var res string
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "rps.RpsRevealTx", params, &res)
	ctx.RunWithoutMarshal()
}

func rpsQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query an rps game by id",
		Run:   rpsQuery,
	}
	cmd.Flags().Uint64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func rpsQuery(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetUint64("gameId")

	params := queryParams{
		Execer:   rpst.RPSX,
		FuncName: rpst.FuncNameQueryGameInfo,
		Payload:  &rpst.ReqRpsGameInfo{GameId: gameID},
	}
	var res rpst.ReplyRpsGame
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func rpsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rps games by status and address",
		Run:   rpsList,
	}
	cmd.Flags().Int32P("status", "s", 0, "game status, 1 created 2 playing 3 ready 4 resolved")
	cmd.MarkFlagRequired("status")
	cmd.Flags().StringP("addr", "a", "", "player address filter")
	cmd.Flags().Int32P("count", "c", 0, "page size")
	cmd.Flags().Int32P("direction", "d", 0, "list direction, 0 desc 1 asc")
	cmd.Flags().Int64P("index", "i", 0, "page cursor, 0 for the first page")
	return cmd
}

func rpsList(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	status, _ := cmd.Flags().GetInt32("status")
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")

	params := queryParams{
		Execer:   rpst.RPSX,
		FuncName: rpst.FuncNameQueryGameList,
		Payload: &rpst.ReqRpsGameList{
			Status:    status,
			Addr:      addr,
			Count:     count,
			Direction: direction,
			Index:     index,
		},
	}
	var res rpst.ReplyRpsGameList
	ctx := jsonclient.NewRpcCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}
