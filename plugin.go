// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rps 石头剪刀布合约插件
package rps

import (
	"github.com/33cn/chain33/pluginmgr"

	"github.com/33cn/rps/commands"
	"github.com/33cn/rps/executor"
	"github.com/33cn/rps/rpc"
	rpst "github.com/33cn/rps/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rpst.RPSX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RPSCmd,
		RPC:      rpc.Init,
	})
}
