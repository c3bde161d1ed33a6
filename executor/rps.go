// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 石头剪刀布合约的执行器实现
package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	rpst "github.com/33cn/rps/types"
)

var (
	rlog       = log.New("module", "execs.rps")
	driverName = rpst.RPSX
)

// 初始化过程比较重量级，有很多reflect，所以弄成全局的
func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&RPS{}))
}

// Init 注册执行器
func Init(name string, sub []byte) {
	drivers.Register(GetName(), newRPS, types.GetDappFork(driverName, "Enable"))
}

// GetName 返回执行器名称
func GetName() string {
	return newRPS().GetName()
}

// RPS 石头剪刀布执行器
type RPS struct {
	drivers.DriverBase
}

func newRPS() drivers.Driver {
	r := &RPS{}
	r.SetChild(r)
	r.SetExecutorType(types.LoadExecutorType(driverName))
	return r
}

// GetDriverName 返回驱动名称
func (r *RPS) GetDriverName() string {
	return driverName
}
