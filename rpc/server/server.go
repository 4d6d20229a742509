// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register the RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftregistry/account"
	"github.com/bitmark-inc/nftregistry/counter"
	"github.com/bitmark-inc/nftregistry/rpc/ledger"
	"github.com/bitmark-inc/nftregistry/rpc/node"
)

// Create - an RPC server offering Registry and Node
func Create(log *logger.L, version string, program account.Identifier, rpcCount *counter.Counter, l ledger.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(ledger.New(log, l))
	_ = server.Register(node.New(log, start, version, program, rpcCount))

	return server
}
