// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring registry services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//	Registry.Submit      apply a signed instruction
//	Registry.Collection  read a collection record
//	Registry.Asset       read an asset record
//	Registry.Owned       list the assets held by an owner
//	Node.Info            version and uptime
package rpc
