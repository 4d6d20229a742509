// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// nft-cli - command line client for an nftd registry
//
// identities are kept in $XDG_CONFIG_HOME/nft-cli/nft-cli.json with
// each seed encrypted under its own password
package main
