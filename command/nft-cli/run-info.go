// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	program, err := m.config.ProgramID()
	if nil == err && program != info.Program {
		fmt.Fprintf(m.e, "warning: node program: %s  configured program: %s\n", info.Program, program)
	}

	printJson(m.w, info)
	return nil
}
