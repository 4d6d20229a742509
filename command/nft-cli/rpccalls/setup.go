// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/nftregistry/account"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	program account.Identifier
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a nftd
func NewClient(program account.Identifier, connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, program, verbose, handle), nil
}

func newClient(conn net.Conn, program account.Identifier, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		program: program,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the nftd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// write a titled JSON dump of each request and reply when verbose
func (c *Client) trace(title string, message interface{}) {
	if !c.verbose {
		return
	}
	fmt.Fprintf(c.handle, "%s:\n", title)
	enc := json.NewEncoder(c.handle)
	enc.SetIndent("", "  ")
	if err := enc.Encode(message); nil != err {
		fmt.Fprintf(c.handle, "  encode error: %s\n", err)
	}
}
