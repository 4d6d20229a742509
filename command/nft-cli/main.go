// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftregistry/command/nft-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "nft-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new seed, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise nft-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*nftd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "program, P",
					Value: "",
					Usage: "*registry program identity `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: " generate a new seed",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: " generate a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "identities",
			Usage:  "list identities from the config file",
			Action: runIdentities,
		},
		{
			Name:      "create-collection",
			Usage:     "create a collection with the current identity as mint authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: " collection address `ACCOUNT` [fresh random address]",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*collection `NAME`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*collection `SYMBOL`",
				},
				cli.StringFlag{
					Name:  "icon, u",
					Value: "",
					Usage: " icon `URI`",
				},
				cli.Uint64Flag{
					Name:  "supply, q",
					Value: 0,
					Usage: "*total supply `COUNT`",
				},
				cli.StringFlag{
					Name:  "freeze, f",
					Value: "",
					Usage: " freeze authority identity or `ACCOUNT`",
				},
			},
			Action: runCreateCollection,
		},
		{
			Name:      "mint",
			Usage:     "mint one asset into a collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: "*collection `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner identity or `ACCOUNT` [current identity]",
				},
				cli.StringFlag{
					Name:  "author, a",
					Value: "",
					Usage: " author identity or `ACCOUNT` [current identity]",
				},
				cli.StringFlag{
					Name:  "proposal, r",
					Value: "",
					Usage: " proposal identity or `ACCOUNT` [current identity]",
				},
				cli.StringFlag{
					Name:  "close, x",
					Value: "",
					Usage: " close authority identity or `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " asset `URI`",
				},
				cli.Uint64Flag{
					Name:  "timestamp, t",
					Value: 0,
					Usage: " mint `SECONDS` since epoch [now]",
				},
				cli.StringSliceFlag{
					Name:  "cosigner, s",
					Usage: " additional signing identity `NAME`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an asset to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity or `ACCOUNT` to receive the asset",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "freeze",
			Usage:     "freeze an asset using the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runFreeze,
		},
		{
			Name:      "thaw",
			Usage:     "thaw a frozen asset using the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runThaw,
		},
		{
			Name:      "burn",
			Usage:     "destroy an asset using the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runBurn,
		},
		{
			Name:      "authorize",
			Usage:     "replace or clear an authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*collection (mint, freeze) or asset (close) `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: "*authority `KIND` [mint|freeze|close]",
				},
				cli.StringFlag{
					Name:  "new, n",
					Value: "",
					Usage: "*new authority identity or `ACCOUNT`, NONE to clear",
				},
			},
			Action: runAuthorise,
		},
		{
			Name:      "update",
			Usage:     "replace a collection icon or asset URI",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*collection (icon) or asset (asset) `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: "*uri `KIND` [icon|asset]",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " new `URI`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "collection-info",
			Usage:     "display a collection record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, c",
					Value: "",
					Usage: "*collection `ACCOUNT`",
				},
			},
			Action: runCollectionInfo,
		},
		{
			Name:      "nft-info",
			Usage:     "display an asset record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{assetFlag},
			Action:    runAssetInfo,
		},
		{
			Name:      "accounts",
			Aliases:   []string{"owned"},
			Usage:     "list assets held by an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner identity or `ACCOUNT` [current identity]",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first asset `ACCOUNT` of the page",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum assets to list `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "info",
			Usage:  "display nftd info",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display nft-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h", "generate":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file, err := configurationFile(app.Name)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configuration, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  configuration,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// the asset flag shared by several commands
var assetFlag = cli.StringFlag{
	Name:  "asset, a",
	Value: "",
	Usage: "*asset `ACCOUNT`",
}

// $XDG_CONFIG_HOME/<name>/<name>.json
func configurationFile(name string) (string, error) {
	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		home := os.Getenv("HOME")
		if "" == home {
			return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		p = path.Join(home, ".config")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return path.Join(p, name, name+".json"), nil
}
