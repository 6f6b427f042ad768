// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// txpool-cli - operator client for a running txpoold
//
// speaks JSON RPC over TLS to the daemon; results are printed as
// indented JSON
package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/rpc/jsonrpc"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/txpoold/transactionrecord"
	"github.com/bitmark-inc/txpoold/txpool"
	"github.com/bitmark-inc/txpoold/version"
)

func main() {

	app := cli.NewApp()
	app.Name = "txpool-cli"
	app.Usage = "query and submit to a transaction pool daemon"
	app.Version = version.Version

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2230",
			Usage: "daemon RPC `HOST:PORT`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "submit",
			Usage:     "submit a transaction from a JSON file ('-' for stdin)",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if 1 != c.NArg() {
					return fmt.Errorf("submit needs exactly one file argument")
				}
				var data []byte
				var err error
				if "-" == c.Args().First() {
					data, err = ioutil.ReadAll(os.Stdin)
				} else {
					data, err = ioutil.ReadFile(c.Args().First())
				}
				if nil != err {
					return err
				}
				tx := transactionrecord.Transaction{}
				if err := json.Unmarshal(data, &tx); nil != err {
					return err
				}
				return call(c, "Transaction.Submit", &tx)
			},
		},
		{
			Name:      "status",
			Usage:     "show the pool status of a transaction id",
			ArgsUsage: "TXID",
			Action: func(c *cli.Context) error {
				if 1 != c.NArg() {
					return fmt.Errorf("status needs exactly one transaction id")
				}
				arguments := map[string]string{"txId": c.Args().First()}
				return call(c, "Transaction.Status", arguments)
			},
		},
		{
			Name:  "usage",
			Usage: "per partition transaction counts",
			Action: func(c *cli.Context) error {
				return call(c, "Pool.Usage", &struct{}{})
			},
		},
		{
			Name:  "ready",
			Usage: "draw transactions in block producer order",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: "maximum `COUNT` of transactions",
				},
			},
			Action: func(c *cli.Context) error {
				arguments := map[string]int{"count": c.Int("count")}
				return call(c, "Pool.Ready", arguments)
			},
		},
		{
			Name:      "all",
			Usage:     "filtered pool query",
			ArgsUsage: "FILTER",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: "reverse the id order",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Usage: "truncate to `LIMIT` ids",
				},
				cli.StringFlag{
					Name:  "id",
					Usage: "sender `ADDRESS` for the sender_id filter",
				},
				cli.StringFlag{
					Name:  "public-key",
					Usage: "recipient `ADDRESS` for the recipient_id filter",
				},
			},
			Action: func(c *cli.Context) error {
				if 1 != c.NArg() {
					return fmt.Errorf("all needs exactly one filter argument")
				}
				arguments := struct {
					Filter string              `json:"filter"`
					Params txpool.GetAllParams `json:"params"`
				}{
					Filter: c.Args().First(),
					Params: txpool.GetAllParams{
						Reverse:   c.Bool("reverse"),
						Limit:     c.Int("limit"),
						Id:        c.String("id"),
						PublicKey: c.String("public-key"),
					},
				}
				return call(c, "Pool.All", &arguments)
			},
		},
		{
			Name:  "info",
			Usage: "daemon information",
			Action: func(c *cli.Context) error {
				return call(c, "Node.Info", &struct{}{})
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// dial the daemon, make one call and print the reply
func call(c *cli.Context, method string, arguments interface{}) error {

	// the daemon uses a self signed certificate
	conn, err := tls.Dial("tcp", c.GlobalString("connect"), &tls.Config{
		InsecureSkipVerify: true,
	})
	if nil != err {
		return err
	}
	defer conn.Close()

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply json.RawMessage
	if err := client.Call(method, arguments, &reply); nil != err {
		return err
	}

	pretty := bytes.Buffer{}
	if err := json.Indent(&pretty, reply, "", "  "); nil != err {
		return err
	}
	fmt.Printf("%s\n", pretty.String())
	return nil
}
