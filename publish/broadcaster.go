// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txpoold/messagebus"
	"github.com/bitmark-inc/txpoold/zmqutil"
)

const (
	broadcasterQueueSize = 500
)

// broadcaster - drain the bus onto the PUB socket
type broadcaster struct {
	log    *logger.L
	socket *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	if 0 == len(broadcast) {
		log.Info("no broadcast addresses")
		return nil
	}

	socket, err := zmqutil.NewPublisher(log, privateKey, publicKey, broadcast)
	if nil != err {
		return err
	}
	brdc.socket = socket

	return nil
}

// wait for transactions to publish
//
// each message goes out as a multipart frame: the command, then each
// parameter in order
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Chan(broadcasterQueueSize)

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("publish: %q", item.Command)
			brdc.publish(item)
		}
	}

	log.Info("shutting down…")
	zmqutil.CloseSocket(brdc.socket)
	brdc.socket = nil
	log.Info("stopped")
}

func (brdc *broadcaster) publish(item messagebus.Message) {
	if nil == brdc.socket {
		return
	}

	frames := make([][]byte, 0, 1+len(item.Parameters))
	frames = append(frames, []byte(item.Command))
	frames = append(frames, item.Parameters...)

	if _, err := brdc.socket.SendMessage(frames); nil != err {
		brdc.log.Errorf("publish: %q  error: %s", item.Command, err)
	}
}
