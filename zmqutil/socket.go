// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
)

// NewPublisher - create a PUB socket bound to a list of addresses
//
// when a curve keypair is supplied the socket runs as a curve server
// so subscribers can authenticate the stream
func NewPublisher(log *logger.L, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}

	if len(privateKey) > 0 {
		socket.SetCurveServer(1)
		socket.SetCurvePublickey(string(publicKey))
		socket.SetCurveSecretkey(string(privateKey))
	}

	socket.SetLinger(0)
	socket.SetSndhwm(1000)

	for _, address := range listen {
		log.Infof("publish bind: %s", address)
		if err := socket.Bind(address); nil != err {
			log.Errorf("bind: %s  error: %s", address, err)
			socket.Close()
			return nil, err
		}
	}

	return socket, nil
}

// CloseSocket - close a socket ignoring a nil value
func CloseSocket(socket *zmq.Socket) {
	if nil != socket {
		socket.Close()
	}
}
