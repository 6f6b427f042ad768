// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/txpoold/fault"
)

// create a self-signed certificate for the RPC listener
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, extraHosts []string) error {

	if ensureFileExists(certificateFileName) {
		return fault.CertificateFileAlreadyExists
	}

	if ensureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "txpoold self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, false, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// check if file exists
func ensureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
