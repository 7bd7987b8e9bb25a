// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import (
	"encoding/hex"

	"github.com/golang/glog"
)

// keccakSuffix is the original Keccak submission's domain-separator byte.
// It is NOT the FIPS-202 SHA-3 suffix (0x06); see doc.go's conformance note.
const keccakSuffix = 0x01

// shakeSuffix is the SHAKE domain-separator byte, shared with FIPS-202.
const shakeSuffix = 0x1f

// newFixedOutput builds a sponge parameterized for a fixed-output-length
// Keccak-mdLen instance: capacity = 2*mdLen, so rate = 200 - mdLen/4 bytes.
func newFixedOutput(mdLen int) *state {
	rate := bufferLen - 2*(mdLen/8)
	return &state{
		fixedOutput: true,
		outputSize:  mdLen / 8,
		rate:        rate,
		dsbyte:      keccakSuffix,
		backend:     Backend64,
	}
}

// Hash computes the Keccak digest of input at the given fixed output size
// and returns it either raw or lowercase-hex-encoded.
//
// mdLen must be one of 224, 256, 384, 512; any other value returns
// ErrUnsupportedOutputSize without touching any sponge state.
func Hash(input []byte, mdLen int, raw bool) (string, error) {
	switch mdLen {
	case 224, 256, 384, 512:
	default:
		return "", errUnsupportedOutputSize(mdLen)
	}

	if glog.V(1) {
		glog.Infof("keccak: Hash mdLen=%d inputLen=%d raw=%v", mdLen, len(input), raw)
	}

	d := newFixedOutput(mdLen)
	d.Absorb(input)
	digest := d.Sum(nil)

	if raw {
		return string(digest), nil
	}
	return hex.EncodeToString(digest), nil
}

// newFixedOutput is deliberately not exposed as a reusable hash.Hash
// constructor (the reference package's New224..New512 pattern): spec.md's
// Non-goals rule out incremental hashing across multiple calls for the
// fixed-output family, so Hash is the only supported entry point and it
// always absorbs its whole input in one call.
