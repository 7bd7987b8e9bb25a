// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import (
	"encoding/hex"

	"github.com/golang/glog"
)

// capacityForSecurityLevel returns the sponge capacity, in bytes, for a
// SHAKE security level: c = 2 * securityLevel bits.
func capacityForSecurityLevel(securityLevel int) int {
	return 2 * securityLevel / 8
}

func newShakeSponge(securityLevel int) (*state, error) {
	switch securityLevel {
	case 128, 256:
	default:
		return nil, errUnsupportedSecurityLevel(securityLevel)
	}
	rate := bufferLen - capacityForSecurityLevel(securityLevel)
	return &state{
		fixedOutput: false,
		rate:        rate,
		dsbyte:      shakeSuffix,
		backend:     Backend64,
	}, nil
}

// Shake computes a SHAKE digest of input at the given security level and
// output length, and returns it either raw or lowercase-hex-encoded.
//
// securityLevel must be 128 or 256; any other value returns
// ErrUnsupportedSecurityLevel. outLen must be a positive multiple of 8
// (bits); any other value returns ErrInvalidOutputLength. Neither error
// touches any sponge state.
func Shake(input []byte, securityLevel, outLen int, raw bool) (string, error) {
	if outLen <= 0 || outLen%8 != 0 {
		return "", errInvalidOutputLength(outLen)
	}
	d, err := newShakeSponge(securityLevel)
	if err != nil {
		return "", err
	}

	if glog.V(1) {
		glog.Infof("keccak: Shake securityLevel=%d outLen=%d inputLen=%d raw=%v", securityLevel, outLen, len(input), raw)
	}

	d.Absorb(input)
	digest := d.Squeeze(nil, outLen/8)

	if raw {
		return string(digest), nil
	}
	return hex.EncodeToString(digest), nil
}

// Clone satisfies ShakeHash by returning an independent copy of the
// sponge's current state.
func (s *state) Clone() ShakeHash { return s.clone() }

// XOF is a supplemental, streaming extendable-output squeezer: the caller
// Writes the whole input exactly once, then Reads output in arbitrarily
// sized chunks across as many calls as needed. It exists to let callers
// exercise the SHAKE prefix property incrementally and to support
// higher-level constructions (KDFs, stream ciphers) built on squeeze
// output, without this package itself implementing any such construction.
//
// Writing after any Read panics, mirroring ShakeHash.Write's documented
// contract — this is a programmer-error guard, not a data-dependent
// runtime condition, so it is not one of the package's returned errors.
type XOF struct {
	s       *state
	reading bool
}

// NewXOF returns an XOF at the given SHAKE security level (128 or 256).
func NewXOF(securityLevel int) (*XOF, error) {
	d, err := newShakeSponge(securityLevel)
	if err != nil {
		return nil, err
	}
	return &XOF{s: d}, nil
}

// Write absorbs p. It panics if called after Read.
func (x *XOF) Write(p []byte) (int, error) {
	if x.reading {
		panic("keccak: XOF.Write called after Read")
	}
	return x.s.Absorb(p), nil
}

// Read squeezes len(p) more bytes of output into p. The first call to Read
// finalizes (pads) the absorbed input; it never returns an error.
func (x *XOF) Read(p []byte) (int, error) {
	x.reading = true
	return x.s.Read(p)
}

// Clone returns an independent XOF sharing no state with x.
func (x *XOF) Clone() *XOF {
	return &XOF{s: x.s.clone(), reading: x.reading}
}

// Reset returns the XOF to its freshly-constructed, absorbing state.
func (x *XOF) Reset() {
	x.s.Reset()
	x.reading = false
}
