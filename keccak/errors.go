// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "github.com/pkg/errors"

// Sentinel errors returned by the dispatch layer. Check identity with
// errors.Is (from either the standard library or github.com/pkg/errors);
// the wrapping helpers below attach positional context without losing it.
var (
	// ErrUnsupportedOutputSize is returned by Hash when mdLen is not one
	// of 224, 256, 384, 512.
	ErrUnsupportedOutputSize = errors.New("keccak: unsupported output size")

	// ErrUnsupportedSecurityLevel is returned by Shake and NewXOF when
	// securityLevel is not one of 128, 256.
	ErrUnsupportedSecurityLevel = errors.New("keccak: unsupported security level")

	// ErrInvalidOutputLength is returned by Shake when outLen is not a
	// positive multiple of 8.
	ErrInvalidOutputLength = errors.New("keccak: output length must be a positive multiple of 8")

	// ErrInvalidRate is returned by NewSponge when rate is out of range or
	// not byte-lane-aligned.
	ErrInvalidRate = errors.New("keccak: rate must be > 0, a multiple of 8, and <= maximum sponge buffer size")
)

func errUnsupportedOutputSize(mdLen int) error {
	return errors.Wrapf(ErrUnsupportedOutputSize, "mdLen=%d (want one of 224, 256, 384, 512)", mdLen)
}

func errUnsupportedSecurityLevel(level int) error {
	return errors.Wrapf(ErrUnsupportedSecurityLevel, "securityLevel=%d (want one of 128, 256)", level)
}

func errInvalidOutputLength(outLen int) error {
	return errors.Wrapf(ErrInvalidOutputLength, "outLen=%d", outLen)
}

func errInvalidRate(rate int) error {
	return errors.Wrapf(ErrInvalidRate, "rate=%d (want 0 < rate <= %d, rate%%8 == 0)", rate, bufferLen)
}
