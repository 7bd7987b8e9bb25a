// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccak implements the Keccak-f[1600] sponge construction: the
// fixed-output-length Keccak-224/256/384/512 hash functions and the
// SHAKE128/SHAKE256 extendable-output functions.
//
// Both function families use the "sponge" construction built on the
// Keccak-f[1600] permutation. For a detailed specification, see
// http://keccak.noekeon.org/
//
// Conformance note
//
// This package implements the original Keccak submission's domain-separator
// byte (0x01), not the FIPS-202 SHA-3 suffix (0x06). Its output will NOT
// match published SHA-3 test vectors; it matches original Keccak test
// vectors, including Ethereum's keccak256. Callers who need FIPS-202
// SHA3-256/SHAKE256 should use golang.org/x/crypto/sha3 instead.
//
// Guidance
//
// If you aren't sure what function you need, use Shake with security
// level 256 and at least 64 bytes of output.
//
// Security strengths of functions
//
//	          output  collision-resistance  preimage-resistance
//	Keccak-224   28B              112 bits             224 bits
//	Keccak-256   32B              128 bits             256 bits
//	Keccak-384   48B              192 bits             384 bits
//	Keccak-512   64B              256 bits             512 bits
//
//	          output  collision-resistance  preimage-resistance
//	SHAKE128  >= 32B              128 bits             128 bits
//	SHAKE256  >= 64B              256 bits             256 bits
//
// The sponge construction
//
// A sponge builds a pseudo-random function from a pseudo-random permutation
// by applying the permutation to a state of "rate + capacity" bytes, while
// hiding "capacity" bytes of it from both absorbed input and squeezed
// output.
//
//	up to "rate" bytes xored in
//	\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/
//	======================================----------------
//	|  rate                              | capacity      |
//	======================================----------------
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	:::::::::::::::::Keccak-f[1600] permutation::::::::::::
//	::::::::::::::::::::::::::::::::::::::::::::::::::::::
//	======================================----------------
//	|  rate                              | capacity      |
//	======================================----------------
//	/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\\/\/\/\/
//	up to "rate" bytes copied out
//
//	security_strength == capacity / 2
//	capacity + rate   == 1600 bits (200 bytes)
package keccak
