// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import (
	"encoding/binary"

	"github.com/golang/glog"
)

// direction indicates which phase of the sponge construction is active.
type direction int

const (
	absorbing direction = iota
	squeezing
)

// Backend selects which permutation implementation a sponge instance uses.
// Both backends are always compiled in (see SPEC_FULL.md "Configuration")
// so that keccakf_test.go can cross-validate them against each other in a
// single test binary, rather than relying on a per-architecture build-tag
// matrix the way some vendored, genuinely platform-exclusive permutation
// backends in the wider ecosystem do.
type Backend int

const (
	// Backend64 uses native 64-bit lane arithmetic. This is the default,
	// and the only backend Hash and Shake use, since Go guarantees
	// unsigned 64-bit arithmetic on every supported GOARCH.
	Backend64 Backend = iota
	// Backend32 uses the four-limb 16-bit fallback representation
	// (see keccakf32.go), bit-identical to Backend64 on the same input.
	Backend32
)

// bufferLen is the maximum supported sponge rate in bytes: the full
// Keccak-f[1600] state size, reached only in the degenerate zero-capacity
// case. Hash and Shake always use a rate strictly smaller than this;
// NewSponge accepts rates up to and including it.
const (
	bufferLen  = 200
	spongeSize = 200
)

// state is the generic Keccak sponge: the rate, domain-separator byte, and
// permutation backend are all parameters, so the same implementation backs
// Keccak-224/256/384/512, SHAKE128/256, and any custom instance built with
// NewSponge.
type state struct {
	a            [25]uint64
	inputBuffer  [bufferLen]byte
	outputBuffer [bufferLen]byte
	position     int
	rate         int
	dsbyte       byte
	fixedOutput  bool
	outputSize   int
	squeezed     int
	dir          direction
	backend      Backend
}

func minInt(v1, v2 int) int {
	if v1 <= v2 {
		return v1
	}
	return v2
}

// SpongeSize returns the size, in bytes, of the sponge state (always 200
// for Keccak-f[1600]).
func (s *state) SpongeSize() int { return spongeSize }

// Rate returns the byte-rate of the sponge.
func (s *state) Rate() int { return s.rate }

// SecurityStrength returns the generic security strength, in bits, of this
// sponge instance.
func (s *state) SecurityStrength() int { return 8 * (s.SpongeSize() - s.rate) / 2 }

// BlockSize satisfies hash.Hash; it is the sponge's rate.
func (s *state) BlockSize() int { return s.rate }

// Size satisfies hash.Hash; it is the configured fixed output size.
func (s *state) Size() int { return s.outputSize }

// Reset clears the state, zeroes both buffers, and returns to absorbing.
func (s *state) Reset() {
	s.position = 0
	s.squeezed = 0
	for i := range s.a {
		s.a[i] = 0
	}
	s.zeroBuffers()
	s.dir = absorbing
}

func (s *state) zeroBuffers() {
	for i := range s.inputBuffer {
		s.inputBuffer[i] = 0
	}
	for i := range s.outputBuffer {
		s.outputBuffer[i] = 0
	}
}

// permute applies the configured backend's Keccak-f[1600] permutation to
// the lane state. The 25-lane shape is identical going in and out
// regardless of backend (spec.md's state-size invariant).
func (s *state) permute() {
	switch s.backend {
	case Backend32:
		limbs := lanesToLimbs(&s.a)
		permuteLimbs(limbs)
		s.a = *limbsToLanes(limbs)
	default:
		permuteLanes(&s.a)
	}
	if glog.V(2) {
		glog.Infof("keccak: permute backend=%d rate=%d dir=%v", s.backend, s.rate, s.dir)
	}
}

// xorBytesFrom xors buf (little-endian 8-byte lanes) into the state's
// lanes starting at lane 0.
func xorBytesFrom(a []uint64, buf []byte) {
	dqwords := len(buf) / 8
	for i := 0; i < dqwords; i++ {
		a[i] ^= binary.LittleEndian.Uint64(buf[i*8:])
	}
	if len(buf)%8 != 0 {
		var last [8]byte
		copy(last[:], buf[dqwords*8:])
		a[dqwords] ^= binary.LittleEndian.Uint64(last[:])
	}
}

// copyBytesInto copies lanes out into buf as little-endian 8-byte words.
func copyBytesInto(buf []byte, a []uint64) {
	n := len(buf) / 8
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:(i+1)*8], a[i])
	}
}

// Permute runs one permutation call, performing the buffer-to-state or
// state-to-buffer transfer appropriate to the current direction.
func (s *state) Permute() {
	switch s.dir {
	case absorbing:
		xorBytesFrom(s.a[:(s.rate+7)/8], s.inputBuffer[:s.rate])
		s.permute()
	case squeezing:
		s.permute()
		copyBytesInto(s.outputBuffer[:s.rate], s.a[:(s.rate+7)/8])
	}
	s.position = 0
}

// Pad applies pad10*1 with the given domain-separator byte and switches
// the sponge to squeezing. The special case of spec.md §4.2 — tail_len ==
// rate-1, where the suffix byte and the terminal 0x80 land on the same
// byte — falls out of XOR-ing both into the (zeroed) tail byte, since
// neither dsbyte (0x01 or 0x1F) nor 0x80 share a set bit.
func (s *state) Pad(dsbyte byte) {
	s.inputBuffer[s.position] ^= dsbyte
	s.inputBuffer[s.rate-1] ^= 0x80
	s.Permute()
	s.dir = squeezing
	copyBytesInto(s.outputBuffer[:s.rate], s.a[:(s.rate+7)/8])
}

// Absorb xors input bytes into the sponge, applying the permutation
// whenever the buffer fills to a full rate's worth of bytes.
func (s *state) Absorb(p []byte) int {
	written := 0
	toWrite := len(p)
	for toWrite > 0 {
		canWrite := s.rate - s.position
		willWrite := minInt(toWrite, canWrite)

		if willWrite == s.rate {
			// Fast path: absorb a full rate directly, no buffering.
			xorBytesFrom(s.a[:(s.rate+7)/8], p[written:written+willWrite])
			s.permute()
		} else {
			copy(s.inputBuffer[s.position:], p[written:written+willWrite])
			s.position += willWrite
			if s.position == s.rate {
				s.Permute()
				for i := range s.inputBuffer {
					s.inputBuffer[i] = 0
				}
				s.position = 0
			}
		}
		toWrite -= willWrite
		written += willWrite
	}
	return written
}

// Write satisfies hash.Hash / io.Writer by absorbing p. It panics if output
// has already been squeezed, per the ShakeHash.Write contract.
func (s *state) Write(p []byte) (int, error) {
	if s.dir == squeezing {
		panic("keccak: Write called after Read")
	}
	return s.Absorb(p), nil
}

// Squeeze finalizes (if still absorbing) and copies n bytes of output,
// applying the permutation whenever the output buffer runs dry.
func (s *state) Squeeze(out []byte, n int) []byte {
	if s.dir == absorbing {
		s.Pad(s.dsbyte)
	}
	if s.fixedOutput && n > s.outputSize-s.squeezed {
		n = s.outputSize - s.squeezed
		if n < 0 {
			n = 0
		}
	}
	result := make([]byte, n)
	done := 0
	for n != 0 {
		canSqueeze := s.rate - s.position
		willSqueeze := minInt(n, canSqueeze)

		copy(result[done:done+willSqueeze], s.outputBuffer[s.position:s.position+willSqueeze])

		s.position += willSqueeze
		done += willSqueeze
		s.squeezed += willSqueeze
		n -= willSqueeze

		if s.position == s.rate {
			s.Permute()
		}
	}
	return append(out, result...)
}

// Read satisfies io.Reader for ShakeHash / XOF consumers: it squeezes
// len(p) bytes and never returns an error.
func (s *state) Read(p []byte) (int, error) {
	out := s.Squeeze(nil, len(p))
	copy(p, out)
	return len(p), nil
}

// Sum satisfies hash.Hash: it squeezes outputSize bytes from a *copy* of
// the state, so the original can keep absorbing (fixed-output use only).
func (s *state) Sum(in []byte) []byte {
	dup := *s
	return dup.Squeeze(in, dup.outputSize)
}

// MakeOneWay zeros SecurityStrength()/2 bits (in whole bytes, rounded down)
// of the capacity portion of the state and re-applies the permutation, so
// the inverse permutation can no longer recover input absorbed before this
// call.
func (s *state) MakeOneWay() {
	zeroBytes := s.SecurityStrength() / 2 / 8
	if zeroBytes <= 0 {
		s.permute()
		return
	}
	var full [spongeSize]byte
	copyBytesInto(full[:], s.a[:25])
	start := s.rate
	end := start + zeroBytes
	if end > spongeSize {
		end = spongeSize
	}
	for i := start; i < end; i++ {
		full[i] = 0
	}
	for i := range s.a {
		s.a[i] = 0
	}
	xorBytesFrom(s.a[:25], full[:])
	s.permute()
}

// clone returns a value copy of s (arrays copy by value in Go).
func (s *state) clone() *state {
	dup := *s
	return &dup
}

// NewSponge creates a Keccak-based sponge of any rate 0 < rate <= 200 that
// is a multiple of 8, and the given domain-separator byte, generalizing the fixed Hash/Shake
// parameterizations. By default its output size is rate-1 bytes, but any
// amount of output can be requested via Squeeze/Read.
func NewSponge(rate int, dsbyte byte) (Sponge, error) {
	if rate <= 0 || rate > bufferLen || rate%8 != 0 {
		return nil, errInvalidRate(rate)
	}
	if glog.V(1) {
		glog.Infof("keccak: NewSponge rate=%d dsbyte=%#x", rate, dsbyte)
	}
	return &state{
		fixedOutput: false,
		outputSize:  rate - 1,
		rate:        rate,
		dsbyte:      dsbyte,
		backend:     Backend64,
	}, nil
}

// NewSpongeWithBackend is NewSponge, additionally selecting the permutation
// backend (see Backend). It exists so tests and callers needing the 32-bit
// fallback on principle (not because the platform requires it — Go always
// has native uint64) can exercise that code path through the same public
// surface as the default backend.
func NewSpongeWithBackend(rate int, dsbyte byte, backend Backend) (Sponge, error) {
	sp, err := NewSponge(rate, dsbyte)
	if err != nil {
		return nil, err
	}
	sp.(*state).backend = backend
	return sp, nil
}
