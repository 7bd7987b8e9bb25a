// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpongeValidation(t *testing.T) {
	_, err := NewSponge(0, shakeSuffix)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = NewSponge(-8, shakeSuffix)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = NewSponge(bufferLen+8, shakeSuffix)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = NewSponge(17, shakeSuffix) // not a multiple of 8
	assert.ErrorIs(t, err, ErrInvalidRate)

	sp, err := NewSponge(136, shakeSuffix)
	require.NoError(t, err)
	assert.Equal(t, 136, sp.Rate())
	assert.Equal(t, spongeSize, sp.SpongeSize())
}

// TestUnalignedWrite exercises absorbing the same input split into every
// offset in a 137-byte (prime) cycle, which touches every corner case of
// the absorb buffering logic.
func TestUnalignedWrite(t *testing.T) {
	buf := sequentialBytes(0x4000)

	whole, err := NewSponge(136, shakeSuffix)
	require.NoError(t, err)
	whole.Write(buf)
	want := whole.Sum(nil)

	piecewise, err := NewSponge(136, shakeSuffix)
	require.NoError(t, err)
	offsets := [17]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 1}
	i := 0
	for i < len(buf) {
		for _, j := range offsets {
			if i >= len(buf) {
				break
			}
			n := minInt(j, len(buf)-i)
			piecewise.Write(buf[i : i+n])
			i += n
		}
	}
	got := piecewise.Sum(nil)
	assert.True(t, bytes.Equal(want, got))
}

// TestBackendCrossValidation checks that Backend32 produces byte-identical
// digests to the default Backend64 across a range of input sizes.
func TestBackendCrossValidation(t *testing.T) {
	for _, n := range []int{0, 1, 135, 136, 137, 1000} {
		msg := sequentialBytes(n)

		native, err := NewSpongeWithBackend(136, shakeSuffix, Backend64)
		require.NoError(t, err)
		native.Write(msg)
		want := native.Sum(nil)[:32]

		fallback, err := NewSpongeWithBackend(136, shakeSuffix, Backend32)
		require.NoError(t, err)
		fallback.Write(msg)
		got := fallback.Sum(nil)[:32]

		assert.Equal(t, want, got, "n=%d", n)
	}
}

// TestPadCollision directly checks the rate-1 tail_len case: the suffix
// byte and the terminal 0x80 must merge into suffix|0x80 at the same byte.
func TestPadCollision(t *testing.T) {
	sp, err := NewSponge(136, keccakSuffix)
	require.NoError(t, err)
	st := sp.(*state)
	st.Write(sequentialBytes(135)) // rate - 1
	st.Pad(keccakSuffix)
	assert.Equal(t, byte(keccakSuffix|0x80), st.inputBuffer[135])
}

// TestPaddingInjectivity checks that two distinct inputs with identical
// tail_len but different content produce different padded final blocks,
// and therefore different digests.
func TestPaddingInjectivity(t *testing.T) {
	a := append(sequentialBytes(135), 0xAA)
	b := append(sequentialBytes(135), 0xBB)

	ha, err := Hash(a, 256, false)
	require.NoError(t, err)
	hb, err := Hash(b, 256, false)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestMakeOneWay(t *testing.T) {
	sp, err := NewSponge(136, shakeSuffix)
	require.NoError(t, err)
	st := sp.(*state)
	st.Write([]byte("checkpoint"))
	before := st.a
	st.MakeOneWay()
	assert.NotEqual(t, before, st.a)
}

func TestSpongeClone(t *testing.T) {
	sp, err := NewSponge(136, shakeSuffix)
	require.NoError(t, err)
	st := sp.(*state)
	st.Write([]byte("prefix"))

	clone := st.Clone()
	st.Write([]byte("-original-tail"))
	clone.Write([]byte("-clone-tail"))

	originalOut := make([]byte, 32)
	st.Read(originalOut)

	cloneOut := make([]byte, 32)
	clone.Read(cloneOut)

	assert.NotEqual(t, originalOut, cloneOut)
}
