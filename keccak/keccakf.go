// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

// rounds is the number of Keccak-f[1600] rounds.
const rounds = 24

// roundConstants are XORed into lane 0 at the end of each round (ι step).
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rotationConstants are the ρ-step rotation amounts, indexed by
// step-mapping position.
var rotationConstants = [rounds]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

// piLane is the π-step destination linear index, indexed by step-mapping
// position.
var piLane = [rounds]uint{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

// rotl64 rotates v left by n bits, 0 < n < 64.
func rotl64(v uint64, n uint) uint64 {
	return (v << n) | (v >> (64 - n))
}

// permuteLanes applies the Keccak-f[1600] permutation to a, a 5x5 array of
// 64-bit lanes flattened with linear index i = x + 5y, mutating it in place.
func permuteLanes(a *[25]uint64) {
	var bc [5]uint64
	for r := 0; r < rounds; r++ {
		// θ: column parities, then mix into every lane of the column.
		for x := 0; x < 5; x++ {
			bc[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := bc[(x+4)%5] ^ rotl64(bc[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[x+y] ^= d
			}
		}

		// ρ + π: combined lane rotate-and-relocate traversal.
		t := a[1]
		for i := 0; i < rounds; i++ {
			j := piLane[i]
			t, a[j] = a[j], rotl64(t, rotationConstants[i])
		}

		// χ: nonlinear row mixing; each row must be read before any write.
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				bc[x] = a[y+x]
			}
			for x := 0; x < 5; x++ {
				a[y+x] ^= (^bc[(x+1)%5]) & bc[(x+2)%5]
			}
		}

		// ι: mix in this round's constant.
		a[0] ^= roundConstants[r]
	}
}
