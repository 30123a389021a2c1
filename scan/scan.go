// Package scan implements the byte scanner: a lane-parallel pass over a
// buffer's text that surfaces every occurrence of a small alphabet of
// interesting bytes (delimiters, quote and comment markers, newlines, and
// backslash) along with the column each occurrence falls at.
//
// True portable SIMD isn't available to pure Go without assembly, so the
// lanes here are a SWAR (SIMD-within-a-register) stand-in: eight bytes
// packed into a uint64, tested for equality against a broadcast needle in
// one shot via the classic has-zero-byte bit trick. The externally visible
// behavior — order, columns, which bytes are reported — is identical to a
// byte-by-byte scalar loop; only the throughput differs.
package scan

import (
	"encoding/binary"

	"bitbucket.org/creachadair/stringset"
)

const laneLen = 8

// Alphabet is the set of bytes Scan should report. The newline and
// backslash bytes are always included: the line driver needs them to
// track line boundaries and escapes regardless of what any particular
// language's table asks for.
type Alphabet struct {
	bytes []byte
}

// NewAlphabet builds an Alphabet containing \n, \\, and every byte given.
func NewAlphabet(bytes ...byte) Alphabet {
	seen := stringset.New()
	out := make([]byte, 0, len(bytes)+2)
	add := func(b byte) {
		key := string([]byte{b})
		if seen.Contains(key) {
			return
		}
		seen.Add(key)
		out = append(out, b)
	}
	add('\n')
	add('\\')
	for _, b := range bytes {
		add(b)
	}
	return Alphabet{bytes: out}
}

// FromSet builds an Alphabet from a stringset of single-byte strings, as
// produced by lang.Table.Alphabet.
func FromSet(set stringset.Set) Alphabet {
	bs := make([]byte, 0, set.Len())
	for _, s := range set.Elements() {
		if len(s) > 0 {
			bs = append(bs, s[0])
		}
	}
	return NewAlphabet(bs...)
}

// CharPos is one reported occurrence: the byte value found and the column
// (0-based, reset at every newline) it occurs at.
type CharPos struct {
	Byte byte
	Col  int
}

// Scan returns, in order, a CharPos for every byte in text belonging to
// alphabet. A newline byte is always reported with Col 0 and resets the
// column counter for the bytes that follow it.
func Scan(text []byte, alphabet Alphabet) []CharPos {
	var out []CharPos
	colOffset := 0

	for chunkStart := 0; chunkStart < len(text); chunkStart += laneLen {
		end := chunkStart + laneLen
		if end > len(text) {
			end = len(text)
		}
		var lane [laneLen]byte
		copy(lane[:], text[chunkStart:end])
		v := loadLane(lane)

		var combined uint64
		for _, c := range alphabet.bytes {
			combined |= eqMask(v, c)
		}
		selected := selectBytes(v, combined)

		n := end - chunkStart
		for i := 0; i < n; i++ {
			b := byte(selected >> (8 * i))
			if b == 0 {
				continue
			}
			if b == '\n' {
				out = append(out, CharPos{Byte: '\n', Col: 0})
				colOffset = chunkStart + i + 1
				continue
			}
			out = append(out, CharPos{Byte: b, Col: chunkStart + i - colOffset})
		}
	}
	return out
}

func loadLane(b [laneLen]byte) uint64 {
	return binary.LittleEndian.Uint64(b[:])
}

// eqMask returns, per byte lane, 0x80 in lanes of v equal to c and 0
// elsewhere. A lane of x = v XOR broadcast(c) is zero exactly where it
// equaled c; adding 0x7f to each lane's low seven bits sets the high bit
// of every nonzero lane without carrying into its neighbour, so each lane
// is tested on its own.
func eqMask(v uint64, c byte) uint64 {
	const low7 = 0x7f7f7f7f7f7f7f7f
	broadcast := uint64(c) * 0x0101010101010101
	x := v ^ broadcast
	return ^(((x & low7) + low7) | x | low7)
}

// selectBytes keeps the original byte value in every lane whose high bit
// is set in mask, and zeroes the rest.
func selectBytes(v, mask uint64) uint64 {
	full := ((mask >> 7) & 0x0101010101010101) * 0xff
	return v & full
}
