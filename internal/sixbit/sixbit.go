// Package sixbit implements the AIS six-bit ASCII armor and MSB-first
// bit-field extraction over unpacked payloads.
package sixbit

import "strings"

// CharBits is the number of payload bits carried by one armored character.
const CharBits = 6

// Bits is a logical bit sequence produced by Unpack.
type Bits []bool

// Unpack expands an armored payload string into its bit sequence, six bits
// per character, most significant bit first. Each character code has 48
// subtracted; results above 40 have a further 8 subtracted.
func Unpack(payload string) Bits {
	bits := make(Bits, 0, len(payload)*CharBits)
	for i := 0; i < len(payload); i++ {
		ci := payload[i] - 48
		if ci > 40 {
			ci -= 8
		}
		for b := 0; b < CharBits; b++ {
			bits = append(bits, (ci>>(5-b))&0x01 != 0)
		}
	}
	return bits
}

// Uint reads length bits starting at offset as an unsigned integer, MSB
// first. Bits beyond the end of the sequence read as zero.
func (bv Bits) Uint(offset, length int) uint64 {
	var res uint64
	for pos := offset; pos < offset+length; pos++ {
		res <<= 1
		if pos < len(bv) && bv[pos] {
			res |= 1
		}
	}
	return res
}

// Int reads length bits starting at offset and reinterprets the result as a
// two's-complement signed integer of that bit width.
func (bv Bits) Int(offset, length int) int64 {
	res := bv.Uint(offset, length)
	sign := uint64(1) << (length - 1)
	if res&sign != 0 {
		return int64(res&(sign-1)) - int64(sign)
	}
	return int64(res)
}

// Text decodes up to maxChars six-bit groups starting at offset using the
// AIS character table: a zero group terminates, values below 32 map to code
// point 64+value, values 32-63 map to themselves. Trailing whitespace is
// trimmed.
func (bv Bits) Text(offset, maxChars int) string {
	var sb strings.Builder
	sb.Grow(maxChars)
	for i := 0; i < maxChars; i++ {
		ch := bv.Uint(offset+i*CharBits, CharBits)
		switch {
		case ch == 0:
			return strings.TrimRight(sb.String(), " \t\r\n")
		case ch < 32:
			sb.WriteByte(byte(64 + ch))
		default:
			sb.WriteByte(byte(ch))
		}
	}
	return strings.TrimRight(sb.String(), " \t\r\n")
}
