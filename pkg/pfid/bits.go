package pfid

// bitReader walks a byte buffer at bit granularity, most significant bit
// first. Five-bit symbol boundaries do not fall on byte boundaries, so a
// read may span two bytes.
type bitReader struct {
	buf []byte
	off int // absolute bit offset from the start of buf
}

// readBits returns the next n bits as an unsigned integer, n <= 32. The
// caller must not read past len(buf)*8 bits.
func (r *bitReader) readBits(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		byteIndex := r.off / 8
		bitIndex := 7 - r.off%8
		v = v<<1 | uint32(r.buf[byteIndex]>>bitIndex&1)
		r.off++
	}
	return v
}

// bitWriter is the write side counterpart. buf must be zeroed before the
// first write.
type bitWriter struct {
	buf []byte
	off int
}

// writeBits appends the low n bits of v, most significant first, n <= 32.
func (w *bitWriter) writeBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		if v>>uint(i)&1 == 1 {
			byteIndex := w.off / 8
			bitIndex := 7 - w.off%8
			w.buf[byteIndex] |= 1 << uint(bitIndex)
		}
		w.off++
	}
}
