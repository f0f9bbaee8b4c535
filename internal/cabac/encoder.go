package cabac

// Encoder is the arithmetic encoder matching Engine. It exists so that
// streams with a known bin sequence can be produced for tests and for the
// vvcres self-check; it makes no rate-distortion decisions.
type Encoder struct {
	low              uint32
	rng              uint32
	bitsLeft         int
	bufferedByte     uint32
	numBufferedBytes int

	out    []byte
	acc    uint64 // pending output bits, MSB first
	accLen int
}

// NewEncoder creates an Encoder with an empty output buffer.
func NewEncoder() *Encoder {
	enc := &Encoder{}
	enc.Reset()
	return enc
}

// Reset starts a new entry, keeping the output buffer's capacity.
func (enc *Encoder) Reset() {
	enc.low = 0
	enc.rng = 510
	enc.bitsLeft = 23
	enc.bufferedByte = 0xff
	enc.numBufferedBytes = 0
	enc.out = enc.out[:0]
	enc.acc = 0
	enc.accLen = 0
}

// EncodeBin codes bin with context c, adapting c exactly like DecodeBin.
func (enc *Encoder) EncodeBin(bin int, c *Context) {
	lps := c.lps(enc.rng)
	enc.rng -= lps
	if bin != c.MPS() {
		n := int(renormTable[lps>>3])
		enc.bitsLeft -= n
		enc.low += enc.rng
		enc.low <<= uint(n)
		enc.rng = lps << uint(n)
		enc.testAndWriteOut()
	} else if enc.rng < 256 {
		enc.low <<= 1
		enc.rng <<= 1
		enc.bitsLeft--
		enc.testAndWriteOut()
	}
	c.update(bin)
}

// EncodeBypass codes one equiprobable bin.
func (enc *Encoder) EncodeBypass(bin int) {
	enc.low <<= 1
	if bin != 0 {
		enc.low += enc.rng
	}
	enc.bitsLeft--
	enc.testAndWriteOut()
}

// EncodeBypassBits codes the n low bits of v, most significant first.
func (enc *Encoder) EncodeBypassBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		enc.EncodeBypass(int(v>>uint(i)) & 1)
	}
}

// EncodeTerminate codes a terminating bin.
func (enc *Encoder) EncodeTerminate(bin int) {
	enc.rng -= 2
	if bin != 0 {
		enc.low += enc.rng
		enc.low <<= 7
		enc.rng = 2 << 7
		enc.bitsLeft -= 7
	} else if enc.rng >= 256 {
		return
	} else {
		enc.low <<= 1
		enc.rng <<= 1
		enc.bitsLeft--
	}
	enc.testAndWriteOut()
}

// EncodeRemAbs codes v with the abs_remainder binarisation for Rice
// parameter rice.
func (enc *Encoder) EncodeRemAbs(v uint32, rice uint) {
	if v < remAbsCutoff<<rice {
		length := int(v>>rice) + 1
		enc.EncodeBypassBits(1<<uint(length)-2, length)
		enc.EncodeBypassBits(v&(1<<rice-1), int(rice))
		return
	}
	const maxPrefixLength = 32 - remAbsCutoff - log2TransformRange
	codeValue := v>>rice - remAbsCutoff
	prefixLength := 0
	suffixLength := 0
	if codeValue >= 1<<maxPrefixLength-1 {
		prefixLength = maxPrefixLength
		suffixLength = log2TransformRange
	} else {
		for codeValue > uint32(2<<uint(prefixLength))-2 {
			prefixLength++
		}
		suffixLength = prefixLength + int(rice) + 1
	}
	total := prefixLength + remAbsCutoff
	enc.EncodeBypassBits(1<<uint(total)-1, total)
	suffix := (codeValue-(1<<uint(prefixLength)-1))<<rice | v&(1<<rice-1)
	enc.EncodeBypassBits(suffix, suffixLength)
}

// EncodeTruncatedUnary codes v in [0, maxSymbol] as bypass truncated unary.
func (enc *Encoder) EncodeTruncatedUnary(v, maxSymbol int) {
	for i := 0; i < v; i++ {
		enc.EncodeBypass(1)
	}
	if v < maxSymbol {
		enc.EncodeBypass(0)
	}
}

// EncodeTruncatedBinary codes v in [0, n) as bypass truncated binary.
func (enc *Encoder) EncodeTruncatedBinary(v, n int) {
	if n <= 1 {
		return
	}
	k := 0
	for 2<<uint(k) <= n {
		k++
	}
	u := 1<<uint(k+1) - n
	if v < u {
		enc.EncodeBypassBits(uint32(v), k)
		return
	}
	enc.EncodeBypassBits(uint32(v+u), k+1)
}

func (enc *Encoder) testAndWriteOut() {
	if enc.bitsLeft < 12 {
		enc.writeOut()
	}
}

func (enc *Encoder) writeOut() {
	leadByte := enc.low >> uint(24-enc.bitsLeft)
	enc.bitsLeft += 8
	enc.low &= 0xffffffff >> uint(enc.bitsLeft)
	if leadByte == 0xff {
		enc.numBufferedBytes++
		return
	}
	if enc.numBufferedBytes > 0 {
		carry := leadByte >> 8
		b := enc.bufferedByte + carry
		enc.bufferedByte = leadByte & 0xff
		enc.writeBits(b, 8)
		b = (0xff + carry) & 0xff
		for enc.numBufferedBytes > 1 {
			enc.writeBits(b, 8)
			enc.numBufferedBytes--
		}
		return
	}
	enc.numBufferedBytes = 1
	enc.bufferedByte = leadByte
}

// Finish flushes the arithmetic coder state. It does not code a terminating
// bin; Close does.
func (enc *Encoder) Finish() {
	if enc.low>>uint(32-enc.bitsLeft) != 0 {
		enc.writeBits(enc.bufferedByte+1, 8)
		for enc.numBufferedBytes > 1 {
			enc.writeBits(0x00, 8)
			enc.numBufferedBytes--
		}
		enc.low -= 1 << uint(32-enc.bitsLeft)
	} else {
		if enc.numBufferedBytes > 0 {
			enc.writeBits(enc.bufferedByte, 8)
		}
		for enc.numBufferedBytes > 1 {
			enc.writeBits(0xff, 8)
			enc.numBufferedBytes--
		}
	}
	enc.writeBits(enc.low>>8, 24-enc.bitsLeft)
}

// Close ends the entry the way a slice segment ends: a terminating 1 bin,
// the coder flush, then the stop bit and zero alignment. It returns the
// entry bytes, which stay valid until the next Reset.
func (enc *Encoder) Close() []byte {
	enc.EncodeTerminate(1)
	enc.Finish()
	enc.writeBits(1, 1)
	if enc.accLen > 0 {
		enc.writeBits(0, 8-enc.accLen)
	}
	return enc.out
}

// Bytes returns the bytes written so far.
func (enc *Encoder) Bytes() []byte {
	return enc.out
}

func (enc *Encoder) writeBits(v uint32, n int) {
	if n <= 0 {
		return
	}
	enc.acc = enc.acc<<uint(n) | uint64(v)&(1<<uint(n)-1)
	enc.accLen += n
	for enc.accLen >= 8 {
		enc.accLen -= 8
		enc.out = append(enc.out, byte(enc.acc>>uint(enc.accLen)))
	}
	enc.acc &= 1<<uint(enc.accLen) - 1
}

