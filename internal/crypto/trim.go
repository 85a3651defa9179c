package crypto

// TrimTrailingZeros returns b without its trailing 0x00 bytes. Interior
// zero bytes are kept. The returned slice aliases b.
func TrimTrailingZeros(b []byte) []byte {
	i := len(b) - 1
	for i >= 0 && b[i] == 0 {
		i--
	}
	return b[:i+1]
}

// PadZeros returns a copy of b extended with 0x00 bytes to the next multiple
// of block. The result is never shorter than one block.
func PadZeros(b []byte, block int) []byte {
	n := block
	if len(b) > block {
		n = (len(b) + block - 1) / block * block
	}

	out := make([]byte, n)
	copy(out, b)
	return out
}
