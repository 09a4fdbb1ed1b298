package pfid

// alphabet is the Crockford Base32 encoding table, symbol value to
// character. i, l, o and u are excluded per Crockford convention.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// invalidSymbol marks bytes outside the alphabet in the decoding LUT.
const invalidSymbol = 0xFF

// symbols is the decoding LUT, character to symbol value. Uppercase letters
// decode to the same value as their lowercase forms.
var symbols [256]byte

func init() {
	for i := range symbols {
		symbols[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		symbols[c] = byte(i)
		if c >= 'a' && c <= 'z' {
			symbols[c-'a'+'A'] = byte(i)
		}
	}
}
