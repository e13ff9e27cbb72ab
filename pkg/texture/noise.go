package texture

// Hash multipliers. Large odd constants chosen for bit mixing, not for any
// statistical property.
const (
	hashX   = 374761393
	hashY   = 668265263
	hashS   = 1597463007
	hashMix = 1274126177
)

// Hash returns a deterministic pseudo-random byte for the coordinate pair and
// seed. It has no state; the same inputs always give the same output.
//
// The arithmetic wraps at 64 bits. Only the low 24 bits of the final product
// feed the result, and those are unaffected by the wrap.
func Hash(x, y, seed int) uint8 {
	n := int64(x)*hashX + int64(y)*hashY + int64(seed)*hashS
	n = (n ^ (n >> 13)) * hashMix
	return uint8((n ^ (n >> 16)) & 0xFF)
}

// hash is Hash widened to int, the form every recipe consumes.
func hash(x, y, seed int) int {
	return int(Hash(x, y, seed))
}
