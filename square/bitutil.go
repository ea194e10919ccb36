package square

// Precalculated magic used to form indices for the bitScanLookup array.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// Precalculated lookup table of LSB indices for 64 uints.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// bitScan returns the index of the least significant set bit of bb.
// bb is assumed to be nonzero.
func bitScan(bb uint64) int { return bitScanLookup[bb&-bb*bitscanMagic>>58] }

// popLSB clears the least significant set bit of bb and returns its index,
// or -1 if bb is empty.
func popLSB(bb *uint64) int {
	if *bb == 0 {
		return -1
	}
	lsb := bitScan(*bb)
	*bb &= *bb - 1
	return lsb
}

// countBits returns the number of set bits in bb.
func countBits(bb uint64) int {
	var cnt int
	for bb > 0 {
		cnt++
		bb &= bb - 1
	}
	return cnt
}
