package rnokpp

// weights are applied to digits 0-8.
var weights = [checkPos]int{-1, 5, 7, 9, 4, 6, 10, 5, 7}

// ChecksumDigit computes the check digit from positions 0-8 of id.
// Position 9 is ignored. The result is always in 0-9.
func ChecksumDigit(id ID) int {
	return checksum(id)
}

func checksum(id ID) int {
	sum := 0
	for i, w := range weights {
		sum += id.Digit(i) * w
	}
	// The -1 weight can make sum negative; keep the remainder in 0-10.
	r := ((sum % 11) + 11) % 11
	if r == 10 {
		return 0
	}
	return r
}

// Valid reports whether the stored check digit matches ChecksumDigit.
func (id ID) Valid() bool {
	return checksum(id) == id.CheckDigit()
}
