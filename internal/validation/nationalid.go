package validation

// Weights applied per payload digit position. The scheme pairs weights[i]
// with digit i, sums the products plus a fixed offset, and takes the result
// mod 11 with 10 folding to 0.
var weights = [10]int{29, 27, 23, 19, 17, 29, 27, 23, 19, 247}

const offset = 460

// ValidNationalID reports whether id is a structurally valid 11-digit
// corporate national identifier whose last digit matches the computed
// check digit. Malformed input returns false, never an error.
func ValidNationalID(id string) bool {
	if len(id) != 11 {
		return false
	}

	check := int(id[10]) - '0'
	if check < 0 || check > 9 {
		return false
	}

	expected, ok := checksum(id[:10])
	if !ok {
		return false
	}

	return expected == check
}

// CheckDigit returns the one check digit that makes the given 10-digit
// payload valid. ok is false when the payload is not exactly ten decimal
// digits.
func CheckDigit(payload string) (digit int, ok bool) {
	if len(payload) != 10 {
		return 0, false
	}
	return checksum(payload)
}

func checksum(payload string) (int, bool) {
	total := offset

	for i := 0; i < 10; i++ {
		d := int(payload[i]) - '0'
		if d < 0 || d > 9 {
			return 0, false
		}
		total += d * weights[i]
	}

	remainder := total % 11
	if remainder == 10 {
		remainder = 0
	}

	return remainder, true
}
