package vin

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Length is the number of characters in a normalized VIN.
	Length = 17

	// CheckDigitIndex is the 0-based position of the check character.
	CheckDigitIndex = 8
)

// positionWeights holds the checksum weight of each VIN position. The check
// character itself carries weight 0.
var positionWeights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// letterValues maps 'A'..'Z' to their transliteration values. I, O and Q map
// to 0, which marks them as forbidden.
var letterValues = [26]int{
	1, 2, 3, 4, 5, 6, 7, 8, 0, // A-I
	1, 2, 3, 4, 5, 0, 7, 0, 9, // J-R
	2, 3, 4, 5, 6, 7, 8, 9, // S-Z
}

// Normalize uppercases raw using full Unicode case mapping and strips every character outside A-Z and 0-9.
// It fails with ErrMissingInput when raw is nil and with ErrWrongLength when
// the stripped result is not Length characters long.
func Normalize(raw *string) (string, error) {
	if raw == nil {
		return "", &Error{Kind: KindMissingInput}
	}
	return normalize(*raw)
}

func normalize(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	// Full case mapping, so ß becomes SS. A Caser holds state and is not
	// shared.
	for _, r := range cases.Upper(language.Und).String(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}

	normalized := sb.String()
	if len(normalized) != Length {
		return "", &Error{Kind: KindWrongLength, VIN: normalized}
	}
	return normalized, nil
}

// Checksum returns the weighted transliteration sum of vin modulo 11, a value
// in 0..10. The input is normalized first, so it fails the same way
// Normalize does, and with ErrIllegalCharacter for I, O or Q.
func Checksum(vin string) (int, error) {
	normalized, err := normalize(vin)
	if err != nil {
		return 0, err
	}
	return checksum(normalized)
}

// checksum expects a string of exactly Length bytes.
func checksum(vin string) (int, error) {
	sum := 0
	for i := range Length {
		value, ok := transliterate(vin[i])
		if !ok {
			return 0, &Error{Kind: KindIllegalCharacter, VIN: vin, Char: vin[i], Position: i}
		}
		sum += value * positionWeights[i]
	}
	return sum % 11, nil
}

// transliterate returns the checksum value of c and whether c is allowed.
func transliterate(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		v := letterValues[c-'A']
		return v, v != 0
	default:
		return 0, false
	}
}

// ChecksumChar returns the check character for vin: '0'..'9', or 'X' when
// the checksum is 10. Errors from Checksum are returned unchanged.
func ChecksumChar(vin string) (byte, error) {
	sum, err := Checksum(vin)
	if err != nil {
		return 0, err
	}
	return checkChar(sum), nil
}

func checkChar(sum int) byte {
	if sum == 10 {
		return 'X'
	}
	return byte('0' + sum)
}

// Validate reports whether raw is a VIN with a correct check digit.
//
// Malformed input is an error: nil input, a wrong length, a character
// without a transliteration value, or a check position holding something
// other than a digit or 'X'. A well formed VIN whose check digit simply does
// not match returns (false, nil).
func Validate(raw *string) (bool, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return false, err
	}

	sum, err := checksum(normalized)
	if err != nil {
		return false, err
	}

	claimed := normalized[CheckDigitIndex]
	if claimed != 'X' && (claimed < '0' || claimed > '9') {
		return false, &Error{Kind: KindIllegalCheckDigit, VIN: normalized, Char: claimed, Position: CheckDigitIndex}
	}

	return checkChar(sum) == claimed, nil
}

// IsValid is Validate with every error collapsed into false.
func IsValid(raw *string) bool {
	ok, err := Validate(raw)
	return err == nil && ok
}
