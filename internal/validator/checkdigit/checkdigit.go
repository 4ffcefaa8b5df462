// Package checkdigit implements the two check-digit algorithms required by
// the Argentine and Paraguayan customs authorities: the mod-11 fiscal
// identifier check (CUIT/RUC) and the ISO 6346 container number check.
// Both are pure functions; the customs webservices reject any identifier
// whose check digit does not match, so the arithmetic here must be exact.
package checkdigit

import "strings"

// fiscalWeights is the fixed weight vector applied to the first 10 digits
// of an 11-digit fiscal identifier.
var fiscalWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// NormalizeFiscalID strips every non-digit character from a raw fiscal
// identifier (e.g. "30-12345678-6" -> "30123456786").
func NormalizeFiscalID(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateFiscalID reports whether a raw fiscal identifier carries a correct
// mod-11 check digit. Non-digit characters are stripped first; anything that
// does not normalize to exactly 11 digits fails.
func ValidateFiscalID(raw string) bool {
	id := NormalizeFiscalID(raw)
	if len(id) != 11 {
		return false
	}
	sum := 0
	for i := 0; i < 10; i++ {
		sum += int(id[i]-'0') * fiscalWeights[i]
	}
	expected := FiscalCheckDigit(sum)
	return int(id[10]-'0') == expected
}

// FiscalCheckDigit derives the expected check digit from the weighted sum of
// the first 10 digits.
func FiscalCheckDigit(weightedSum int) int {
	remainder := weightedSum % 11
	if remainder < 2 {
		return remainder
	}
	return 11 - remainder
}

// ComputeFiscalCheckDigit returns the check digit for a 10-digit prefix, or
// -1 if the prefix is not exactly 10 digits.
func ComputeFiscalCheckDigit(prefix string) int {
	if len(prefix) != 10 {
		return -1
	}
	sum := 0
	for i := 0; i < 10; i++ {
		c := prefix[i]
		if c < '0' || c > '9' {
			return -1
		}
		sum += int(c-'0') * fiscalWeights[i]
	}
	return FiscalCheckDigit(sum)
}

// letterValue maps an owner-code letter to its ISO 6346 numeric value.
// Values that are multiples of 11 are skipped by the standard; the uniform
// decrement over [11,22] reproduces the mapping used by the authorities.
func letterValue(c byte) int {
	v := int(c) - 55
	if v >= 11 && v <= 22 {
		v--
	}
	return v
}

// ValidateContainer reports whether an 11-character container number carries
// a correct ISO 6346 check digit. The caller is expected to have verified the
// ^[A-Z]{4}[0-9]{7}$ shape; malformed input fails here as well.
func ValidateContainer(containerNumber string) bool {
	if len(containerNumber) != 11 {
		return false
	}
	for i := 0; i < 4; i++ {
		if containerNumber[i] < 'A' || containerNumber[i] > 'Z' {
			return false
		}
	}
	for i := 4; i < 11; i++ {
		if containerNumber[i] < '0' || containerNumber[i] > '9' {
			return false
		}
	}
	return int(containerNumber[10]-'0') == ComputeContainerCheckDigit(containerNumber[:10])
}

// ComputeContainerCheckDigit calculates the ISO 6346 check digit for the
// 10-character owner-code-plus-serial prefix. The multiplier doubles at each
// position (1, 2, 4, ..., 512); a result of 10 is treated as 0.
func ComputeContainerCheckDigit(prefix string) int {
	sum := 0
	multiplier := 1
	for i := 0; i < 10; i++ {
		var v int
		if i < 4 {
			v = letterValue(prefix[i])
		} else {
			v = int(prefix[i] - '0')
		}
		sum += v * multiplier
		multiplier *= 2
	}
	calculated := sum % 11
	if calculated == 10 {
		calculated = 0
	}
	return calculated
}
