// Package x_decode counts and lists the ways a digit string decodes into
// letters under 1=A … 26=Z.
package x_decode

import (
	"github.com/rskv-p/kata/pkg/x_err"
)

//---------------------
// Counting
//---------------------

// NumDecodings returns how many ways s splits into one- and two-digit
// groups where each single digit is 1-9 and each pair is 10-26.
//
// An empty string or one starting with '0' has no decodings and returns
// 0 with a nil error. Any byte outside '0'-'9' is an InvalidArgument.
func NumDecodings(s string) (int, error) {
	if err := validate(s); err != nil {
		return 0, err
	}
	if s == "" || s[0] == '0' {
		return 0, nil
	}

	// prev2 = count[i-2], prev1 = count[i-1]; count[0] = count[1] = 1
	prev2, prev1 := 1, 1
	for i := 2; i <= len(s); i++ {
		cur := 0
		if s[i-1] != '0' {
			cur += prev1
		}
		if pairValid(s[i-2], s[i-1]) {
			cur += prev2
		}
		prev2, prev1 = prev1, cur
	}
	return prev1, nil
}

//---------------------
// Helpers
//---------------------

// validate rejects any byte that is not an ASCII digit.
func validate(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return x_err.InvalidArgument("non-digit %q at position %d", s[i], i)
		}
	}
	return nil
}

// pairValid reports whether the two digits a,b read as a number in [10, 26].
func pairValid(a, b byte) bool {
	n := int(a-'0')*10 + int(b-'0')
	return n >= 10 && n <= 26
}

// Letter maps a one- or two-digit group to its letter.
func Letter(group string) (byte, bool) {
	switch len(group) {
	case 1:
		if group[0] < '1' || group[0] > '9' {
			return 0, false
		}
		return 'A' + group[0] - '1', true
	case 2:
		if group[0] < '0' || group[0] > '9' || group[1] < '0' || group[1] > '9' {
			return 0, false
		}
		if !pairValid(group[0], group[1]) {
			return 0, false
		}
		n := int(group[0]-'0')*10 + int(group[1]-'0')
		return byte('A' + n - 1), true
	default:
		return 0, false
	}
}
