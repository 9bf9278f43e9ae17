package x_decode

//---------------------
// Enumeration
//---------------------

type partial struct {
	pos     int
	letters []byte
}

// Decodings lists the letter strings for every valid decoding of s,
// trying the single-digit group before the pair at each position. With
// limit > 0 at most limit results are returned. Validation and the
// empty / leading-zero cases follow NumDecodings.
func Decodings(s string, limit int) ([]string, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	out := []string{}
	if s == "" || s[0] == '0' {
		return out, nil
	}

	stack := []partial{{pos: 0}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.pos == len(s) {
			out = append(out, string(p.letters))
			if limit > 0 && len(out) >= limit {
				break
			}
			continue
		}

		// pair pushed first so the single-digit branch is explored first
		if p.pos+2 <= len(s) {
			if l, ok := Letter(s[p.pos : p.pos+2]); ok {
				stack = append(stack, partial{pos: p.pos + 2, letters: extend(p.letters, l)})
			}
		}
		if l, ok := Letter(s[p.pos : p.pos+1]); ok {
			stack = append(stack, partial{pos: p.pos + 1, letters: extend(p.letters, l)})
		}
	}
	return out, nil
}

// extend copies letters with l appended; partials must not share backing arrays.
func extend(letters []byte, l byte) []byte {
	next := make([]byte, len(letters)+1)
	copy(next, letters)
	next[len(letters)] = l
	return next
}
