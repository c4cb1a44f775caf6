package palette

import "strings"

// ParseHex parses #RGB or #RRGGBB.
func ParseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return 0, 0, 0, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, valid := nibble(hex[i]); !valid {
			return 0, 0, 0, false
		}
	}
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		r = hexNibble(hex[0]) * 17
		g = hexNibble(hex[1]) * 17
		b = hexNibble(hex[2]) * 17
	case 6:
		r = hexNibble(hex[0])<<4 + hexNibble(hex[1])
		g = hexNibble(hex[2])<<4 + hexNibble(hex[3])
		b = hexNibble(hex[4])<<4 + hexNibble(hex[5])
	default:
		return 0, 0, 0, false
	}
	return r, g, b, true
}

// Float3 parses a hex colour into normalized rgb.
func Float3(s string) ([3]float32, bool) {
	r, g, b, ok := ParseHex(s)
	if !ok {
		return [3]float32{}, false
	}
	return [3]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255}, true
}

func hexNibble(c byte) uint8 {
	v, _ := nibble(c)
	return v
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
