// Package versions compares Docker API version strings of the form "1.40".
//
// Components are compared numerically, so "1.9" sorts before "1.40".
package versions

import (
	"strconv"
	"strings"
)

// LessThan reports whether v is an older API version than other.
func LessThan(v, other string) bool {
	return compare(v, other) < 0
}

// GreaterThan reports whether v is a newer API version than other.
func GreaterThan(v, other string) bool {
	return compare(v, other) > 0
}

// GreaterThanOrEqualTo reports whether v is at least API version other.
func GreaterThanOrEqualTo(v, other string) bool {
	return compare(v, other) >= 0
}

func compare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		var ai, bi int
		if i < len(as) {
			ai, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bi, _ = strconv.Atoi(bs[i])
		}
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
	}
	return 0
}
