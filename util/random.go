package util

import (
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt returns a random integer in [min, max].
func RandomInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// RandomString returns a random lowercase string of n characters.
func RandomString(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomClassName returns a plausible flat utility class name, e.g.
// "hover:bqf-xk" or "wdt-4". It never contains parens or whitespace, so it is
// safe to use wherever an already expanded class name is expected.
func RandomClassName() string {
	var sb strings.Builder

	// optional variant prefix
	if RandomInt(0, 1) == 1 {
		sb.WriteString(RandomString(RandomInt(2, 8)))
		sb.WriteByte(':')
	}

	sb.WriteString(RandomString(RandomInt(1, 10)))
	sb.WriteByte('-')

	// numeric or keyword suffix
	if RandomInt(0, 1) == 1 {
		sb.WriteByte(byte('0' + RandomInt(0, 9)))
	} else {
		sb.WriteString(RandomString(RandomInt(1, 6)))
	}

	return sb.String()
}
