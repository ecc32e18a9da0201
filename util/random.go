package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max.
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomString generates a random string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomOwner generates a random owner name.
func RandomOwner() string {
	return RandomString(6)
}

// RandomURL generates a random http URL.
func RandomURL() string {
	return fmt.Sprintf("http://%s.example.com/%s", RandomString(8), RandomString(8))
}

// RandomTagName generates a random markup tag name.
func RandomTagName() string {
	return RandomString(4)
}

// RandomProfileName generates a random profile name.
func RandomProfileName() string {
	return fmt.Sprintf("profile_%s", RandomString(8))
}
