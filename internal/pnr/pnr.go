// Package pnr generates the short confirmation codes handed to
// passengers. Codes are uniform pseudo-random and not checked against
// previously issued ones.
package pnr

import "math/rand/v2"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const codeLen = 6

func Generate() string {
	b := make([]byte, codeLen)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
