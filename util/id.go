package util

import (
	"math/rand"
	"time"
)

const runIDLength = 8

var seededRand = newSeededRand()

func newSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewRunID returns a short label used to correlate the log lines of one
// harness run.
func NewRunID() string {
	return RandomID(runIDLength)
}

func RandomID(l int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, l)
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}
	return string(b)
}
