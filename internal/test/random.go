package test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomID returns a pseudo-random identifier of length between minLen and maxLen.
func RandomID(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen + randomIntn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomAmount returns a pseudo-random monetary amount with two decimal places below max units.
func RandomAmount(maxUnits int) decimal.Decimal {
	if maxUnits <= 0 {
		maxUnits = 1
	}
	cents := randomIntn(maxUnits * 100)
	return decimal.New(int64(cents), -2)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
