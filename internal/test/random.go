package test

import (
	"math/rand"
	"sync"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// processorIDLength matches the random suffix of processor issued ids, e.g. order_EKwxwAgItmmXdp.
const processorIDLength = 14

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomOrderID returns an id shaped like a processor order id.
func RandomOrderID() string {
	return "order_" + randomSuffix(processorIDLength)
}

// RandomPaymentID returns an id shaped like a processor payment id.
func RandomPaymentID() string {
	return "pay_" + randomSuffix(processorIDLength)
}

func randomSuffix(length int) string {
	rngMu.Lock()
	defer rngMu.Unlock()
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = idAlphabet[rng.Intn(len(idAlphabet))]
	}
	return string(buf)
}
