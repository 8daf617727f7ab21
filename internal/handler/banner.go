package handler

import (
	"sync"
	"time"
)

// Shortened by tests.
var bannerTTL = 3 * time.Second

// ErrorBanner holds the last error message shown on the home page. The
// message survives until shortly after someone has seen it: Show returns
// the current message and arms a one-shot timer that clears it three
// seconds later. A concurrent Set within that window loses to the timer.
type ErrorBanner struct {
	mu  sync.Mutex
	msg string
}

func NewErrorBanner() *ErrorBanner {
	return &ErrorBanner{}
}

func (b *ErrorBanner) Set(msg string) {
	b.mu.Lock()
	b.msg = msg
	b.mu.Unlock()
}

// Show returns the current message and schedules it to be cleared.
func (b *ErrorBanner) Show() string {
	b.mu.Lock()
	msg := b.msg
	b.mu.Unlock()

	time.AfterFunc(bannerTTL, func() {
		b.mu.Lock()
		b.msg = ""
		b.mu.Unlock()
	})

	return msg
}
