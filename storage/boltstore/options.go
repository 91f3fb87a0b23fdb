// SPDX-License-Identifier: MIT

package boltstore

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("boltstore: invalid option supplied")

// DefaultCacheSize is the number of decoded rows kept per table.
const DefaultCacheSize = 4096

// Option configures Open.
type Option func(*options)

type options struct {
	autoFlush bool
	cacheSize int
	timeout   time.Duration
	logger    logrus.FieldLogger
	err       error
}

func defaultOptions() options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return options{
		autoFlush: true,
		cacheSize: DefaultCacheSize,
		timeout:   time.Second,
		logger:    l,
	}
}

// WithAutoFlush sets the initial auto-flush mode.
func WithAutoFlush(enabled bool) Option {
	return func(o *options) { o.autoFlush = enabled }
}

// WithCacheSize sets the per-table LRU capacity; 0 disables caching.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: cache size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.cacheSize = n
	}
}

// WithOpenTimeout bounds the wait for the file lock held by another process.
func WithOpenTimeout(d time.Duration) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: timeout cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.timeout = d
	}
}

// WithLogger injects a logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
