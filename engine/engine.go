// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine implements the action interpreter and its engine-entry
// wrapper: the top-level loop that walks a decoded action list, dispatches
// to the header editors and collaborators, and manages the deferred-action
// FIFO and recursion guard, per spec.md sections 4.6-4.7, 5, 6, and 7.
package engine

import (
	"errors"
	"io"
	"log"
	"math/rand"

	"golang.org/x/time/rate"

	"github.com/ovswitchdp/actionengine/deferred"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// ErrOOM is returned when a buffer operation fails to allocate. Aliases
// pbuf.ErrOutOfMemory so callers can errors.Is against either name.
var ErrOOM = pbuf.ErrOutOfMemory

// ErrLoop is returned when the per-executor recursion depth would exceed
// maxDepth.
var ErrLoop = errors.New("engine: packet loop detected")

// ErrInval is reserved for the control-plane validation layer and is never
// returned by this package, per spec.md section 6.
var ErrInval = errors.New("engine: invalid action (reserved)")

// maxDepth is the hard recursion bound from spec.md section 3.
const maxDepth = 4

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger rate-limited warnings are written to. Nil
// discards all log output.
func WithLogger(l *log.Logger) Option {
	return func(e *Executor) { e.logger.log = l }
}

// WithRateLimit overrides the warning rate limit. Default is one message
// per second with a burst of 1.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(e *Executor) { e.logger.limiter = rate.NewLimiter(r, burst) }
}

// WithRandomSource overrides SAMPLE's uniform random source. Default uses
// math/rand's package-level generator.
func WithRandomSource(r RandomSource) Option {
	return func(e *Executor) { e.rnd = r }
}

// WithDeferredErrorSink installs a callback invoked with each error
// encountered while draining the deferred FIFO. Per spec.md section 9's
// open question, the default behavior silently drops deferred errors,
// matching the original's documented (if dubious) semantics; a caller may
// opt into observing them instead without changing the primary Execute
// error, which always reflects only the outer list.
func WithDeferredErrorSink(sink func(error)) Option {
	return func(e *Executor) { e.deferredErrSink = sink }
}

type ratelimitedLogger struct {
	log     *log.Logger
	limiter *rate.Limiter
}

func (l *ratelimitedLogger) Warnf(format string, args ...interface{}) {
	if l.log == nil || !l.limiter.Allow() {
		return
	}
	l.log.Printf(format, args...)
}

type mathRandSource struct{}

func (mathRandSource) Uint32() uint32 { return rand.Uint32() }

// Executor runs the action interpreter for one CPU/goroutine. It is not
// safe for concurrent Execute calls: callers pin one Executor per polling
// worker, the Go equivalent of spec.md section 9's "bind to one OS thread
// for the duration of an entry."
type Executor struct {
	vports     VportTable
	upcaller   Upcaller
	classifier Classifier
	keyUpdater KeyUpdater

	level int
	queue deferred.Queue

	logger *ratelimitedLogger
	rnd    RandomSource

	deferredErrSink func(error)
}

// New constructs an Executor bound to the given collaborators.
func New(vports VportTable, upcaller Upcaller, classifier Classifier, keyUpdater KeyUpdater, opts ...Option) *Executor {
	e := &Executor{
		vports:     vports,
		upcaller:   upcaller,
		classifier: classifier,
		keyUpdater: keyUpdater,
		logger: &ratelimitedLogger{
			log:     log.New(io.Discard, "", 0),
			limiter: rate.NewLimiter(rate.Limit(1), 1),
		},
		rnd: mathRandSource{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Executor) warnf(format string, args ...interface{}) {
	e.logger.Warnf(format, args...)
}

func (e *Executor) deferredError(err error) {
	if err != nil && e.deferredErrSink != nil {
		e.deferredErrSink(err)
	}
}
