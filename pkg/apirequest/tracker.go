package apirequest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/uikit/pkg/async"
	"github.com/dmitrymomot/uikit/pkg/logger"
	"github.com/dmitrymomot/uikit/pkg/requestid"
)

// Tracker performs HTTP requests against a default request description and
// tracks the loading/success/error state of the most recent one.
// Zero value is not usable; use New to create instances.
type Tracker[T any] struct {
	defaults Params

	client          *http.Client
	logger          *slog.Logger
	maxResponseSize int64
	userAgent       string

	mu    sync.RWMutex
	state State[T]
	// pending holds snapshots not yet delivered to subscribers, in the
	// order the changes were made. notifying is set while one goroutine
	// drains it. Both are guarded by mu.
	pending   []State[T]
	notifying bool

	subMu  sync.Mutex
	subs   []subscriber[T]
	nextID int
}

type subscriber[T any] struct {
	id int
	fn func(State[T])
}

// New creates a tracker for responses decoded into T.
// Missing method and headers default to GET and Content-Type: application/json.
func New[T any](defaults Params, opts ...TrackerOption) *Tracker[T] {
	cfg := DefaultConfig()
	o := &trackerOptions{
		logger:          logger.Nop(),
		maxResponseSize: cfg.MaxResponseSize,
		userAgent:       cfg.UserAgent,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = NewHTTPClient(cfg)
	}

	return &Tracker[T]{
		defaults:        defaults.withDefaults(),
		client:          o.client,
		logger:          o.logger.With(logger.Component("apirequest")),
		maxResponseSize: o.maxResponseSize,
		userAgent:       o.userAgent,
	}
}

// Execute starts one request and returns immediately.
//
// Before returning it sets Loading and clears Success and Error. The request
// runs in its own goroutine; when it completes, the result fields and
// Loading=false are written together. opts override the defaults for this
// call only. A request that cannot be built (bad URL, unencodable body)
// settles before Execute returns and its future is already complete.
//
// Overlapping calls are not cancelled or serialised: each one settles the
// state when it finishes, so the last to finish wins. Callers that care must
// avoid starting a call while IsLoading reports true.
//
// The returned future resolves to the decoded body or the error that was
// recorded in the state; it may be ignored.
func (t *Tracker[T]) Execute(ctx context.Context, opts ...Option) *async.Future[T] {
	t.update(func(s *State[T]) {
		s.Loading = true
		s.Success = false
		s.Error = ""
	})

	start := time.Now()
	params := t.defaults.merge(opts...)
	ctx, reqID := requestid.Ensure(ctx)

	req, err := t.prepare(ctx, params, reqID)
	if err != nil {
		var zero T
		t.fail(ctx, params, 0, start, err)
		return async.Resolved(zero, err)
	}

	return async.Go(ctx, func(ctx context.Context) (T, error) {
		t.logger.DebugContext(ctx, "request started",
			logger.Method(params.Method),
			logger.URL(params.URL),
		)

		data, status, err := t.fetch(req)
		if err != nil {
			var zero T
			t.fail(ctx, params, status, start, err)
			return zero, err
		}

		t.update(func(s *State[T]) {
			s.Data = &data
			s.Success = true
			s.Error = ""
			s.StatusCode = status
			s.Loading = false
		})
		t.logger.DebugContext(ctx, "request succeeded",
			logger.Method(params.Method),
			logger.URL(params.URL),
			logger.StatusCode(status),
			logger.Duration(time.Since(start)),
		)
		return data, nil
	})
}

// fail settles the state with err and logs it.
func (t *Tracker[T]) fail(ctx context.Context, p Params, status int, start time.Time, err error) {
	t.update(func(s *State[T]) {
		s.Error = err.Error()
		s.Success = false
		s.StatusCode = status
		s.Loading = false
	})
	t.logger.WarnContext(ctx, "request failed",
		logger.Method(p.Method),
		logger.URL(p.URL),
		logger.StatusCode(status),
		logger.Duration(time.Since(start)),
		logger.Error(err),
	)
}

// Do is Execute followed by Await.
func (t *Tracker[T]) Do(ctx context.Context, opts ...Option) (T, error) {
	return t.Execute(ctx, opts...).Await()
}

// State returns a copy of the current state.
func (t *Tracker[T]) State() State[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.snapshot()
}

func (t *Tracker[T]) IsLoading() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.Loading
}

func (t *Tracker[T]) IsSuccess() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.Success
}

func (t *Tracker[T]) HasError() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.HasError()
}

// Params returns a copy of the default request description.
func (t *Tracker[T]) Params() Params {
	return t.defaults.clone()
}

// Subscribe registers fn to receive a snapshot after every state change.
// Snapshots arrive one at a time in the order the changes were made, so the
// last one fn sees matches State once the tracker is idle. fn may run on a
// goroutine other than the one that made the change and must not block for
// long. The returned func removes the subscription.
func (t *Tracker[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	t.subMu.Lock()
	id := t.nextID
	t.nextID++
	t.subs = append(t.subs, subscriber[T]{id: id, fn: fn})
	t.subMu.Unlock()

	return func() {
		t.subMu.Lock()
		defer t.subMu.Unlock()
		for i, s := range t.subs {
			if s.id == id {
				t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
				return
			}
		}
	}
}

// update applies fn as one atomic state transition and queues the snapshot
// for subscribers. Whichever goroutine finds the queue idle drains it, so
// concurrent transitions are delivered in the order they were made.
func (t *Tracker[T]) update(fn func(*State[T])) {
	t.mu.Lock()
	fn(&t.state)
	t.pending = append(t.pending, t.state.snapshot())
	if t.notifying {
		t.mu.Unlock()
		return
	}
	t.notifying = true
	t.mu.Unlock()

	t.drain()
}

func (t *Tracker[T]) drain() {
	done := false
	defer func() {
		// A panicking subscriber must not leave the queue marked busy.
		if !done {
			t.mu.Lock()
			t.notifying = false
			t.mu.Unlock()
		}
	}()

	for {
		t.mu.Lock()
		if len(t.pending) == 0 {
			t.notifying = false
			t.mu.Unlock()
			done = true
			return
		}
		snap := t.pending[0]
		t.pending[0] = State[T]{}
		t.pending = t.pending[1:]
		t.mu.Unlock()

		t.subMu.Lock()
		subs := slices.Clone(t.subs)
		t.subMu.Unlock()

		for _, s := range subs {
			s.fn(snap)
		}
	}
}

// prepare builds the outgoing request. A panic while encoding the body is
// reported as an error wrapping async.ErrPanic.
func (t *Tracker[T]) prepare(ctx context.Context, p Params, reqID string) (req *http.Request, err error) {
	defer func() {
		if r := recover(); r != nil {
			req, err = nil, fmt.Errorf("%w: %v", async.ErrPanic, r)
		}
	}()

	target, err := p.target()
	if err != nil {
		return nil, err
	}

	body, err := p.body()
	if err != nil {
		return nil, err
	}

	req, err = http.NewRequestWithContext(ctx, p.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	for k, v := range p.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("User-Agent") == "" && t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if req.Header.Get(requestid.Header) == "" {
		req.Header.Set(requestid.Header, reqID)
	}

	return req, nil
}

// fetch performs a single request and decodes the body.
// The returned status is 0 when no response was received. A panic in the
// transport or in T's decoder is reported as an error wrapping
// async.ErrPanic, so the caller can still settle the state.
func (t *Tracker[T]) fetch(req *http.Request) (out T, status int, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out, err = zero, fmt.Errorf("%w: %v", async.ErrPanic, r)
		}
	}()

	resp, err := t.client.Do(req)
	if err != nil {
		return out, 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a bounded amount so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return out, resp.StatusCode, &StatusError{StatusCode: resp.StatusCode}
	}

	status = resp.StatusCode
	raw, err := io.ReadAll(io.LimitReader(resp.Body, t.maxResponseSize+1))
	if err != nil {
		return out, status, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	if int64(len(raw)) > t.maxResponseSize {
		return out, status, fmt.Errorf("%w: %w: limit is %d bytes", ErrDecodeResponse, ErrResponseTooLarge, t.maxResponseSize)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, status, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return out, status, nil
}
