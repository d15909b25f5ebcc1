package changes

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"
)

// iteratorState names the long-poll state machine. It is recorded on
// each transition but never read — control flow is driven by the
// stopped flag and the cancellation channel, not by switching on this
// value.
type iteratorState string

const (
	stateConfiguring iteratorState = "CONFIGURING"
	stateRunning     iteratorState = "RUNNING"
	stateBackingOff  iteratorState = "BACKING_OFF"
	stateStopped     iteratorState = "STOPPED"
)

// Iterator is the lazy, finite-or-infinite sequence of change batches: a
// long-poll loop with adaptive batch sizing, transient-error suppression,
// and randomized exponential backoff.
type Iterator struct {
	client    cloudantv1.ClientService
	params    *cloudantv1.PostChangesOptions
	mode      Mode
	tolerance ErrorTolerance
	logger    logrus.FieldLogger

	mu             sync.Mutex
	state          iteratorState
	since          string
	userRemaining  *int64
	configuredSize int64
	pending        int64
	retry          int
	lastSuccess    time.Time
	stopped        bool

	cancelOnce sync.Once
	cancelCh   chan struct{}

	configureOnce sync.Once

	bo *backoff.ExponentialBackOff
}

// NewIterator constructs an Iterator over already-validated params. mode
// and tolerance are fixed for the iterator's lifetime.
func NewIterator(client cloudantv1.ClientService, params *cloudantv1.PostChangesOptions, mode Mode, tolerance ErrorTolerance, opts ...Option) *Iterator {
	s := newSettings(opts...)

	since := "0"
	if mode == ListenMode {
		since = "now"
	}
	if params.Since != nil {
		since = *params.Since
	}

	var userRemaining *int64
	if params.Limit != nil {
		v := *params.Limit
		userRemaining = &v
	}

	bo := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(100*time.Millisecond),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(LongpollTimeoutMS*time.Millisecond),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxElapsedTime(0),
	)

	return &Iterator{
		client:         client,
		params:         params,
		mode:           mode,
		tolerance:      tolerance,
		logger:         s.logger,
		state:          stateConfiguring,
		since:          since,
		userRemaining:  userRemaining,
		configuredSize: BatchSize,
		cancelCh:       make(chan struct{}),
		bo:             bo,
	}
}

// HasNext reports whether another call to Next may produce a batch.
// It starts true and becomes permanently false once the feed is stopped,
// exhausted (FINITE mode reaching pending==0), or the user limit budget
// is consumed.
func (it *Iterator) HasNext() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return !it.stopped
}

// Stop idempotently terminates the iterator: the second and later calls
// are no-ops.
func (it *Iterator) Stop() {
	it.mu.Lock()
	it.stopped = true
	it.state = stateStopped
	it.mu.Unlock()
	it.cancelOnce.Do(func() { close(it.cancelCh) })
}

// configure performs a one-shot GetDatabaseInformation call: when
// IncludeDocs is set, size the request limit so a batch of documents
// stays near a 5MiB budget.
func (it *Iterator) configure() {
	if it.params.IncludeDocs == nil || !*it.params.IncludeDocs {
		return
	}
	info, _, err := it.client.GetDatabaseInformation(cloudantv1.NewGetDatabaseInformationOptions(it.params.Db))
	if err != nil {
		it.logger.WithError(err).Debug("changes: database information lookup failed, falling back to default batch size")
		return
	}
	if info.DocCount <= 0 || info.Sizes.External <= 0 {
		return
	}
	avgDocSize := float64(info.Sizes.External) / float64(info.DocCount)
	limit := int64(math.Floor(5 * 1024 * 1024 / (avgDocSize + 500)))
	if limit < 1 {
		limit = 1
	}
	it.configuredSize = limit
}

// Next advances the iterator by one step: a real batch, or — while a
// transient error is being suppressed — a synthetic empty batch that
// keeps the consumer's loop turning and carries the unchanged since as
// its LastSeq.
// Next must only be called while HasNext() is true.
func (it *Iterator) Next(ctx context.Context) (*cloudantv1.ChangesResult, error) {
	it.mu.Lock()
	if it.stopped {
		it.mu.Unlock()
		return nil, nil
	}
	it.mu.Unlock()

	// Yield once before issuing the long-poll request so a slow call
	// does not monopolize a cooperative scheduler; on Go's preemptive
	// goroutine scheduler this is close to a no-op.
	runtime.Gosched()

	it.configureOnce.Do(it.configure)

	it.mu.Lock()
	it.state = stateRunning
	effectiveLimit := it.configuredSize
	if it.userRemaining != nil && *it.userRemaining < effectiveLimit {
		effectiveLimit = *it.userRemaining
	}
	since := it.since
	retry := it.retry
	it.mu.Unlock()

	requestID := uuid.NewString()
	cloned := Clone(it.params, CloneOverrides{Mode: it.mode, Since: &since, Limit: &effectiveLimit})
	it.logger.WithField("request_id", requestID).WithField("since", since).WithField("limit", effectiveLimit).WithField("retry", retry).Debug("changes: issuing request")

	result, err, cancelled := it.race(ctx, cloned)
	if cancelled {
		it.mu.Lock()
		it.stopped = true
		it.state = stateStopped
		it.mu.Unlock()
		return nil, nil
	}

	if err != nil {
		return it.handleError(err)
	}

	it.mu.Lock()
	defer it.mu.Unlock()

	it.bo.Reset()
	it.retry = 0
	if it.tolerance.Mode == ToleranceTimer {
		it.lastSuccess = time.Now()
	}
	it.since = result.LastSeq
	it.pending = result.Pending

	if it.mode == FiniteMode && result.Pending == 0 {
		it.stopped = true
		it.state = stateStopped
		it.logger.Info("changes: iterator exhausted")
	}
	if it.userRemaining != nil {
		remaining := *it.userRemaining - int64(len(result.Results))
		it.userRemaining = &remaining
		if remaining <= 0 {
			it.stopped = true
			it.state = stateStopped
			it.logger.Info("changes: iterator exhausted (limit reached)")
		}
	}
	return result, nil
}

type changesCallResult struct {
	result *cloudantv1.ChangesResult
	err    error
}

// race issues the HTTP call in the background and races it against the
// cancellation channel Stop closes and the caller's context: the HTTP
// call may continue to completion in the background and be discarded.
func (it *Iterator) race(ctx context.Context, params *cloudantv1.PostChangesOptions) (*cloudantv1.ChangesResult, error, bool) {
	done := make(chan changesCallResult, 1)
	go func() {
		result, _, err := it.client.PostChanges(params)
		done <- changesCallResult{result: result, err: err}
	}()

	select {
	case <-it.cancelCh:
		return nil, nil, true
	case <-ctx.Done():
		return nil, nil, true
	case r := <-done:
		return r.result, r.err, false
	}
}

// handleError classifies an error by HTTP status and either propagates it
// (terminal, or transient-but-not-suppressed) or emits a synthetic empty
// batch after a randomized exponential backoff sleep (transient and
// suppressed).
func (it *Iterator) handleError(err error) (*cloudantv1.ChangesResult, error) {
	status := cloudantv1.StatusCode(err)
	if isTerminalStatus(status) {
		it.mu.Lock()
		it.stopped = true
		it.state = stateStopped
		it.mu.Unlock()
		it.logger.WithError(err).WithField("status", status).Error("changes: terminal error")
		return nil, err
	}

	it.mu.Lock()
	now := time.Now()
	suppress := it.tolerance.Suppress(now, it.lastSuccess)
	if !suppress {
		it.stopped = true
		it.state = stateStopped
		it.mu.Unlock()
		it.logger.WithError(err).Error("changes: transient error propagated (suppression window elapsed)")
		return nil, err
	}

	expDelay := it.bo.NextBackOff()
	it.retry++
	since := it.since
	pending := it.pending
	it.state = stateBackingOff
	it.mu.Unlock()

	delay := time.Duration(rand.Int63n(int64(expDelay))) + time.Millisecond

	it.logger.WithError(err).WithField("delay_ms", delay.Milliseconds()).Debug("changes: suppressing transient error")

	select {
	case <-time.After(delay):
	case <-it.cancelCh:
		it.mu.Lock()
		it.stopped = true
		it.state = stateStopped
		it.mu.Unlock()
		return nil, nil
	}

	return &cloudantv1.ChangesResult{Results: nil, LastSeq: since, Pending: pending}, nil
}

func isTerminalStatus(status int) bool {
	switch status {
	case 400, 401, 403, 404:
		return true
	default:
		return false
	}
}
