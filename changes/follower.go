package changes

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"
)

// Follower is the public entry point for consuming a change feed: a
// constructor that validates once, plus two ways to drive the underlying
// Iterator — StartOneOff for a single finite pass, Start for a resumable
// listen that can be stopped and restarted.
type Follower struct {
	client            cloudantv1.ClientService
	params            *cloudantv1.PostChangesOptions
	tolerance         ErrorTolerance
	clientReadTimeout int64
	logger            logrus.FieldLogger
	opts              []Option

	mu      sync.Mutex
	current *Iterator
}

// NewFollower validates params and captures the suppression policy.
// clientReadTimeoutMS is the read timeout configured on the caller's HTTP
// client; it must be large enough to receive a longpoll response before
// the transport itself gives up.
func NewFollower(client cloudantv1.ClientService, params *cloudantv1.PostChangesOptions, clientReadTimeoutMS int64, tolerance ErrorTolerance, opts ...Option) (*Follower, error) {
	if err := Validate(params); err != nil {
		return nil, err
	}
	if clientReadTimeoutMS < MinClientTimeoutMS {
		return nil, invalidArgf("To use ChangesFollower the client read timeout must be at least %d ms. The client read timeout is %d ms.", MinClientTimeoutMS, clientReadTimeoutMS)
	}
	s := newSettings(opts...)
	return &Follower{
		client:            client,
		params:            params,
		tolerance:         tolerance,
		clientReadTimeout: clientReadTimeoutMS,
		logger:            s.logger,
		opts:              opts,
	}, nil
}

// StartOneOff reads the changes feed from since (or from the beginning
// if params carries no Since) through to the current end of the log and
// stops. It may not be called while another feed from this Follower is
// already running.
func (f *Follower) StartOneOff(ctx context.Context) (<-chan cloudantv1.ChangesResultItem, <-chan error, error) {
	return f.start(ctx, FiniteMode)
}

// Start long-polls indefinitely until the context is cancelled or Stop is
// called.
func (f *Follower) Start(ctx context.Context) (<-chan cloudantv1.ChangesResultItem, <-chan error, error) {
	return f.start(ctx, ListenMode)
}

func (f *Follower) start(ctx context.Context, mode Mode) (<-chan cloudantv1.ChangesResultItem, <-chan error, error) {
	f.mu.Lock()
	if f.current != nil && f.current.HasNext() {
		f.mu.Unlock()
		return nil, nil, &IllegalStateError{Message: "Cannot start a feed that has already started."}
	}
	it := NewIterator(f.client, f.params, mode, f.tolerance, f.opts...)
	f.current = it
	f.mu.Unlock()

	f.logger.WithField("mode", mode.String()).Info("changes: follower started")

	items := make(chan cloudantv1.ChangesResultItem, 1)
	errs := make(chan error, 1)

	go func() {
		defer close(items)
		defer close(errs)
		for it.HasNext() {
			batch, err := it.Next(ctx)
			if err != nil {
				errs <- err
				return
			}
			if batch == nil {
				f.logger.Info("changes: follower stopped")
				return
			}
			for _, row := range batch.Results {
				select {
				case items <- row:
				case <-ctx.Done():
					f.logger.Info("changes: follower stopped")
					return
				}
			}
		}
		f.logger.Info("changes: iterator exhausted")
	}()

	return items, errs, nil
}

// Stop terminates the currently running feed. It fails with
// IllegalStateError if no feed has ever been started on this Follower.
func (f *Follower) Stop() error {
	f.mu.Lock()
	it := f.current
	f.mu.Unlock()
	if it == nil {
		return &IllegalStateError{Message: "Cannot stop a feed that is not running."}
	}
	it.Stop()
	f.logger.Info("changes: follower stopped")
	return nil
}
