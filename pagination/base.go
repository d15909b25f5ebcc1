package pagination

import "github.com/sirupsen/logrus"

// cursorStrategy is the single-dispatch replacement for the inheritance
// hierarchy the design notes describe: a shared base iterator holds
// limit/hasNext bookkeeping, and each operation supplies one of these —
// either a bookmarkCursor or a keyCursor — to thread its own resume
// state between requests.
type cursorStrategy[T any] interface {
	// requestLimit returns the limit to send with the next request:
	// pageSize for bookmark iterators, pageSize+1 for key iterators'
	// n+1 look-ahead.
	requestLimit(pageSize int) int

	// advance trims the rows just fetched down to the delivered page,
	// mutates the params captured at construction so the following
	// request resumes correctly, and reports whether another page may
	// follow.
	advance(rows []T, meta any, pageSize int) (delivered []T, hasNext bool)

	// takePendingError returns and clears a boundary error recorded by
	// the previous advance call.
	takePendingError() error
}

// basePageIterator is the generic engine behind every one of the nine
// operation adapters: limit validation at construction,
// then a next() contract that issues one request per call and never
// retries internally — errors propagate with the cursor left
// untouched so a caller may retry.
type basePageIterator[T any] struct {
	pageSize int
	hasNext  bool
	cursor   cursorStrategy[T]
	setLimit func(int)
	execute  func() ([]T, any, error)
	logger   logrus.FieldLogger
}

func newBasePageIterator[T any](limit *int64, cursor cursorStrategy[T], setLimit func(int), execute func() ([]T, any, error), logger logrus.FieldLogger) (*basePageIterator[T], error) {
	pageSize := MaxLimit
	if limit != nil {
		l := int(*limit)
		if l < MinLimit || l > MaxLimit {
			return nil, invalidLimitError(l)
		}
		pageSize = l
	}
	if logger == nil {
		logger = newDiscardLogger()
	}
	return &basePageIterator[T]{
		pageSize: pageSize,
		hasNext:  true,
		cursor:   cursor,
		setLimit: setLimit,
		execute:  execute,
		logger:   logger,
	}, nil
}

func (b *basePageIterator[T]) HasNext() bool {
	return b.hasNext
}

func (b *basePageIterator[T]) Next() ([]T, error) {
	if err := b.cursor.takePendingError(); err != nil {
		b.logger.WithError(err).Error("pagination: boundary error")
		return nil, err
	}
	if !b.hasNext {
		return nil, nil
	}

	b.setLimit(b.cursor.requestLimit(b.pageSize))
	rows, meta, err := b.execute()
	if err != nil {
		b.logger.WithError(err).Error("pagination: request failed")
		return nil, err
	}

	delivered, hasNext := b.cursor.advance(rows, meta, b.pageSize)
	b.hasNext = hasNext
	return delivered, nil
}
