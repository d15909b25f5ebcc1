package pagination

// bookmarkCursor threads the server-issued bookmark between requests
//. It never over-requests: requestLimit is always the
// page size, and "fewer rows than requested" is the sole termination
// signal. For the find family, skip is honored only on the first page
// and cleared afterward.
type bookmarkCursor[T any] struct {
	setBookmark  func(bookmark string)
	clearSkip    func()
	clearsSkip   bool
	skipCleared  bool
}

func newBookmarkCursor[T any](setBookmark func(string), clearSkip func(), clearsSkip bool) *bookmarkCursor[T] {
	return &bookmarkCursor[T]{setBookmark: setBookmark, clearSkip: clearSkip, clearsSkip: clearsSkip}
}

func (c *bookmarkCursor[T]) requestLimit(pageSize int) int {
	return pageSize
}

func (c *bookmarkCursor[T]) advance(rows []T, meta any, pageSize int) ([]T, bool) {
	hasNext := len(rows) >= pageSize
	if hasNext {
		c.setBookmark(meta.(string))
		if c.clearsSkip && !c.skipCleared {
			c.clearSkip()
			c.skipCleared = true
		}
	}
	return rows, hasNext
}

func (c *bookmarkCursor[T]) takePendingError() error {
	return nil
}
