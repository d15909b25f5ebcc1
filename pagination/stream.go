package pagination

// PageEvent is one element of a page stream: either a page of rows or
// a terminal error.
type PageEvent struct {
	Page []Row
	Err  error
}

// RowEvent is one element of a row stream.
type RowEvent struct {
	Row Row
	Err error
}

// PageStream returns a back-pressured, object-mode stream of pages
//: the channel is unbuffered, so the producer blocks
// until the consumer takes each page, propagating slow consumption
// into slower polling exactly as a highWaterMark=1 stream would.
func (p *Pagination) PageStream() (<-chan PageEvent, error) {
	it, err := p.newIterator()
	if err != nil {
		return nil, err
	}
	out := make(chan PageEvent)
	go func() {
		defer close(out)
		for it.HasNext() {
			page, err := it.Next()
			if err != nil {
				out <- PageEvent{Err: err}
				return
			}
			out <- PageEvent{Page: page}
		}
	}()
	return out, nil
}

// RowStream is the row-flattened counterpart of PageStream.
func (p *Pagination) RowStream() (<-chan RowEvent, error) {
	rows, err := p.Rows()
	if err != nil {
		return nil, err
	}
	out := make(chan RowEvent)
	go func() {
		defer close(out)
		for {
			row, ok, err := rows.Next()
			if err != nil {
				out <- RowEvent{Err: err}
				return
			}
			if !ok {
				return
			}
			out <- RowEvent{Row: row}
		}
	}()
	return out, nil
}
