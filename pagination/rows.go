package pagination

// RowIterator flattens a PageIterator's pages into individual rows
// -> lazy sequence of individual rows (flattened)").
type RowIterator struct {
	pages PageIterator
	buf   []Row
	idx   int
}

// Next returns the next row, or ok=false once the underlying page
// iterator is exhausted.
func (r *RowIterator) Next() (row Row, ok bool, err error) {
	for r.idx >= len(r.buf) {
		if !r.pages.HasNext() {
			return nil, false, nil
		}
		rows, err := r.pages.Next()
		if err != nil {
			return nil, false, err
		}
		r.buf = rows
		r.idx = 0
		if len(rows) == 0 && !r.pages.HasNext() {
			return nil, false, nil
		}
	}
	row = r.buf[r.idx]
	r.idx++
	return row, true, nil
}
