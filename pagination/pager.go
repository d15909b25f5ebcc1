package pagination

// pagerState tracks the NEW -> GET_NEXT|GET_ALL -> CONSUMED machine
// a pull-model pager runs through.
type pagerState int

const (
	pagerNew pagerState = iota
	pagerGetNext
	pagerGetAll
	pagerConsumed
)

// IteratorPager is the synchronous-looking pull model over a
// PageIterator. GetNext and GetAll may not be mixed on the same pager
// instance, and once the wrapped iterator is exhausted the pager is
// consumed and every further call fails.
type IteratorPager struct {
	it    PageIterator
	state pagerState
}

// NewIteratorPager wraps it in a fresh pager, starting in state NEW.
func NewIteratorPager(it PageIterator) *IteratorPager {
	return &IteratorPager{it: it, state: pagerNew}
}

// HasNext delegates to the wrapped iterator.
func (p *IteratorPager) HasNext() bool {
	return p.it.HasNext()
}

// GetNext advances one page. The call that first finds the wrapped
// iterator exhausted fails with "No more results available." and marks
// the pager consumed; any call after that fails with the consumed
// message instead.
func (p *IteratorPager) GetNext() ([]Row, error) {
	if p.state == pagerConsumed {
		return nil, &IllegalStateError{Message: "This pager has been consumed, use a new Pager."}
	}
	if p.state == pagerGetAll {
		return nil, &IllegalStateError{Message: "Cannot mix getAll() and getNext(), use only one method or get a new Pager."}
	}
	if !p.it.HasNext() {
		p.state = pagerConsumed
		return nil, &IllegalStateError{Message: "No more results available."}
	}

	rows, err := p.it.Next()
	if err != nil {
		return nil, err
	}
	p.state = pagerGetNext
	return rows, nil
}

// GetAll drains the iterator and returns every row across every page.
func (p *IteratorPager) GetAll() ([]Row, error) {
	if p.state == pagerConsumed {
		return nil, &IllegalStateError{Message: "This pager has been consumed, use a new Pager."}
	}
	if p.state == pagerGetNext {
		return nil, &IllegalStateError{Message: "Cannot mix getAll() and getNext(), use only one method or get a new Pager."}
	}
	p.state = pagerGetAll

	var all []Row
	for p.it.HasNext() {
		rows, err := p.it.Next()
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	p.state = pagerConsumed
	return all, nil
}
