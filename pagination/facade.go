package pagination

import (
	"github.com/sirupsen/logrus"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"
)

// Pagination is the pure factory that maps an
// operation tag and its params to the right iterator construction, and
// every consumption method builds a fresh iterator, so multiple
// consumers may each walk the same Pagination independently.
type Pagination struct {
	newIterator func() (PageIterator, error)
}

// NewPagination validates tag/params once (surfacing any
// InvalidArgumentError immediately) and returns a Pagination ready to
// manufacture iterators. opts configures cross-cutting concerns such
// as the logger used for terminal HTTP errors and boundary failures.
func NewPagination(client cloudantv1.ClientService, tag OperationTag, params interface{}, opts ...Option) (*Pagination, error) {
	s := newSettings(opts...)
	factory, err := adapterFor(client, tag, params, s.logger)
	if err != nil {
		return nil, err
	}
	if _, err := factory(); err != nil {
		return nil, err
	}
	return &Pagination{newIterator: factory}, nil
}

func adapterFor(client cloudantv1.ClientService, tag OperationTag, params interface{}, logger logrus.FieldLogger) (func() (PageIterator, error), error) {
	switch tag {
	case OpAllDocs:
		opts, ok := params.(*cloudantv1.PostAllDocsOptions)
		if !ok {
			return nil, wrongParamsType(tag)
		}
		return func() (PageIterator, error) { return newAllDocsIterator(client, opts, logger) }, nil
	case OpDesignDocs:
		opts, ok := params.(*cloudantv1.PostDesignDocsOptions)
		if !ok {
			return nil, wrongParamsType(tag)
		}
		return func() (PageIterator, error) { return newDesignDocsIterator(client, opts, logger) }, nil
	case OpFind:
		opts, ok := params.(*cloudantv1.PostFindOptions)
		if !ok {
			return nil, wrongParamsType(tag)
		}
		return func() (PageIterator, error) { return newFindIterator(client, opts, logger) }, nil
	case OpPartitionAllDocs:
		opts, ok := params.(*cloudantv1.PostPartitionAllDocsOptions)
		if !ok {
			return nil, wrongParamsType(tag)
		}
		return func() (PageIterator, error) { return newPartitionAllDocsIterator(client, opts, logger) }, nil
	case OpPartitionFind:
		opts, ok := params.(*cloudantv1.PostPartitionFindOptions)
		if !ok {
			return nil, wrongParamsType(tag)
		}
		return func() (PageIterator, error) { return newPartitionFindIterator(client, opts, logger) }, nil
	case OpPartitionSearch:
		opts, ok := params.(*cloudantv1.PostPartitionSearchOptions)
		if !ok {
			return nil, wrongParamsType(tag)
		}
		return func() (PageIterator, error) { return newPartitionSearchIterator(client, opts, logger) }, nil
	case OpPartitionView:
		opts, ok := params.(*cloudantv1.PostPartitionViewOptions)
		if !ok {
			return nil, wrongParamsType(tag)
		}
		return func() (PageIterator, error) { return newPartitionViewIterator(client, opts, logger) }, nil
	case OpSearch:
		opts, ok := params.(*cloudantv1.PostSearchOptions)
		if !ok {
			return nil, wrongParamsType(tag)
		}
		return func() (PageIterator, error) { return newSearchIterator(client, opts, logger) }, nil
	case OpView:
		opts, ok := params.(*cloudantv1.PostViewOptions)
		if !ok {
			return nil, wrongParamsType(tag)
		}
		return func() (PageIterator, error) { return newViewIterator(client, opts, logger) }, nil
	default:
		return nil, &InvalidArgumentError{Message: "Unrecognized pagination operation tag."}
	}
}

func wrongParamsType(tag OperationTag) error {
	return &InvalidArgumentError{Message: "The params type does not match operation " + tag.String() + "."}
}

// Pages returns a fresh page iterator.
func (p *Pagination) Pages() (PageIterator, error) {
	return p.newIterator()
}

// Rows returns a fresh row iterator that flattens pages into individual
// rows.
func (p *Pagination) Rows() (*RowIterator, error) {
	it, err := p.newIterator()
	if err != nil {
		return nil, err
	}
	return &RowIterator{pages: it}, nil
}

// Pager returns a fresh stateful pull-model pager.
func (p *Pagination) Pager() (*IteratorPager, error) {
	it, err := p.newIterator()
	if err != nil {
		return nil, err
	}
	return NewIteratorPager(it), nil
}
