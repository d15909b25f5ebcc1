package pagination

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"
)

// boxedIterator adapts a basePageIterator[T] to the exported,
// row-type-erased PageIterator surface.
type boxedIterator[T any] struct {
	inner *basePageIterator[T]
}

func (b *boxedIterator[T]) HasNext() bool { return b.inner.HasNext() }

func (b *boxedIterator[T]) Next() ([]Row, error) {
	rows, err := b.inner.Next()
	if err != nil {
		return nil, err
	}
	boxed := make([]Row, len(rows))
	for i, r := range rows {
		boxed[i] = r
	}
	return boxed, nil
}

func boxRows[T any](it *basePageIterator[T], err error) (PageIterator, error) {
	if err != nil {
		return nil, err
	}
	return &boxedIterator[T]{inner: it}, nil
}

func keyedGetKeyID(r cloudantv1.DocsResultRow) (interface{}, string) { return r.Key, r.ID }

func rejectKeysAndKey(keys []interface{}, key interface{}) error {
	if keys != nil {
		return forbiddenParamError("keys", "Use 'start_key' and 'end_key' instead.")
	}
	if key != nil {
		return forbiddenParamError("key", "No need to paginate as 'key' returns a single result for an ID.")
	}
	return nil
}

func rejectSearchOnlyFields(counts []string, groupField *string, groupLimit *int64, groupSort []string, ranges map[string]interface{}) error {
	if counts != nil {
		return forbiddenParamError("counts", "")
	}
	if groupField != nil {
		return forbiddenParamError("group_field", "")
	}
	if groupLimit != nil {
		return forbiddenParamError("group_limit", "")
	}
	if groupSort != nil {
		return forbiddenParamError("group_sort", "")
	}
	if ranges != nil {
		return forbiddenParamError("ranges", "")
	}
	return nil
}

// newAllDocsIterator builds the key-cursor adapter for POST_ALL_DOCS
// (all-docs variant: boundary check is a no-op).
func newAllDocsIterator(client cloudantv1.ClientService, opts *cloudantv1.PostAllDocsOptions, logger logrus.FieldLogger) (PageIterator, error) {
	if err := rejectKeysAndKey(opts.Keys, opts.Key); err != nil {
		return nil, err
	}
	cursor := newKeyCursor(keyedGetKeyID, func(key interface{}, id string) {
		opts.StartKey = key
		opts.StartKeyDocID = &id
	}, func() { opts.Skip = nil }, true)
	setLimit := func(n int) { l := int64(n); opts.Limit = &l }
	execute := func() ([]cloudantv1.DocsResultRow, any, error) {
		res, _, err := client.PostAllDocs(opts)
		if err != nil {
			return nil, nil, err
		}
		return res.Rows, nil, nil
	}
	it, err := newBasePageIterator(opts.Limit, cursor, setLimit, execute, logger)
	return boxRows(it, err)
}

func newDesignDocsIterator(client cloudantv1.ClientService, opts *cloudantv1.PostDesignDocsOptions, logger logrus.FieldLogger) (PageIterator, error) {
	if err := rejectKeysAndKey(opts.Keys, opts.Key); err != nil {
		return nil, err
	}
	cursor := newKeyCursor(keyedGetKeyID, func(key interface{}, id string) {
		opts.StartKey = key
		opts.StartKeyDocID = &id
	}, func() { opts.Skip = nil }, true)
	setLimit := func(n int) { l := int64(n); opts.Limit = &l }
	execute := func() ([]cloudantv1.DocsResultRow, any, error) {
		res, _, err := client.PostDesignDocs(opts)
		if err != nil {
			return nil, nil, err
		}
		return res.Rows, nil, nil
	}
	it, err := newBasePageIterator(opts.Limit, cursor, setLimit, execute, logger)
	return boxRows(it, err)
}

func newPartitionAllDocsIterator(client cloudantv1.ClientService, opts *cloudantv1.PostPartitionAllDocsOptions, logger logrus.FieldLogger) (PageIterator, error) {
	if err := rejectKeysAndKey(opts.Keys, opts.Key); err != nil {
		return nil, err
	}
	cursor := newKeyCursor(keyedGetKeyID, func(key interface{}, id string) {
		opts.StartKey = key
		opts.StartKeyDocID = &id
	}, func() { opts.Skip = nil }, true)
	setLimit := func(n int) { l := int64(n); opts.Limit = &l }
	execute := func() ([]cloudantv1.DocsResultRow, any, error) {
		res, _, err := client.PostPartitionAllDocs(opts)
		if err != nil {
			return nil, nil, err
		}
		return res.Rows, nil, nil
	}
	it, err := newBasePageIterator(opts.Limit, cursor, setLimit, execute, logger)
	return boxRows(it, err)
}

// newViewIterator builds the key-cursor adapter for POST_VIEW, where
// the boundary check is active (views may legitimately emit duplicate
// keys, so a duplicate key+id at the look-ahead boundary is ambiguous).
func newViewIterator(client cloudantv1.ClientService, opts *cloudantv1.PostViewOptions, logger logrus.FieldLogger) (PageIterator, error) {
	if err := rejectKeysAndKey(opts.Keys, opts.Key); err != nil {
		return nil, err
	}
	cursor := newKeyCursor(keyedGetKeyID, func(key interface{}, id string) {
		opts.StartKey = key
		opts.StartKeyDocID = &id
	}, func() { opts.Skip = nil }, false)
	setLimit := func(n int) { l := int64(n); opts.Limit = &l }
	execute := func() ([]cloudantv1.DocsResultRow, any, error) {
		res, _, err := client.PostView(opts)
		if err != nil {
			return nil, nil, err
		}
		return res.Rows, nil, nil
	}
	it, err := newBasePageIterator(opts.Limit, cursor, setLimit, execute, logger)
	return boxRows(it, err)
}

func newPartitionViewIterator(client cloudantv1.ClientService, opts *cloudantv1.PostPartitionViewOptions, logger logrus.FieldLogger) (PageIterator, error) {
	if err := rejectKeysAndKey(opts.Keys, opts.Key); err != nil {
		return nil, err
	}
	cursor := newKeyCursor(keyedGetKeyID, func(key interface{}, id string) {
		opts.StartKey = key
		opts.StartKeyDocID = &id
	}, func() { opts.Skip = nil }, false)
	setLimit := func(n int) { l := int64(n); opts.Limit = &l }
	execute := func() ([]cloudantv1.DocsResultRow, any, error) {
		res, _, err := client.PostPartitionView(opts)
		if err != nil {
			return nil, nil, err
		}
		return res.Rows, nil, nil
	}
	it, err := newBasePageIterator(opts.Limit, cursor, setLimit, execute, logger)
	return boxRows(it, err)
}

// newFindIterator builds the bookmark-cursor adapter for POST_FIND;
// skip is honored only on the first page.
func newFindIterator(client cloudantv1.ClientService, opts *cloudantv1.PostFindOptions, logger logrus.FieldLogger) (PageIterator, error) {
	cursor := newBookmarkCursor[json.RawMessage](func(bookmark string) { opts.Bookmark = &bookmark }, func() { opts.Skip = nil }, true)
	setLimit := func(n int) { l := int64(n); opts.Limit = &l }
	execute := func() ([]json.RawMessage, any, error) {
		res, _, err := client.PostFind(opts)
		if err != nil {
			return nil, nil, err
		}
		return res.Docs, res.Bookmark, nil
	}
	it, err := newBasePageIterator(opts.Limit, cursor, setLimit, execute, logger)
	return boxRows(it, err)
}

func newPartitionFindIterator(client cloudantv1.ClientService, opts *cloudantv1.PostPartitionFindOptions, logger logrus.FieldLogger) (PageIterator, error) {
	cursor := newBookmarkCursor[json.RawMessage](func(bookmark string) { opts.Bookmark = &bookmark }, func() { opts.Skip = nil }, true)
	setLimit := func(n int) { l := int64(n); opts.Limit = &l }
	execute := func() ([]json.RawMessage, any, error) {
		res, _, err := client.PostPartitionFind(opts)
		if err != nil {
			return nil, nil, err
		}
		return res.Docs, res.Bookmark, nil
	}
	it, err := newBasePageIterator(opts.Limit, cursor, setLimit, execute, logger)
	return boxRows(it, err)
}

// newSearchIterator builds the bookmark-cursor adapter for POST_SEARCH.
// Only the non-partition variant rejects the response-shape-changing
// fields.
func newSearchIterator(client cloudantv1.ClientService, opts *cloudantv1.PostSearchOptions, logger logrus.FieldLogger) (PageIterator, error) {
	if err := rejectSearchOnlyFields(opts.Counts, opts.GroupField, opts.GroupLimit, opts.GroupSort, opts.Ranges); err != nil {
		return nil, err
	}
	cursor := newBookmarkCursor[cloudantv1.SearchResultRow](func(bookmark string) { opts.Bookmark = &bookmark }, func() {}, false)
	setLimit := func(n int) { l := int64(n); opts.Limit = &l }
	execute := func() ([]cloudantv1.SearchResultRow, any, error) {
		res, _, err := client.PostSearch(opts)
		if err != nil {
			return nil, nil, err
		}
		return res.Rows, res.Bookmark, nil
	}
	it, err := newBasePageIterator(opts.Limit, cursor, setLimit, execute, logger)
	return boxRows(it, err)
}

func newPartitionSearchIterator(client cloudantv1.ClientService, opts *cloudantv1.PostPartitionSearchOptions, logger logrus.FieldLogger) (PageIterator, error) {
	cursor := newBookmarkCursor[cloudantv1.SearchResultRow](func(bookmark string) { opts.Bookmark = &bookmark }, func() {}, false)
	setLimit := func(n int) { l := int64(n); opts.Limit = &l }
	execute := func() ([]cloudantv1.SearchResultRow, any, error) {
		res, _, err := client.PostPartitionSearch(opts)
		if err != nil {
			return nil, nil, err
		}
		return res.Rows, res.Bookmark, nil
	}
	it, err := newBasePageIterator(opts.Limit, cursor, setLimit, execute, logger)
	return boxRows(it, err)
}
