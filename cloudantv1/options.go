package cloudantv1

// GetDatabaseInformationOptions carries the single required `db` parameter
// for the one-shot configuration call the Changes Iterator makes when
// IncludeDocs is set.
type GetDatabaseInformationOptions struct {
	Db string
}

func NewGetDatabaseInformationOptions(db string) *GetDatabaseInformationOptions {
	return &GetDatabaseInformationOptions{Db: db}
}

// PostChangesOptions is the option set for the _changes endpoint. Pointer
// fields distinguish "unset" from "zero value", which the Params Helper's
// Validate/Clone operations rely on.
type PostChangesOptions struct {
	Db string

	AttEncodingInfo *bool
	Attachments     *bool
	Conflicts       *bool
	Descending      *bool
	DocIDs          []string
	Fields          []string
	Filter          *string
	Heartbeat       *int64
	IncludeDocs     *bool
	LastEventID     *string
	Limit           *int64
	Selector        map[string]interface{}
	SeqInterval     *int64
	Since           *string
	Style           *string
	Timeout         *int64
	View            *string
	Feed            *string
}

func NewPostChangesOptions(db string) *PostChangesOptions {
	return &PostChangesOptions{Db: db}
}

func (o *PostChangesOptions) SetIncludeDocs(v bool) *PostChangesOptions   { o.IncludeDocs = &v; return o }
func (o *PostChangesOptions) SetLimit(v int64) *PostChangesOptions       { o.Limit = &v; return o }
func (o *PostChangesOptions) SetSince(v string) *PostChangesOptions      { o.Since = &v; return o }
func (o *PostChangesOptions) SetFeed(v string) *PostChangesOptions       { o.Feed = &v; return o }
func (o *PostChangesOptions) SetTimeout(v int64) *PostChangesOptions     { o.Timeout = &v; return o }
func (o *PostChangesOptions) SetFilter(v string) *PostChangesOptions     { o.Filter = &v; return o }
func (o *PostChangesOptions) SetDescending(v bool) *PostChangesOptions   { o.Descending = &v; return o }
func (o *PostChangesOptions) SetHeartbeat(v int64) *PostChangesOptions   { o.Heartbeat = &v; return o }
func (o *PostChangesOptions) SetLastEventID(v string) *PostChangesOptions {
	o.LastEventID = &v
	return o
}

// Clone returns a deep-enough copy of o: every field that the Changes
// package's Clone helper may subsequently overwrite is copied by value or
// re-sliced so mutating the clone never mutates the caller's original
// options.
func (o *PostChangesOptions) Clone() *PostChangesOptions {
	if o == nil {
		return &PostChangesOptions{}
	}
	clone := *o
	clone.DocIDs = append([]string(nil), o.DocIDs...)
	clone.Fields = append([]string(nil), o.Fields...)
	if o.Selector != nil {
		clone.Selector = make(map[string]interface{}, len(o.Selector))
		for k, v := range o.Selector {
			clone.Selector[k] = v
		}
	}
	return &clone
}

// pageableOptions is the subset of fields every paginated-operation option
// struct shares: a required database, an optional limit, and the fields a
// base/bookmark/key iterator needs to reject or thread.
type pageableOptions struct {
	Db            string
	Partition     *string
	Limit         *int64
	Bookmark      *string
	Skip          *int64
	Keys          []interface{}
	Key           interface{}
	StartKey      interface{}
	StartKeyDocID *string
}

// PostAllDocsOptions, PostDesignDocsOptions, PostPartitionAllDocsOptions,
// PostViewOptions and PostPartitionViewOptions all page via the key+id
// boundary cursor; the two view option types additionally carry
// DDoc/View names.

type PostAllDocsOptions struct {
	pageableOptions
	IncludeDocs *bool
	Descending  *bool
}

func NewPostAllDocsOptions(db string) *PostAllDocsOptions {
	return &PostAllDocsOptions{pageableOptions: pageableOptions{Db: db}}
}

type PostDesignDocsOptions struct {
	pageableOptions
	IncludeDocs *bool
}

func NewPostDesignDocsOptions(db string) *PostDesignDocsOptions {
	return &PostDesignDocsOptions{pageableOptions: pageableOptions{Db: db}}
}

type PostPartitionAllDocsOptions struct {
	pageableOptions
	IncludeDocs *bool
}

func NewPostPartitionAllDocsOptions(db, partitionKey string) *PostPartitionAllDocsOptions {
	return &PostPartitionAllDocsOptions{pageableOptions: pageableOptions{Db: db, Partition: &partitionKey}}
}

type PostViewOptions struct {
	pageableOptions
	DDoc        string
	View        string
	IncludeDocs *bool
	Descending  *bool
}

func NewPostViewOptions(db, ddoc, view string) *PostViewOptions {
	return &PostViewOptions{pageableOptions: pageableOptions{Db: db}, DDoc: ddoc, View: view}
}

type PostPartitionViewOptions struct {
	pageableOptions
	DDoc        string
	View        string
	IncludeDocs *bool
}

func NewPostPartitionViewOptions(db, partitionKey, ddoc, view string) *PostPartitionViewOptions {
	return &PostPartitionViewOptions{pageableOptions: pageableOptions{Db: db, Partition: &partitionKey}, DDoc: ddoc, View: view}
}

// PostFindOptions, PostPartitionFindOptions page via the bookmark cursor
// and also carry a selector.

type PostFindOptions struct {
	pageableOptions
	Selector map[string]interface{}
	Fields   []string
}

func NewPostFindOptions(db string, selector map[string]interface{}) *PostFindOptions {
	return &PostFindOptions{pageableOptions: pageableOptions{Db: db}, Selector: selector}
}

type PostPartitionFindOptions struct {
	pageableOptions
	Selector map[string]interface{}
	Fields   []string
}

func NewPostPartitionFindOptions(db, partitionKey string, selector map[string]interface{}) *PostPartitionFindOptions {
	return &PostPartitionFindOptions{pageableOptions: pageableOptions{Db: db, Partition: &partitionKey}, Selector: selector}
}

// PostSearchOptions, PostPartitionSearchOptions page via the bookmark
// cursor; non-partition search additionally rejects the fields that
// change the response shape.

type PostSearchOptions struct {
	pageableOptions
	Index       string
	Query       string
	Counts      []string
	GroupField  *string
	GroupLimit  *int64
	GroupSort   []string
	Ranges      map[string]interface{}
}

func NewPostSearchOptions(db, index, query string) *PostSearchOptions {
	return &PostSearchOptions{pageableOptions: pageableOptions{Db: db}, Index: index, Query: query}
}

type PostPartitionSearchOptions struct {
	pageableOptions
	Index string
	Query string
}

func NewPostPartitionSearchOptions(db, partitionKey, index, query string) *PostPartitionSearchOptions {
	return &PostPartitionSearchOptions{pageableOptions: pageableOptions{Db: db, Partition: &partitionKey}, Index: index, Query: query}
}
