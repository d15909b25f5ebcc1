package cloudantv1

import "encoding/json"

// ChangesResultItemChange is a single revision token within a changes row.
type ChangesResultItemChange struct {
	Rev string `json:"rev"`
}

// ChangesResultItem is a single entry in ChangesResult.Results.
type ChangesResultItem struct {
	Seq     string                    `json:"seq"`
	ID      string                    `json:"id"`
	Deleted bool                      `json:"deleted,omitempty"`
	Changes []ChangesResultItemChange `json:"changes"`
	Doc     json.RawMessage           `json:"doc,omitempty"`
}

// ChangesResult is the decoded body of a _changes response.
type ChangesResult struct {
	Results []ChangesResultItem `json:"results"`
	LastSeq string               `json:"last_seq"`
	Pending int64                `json:"pending"`
}

// ContentInformationSizes reports the storage footprint CouchDB tracks for
// a database, used by the Changes Iterator's adaptive batch sizing.
type ContentInformationSizes struct {
	Active   int64 `json:"active,omitempty"`
	External int64 `json:"external,omitempty"`
	File     int64 `json:"file,omitempty"`
}

// DatabaseInformation is the decoded body of a GET /{db} response.
type DatabaseInformation struct {
	DBName    string                  `json:"db_name"`
	DocCount  int64                   `json:"doc_count"`
	Sizes     ContentInformationSizes `json:"sizes"`
	UpdateSeq string                  `json:"update_seq,omitempty"`
}

// DocsResultRow is a single row returned by all-docs, design-docs, and view
// operations: {id, key, value}.
type DocsResultRow struct {
	ID    string          `json:"id"`
	Key   interface{}     `json:"key"`
	Value json.RawMessage `json:"value,omitempty"`
	Doc   json.RawMessage `json:"doc,omitempty"`
}

// AllDocsResult is the decoded body of all-docs/design-docs/view style
// bulk-row responses that use the {key,id} boundary cursor.
type AllDocsResult struct {
	TotalRows int64           `json:"total_rows,omitempty"`
	Offset    int64           `json:"offset,omitempty"`
	Rows      []DocsResultRow `json:"rows"`
}

// ViewResult is structurally identical to AllDocsResult; kept as a
// distinct type because it is a distinct wire operation.
type ViewResult struct {
	TotalRows int64           `json:"total_rows,omitempty"`
	Offset    int64           `json:"offset,omitempty"`
	Rows      []DocsResultRow `json:"rows"`
}

// FindResult is the decoded body of _find/_partition/_find: a bookmark
// cursor plus a list of raw documents.
type FindResult struct {
	Bookmark string            `json:"bookmark"`
	Docs     []json.RawMessage `json:"docs"`
	Warning  string            `json:"warning,omitempty"`
}

// SearchResultRow is a single row returned by a search operation:
// {id, fields, …}.
type SearchResultRow struct {
	ID     string          `json:"id"`
	Fields json.RawMessage `json:"fields,omitempty"`
}

// SearchResult is the decoded body of _search: a bookmark cursor plus rows.
type SearchResult struct {
	Bookmark string            `json:"bookmark"`
	Rows     []SearchResultRow `json:"rows"`
	Total    int64             `json:"total_rows,omitempty"`
}
