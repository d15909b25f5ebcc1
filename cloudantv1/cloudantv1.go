// Package cloudantv1 is the contract surface this module builds against:
// a minimal, generated-SDK-shaped description of the CouchDB-compatible
// request client. It carries no transport, authentication, retry, or TLS
// logic of its own — those live in the real generated client, which is
// out of scope here. changes.Iterator and pagination's operation adapters
// depend only on ClientService.
package cloudantv1

import "fmt"

// ClientService is the subset of the generated request client that the
// Changes Follower and Pagination Engine consume.
type ClientService interface {
	PostChanges(options *PostChangesOptions) (*ChangesResult, *DetailedResponse, error)
	GetDatabaseInformation(options *GetDatabaseInformationOptions) (*DatabaseInformation, *DetailedResponse, error)

	PostAllDocs(options *PostAllDocsOptions) (*AllDocsResult, *DetailedResponse, error)
	PostDesignDocs(options *PostDesignDocsOptions) (*AllDocsResult, *DetailedResponse, error)
	PostFind(options *PostFindOptions) (*FindResult, *DetailedResponse, error)
	PostPartitionAllDocs(options *PostPartitionAllDocsOptions) (*AllDocsResult, *DetailedResponse, error)
	PostPartitionFind(options *PostPartitionFindOptions) (*FindResult, *DetailedResponse, error)
	PostPartitionSearch(options *PostPartitionSearchOptions) (*SearchResult, *DetailedResponse, error)
	PostPartitionView(options *PostPartitionViewOptions) (*ViewResult, *DetailedResponse, error)
	PostSearch(options *PostSearchOptions) (*SearchResult, *DetailedResponse, error)
	PostView(options *PostViewOptions) (*ViewResult, *DetailedResponse, error)
}

// DetailedResponse wraps the raw headers and status code of an operation,
// mirroring the envelope generated IBM Cloud SDKs return alongside the
// decoded result.
type DetailedResponse struct {
	StatusCode int
	Headers    map[string][]string
	RawResult  []byte
}

// Problem is the error type returned for non-2xx responses. StatusCode is
// the only field the core consumes and a message").
type Problem struct {
	StatusCode int
	Message    string
}

func (p *Problem) Error() string {
	return fmt.Sprintf("%s (status code %d)", p.Message, p.StatusCode)
}

// NewProblem constructs a Problem for the given HTTP status.
func NewProblem(statusCode int, message string) *Problem {
	return &Problem{StatusCode: statusCode, Message: message}
}

// StatusCode extracts the HTTP status code from any error produced by a
// ClientService operation, or 0 if err does not carry one.
func StatusCode(err error) int {
	var p *Problem
	if problem, ok := err.(*Problem); ok {
		p = problem
	}
	if p == nil {
		return 0
	}
	return p.StatusCode
}
