// Package cloudantv1test provides a scriptable, in-memory
// cloudantv1.ClientService test double: a hand-rolled fake rather than a
// mocking framework. Every suite builds one of these and queues the exact
// responses/errors it wants to see consumed.
package cloudantv1test

import (
	"fmt"
	"sync"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"
)

// ChangesCall records a single PostChanges invocation for assertions.
type ChangesCall struct {
	Options *cloudantv1.PostChangesOptions
}

// ChangesResponse is one scripted response in a Client's changes queue:
// either a result or an error, never both.
type ChangesResponse struct {
	Result *cloudantv1.ChangesResult
	Err    error
}

// PageResponse is one scripted response for a paginated operation queue.
type PageResponse struct {
	AllDocs *cloudantv1.AllDocsResult
	View    *cloudantv1.ViewResult
	Find    *cloudantv1.FindResult
	Search  *cloudantv1.SearchResult
	Err     error
}

// Client is a scriptable cloudantv1.ClientService. Queue responses with
// QueueChanges/QueuePage before invoking code under test; each call pops
// the next queued response. Calling past the end of a queue panics with a
// message naming the exhausted queue, which surfaces immediately as a
// test failure instead of a confusing nil dereference downstream.
type Client struct {
	mu sync.Mutex

	DBInfo    *cloudantv1.DatabaseInformation
	DBInfoErr error

	changesQueue []ChangesResponse
	ChangesCalls []ChangesCall

	pageQueues map[string][]PageResponse
	PageCalls  map[string][]interface{}
}

// NewClient returns an empty mock ready to be scripted.
func NewClient() *Client {
	return &Client{
		pageQueues: make(map[string][]PageResponse),
		PageCalls:  make(map[string][]interface{}),
	}
}

// QueueChanges appends a scripted PostChanges response.
func (c *Client) QueueChanges(resp ChangesResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changesQueue = append(c.changesQueue, resp)
}

// QueuePage appends a scripted response for the named operation
// ("all_docs", "design_docs", "find", "partition_all_docs",
// "partition_find", "partition_search", "partition_view", "search",
// "view").
func (c *Client) QueuePage(op string, resp PageResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pageQueues[op] = append(c.pageQueues[op], resp)
}

func (c *Client) popPage(op string) PageResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.pageQueues[op]
	if len(q) == 0 {
		panic(fmt.Sprintf("cloudantv1test: no queued response for %q", op))
	}
	c.pageQueues[op] = q[1:]
	return q[0]
}

func (c *Client) PostChanges(options *cloudantv1.PostChangesOptions) (*cloudantv1.ChangesResult, *cloudantv1.DetailedResponse, error) {
	c.mu.Lock()
	c.ChangesCalls = append(c.ChangesCalls, ChangesCall{Options: options})
	if len(c.changesQueue) == 0 {
		c.mu.Unlock()
		panic("cloudantv1test: no queued PostChanges response")
	}
	resp := c.changesQueue[0]
	c.changesQueue = c.changesQueue[1:]
	c.mu.Unlock()

	if resp.Err != nil {
		return nil, nil, resp.Err
	}
	return resp.Result, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) GetDatabaseInformation(options *cloudantv1.GetDatabaseInformationOptions) (*cloudantv1.DatabaseInformation, *cloudantv1.DetailedResponse, error) {
	if c.DBInfoErr != nil {
		return nil, nil, c.DBInfoErr
	}
	return c.DBInfo, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) recordCall(op string, options interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PageCalls[op] = append(c.PageCalls[op], options)
}

func (c *Client) PostAllDocs(options *cloudantv1.PostAllDocsOptions) (*cloudantv1.AllDocsResult, *cloudantv1.DetailedResponse, error) {
	c.recordCall("all_docs", options)
	r := c.popPage("all_docs")
	if r.Err != nil {
		return nil, nil, r.Err
	}
	return r.AllDocs, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) PostDesignDocs(options *cloudantv1.PostDesignDocsOptions) (*cloudantv1.AllDocsResult, *cloudantv1.DetailedResponse, error) {
	c.recordCall("design_docs", options)
	r := c.popPage("design_docs")
	if r.Err != nil {
		return nil, nil, r.Err
	}
	return r.AllDocs, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) PostFind(options *cloudantv1.PostFindOptions) (*cloudantv1.FindResult, *cloudantv1.DetailedResponse, error) {
	c.recordCall("find", options)
	r := c.popPage("find")
	if r.Err != nil {
		return nil, nil, r.Err
	}
	return r.Find, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) PostPartitionAllDocs(options *cloudantv1.PostPartitionAllDocsOptions) (*cloudantv1.AllDocsResult, *cloudantv1.DetailedResponse, error) {
	c.recordCall("partition_all_docs", options)
	r := c.popPage("partition_all_docs")
	if r.Err != nil {
		return nil, nil, r.Err
	}
	return r.AllDocs, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) PostPartitionFind(options *cloudantv1.PostPartitionFindOptions) (*cloudantv1.FindResult, *cloudantv1.DetailedResponse, error) {
	c.recordCall("partition_find", options)
	r := c.popPage("partition_find")
	if r.Err != nil {
		return nil, nil, r.Err
	}
	return r.Find, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) PostPartitionSearch(options *cloudantv1.PostPartitionSearchOptions) (*cloudantv1.SearchResult, *cloudantv1.DetailedResponse, error) {
	c.recordCall("partition_search", options)
	r := c.popPage("partition_search")
	if r.Err != nil {
		return nil, nil, r.Err
	}
	return r.Search, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) PostPartitionView(options *cloudantv1.PostPartitionViewOptions) (*cloudantv1.ViewResult, *cloudantv1.DetailedResponse, error) {
	c.recordCall("partition_view", options)
	r := c.popPage("partition_view")
	if r.Err != nil {
		return nil, nil, r.Err
	}
	return r.View, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) PostSearch(options *cloudantv1.PostSearchOptions) (*cloudantv1.SearchResult, *cloudantv1.DetailedResponse, error) {
	c.recordCall("search", options)
	r := c.popPage("search")
	if r.Err != nil {
		return nil, nil, r.Err
	}
	return r.Search, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

func (c *Client) PostView(options *cloudantv1.PostViewOptions) (*cloudantv1.ViewResult, *cloudantv1.DetailedResponse, error) {
	c.recordCall("view", options)
	r := c.popPage("view")
	if r.Err != nil {
		return nil, nil, r.Err
	}
	return r.View, &cloudantv1.DetailedResponse{StatusCode: 200}, nil
}

var _ cloudantv1.ClientService = (*Client)(nil)
