package pagination_test

import (
	"github.com/IBM/cloudant-go-sdk/cloudantv1"
	"github.com/IBM/cloudant-go-sdk/cloudantv1/cloudantv1test"
	"github.com/IBM/cloudant-go-sdk/pagination"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func rowsOf(ids ...string) []cloudantv1.DocsResultRow {
	out := make([]cloudantv1.DocsResultRow, len(ids))
	for i, id := range ids {
		out[i] = cloudantv1.DocsResultRow{ID: id, Key: id}
	}
	return out
}

var _ = Describe("Key-cursor pagination (all-docs)", func() {
	var client *cloudantv1test.Client

	BeforeEach(func() {
		client = cloudantv1test.NewClient()
	})

	It("delivers userPageSize rows and signals hasNext via the look-ahead row", func() {
		limit := int64(2)
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Limit = &limit

		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("a", "b", "c")}})
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("d")}})

		p, err := pagination.NewPagination(client, pagination.OpAllDocs, opts)
		Expect(err).ToNot(HaveOccurred())

		it, err := p.Pages()
		Expect(err).ToNot(HaveOccurred())

		page, err := it.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(page).To(HaveLen(2))
		Expect(it.HasNext()).To(BeTrue())

		page, err = it.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(page).To(HaveLen(1))
		Expect(it.HasNext()).To(BeFalse())

		// the request for the second page must carry the popped row's id as startKeyDocId
		Expect(*client.PageCalls["all_docs"][1].(*cloudantv1.PostAllDocsOptions).StartKeyDocID).To(Equal("c"))
	})

	It("requests pageSize+1 rows on every page", func() {
		limit := int64(3)
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Limit = &limit
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("a", "b")}})

		p, err := pagination.NewPagination(client, pagination.OpAllDocs, opts)
		Expect(err).ToNot(HaveOccurred())
		it, _ := p.Pages()
		_, err = it.Next()
		Expect(err).ToNot(HaveOccurred())

		sent := client.PageCalls["all_docs"][0].(*cloudantv1.PostAllDocsOptions)
		Expect(*sent.Limit).To(Equal(int64(4)))
	})

	It("never treats a duplicate boundary key+id as an error for all-docs (no-op boundary check)", func() {
		limit := int64(1)
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Limit = &limit
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("a", "a")}})
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("a")}})

		p, _ := pagination.NewPagination(client, pagination.OpAllDocs, opts)
		it, _ := p.Pages()
		_, err := it.Next()
		Expect(err).ToNot(HaveOccurred())
		_, err = it.Next()
		Expect(err).ToNot(HaveOccurred())
	})

	It("rejects a limit outside [1,200]", func() {
		limit := int64(201)
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Limit = &limit
		_, err := pagination.NewPagination(client, pagination.OpAllDocs, opts)
		Expect(err).To(HaveOccurred())
		Expect(err).To(BeAssignableToTypeOf(&pagination.InvalidArgumentError{}))
	})

	It("rejects a user-supplied keys or key param", func() {
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Keys = []interface{}{"a"}
		_, err := pagination.NewPagination(client, pagination.OpAllDocs, opts)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("start_key"))
	})
})

var _ = Describe("Key-cursor pagination (view)", func() {
	It("defers a boundary error to the next Next() call", func() {
		client := cloudantv1test.NewClient()
		limit := int64(1)
		opts := cloudantv1.NewPostViewOptions("events", "design", "byName")
		opts.Limit = &limit

		client.QueuePage("view", cloudantv1test.PageResponse{View: &cloudantv1.ViewResult{Rows: rowsOf("a", "a")}})

		p, err := pagination.NewPagination(client, pagination.OpView, opts)
		Expect(err).ToNot(HaveOccurred())
		it, _ := p.Pages()

		page, err := it.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(page).To(HaveLen(1))

		_, err = it.Next()
		Expect(err).To(HaveOccurred())
		Expect(err).To(BeAssignableToTypeOf(&pagination.BoundaryError{}))
	})
})
