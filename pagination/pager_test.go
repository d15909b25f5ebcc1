package pagination_test

import (
	"github.com/IBM/cloudant-go-sdk/cloudantv1"
	"github.com/IBM/cloudant-go-sdk/cloudantv1/cloudantv1test"
	"github.com/IBM/cloudant-go-sdk/pagination"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IteratorPager", func() {
	var (
		client *cloudantv1test.Client
		p      *pagination.Pagination
	)

	BeforeEach(func() {
		client = cloudantv1test.NewClient()
		limit := int64(1)
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Limit = &limit
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("a")}})

		var err error
		p, err = pagination.NewPagination(client, pagination.OpAllDocs, opts)
		Expect(err).ToNot(HaveOccurred())
	})

	It("throws the mix error when getAll follows getNext", func() {
		pager, err := p.Pager()
		Expect(err).ToNot(HaveOccurred())

		_, err = pager.GetNext()
		Expect(err).ToNot(HaveOccurred())

		_, err = pager.GetAll()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Cannot mix"))
	})

	It("throws 'no more results' the first time getNext finds the iterator exhausted, then 'consumed' after that", func() {
		pager, err := p.Pager()
		Expect(err).ToNot(HaveOccurred())

		_, err = pager.GetNext()
		Expect(err).ToNot(HaveOccurred())

		_, err = pager.GetNext()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("No more results"))

		_, err = pager.GetNext()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("consumed"))
	})
})
