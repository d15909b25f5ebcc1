package pagination_test

import (
	"github.com/IBM/cloudant-go-sdk/cloudantv1"
	"github.com/IBM/cloudant-go-sdk/cloudantv1/cloudantv1test"
	"github.com/IBM/cloudant-go-sdk/pagination"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RowIterator", func() {
	It("flattens every page into individual rows in order", func() {
		client := cloudantv1test.NewClient()
		limit := int64(2)
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Limit = &limit

		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("a", "b", "c")}})
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("d")}})

		p, err := pagination.NewPagination(client, pagination.OpAllDocs, opts)
		Expect(err).ToNot(HaveOccurred())
		rows, err := p.Rows()
		Expect(err).ToNot(HaveOccurred())

		var ids []string
		for {
			row, ok, err := rows.Next()
			Expect(err).ToNot(HaveOccurred())
			if !ok {
				break
			}
			ids = append(ids, row.(cloudantv1.DocsResultRow).ID)
		}
		Expect(ids).To(Equal([]string{"a", "b", "c", "d"}))
	})
})

var _ = Describe("Pagination streams", func() {
	It("delivers every page over the page stream and closes it", func() {
		client := cloudantv1test.NewClient()
		limit := int64(2)
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Limit = &limit
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("a", "b")}})

		p, err := pagination.NewPagination(client, pagination.OpAllDocs, opts)
		Expect(err).ToNot(HaveOccurred())

		stream, err := p.PageStream()
		Expect(err).ToNot(HaveOccurred())

		var pages [][]pagination.Row
		for ev := range stream {
			Expect(ev.Err).ToNot(HaveOccurred())
			pages = append(pages, ev.Page)
		}
		Expect(pages).To(HaveLen(1))
		Expect(pages[0]).To(HaveLen(2))
	})

	It("delivers every row over the row stream and closes it", func() {
		client := cloudantv1test.NewClient()
		limit := int64(2)
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Limit = &limit
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("a", "b")}})

		p, err := pagination.NewPagination(client, pagination.OpAllDocs, opts)
		Expect(err).ToNot(HaveOccurred())

		stream, err := p.RowStream()
		Expect(err).ToNot(HaveOccurred())

		count := 0
		for ev := range stream {
			Expect(ev.Err).ToNot(HaveOccurred())
			count++
		}
		Expect(count).To(Equal(2))
	})
})

var _ = Describe("Pagination as a pure factory", func() {
	It("hands each consumer its own independent iterator", func() {
		client := cloudantv1test.NewClient()
		limit := int64(1)
		opts := cloudantv1.NewPostAllDocsOptions("events")
		opts.Limit = &limit
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("a")}})
		client.QueuePage("all_docs", cloudantv1test.PageResponse{AllDocs: &cloudantv1.AllDocsResult{Rows: rowsOf("b")}})

		p, err := pagination.NewPagination(client, pagination.OpAllDocs, opts)
		Expect(err).ToNot(HaveOccurred())

		it1, _ := p.Pages()
		it2, _ := p.Pages()

		page1, err := it1.Next()
		Expect(err).ToNot(HaveOccurred())
		page2, err := it2.Next()
		Expect(err).ToNot(HaveOccurred())

		Expect(page1[0].(cloudantv1.DocsResultRow).ID).To(Equal("a"))
		Expect(page2[0].(cloudantv1.DocsResultRow).ID).To(Equal("b"))
	})
})
