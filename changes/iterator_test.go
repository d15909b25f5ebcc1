package changes_test

import (
	"context"
	"time"

	"github.com/IBM/cloudant-go-sdk/changes"
	"github.com/IBM/cloudant-go-sdk/cloudantv1"
	"github.com/IBM/cloudant-go-sdk/cloudantv1/cloudantv1test"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Iterator", func() {
	var (
		ctx    context.Context
		client *cloudantv1test.Client
		params *cloudantv1.PostChangesOptions
		always changes.ErrorTolerance
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = cloudantv1test.NewClient()
		params = cloudantv1.NewPostChangesOptions("events")
		always, _ = changes.NewErrorTolerance(nil)
	})

	It("stops after delivering the last batch in FiniteMode", func() {
		client.QueueChanges(cloudantv1test.ChangesResponse{Result: &cloudantv1.ChangesResult{
			Results: []cloudantv1.ChangesResultItem{{ID: "a", Seq: "1"}},
			LastSeq: "1",
			Pending: 0,
		}})

		it := changes.NewIterator(client, params, changes.FiniteMode, always)
		Expect(it.HasNext()).To(BeTrue())

		batch, err := it.Next(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(batch.Results).To(HaveLen(1))
		Expect(it.HasNext()).To(BeFalse())
	})

	It("keeps running in ListenMode even when pending reaches zero", func() {
		client.QueueChanges(cloudantv1test.ChangesResponse{Result: &cloudantv1.ChangesResult{LastSeq: "1", Pending: 0}})

		it := changes.NewIterator(client, params, changes.ListenMode, always)
		_, err := it.Next(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(it.HasNext()).To(BeTrue())
		it.Stop()
		Expect(it.HasNext()).To(BeFalse())
	})

	It("stops once the user-supplied limit budget is consumed", func() {
		params.SetLimit(1)
		client.QueueChanges(cloudantv1test.ChangesResponse{Result: &cloudantv1.ChangesResult{
			Results: []cloudantv1.ChangesResultItem{{ID: "a", Seq: "1"}},
			LastSeq: "1",
			Pending: 5,
		}})

		it := changes.NewIterator(client, params, changes.ListenMode, always)
		_, err := it.Next(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(it.HasNext()).To(BeFalse())
	})

	It("emits a synthetic empty batch and keeps running when a transient error is suppressed under ALWAYS", func() {
		client.QueueChanges(cloudantv1test.ChangesResponse{Err: cloudantv1.NewProblem(500, "boom")})
		client.QueueChanges(cloudantv1test.ChangesResponse{Result: &cloudantv1.ChangesResult{LastSeq: "2", Pending: 0}})

		it := changes.NewIterator(client, params, changes.FiniteMode, always)

		batch, err := it.Next(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(batch.Results).To(BeEmpty())
		Expect(it.HasNext()).To(BeTrue())

		batch, err = it.Next(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(batch.Pending).To(Equal(int64(0)))
		Expect(it.HasNext()).To(BeFalse())
	})

	It("propagates a terminal error and stops", func() {
		client.QueueChanges(cloudantv1test.ChangesResponse{Err: cloudantv1.NewProblem(404, "missing")})

		it := changes.NewIterator(client, params, changes.FiniteMode, always)
		_, err := it.Next(ctx)
		Expect(err).To(HaveOccurred())
		Expect(it.HasNext()).To(BeFalse())
	})

	It("propagates a transient error once the NEVER policy is in effect", func() {
		never, _ := changes.NewErrorTolerance(durationPtr(0))
		client.QueueChanges(cloudantv1test.ChangesResponse{Err: cloudantv1.NewProblem(500, "boom")})

		it := changes.NewIterator(client, params, changes.FiniteMode, never)
		_, err := it.Next(ctx)
		Expect(err).To(HaveOccurred())
		Expect(it.HasNext()).To(BeFalse())
	})

	It("computes a batch size from database information when IncludeDocs is set", func() {
		params.SetIncludeDocs(true)
		client.DBInfo = &cloudantv1.DatabaseInformation{
			DocCount: 1000,
			Sizes:    cloudantv1.ContentInformationSizes{External: 1_000_000},
		}
		client.QueueChanges(cloudantv1test.ChangesResponse{Result: &cloudantv1.ChangesResult{LastSeq: "1", Pending: 0}})

		it := changes.NewIterator(client, params, changes.FiniteMode, always)
		_, err := it.Next(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(client.ChangesCalls).To(HaveLen(1))
		Expect(*client.ChangesCalls[0].Options.Limit).To(BeNumerically(">", 0))
	})

	It("cancels promptly when the context is cancelled before the call resolves", func() {
		cctx, cancel := context.WithCancel(context.Background())
		cancel()
		client.QueueChanges(cloudantv1test.ChangesResponse{Result: &cloudantv1.ChangesResult{LastSeq: "1", Pending: 0}})

		it := changes.NewIterator(client, params, changes.ListenMode, always)
		done := make(chan struct{})
		go func() {
			_, _ = it.Next(cctx)
			close(done)
		}()
		Eventually(done, time.Second).Should(BeClosed())
	})
})

func durationPtr(d time.Duration) *time.Duration { return &d }
