package changes_test

import (
	"time"

	"github.com/IBM/cloudant-go-sdk/changes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ErrorTolerance", func() {
	Describe("NewErrorTolerance", func() {
		It("defaults to ALWAYS when duration is nil", func() {
			tol, err := changes.NewErrorTolerance(nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tol.Mode).To(Equal(changes.ToleranceAlways))
		})

		It("resolves to NEVER when duration is zero", func() {
			d := 0 * time.Second
			tol, err := changes.NewErrorTolerance(&d)
			Expect(err).ToNot(HaveOccurred())
			Expect(tol.Mode).To(Equal(changes.ToleranceNever))
		})

		It("resolves to TIMER when duration is positive", func() {
			d := 30 * time.Second
			tol, err := changes.NewErrorTolerance(&d)
			Expect(err).ToNot(HaveOccurred())
			Expect(tol.Mode).To(Equal(changes.ToleranceTimer))
			Expect(tol.Duration).To(Equal(d))
		})

		It("rejects a negative duration", func() {
			d := -1 * time.Second
			_, err := changes.NewErrorTolerance(&d)
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&changes.InvalidArgumentError{}))
		})
	})

	Describe("Suppress", func() {
		It("always suppresses under ALWAYS", func() {
			tol, _ := changes.NewErrorTolerance(nil)
			Expect(tol.Suppress(time.Now(), time.Time{})).To(BeTrue())
		})

		It("never suppresses under NEVER", func() {
			d := 0 * time.Second
			tol, _ := changes.NewErrorTolerance(&d)
			Expect(tol.Suppress(time.Now(), time.Now())).To(BeFalse())
		})

		It("suppresses under TIMER only within the window since last success", func() {
			d := 10 * time.Second
			tol, _ := changes.NewErrorTolerance(&d)
			lastSuccess := time.Now()
			Expect(tol.Suppress(lastSuccess.Add(5*time.Second), lastSuccess)).To(BeTrue())
			Expect(tol.Suppress(lastSuccess.Add(15*time.Second), lastSuccess)).To(BeFalse())
		})
	})
})
