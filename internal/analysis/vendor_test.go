package analysis

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractVendor", func() {
	var (
		analyzer *Analyzer
		text     string
		vendor   string
	)

	BeforeEach(func() {
		analyzer = NewWithRenderer(DefaultConfig(), &fakeEngine{}, &fakeRenderer{})
	})

	JustBeforeEach(func() {
		vendor = analyzer.extractVendor(text)
	})

	When("the first line is a clean company name", func() {
		BeforeEach(func() {
			text = "ABC Company\nInvoice #123\nTotal: $10"
		})

		It("should return the first qualifying line", func() {
			Expect(vendor).To(Equal("ABC Company"))
		})
	})

	When("leading lines are noise", func() {
		BeforeEach(func() {
			text = "INVOICE\nDate: 2024-01-15\nGlobex Corporation\nTotal: 99"
		})

		It("should skip them and take the first clean line", func() {
			Expect(vendor).To(Equal("Globex Corporation"))
		})
	})

	When("leading lines are blank or too short", func() {
		BeforeEach(func() {
			text = "\n   \nAB\nInitech Ltd\n"
		})

		It("should skip blanks and short lines", func() {
			Expect(vendor).To(Equal("Initech Ltd"))
		})
	})

	When("no line in the first five qualifies", func() {
		BeforeEach(func() {
			text = "invoice\nreceipt\ntax form\ndate here\nbill copy\nAcme Industries"
		})

		It("should give up even though a later line would qualify", func() {
			Expect(vendor).To(Equal("Unknown Vendor"))
		})
	})

	When("the qualifying line is very long", func() {
		BeforeEach(func() {
			text = strings.Repeat("x", 150) + "\nTotal: 5"
		})

		It("should truncate to 100 characters", func() {
			Expect(vendor).To(HaveLen(100))
		})
	})

	When("the text is empty", func() {
		BeforeEach(func() {
			text = ""
		})

		It("should return the unknown vendor placeholder", func() {
			Expect(vendor).To(Equal("Unknown Vendor"))
		})
	})
})
