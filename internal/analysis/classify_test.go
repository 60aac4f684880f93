package analysis

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("classify", func() {
	var (
		analyzer *Analyzer
		text     string
		category string
	)

	BeforeEach(func() {
		analyzer = NewWithRenderer(DefaultConfig(), &fakeEngine{}, &fakeRenderer{})
	})

	JustBeforeEach(func() {
		category = analyzer.classify(text)
	})

	When("invoice keywords dominate", func() {
		BeforeEach(func() {
			text = "INVOICE\nInvoice No: 42\nInv No 42"
		})

		It("should return invoice", func() {
			Expect(category).To(Equal("invoice"))
		})
	})

	When("receipt keywords dominate", func() {
		BeforeEach(func() {
			text = "Receipt\nPayment received\nPaid in full"
		})

		It("should return receipt", func() {
			Expect(category).To(Equal("receipt"))
		})
	})

	When("bill keywords dominate", func() {
		BeforeEach(func() {
			text = "Monthly statement\nAmount due: 30"
		})

		It("should return bill", func() {
			Expect(category).To(Equal("bill"))
		})
	})

	When("keyword matching ignores case", func() {
		BeforeEach(func() {
			text = "PAYMENT RECEIVED with RECEIPT attached"
		})

		It("should still count the keywords", func() {
			Expect(category).To(Equal("receipt"))
		})
	})

	When("two categories tie", func() {
		BeforeEach(func() {
			// "receipt" scores 1 for receipt, "statement" scores 1 for
			// bill; receipt is enumerated first.
			text = "receipt statement"
		})

		It("should pick the category listed first", func() {
			Expect(category).To(Equal("receipt"))
		})
	})

	When("no keywords match at all", func() {
		BeforeEach(func() {
			text = "lorem ipsum dolor sit amet"
		})

		It("should default to invoice", func() {
			Expect(category).To(Equal("invoice"))
		})
	})

	When("a keyword repeats many times", func() {
		BeforeEach(func() {
			// Distinct keywords count, not occurrences: one keyword
			// repeated loses to two different keywords.
			text = "receipt receipt receipt receipt\nstatement and amount due"
		})

		It("should count distinct keywords only", func() {
			Expect(category).To(Equal("bill"))
		})
	})
})
