package analysis

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractCurrency", func() {
	var (
		analyzer *Analyzer
		text     string
		code     string
	)

	BeforeEach(func() {
		analyzer = NewWithRenderer(DefaultConfig(), &fakeEngine{}, &fakeRenderer{})
	})

	JustBeforeEach(func() {
		code = analyzer.extractCurrency(text)
	})

	When("the text contains a euro sign", func() {
		BeforeEach(func() {
			text = "Gesamt € 42,00"
		})

		It("should return EUR", func() {
			Expect(code).To(Equal("EUR"))
		})
	})

	When("the text contains both euro and dollar signs", func() {
		BeforeEach(func() {
			// Table order decides: $ is enumerated before €, even
			// though € appears first in the text.
			text = "Price €100 or $110"
		})

		It("should return USD", func() {
			Expect(code).To(Equal("USD"))
		})
	})

	When("the text contains an Rs prefix", func() {
		BeforeEach(func() {
			text = "Rs 1,500 only"
		})

		It("should return INR", func() {
			Expect(code).To(Equal("INR"))
		})
	})

	When("the text contains PKR", func() {
		BeforeEach(func() {
			text = "Payable PKR 900"
		})

		It("should return PKR", func() {
			Expect(code).To(Equal("PKR"))
		})
	})

	When("no symbol is present", func() {
		BeforeEach(func() {
			text = "one hundred and ten"
		})

		It("should default to USD", func() {
			Expect(code).To(Equal("USD"))
		})
	})
})
