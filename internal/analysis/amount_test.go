package analysis

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extractAmount", func() {
	var (
		analyzer *Analyzer
		text     string
		amount   float64
	)

	BeforeEach(func() {
		analyzer = NewWithRenderer(DefaultConfig(), &fakeEngine{}, &fakeRenderer{})
	})

	JustBeforeEach(func() {
		amount = analyzer.extractAmount(text)
	})

	Describe("label-anchored amounts", func() {
		When("a labeled total is present among unrelated numbers", func() {
			BeforeEach(func() {
				text = "Invoice #99\nTotal Amount: $500.00\nPage 3 of 10"
			})

			It("should return the labeled amount", func() {
				Expect(amount).To(Equal(500.0))
			})
		})

		When("the label is lowercase with no symbol", func() {
			BeforeEach(func() {
				text = "Ref 55\ngrand total 1,250.75"
			})

			It("should match case-insensitively and strip grouping", func() {
				Expect(amount).To(Equal(1250.75))
			})
		})

		When("several labels are present", func() {
			BeforeEach(func() {
				// "total amount" has higher priority than "amount due"
				// regardless of document order.
				text = "Amount Due: 200.00\nTotal Amount: 300.00"
			})

			It("should honor label priority over position", func() {
				Expect(amount).To(Equal(300.0))
			})
		})

		When("the same label matches twice", func() {
			BeforeEach(func() {
				text = "Total: 400.00\nTotal: 900.00"
			})

			It("should take the first occurrence in document order", func() {
				Expect(amount).To(Equal(400.0))
			})
		})

		When("the label amount carries an Rs prefix", func() {
			BeforeEach(func() {
				text = "Total: Rs. 2,500"
			})

			It("should accept the prefix", func() {
				Expect(amount).To(Equal(2500.0))
			})
		})
	})

	Describe("amounts near total lines", func() {
		When("a total line has its amount on the next line", func() {
			BeforeEach(func() {
				text = "Items 3\nTotal due items\n450.50\nthank you"
			})

			It("should collect numbers from neighboring lines", func() {
				Expect(amount).To(Equal(450.5))
			})
		})

		When("several candidates surround the total line", func() {
			BeforeEach(func() {
				text = "120.00\nTotal charges listed\n380.00"
			})

			It("should return the maximum", func() {
				Expect(amount).To(Equal(380.0))
			})
		})

		When("only small numbers surround the total line", func() {
			BeforeEach(func() {
				// Line and item numbers at or below 100 are noise, and
				// nothing qualifies for the fallback either.
				text = "item 4\nTotal of entries\n7"
			})

			It("should find nothing", func() {
				Expect(amount).To(Equal(0.0))
			})
		})
	})

	Describe("fallback scanning", func() {
		When("only a symbol-prefixed amount exists", func() {
			BeforeEach(func() {
				text = "paid with card\n$ 85.25 charged"
			})

			It("should return it", func() {
				Expect(amount).To(Equal(85.25))
			})
		})

		When("only a comma-grouped number exists", func() {
			BeforeEach(func() {
				text = "reference 1,200,300 on file"
			})

			It("should return it", func() {
				Expect(amount).To(Equal(1200300.0))
			})
		})

		When("only a PKR-prefixed amount exists", func() {
			BeforeEach(func() {
				text = "charged PKR 5,000 net"
			})

			It("should return it", func() {
				Expect(amount).To(Equal(5000.0))
			})
		})

		When("every candidate is below the noise floor", func() {
			BeforeEach(func() {
				text = "$9.99 fee"
			})

			It("should return zero", func() {
				Expect(amount).To(Equal(0.0))
			})
		})

		When("no numbers exist anywhere", func() {
			BeforeEach(func() {
				text = "no numbers here at all"
			})

			It("should return zero", func() {
				Expect(amount).To(Equal(0.0))
			})
		})
	})

	When("running twice on the same text", func() {
		BeforeEach(func() {
			text = "Total Amount: $500.00\nPage 3 of 10"
		})

		It("should be deterministic", func() {
			Expect(analyzer.extractAmount(text)).To(Equal(amount))
		})
	})
})
