package analysis

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("scoreConfidence", func() {
	var (
		analyzer *Analyzer
		text     string
		score    float64
	)

	BeforeEach(func() {
		analyzer = NewWithRenderer(DefaultConfig(), &fakeEngine{}, &fakeRenderer{})
	})

	JustBeforeEach(func() {
		score = analyzer.scoreConfidence(text)
	})

	When("the text is empty", func() {
		BeforeEach(func() {
			text = ""
		})

		It("should score exactly zero", func() {
			Expect(score).To(Equal(0.0))
		})
	})

	When("the text has digits only", func() {
		BeforeEach(func() {
			text = "12345"
		})

		It("should score the numeric signal", func() {
			Expect(score).To(BeNumerically("~", 0.4, 1e-9))
		})
	})

	When("the text has a keyword only", func() {
		BeforeEach(func() {
			text = "receipt"
		})

		It("should score the keyword signal", func() {
			Expect(score).To(BeNumerically("~", 0.3, 1e-9))
		})
	})

	When("the text has digits and a keyword", func() {
		BeforeEach(func() {
			text = "invoice 42"
		})

		It("should add the signals", func() {
			Expect(score).To(BeNumerically("~", 0.7, 1e-9))
		})
	})

	When("all three signals are present", func() {
		BeforeEach(func() {
			text = "invoice 42 " + strings.Repeat("word ", 25)
		})

		It("should cap the score at one", func() {
			Expect(score).To(Equal(1.0))
		})
	})

	When("the text is long but has no digits or keywords", func() {
		BeforeEach(func() {
			text = strings.Repeat("lorem ipsum ", 15)
		})

		It("should score only the length signal", func() {
			Expect(score).To(BeNumerically("~", 0.3, 1e-9))
		})
	})

	It("should always stay within the unit interval", func() {
		for _, sample := range []string{"", "a", "invoice", "7", strings.Repeat("invoice 9 ", 50)} {
			s := analyzer.scoreConfidence(sample)
			Expect(s).To(BeNumerically(">=", 0.0))
			Expect(s).To(BeNumerically("<=", 1.0))
		}
	})
})
