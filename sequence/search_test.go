package sequence_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/passwdlab/zxcvbn-core/guess"
	"github.com/passwdlab/zxcvbn-core/match"
	"github.com/passwdlab/zxcvbn-core/sequence"
)

var _ = Describe("Search", func() {
	Context("with an empty password", func() {
		It("returns guesses=1 and an empty sequence", func() {
			result, err := sequence.Search("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Guesses).To(Equal(1.0))
			Expect(result.GuessesLog10).To(Equal(0.0))
			Expect(result.Sequence).To(BeEmpty())
		})
	})

	Context("with no candidate matches", func() {
		It("falls back to a single bruteforce match", func() {
			result, err := sequence.Search("a", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Sequence).To(HaveLen(1))
			Expect(result.Sequence[0]).To(BeAssignableToTypeOf(&match.Bruteforce{}))
			Expect(result.Guesses).To(Equal(12.0)) // 1! * 11 + 10000^0
		})
	})

	Context("coverage", func() {
		It("produces a non-overlapping cover of the whole password", func() {
			password := "hello2020"
			matches := []match.Match{
				&match.Dictionary{SpanInfo: match.Span{I: 0, J: 4, Token: "hello"}, Rank: 1},
				&match.Date{SpanInfo: match.Span{I: 5, J: 8, Token: "2020"}, Year: 2020},
			}
			result, err := sequence.Search(password, matches, sequence.WithTunables(guess.Tunables{
				BruteforceCardinality:           10,
				MinGuessesBeforeGrowingSequence: 10000,
				MinSubmatchGuessesSingleChar:    10,
				MinSubmatchGuessesMultiChar:     50,
				MinYearSpace:                    20,
				ReferenceYear:                   2024,
			}))
			Expect(err).NotTo(HaveOccurred())

			cursor := 0
			for _, m := range result.Sequence {
				span := m.Span()
				Expect(span.I).To(Equal(cursor))
				cursor = span.J + 1
			}
			Expect(cursor).To(Equal(len(password)))
		})
	})

	Context("exclude additive", func() {
		It("makes total guesses exactly l! times the product of the cover's guesses", func() {
			password := "hello"
			matches := []match.Match{
				&match.Dictionary{SpanInfo: match.Span{I: 0, J: 4, Token: "hello"}, Rank: 3},
			}
			result, err := sequence.Search(password, matches, sequence.ExcludeAdditive())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Sequence).To(HaveLen(1))

			var product float64 = 1
			for _, m := range result.Sequence {
				product *= m.Estimate().Guesses
			}
			Expect(result.Guesses).To(BeNumerically("~", product, 1e-6))
		})
	})

	Context("idempotence", func() {
		It("returns equal numeric output across repeated calls on fresh inputs", func() {
			build := func() []match.Match {
				return []match.Match{
					&match.Dictionary{SpanInfo: match.Span{I: 0, J: 4, Token: "hello"}, Rank: 3},
				}
			}
			r1, err1 := sequence.Search("hello", build())
			r2, err2 := sequence.Search("hello", build())
			Expect(err1).NotTo(HaveOccurred())
			Expect(err2).NotTo(HaveOccurred())
			Expect(r1.Guesses).To(Equal(r2.Guesses))
		})
	})

	Context("multi-byte passwords", func() {
		It("does not apply the submatch floor to a match covering the whole password", func() {
			password := "café" // 5 bytes, 4 runes: "é" is two UTF-8 bytes
			matches := []match.Match{
				&match.Dictionary{SpanInfo: match.Span{I: 0, J: len(password) - 1, Token: password}, Rank: 1},
			}
			result, err := sequence.Search(password, matches)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Guesses).To(Equal(2.0)) // 1! * 1 + 10000^0, same shape as the ASCII case
		})
	})

	Context("malformed input", func() {
		It("rejects a match whose span is out of bounds", func() {
			matches := []match.Match{
				&match.Dictionary{SpanInfo: match.Span{I: 0, J: 10, Token: "toolong"}, Rank: 1},
			}
			_, err := sequence.Search("short", matches)
			Expect(err).To(HaveOccurred())
		})
	})
})
