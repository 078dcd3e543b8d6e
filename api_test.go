package zxcvbncore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	zxcvbncore "github.com/passwdlab/zxcvbn-core"
	"github.com/passwdlab/zxcvbn-core/match"
)

var _ = Describe("MostGuessableMatchSequence", func() {
	It("returns guesses=1 for an empty password", func() {
		result, err := zxcvbncore.MostGuessableMatchSequence("", nil, zxcvbncore.NewConfig(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Guesses).To(Equal(1.0))
		Expect(result.Sequence).To(BeEmpty())
	})

	It("honors the exclude_additive global option", func() {
		cfg := zxcvbncore.NewConfig()
		cfg.SetGlobal(zxcvbncore.ExcludeAdditive, "enabled")

		matches := []match.Match{
			&match.Dictionary{SpanInfo: match.Span{I: 0, J: 4, Token: "hello"}, Rank: 3},
		}
		result, err := zxcvbncore.MostGuessableMatchSequence("hello", matches, cfg, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Guesses).To(Equal(3.0))
	})
})
