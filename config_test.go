package zxcvbncore_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	zxcvbncore "github.com/passwdlab/zxcvbn-core"
)

var _ = Describe("Configuration", func() {
	var configuration zxcvbncore.Config
	BeforeEach(func() {
		configuration = zxcvbncore.NewConfig()
	})

	Context("when loading from disk", func() {
		It("should be possible to load configuration from a file", func() {
			payload := `{"values":{"min_year_space":25}}`
			buffer := bytes.NewBufferString(payload)
			nread, err := configuration.ReadFrom(buffer)
			Expect(nread).Should(Equal(int64(len(payload))))
			Expect(err).ShouldNot(HaveOccurred())

			v, err := configuration.Get("min_year_space")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v).Should(Equal(25.0))
		})

		It("should return an error if configuration file is invalid", func() {
			invalidBuffer := bytes.NewBuffer([]byte{0xc0, 0xff, 0xee})
			_, err := configuration.ReadFrom(invalidBuffer)
			Expect(err).Should(HaveOccurred())
		})
	})

	Context("when saving to disk", func() {
		It("should round-trip through JSON", func() {
			configuration.Set("min_year_space", 30.0)

			buffer := &bytes.Buffer{}
			_, err := configuration.WriteTo(buffer)
			Expect(err).ShouldNot(HaveOccurred())

			var reloaded zxcvbncore.Config
			_, err = reloaded.ReadFrom(buffer)
			Expect(err).ShouldNot(HaveOccurred())

			v, err := reloaded.Get("min_year_space")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v).Should(Equal(30.0))
		})

		It("should round-trip through YAML", func() {
			configuration.Set("min_year_space", 15.0)

			buffer := &bytes.Buffer{}
			Expect(configuration.WriteYAML(buffer)).To(Succeed())

			var reloaded zxcvbncore.Config
			Expect(reloaded.ReadYAML(buffer)).To(Succeed())

			v, err := reloaded.Get("min_year_space")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(v).Should(Equal(15.0))
		})
	})

	Context("when using global options", func() {
		It("should report unset options as an error", func() {
			_, err := configuration.GetGlobal(zxcvbncore.ExcludeAdditive)
			Expect(err).Should(HaveOccurred())
		})

		It("should save and retrieve global settings", func() {
			configuration.SetGlobal(zxcvbncore.ExcludeAdditive, "enabled")
			value, err := configuration.GetGlobal(zxcvbncore.ExcludeAdditive)
			Expect(err).Should(BeNil())
			Expect(value).Should(Equal("enabled"))

			enabled, err := configuration.IsGlobalEnabled(zxcvbncore.ExcludeAdditive)
			Expect(err).Should(BeNil())
			Expect(enabled).Should(BeTrue())
		})
	})

	Context("when deriving tunables", func() {
		It("produces the reference defaults for an unmodified config", func() {
			tunables := configuration.Tunables()
			Expect(tunables.BruteforceCardinality).To(Equal(10.0))
			Expect(tunables.MinGuessesBeforeGrowingSequence).To(Equal(10000.0))
			Expect(tunables.MinSubmatchGuessesSingleChar).To(Equal(10.0))
			Expect(tunables.MinSubmatchGuessesMultiChar).To(Equal(50.0))
			Expect(tunables.MinYearSpace).To(Equal(20.0))
		})

		It("reflects an overridden tunable", func() {
			configuration.Set("min_year_space", 40.0)
			Expect(configuration.Tunables().MinYearSpace).To(Equal(40.0))
		})
	})
})
