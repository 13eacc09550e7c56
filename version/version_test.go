package version_test

import (
	// Stdlib
	"sort"

	// Internal
	. "github.com/tnozicka/doozer/version"

	// Vendor
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("parsing a version string", func() {

	It("should accept dot-separated sequences of non-negative integers", func() {
		for _, versionString := range []string{
			"0",
			"4",
			"3.10",
			"0.0.0",
			"4.12.7",
			"1.2.3.4.5",
		} {
			ver, err := Parse(versionString)
			Expect(err).To(BeNil())
			Expect(ver.String()).To(Equal(versionString))
		}
	})

	It("should reject everything else", func() {
		for _, versionString := range []string{
			"",
			".",
			"1.",
			".1",
			"1..2",
			"v1.2.3",
			"1.2.x",
			" 1.2",
			"1.2 ",
			"1,2",
			"-1",
			"1.-2",
			"1.2.3\n",
		} {
			_, err := Parse(versionString)
			Expect(err).ToNot(BeNil(), "version string: %q", versionString)
		}
	})
})

var _ = Describe("incrementing the last version component", func() {

	bump := func(versionString string) string {
		ver, err := Parse(versionString)
		Expect(err).To(BeNil())
		return ver.IncrementLast().String()
	}

	It("should increment the last component by one and keep the rest", func() {
		Expect(bump("1.2.9")).To(Equal("1.2.10"))
		Expect(bump("0.0.0")).To(Equal("0.0.1"))
		Expect(bump("3.10")).To(Equal("3.11"))
		Expect(bump("7")).To(Equal("8"))
	})

	It("should not modify the receiver", func() {
		ver, err := Parse("4.7")
		Expect(err).To(BeNil())

		next := ver.IncrementLast()
		Expect(ver.String()).To(Equal("4.7"))
		Expect(next.String()).To(Equal("4.8"))
	})

	It("should not be idempotent", func() {
		ver, err := Parse("4.7")
		Expect(err).To(BeNil())

		Expect(ver.IncrementLast().IncrementLast().String()).To(Equal("4.9"))
	})
})

var _ = Describe("comparing versions", func() {

	mustParse := func(versionString string) *Version {
		ver, err := Parse(versionString)
		Expect(err).To(BeNil())
		return ver
	}

	It("should compare the versions component-wise", func() {
		Expect(mustParse("4.7").LT(mustParse("4.10"))).To(BeTrue())
		Expect(mustParse("4.10").LT(mustParse("4.7"))).To(BeFalse())
		Expect(mustParse("1.2.9").LT(mustParse("1.2.10"))).To(BeTrue())
	})

	It("should treat a strict prefix as the smaller version", func() {
		Expect(mustParse("4.7").LT(mustParse("4.7.0"))).To(BeTrue())
		Expect(mustParse("4.7.0").LT(mustParse("4.7"))).To(BeFalse())
		Expect(mustParse("4.7").LT(mustParse("4.7"))).To(BeFalse())
	})

	It("should sort a version list accordingly", func() {
		vs := Versions{
			mustParse("4.10"),
			mustParse("4.7.0"),
			mustParse("4.7"),
			mustParse("3.11"),
		}
		sort.Sort(vs)

		sorted := make([]string, len(vs))
		for i, ver := range vs {
			sorted[i] = ver.String()
		}
		Expect(sorted).To(Equal([]string{"3.11", "4.7", "4.7.0", "4.10"}))
	})
})

var _ = Describe("converting versions to release tags and back", func() {

	It("should prepend 'v' to get the release tag", func() {
		ver, err := Parse("4.8")
		Expect(err).To(BeNil())
		Expect(ver.ReleaseTagString()).To(Equal("v4.8"))
	})

	It("should parse a release tag back into the version", func() {
		ver, err := FromTag("v4.8")
		Expect(err).To(BeNil())
		Expect(ver.String()).To(Equal("4.8"))
	})

	It("should refuse a tag not starting with 'v'", func() {
		_, err := FromTag("4.8")
		Expect(err).ToNot(BeNil())
	})
})
