package releases_test

import (
	// Internal
	"github.com/tnozicka/doozer/git"
	. "github.com/tnozicka/doozer/releases"
	"github.com/tnozicka/doozer/version"

	// Vendor
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("formatting the release preparation commit message", func() {

	mustParse := func(versionString string) *version.Version {
		ver, err := version.Parse(versionString)
		Expect(err).To(BeNil())
		return ver
	}

	It("should mention the release tag and list the commits, newest first", func() {
		commits := []*git.Commit{
			{SHA: "def456", MessageTitle: "Add feature"},
			{SHA: "abc123", MessageTitle: "Fix bug"},
		}

		message := CommitMessage(mustParse("4.8"), commits)
		Expect(message).To(Equal(
			"Prepare for release v4.8\n\ndef456 Add feature\nabc123 Fix bug"))
	})

	It("should emit just the subject when there are no commits to list", func() {
		message := CommitMessage(mustParse("4.8"), nil)
		Expect(message).To(Equal("Prepare for release v4.8"))
	})
})
