package releases_test

import (
	// Stdlib
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"

	// Internal
	. "github.com/tnozicka/doozer/releases"
	"github.com/tnozicka/doozer/version"

	// Vendor
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func mustGit(repoDir string, args ...string) string {
	cmd := exec.Command("git", args...)
	cmd.Dir = repoDir
	output, err := cmd.CombinedOutput()
	ExpectWithOffset(1, err).To(BeNil(), string(output))
	return string(output)
}

func mustParse(versionString string) *version.Version {
	ver, err := version.Parse(versionString)
	ExpectWithOffset(1, err).To(BeNil())
	return ver
}

func commitTestFile(repoDir, content, message string) {
	path := filepath.Join(repoDir, "notes.txt")
	ExpectWithOffset(1, ioutil.WriteFile(path, []byte(content), 0644)).To(BeNil())
	mustGit(repoDir, "add", "notes.txt")
	mustGit(repoDir, "commit", "-m", message)
}

var _ = Describe("listing releases in a test repository", func() {

	var (
		repoDir    string
		originalWd string
	)

	BeforeEach(func() {
		var err error
		originalWd, err = os.Getwd()
		Expect(err).To(BeNil())

		repoDir, err = ioutil.TempDir("", "doozer-releases-")
		Expect(err).To(BeNil())

		mustGit(repoDir, "init")
		mustGit(repoDir, "checkout", "-b", "trunk")
		mustGit(repoDir, "config", "user.name", "doozer")
		mustGit(repoDir, "config", "user.email", "doozer@example.com")
		mustGit(repoDir, "config", "commit.gpgsign", "false")

		commitTestFile(repoDir, "first\n", "Initial commit")

		Expect(os.Chdir(repoDir)).To(BeNil())
	})

	AfterEach(func() {
		Expect(os.Chdir(originalWd)).To(BeNil())
		os.RemoveAll(repoDir)
	})

	Describe("ListTags", func() {

		It("should return release tags sorted by version", func() {
			// Created out of order on purpose, git returns them
			// lexicographically, which would yield v4.10 < v4.7.
			mustGit(repoDir, "tag", "v4.10")
			mustGit(repoDir, "tag", "v4.7")
			mustGit(repoDir, "tag", "v4.7.0")

			tags, err := ListTags()
			Expect(err).To(BeNil())
			Expect(tags).To(Equal([]string{"v4.7", "v4.7.0", "v4.10"}))
		})

		It("should skip tags that are not release tags", func() {
			mustGit(repoDir, "tag", "v4.7")
			mustGit(repoDir, "tag", "vnext")
			mustGit(repoDir, "tag", "v4.8-rc1")
			mustGit(repoDir, "tag", "checkpoint")

			tags, err := ListTags()
			Expect(err).To(BeNil())
			Expect(tags).To(Equal([]string{"v4.7"}))
		})

		It("should return an empty list when there are no tags", func() {
			tags, err := ListTags()
			Expect(err).To(BeNil())
			Expect(tags).To(BeEmpty())
		})
	})

	Describe("ListCommitsSinceRelease", func() {

		BeforeEach(func() {
			mustGit(repoDir, "tag", "v4.7")
			commitTestFile(repoDir, "second\n", "Fix bug")
			commitTestFile(repoDir, "third\n", "Add feature")
		})

		It("should list the commits since the release tag, newest first", func() {
			commits, tagFound, err := ListCommitsSinceRelease(mustParse("4.7"))
			Expect(err).To(BeNil())
			Expect(tagFound).To(BeTrue())

			Expect(commits).To(HaveLen(2))
			Expect(commits[0].MessageTitle).To(Equal("Add feature"))
			Expect(commits[1].MessageTitle).To(Equal("Fix bug"))
		})

		It("should fall back to the whole history when the tag is missing", func() {
			commits, tagFound, err := ListCommitsSinceRelease(mustParse("9.9"))
			Expect(err).To(BeNil())
			Expect(tagFound).To(BeFalse())

			Expect(commits).To(HaveLen(3))
			Expect(commits[0].MessageTitle).To(Equal("Add feature"))
			Expect(commits[1].MessageTitle).To(Equal("Fix bug"))
			Expect(commits[2].MessageTitle).To(Equal("Initial commit"))
		})
	})
})
