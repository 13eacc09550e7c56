package releases

import (
	// Stdlib
	"bufio"
	"fmt"
	"regexp"
	"sort"

	// Internal
	"github.com/tnozicka/doozer/errs"
	"github.com/tnozicka/doozer/git"
	"github.com/tnozicka/doozer/version"
)

var releaseTagMatcher = regexp.MustCompile("^v" + version.MatcherString + "$")

// ListTags returns the list of all release tags,
// sorted by the versions they represent.
func ListTags() (tags []string, err error) {
	var task = "Get release tags"

	// Get all tags that look like release tags.
	stdout, err := git.RunCommand("tag", "--list", "v*")
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	// Parse the output to get sortable versions.
	var vers version.Versions
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		if !releaseTagMatcher.MatchString(line) {
			continue
		}
		ver, err := version.FromTag(line)
		if err != nil {
			continue
		}
		vers = append(vers, ver)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.NewError(task, err)
	}

	// Sort the versions.
	sort.Sort(vers)

	// Convert versions back to tag names and return.
	tgs := make([]string, 0, len(vers))
	for _, ver := range vers {
		tgs = append(tgs, ver.ReleaseTagString())
	}
	return tgs, nil
}

// ListCommitsSinceRelease returns the list of commits that are reachable
// from the current branch tip but not from the release tag representing
// the given version, the newest commit first.
//
// In case the release tag does not exist, which is the case for the very
// first release, the whole history of the current branch is returned
// and tagFound is set to false so that the caller can warn the user.
func ListCommitsSinceRelease(ver *version.Version) (commits []*git.Commit, tagFound bool, err error) {
	tag := ver.ReleaseTagString()

	exists, err := git.TagExists(tag)
	if err != nil {
		return nil, false, err
	}

	task := fmt.Sprintf("List commits since release tag '%v'", tag)
	revisionRange := "HEAD"
	if exists {
		revisionRange = tag + "..HEAD"
	}
	commits, err = git.ShowCommitRange(revisionRange)
	if err != nil {
		return nil, exists, errs.NewError(task, err)
	}
	return commits, exists, nil
}

// ListNewCommits is the same as ListCommitsSinceRelease except that
// the release tag being used is the one representing the version
// currently stored in the version file.
func ListNewCommits() (commits []*git.Commit, tagFound bool, err error) {
	ver, err := version.Get()
	if err != nil {
		return nil, false, err
	}
	return ListCommitsSinceRelease(ver)
}
