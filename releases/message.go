package releases

import (
	// Stdlib
	"fmt"
	"strings"

	// Internal
	"github.com/tnozicka/doozer/git"
	"github.com/tnozicka/doozer/version"
)

// CommitMessage returns the message for the release preparation commit:
// the subject line mentioning the new release tag, then a blank line,
// then the given commits, one line per commit, the newest one first.
//
// In case there are no commits to mention, the message is just the subject.
func CommitMessage(ver *version.Version, commits []*git.Commit) string {
	lines := make([]string, 0, 2+len(commits))
	lines = append(lines, fmt.Sprintf("Prepare for release %v", ver.ReleaseTagString()))
	if len(commits) != 0 {
		lines = append(lines, "")
		for _, commit := range commits {
			lines = append(lines, commit.OnelineString())
		}
	}
	return strings.Join(lines, "\n")
}
