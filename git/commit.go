package git

import (
	// Stdlib
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

type Commit struct {
	SHA          string
	MessageTitle string
}

// OnelineString returns the commit formatted the way
// git log --oneline would print it.
func (commit *Commit) OnelineString() string {
	return fmt.Sprintf("%v %v", commit.SHA, commit.MessageTitle)
}

// ShowCommitRange returns the list of commits specified by the given revision
// range, the newest commit first. Merge commits are left out.
func ShowCommitRange(revisionRange string) ([]*Commit, error) {
	stdout, err := RunCommand("log", "--oneline", "--no-merges", revisionRange)
	if err != nil {
		return nil, err
	}
	return ParseOnelineLog(stdout)
}

// ParseOnelineLog parses git log --oneline output, which is a sequence of
//
//   $abbreviatedHexsha $messageTitle
//
// lines, one line per commit.
func ParseOnelineLog(sout *bytes.Buffer) ([]*Commit, error) {
	var (
		commits     = make([]*Commit, 0)
		lineNum     int
		linePattern = regexp.MustCompile("^([0-9a-f]+) (.*)$")
		scanner     = bufio.NewScanner(sout)
	)
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := linePattern.FindStringSubmatch(line)
		if len(parts) != 3 {
			return nil, fmt.Errorf("failed to parse git log [line %v]: %v", lineNum, line)
		}
		commits = append(commits, &Commit{
			SHA:          parts[1],
			MessageTitle: parts[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return commits, nil
}
