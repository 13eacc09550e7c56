package version

import (
	// Stdlib
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MatcherString matches a project version string: a dot-separated sequence
// of non-negative integers, at least one component long.
const MatcherString = "[0-9]+([.][0-9]+)*"

var matcher = regexp.MustCompile("^" + MatcherString + "$")

type InvalidVersionError struct {
	versionString string
}

func (err *InvalidVersionError) Error() string {
	return "invalid version string: " + strconv.Quote(err.versionString)
}

// Version represents a project version, e.g. 4.12.7.
//
// Unlike semver, any number of components is allowed as long as
// there is at least one, so 4.7 is a perfectly valid version.
type Version struct {
	components []uint64
}

func Parse(versionString string) (*Version, error) {
	if !matcher.MatchString(versionString) {
		return nil, &InvalidVersionError{versionString}
	}

	parts := strings.Split(versionString, ".")
	components := make([]uint64, len(parts))
	for i, part := range parts {
		component, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, &InvalidVersionError{versionString}
		}
		components[i] = component
	}
	return &Version{components}, nil
}

// FromTag parses a release tag, e.g. v4.12.7.
func FromTag(tag string) (*Version, error) {
	if !strings.HasPrefix(tag, "v") {
		return nil, fmt.Errorf("not a release tag: %v", tag)
	}
	return Parse(tag[1:])
}

func (v *Version) Clone() *Version {
	components := make([]uint64, len(v.components))
	copy(components, v.components)
	return &Version{components}
}

// IncrementLast returns a new version with the last component
// incremented by one, all other components staying untouched.
func (v *Version) IncrementLast() *Version {
	ver := v.Clone()
	ver.components[len(ver.components)-1]++
	return ver
}

// LT compares the versions component-wise. In case one version is
// a prefix of the other, the shorter one is considered smaller,
// so 4.7 < 4.7.0.
func (v *Version) LT(other *Version) bool {
	for i, component := range v.components {
		if i >= len(other.components) {
			return false
		}
		if component != other.components[i] {
			return component < other.components[i]
		}
	}
	return len(v.components) < len(other.components)
}

func (v *Version) String() string {
	parts := make([]string, len(v.components))
	for i, component := range v.components {
		parts[i] = strconv.FormatUint(component, 10)
	}
	return strings.Join(parts, ".")
}

func (v *Version) ReleaseTagString() string {
	return "v" + v.String()
}
