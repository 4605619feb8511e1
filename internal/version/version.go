// Package version parses OpenAPI and Swagger document versions and matches
// them against the version lists rules declare.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

type Version struct {
	Major int
	Minor int
	Patch int
}

func New(major, minor, patch int) *Version {
	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) Equal(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor && v.Patch == other.Patch
}

func (v Version) LessThan(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// Parse parses "major.minor" or "major.minor.patch". Pre-release and build
// suffixes ("3.1.0-rc1", "3.0.3+build") are ignored.
func Parse(version string) (*Version, error) {
	trimmed := strings.TrimSpace(version)
	if i := strings.IndexAny(trimmed, "-+"); i >= 0 {
		trimmed = trimmed[:i]
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("invalid version %q", version)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q: %w", version, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid version %q: components cannot be negative", version)
		}
		nums[i] = n
	}

	return New(nums[0], nums[1], nums[2]), nil
}

// MustParse is Parse but panics on error.
func MustParse(version string) *Version {
	v, err := Parse(version)
	if err != nil {
		panic(err)
	}
	return v
}

// Matches reports whether docVersion falls under ruleVersion. A rule version
// names a major ("3"), a minor ("3.1") or an exact release ("3.1.0").
func Matches(docVersion, ruleVersion string) bool {
	if docVersion == ruleVersion {
		return true
	}

	doc, err := Parse(docVersion)
	if err != nil {
		return strings.HasPrefix(docVersion, ruleVersion+".")
	}

	parts := strings.Split(strings.TrimSpace(ruleVersion), ".")
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return false
		}
		switch i {
		case 0:
			if doc.Major != n {
				return false
			}
		case 1:
			if doc.Minor != n {
				return false
			}
		case 2:
			if doc.Patch != n {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// MatchesAny reports whether docVersion matches any of ruleVersions.
// An empty list matches every version.
func MatchesAny(docVersion string, ruleVersions []string) bool {
	if len(ruleVersions) == 0 {
		return true
	}
	for _, rv := range ruleVersions {
		if Matches(docVersion, rv) {
			return true
		}
	}
	return false
}
