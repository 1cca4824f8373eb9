// Package semver decides whether a running release should be upgraded.
// Versions are major.minor.patch with an optional v prefix and an optional
// -rcN suffix.
package semver

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a parsed release version.
type Version struct {
	Major int
	Minor int
	Patch int
	RC    bool
	RCNum int
}

// String returns the version without the v prefix.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.RC {
		s += "-rc"
		if v.RCNum > 0 {
			s += strconv.Itoa(v.RCNum)
		}
	}
	return s
}

// Parse converts a version string into a Version.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	vs := s
	if !strings.HasPrefix(vs, "v") {
		vs = "v" + vs
	}

	if !semver.IsValid(vs) || semver.Build(vs) != "" {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}

	core := strings.TrimPrefix(vs, "v")
	pre := semver.Prerelease(vs)
	core = strings.TrimSuffix(core, pre)

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: expecting major.minor.patch", s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		nums[i] = n
	}

	v := Version{
		Major: nums[0],
		Minor: nums[1],
		Patch: nums[2],
	}

	if pre != "" {
		rc := strings.ToLower(strings.TrimPrefix(pre, "-"))
		if !strings.HasPrefix(rc, "rc") {
			return Version{}, fmt.Errorf("invalid version %q: only rc pre-releases are supported", s)
		}

		v.RC = true
		if n := strings.TrimPrefix(rc, "rc"); n != "" {
			num, err := strconv.Atoi(n)
			if err != nil {
				return Version{}, fmt.Errorf("invalid version %q: bad rc number", s)
			}
			v.RCNum = num
		}
	}

	return v, nil
}

// ShouldUpgrade reports whether current should be upgraded to latest. The
// first differing component of major, minor and patch decides. When those
// match, an rc build is upgradable only to its own final release.
func ShouldUpgrade(current string, latest string) (bool, error) {
	cur, err := Parse(current)
	if err != nil {
		return false, fmt.Errorf("current: %w", err)
	}

	lst, err := Parse(latest)
	if err != nil {
		return false, fmt.Errorf("latest: %w", err)
	}

	return cur.Less(lst), nil
}

// Less applies the upgrade ordering between two versions.
func (v Version) Less(latest Version) bool {
	cur := [3]int{v.Major, v.Minor, v.Patch}
	lst := [3]int{latest.Major, latest.Minor, latest.Patch}

	for i := range cur {
		switch {
		case lst[i] > cur[i]:
			return true
		case lst[i] < cur[i]:
			return false
		}
	}

	return v.RC && !latest.RC
}
