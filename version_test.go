package modus

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestVersionTag_PrefixesV(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestVersionLine_StartsWithTag(t *testing.T) {
	if got := VersionLine(); !strings.HasPrefix(got, "modus "+VersionTag()) {
		t.Fatalf("version line: got %q", got)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-alpha.1", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "01.2.3", want: false},
	}

	for _, tc := range cases {
		got := IsSemver(tc.version)
		if got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestRevision(t *testing.T) {
	build := func(settings ...debug.BuildSetting) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Settings: settings}, true
		}
	}
	cases := []struct {
		name string
		read func() (*debug.BuildInfo, bool)
		want string
	}{
		{name: "no build info", read: func() (*debug.BuildInfo, bool) { return nil, false }, want: ""},
		{name: "no vcs", read: build(), want: ""},
		{
			name: "clean",
			read: build(debug.BuildSetting{Key: "vcs.revision", Value: "0123456789abcdef"}),
			want: "0123456789ab",
		},
		{
			name: "dirty",
			read: build(
				debug.BuildSetting{Key: "vcs.revision", Value: "abc"},
				debug.BuildSetting{Key: "vcs.modified", Value: "true"},
			),
			want: "abc-dirty",
		},
	}
	for _, tc := range cases {
		if got := revision(tc.read); got != tc.want {
			t.Fatalf("%s: revision()=%q, want %q", tc.name, got, tc.want)
		}
	}
}
