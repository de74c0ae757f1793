package version

import (
	"runtime"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = origVersion, origCommit, origBuildTime })

	Version = "1.2.0"
	Commit = "0123456789abcdef"
	BuildTime = "2024-03-09T17:04:05Z"
	want := "gridboard 1.2.0 (commit: 0123456, built: 2024-03-09T17:04:05Z)"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGet(t *testing.T) {
	origCommit := Commit
	t.Cleanup(func() { Commit = origCommit })

	Commit = "abc"
	info := Get()
	if info.Commit != "abc" {
		t.Errorf("Commit = %q, want abc", info.Commit)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if got := shortCommit(info.Commit); got != "abc" {
		t.Errorf("shortCommit() = %q, want abc", got)
	}
}
