package buildinfo

import (
	"runtime/debug"
	"testing"
)

func reset(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = "dev", "none", "unknown"
}

func TestApply(t *testing.T) {
	reset(t)
	apply(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})
	if Version != "v0.3.1" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("got %s/%s/%s", Version, Commit, Date)
	}
}

func TestApply_KeepsLdflags(t *testing.T) {
	reset(t)
	Version, Commit = "v1.0.0", "deadbeef"
	apply(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})
	if Version != "v1.0.0" || Commit != "deadbeef" {
		t.Errorf("ldflags values overwritten: %s/%s", Version, Commit)
	}
}

func TestTemplate(t *testing.T) {
	reset(t)
	want := "{{.Name}} version dev\ncommit: none\nbuilt: unknown\n"
	if got := Template(); got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
}
