package version

import "testing"

func TestInfo_Dev(t *testing.T) {
	// Save and restore package-level vars.
	origSHA, origDate := CommitSHA, BuildDate
	defer func() { CommitSHA, BuildDate = origSHA, origDate }()

	CommitSHA = "dev"
	BuildDate = "unknown"
	if info := Info(); info != Version {
		t.Errorf("Info() = %q, want %q", info, Version)
	}
}

func TestInfo_Release(t *testing.T) {
	origSHA, origDate := CommitSHA, BuildDate
	defer func() { CommitSHA, BuildDate = origSHA, origDate }()

	CommitSHA = "abc1234"
	BuildDate = "2026-10-01"
	want := Version + " (abc1234, 2026-10-01)"
	if info := Info(); info != want {
		t.Errorf("Info() = %q, want %q", info, want)
	}
}

func TestInfo_TrimsPrefix(t *testing.T) {
	origVersion, origSHA := Version, CommitSHA
	defer func() { Version, CommitSHA = origVersion, origSHA }()

	Version = "v1.2.3"
	CommitSHA = "dev"
	if info := Info(); info != "1.2.3" {
		t.Errorf("Info() = %q, want %q", info, "1.2.3")
	}
}

func TestFingerprint(t *testing.T) {
	origVersion, origSHA := Version, CommitSHA
	defer func() { Version, CommitSHA = origVersion, origSHA }()

	Version = "0.3.0"
	CommitSHA = "abc1234"
	if got := Fingerprint(); got != "0.3.0+abc1234" {
		t.Errorf("Fingerprint() = %q", got)
	}
	CommitSHA = "def5678"
	if got := Fingerprint(); got != "0.3.0+def5678" {
		t.Errorf("Fingerprint() = %q", got)
	}
}
