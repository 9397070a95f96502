package winepath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newPrefix lays out a minimal real prefix: drive_c plus symlinked
// dosdevices entries.
func newPrefix(t *testing.T) string {
	t.Helper()
	prefix := filepath.Join(t.TempDir(), "prefix")
	for _, d := range []string{"drive_c/windows", "dosdevices"} {
		if err := os.MkdirAll(filepath.Join(prefix, d), 0755); err != nil {
			t.Fatalf("MkdirAll(%q): %v", d, err)
		}
	}
	if err := os.Symlink("../drive_c", filepath.Join(prefix, "dosdevices", "c:")); err != nil {
		t.Fatalf("Symlink: %v", err)
	}
	return prefix
}

func TestGuestToHost(t *testing.T) {
	prefix := newPrefix(t)

	host, err := GuestToHost(prefix, `C:\WINDOWS\notepad.exe`)
	if err != nil {
		t.Fatalf("GuestToHost: %v", err)
	}
	if want := filepath.Join(prefix, "drive_c/windows/notepad.exe"); host != want {
		t.Errorf("GuestToHost = %q, want %q", host, want)
	}

	if _, err := GuestToHost(prefix, `Q:\x`); !errors.Is(err, ErrUnmappedDrive) {
		t.Errorf("GuestToHost(Q:\\x) error = %v, want ErrUnmappedDrive", err)
	}
}

func TestHostToGuest(t *testing.T) {
	prefix := newPrefix(t)

	guest, err := HostToGuest(prefix, filepath.Join(prefix, "drive_c/windows"))
	if err != nil {
		t.Fatalf("HostToGuest: %v", err)
	}
	if want := `C:\windows`; guest != want {
		t.Errorf("HostToGuest = %q, want %q", guest, want)
	}

	if _, err := HostToGuest(prefix, "/outside/everything"); !errors.Is(err, ErrNoDriveCoversPath) {
		t.Errorf("HostToGuest error = %v, want ErrNoDriveCoversPath", err)
	}
}

func TestDrives(t *testing.T) {
	prefix := newPrefix(t)

	mappings, err := Drives(prefix)
	if err != nil {
		t.Fatalf("Drives: %v", err)
	}
	if len(mappings) != 1 {
		t.Fatalf("len(mappings) = %d, want 1", len(mappings))
	}
	if mappings[0].Letter != 'C' {
		t.Errorf("Letter = %v, want C", mappings[0].Letter)
	}
	if want := filepath.Join(prefix, "drive_c"); mappings[0].Root != want {
		t.Errorf("Root = %q, want %q", mappings[0].Root, want)
	}
}

func TestMissingPrefix(t *testing.T) {
	if _, err := Drives(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrMappingDirUnreadable) {
		t.Fatalf("Drives error = %v, want ErrMappingDirUnreadable", err)
	}
}
