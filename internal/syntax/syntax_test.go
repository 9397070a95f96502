package syntax

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rjdinis/winepath/internal/types"
)

func TestParseGuest(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    GuestPath
		wantErr error
	}{
		{"drive rooted", `C:\Users\me\file.txt`,
			GuestPath{Drive: 'C', Segments: []string{"Users", "me", "file.txt"}}, nil},
		{"forward slashes", `C:/Users/me`,
			GuestPath{Drive: 'C', Segments: []string{"Users", "me"}}, nil},
		{"mixed slashes", `C:\Users/me`,
			GuestPath{Drive: 'C', Segments: []string{"Users", "me"}}, nil},
		{"lowercase drive", `c:\windows`,
			GuestPath{Drive: 'C', Segments: []string{"windows"}}, nil},
		{"drive root with separator", `D:\`,
			GuestPath{Drive: 'D'}, nil},
		{"bare drive", `Z:`,
			GuestPath{Drive: 'Z'}, nil},
		{"trailing separator", `C:\a\`,
			GuestPath{Drive: 'C', Segments: []string{"a"}}, nil},
		{"case preserved", `C:\MiXeD\CaSe.TXT`,
			GuestPath{Drive: 'C', Segments: []string{"MiXeD", "CaSe.TXT"}}, nil},
		{"unc", `\\server\share\a\b`,
			GuestPath{UNC: true, Server: "server", Share: "share", Segments: []string{"a", "b"}}, nil},
		{"unc forward slashes", `//server/share/a`,
			GuestPath{UNC: true, Server: "server", Share: "share", Segments: []string{"a"}}, nil},
		{"unc root", `\\server\share`,
			GuestPath{UNC: true, Server: "server", Share: "share"}, nil},
		{"unc case preserved", `\\SERVER\Share\File`,
			GuestPath{UNC: true, Server: "SERVER", Share: "Share", Segments: []string{"File"}}, nil},
		{"relative", `a\b`,
			GuestPath{Segments: []string{"a", "b"}}, nil},

		{"empty", ``, GuestPath{}, types.ErrEmptyPath},
		{"unc missing share", `\\server`, GuestPath{}, types.ErrBadUNCPath},
		{"unc only separators", `\\`, GuestPath{}, types.ErrBadUNCPath},
		{"drive relative", `C:foo`, GuestPath{}, types.ErrBadDriveSpec},
		{"digit drive", `1:\a`, GuestPath{}, types.ErrBadDriveSpec},
		{"empty interior segment", `C:\a\\b`, GuestPath{}, types.ErrEmptySegment},
		{"unc empty interior segment", `\\server\share\a\\b`, GuestPath{}, types.ErrBadUNCPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGuest(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseGuest(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGuest(%q) unexpected error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseGuest(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseHost(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want HostPath
	}{
		{"absolute", "/home/me/file", HostPath{Absolute: true, Segments: []string{"home", "me", "file"}}},
		{"root", "/", HostPath{Absolute: true}},
		{"repeated separators", "//home///me", HostPath{Absolute: true, Segments: []string{"home", "me"}}},
		{"trailing separator", "/home/", HostPath{Absolute: true, Segments: []string{"home"}}},
		{"relative", "a/b", HostPath{Segments: []string{"a", "b"}}},
		{"empty", "", HostPath{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHost(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseHost(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatGuest(t *testing.T) {
	tests := []struct {
		name string
		p    GuestPath
		want string
	}{
		{"drive rooted", GuestPath{Drive: 'C', Segments: []string{"a", "b.txt"}}, `C:\a\b.txt`},
		{"drive root", GuestPath{Drive: 'D'}, `D:\`},
		{"lowercase drive folded", GuestPath{Drive: 'c', Segments: []string{"a"}}, `C:\a`},
		{"case untouched", GuestPath{Drive: 'C', Segments: []string{"MiXeD"}}, `C:\MiXeD`},
		{"unc", GuestPath{UNC: true, Server: "srv", Share: "sh", Segments: []string{"a"}}, `\\srv\sh\a`},
		{"unc root", GuestPath{UNC: true, Server: "srv", Share: "sh"}, `\\srv\sh`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatGuest(tt.p); got != tt.want {
				t.Errorf("FormatGuest(%+v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestFormatHost(t *testing.T) {
	tests := []struct {
		name string
		p    HostPath
		want string
	}{
		{"absolute", HostPath{Absolute: true, Segments: []string{"home", "me"}}, "/home/me"},
		{"root", HostPath{Absolute: true}, "/"},
		{"relative", HostPath{Segments: []string{"a", "b"}}, "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHost(tt.p); got != tt.want {
				t.Errorf("FormatHost(%+v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

func TestGuestRoundTrip(t *testing.T) {
	// Parsing a canonical guest string and formatting it back is identity.
	for _, raw := range []string{
		`C:\Users\me\file.txt`,
		`Z:\home\me`,
		`\\server\share\dir\file`,
		`D:\`,
	} {
		p, err := ParseGuest(raw)
		if err != nil {
			t.Fatalf("ParseGuest(%q) unexpected error: %v", raw, err)
		}
		if got := FormatGuest(p); got != raw {
			t.Errorf("FormatGuest(ParseGuest(%q)) = %q", raw, got)
		}
	}
}

func TestIsRelative(t *testing.T) {
	rel, err := ParseGuest(`docs\readme.txt`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rel.IsRelative() {
		t.Error("IsRelative() = false for undesignated path, want true")
	}

	abs, err := ParseGuest(`C:\docs`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if abs.IsRelative() {
		t.Error("IsRelative() = true for drive-rooted path, want false")
	}
}
