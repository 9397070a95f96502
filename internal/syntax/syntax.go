// Package syntax parses and formats guest (Windows-style) and host (POSIX)
// path strings. Parsing and formatting are pure: no filesystem access, no
// case folding beyond the drive letter itself.
package syntax

import (
	"strings"

	"github.com/rjdinis/winepath/internal/types"
)

// GuestPath is the structured form of a Windows-style path. Exactly one of
// three shapes: drive-rooted (Drive set), UNC (UNC true, Server/Share set),
// or relative (neither, which the translator rejects).
type GuestPath struct {
	Drive    types.DriveLetter // 0 when not drive-rooted
	UNC      bool
	Server   string
	Share    string
	Segments []string
}

// HostPath is the structured form of a POSIX path.
type HostPath struct {
	Absolute bool
	Segments []string
}

func isSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

// splitSegments splits a path remainder on either separator. One leading and
// one trailing separator are tolerated; any other empty segment (consecutive
// separators) is malformed.
func splitSegments(raw string) ([]string, error) {
	if raw != "" && isSeparator(raw[0]) {
		raw = raw[1:]
	}
	if raw != "" && isSeparator(raw[len(raw)-1]) {
		raw = raw[:len(raw)-1]
	}
	if raw == "" {
		return nil, nil
	}

	var segs []string
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || isSeparator(raw[i]) {
			if i == start {
				return nil, types.ErrEmptySegment
			}
			segs = append(segs, raw[start:i])
			start = i + 1
		}
	}
	return segs, nil
}

// ParseGuest parses a raw guest path string. Both separator styles are
// accepted. The drive letter is folded to uppercase; segment case is
// preserved verbatim.
func ParseGuest(raw string) (GuestPath, error) {
	if raw == "" {
		return GuestPath{}, types.ErrEmptyPath
	}

	// UNC: two leading separators, then server and share.
	if len(raw) >= 2 && isSeparator(raw[0]) && isSeparator(raw[1]) {
		segs, err := splitSegments(raw[2:])
		if err != nil {
			return GuestPath{}, types.ErrBadUNCPath
		}
		if len(segs) < 2 {
			return GuestPath{}, types.ErrBadUNCPath
		}
		rest := segs[2:]
		if len(rest) == 0 {
			rest = nil
		}
		return GuestPath{
			UNC:      true,
			Server:   segs[0],
			Share:    segs[1],
			Segments: rest,
		}, nil
	}

	// Drive-rooted: "X:" followed by a separator or the end of the string.
	if len(raw) >= 2 && raw[1] == ':' {
		letter, ok := types.ParseDriveLetter(raw[0])
		if !ok {
			return GuestPath{}, types.ErrBadDriveSpec
		}
		rest := raw[2:]
		if rest != "" && !isSeparator(rest[0]) {
			// Drive-relative ("C:foo") depends on a per-drive current
			// directory, which is a guest-process concept.
			return GuestPath{}, types.ErrBadDriveSpec
		}
		segs, err := splitSegments(rest)
		if err != nil {
			return GuestPath{}, err
		}
		return GuestPath{Drive: letter, Segments: segs}, nil
	}

	// No designator: relative. Parsed, but the translator refuses it.
	segs, err := splitSegments(raw)
	if err != nil {
		return GuestPath{}, err
	}
	return GuestPath{Segments: segs}, nil
}

// ParseHost parses a POSIX path string. Repeated separators collapse and
// cannot fail.
func ParseHost(raw string) HostPath {
	hp := HostPath{Absolute: strings.HasPrefix(raw, "/")}
	for _, seg := range strings.Split(raw, "/") {
		if seg != "" {
			hp.Segments = append(hp.Segments, seg)
		}
	}
	return hp
}

// FormatGuest renders a GuestPath in canonical backslash form.
func FormatGuest(p GuestPath) string {
	var b strings.Builder
	if p.UNC {
		b.WriteString(`\\`)
		b.WriteString(p.Server)
		b.WriteByte('\\')
		b.WriteString(p.Share)
	} else if letter, ok := types.ParseDriveLetter(byte(p.Drive)); ok {
		b.WriteByte(byte(letter))
		b.WriteByte(':')
		if len(p.Segments) == 0 {
			b.WriteByte('\\')
		}
	}
	for _, seg := range p.Segments {
		b.WriteByte('\\')
		b.WriteString(seg)
	}
	return b.String()
}

// FormatHost renders a HostPath in canonical slash form.
func FormatHost(p HostPath) string {
	joined := strings.Join(p.Segments, "/")
	if p.Absolute {
		return "/" + joined
	}
	return joined
}

// IsRelative reports whether the guest path lacks both a drive designator
// and a UNC designator.
func (p GuestPath) IsRelative() bool {
	_, ok := types.ParseDriveLetter(byte(p.Drive))
	return !p.UNC && !ok
}
