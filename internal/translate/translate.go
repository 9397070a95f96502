// Package translate converts path strings between the guest (Windows-style)
// and host (POSIX) representations of a wine prefix, replicating the mapping
// wine itself applies, without spawning a winepath process.
package translate

import (
	"path"

	"github.com/spf13/afero"

	"github.com/rjdinis/winepath/internal/drives"
	"github.com/rjdinis/winepath/internal/resolve"
	"github.com/rjdinis/winepath/internal/syntax"
	"github.com/rjdinis/winepath/internal/types"
)

// uncDir is the dosdevices area UNC paths map under:
// \\server\share\... <=> <prefix>/dosdevices/unc/<server>/<share>/...
const uncDir = "unc"

// Translator converts between guest and host paths for one prefix. The drive
// snapshot is immutable after construction, so concurrent translations are
// safe; Refresh replaces the snapshot when the caller wants to observe
// mapping changes.
type Translator struct {
	fsys   afero.Fs
	prefix string
	drives drives.Map
}

// New builds a Translator for the prefix on the real filesystem.
func New(prefix string) (*Translator, error) {
	return NewFs(afero.NewOsFs(), prefix)
}

// NewFs builds a Translator on an explicit filesystem. Discovery runs once
// here; a missing or unreadable dosdevices directory fails construction.
func NewFs(fsys afero.Fs, prefix string) (*Translator, error) {
	t := &Translator{fsys: fsys, prefix: path.Clean(prefix)}
	if err := t.Refresh(); err != nil {
		return nil, err
	}
	return t, nil
}

// Refresh re-reads the dosdevices directory and replaces the drive snapshot.
func (t *Translator) Refresh() error {
	m, err := drives.Discover(t.fsys, t.prefix)
	if err != nil {
		return err
	}
	t.drives = m
	return nil
}

// Prefix returns the prefix this translator reads.
func (t *Translator) Prefix() string {
	return t.prefix
}

// Drives returns the current drive mapping snapshot.
func (t *Translator) Drives() drives.Map {
	return t.drives
}

// GuestToHost converts a guest path string to the host path it maps to.
// Segments are matched case-insensitively against the directories that
// exist; a tail that does not exist yet passes through verbatim, so paths
// about to be created still translate.
func (t *Translator) GuestToHost(raw string) (string, error) {
	gp, err := syntax.ParseGuest(raw)
	if err != nil {
		return "", &types.TranslateError{Op: "unix", Path: raw, Err: err}
	}

	var root string
	switch {
	case gp.UNC:
		root = path.Join(t.prefix, drives.DosDevicesDir, uncDir, gp.Server, gp.Share)
	case gp.Drive.Valid():
		r, ok := t.drives.Root(gp.Drive)
		if !ok {
			return "", &types.TranslateError{
				Op:   "unix",
				Path: raw,
				Err:  types.ErrUnmappedDrive,
				Help: "map the drive in winecfg or add a dosdevices symlink, e.g. ln -s /some/dir " + t.prefix + "/dosdevices/" + string(gp.Drive.Lower()) + ":",
			}
		}
		root = r
	default:
		return "", &types.TranslateError{Op: "unix", Path: raw, Err: types.ErrRelativePath}
	}

	resolved, rest := resolve.Path(t.fsys, root, gp.Segments)

	hp := syntax.ParseHost(root)
	hp.Segments = append(hp.Segments, resolved...)
	hp.Segments = append(hp.Segments, rest...)
	return syntax.FormatHost(hp), nil
}

// HostToGuest converts a host path string to its guest form. The host
// filesystem is the source of truth for casing, so segments pass through
// unchanged. Paths inside the prefix's unc area come back in UNC form;
// everything else goes through longest-prefix drive matching.
func (t *Translator) HostToGuest(raw string) (string, error) {
	hp := syntax.ParseHost(raw)

	if gp, ok := t.uncGuestPath(hp); ok {
		return syntax.FormatGuest(gp), nil
	}

	letter, rest, ok := t.drives.LongestMatch(hp)
	if !ok {
		return "", &types.TranslateError{
			Op:   "windows",
			Path: raw,
			Err:  types.ErrNoDriveCoversPath,
			Help: "no drive maps a parent of this path; a z: link to / usually covers the whole host filesystem",
		}
	}

	return syntax.FormatGuest(syntax.GuestPath{Drive: letter, Segments: rest}), nil
}

// uncGuestPath reconstructs \\server\share\... when hp lies in the prefix's
// dosdevices/unc area.
func (t *Translator) uncGuestPath(hp syntax.HostPath) (syntax.GuestPath, bool) {
	uncRoot := syntax.ParseHost(path.Join(t.prefix, drives.DosDevicesDir, uncDir))
	if !hp.Absolute || len(hp.Segments) < len(uncRoot.Segments)+2 {
		return syntax.GuestPath{}, false
	}
	for i, seg := range uncRoot.Segments {
		if hp.Segments[i] != seg {
			return syntax.GuestPath{}, false
		}
	}
	rest := hp.Segments[len(uncRoot.Segments):]
	return syntax.GuestPath{
		UNC:      true,
		Server:   rest[0],
		Share:    rest[1],
		Segments: rest[2:],
	}, true
}
