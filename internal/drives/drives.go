// Package drives discovers the drive-letter mappings of a wine prefix and
// answers prefix-match queries against them.
//
// A prefix keeps its mappings in <prefix>/dosdevices: one entry per drive,
// named "c:", "d:", ..., each a symbolic link to the host directory the drive
// represents. Discovery reads that layout into an immutable snapshot; callers
// that want fresher state re-run discovery.
package drives

import (
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/rjdinis/winepath/internal/syntax"
	"github.com/rjdinis/winepath/internal/types"
)

// DosDevicesDir is the mapping directory name inside a wine prefix.
const DosDevicesDir = "dosdevices"

// Map is an immutable snapshot of drive letter to host root mappings.
type Map struct {
	roots [26]string
}

// Discover lists the prefix's dosdevices directory and builds the mapping
// snapshot. Entries that are not <letter>: names, or whose target is not an
// existing directory, are skipped. A dosdevices directory that cannot be
// listed is a hard error: that is not the same state as "no drives mapped".
func Discover(fsys afero.Fs, prefix string) (Map, error) {
	dosdevices := path.Join(prefix, DosDevicesDir)

	entries, err := afero.ReadDir(fsys, dosdevices)
	if err != nil {
		return Map{}, &types.TranslateError{
			Op:   "discover",
			Path: dosdevices,
			Err:  types.ErrMappingDirUnreadable,
			Help: "check that WINEPREFIX points at an initialized wine prefix",
		}
	}

	var m Map
	for _, entry := range entries {
		letter, ok := driveEntryName(entry.Name())
		if !ok {
			continue
		}
		root, ok := resolveEntry(fsys, dosdevices, entry.Name())
		if !ok {
			continue
		}
		m.roots[letter.Index()] = root
	}
	return m, nil
}

// driveEntryName matches the "<letter>:" naming convention of dosdevices.
func driveEntryName(name string) (types.DriveLetter, bool) {
	if len(name) != 2 || name[1] != ':' {
		return 0, false
	}
	return types.ParseDriveLetter(name[0])
}

// resolveEntry follows one level of symbolic indirection from a dosdevices
// entry to its host directory. Relative link targets are joined to the
// dosdevices directory and lexically cleaned (wine writes targets like
// "../drive_c"). On filesystems without symlink support a plain directory
// entry is accepted as the mapping itself.
func resolveEntry(fsys afero.Fs, dosdevices, name string) (string, bool) {
	full := path.Join(dosdevices, name)

	if lr, ok := fsys.(afero.LinkReader); ok {
		if target, err := lr.ReadlinkIfPossible(full); err == nil {
			if !strings.HasPrefix(target, "/") {
				target = path.Join(dosdevices, target)
			}
			target = path.Clean(target)
			if isDir, err := afero.IsDir(fsys, target); err == nil && isDir {
				return target, true
			}
			return "", false
		}
	}

	if isDir, err := afero.IsDir(fsys, full); err == nil && isDir {
		return full, true
	}
	return "", false
}

// Root returns the host root mapped to the letter.
func (m Map) Root(letter types.DriveLetter) (string, bool) {
	if !letter.Valid() {
		return "", false
	}
	root := m.roots[letter.Index()]
	return root, root != ""
}

// Letters returns the mapped drive letters in alphabetical order.
func (m Map) Letters() []types.DriveLetter {
	var letters []types.DriveLetter
	for i, root := range m.roots {
		if root != "" {
			letters = append(letters, types.DriveLetter('A'+i))
		}
	}
	return letters
}

// Len returns the number of mapped drives.
func (m Map) Len() int {
	n := 0
	for _, root := range m.roots {
		if root != "" {
			n++
		}
	}
	return n
}

// LongestMatch finds the mapping whose host root shares the most leading
// segments with hp. Ties go to the smallest drive letter. Relative host
// paths match nothing, since every mapped root is absolute.
func (m Map) LongestMatch(hp syntax.HostPath) (types.DriveLetter, []string, bool) {
	if !hp.Absolute {
		return 0, nil, false
	}

	best := -1
	var bestLetter types.DriveLetter
	for i, root := range m.roots {
		if root == "" {
			continue
		}
		rootSegs := syntax.ParseHost(root).Segments
		if len(rootSegs) > len(hp.Segments) || len(rootSegs) <= best {
			continue
		}
		if segmentsEqual(hp.Segments[:len(rootSegs)], rootSegs) {
			best = len(rootSegs)
			bestLetter = types.DriveLetter('A' + i)
		}
	}
	if best < 0 {
		return 0, nil, false
	}
	return bestLetter, hp.Segments[best:], true
}

func segmentsEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m Map) String() string {
	letters := m.Letters()
	parts := make([]string, 0, len(letters))
	for _, l := range letters {
		root, _ := m.Root(l)
		parts = append(parts, l.String()+": => "+root)
	}
	return strings.Join(parts, ", ")
}
