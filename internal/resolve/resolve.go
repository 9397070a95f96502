// Package resolve matches path segments against on-disk entries
// case-insensitively while preserving the real on-disk casing. The guest path
// model is case-insensitive; the host filesystem usually is not.
package resolve

import (
	"sort"

	"github.com/spf13/afero"

	"github.com/rjdinis/winepath/internal/types"
)

// equalFoldASCII compares two names under ASCII case folding only. Guest
// names are folded the way the guest environment folds them, not by Unicode
// rules.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// Segment finds the entry of dir whose name matches wanted. An exact byte
// match wins; otherwise the lexicographically smallest case-insensitive match
// is returned, so entries differing only by case resolve deterministically.
func Segment(fsys afero.Fs, dir, wanted string) (string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name() == wanted {
			return wanted, nil
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		if equalFoldASCII(name, wanted) {
			return name, nil
		}
	}
	return "", types.ErrNotFound
}

// Path walks segments downward from root, resolving each against the entries
// that exist. It stops at the first segment that cannot be resolved (or whose
// parent is not a directory) and returns both the resolved head and the
// untouched tail. A nonexistent tail is not an error here: translating a path
// that is about to be created must still succeed.
func Path(fsys afero.Fs, root string, segments []string) (resolved, rest []string) {
	dir := root
	for i, seg := range segments {
		if ok, err := afero.IsDir(fsys, dir); err != nil || !ok {
			return resolved, segments[i:]
		}
		name, err := Segment(fsys, dir, seg)
		if err != nil {
			return resolved, segments[i:]
		}
		resolved = append(resolved, name)
		if dir == "/" {
			dir += name
		} else {
			dir += "/" + name
		}
	}
	return resolved, nil
}
