// Package winepath converts file paths between the Windows-style form seen
// by software running under Wine and the host form on the underlying
// filesystem, by reading the prefix's dosdevices mappings directly. No Wine
// process is spawned.
//
// The functions here are one-shot: each call discovers the drive mappings of
// the prefix as they are at that moment. Callers translating many paths
// against one prefix should construct a translator once via NewTranslator
// and refresh it explicitly when the mappings change.
package winepath

import (
	"github.com/rjdinis/winepath/internal/translate"
	"github.com/rjdinis/winepath/internal/types"
)

// Translator converts paths for one prefix over a fixed mapping snapshot.
type Translator = translate.Translator

// NewTranslator discovers the prefix's drive mappings and returns a reusable
// translator. Construction fails if the dosdevices directory cannot be read.
func NewTranslator(prefix string) (*Translator, error) {
	return translate.New(prefix)
}

// GuestToHost converts a Windows-style guest path (C:\... or
// \\server\share\...) to the host path it maps to under prefix.
func GuestToHost(prefix, guestPath string) (string, error) {
	tr, err := translate.New(prefix)
	if err != nil {
		return "", err
	}
	return tr.GuestToHost(guestPath)
}

// HostToGuest converts a host path to its Windows-style guest form, using
// the longest-matching drive mapping of prefix.
func HostToGuest(prefix, hostPath string) (string, error) {
	tr, err := translate.New(prefix)
	if err != nil {
		return "", err
	}
	return tr.HostToGuest(hostPath)
}

// DriveMapping associates one guest drive letter with its host root.
type DriveMapping struct {
	Letter types.DriveLetter
	Root   string
}

// Drives enumerates the mappings configured in prefix, in letter order.
func Drives(prefix string) ([]DriveMapping, error) {
	tr, err := translate.New(prefix)
	if err != nil {
		return nil, err
	}
	m := tr.Drives()
	mappings := make([]DriveMapping, 0, m.Len())
	for _, letter := range m.Letters() {
		root, _ := m.Root(letter)
		mappings = append(mappings, DriveMapping{Letter: letter, Root: root})
	}
	return mappings, nil
}

// Error helpers re-exported for callers that switch on failure modes.
var (
	ErrUnmappedDrive        = types.ErrUnmappedDrive
	ErrNoDriveCoversPath    = types.ErrNoDriveCoversPath
	ErrRelativePath         = types.ErrRelativePath
	ErrMappingDirUnreadable = types.ErrMappingDirUnreadable
)
