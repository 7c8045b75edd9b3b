// Package platform isolates operating-system conditional behavior behind a
// single interface, so the utility packages stay free of GOOS branches.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/filemanpro/fmkit/pkg/fmerrors"
)

// Platform abstracts the filesystem conventions of an operating system
// family. Implementations are immutable; both can be exercised on any host.
type Platform interface {
	// Name returns the platform family name, e.g. "posix" or "windows".
	Name() string

	// Separator returns the path separator character.
	Separator() byte

	// IsReservedName reports whether name (with its extension stripped)
	// matches a reserved device name on this platform.
	IsReservedName(name string) bool

	// HomeDir resolves the user home directory from the environment.
	HomeDir() (string, error)
}

var (
	_ Platform = POSIX{}
	_ Platform = Windows{}
)

// reservedWindowsNames are device names disallowed as filenames on
// Windows-family systems regardless of case or extension.
var reservedWindowsNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// Native returns the [Platform] for the current operating system.
//
//nolint:ireturn // Selection happens once, at startup.
func Native() Platform {
	if runtime.GOOS == "windows" {
		return Windows{}
	}

	return POSIX{}
}

// POSIX implements [Platform] for POSIX-like systems.
type POSIX struct{}

func (POSIX) Name() string {
	return "posix"
}

func (POSIX) Separator() byte {
	return '/'
}

// IsReservedName always returns false; POSIX systems have no reserved
// device filenames.
func (POSIX) IsReservedName(_ string) bool {
	return false
}

func (POSIX) HomeDir() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}

	return "", fmt.Errorf("%w: HOME is not set", fmerrors.ErrHomeNotFound)
}

// Windows implements [Platform] for Windows-like systems.
type Windows struct{}

func (Windows) Name() string {
	return "windows"
}

func (Windows) Separator() byte {
	return '\\'
}

// IsReservedName reports whether name matches a reserved device name,
// comparing case-insensitively with the extension stripped.
func (Windows) IsReservedName(name string) bool {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}

	_, ok := reservedWindowsNames[strings.ToUpper(name)]

	return ok
}

func (Windows) HomeDir() (string, error) {
	if home := os.Getenv("USERPROFILE"); home != "" {
		return home, nil
	}

	drive := os.Getenv("HOMEDRIVE")
	path := os.Getenv("HOMEPATH")

	if drive != "" && path != "" {
		return drive + path, nil
	}

	return "", fmt.Errorf("%w: USERPROFILE and HOMEDRIVE+HOMEPATH are not set", fmerrors.ErrHomeNotFound)
}
