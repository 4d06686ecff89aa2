// Package misc holds program identity.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X rcss/misc.version=... -X rcss/misc.gitHash=...".
var (
	version = "dev"
	gitHash = ""
)

const appName = "rcss"

// GetAppName returns the executable name without extension, falling back to
// the program name when it cannot be determined.
func GetAppName() string {
	if len(os.Args) == 0 {
		return appName
	}
	name := strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	if name == "" || name == "." {
		return appName
	}
	return name
}

func GetVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
