// Package buildinfo carries values stamped at link time via -ldflags "-X".
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}
}

func String() string {
	return fmt.Sprintf("patterns %s (commit=%s, date=%s, %s)", Version, Commit, Date, runtime.Version())
}
