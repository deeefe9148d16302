package info

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	name    string
	license string

	// set via -ldflags "-X github.com/safing/autostart/base/info.version=..."
	version       = "dev build"
	versionNumber = "0.0.0"
	buildSource   = "unknown"
	buildTime     = "unknown"

	info     *Info
	loadInfo sync.Once
)

func init() {
	// Replace space placeholders.
	buildSource = strings.ReplaceAll(buildSource, "_", " ")
	buildTime = strings.ReplaceAll(buildTime, "_", " ")

	// Convert version string from git tag to expected format.
	version = strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(version, "v"), "_", " "))
	versionNumber = strings.TrimSpace(strings.TrimSuffix(version, "dev build"))
	if versionNumber == "" {
		versionNumber = "0.0.0"
	}
}

// Info holds the programs meta information.
type Info struct {
	Name          string
	Version       string
	VersionNumber string
	License       string

	Source    string
	BuildTime string

	Commit     string
	CommitTime string
	Dirty      bool
}

// Set sets meta information via the main routine. This should be the first thing your program calls.
func Set(setName string, setVersion string, setLicenseName string) {
	name = setName
	license = setLicenseName

	if setVersion != "" {
		version = setVersion
		versionNumber = setVersion
	}
}

// GetInfo returns all the meta information about the program.
func GetInfo() *Info {
	loadInfo.Do(func() {
		buildSettings := make(map[string]string)
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range buildInfo.Settings {
				buildSettings[setting.Key] = setting.Value
			}
		}

		info = &Info{
			Name:          name,
			Version:       version,
			VersionNumber: versionNumber,
			License:       license,
			Source:        buildSource,
			BuildTime:     buildTime,
			Commit:        buildSettings["vcs.revision"],
			CommitTime:    buildSettings["vcs.time"],
			Dirty:         buildSettings["vcs.modified"] == "true",
		}

		if info.Commit == "" {
			info.Commit = "unknown"
		}
		if info.CommitTime == "" {
			info.CommitTime = "unknown"
		}
	})

	return info
}

// Version returns the annotated version.
func Version() string {
	return version
}

// VersionNumber returns the version number only.
func VersionNumber() string {
	return versionNumber
}

// FullVersion returns the full and detailed version string.
func FullVersion() string {
	info := GetInfo()
	builder := new(strings.Builder)

	fmt.Fprintf(builder, "%s %s\n", info.Name, info.Version)
	fmt.Fprintf(builder, "\nbuilt with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(builder, "  at %s\n", info.BuildTime)

	dirtyInfo := "clean"
	if info.Dirty {
		dirtyInfo = "dirty"
	}
	fmt.Fprintf(builder, "\ncommit %s (%s)\n", info.Commit, dirtyInfo)
	fmt.Fprintf(builder, "  at %s\n", info.CommitTime)
	fmt.Fprintf(builder, "  from %s\n", info.Source)

	fmt.Fprintf(builder, "\nLicensed under the %s license.", info.License)

	return builder.String()
}

// CheckVersion checks if the metadata is ok.
func CheckVersion() error {
	if strings.HasSuffix(os.Args[0], ".test") {
		return nil
	}
	if name == "" || license == "" {
		return errors.New("must call Set() before calling CheckVersion()")
	}
	return nil
}
