package desktop

import (
	"strings"

	"github.com/safing/autostart/base/utils"
)

// LookupExecutable searches for an executable called name and returns its path.
//
// Names starting with "/" are checked directly. Other names are looked up in
// each directory of the colon separated searchPath, in order, with a leading
// "~" expanded to home. Empty directories are skipped. The first executable
// regular file wins.
func LookupExecutable(name, searchPath, home string) (string, bool) {
	if name == "" {
		return "", false
	}

	if strings.HasPrefix(name, "/") {
		return name, utils.IsExecutable(name)
	}

	if searchPath == "" {
		return "", false
	}

	for _, dir := range strings.Split(searchPath, ":") {
		dir = ExpandHome(dir, home)
		if dir == "" {
			continue
		}

		candidate := dir + "/" + name
		if utils.IsExecutable(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// ResolveExecutable reports whether LookupExecutable finds name.
func ResolveExecutable(name, searchPath, home string) bool {
	_, ok := LookupExecutable(name, searchPath, home)
	return ok
}

// ExpandHome replaces a leading "~" of path with home. Paths starting with
// "~" are dropped (empty result) if home is unknown.
func ExpandHome(path, home string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	if home == "" {
		return ""
	}
	return strings.TrimSuffix(home, "/") + path[1:]
}
