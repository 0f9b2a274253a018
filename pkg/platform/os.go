// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// UsesXDG reports whether goos locates user configuration through the XDG
// base directory convention rather than a platform-specific folder.
func UsesXDG(goos string) bool {
	return goos != Windows && goos != Darwin
}

// Current reports whether the running system uses XDG directories.
func Current() bool {
	return UsesXDG(runtime.GOOS)
}
