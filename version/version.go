// Package version exposes the module's semantic version, parsed and
// validated at init time via blang/semver so a malformed version
// string (a release-process bug) fails fast rather than propagating
// into a CLI's --version output unchecked.
package version

import "github.com/blang/semver/v4"

// raw is the module's released version. Bumped by the release
// process; never derived from VCS state at build time.
const raw = "0.1.0"

// Version is raw, parsed once at package init.
var Version = semver.MustParse(raw)

// String returns the canonical semver string.
func String() string { return Version.String() }
