package louis

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
)

// Version is the wrapper version, populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// MinimumEngineVersion is the oldest liblouis release the wrapper supports.
var MinimumEngineVersion = semver.New("3.0.0")

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// CheckEngineVersion reports an error when v is older than
// MinimumEngineVersion.
func CheckEngineVersion(v *semver.Version) error {
	if v == nil {
		return fmt.Errorf("louis: nil engine version")
	}
	if v.LessThan(*MinimumEngineVersion) {
		return fmt.Errorf("louis: engine version %s is older than supported %s", v, MinimumEngineVersion)
	}
	return nil
}
