package driver

import (
	"fmt"
	"os"

	"kernelc/report"

	"github.com/pelletier/go-toml"
)

// Profile carries the device compilation options the host driver hands to the
// pipeline, as they are encoded in a TOML profile file.
type Profile struct {
	// ArtifactPath is where the integration artifact is written.  Empty
	// disables artifact emission.
	ArtifactPath string `toml:"artifact-path"`

	// StubModulePath is where the LLVM stub module is written.  Empty disables
	// stub emission.
	StubModulePath string `toml:"stub-module"`

	// AllowFuncPtr tolerates calls through function values in device code.
	AllowFuncPtr bool `toml:"allow-function-pointers"`

	// LogLevel selects diagnostic verbosity: silent, error, warn, or verbose.
	LogLevel string `toml:"log-level"`
}

// LoadProfile loads and validates a profile file.
func LoadProfile(path string) (*Profile, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read profile file at `%s`: %s", path, err.Error())
	}

	prof := &Profile{}
	if err := toml.Unmarshal(buff, prof); err != nil {
		return nil, fmt.Errorf("error parsing profile file at `%s`: %s", path, err.Error())
	}

	if _, ok := logLevels[prof.LogLevel]; !ok {
		return nil, fmt.Errorf("unknown log level `%s` in profile file at `%s`", prof.LogLevel, path)
	}

	return prof, nil
}

// logLevels maps the profile spellings of log levels onto reporter levels.
// The empty spelling selects the default.
var logLevels = map[string]int{
	"":        report.LogLevelVerbose,
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// ReporterLogLevel returns the reporter log level the profile selects.
func (p *Profile) ReporterLogLevel() int {
	return logLevels[p.LogLevel]
}
