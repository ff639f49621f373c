package version

import "runtime"

// Set at build time via -ldflags "-X ...".
var (
	Version   = "1.0.0"
	Commit    = "none"
	GoVersion = runtime.Version()
)

// ToolName identifies this converter in provenance records.
const ToolName = "open-wacz"

// UserVisible returns the tool identification string written into
// provenance logs, e.g. "open-wacz 1.0.0".
func UserVisible() string {
	return ToolName + " " + Version
}
