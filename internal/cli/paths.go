package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// defaultOutputName is used when no output path is given.
const defaultOutputName = "streamnet_connect.csv"

// ensureCSVExt appends ".csv" to path when it carries no .csv suffix,
// matching the output convention of the GIS tooling this replaces.
func ensureCSVExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return path
	}
	return path + ".csv"
}

// resolveOutputPath picks the destination for the connectivity table.
// An explicit path wins (with the .csv suffix enforced); otherwise the file
// lands in the scratch directory, falling back to the OS temp dir.
func resolveOutputPath(explicit, scratchDir string) string {
	if explicit != "" {
		return ensureCSVExt(explicit)
	}
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}
	return filepath.Join(scratchDir, defaultOutputName)
}
