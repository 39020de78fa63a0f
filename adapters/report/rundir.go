package report

import (
	"os"
	"path/filepath"
	"strings"

	"surveyscope/domain/core"
	"surveyscope/domain/survey"
	"surveyscope/internal/errors"
)

// RunDirName builds the descriptive folder name for one analysis run,
// e.g. "20260830_142501_Platform_Berlin" or "20260830_142501_AllTeams_AllLocations".
func RunDirName(sel survey.Selector, ts core.Timestamp, includeTimestamp bool) string {
	teamPart := "AllTeams"
	if !sel.TeamAll() {
		teamPart = strings.ReplaceAll(sel.Team, " ", "_")
	}
	locationPart := "AllLocations"
	if !sel.LocationAll() {
		locationPart = strings.ReplaceAll(sel.Location, " ", "_")
	}

	name := teamPart + "_" + locationPart
	if includeTimestamp {
		name = ts.RunStamp() + "_" + name
	}
	return name
}

// CreateRunDir creates the run directory under base and returns its path.
func CreateRunDir(base string, sel survey.Selector, ts core.Timestamp, includeTimestamp bool) (string, error) {
	dir := filepath.Join(base, RunDirName(sel, ts, includeTimestamp))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create run directory %s", dir)
	}
	return dir, nil
}
