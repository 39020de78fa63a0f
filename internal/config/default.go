package config

import (
	"fmt"
	"os"

	"surveyscope/internal/errors"
)

// defaultConfigYAML is the commented starter configuration written by
// WriteDefault. It analyzes nothing useful as-is; authors replace the
// questions with their own column headers.
const defaultConfigYAML = `# surveyscope configuration
#
# Question text must match the column headers of the data file. Whitespace
# differences (runs of spaces, non-breaking spaces, tabs) are tolerated.

data_source:
  file_path: responses.xlsx
  # sheet_name: Sheet1        # optional; first sheet when omitted

columns:
  team_column: Team
  location_column: Location

categories:
  Leadership:
    - "My manager communicates clearly"
    - "My manager supports my development"
  Workload:
    - "My workload is manageable"

# Optional: free-text comment columns per category.
comment_fields:
  Leadership: "Any comments about leadership?"

# Optional: response text to numeric score. When omitted entirely, scores
# are parsed from a trailing parenthetical in the response text instead,
# e.g. "Strongly Agree (2)".
likert_mapping:
  Strongly Agree: 2
  Agree: 1
  Neutral: 0
  Disagree: -1
  Strongly Disagree: -2
  I don't know: null         # explicitly no score

analysis:
  significant_difference_threshold: 0.2
  similar_threshold: 0.1
  max_individual_responses: 10

output:
  directory: output
  include_timestamp: true
`

// WriteDefault creates a starter configuration file at path. It is an
// explicit operation, never a side effect of loading, and refuses to
// overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.ConfigInvalid(fmt.Sprintf("configuration file %s already exists (use --force to overwrite)", path))
		}
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write default configuration to %s", path)
	}
	return nil
}
