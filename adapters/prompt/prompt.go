package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"surveyscope/domain/survey"
	"surveyscope/internal/errors"
)

// ConsoleSelector collects the team/location selection from an interactive
// numbered menu. It implements ports.SelectionProvider.
type ConsoleSelector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleSelector creates a selector reading from in and prompting on out.
func NewConsoleSelector(in io.Reader, out io.Writer) *ConsoleSelector {
	return &ConsoleSelector{in: bufio.NewReader(in), out: out}
}

// Select prompts for a team and a location. Each menu lists the available
// values with response counts plus an "All" entry mapping to the wildcard.
func (s *ConsoleSelector) Select(info survey.GroupInfo) (survey.Selector, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "DETAILED ANALYSIS SELECTION")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "Select a team and location combination for detailed analysis.")
	fmt.Fprintln(s.out, "Choose the 'All' entry to include every group in that dimension.")

	team, err := s.pick("team", "All Teams", info.Teams)
	if err != nil {
		return survey.Selector{}, err
	}
	location, err := s.pick("location", "All Locations", info.Locations)
	if err != nil {
		return survey.Selector{}, err
	}

	return survey.Selector{Team: team, Location: location}, nil
}

// pick runs one numbered menu and returns the chosen literal value, or the
// wildcard for the final "All" entry.
func (s *ConsoleSelector) pick(dimension, allLabel string, groups []survey.GroupCount) (string, error) {
	if len(groups) == 0 {
		return survey.Wildcard, nil
	}

	fmt.Fprintf(s.out, "\nAvailable %ss (%d):\n", dimension, len(groups))
	for i, g := range groups {
		fmt.Fprintf(s.out, "   %d. %s (%d responses)\n", i+1, g.Name, g.Count)
	}
	allNum := len(groups) + 1
	fmt.Fprintf(s.out, "   %d. %s\n", allNum, allLabel)

	for {
		fmt.Fprintf(s.out, "\nSelect %s (1-%d): ", dimension, allNum)

		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			return "", errors.Wrapf(err, "selection input closed before a %s was chosen", dimension)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil:
			fmt.Fprintln(s.out, "Please enter a valid number.")
		case choice >= 1 && choice <= len(groups):
			fmt.Fprintf(s.out, "Selected %s: %s\n", dimension, groups[choice-1].Name)
			return groups[choice-1].Name, nil
		case choice == allNum:
			fmt.Fprintf(s.out, "Selected: %s\n", allLabel)
			return survey.Wildcard, nil
		default:
			fmt.Fprintf(s.out, "Please enter a number between 1 and %d.\n", allNum)
		}

		if err != nil {
			return "", errors.Wrapf(err, "selection input closed before a %s was chosen", dimension)
		}
	}
}

// StaticSelector returns a fixed selector, used when team/location come
// from command-line flags instead of the prompt.
type StaticSelector struct {
	Selector survey.Selector
}

// Select implements ports.SelectionProvider.
func (s StaticSelector) Select(survey.GroupInfo) (survey.Selector, error) {
	return s.Selector, nil
}
