package survey

// Wildcard is the reserved selector value meaning "no filter on this
// dimension". It collides with any literal data value named "all"; that
// ambiguity is accepted.
const Wildcard = "all"

// Selector is the (team, location) filter that produces the "filtered" view.
type Selector struct {
	Team     string
	Location string
}

// AllGroups selects every row.
func AllGroups() Selector {
	return Selector{Team: Wildcard, Location: Wildcard}
}

// TeamAll reports whether the team dimension is unfiltered.
func (s Selector) TeamAll() bool { return s.Team == Wildcard }

// LocationAll reports whether the location dimension is unfiltered.
func (s Selector) LocationAll() bool { return s.Location == Wildcard }

// TeamDisplay returns a human-readable team label.
func (s Selector) TeamDisplay() string {
	if s.TeamAll() {
		return "All Teams"
	}
	return s.Team
}

// LocationDisplay returns a human-readable location label.
func (s Selector) LocationDisplay() string {
	if s.LocationAll() {
		return "All Locations"
	}
	return s.Location
}

// GroupCount is one distinct team or location value with its response count.
type GroupCount struct {
	Name  string
	Count int
}

// GroupInfo is the inventory of distinct teams and locations in a table,
// sorted by name. It feeds the selection prompt and the groups command.
type GroupInfo struct {
	Teams     []GroupCount
	Locations []GroupCount
}
