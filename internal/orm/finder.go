package orm

import "strings"

// FinderPrefix starts every dynamic finder name accepted by FindBy.
const FinderPrefix = "find_by_"

// ParseFinder extracts the ordered column list from a dynamic finder name
// such as "find_by_fname_and_lname". The suffix after the prefix is split
// on the "and" separator; each segment names one column. Parsing is
// case-insensitive and carries no knowledge of any particular table, so
// callers must still validate the columns against their entity's mapping.
func ParseFinder(name string) ([]string, error) {
	lower := strings.ToLower(name)
	if !strings.HasPrefix(lower, FinderPrefix) {
		return nil, &MalformedFinderError{Name: name, Reason: "missing find_by_ prefix"}
	}

	suffix := strings.TrimPrefix(lower, FinderPrefix)
	if suffix == "" {
		return nil, &MalformedFinderError{Name: name, Reason: "no columns named"}
	}

	cols := strings.Split(suffix, "_and_")
	for _, col := range cols {
		if col == "" || col == "and" {
			return nil, &MalformedFinderError{Name: name, Reason: "empty column segment"}
		}
	}

	return cols, nil
}
