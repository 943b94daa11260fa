package topology

// NYC subway trunk metadata. Lines sharing a trunk share a colour and a group
// name on station signage.

var trunkGroups = map[string][]string{
	"Broadway-Seventh Avenue": {"1", "2", "3"},
	"Lexington Avenue":        {"4", "5", "6"},
	"Flushing":                {"7"},
	"Eighth Avenue":           {"A", "C", "E"},
	"Sixth Avenue":            {"B", "D", "F", "M"},
	"Crosstown":               {"G"},
	"Nassau Street":           {"J", "Z"},
	"Canarsie":                {"L"},
	"Broadway":                {"N", "Q", "R", "W"},
	"Shuttle":                 {"S"},
}

var trunkColours = map[string]string{
	"Broadway-Seventh Avenue": "#EE352E",
	"Lexington Avenue":        "#00933C",
	"Flushing":                "#B933AD",
	"Eighth Avenue":           "#0039A6",
	"Sixth Avenue":            "#FF6319",
	"Crosstown":               "#6CBE45",
	"Nassau Street":           "#996633",
	"Canarsie":                "#A7A9AC",
	"Broadway":                "#FCCC0A",
	"Shuttle":                 "#808183",
}

const defaultLineColour = "#808183"

// LineGroup returns the trunk group name for a line id, or empty when the
// line is not one of the standard services.
func LineGroup(lineID string) string {
	for group, lines := range trunkGroups {
		for _, id := range lines {
			if id == lineID {
				return group
			}
		}
	}

	return ""
}

// LineColour returns the signage colour for a line id.
func LineColour(lineID string) string {
	group := LineGroup(lineID)
	if group == "" {
		return defaultLineColour
	}

	return trunkColours[group]
}
