package selection

import (
	"strings"
)

// Summary renders a selection for the summary card: the full address breakdown, the
// position alone when there is no street address, or who decides when delegated.
func Summary(sel *Selection, counterparty string) string {
	if sel == nil || sel.Address == nil {
		return "No location selected"
	}

	if sel.Delegated() {
		if counterparty == "" {
			counterparty = "the other party"
		}

		return "To be decided by " + counterparty
	}

	a := sel.Address
	if !a.HasStreetAddress() {
		if a.Location == nil {
			return "No location selected"
		}

		return a.Location.String()
	}

	lines := []string{a.Name, a.StreetAddress}
	if a.Apartment != "" {
		lines = append(lines, a.Apartment)
	}
	lines = append(lines, joinNonEmpty(" ", joinNonEmpty(", ", a.City, a.Region), a.PostalCode))
	if a.Country != "" {
		lines = append(lines, a.Country)
	}
	if a.Message != "" {
		lines = append(lines, "Note: "+a.Message)
	}

	return strings.Join(lines, "\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, sep)
}
