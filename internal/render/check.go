package render

import (
	"fmt"
	"strings"

	"github.com/Zachkp/folio/internal/content"
)

// NavigationError lists navigation entries whose anchor does not resolve to
// exactly one rendered section.
type NavigationError struct {
	Missing   []string
	Duplicate []string
}

func (e *NavigationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "no section for "+quoteAll(e.Missing))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, "several sections for "+quoteAll(e.Duplicate))
	}
	return "navigation: " + strings.Join(parts, "; ")
}

func quoteAll(ids []string) string {
	q := make([]string, len(ids))
	for i, id := range ids {
		q[i] = fmt.Sprintf("%q", "#"+id)
	}
	return strings.Join(q, ", ")
}

// SectionIDs returns the ids of every <section> in root, in document order.
func SectionIDs(root Node) []string {
	var ids []string
	for _, s := range root.Find(ByTag("section")) {
		if id, ok := s.Attr("id"); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// CheckNavigation verifies that every navigation entry matches the id of
// exactly one rendered section. It returns a *NavigationError otherwise.
func CheckNavigation(root Node, nav []content.NavigationEntry) error {
	counts := make(map[string]int)
	for _, id := range SectionIDs(root) {
		counts[id]++
	}

	var nerr NavigationError
	for _, n := range nav {
		switch counts[n.ID] {
		case 0:
			nerr.Missing = append(nerr.Missing, n.ID)
		case 1:
		default:
			nerr.Duplicate = append(nerr.Duplicate, n.ID)
		}
	}
	if len(nerr.Missing) > 0 || len(nerr.Duplicate) > 0 {
		return &nerr
	}
	return nil
}
