// Package mention implements the note composer's @-mention support: a live
// suggestion state machine over a fixed team roster, mention extraction from
// submitted text, and a segment splitter for rendering.
package mention

import "strings"

// Member is a team member eligible for @-mentions.
type Member struct {
	ID   string
	Name string
	Role string
}

// Roster is the fixed team list. Suggestion results preserve roster order.
var Roster = []Member{
	{ID: "1", Name: "Alice Johnson", Role: "Recruiter"},
	{ID: "2", Name: "Bob Smith", Role: "Hiring Manager"},
	{ID: "3", Name: "Carol White", Role: "HR Lead"},
	{ID: "4", Name: "David Brown", Role: "Tech Lead"},
	{ID: "5", Name: "Emma Davis", Role: "Recruiter"},
	{ID: "6", Name: "Frank Miller", Role: "Department Head"},
	{ID: "7", Name: "Grace Wilson", Role: "HR Coordinator"},
	{ID: "8", Name: "Henry Taylor", Role: "Engineering Manager"},
}

// search returns the roster members whose name contains the query,
// case-insensitively, in roster order. An empty query matches everyone.
func search(roster []Member, query string) []Member {
	q := strings.ToLower(query)
	out := make([]Member, 0, len(roster))
	for _, m := range roster {
		if strings.Contains(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out
}
