package db

import "strings"

func joinAssignments(assignments []string) string {
	return strings.Join(assignments, ", ")
}
