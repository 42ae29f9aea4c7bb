// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"
)

// BuildInClause builds "column IN ($n, ...)" for a batch lookup.
// startIndex is the number of the first placeholder.
// Returns an empty clause when values is empty.
func BuildInClause(column string, values []string, startIndex int) (clause string, args []interface{}) {
	if len(values) == 0 {
		return "", nil
	}
	placeholders := make([]string, len(values))
	args = make([]interface{}, len(values))
	for i, v := range values {
		placeholders[i] = fmt.Sprintf("$%d", startIndex+i)
		args[i] = v
	}
	return column + " IN (" + strings.Join(placeholders, ", ") + ")", args
}

// uniqueNonEmpty drops blanks and duplicates while keeping order.
func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
