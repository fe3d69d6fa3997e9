package period

import "fmt"

// ApplyFilter appends a half-open date predicate on column to a query
// when a range is present. Every data source applies its window through
// this one helper so the boundary semantics cannot drift per source.
// Placeholders continue from len(args).
func ApplyFilter(query string, args []any, column string, r *Range) (string, []any) {
	if r == nil {
		return query, args
	}
	query += fmt.Sprintf(" AND %s >= $%d AND %s < $%d", column, len(args)+1, column, len(args)+2)
	args = append(args, r.Start, r.End)
	return query, args
}
