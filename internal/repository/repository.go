// Package repository holds the SQL access layer. Each entity has an
// interface consumed by services and controllers plus a concrete
// implementation over a pooled *sql.DB.
package repository

import "strings"

func joinClauses(clauses []string) string {
	return strings.Join(clauses, ", ")
}
