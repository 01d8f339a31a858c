package mapload

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/mattn/go-sqlite3"

	"github.com/focuswithjustin/versemap/pkg/mapping"
)

// sqlIdentifier matches a bare SQL identifier: table names arrive from
// config, not user input, but they are still interpolated directly into a
// query string (driver parameter binding has no placeholder for identifiers),
// so they are validated against this pattern before use.
var sqlIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// FromSQLite reads an ordered sequence of mapping.Entry values from
// table in the SQLite database at path. table must have an integer
// "ord" column giving insertion order and text "left"/"right" columns.
func FromSQLite(path, table string) ([]mapping.Entry, error) {
	if !sqlIdentifier.MatchString(table) {
		return nil, fmt.Errorf("mapload: %q is not a valid table name", table)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening mapping database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf("SELECT left, right FROM %s ORDER BY ord ASC", table))
	if err != nil {
		return nil, fmt.Errorf("querying mapping table %s: %w", table, err)
	}
	defer rows.Close()

	var entries []mapping.Entry
	for rows.Next() {
		var e mapping.Entry
		if err := rows.Scan(&e.Left, &e.Right); err != nil {
			return nil, fmt.Errorf("scanning mapping row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mapping rows: %w", err)
	}
	return entries, nil
}
