package db

import (
	"database/sql"
	"fmt"
)

// StoredCase is one parameter object as kept in the catalog, params as JSON.
type StoredCase struct {
	Position   int
	LineNumber int
	Params     string
}

// ReplaceCases stores cases as the full case list of a file. Rows keep their
// id when a case stays at the same position; positions past the end are removed.
func ReplaceCases(sqlDB *sql.DB, fileID int64, cases []StoredCase) error {
	tx, err := sqlDB.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range cases {
		_, err := tx.Exec(`
			INSERT INTO cases (file_id, position, line_number, params)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (file_id, position) DO UPDATE SET
				line_number = excluded.line_number,
				params = excluded.params,
				updated_at = datetime('now')
		`, fileID, c.Position, c.LineNumber, c.Params)
		if err != nil {
			return fmt.Errorf("storing case %d: %w", c.Position, err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM cases WHERE file_id = ? AND position >= ?`, fileID, len(cases)); err != nil {
		return fmt.Errorf("removing stale cases: %w", err)
	}

	return tx.Commit()
}
