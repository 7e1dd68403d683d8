package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chriserin/xt/internal/config"
	"github.com/chriserin/xt/internal/db"
	"github.com/chriserin/xt/internal/diag"
	"github.com/chriserin/xt/internal/parser"
	"github.com/chriserin/xt/internal/ui"
	"github.com/chriserin/xt/internal/value"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan the table directory and store the cases of every table file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunSync(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func RunSync(w io.Writer, cfg config.Config) error {
	if err := requireInit(cfg); err != nil {
		return err
	}

	sqlDB, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	matches, err := filepath.Glob(cfg.Glob())
	if err != nil {
		return fmt.Errorf("scanning %s/: %w", cfg.Dir, err)
	}
	sort.Strings(matches)

	sink := diag.Discard
	if cfg.Warnings {
		sink = diag.SinkFunc(func(msg string) { ui.Warn(w, msg) })
	}

	files, total := 0, 0
	for _, path := range matches {
		cases, err := loadCases(path, sink)
		if err != nil {
			return err
		}

		var id int64
		isNew := false
		err = sqlDB.QueryRow(`SELECT id FROM files WHERE file_path = ?`, path).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			res, err := sqlDB.Exec(`INSERT INTO files (file_path) VALUES (?)`, path)
			if err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			if id, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			isNew = true
		} else if err != nil {
			return fmt.Errorf("querying %s: %w", path, err)
		}

		if err := db.ReplaceCases(sqlDB, id, cases); err != nil {
			return fmt.Errorf("storing cases for %s: %w", path, err)
		}
		if _, err := sqlDB.Exec(`UPDATE files SET updated_at = datetime('now') WHERE id = ?`, id); err != nil {
			return fmt.Errorf("updating %s: %w", path, err)
		}
		slog.Debug("Synced table file", "path", path, "cases", len(cases), "new", isNew)

		if isNew {
			ui.NewLine(w, path, len(cases))
		} else {
			ui.TrkLine(w, path, len(cases))
		}
		files++
		total += len(cases)
	}

	ui.SummaryLine(w, files, total)
	return nil
}

// loadCases parses a table file into the rows stored in the catalog.
func loadCases(path string, sink diag.Sink) ([]db.StoredCase, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	table, err := parser.ParseRows(string(content), sink)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cases := make([]db.StoredCase, 0, len(table.Rows))
	for i, row := range table.Rows {
		data, err := value.MarshalJSON(row.Params)
		if err != nil {
			return nil, fmt.Errorf("encoding case %d of %s: %w", i+1, path, err)
		}
		cases = append(cases, db.StoredCase{
			Position:   i,
			LineNumber: row.Line,
			Params:     string(data),
		})
	}
	return cases, nil
}
