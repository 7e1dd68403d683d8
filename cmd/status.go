package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chriserin/xt/internal/config"
	"github.com/chriserin/xt/internal/db"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how many table files and cases are stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunStatus(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func RunStatus(w io.Writer, cfg config.Config) error {
	if err := requireInit(cfg); err != nil {
		return err
	}

	sqlDB, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var files, cases int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&files); err != nil {
		return fmt.Errorf("counting files: %w", err)
	}
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM cases`).Scan(&cases); err != nil {
		return fmt.Errorf("counting cases: %w", err)
	}

	fmt.Fprintf(w, "Files: %d\n", files)
	fmt.Fprintf(w, "Cases: %d\n", cases)

	if files == 0 {
		return nil
	}

	rows, err := sqlDB.Query(`
		SELECT f.file_path, COUNT(c.id) AS cnt
		FROM files f
		LEFT JOIN cases c ON c.file_id = f.id
		GROUP BY f.id
		ORDER BY cnt DESC, f.file_path
	`)
	if err != nil {
		return fmt.Errorf("querying case counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var path string
		var cnt int
		if err := rows.Scan(&path, &cnt); err != nil {
			return fmt.Errorf("scanning count row: %w", err)
		}
		fmt.Fprintf(w, "  %s: %d\n", filepath.Base(path), cnt)
	}

	return rows.Err()
}
