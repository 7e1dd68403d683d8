package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/xt/internal/config"
	"github.com/chriserin/xt/internal/db"
	"github.com/chriserin/xt/internal/expr"
	"github.com/chriserin/xt/internal/filter"
	"github.com/chriserin/xt/internal/ui"
	"github.com/chriserin/xt/internal/value"
)

var (
	fileFlag  string
	skipFlags []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored cases",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunList(cmd.OutOrStdout(), cfg, fileFlag, skipFlags)
	},
}

func init() {
	listCmd.Flags().StringVar(&fileFlag, "file", "", "Only list cases of this table file (path or base name)")
	listCmd.Flags().StringArrayVar(&skipFlags, "skip", nil, "Skip cases where key matches one of the values (key=v1,v2)")
	rootCmd.AddCommand(listCmd)
}

type listRow struct {
	id       int64
	fileName string
	params   *value.Object
	raw      string
}

func RunList(w io.Writer, cfg config.Config, fileFilter string, skips []string) error {
	exclude, err := parseSkips(skips)
	if err != nil {
		return err
	}

	if err := requireInit(cfg); err != nil {
		return err
	}

	sqlDB, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT c.id, f.file_path, c.params
		FROM cases c
		JOIN files f ON c.file_id = f.id
		ORDER BY f.file_path, c.position
	`)
	if err != nil {
		return fmt.Errorf("querying cases: %w", err)
	}
	defer rows.Close()

	var results []listRow
	for rows.Next() {
		var r listRow
		var filePath string
		if err := rows.Scan(&r.id, &filePath, &r.raw); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		r.fileName = filepath.Base(filePath)

		if fileFilter != "" && fileFilter != filePath && fileFilter != r.fileName {
			continue
		}

		r.params, err = decodeParams(r.raw)
		if err != nil {
			return fmt.Errorf("decoding case %d: %w", r.id, err)
		}
		if exclude != nil && filter.Matches(r.params, exclude) {
			continue
		}

		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	// Compute column widths
	idWidth, fileWidth := 0, 0
	for _, r := range results {
		idWidth = max(idWidth, len(ui.CaseTag(r.id)))
		fileWidth = max(fileWidth, len(r.fileName))
	}

	for _, r := range results {
		ui.CaseRow(w, r.id, r.fileName, r.raw, idWidth, fileWidth)
	}

	return nil
}

func decodeParams(raw string) (*value.Object, error) {
	v, err := value.ParseJSON([]byte(raw))
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*value.Object)
	if !ok {
		return nil, fmt.Errorf("stored case is a %s, not an object", v.Kind())
	}
	return obj, nil
}

// parseSkips builds an exclusion object from key=v1,v2 flags. Values are read
// as table cells; a bare word that is not a known name is taken as a string.
// One value excludes by equality, several by membership.
func parseSkips(specs []string) (*value.Object, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	exclude := value.NewObject()
	for _, spec := range specs {
		key, raw, ok := strings.Cut(spec, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --skip %q: want key=value[,value...]", spec)
		}

		var items []value.Value
		for _, part := range strings.Split(raw, ",") {
			v, err := skipValue(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("invalid --skip %q: %w", spec, err)
			}
			items = append(items, v)
		}

		if len(items) == 1 {
			exclude.Set(key, items[0])
		} else {
			exclude.Set(key, value.NewList(items...))
		}
	}
	return exclude, nil
}

func skipValue(src string) (value.Value, error) {
	v, err := expr.Eval(src, nil)
	var refErr *expr.ReferenceError
	if errors.As(err, &refErr) {
		return value.String(src), nil
	}
	return v, err
}
