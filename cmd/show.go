package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/xt/internal/config"
	"github.com/chriserin/xt/internal/db"
	"github.com/chriserin/xt/internal/diag"
	"github.com/chriserin/xt/internal/parser"
	"github.com/chriserin/xt/internal/template"
	"github.com/chriserin/xt/internal/ui"
	"github.com/chriserin/xt/internal/value"
)

var titleFlag string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a case by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunShow(cmd.OutOrStdout(), cfg, args[0], titleFlag)
	},
}

func init() {
	showCmd.Flags().StringVar(&titleFlag, "title", "", "Title template rendered against the case, e.g. 'logs in as ${user}'")
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, cfg config.Config, rawID, title string) error {
	rawID = strings.TrimPrefix(rawID, "@xt:")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid case ID: %s", rawID)
	}

	if err := requireInit(cfg); err != nil {
		return err
	}

	sqlDB, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var position, lineNumber int
	var filePath, stored string
	err = sqlDB.QueryRow(`
		SELECT c.position, c.line_number, c.params, f.file_path
		FROM cases c
		JOIN files f ON c.file_id = f.id
		WHERE c.id = ?
	`, id).Scan(&position, &lineNumber, &stored, &filePath)
	if err != nil {
		return fmt.Errorf("case %d not found", id)
	}

	params, err := currentCase(filePath, position)
	if err != nil {
		return err
	}
	if params == nil {
		// The file is gone or shorter than at the last sync.
		if params, err = decodeParams(stored); err != nil {
			return fmt.Errorf("decoding case %d: %w", id, err)
		}
	}

	ui.ShowHeader(w, id, filepath.Base(filePath), lineNumber)

	keyWidth := 0
	for key := range params.All() {
		keyWidth = max(keyWidth, len(key))
	}
	for key, v := range params.All() {
		ui.ShowField(w, key, value.Literal(v), keyWidth)
	}

	if title != "" {
		rendered, err := template.Compile(title, params)
		if err != nil {
			return fmt.Errorf("rendering title: %w", err)
		}
		fmt.Fprintln(w)
		ui.ShowTitle(w, rendered)
	}

	return nil
}

// currentCase re-reads the table file so that undefined values, which JSON
// drops, are shown. It returns nil when the case is no longer in the file.
func currentCase(filePath string, position int) (*value.Object, error) {
	content, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	params, err := parser.ParseTable(string(content), diag.Discard)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	if position >= len(params) {
		return nil, nil
	}
	return params[position], nil
}
