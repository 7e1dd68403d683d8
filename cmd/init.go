package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/xt/internal/config"
	"github.com/chriserin/xt/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize xt in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunInit(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer, cfg config.Config) error {
	// table directory
	_, err := os.Stat(cfg.Dir)
	dirExists := err == nil
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", cfg.Dir, err)
	}
	if dirExists {
		fmt.Fprintf(w, "%s/ already exists\n", cfg.Dir)
	} else {
		fmt.Fprintf(w, "%s/ created\n", cfg.Dir)
	}

	// database
	if err := os.MkdirAll(filepath.Dir(cfg.DB), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	_, err = os.Stat(cfg.DB)
	dbExists := err == nil
	sqlDB, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintf(w, "%s already exists\n", cfg.DB)
	} else {
		fmt.Fprintf(w, "%s created\n", cfg.DB)
	}

	// gitignore
	msgs, err := ensureGitignore(filepath.ToSlash(cfg.DB))
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore(entry string) ([]string, error) {
	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", entry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == entry {
			return []string{entry + " already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{entry + " added to .gitignore"}, nil
}

// requireInit fails with the usual hint when the table directory is missing.
func requireInit(cfg config.Config) error {
	if _, err := os.Stat(cfg.Dir); os.IsNotExist(err) {
		return fmt.Errorf("run `xt init` first")
	}
	return nil
}
