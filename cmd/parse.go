package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/xt/internal/config"
	"github.com/chriserin/xt/internal/diag"
	"github.com/chriserin/xt/internal/parser"
	"github.com/chriserin/xt/internal/value"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Parse a table file and print its parameter objects as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunParse(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin(), cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// RunParse reads path, or in when path is "-", and writes the parameter
// objects to w. Comment warnings go to errW.
func RunParse(w, errW io.Writer, in io.Reader, cfg config.Config, path string) error {
	var content []byte
	var err error
	if path == "-" {
		content, err = io.ReadAll(in)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	sink := diag.Discard
	if cfg.Warnings {
		sink = diag.NewWriter(errW)
	}

	params, err := parser.ParseTable(string(content), sink)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	items := make([]value.Value, len(params))
	for i, p := range params {
		items[i] = p
	}
	data, err := value.MarshalJSON(value.NewList(items...))
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}
