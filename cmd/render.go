package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/xt/internal/template"
	"github.com/chriserin/xt/internal/value"
)

var contextFlag string

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a ${...} template against a JSON object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunRender(cmd.OutOrStdout(), args[0], contextFlag)
	},
}

func init() {
	renderCmd.Flags().StringVar(&contextFlag, "context", "", "JSON object the placeholders are evaluated against")
	rootCmd.AddCommand(renderCmd)
}

func RunRender(w io.Writer, tmpl, contextJSON string) error {
	context := value.NewObject()
	if contextJSON != "" {
		v, err := value.ParseJSON([]byte(contextJSON))
		if err != nil {
			return fmt.Errorf("parsing context: %w", err)
		}
		obj, ok := v.(*value.Object)
		if !ok {
			return fmt.Errorf("context must be a JSON object, got %s", v.Kind())
		}
		context = obj
	}

	out, err := template.Compile(tmpl, context)
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}
	fmt.Fprintln(w, out)
	return nil
}
