// Package cmd wires the tq command line: flag parsing, input loading,
// pattern evaluation, and result rendering.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/tq/internal/formatter"
	"github.com/oakwood-commons/tq/internal/highlight"
	"github.com/oakwood-commons/tq/pkg/document"
	"github.com/oakwood-commons/tq/pkg/loader"
	"github.com/oakwood-commons/tq/pkg/logger"
	"github.com/oakwood-commons/tq/pkg/query"
	"github.com/oakwood-commons/tq/pkg/settings"
)

var (
	filePath     string
	inputFormat  string
	outputFormat string
	pretty       bool
	colorMode    string
	debug        bool
)

// stdin is swappable so tests can feed piped input.
var stdin io.Reader = os.Stdin

var rootCtx = context.Background()

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [flags] <pattern>",
	Short: settings.CliBinaryName + " - query TOML, JSON, and YAML documents by path",
	Long: settings.CliBinaryName + ` extracts a value from a structured document using a
dotted path pattern. Fields are selected by name, array elements by
[index], and the empty pattern "" returns the whole document.`,
	Example: "\n  tq -f examples/config.toml server.port\n  tq -f examples/config.toml server.hosts[0]\n  cat examples/data.json | tq -o yaml items[1].name\n  tq -f examples/settings.yaml \"\"\n",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		var level int8 = 0
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.CommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		inFmt, err := loader.ParseFormat(inputFormat)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(2)
		}
		outFmt, err := formatter.ParseOutput(outputFormat)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(2)
		}
		if err := configureColor(colorMode); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(2)
		}

		params := settings.NewCliParams()
		params.InputPath = filePath
		params.InputFormat = string(inFmt)
		params.OutputFormat = string(outFmt)
		params.Pretty = pretty
		params.NoColor = color.NoColor
		if debug {
			params.MinLogLevel = -1
		}
		ctx := settings.IntoContext(rootCtx, params)

		return runQuery(ctx, cmd, args[0], inFmt, outFmt)
	},
}

func runQuery(ctx context.Context, cmd *cobra.Command, pattern string, inFmt loader.Format, outFmt formatter.Output) error {
	lgr := logger.FromContext(ctx)
	params, _ := settings.FromContext(ctx)

	var (
		root *document.Value
		err  error
	)
	if filePath != "" {
		lgr.V(1).Info("reading input file", logger.InputPathKey, filePath, logger.FormatKey, string(inFmt))
		root, err = loader.DecodeFile(filePath, inFmt)
	} else {
		lgr.V(1).Info("reading input from stdin", logger.FormatKey, string(inFmt))
		var data []byte
		data, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		root, err = loader.Decode(data, inFmt)
	}
	if err != nil {
		return err
	}

	lgr.V(1).Info("evaluating pattern", logger.PatternKey, pattern)
	result, err := query.ExtractPattern(root, pattern)
	if err != nil {
		return err
	}

	text, err := formatter.Render(result, outFmt, params != nil && params.Pretty)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), highlight.Colorize(text, string(outFmt)))
	return nil
}

// configureColor maps the --color flag onto the global color switch.
// "auto" enables color only for terminals, and NO_COLOR always wins.
func configureColor(mode string) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		enabled := os.Getenv("NO_COLOR") == "" &&
			(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
		color.NoColor = !enabled
	default:
		return fmt.Errorf("unknown color mode %q (expected auto, always, or never)", mode)
	}
	return nil
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&filePath, "file", "f", "", "input file path (default: read stdin)")
	fs.StringVarP(&inputFormat, "input", "i", "auto", "input format: auto|toml|json|yaml")
	fs.StringVarP(&outputFormat, "output", "o", "toml", "output format: toml|json|yaml")
	fs.BoolVarP(&pretty, "pretty", "p", false, "indent tables and expand arrays in the output")
	fs.StringVar(&colorMode, "color", "auto", "colorize output: auto|always|never")
	fs.BoolVar(&debug, "debug", false, "log debug detail to stderr")
}

func init() { //nolint:gochecknoinits
	registerFlags(rootCmd.Flags())
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
