package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"log-analyzer/config"
	"log-analyzer/internal/output"
	"log-analyzer/internal/parser"
	"log-analyzer/internal/service"
)

// app carries state shared by the commands of one root command.
type app struct {
	v         *viper.Viper
	cfg       *config.Config
	cfgFile   string
	outputFmt string
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "log-analyzer",
		Short: "Parse, search and export timestamped log files",
		Long: `log-analyzer reads log files whose lines look like

  2022-12-07 19:13:11.030 > PROCESS: started

splits them into timestamp and message, and lets you search, count and
export the records as CSV or XLSX.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./.env)")
	flags.StringVarP(&a.outputFmt, "output", "o", "text", "output format: text, json")
	flags.StringP("separator", "s", parser.DefaultSeparator, "separator between timestamp and message")
	flags.Bool("lenient", false, "drop rows with unparseable timestamps instead of failing")
	flags.String("timezone", "UTC", "location for timestamps without zone information")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")

	mustBind(a.v, "PARSER_SEPARATOR", flags.Lookup("separator"))
	mustBind(a.v, "PARSER_LENIENT_TIMESTAMPS", flags.Lookup("lenient"))
	mustBind(a.v, "PARSER_TIMEZONE", flags.Lookup("timezone"))
	mustBind(a.v, "LOG_LEVEL", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newReadCmd(a),
		newSearchCmd(a),
		newCountCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	// Config loading logs at the flag's level; the configured level applies after.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
	if err := setLogLevel(a.v.GetString("LOG_LEVEL")); err != nil {
		return err
	}

	cfg, err := config.ReadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if err := setLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	if _, err := output.New(a.outputFmt, io.Discard); err != nil {
		return err
	}
	return nil
}

func setLogLevel(raw string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// statusWriter is where operation status lines go. In JSON mode stdout is
// reserved for machine-readable output.
func (a *app) statusWriter(cmd *cobra.Command) io.Writer {
	if a.jsonOutput() {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

func (a *app) jsonOutput() bool {
	return strings.EqualFold(a.outputFmt, "json")
}

func (a *app) newParser(cmd *cobra.Command, path string) (*parser.LogParser, error) {
	opts := append(service.ParserOptions(a.cfg.Parser), parser.WithOutput(a.statusWriter(cmd)))
	return parser.NewLogParser(path, opts...)
}

func (a *app) renderer(cmd *cobra.Command) (output.Renderer, error) {
	return output.New(a.outputFmt, cmd.OutOrStdout())
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
