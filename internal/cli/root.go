// Package cli implements the assetskema command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/assetskema/avatar"
	"github.com/reoring/assetskema/i18n"
	"github.com/reoring/assetskema/internal/logging"
)

// Exit codes.
const (
	exitOK         = 0
	exitViolations = 1
	exitError      = 2
)

// errViolations is returned by validate when the input breaks a rule. The
// issues have already been printed.
var errViolations = errors.New("validation failed")

// Execute runs the command line and exits the process.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errViolations):
		return exitViolations
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
}

// app is the state shared by the subcommands, set up before any of them
// runs.
type app struct {
	limitsPath string
	debug      bool
	logFormat  string
	lang       string

	log   *slog.Logger
	rules *avatar.RuleSet
}

func (a *app) setup(cmd *cobra.Command) error {
	l, err := logging.Setup(logging.Config{Debug: a.debug, Format: a.logFormat, Output: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	a.log = l
	i18n.SetLanguage(a.lang)

	limits := avatar.DefaultLimits()
	if a.limitsPath != "" {
		if limits, err = avatar.LoadLimits(a.limitsPath); err != nil {
			return err
		}
		a.log.Debug("limits.loaded", "path", a.limitsPath)
	}
	rs, err := avatar.NewRuleSet(limits)
	if err != nil {
		return err
	}
	a.rules = rs
	a.log.Debug("rules.built", "models", len(rs.Names()))
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "assetskema",
		Short:         "Validate avatar asset descriptions and export their JSON Schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.limitsPath, "limits", "", "YAML file overriding the default budgets")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", logging.FormatText, "log format: text or json")
	cmd.PersistentFlags().StringVar(&a.lang, "lang", "en", "language of generic structural messages: en or ja")

	cmd.AddCommand(modelsCmd(a), schemaCmd(a), validateCmd(a))
	return cmd
}

func modelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, n := range a.rules.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
