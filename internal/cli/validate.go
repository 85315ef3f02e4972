package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	assetskema "github.com/reoring/assetskema"
)

// report is the document printed by validate.
type report struct {
	Model  string            `json:"model"`
	File   string            `json:"file"`
	Valid  bool              `json:"valid"`
	Issues assetskema.Issues `json:"issues,omitempty"`
}

func validateCmd(a *app) *cobra.Command {
	var (
		model    string
		failFast bool
	)
	c := &cobra.Command{
		Use:   "validate --model NAME FILE...",
		Short: "Validate asset descriptions (JSON or YAML, - for stdin)",
		Long: "Validates each FILE against a model and prints one JSON report per file. " +
			"Arguments may be glob patterns (assets/**/*.json). YAML is assumed for " +
			".yaml and .yml files, JSON otherwise. The exit status is 1 when an input " +
			"breaks a rule and 2 on any other failure.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.rules.Model(model); err != nil {
				return err
			}
			paths, err := expandPaths(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if failFast {
				ctx = assetskema.WithFailFast(ctx, true)
			}

			violations := false
			for _, path := range paths {
				data, err := readInput(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				rep := report{Model: model, File: path}
				if in, err := decodeInput(path, data); err != nil {
					iss, ok := assetskema.AsIssues(err)
					if !ok {
						return err
					}
					rep.Issues = iss
				} else {
					res, err := a.rules.Validate(ctx, model, in)
					if err != nil {
						return err
					}
					rep.Issues = res.Issues
				}
				rep.Valid = len(rep.Issues) == 0
				violations = violations || !rep.Valid
				a.log.Debug("validate.done", "model", model, "file", path, "issues", len(rep.Issues))

				b, err := encodeReport(rep)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(b); err != nil {
					return err
				}
			}
			if violations {
				return errViolations
			}
			return nil
		},
	}
	c.Flags().StringVarP(&model, "model", "m", "", "model to validate against (required)")
	c.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first issue of each file")
	_ = c.MarkFlagRequired("model")
	return c
}

// encodeReport renders rep as indented JSON followed by a newline.
func encodeReport(rep report) ([]byte, error) {
	raw, err := j.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	var buf bytes.Buffer
	if err := j.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// expandPaths resolves glob patterns. Plain paths are kept as given so that
// missing files are reported when read; a pattern matching nothing is an
// error.
func expandPaths(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if arg == "-" || !strings.ContainsAny(arg, "*?[{") {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		out = append(out, matches...)
	}
	return out, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func hasYAMLExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func decodeInput(path string, data []byte) (any, error) {
	if hasYAMLExt(path) {
		return assetskema.DecodeYAML(data)
	}
	return assetskema.DecodeJSON(data)
}
