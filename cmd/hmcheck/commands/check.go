// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wdamron/hmcheck"
	"github.com/wdamron/hmcheck/ast"
	"github.com/wdamron/hmcheck/internal/config"
)

var (
	showTypes    bool
	reportFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check <ast_file_path...>",
	Short: "Type-checks programs given as YAML or JSON syntax trees",
	Long: `The check command decodes one or more syntax tree documents, type-checks each
program and prints its diagnostics. The exit status is 1 when any diagnostic is reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&showTypes, "types", "t", false, "Print the signature of every function")
	checkCmd.Flags().StringVar(&reportFormat, "format", config.FormatText, "Report format: text or json")
	AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("types") {
		cfg.Types = showTypes
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = reportFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()
	tc := hmcheck.New(hmcheck.WithLogger(newLogger(cfg, cmd.ErrOrStderr())))
	rep := newReporter(out, cfg, useColor(cfg.Color, out))
	count := 0
	for _, path := range args {
		analysis, err := checkFile(tc, path)
		if err != nil {
			return err
		}
		count += len(analysis.Diagnostics)
		rep.add(path, analysis)
	}
	if err := rep.flush(); err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%d diagnostic(s) reported", count)
	}
	return nil
}

func checkFile(tc *hmcheck.TypeChecker, path string) (*hmcheck.Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	prog, err := ast.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tc.Analyze(prog), nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type fileReport struct {
	File        string   `json:"file"`
	Diagnostics []string `json:"diagnostics"`
	Signatures  []string `json:"signatures,omitempty"`
}

// reporter writes text reports as files are checked; json reports are written once by flush.
type reporter struct {
	w       io.Writer
	format  string
	types   bool
	errc    *color.Color
	warnc   *color.Color
	sigc    *color.Color
	reports []fileReport
}

func newReporter(w io.Writer, cfg *config.Config, colored bool) *reporter {
	r := &reporter{
		w:      w,
		format: cfg.Format,
		types:  cfg.Types,
		errc:   color.New(color.FgRed),
		warnc:  color.New(color.FgYellow),
		sigc:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.errc, r.warnc, r.sigc} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *reporter) add(path string, a *hmcheck.Analysis) {
	rep := fileReport{File: path, Diagnostics: a.Diagnostics}
	if rep.Diagnostics == nil {
		rep.Diagnostics = []string{}
	}
	if r.types {
		for _, sig := range a.Signatures {
			rep.Signatures = append(rep.Signatures, sig.String())
		}
	}
	if r.format == config.FormatJSON {
		r.reports = append(r.reports, rep)
		return
	}
	for _, d := range rep.Diagnostics {
		c := r.errc
		if isMissingSignature(d) {
			c = r.warnc
		}
		fmt.Fprintf(r.w, "%s: %s\n", path, c.Sprint(d))
	}
	for _, s := range rep.Signatures {
		fmt.Fprintf(r.w, "%s: %s\n", path, r.sigc.Sprint(s))
	}
}

func (r *reporter) flush() error {
	if r.format != config.FormatJSON {
		return nil
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.reports)
}

func isMissingSignature(diag string) bool {
	return strings.HasSuffix(diag, "is defined but has no signature")
}
