package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"doccheck/internal/checklist"
	"doccheck/internal/checklist/catalog"
	"doccheck/internal/platform/config"
	dErrors "doccheck/pkg/domain-errors"
)

const (
	appName    = "doccheck"
	dateLayout = "2006-01-02"

	outputJSON = "json"
	outputText = "text"
)

// evalFlags are shared by evaluate and explain.
type evalFlags struct {
	file     string
	overlays string
	now      string
	output   string
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Mortgage document checklist engine",
		Long: `doccheck computes the documents a borrower must supply for a loan
application. It reads a JSON application snapshot and prints the required
documents, the nice-to-have documents and any clarifying questions.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(evaluateCmd(), explainCmd(), catalogCmd(), rulesCmd(), versionCmd())
	return cmd
}

func evaluateCmd() *cobra.Command {
	var flags evalFlags
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute the document checklist for an application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, app, now, err := prepare(cmd, flags)
			if err != nil {
				return err
			}
			result, err := engine.Generate(app, nil, now)
			if err != nil {
				return describe(err)
			}
			if flags.output == outputText {
				printResult(cmd.OutOrStdout(), result)
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	bindEvalFlags(cmd, &flags, outputJSON)
	return cmd
}

func explainCmd() *cobra.Command {
	var flags evalFlags
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show which rule asked for each required document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, app, now, err := prepare(cmd, flags)
			if err != nil {
				return err
			}
			lines, err := engine.Explain(app, nil, now)
			if err != nil {
				return describe(err)
			}
			if flags.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), map[string][]string{"explanations": lines})
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	bindEvalFlags(cmd, &flags, outputText)
	return cmd
}

func catalogCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List every known document id and label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := catalog.Default().All()
			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s %s\n", e.ID, e.Label)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (json, text)")
	return cmd
}

func rulesCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule table in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := checklist.Rules()
			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), rules)
			}
			for _, r := range rules {
				flag := ""
				if r.Conditional {
					flag = " (conditional)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-12s %s%s\n", r.ID, r.Category, r.Title, flag)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (json, text)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, version, buildTime)
		},
	}
}

func bindEvalFlags(cmd *cobra.Command, flags *evalFlags, defaultOutput string) {
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Application JSON file, or - for stdin")
	cmd.Flags().StringVar(&flags.overlays, "overlays", "", "Lender overlay policy file (YAML)")
	cmd.Flags().StringVar(&flags.now, "now", "", "Evaluation date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultOutput, "Output format (json, text)")
	_ = cmd.MarkFlagRequired("file")
}

func prepare(cmd *cobra.Command, flags evalFlags) (*checklist.Engine, *checklist.LoanApplication, time.Time, error) {
	if flags.output != outputJSON && flags.output != outputText {
		return nil, nil, time.Time{}, fmt.Errorf("unsupported output format %q", flags.output)
	}

	now := time.Now().UTC()
	if flags.now != "" {
		parsed, err := time.Parse(dateLayout, flags.now)
		if err != nil {
			return nil, nil, time.Time{}, fmt.Errorf("--now must be YYYY-MM-DD: %w", err)
		}
		now = parsed
	}

	overlays, err := config.LoadOverlays(flags.overlays)
	if err != nil {
		return nil, nil, time.Time{}, err
	}

	app, err := readApplication(cmd.InOrStdin(), flags.file)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	if err := app.Validate(); err != nil {
		return nil, nil, time.Time{}, describe(err)
	}

	engine := checklist.NewEngine(
		checklist.WithCatalog(catalog.Default()),
		checklist.WithOverlays(overlays),
	)
	return engine, app, now, nil
}

func readApplication(stdin io.Reader, path string) (*checklist.LoanApplication, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read application: %w", err)
	}

	var app checklist.LoanApplication
	if err := json.Unmarshal(data, &app); err != nil {
		return nil, fmt.Errorf("decode application: %w", err)
	}
	return &app, nil
}

// describe turns a domain error into a message safe to print.
func describe(err error) error {
	if msg := dErrors.MessageOf(err); msg != "" {
		return fmt.Errorf("%s: %s", dErrors.CodeOf(err), msg)
	}
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(w io.Writer, result *checklist.Result) {
	section := func(title string, docs []checklist.DocRequest) {
		fmt.Fprintf(w, "%s (%d)\n", title, len(docs))
		for _, d := range docs {
			marker := ""
			if d.Conditional {
				marker = " [conditional]"
			}
			fmt.Fprintf(w, "  %-40s %s%s\n", d.ID, d.Label, marker)
			fmt.Fprintf(w, "  %-40s rules: %s\n", "", strings.Join(d.RuleHits, ", "))
		}
	}
	section("Required", result.Required)
	section("Nice to have", result.NiceToHave)
	if len(result.Clarifications) > 0 {
		fmt.Fprintf(w, "Clarifications (%d)\n", len(result.Clarifications))
		for _, c := range result.Clarifications {
			fmt.Fprintf(w, "  - %s\n", c)
		}
	}
}
