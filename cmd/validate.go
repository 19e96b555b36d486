package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/helpers"
	"github.com/lehigh-university-libraries/marcwalk/hub"
)

var (
	validateInput   string
	validateStrict  bool
	validateVerbose bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check MARCXML without converting",
	Long: `Validate MARCXML by mapping every record and checking the result.

Reports how many records of each kind were mapped, how many had an
unsupported type of record, and any records missing a control number or
carrying malformed ISBN/ISSN values. Exits non-zero when any record is
unsupported or invalid.

Input defaults to stdin.

Examples:
  marcwalk validate -i records.xml
  marcwalk validate -i records.xml --verbose
  cat records.xml | marcwalk validate --strict`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input file (default: stdin)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Also require titles and headings")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show detailed information")
}

type recordIssue struct {
	Index  int
	Kind   hub.Kind
	ID     string
	Label  string
	Result *hub.ValidationResult
}

type validationReport struct {
	Source      string
	Kinds       map[hub.Kind]int
	Unsupported int
	Invalid     int
	Issues      []recordIssue
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	input, inputName, closeInput, err := openInput(validateInput)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeInput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	parser, input, err := detectParser(input, inputName)
	if err != nil {
		return err
	}

	skipped := 0
	records, err := parser.Parse(input, &format.ParseOptions{
		SourceName: inputName,
		Skipped:    &skipped,
	})
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	opts := hub.DefaultValidationOptions()
	if validateStrict {
		opts = hub.StrictValidationOptions()
	}

	report := validateRecords(inputName, records, skipped, opts)
	writeReport(os.Stdout, report, validateVerbose)

	if report.Unsupported > 0 || report.Invalid > 0 {
		return fmt.Errorf("%d unsupported and %d invalid records in %s", report.Unsupported, report.Invalid, inputName)
	}
	return nil
}

func validateRecords(source string, records []hub.Record, unsupported int, opts hub.ValidationOptions) *validationReport {
	report := &validationReport{
		Source:      source,
		Kinds:       make(map[hub.Kind]int),
		Unsupported: unsupported,
	}

	for i, r := range records {
		report.Kinds[r.Kind()]++

		result := hub.Validate(r, opts)
		if !result.IsValid() {
			report.Invalid++
		}
		if !result.IsValid() || result.HasWarnings() {
			report.Issues = append(report.Issues, recordIssue{
				Index:  i + 1,
				Kind:   r.Kind(),
				ID:     r.RecordID(),
				Label:  recordLabel(r),
				Result: result,
			})
		}
	}

	return report
}

func writeReport(w io.Writer, report *validationReport, verbose bool) {
	total := 0
	for _, n := range report.Kinds {
		total += n
	}

	if report.Unsupported == 0 && report.Invalid == 0 {
		fmt.Fprintf(w, "✓ Valid: mapped %d records from %s\n", total, report.Source)
	} else {
		fmt.Fprintf(w, "✗ Mapped %d records from %s\n", total, report.Source)
	}

	for _, k := range []hub.Kind{hub.KindBibliographic, hub.KindAuthority, hub.KindHoldings} {
		fmt.Fprintf(w, "  %-14s %d\n", k+":", report.Kinds[k])
	}
	fmt.Fprintf(w, "  %-14s %d\n", "unsupported:", report.Unsupported)
	if report.Invalid > 0 {
		fmt.Fprintf(w, "  %-14s %d\n", "invalid:", report.Invalid)
	}

	for _, issue := range report.Issues {
		if !verbose && issue.Result.IsValid() {
			continue
		}
		fmt.Fprintf(w, "\n  Record %d (%s %s): %s\n", issue.Index, issue.Kind, issue.ID, issue.Label)
		for _, e := range issue.Result.Errors {
			fmt.Fprintf(w, "    error:   %s\n", e.Error())
		}
		if verbose {
			for _, warn := range issue.Result.Warnings {
				fmt.Fprintf(w, "    warning: %s\n", warn.Error())
			}
		}
	}
}

func recordLabel(r hub.Record) string {
	switch v := r.(type) {
	case *hub.Bibliographic:
		label := v.Title
		if primary := hub.CreatorsByRole(v.Creators, "main"); len(primary) > 0 {
			label += " / " + hub.DisplayName(primary[0])
		}
		return helpers.TruncateText(label, 60)
	case *hub.Authority:
		return helpers.TruncateText(v.Label, 60)
	case *hub.Holdings:
		return helpers.TruncateText(v.Callcode, 60)
	}
	return ""
}
