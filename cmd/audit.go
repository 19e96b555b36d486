package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/mapper"
	"github.com/lehigh-university-libraries/marcwalk/marc"
	"github.com/lehigh-university-libraries/marcwalk/marc/marcxml"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit MARC records for mapping coverage",
	Long:  `Audit commands help find MARC data that mapping leaves behind.`,
}

// auditTagsCmd reports data field usage against the mapping rules
var auditTagsCmd = &cobra.Command{
	Use:   "tags [input-file]",
	Short: "Count data field tags and flag the ones no rule maps",
	Long: `Counts every data field tag per record kind and marks whether a mapping
rule reads it. Frequent tags that nothing maps are listed as candidates for
new rules.

Input defaults to stdin.

Example:
  marcwalk audit tags records.xml
  marcwalk audit tags records.xml --threshold 10 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuditTags,
}

// TagAuditReport contains the results of a tag audit.
type TagAuditReport struct {
	TotalRecords int              `json:"total_records"`
	Kinds        map[hub.Kind]int `json:"kinds"`
	Unsupported  int              `json:"unsupported"`
	Tags         []TagStats       `json:"tags"`
	Candidates   []TagStats       `json:"candidates"`
}

// TagStats tracks usage of one data field tag within one record kind.
type TagStats struct {
	Kind        hub.Kind `json:"kind"`
	Tag         string   `json:"tag"`
	Records     int      `json:"records"`
	Occurrences int      `json:"occurrences"`
	Percentage  float64  `json:"percentage"`
	Mapped      bool     `json:"mapped"`
	Examples    []string `json:"examples,omitempty"`
}

func init() {
	auditCmd.AddCommand(auditTagsCmd)

	auditTagsCmd.Flags().Float64("threshold", 50.0, "Percentage of records an unmapped tag must reach to be a candidate")
	auditTagsCmd.Flags().IntP("examples", "e", 3, "Number of example values to include")
	auditTagsCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	auditTagsCmd.Flags().Bool("json", false, "Output as JSON")
}

func runAuditTags(cmd *cobra.Command, args []string) (err error) {
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	maxExamples, _ := cmd.Flags().GetInt("examples")
	outputFile, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	input, _, closeInput, err := openInput(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeInput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	records, err := marcxml.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	report := auditTags(records, threshold, maxExamples)

	var output []byte
	if jsonOutput {
		output, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
	} else {
		output = []byte(formatTagReport(report))
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, output, 0644)
	}

	fmt.Println(string(output))
	return nil
}

func auditTags(records []*marc.Record, threshold float64, maxExamples int) *TagAuditReport {
	report := &TagAuditReport{
		TotalRecords: len(records),
		Kinds:        make(map[hub.Kind]int),
	}

	type key struct {
		kind hub.Kind
		tag  string
	}
	stats := make(map[key]*TagStats)

	for _, rec := range records {
		kind, ok := mapper.KindOf(rec.RecordType())
		if !ok {
			report.Unsupported++
			continue
		}
		report.Kinds[kind]++

		seen := make(map[string]bool)
		for i := range rec.DataFields {
			f := &rec.DataFields[i]
			k := key{kind, f.RawTag}
			s, ok := stats[k]
			if !ok {
				s = &TagStats{Kind: kind, Tag: f.RawTag, Mapped: mapper.HasRule(kind, f.Tag)}
				stats[k] = s
			}
			s.Occurrences++
			if !seen[f.RawTag] {
				seen[f.RawTag] = true
				s.Records++
			}

			if len(s.Examples) < maxExamples && len(f.Subfields) > 0 {
				if example := f.Subfields[0].Value; example != "" && len(example) < 100 && !containsExample(s.Examples, example) {
					s.Examples = append(s.Examples, example)
				}
			}
		}
	}

	for _, s := range stats {
		if n := report.Kinds[s.Kind]; n > 0 {
			s.Percentage = float64(s.Records) / float64(n) * 100
		}
		report.Tags = append(report.Tags, *s)
		if !s.Mapped && s.Percentage >= threshold {
			report.Candidates = append(report.Candidates, *s)
		}
	}

	sortTagStats(report.Tags)
	sort.Slice(report.Candidates, func(i, j int) bool {
		return report.Candidates[i].Percentage > report.Candidates[j].Percentage
	})

	return report
}

func sortTagStats(tags []TagStats) {
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Kind != tags[j].Kind {
			return tags[i].Kind < tags[j].Kind
		}
		return tags[i].Tag < tags[j].Tag
	})
}

func containsExample(examples []string, s string) bool {
	for _, ex := range examples {
		if ex == s {
			return true
		}
	}
	return false
}

func formatTagReport(report *TagAuditReport) string {
	var sb strings.Builder

	sb.WriteString("=== Tag Audit Report ===\n\n")
	sb.WriteString(fmt.Sprintf("Total records: %d\n", report.TotalRecords))
	for _, k := range []hub.Kind{hub.KindBibliographic, hub.KindAuthority, hub.KindHoldings} {
		if n := report.Kinds[k]; n > 0 {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", k, n))
		}
	}
	if report.Unsupported > 0 {
		sb.WriteString(fmt.Sprintf("  unsupported: %d\n", report.Unsupported))
	}
	sb.WriteString("\n")

	if len(report.Candidates) > 0 {
		sb.WriteString("UNMAPPED CANDIDATES (frequent tags no rule reads):\n")
		for _, c := range report.Candidates {
			sb.WriteString(fmt.Sprintf("  %s %s: %d records (%.1f%%)\n", c.Kind, c.Tag, c.Records, c.Percentage))
		}
		sb.WriteString("\n")
	}

	var kind hub.Kind
	for _, s := range report.Tags {
		if s.Kind != kind {
			kind = s.Kind
			sb.WriteString(fmt.Sprintf("%s tags:\n", strings.ToUpper(string(kind[:1]))+string(kind[1:])))
		}
		mark := " "
		if s.Mapped {
			mark = "*"
		}
		sb.WriteString(fmt.Sprintf("  %s %s: %d records, %d fields (%.1f%%)\n", mark, s.Tag, s.Records, s.Occurrences, s.Percentage))
		if len(s.Examples) > 0 {
			sb.WriteString(fmt.Sprintf("      examples: %s\n", strings.Join(s.Examples, ", ")))
		}
	}
	if len(report.Tags) > 0 {
		sb.WriteString("\n* mapped by a rule\n")
	}

	return sb.String()
}
