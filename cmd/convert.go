package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marcwalk/format"

	// Register all format plugins
	_ "github.com/lehigh-university-libraries/marcwalk/format/csv"
	_ "github.com/lehigh-university-libraries/marcwalk/format/json"
	_ "github.com/lehigh-university-libraries/marcwalk/format/marcxml"
	_ "github.com/lehigh-university-libraries/marcwalk/format/protobuf"
)

const defaultOutputFormat = "json"

var (
	inputFile     string
	outputFile    string
	profileName   string
	profileFile   string
	profilesDir   string
	columns       []string
	multiValueSep string
	pretty        bool
	strict        bool
	noHeader      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [to]",
	Short: "Convert MARCXML to JSON, CSV or protobuf",
	Long: `Convert MARCXML records into normalized records.

Arguments:
  to      Target format (json, jsonl, csv, protobuf, protojson)

Without a target the output file's extension decides, falling back to json.
Input defaults to stdin, output defaults to stdout. Records of an unsupported
type are skipped with a warning unless --strict is set.

Examples:
  # MARCXML to a JSON array (stdin to stdout)
  cat records.xml | marcwalk convert

  # Input and output files; the format follows the extension
  marcwalk convert -i records.xml -o records.csv

  # Bibliographic summary as CSV
  marcwalk convert csv -p summary -i records.xml

  # Explicit columns
  marcwalk convert csv -i records.xml -c id,title,creators.name,creators.role_label

  # Shared profiles kept next to a project
  marcwalk convert csv -p export --profiles-dir ./profiles -i records.xml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().StringVarP(&profileName, "profile", "p", "", "Output profile name (e.g., summary)")
	convertCmd.Flags().StringVar(&profileFile, "profile-file", "", "Custom profile YAML file")
	convertCmd.Flags().StringVar(&profilesDir, "profiles-dir", "", "Directory of profile YAML files searched before ~/.marcwalk/profiles")
	convertCmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "CSV columns to output")
	convertCmd.Flags().StringVar(&multiValueSep, "separator", "", "Multi-value field separator (default: profile or \"|\")")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	convertCmd.Flags().BoolVar(&strict, "strict", false, "Fail on records of an unsupported type")
	convertCmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the CSV header row")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	serializer, err := outputSerializer(args)
	if err != nil {
		return err
	}

	profile, err := loadProfile(profileName, profileFile, profilesDir)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	input, inputName, closeInput, err := openInput(inputFile)
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
		Profile:    profile,
		Strict:     strict,
		SourceName: inputName,
		Skipped:    &skipped,
	})
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Parsed %d records (%d skipped)\n", len(records), skipped)
	} else {
		fmt.Fprintf(os.Stderr, "Parsed %d records\n", len(records))
	}

	output, closeOutput, err := createOutput(outputFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	serializeOpts := &format.SerializeOptions{
		Profile:             profile,
		Columns:             columns,
		MultiValueSeparator: multiValueSep,
		IncludeHeader:       !noHeader,
		Pretty:              pretty,
	}

	if err := serializer.Serialize(output, records, serializeOpts); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}

	return nil
}

func outputSerializer(args []string) (format.Serializer, error) {
	if len(args) == 1 {
		s, err := format.GetSerializer(args[0])
		if err != nil {
			return nil, fmt.Errorf("unknown target format %q: %w", args[0], err)
		}
		return s, nil
	}
	if outputFile != "" {
		if s, err := format.DetectSerializer(outputFile); err == nil {
			return s, nil
		}
	}
	return format.GetSerializer(defaultOutputFormat)
}
