package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marcwalk/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported input and output formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDIRECTION\tEXTENSIONS\tDESCRIPTION")
		fmt.Fprintln(w, "----\t---------\t----------\t-----------")
		for _, name := range format.DefaultRegistry.List() {
			f, _ := format.Get(name)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, direction(f), strings.Join(f.Extensions(), ","), f.Description())
		}
		return w.Flush()
	},
}

func direction(f format.Format) string {
	_, in := f.(format.Parser)
	_, out := f.(format.Serializer)
	switch {
	case in && out:
		return "in/out"
	case in:
		return "in"
	case out:
		return "out"
	}
	return "-"
}
