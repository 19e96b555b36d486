package main

import (
	"github.com/lehigh-university-libraries/marcwalk/cmd"

	// Register format plugins
	_ "github.com/lehigh-university-libraries/marcwalk/format/csv"
	_ "github.com/lehigh-university-libraries/marcwalk/format/json"
	_ "github.com/lehigh-university-libraries/marcwalk/format/marcxml"
	_ "github.com/lehigh-university-libraries/marcwalk/format/protobuf"
)

func main() {
	cmd.Execute()
}
