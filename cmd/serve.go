package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marcwalk/server"
)

var (
	listenAddr string
	rateLimit  float64
	rateBurst  int
	profiling  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve conversions over HTTP",
	Long: `Start an HTTP server that converts MARCXML request bodies.

Endpoints:
  POST /api/convert?format=json&profile=summary&strict=false
  GET  /api/formats
  GET  /version
  GET  /healthcheck
  GET  /metrics
  GET  /debug/pprof/ (with --pprof)

The listen address comes from --listen, then MARCWALK_LISTEN, then :8080.

Examples:
  marcwalk serve --listen :9000
  curl --data-binary @records.xml 'localhost:8080/api/convert?format=csv'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := listenAddr
		if addr == "" {
			addr = os.Getenv("MARCWALK_LISTEN")
		}
		return server.New(server.Config{
			Listen:    addr,
			Version:   Version,
			RateLimit: rateLimit,
			RateBurst: rateBurst,
			Profiling: profiling,
		}).Run()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "Listen address (default: $MARCWALK_LISTEN or :8080)")
	serveCmd.Flags().Float64Var(&rateLimit, "rate-limit", 0, "Requests per second allowed per client on /api (0: unlimited)")
	serveCmd.Flags().IntVar(&rateBurst, "burst", 10, "Requests a client may make at once when rate limited")
	serveCmd.Flags().BoolVar(&profiling, "pprof", false, "Expose /debug/pprof")
}
