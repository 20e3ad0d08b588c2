package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	dataprep "github.com/zhenghengtan/FIT3179ASGN2"
)

func main() {
	_ = godotenv.Load()

	farePath := pflag.String("fare", "Fare.csv", "Path to the wide fare matrix CSV")
	stationsPath := pflag.String("stations", "lrt-malaysia.csv", "Path to the station registry CSV")
	outDir := pflag.StringP("out", "o", envOr("DATAPREP_OUT_DIR", "data"), "Directory to write output to")
	sqlitePath := pflag.String("sqlite", "", "Also write the tidy tables to a SQLite database at this path")
	pflag.Parse()

	summary, err := dataprep.PrepareAmpang(&dataprep.AmpangOpts{
		FarePath:     *farePath,
		StationsPath: *stationsPath,
		OutDir:       *outDir,
		SQLitePath:   *sqlitePath,
	})
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))

	if len(summary.Unmatched) > 0 {
		fmt.Fprintf(os.Stderr, "WARNING: %d stations were not matched to coordinates.\n", len(summary.Unmatched))
		for _, name := range summary.Unmatched {
			fmt.Fprintf(os.Stderr, "  - %s\n", name)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
