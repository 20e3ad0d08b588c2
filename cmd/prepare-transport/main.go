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

	sourceDir := pflag.String("source", envOr("DATAPREP_SOURCE_DIR", "source"), "Directory holding the raw CSV exports")
	outDir := pflag.StringP("out", "o", envOr("DATAPREP_OUT_DIR", "data"), "Directory to write output to")
	pflag.Parse()

	summary, err := dataprep.PrepareTransport(&dataprep.TransportOpts{
		SourceDir: *sourceDir,
		OutDir:    *outDir,
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
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
