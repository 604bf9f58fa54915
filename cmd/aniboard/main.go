package main

import (
	"flag"
	"fmt"
	"os"

	"aniboard/internal/di"
	"aniboard/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug mode")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "aniboard: %v\n", err)
		os.Exit(1)
	}
}
