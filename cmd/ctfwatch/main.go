package main

import (
	"flag"
	"log"

	"ctfwatch/internal/di"
	"ctfwatch/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the yaml config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "echo logs to the console")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		log.Fatalf("ctfwatch: %s", err)
	}
}
