package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/terraincognita07/nudge/internal/cli"
)

func main() {
	dbPath := flag.String("db", filepath.Join("data", "nudge.db"), "path to the SQLite database")
	flag.Parse()

	if flag.NArg() < 2 || flag.Arg(0) != "reset-password" {
		fmt.Fprintf(os.Stderr, "usage: %s [-db path] reset-password <email>\n", os.Args[0])
		os.Exit(2)
	}

	if err := cli.RunResetPasswordCommand(*dbPath, flag.Arg(1)); err != nil {
		log.Fatalf("reset-password failed: %v", err)
	}
}
