package main

import (
	"log"

	"github.com/sobadon/pulserec/cmd/pulserec/rec"
	"github.com/sobadon/pulserec/cmd/pulserec/version"
	"github.com/spf13/cobra"
)

func main() {
	execute()
}

func execute() {
	var rootCmd = &cobra.Command{
		Use:   "pulserec",
		Short: "rec desktop audio via ffmpeg",
	}

	rootCmd.AddCommand(rec.Command())
	rootCmd.AddCommand(version.Command())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}
