package main

import (
	"fmt"
	"os"

	"github.com/ccid-tools/readerlist/internal/cli"
	"github.com/ccid-tools/readerlist/pkg/ui/output/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
