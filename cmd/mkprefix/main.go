package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/macropower/mkprefix/internal/cli"
	"github.com/macropower/mkprefix/pkg/version"
)

func main() {
	err := fang.Execute(context.Background(), cli.NewRootCmd(),
		fang.WithVersion(version.String()),
		fang.WithErrorHandler(cli.ErrorHandler),
	)
	if err != nil {
		os.Exit(1)
	}
}
