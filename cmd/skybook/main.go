package main

import (
	"context"
	"log"
	"os"

	"github.com/karimfs/skybook/internal/buildinfo"
	"github.com/karimfs/skybook/internal/client/cli"
	"github.com/karimfs/skybook/internal/client/config"
	"github.com/karimfs/skybook/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefaultLogger())
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
