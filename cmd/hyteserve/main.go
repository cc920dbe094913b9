package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinyplayerss/hyteserve/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	dataRoot := flag.String("data", "", "catalog data root: directory or base URL (optional)")
	sourceName := flag.String("source", "", "catalog to open: mods, maps, blog, or wiki (optional)")
	card := flag.String("card", "", "card slug to open, as carried by share links (optional)")
	auxSeconds := flag.Int("aux", 0, "auxiliary feed refresh interval in seconds (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		DataRoot:   *dataRoot,
		Source:     *sourceName,
		Card:       *card,
	}
	if aux := *auxSeconds; aux > 0 {
		opts.AuxEvery = aux
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "hyteserve: %v\n", err)
		return 1
	}
	return 0
}
