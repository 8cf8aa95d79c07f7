package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lueurxax/linked-list/internal/config"
	"github.com/lueurxax/linked-list/internal/log"
	"github.com/lueurxax/linked-list/internal/server"
	"github.com/lueurxax/linked-list/internal/singlell"
	"github.com/lueurxax/linked-list/internal/singlell/metrics"
)

var version = "dev"

const listName = "demo"

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := config.GetConfig()

	// init logger
	logger := log.NewLogger(log.NewLogrus(cfg.LoggerLevel, cfg.LogToEcs))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()

	list := metrics.NewMetricMiddleware[string](
		cfg.MetricsNamespace,
		listName,
		singlell.New[string](logger.WithField(log.PkgKey, "list")),
		reg,
	)

	var printer singlell.Printer = singlell.NewWriterPrinter(os.Stdout)
	if cfg.PrintToLog {
		printer = singlell.NewLogPrinter(logger.WithField(log.PkgKey, "printer"))
	}

	if err := run(list, cfg.Values, cfg.Removals, printer, logger); err != nil {
		panic(err)
	}

	if cfg.MetricsAddr == "" {
		return
	}

	srv := server.NewServer(cfg.MetricsAddr, reg, logger.WithField(log.PkgKey, "server"))
	if err := srv.Serve(ctx); err != nil {
		panic(err)
	}
}

// run adds every value, prints the list, then removes the given values one by one
// printing the list after each removal.
func run(list singlell.LinkedList[string], values, removals []string, printer singlell.Printer, logger log.Logger) error {
	for _, v := range values {
		list.Add(v)
	}

	if err := list.Print(printer); err != nil {
		return err
	}

	for _, v := range removals {
		if err := list.Remove(v); err != nil {
			logger.WithField("value", v).WithError(err).Warn("nothing removed")
		}

		if err := list.Print(printer); err != nil {
			return err
		}
	}

	return nil
}
