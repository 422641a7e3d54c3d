// Package main provides the Kiln evaluation CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kiln-ml/kiln/internal/config"
	"github.com/kiln-ml/kiln/internal/dataset"
	"github.com/kiln-ml/kiln/internal/inference"
	"github.com/kiln-ml/kiln/internal/monitor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Kiln %s\n", version)
	case "eval":
		if err := runEval(os.Args[2:]); err != nil {
			log.Fatalf("eval: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Kiln - validation metrics for ML evaluation runs")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  eval -config eval.yaml    Run an evaluation pass over a batch file")
	fmt.Println("  version                   Show version")
}

func runEval(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	configPath := fs.String("config", "eval.yaml", "path to the evaluation config")
	metricsAddr := fs.String("metrics-addr", "", "optional address to serve Prometheus metrics on")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	inferencers, err := buildInferencers(cfg)
	if err != nil {
		return err
	}

	hist := monitor.NewHistory()
	mons := monitor.Monitors{hist, monitor.Logger{}}
	if cfg.StatsFile != "" {
		mons = append(mons, monitor.NewJSONWriter(cfg.StatsFile))
	}
	if *metricsAddr != "" {
		prom, err := monitor.NewPrometheus(prometheus.DefaultRegisterer, "kiln")
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		mons = append(mons, prom)
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	runner, err := inference.NewRunner(mons, inferencers...)
	if err != nil {
		return err
	}

	src, err := dataset.OpenJSONL(cfg.BatchFile)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx := context.Background()
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if epoch > 1 {
			if err := src.Rewind(); err != nil {
				return err
			}
		}
		if err := runner.RunEpoch(ctx, src, epoch); err != nil {
			return err
		}
		log.Printf("epoch %d/%d complete", epoch, cfg.Epochs)
	}

	printSummary(hist)
	return nil
}

func buildInferencers(cfg *config.Config) ([]inference.Inferencer, error) {
	var inferencers []inference.Inferencer

	if len(cfg.Scalars.Names) > 0 {
		s, err := inference.NewScalarStatsWithPrefix(cfg.Scalars.Prefix, cfg.Scalars.Names...)
		if err != nil {
			return nil, err
		}
		inferencers = append(inferencers, s)
	}
	if cfg.Error.TensorName != "" {
		c, err := inference.NewClassificationError(cfg.Error.TensorName, cfg.Error.SummaryName)
		if err != nil {
			return nil, err
		}
		inferencers = append(inferencers, c)
	}
	if cfg.Binary.PredName != "" {
		b, err := inference.NewBinaryClassificationStatsWithPrefix(
			cfg.Binary.Prefix, cfg.Binary.PredName, cfg.Binary.LabelName)
		if err != nil {
			return nil, err
		}
		inferencers = append(inferencers, b)
	}
	return inferencers, nil
}

func printSummary(hist *monitor.History) {
	names := hist.Names()
	sort.Strings(names)
	fmt.Println("Final metrics:")
	for _, name := range names {
		if v, ok := hist.Latest(name); ok {
			fmt.Printf("  %s: %.6g\n", name, v)
		}
	}
}
