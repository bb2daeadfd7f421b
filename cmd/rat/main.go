package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/go-rat/internal/cli"
	"github.com/askiada/go-rat/internal/config"
	"github.com/askiada/go-rat/internal/logger"
	"github.com/askiada/go-rat/pkg/pipeline/drawer"
	"github.com/askiada/go-rat/pkg/pipeline/measure"
	"github.com/askiada/go-rat/pkg/pipeline/model"
	"github.com/askiada/go-rat/pkg/rat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	program := cli.Program(args)
	if len(args) > 0 {
		args = args[1:]
	}

	cfg, err := config.Load(getenv)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return 1
	}

	log, err := logger.Provide(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	cmdCfg, err := cli.ParseArgs(program, args, stderr)
	switch {
	case errors.Is(err, cli.ErrShowHelp):
		cli.PrintUsage(program, stdout)
		return 0
	case errors.Is(err, cli.ErrShowVersion):
		cli.PrintVersion(program, stdout)
		return 0
	case err != nil:
		return 2
	}

	opts := rat.Resolve(cfg.Defaults.Merge(cmdCfg.Flags))
	log.Debug("resolved options", zap.Any("options", opts), zap.Strings("paths", cmdCfg.Paths))

	stats := cmdCfg.Stats || cfg.Stats
	graphFile := cmdCfg.Graph
	if graphFile == "" {
		graphFile = cfg.Graph
	}

	var (
		msr      *measure.DefaultMeasure
		pipeOpts []model.PipelineOption
	)
	if stats || graphFile != "" {
		msr = measure.NewDefaultMeasure()
		pipeOpts = append(pipeOpts, measure.PipelineMeasure(msr))
	}
	if graphFile != "" {
		pipeOpts = append(pipeOpts, drawer.PipelineDrawer(drawer.NewDOTDrawer(graphFile), msr))
	}

	dispatcher, err := rat.NewDispatcher(program, rat.DispatcherOptions{
		Options:         opts,
		Stdin:           stdin,
		Stdout:          stdout,
		Logger:          log,
		PipelineOptions: pipeOpts,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return 1
	}

	err = dispatcher.Run(ctx, cmdCfg.Paths)

	var inErr *rat.InputError
	if err != nil && !errors.As(err, &inErr) {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return 1
	}

	if closeErr := dispatcher.Close(); closeErr != nil {
		log.Error("unable to finish pipeline", zap.Error(closeErr))
		fmt.Fprintf(stderr, "%s: %v\n", program, closeErr)
		return 1
	}

	if stats {
		writeStats(stderr, msr)
	}

	// The diagnostic of an input error is already on stdout and does not change the exit status.
	return 0
}

func writeStats(output io.Writer, msr measure.Measure) {
	wrt := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(wrt, "stage\tcalls\ttotal\tavg")

	for _, name := range msr.Names() {
		mt := msr.GetMetric(name)
		if mt.GetTotal() == 0 {
			continue
		}
		fmt.Fprintf(wrt, "%s\t%d\t%s\t%s\n", name, mt.GetTotal(), mt.GetDuration(), mt.AVGDuration())
	}

	_ = wrt.Flush()
}
