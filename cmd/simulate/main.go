package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/shopspring/decimal"

	"github.com/osse101/OwoSlots_Go/internal/ledger"
	"github.com/osse101/OwoSlots_Go/internal/logger"
	"github.com/osse101/OwoSlots_Go/internal/slots"
)

// options are the parsed command line flags
type options struct {
	wager   int64
	count   int
	balance int64
	seed    uint64
	seeded  bool
	odds    bool
	history bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64Var(&opts.wager, "wager", 100, "cowoncy bet on every spin")
	fs.IntVar(&opts.count, "n", 100, "number of spins to run")
	fs.Int64Var(&opts.balance, "balance", ledger.DefaultInitialBalance, "starting balance")
	fs.Uint64Var(&opts.seed, "seed", 0, "fixed RNG seed for reproducible runs")
	fs.BoolVar(&opts.odds, "odds", false, "print the payout odds and expected return before running")
	fs.BoolVar(&opts.history, "history", false, "print the balance history as CSV (event_index,balance,kind)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seeded = true
		}
	})
	return opts, nil
}

func main() {
	logger.InitLoggerWithWriter(logger.CLIConfig("owo-slots-simulate"), os.Stderr)

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	var engineOpts []slots.Option
	if opts.seeded {
		engineOpts = append(engineOpts, slots.WithSeed(opts.seed))
	}
	engine, err := slots.NewEngine(engineOpts...)
	if err != nil {
		return err
	}

	limits := ledger.DefaultLimits()
	limits.InitialBalance = opts.balance
	l, err := ledger.New(engine, limits)
	if err != nil {
		return err
	}

	if opts.odds {
		printOdds(out, engine)
	}

	summary, err := l.RunBatch(ctx, opts.wager, opts.count)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	// an interrupted run still reports the spins that were applied
	fmt.Fprintln(out, slots.FormatBatchMessage(summary))
	fmt.Fprintf(out, "Wins: %d/%d\n", summary.Wins, summary.SpinsRun)
	if summary.StoppedEarly() {
		fmt.Fprintf(out, "Stopped early: balance below the %s wager.\n", slots.FormatAmount(opts.wager))
	}

	if opts.history {
		fmt.Fprintln(out, "event_index,balance,kind")
		for _, e := range l.History() {
			fmt.Fprintf(out, "%d,%d,%s\n", e.EventIndex, e.BalanceAfter, e.Kind)
		}
	}
	return err
}

var hundred = decimal.NewFromInt(100)

func printOdds(out io.Writer, engine *slots.Engine) {
	fmt.Fprintln(out, "Payout odds:")
	for _, o := range engine.Odds() {
		fmt.Fprintf(out, "  %-12s %s%%  x%d\n", o.Rule, o.Probability.Mul(hundred).StringFixed(2), o.Multiplier)
	}
	fmt.Fprintf(out, "  %-12s %s%%\n", "Loss", engine.LossProbability().Mul(hundred).StringFixed(2))
	fmt.Fprintf(out, "Expected return: %s%%\n\n", engine.ExpectedReturn().Mul(hundred).StringFixed(2))
}
