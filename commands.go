package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"money-problem/domain"
	"money-problem/portfolio"
)

// errUsage marks errors caused by bad command line arguments.
var errUsage = errors.New("usage")

func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, errUsage) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

type convertCmd struct {
	bankFlags
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "converts an amount from one currency to another" }
func (*convertCmd) Usage() string {
	return `money convert [-rate FROM:TO:RATE]... [-live] <amount> <from> <to>

  Converts an amount using the given rates. The reverse of a given rate
  is used when only that one is known.

Usage Examples:
$ money convert -rate EUR:USD:1.2 10 EUR USD
12 USD

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return exitStatus(c.run(ctx, f.Args(), os.Stdout))
}

func (c *convertCmd) run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: convert takes <amount> <from> <to>", errUsage)
	}
	m, err := parseMoney(args[0] + ":" + args[1])
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	to, err := domain.ParseCurrency(args[2])
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	ex, err := c.service().Convert(ctx, m, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatMoney(ex.Money))
	return nil
}

type evaluateCmd struct {
	bankFlags
	to string
}

func (*evaluateCmd) Name() string     { return "evaluate" }
func (*evaluateCmd) Synopsis() string { return "sums amounts in several currencies into one" }
func (*evaluateCmd) Usage() string {
	return `money evaluate -to <currency> [-rate FROM:TO:RATE]... [-live] <amount:currency>...

  Evaluates a portfolio in the target currency. Every missing exchange
  rate is reported, not only the first one.

Usage Examples:
$ money evaluate -to USD -rate EUR:USD:1.2 5:USD 10:EUR
17 USD

`
}

func (c *evaluateCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.to, "to", "USD", "target currency")
}

func (c *evaluateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return exitStatus(c.run(ctx, f.Args(), os.Stdout))
}

func (c *evaluateCmd) run(ctx context.Context, args []string, out io.Writer) error {
	to, err := domain.ParseCurrency(c.to)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	var p portfolio.Portfolio
	for _, arg := range args {
		m, err := parseMoney(arg)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		p.Add(m)
	}

	total, err := c.service().Evaluate(ctx, p.Entries(), to)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatMoney(total))
	return nil
}
