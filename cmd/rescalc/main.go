package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/Saecki/ResCalc/colorcode"
	"github.com/Saecki/ResCalc/config"
	"github.com/Saecki/ResCalc/format"
	"github.com/Saecki/ResCalc/resistor"
	"github.com/Saecki/ResCalc/selection"
)

const usage = `Usage: rescalc [flags] color...

Decodes a 4, 5 or 6 band resistor, e.g.

  rescalc yellow violet red gold
  rescalc brown black black red gold brown

Flags:
`

func main() {
	logger := log.New(os.Stderr, "rescalc: ", 0)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Error loading configuration: %v", err)
	}

	if err := run(cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(cfg config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("rescalc", flag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
		flags.PrintDefaults()
	}

	showTable := flags.Bool("table", false, "Print the color table and exit")
	interactive := flags.Bool("i", false, "Read band picks from stdin")
	flags.IntVar(&cfg.FractionDigits, "digits", cfg.FractionDigits, "Maximum fractional digits in printed values")
	toleranceStyle := flags.String("tolerance-style", string(cfg.ToleranceStyle), "Tolerance rendering: percent or fraction")
	flags.BoolVar(&cfg.RequireAllBands, "all-bands", cfg.RequireAllBands, "Require all six bands in interactive mode")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	cfg.ToleranceStyle = format.ToleranceStyle(*toleranceStyle)
	if err := cfg.Validate(); err != nil {
		return err
	}
	f := cfg.Formatter()

	switch {
	case *showTable:
		return printTable(stdout, f)
	case *interactive:
		return interact(stdin, stdout, selection.New(cfg.Policy()), f)
	case flags.NArg() == 0:
		flags.Usage()
		return errors.New("no band colors given")
	}

	r, err := decode(flags.Args())
	if err != nil {
		return err
	}
	printResistor(stdout, f, r)
	return nil
}

func decode(names []string) (resistor.Resistor, error) {
	colors := make([]colorcode.Color, len(names))
	for i, name := range names {
		c, err := colorcode.Parse(name)
		if err != nil {
			return resistor.Resistor{}, errors.WithMessagef(err, "band %d", i)
		}
		colors[i] = c
	}

	r, err := resistor.ParseBands(colors)
	if err != nil {
		return resistor.Resistor{}, errors.WithMessage(err, "decode bands")
	}
	return r, nil
}

func printResistor(w io.Writer, f format.Formatter, r resistor.Resistor) {
	fmt.Fprintf(w, "Resistance: %s\n", f.Ohms(r.Resistance()))
	if multiplier, err := format.Multiplier(r.Exponent()); err == nil {
		fmt.Fprintf(w, "Digits:     %d %s\n", r.Significant(), multiplier)
	}
	if tol, ok := r.Tolerance(); ok {
		lo, _ := r.MinResistance()
		hi, _ := r.MaxResistance()
		fmt.Fprintf(w, "Tolerance:  ±%s\n", f.Tolerance(tol))
		fmt.Fprintf(w, "Range:      %s - %s\n", f.Ohms(lo), f.Ohms(hi))
	}
	if tc, ok := r.TempCoefficient(); ok {
		fmt.Fprintf(w, "Temp. co.:  %s\n", format.TempCoefficient(tc))
	}
}

// interact applies one command per line to sel and prints the result after
// every change.
func interact(r io.Reader, w io.Writer, sel *selection.Selection, f format.Formatter) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if err := apply(sel, fields); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}

		if res, ok := sel.Resistor(); ok {
			fmt.Fprintln(w, f.Resistor(res))
		} else {
			fmt.Fprintln(w, "-")
		}
	}
	return scanner.Err()
}

func apply(sel *selection.Selection, fields []string) error {
	switch cmd := fields[0]; {
	case cmd == "set" && len(fields) == 3:
		slot, err := selection.ParseSlot(fields[1])
		if err != nil {
			return err
		}
		c, err := colorcode.Parse(fields[2])
		if err != nil {
			return err
		}
		if err := sel.Select(slot, c); err != nil {
			return fmt.Errorf("%w (want one of %s)", err, colorNames(colorcode.ColorsFor(slot.Role())))
		}
		return nil
	case cmd == "clear" && len(fields) == 2:
		slot, err := selection.ParseSlot(fields[1])
		if err != nil {
			return err
		}
		sel.Clear(slot)
		return nil
	case cmd == "reset" && len(fields) == 1:
		sel.Reset()
		return nil
	case cmd == "show" && len(fields) == 1:
		return nil
	}
	return errors.Errorf("unknown command %q (want set <slot> <color>, clear <slot>, reset or show)", strings.Join(fields, " "))
}

func colorNames(colors []colorcode.Color) string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
