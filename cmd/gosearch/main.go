package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Johniel/gosearch/search"
)

var Version = "dev"

func main() {
	app := cli.NewApp()
	app.Version = Version
	app.Name = "gosearch"
	app.Usage = "search a sorted list of integers"
	app.Description = "Demonstrates binary, exponential, and interpolation search. " +
		"Values are sorted before searching; omitted flags are prompted for on stdin."
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "values",
			Usage: "comma-separated integers to search",
		},
		&cli.StringFlag{
			Name:  "target",
			Usage: "integer to look for",
		},
		&cli.StringFlag{
			Name:  "algo",
			Value: "binary",
			Usage: "algorithm: binary, exponential, or interpolation",
		},
	}
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Action = func(ctx *cli.Context) error {
		return run(ctx.App.Writer, os.Stdin, ctx.String("values"), ctx.String("target"), ctx.String("algo"))
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gosearch: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, in io.Reader, valuesArg, targetArg, algo string) error {
	prompt := bufio.NewReader(in)

	if valuesArg == "" {
		fmt.Fprint(w, "Enter numbers separated by comma: ")
		line, err := prompt.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read values: %w", err)
		}
		valuesArg = line
	}
	values, err := parseValues(valuesArg)
	if err != nil {
		return err
	}
	slices.Sort(values)

	if targetArg == "" {
		fmt.Fprint(w, "Enter a single number to be found in the list: ")
		line, err := prompt.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read target: %w", err)
		}
		targetArg = line
	}
	target, err := strconv.Atoi(strings.TrimSpace(targetArg))
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", strings.TrimSpace(targetArg), err)
	}

	idx, err := runSearch(algo, values, target)
	if err != nil {
		return err
	}
	if idx == search.NotFound {
		fmt.Fprintf(w, "%d was not found in %v.\n", target, values)
	} else {
		fmt.Fprintf(w, "%d was found at position %d of %v.\n", target, idx, values)
	}
	return nil
}

func parseValues(s string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", strings.TrimSpace(p), err)
		}
		values = append(values, v)
	}
	return values, nil
}

func runSearch(algo string, values []int, target int) (int, error) {
	switch algo {
	case "binary":
		return search.BinarySearch(values, target), nil
	case "exponential":
		return search.ExponentialSearch(values, target), nil
	case "interpolation":
		return search.InterpolationSearch(values, target), nil
	default:
		return search.NotFound, fmt.Errorf("unknown algorithm %q (want binary, exponential, or interpolation)", algo)
	}
}
