package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/navijation/njheap/heap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func sortLines(ctx context.Context, cmd *cli.Command) error {
	less := lineOrdering(cmd.Bool("numeric"), cmd.Bool("reverse"))

	lines := heap.NewHeap(less)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines.Push(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read stdin")
	}

	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for {
		line, exists := lines.Pop().Unpack()
		if !exists {
			return nil
		}
		fmt.Fprintln(writer, line)
	}
}

func lineOrdering(numeric, reverse bool) func(a, b string) bool {
	less := func(a, b string) bool {
		return a < b
	}

	if numeric {
		less = func(a, b string) bool {
			av, aErr := strconv.ParseFloat(a, 64)
			bv, bErr := strconv.ParseFloat(b, 64)
			switch {
			case aErr == nil && bErr == nil:
				return av < bv
			case aErr == nil:
				// numeric lines sort before non-numeric ones
				return true
			case bErr == nil:
				return false
			default:
				return a < b
			}
		}
	}

	if reverse {
		forward := less
		less = func(a, b string) bool {
			return forward(b, a)
		}
	}

	return less
}
