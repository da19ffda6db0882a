package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/navijation/njheap/seqmux"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// mergeFiles k-way merges files whose lines are already sorted, writing the
// merged stream to stdout.
func mergeFiles(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("usage: merge file...")
	}

	mux := seqmux.NewMux(func(a, b string) bool {
		return a < b
	})

	for _, path := range cmd.Args().Slice() {
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open %q", path)
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		err = mux.AddSource(func() (string, error, bool) {
			if !scanner.Scan() {
				return "", errors.Wrapf(scanner.Err(), "failed to read %q", path), false
			}
			return scanner.Text(), nil, true
		})
		if err != nil {
			return err
		}
	}

	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for {
		line, hasNext, err := mux.Next()
		if err != nil {
			return err
		}
		if !hasNext {
			return nil
		}
		fmt.Fprintln(writer, line)
	}
}
