package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "heaptool",
		Usage: "heap-sort and merge line-oriented text streams",
		Commands: []*cli.Command{
			{
				Name:   "sort",
				Action: sortLines,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "numeric",
						Usage: "compare lines as numbers",
					},
					&cli.BoolFlag{
						Name:  "reverse",
						Usage: "emit greatest lines first",
					},
				},
			},
			{
				Name:   "merge",
				Action: mergeFiles,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
