// Package main provides the CLI entrypoint for candb-parser.
//
// candb parses a CAN database (.dbc) file into an in-memory network model
// and prints a per-message summary. The model it builds is the same one the
// firmware packing/unpacking code generator consumes.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"candb-parser/dbc"
	"candb-parser/internal/config"
)

const configPath = "candb.yaml"

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Println("config:", err)
		os.Exit(1)
	}

	// A path argument overrides the configured source.
	if len(os.Args) > 1 {
		cfg.Source = os.Args[1]
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	opts := []dbc.Option{
		dbc.WithLogger(logger),
		dbc.WithDatabaseName(cfg.Name),
	}
	if cfg.Lenient {
		opts = append(opts, dbc.WithLenientTermination())
	}

	parser := dbc.NewParser(opts...)

	db, err := parser.Load(cfg.Source)
	if err != nil {
		fmt.Println("load:", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d messages, %d transmitting nodes, %d attribute schemas\n",
		db.Path(), len(db.Messages()), len(db.TransmittingNodes()), len(db.AttributeSchemas()))

	for _, msg := range db.Messages() {
		fmt.Printf("  %d %s: %d bytes from %s, %d signals, subscribers %v\n",
			msg.ID(), msg.Name(), msg.DLC(), msg.Transmitter(),
			len(msg.Signals()), msg.Subscribers())
	}

	diags := parser.Diagnostics()
	for _, w := range diags.Warnings {
		fmt.Println("warning:", w.String())
	}

	if cfg.Dump {
		spew.Dump(db)
	}

	fmt.Print("press enter to exit")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

// loadConfig reads candb.yaml, falling back to defaults when absent.
func loadConfig() (*config.RunConfig, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}

		return nil, err
	}

	return cfg, nil
}
