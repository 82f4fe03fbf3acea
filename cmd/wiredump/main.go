package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wirebound/wirebound/message"
)

var (
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Width(8)
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to a raw protobuf wire dump")
		schemaFile  = flag.String("schema", "", "Optional TOML schema with field names and kinds")
		capacity    = flag.Int("max", 4096, "Capacity for decoded length-delimited fields")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose decode logging")
	)
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: wiredump -in <dump.bin> [-schema fields.toml] [-max n]")
		fmt.Fprintln(os.Stderr, "       wiredump -in <dump.bin> -i  (interactive mode)")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
		defer logger.Sync()
		message.SetLogger(logger)
	}

	if err := run(*inFile, *schemaFile, *capacity, *interactive, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, schemaFile string, capacity int, interactive bool, logger *zap.Logger) error {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var sch *Schema
	if schemaFile != "" {
		sch, err = LoadSchema(schemaFile)
		if err != nil {
			return err
		}
	}

	entries, err := DecodeStream(data, sch, capacity, logger)
	if err != nil {
		// Show what decoded before the stream went bad.
		printEntries(entries)
		return err
	}

	if interactive {
		return runInteractive(inFile, entries)
	}

	printEntries(entries)
	return nil
}

func printEntries(entries []Entry) {
	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	for _, e := range entries {
		line := numberStyle.Render(fmt.Sprintf("%d", e.Number)) +
			typeStyle.Render(e.Type.String()) +
			valueStyle.Render(e.Name+" = "+e.Summary())
		if width > 0 && lipgloss.Width(line) > width {
			line = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
		fmt.Println(line)
	}
}
