// Copyright 2025 The choseong Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the choseong lookup terminal UI and its line-mode CLI.

choseong looks up Korean initial-consonant (choseong) keys such as "ㄱㄴ" in a
dataset of quiz entries. Typing a key shows the exact match, with its
categories and answers, and every other key starting with it as suggestions.

# Usage

Start the terminal UI on the bundled sample dataset:

	choseong

Use a dataset file and enable debug logging to choseong-debug.log:

	choseong -data quiz.json -d

Run the line-mode CLI, reading one query per line:

	choseong -c

# Datasets

A dataset is a list of records with a key, an optional category and either an
answers list or a single answer:

	[{"key": "ㄱㄴ", "category": "지명", "answers": ["가나"]}]

JSON, script (.js, the first array literal in the file), YAML, TOML
([[entry]] tables) and MessagePack files are accepted. The format is detected
from the extension unless -format is given.

# Configuration

The TOML config is created with defaults on first run:

	[dataset]
	path = ""
	format = ""

	[lookup]
	suggestion_limit = 100
	suppressed_category = "기타+중복정답"
	locale = "ko"

Flags override the config for a single run.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/choseong/internal/cli"
	"github.com/bastiangx/choseong/internal/clipboard"
	"github.com/bastiangx/choseong/internal/logger"
	"github.com/bastiangx/choseong/internal/tui"
	"github.com/bastiangx/choseong/internal/utils"
	"github.com/bastiangx/choseong/pkg/config"
	"github.com/bastiangx/choseong/pkg/dataset"
	"github.com/bastiangx/choseong/pkg/index"
	"github.com/bastiangx/choseong/pkg/lookup"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version      = "0.3.0"
	AppName      = "choseong"
	gh           = "https://github.com/bastiangx/choseong"
	debugLogFile = "choseong-debug.log"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dataset, index and engine, then hands over to a front-end.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Dataset file (empty uses the config, then the bundled sample)")
	formatName := flag.String("format", "", "Dataset format: json, script, yaml, toml, msgpack (default from extension)")
	configPath := flag.String("config", "", "Path to a custom config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run line-mode CLI instead of the terminal UI")
	limit := flag.Int("limit", 0, fmt.Sprintf("Maximum number of suggestions (default from config, %d)", defaultConfig.Lookup.SuggestionLimit))

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfig))

	if *dataPath != "" {
		cfg.Dataset.Path = *dataPath
	}
	if *formatName != "" {
		cfg.Dataset.Format = *formatName
	}
	if *limit > 0 {
		cfg.Lookup.SuggestionLimit = *limit
	}

	entries, err := loadEntries(cfg.Dataset)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	tag, err := cfg.LocaleTag()
	if err != nil {
		log.Fatalf("Bad config: %v", err)
	}
	idx := index.Build(entries, index.WithLocale(tag))
	st := idx.Stats()
	if st.Skipped > 0 || st.EmptyGroups > 0 {
		log.Warnf("Dropped %d entries without a key and %d keys without categories or answers", st.Skipped, st.EmptyGroups)
	}
	if idx.Len() == 0 {
		log.Warn("Dataset produced no keys, every query will show no match")
	}
	log.Debug("Index ready", "keys", st.Keys, "answers", st.Answers, "locale", idx.Locale())

	engine := lookup.NewEngine(idx, cfg.LookupOptions())

	if *cliMode {
		log.SetReportTimestamp(false)
		out, term := cliStreams()
		handler := cli.NewInputHandler(engine, clipboard.NewSystem(term), cli.Options{
			ExactTitle:   cfg.UI.ExactTitle,
			SuggestTitle: cfg.UI.SuggestTitle,
		}, out)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if err := runTUI(engine, cfg, *debugMode); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}

// cliStreams returns the CLI output stream and the terminal that receives the
// OSC 52 clipboard fallback. stdout carries query output only.
func cliStreams() (out, term *os.File) {
	return os.Stdout, os.Stderr
}

// loadEntries reads the configured dataset, or the bundled sample when none is set.
func loadEntries(ds config.DatasetConfig) ([]dataset.Entry, error) {
	if ds.Path == "" {
		log.Debug("No dataset configured, using bundled sample")
		entries, _, err := dataset.Sample()
		return entries, err
	}

	format, err := dataset.ParseFormat(ds.Format)
	if err != nil {
		return nil, err
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	path, err := pathResolver.ResolveDataset(ds.Path)
	if err != nil {
		return nil, err
	}

	entries, stats, err := dataset.Load(path, format)
	if err != nil {
		return nil, err
	}
	if info, ok := dataset.GetFormatInfo(stats.Format); ok {
		log.Debugf("Read %d records from %s (%s)", stats.Records, path, info.Description)
	}
	if stats.Skipped > 0 {
		log.Warnf("Skipped %d of %d records in %s", stats.Skipped, stats.Records, path)
	}
	return entries, nil
}

// runTUI starts the bubbletea program. Logs go to a file in debug mode and
// are dropped otherwise, since the program owns the terminal.
func runTUI(engine *lookup.Engine, cfg *config.Config, debug bool) error {
	if debug {
		closer, err := logger.RedirectToFile(debugLogFile)
		if err != nil {
			return err
		}
		defer closer.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := tui.New(engine, clipboard.NewSystem(os.Stdout), tui.Options{
		ExactTitle:   cfg.UI.ExactTitle,
		SuggestTitle: cfg.UI.SuggestTitle,
		CharLimit:    cfg.CLI.CharLimit,
	})

	var opts []tea.ProgramOption
	if cfg.CLI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(model, opts...).Run()
	return err
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ choseong ] 초성 lookup for quiz datasets")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}
