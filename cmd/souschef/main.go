// SousChef — a conversational recipe assistant.
//
// Usage:
//
//	souschef [-verbose] [-quiet] [-log-file path]
//
// Point it at a recipe page with "load <url>", then navigate the steps
// hands-free style: next, back, repeat, how much flour, how long, and
// so on. Needs an OpenAI-compatible chat API key (OPENAI_API_KEY or
// SOUSCHEF_LLM_API_KEY) for recipe segmentation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sous-chef/souschef/internal/assistant"
	"github.com/sous-chef/souschef/internal/config"
	"github.com/sous-chef/souschef/internal/display"
	"github.com/sous-chef/souschef/internal/ingredient"
	"github.com/sous-chef/souschef/internal/llm"
	"github.com/sous-chef/souschef/internal/logging"
	"github.com/sous-chef/souschef/internal/lookup"
	"github.com/sous-chef/souschef/internal/router"
	"github.com/sous-chef/souschef/internal/scrape"
	"github.com/sous-chef/souschef/internal/session"
	"github.com/sous-chef/souschef/internal/tagger"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "souschef: %v\n", err)
		os.Exit(1)
	}

	// Flags win over config.
	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}
	if *quiet {
		level = "off"
	}
	path := cfg.LogFile
	if *logFile != "" {
		path = *logFile
	}

	// Logs go to a file by default so the REPL stays clean.
	log, flush, err := logging.New(level, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "souschef: %v\n", err)
		os.Exit(1)
	}
	defer flush()

	if cfg.LLM.APIKey == "" {
		fmt.Fprintln(os.Stderr, "souschef: no LLM API key set (OPENAI_API_KEY or SOUSCHEF_LLM_API_KEY) — recipe loading will fail")
	}

	// Context is cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	fetcher := scrape.New(log,
		scrape.WithUserAgent(cfg.Scrape.UserAgent),
		scrape.WithTimeout(cfg.Scrape.Timeout),
	)
	chat := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, log,
		llm.WithModel(cfg.LLM.Model),
		llm.WithTemperature(cfg.LLM.Temperature),
		llm.WithMaxTokens(cfg.LLM.MaxTokens),
		llm.WithTimeout(cfg.LLM.Timeout),
	)
	segmenter := llm.NewSegmenter(chat, log)
	tg := tagger.New()
	parser := ingredient.NewParser(tg, log)
	loader := session.NewLoader(fetcher, segmenter, parser, log)

	var chef *assistant.Assistant
	ui := display.NewUI(func() string {
		if chef == nil {
			return ""
		}
		return chef.StatusLine()
	})
	chef = assistant.New(router.New(log), loader, lookup.New(tg, log), ui, log)

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Load a recipe with 'load <url>'. Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// App loop in a background goroutine; Bubble Tea owns the terminal.
	go func() {
		ui.WaitReady()
		run(ctx, chef, ui)
		ui.Quit()
	}()

	if err := ui.Run(); err != nil {
		log.Errorf("display: %v", err)
	}
	cancel()
}

func run(ctx context.Context, chef *assistant.Assistant, ui *display.UI) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ui.InputChan():
			if !ok {
				return
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			if quit := chef.Handle(ctx, input); quit {
				return
			}
		}
	}
}
