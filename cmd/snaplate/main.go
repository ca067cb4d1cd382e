// Package main is the snaplate CLI: translate one piece of selected text
// and print (and optionally copy) the result.
//
// Usage:
//
//	snaplate [flags] [text...]
//	echo "text" | snaplate [flags]
//
// A classified translation failure is displayed like any other outcome and
// exits 0; the host shell is never failed by a provider problem.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/snaplate/snaplate/internal/config"
	"github.com/snaplate/snaplate/internal/domain"
	"github.com/snaplate/snaplate/internal/security"
	"github.com/snaplate/snaplate/internal/translate"
	"github.com/snaplate/snaplate/internal/ui"
)

func main() {
	var (
		providerFlag = flag.String("provider", "", "translation provider (openai, anthropic, google)")
		languageFlag = flag.String("to", "", "target language")
		modelFlag    = flag.String("model", "", "provider model")
		copyFlag     = flag.Bool("copy", false, "copy the translation to the clipboard")
		configFlag   = flag.String("config", "", "path to config file")
	)
	flag.Parse()

	logger := slog.New(security.NewHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
	slog.SetDefault(logger)

	var cfg *config.Configuration
	var err error
	if *configFlag != "" {
		cfg, err = config.GetConfigWithPath(*configFlag)
	} else {
		cfg, err = config.GetConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snaplate: %v\n", err)
		os.Exit(1)
	}

	text, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "snaplate: %v\n", err)
		os.Exit(1)
	}

	req := cfg.Request(text)
	mode := cfg.DisplayMode

	if *providerFlag != "" {
		p := domain.Provider(*providerFlag)
		if !p.Valid() {
			fmt.Fprintf(os.Stderr, "snaplate: unknown provider %q\n", *providerFlag)
			os.Exit(1)
		}
		req.Provider = p
		req.Credential = cfg.Credential(p)
		req.Model = cfg.Model(p)
	}
	if *languageFlag != "" {
		l := domain.Language(*languageFlag)
		if !domain.ValidLanguage(l) {
			fmt.Fprintf(os.Stderr, "snaplate: unknown target language %q\n", *languageFlag)
			os.Exit(1)
		}
		req.TargetLanguage = l
	}
	if *modelFlag != "" {
		m := domain.ModelName(*modelFlag)
		if !domain.ValidModel(req.Provider, m) {
			fmt.Fprintf(os.Stderr, "snaplate: unknown %s model %q\n", req.Provider.Label(), *modelFlag)
			os.Exit(1)
		}
		req.Model = m
	}
	if *copyFlag {
		mode = domain.ModeDisplayAndCopy
	}

	translator := translate.New(translate.WithLogger(logger))
	translate.Run(context.Background(), translator, req, mode, ui.NewConsole())
}

// readInput takes the text from argv, or from stdin when no args are given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
