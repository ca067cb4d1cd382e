// Package ui provides styled console output: the presenter used by the CLI
// to show translations, and startup messages for the server.
package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
)

var (
	successBadge = color.New(color.BgGreen, color.FgBlack, color.Bold)
	errorBadge   = color.New(color.BgRed, color.FgWhite, color.Bold)
	infoBadge    = color.New(color.FgCyan, color.Bold)

	successText = color.New(color.FgGreen)
	errorText   = color.New(color.FgRed)
	infoText    = color.New(color.FgCyan)
	mutedText   = color.New(color.FgHiBlack)
	accentText  = color.New(color.FgMagenta, color.Bold)
)

// Console renders translation outcomes on the terminal. It implements the
// translate.Presenter contract: ShowText for every outcome, CopyText to put
// a successful translation on the system clipboard.
type Console struct{}

// NewConsole returns a terminal presenter.
func NewConsole() *Console {
	return &Console{}
}

// ShowText prints the outcome. Both translated text and classified failure
// messages come through here; no styling distinction is made because a
// failure message is a normal outcome, not a crash.
func (c *Console) ShowText(text string) {
	fmt.Println(text)
}

// CopyText places text on the system clipboard.
func (c *Console) CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	mutedText.Println("(copied to clipboard)")
	return nil
}

// PrintTranslation logs one completed translation with provider context.
// Used by the server's console output, not the CLI presenter.
func PrintTranslation(provider string, latency time.Duration, ok bool) {
	mutedText.Printf("%s ", time.Now().Format("15:04:05"))
	if ok {
		successBadge.Print(" OK ")
	} else {
		errorBadge.Print(" ERR ")
	}
	fmt.Print(" ")
	accentText.Print(provider)
	fmt.Print(" ")
	printLatency(latency)
	fmt.Println()
}

// printLatency prints latency with a color gradient.
// Green: < 1s, Yellow: < 5s, Red: >= 5s.
func printLatency(latency time.Duration) {
	ms := latency.Milliseconds()
	latencyStr := fmt.Sprintf("%5dms", ms)

	warningText := color.New(color.FgYellow)
	switch {
	case ms < 1000:
		successText.Print(latencyStr)
	case ms < 5000:
		warningText.Print(latencyStr)
	default:
		errorText.Print(latencyStr)
	}
}

// PrintStartupInfo prints styled server startup information.
func PrintStartupInfo(host string, port int, provider, targetLanguage string) {
	fmt.Println()
	infoBadge.Print("[SNAPLATE]")
	fmt.Print(" Listening on ")
	infoText.Printf("http://%s:%d\n", host, port)

	infoBadge.Print("[SNAPLATE]")
	fmt.Print(" Provider: ")
	accentText.Print(provider)
	fmt.Print(" | Target language: ")
	accentText.Println(targetLanguage)

	fmt.Println()
	printEndpoints()
}

func printEndpoints() {
	mutedText.Println("  POST /v1/translate   Translate selected text")
	mutedText.Println("  GET  /v1/providers   List providers and models")
	mutedText.Println("  GET  /v1/languages   List target languages")
	mutedText.Println("  GET  /health         Health check")
	fmt.Println()
}

// PrintShutdown prints a styled shutdown message.
func PrintShutdown() {
	fmt.Println()
	infoBadge.Print("[SNAPLATE]")
	mutedText.Println(" Graceful shutdown initiated...")
}
