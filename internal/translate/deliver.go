package translate

import (
	"context"
	"log/slog"

	"github.com/snaplate/snaplate/internal/domain"
)

// Presenter is the host-side collaborator that renders outcomes. ShowText
// is called for both successes and failure messages; CopyText only for a
// successful translation when the display mode asks for it.
type Presenter interface {
	ShowText(text string)
	CopyText(text string) error
}

// Run executes one translation and delivers exactly one outcome to the
// presenter: the translated text, or a single classified failure message.
func Run(ctx context.Context, t *Translator, req domain.Request, mode domain.DisplayMode, p Presenter) {
	out, err := t.Translate(ctx, req)
	if err != nil {
		p.ShowText(Classify(req.Provider, err))
		return
	}

	p.ShowText(out)

	if mode == domain.ModeDisplayAndCopy {
		if copyErr := p.CopyText(out); copyErr != nil {
			// A clipboard failure must not turn a successful translation
			// into a failure; the text has already been shown.
			t.logger.Warn("clipboard copy failed", slog.String("error", copyErr.Error()))
		}
	}
}
