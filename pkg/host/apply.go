package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

// ApplyResult counts the outcome of an apply run.
type ApplyResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// OK reports whether every token was written.
func (r ApplyResult) OK() bool {
	return r.Failed == 0
}

// ApplyColors writes set to the host document one token at a time.
//
// Existing styles are listed once. A token whose composed name already exists
// is updated in place, otherwise a style is created. A failed token is logged
// and the loop moves on; nothing is rolled back. Exactly one notification
// summarising the run is sent at the end. The returned error is non-nil only
// when the initial listing fails, in which case nothing was written.
func ApplyColors(ctx context.Context, bridge Bridge, set tokens.ColorSet, logger *slog.Logger) (ApplyResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var result ApplyResult

	existing, err := bridge.GetColorStyles(ctx)
	if err != nil {
		notify(ctx, bridge, logger, "Failed to read color styles from the document", VariantError)
		return result, fmt.Errorf("failed to list color styles: %w", err)
	}
	byName := make(map[string]ColorStyle, len(existing))
	for _, s := range existing {
		byName[s.Name] = s
	}

	for _, tok := range set {
		name := tokens.StyleName(tok)
		if style, ok := byName[name]; ok {
			if err := bridge.SetAttributes(ctx, style.ID, Attributes{Light: tok.Light, Dark: tok.Dark}); err != nil {
				logger.Error("failed to update color style", "name", name, "error", err)
				result.Failed++
				continue
			}
			result.Updated++
			continue
		}

		created, err := bridge.CreateColorStyle(ctx, ColorStyle{Name: name, Light: tok.Light, Dark: tok.Dark})
		if err != nil {
			logger.Error("failed to create color style", "name", name, "error", err)
			result.Failed++
			continue
		}
		// A token list with two entries of the same composed name updates the first.
		byName[name] = created
		result.Created++
	}

	logger.Info("applied color styles", "created", result.Created, "updated", result.Updated, "failed", result.Failed)
	if result.OK() {
		notify(ctx, bridge, logger, fmt.Sprintf("Applied %d color styles", result.Created+result.Updated), VariantSuccess)
	} else {
		notify(ctx, bridge, logger, "Some color styles could not be applied", VariantError)
	}
	return result, nil
}

func notify(ctx context.Context, bridge Bridge, logger *slog.Logger, message string, variant Variant) {
	if err := bridge.Notify(ctx, message, NotifyOptions{Variant: variant}); err != nil {
		logger.Warn("failed to send notification", "message", message, "error", err)
	}
}
