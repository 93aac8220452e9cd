// Package host models the design tool's plugin API as an injected capability.
package host

import (
	"context"
)

// ColorStyle is a colour style stored in the host document.
// ID is the host's handle for the style; Name is the composed "{category}/{name}".
type ColorStyle struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// Attributes are the mutable values of an existing style.
type Attributes struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// Variant selects how a notification is presented.
type Variant string

const (
	VariantInfo    Variant = "info"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

// NotifyOptions configures a notification.
type NotifyOptions struct {
	Variant Variant `json:"variant"`
}

// UIOptions configures the plugin panel.
type UIOptions struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DefaultUIOptions is the panel shown by a new session.
var DefaultUIOptions = UIOptions{Title: "tokensmith", Width: 400, Height: 600}

// Bridge is the host plugin API. Implementations are supplied by the caller;
// nothing in this module looks one up from the environment.
type Bridge interface {
	GetColorStyles(ctx context.Context) ([]ColorStyle, error)
	CreateColorStyle(ctx context.Context, style ColorStyle) (ColorStyle, error)
	SetAttributes(ctx context.Context, id string, attrs Attributes) error
	Notify(ctx context.Context, message string, opts NotifyOptions) error
	ShowUI(ctx context.Context, opts UIOptions) error
	GetAvailableFonts(ctx context.Context) ([]string, error)
}
