package main

import (
	"context"

	"github.com/gnana997/tokensmith/pkg/host"
	"github.com/gnana997/tokensmith/pkg/host/docstore"
)

// openBridge opens the document at path. An empty path gives an in-memory
// document that is discarded on close.
func openBridge(ctx context.Context, path string) (host.Bridge, func() error, error) {
	if path == "" {
		return host.NewMemory(nil), func() error { return nil }, nil
	}
	store, err := docstore.Open(ctx, path, logger)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

// dryRunBridge copies the styles and fonts of bridge into a Memory so an apply
// can be previewed without writing.
func dryRunBridge(ctx context.Context, bridge host.Bridge) (*host.Memory, error) {
	styles, err := bridge.GetColorStyles(ctx)
	if err != nil {
		return nil, err
	}
	fonts, err := bridge.GetAvailableFonts(ctx)
	if err != nil {
		return nil, err
	}
	return host.NewMemory(fonts, styles...), nil
}
