package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit/colornode"
)

var errNoTable = errors.New("no color table configured (set --table or table.source)")

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// loadTable reads the configured table from disk or over HTTP.
func loadTable(ctx context.Context, cfg TableConfig) (*colornode.Node, error) {
	source := strings.TrimSpace(cfg.Source)
	if source == "" {
		return nil, errNoTable
	}

	if !isRemote(source) {
		return colornode.Load(source)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	return colornode.Fetch(ctx, &http.Client{Timeout: cfg.Timeout}, source)
}
