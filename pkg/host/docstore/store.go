// Package docstore persists a host document in a local libsql database so the
// CLI can apply tokens without a running design tool.
package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/gnana997/tokensmith/pkg/host"
)

const schema = `
CREATE TABLE IF NOT EXISTS color_styles (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	name  TEXT NOT NULL UNIQUE,
	light TEXT NOT NULL,
	dark  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS fonts (
	family TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS notifications (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	message TEXT NOT NULL,
	variant TEXT NOT NULL
);
`

// Store is a host.Bridge backed by a libsql database file.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ host.Bridge = (*Store)(nil)

// Open opens (creating if needed) the document file at path.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	// One writer keeps the sequential apply loop ordered.
	db.SetMaxOpenConns(1)

	for _, stmt := range splitStatements(schema) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate document: %w", err)
		}
	}

	logger.Debug("opened document store", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetColorStyles lists styles in creation order.
func (s *Store) GetColorStyles(ctx context.Context) ([]host.ColorStyle, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, light, dark FROM color_styles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query color styles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var styles []host.ColorStyle
	for rows.Next() {
		var (
			id    int64
			style host.ColorStyle
		)
		if err := rows.Scan(&id, &style.Name, &style.Light, &style.Dark); err != nil {
			return nil, fmt.Errorf("failed to scan color style: %w", err)
		}
		style.ID = strconv.FormatInt(id, 10)
		styles = append(styles, style)
	}
	return styles, rows.Err()
}

// CreateColorStyle inserts a style. Names are unique.
func (s *Store) CreateColorStyle(ctx context.Context, style host.ColorStyle) (host.ColorStyle, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO color_styles (name, light, dark) VALUES (?, ?, ?)`,
		style.Name, style.Light, style.Dark)
	if err != nil {
		return host.ColorStyle{}, fmt.Errorf("failed to create color style %q: %w", style.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return host.ColorStyle{}, fmt.Errorf("failed to read style id: %w", err)
	}
	style.ID = strconv.FormatInt(id, 10)
	return style, nil
}

// SetAttributes updates the light and dark values of an existing style.
func (s *Store) SetAttributes(ctx context.Context, id string, attrs host.Attributes) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE color_styles SET light = ?, dark = ? WHERE id = ?`,
		attrs.Light, attrs.Dark, id)
	if err != nil {
		return fmt.Errorf("failed to update color style %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update color style %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", host.ErrStyleNotFound, id)
	}
	return nil
}

// Notify records the message and logs it.
func (s *Store) Notify(ctx context.Context, message string, opts host.NotifyOptions) error {
	s.logger.Info("notification", "message", message, "variant", opts.Variant)
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO notifications (message, variant) VALUES (?, ?)`,
		message, string(opts.Variant)); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}

// ShowUI has no panel to show; it only logs.
func (s *Store) ShowUI(ctx context.Context, opts host.UIOptions) error {
	s.logger.Debug("show ui", "title", opts.Title, "width", opts.Width, "height", opts.Height)
	return nil
}

// GetAvailableFonts lists registered font families alphabetically.
func (s *Store) GetAvailableFonts(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT family FROM fonts ORDER BY family`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fonts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var fonts []string
	for rows.Next() {
		var family string
		if err := rows.Scan(&family); err != nil {
			return nil, fmt.Errorf("failed to scan font: %w", err)
		}
		fonts = append(fonts, family)
	}
	return fonts, rows.Err()
}

// AddFonts registers font families. Existing families are ignored.
func (s *Store) AddFonts(ctx context.Context, families ...string) error {
	var errs []error
	for _, f := range families {
		if _, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO fonts (family) VALUES (?)`, f); err != nil {
			errs = append(errs, fmt.Errorf("font %q: %w", f, err))
		}
	}
	return errors.Join(errs...)
}

// Notifications returns recorded notifications oldest first.
func (s *Store) Notifications(ctx context.Context) ([]host.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT message, variant FROM notifications ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []host.Notification
	for rows.Next() {
		var (
			n       host.Notification
			variant string
		)
		if err := rows.Scan(&n.Message, &variant); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Variant = host.Variant(variant)
		out = append(out, n)
	}
	return out, rows.Err()
}
