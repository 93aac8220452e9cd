package host

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// ErrStyleNotFound is returned when a style handle does not exist.
var ErrStyleNotFound = errors.New("color style not found")

// Notification is a recorded Notify call.
type Notification struct {
	Message string
	Variant Variant
}

// Memory is an in-process Bridge. It backs dry runs and tests.
// FailOn makes writes for the listed composed names fail.
type Memory struct {
	mu            sync.Mutex
	styles        []ColorStyle
	fonts         []string
	nextID        int
	notifications []Notification
	uiShown       []UIOptions
	failOn        map[string]bool
	failList      error
}

// NewMemory creates a Memory bridge seeded with styles and fonts.
func NewMemory(fonts []string, styles ...ColorStyle) *Memory {
	m := &Memory{fonts: append([]string(nil), fonts...), failOn: make(map[string]bool)}
	for _, s := range styles {
		if s.ID == "" {
			m.nextID++
			s.ID = "S:" + strconv.Itoa(m.nextID)
		}
		m.styles = append(m.styles, s)
	}
	return m
}

// FailOn makes create and update calls for the given composed names fail.
func (m *Memory) FailOn(names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range names {
		m.failOn[n] = true
	}
}

// FailList makes GetColorStyles return err.
func (m *Memory) FailList(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failList = err
}

func (m *Memory) GetColorStyles(ctx context.Context) ([]ColorStyle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList != nil {
		return nil, m.failList
	}
	return append([]ColorStyle(nil), m.styles...), nil
}

func (m *Memory) CreateColorStyle(ctx context.Context, style ColorStyle) (ColorStyle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn[style.Name] {
		return ColorStyle{}, fmt.Errorf("create %q: rejected by host", style.Name)
	}
	m.nextID++
	style.ID = "S:" + strconv.Itoa(m.nextID)
	m.styles = append(m.styles, style)
	return style, nil
}

func (m *Memory) SetAttributes(ctx context.Context, id string, attrs Attributes) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.styles {
		if s.ID != id {
			continue
		}
		if m.failOn[s.Name] {
			return fmt.Errorf("update %q: rejected by host", s.Name)
		}
		m.styles[i].Light = attrs.Light
		m.styles[i].Dark = attrs.Dark
		return nil
	}
	return fmt.Errorf("%w: %s", ErrStyleNotFound, id)
}

func (m *Memory) Notify(ctx context.Context, message string, opts NotifyOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, Notification{Message: message, Variant: opts.Variant})
	return nil
}

func (m *Memory) ShowUI(ctx context.Context, opts UIOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uiShown = append(m.uiShown, opts)
	return nil
}

// GetAvailableFonts returns the configured font families, sorted.
func (m *Memory) GetAvailableFonts(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fonts := append([]string(nil), m.fonts...)
	sort.Strings(fonts)
	return fonts, nil
}

// Notifications returns every Notify call so far.
func (m *Memory) Notifications() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.notifications...)
}

// UIShown returns every ShowUI call so far.
func (m *Memory) UIShown() []UIOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]UIOptions(nil), m.uiShown...)
}

// Styles returns the current document styles.
func (m *Memory) Styles() []ColorStyle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ColorStyle(nil), m.styles...)
}
