// Package notify is the toast surface: short success/error messages shown to
// the user after each mutation.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

func (n Notification) String() string {
	if n.Description == "" {
		return fmt.Sprintf("[%s] %s", n.Variant, n.Title)
	}
	return fmt.Sprintf("[%s] %s: %s", n.Variant, n.Title, n.Description)
}

// Notifier is fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Console prints notifications as single lines.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Notify(_ context.Context, n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, n.String())
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Nop drops every notification.
type Nop struct{}

func (Nop) Notify(context.Context, Notification) {}
