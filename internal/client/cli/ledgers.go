package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/kouden/internal/client/services"
	"github.com/dmitrijs2005/kouden/internal/models"
)

const dateLayout = "2006-01-02"

// Ledgers prints the ledgers the user can open.
func (a *App) Ledgers(ctx context.Context) error {
	ledgers, err := a.ledgerService.List(ctx, a.online())
	if err != nil {
		fmt.Fprintf(a.out, "Cannot list ledgers: %v\n", err)
		return err
	}
	if len(ledgers) == 0 {
		fmt.Fprintln(a.out, "No ledgers yet. Create one with 'newledger'.")
		return nil
	}

	current := ""
	if w := a.currentWorkspace(); w != nil {
		current = w.Ledger.ID
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tDECEASED\tFUNERAL\tROLE\tID")
	for i, l := range ledgers {
		mark := ""
		if l.ID == current {
			mark = "*"
		}
		fmt.Fprintf(tw, "%d%s\t%s\t%s\t%s\t%s\t%s\n", i+1, mark, l.Title, l.DeceasedName, formatDate(l.FuneralDate), l.Role, l.ID)
	}
	return tw.Flush()
}

// NewLedger prompts for a ledger and creates it on the server.
func (a *App) NewLedger(ctx context.Context) error {
	if !a.online() {
		fmt.Fprintln(a.out, "Creating ledgers needs a connection to the server")
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	deceased, err := getSimpleText(a.reader, "Name of the deceased", a.out)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Funeral date (YYYY-MM-DD, optional)", a.out)
	if err != nil {
		return err
	}
	funeral, err := parseDate(date)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid date: %v\n", err)
		return err
	}

	l, err := a.ledgerService.Create(ctx, models.Ledger{Title: title, DeceasedName: deceased, FuneralDate: funeral})
	if err != nil {
		fmt.Fprintf(a.out, "Cannot create ledger: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Created ledger %s (%s)\n", l.Title, l.ID)
	return a.openLedger(ctx, l)
}

// Share grants another user access to the open ledger.
func (a *App) Share(ctx context.Context, args []string) error {
	w := a.currentWorkspace()
	if w == nil {
		fmt.Fprintln(a.out, "Open a ledger first with 'use <ledger>'")
		return nil
	}
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: share <username> [editor|viewer]")
		return nil
	}
	role := models.RoleViewer
	if len(args) > 1 {
		role = models.Role(args[1])
	}

	m, err := a.ledgerService.Share(ctx, w.Ledger.ID, args[0], role)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot share ledger: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "%s is now %s of %s\n", m.UserName, m.Role, w.Ledger.Title)
	return nil
}

// Members lists who can see the open ledger.
func (a *App) Members(ctx context.Context) error {
	w := a.currentWorkspace()
	if w == nil {
		fmt.Fprintln(a.out, "Open a ledger first with 'use <ledger>'")
		return nil
	}
	members, err := a.ledgerService.Members(ctx, w.Ledger.ID)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot list members: %v\n", err)
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USER\tROLE")
	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\n", m.UserName, m.Role)
	}
	return tw.Flush()
}

// Use opens a ledger by id, listing position or title.
func (a *App) Use(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: use <ledger id|number|title>")
		return nil
	}
	l, err := a.ledgerService.Find(ctx, a.online(), args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open ledger: %v\n", err)
		return err
	}
	return a.openLedger(ctx, l)
}

func (a *App) openLedger(ctx context.Context, l models.Ledger) error {
	a.closeWorkspace(ctx)

	w, err := services.OpenWorkspace(ctx, l, a.online(), services.WorkspaceOptions{
		Rows:       a.rows,
		Subscriber: a.subscriber,
		DB:         a.db,
		Notifier:   a.notifier,
		Logger:     a.log,
		Timeout:    a.config.MutationTimeout,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open ledger %s: %v\n", l.Title, err)
		return err
	}

	a.mu.Lock()
	a.workspace = w
	a.views = map[string]*viewState{}
	a.mu.Unlock()

	if err := a.ledgerService.Remember(ctx, l.ID); err != nil {
		a.log.Warn(ctx, "cannot remember ledger", "err", err)
	}
	fmt.Fprintf(a.out, "Opened %s: %d telegrams, %d gifts, %d offerings\n",
		l.Title, len(w.Telegrams.Rows()), len(w.Gifts.Rows()), len(w.Offerings.Rows()))
	return nil
}

func (a *App) reopenLastLedger(ctx context.Context) {
	id, err := a.ledgerService.Last(ctx)
	if err != nil || id == "" {
		return
	}
	l, err := a.ledgerService.Find(ctx, a.online(), id)
	if err != nil {
		a.log.Debug(ctx, "last ledger not available", "ledger", id, "err", err)
		return
	}
	_ = a.openLedger(ctx, l)
}

func (a *App) closeWorkspace(ctx context.Context) {
	a.mu.Lock()
	w := a.workspace
	a.workspace = nil
	a.mu.Unlock()
	if w == nil {
		return
	}
	if err := w.Close(ctx); err != nil {
		a.log.Warn(ctx, "workspace close failed", "ledger", w.Ledger.ID, "err", err)
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateLayout)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errors.New("expected YYYY-MM-DD")
	}
	return &t, nil
}
