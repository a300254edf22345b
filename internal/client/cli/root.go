package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	a.mu.RLock()
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.mode != "" {
		s = s + string(a.mode)
	}
	if a.workspace != nil {
		s = s + " " + a.workspace.Ledger.Title
	}
	a.mu.RUnlock()
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, asks for credentials once, starts the connectivity
// watcher and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to kouden CLI (type 'help' for commands)")

	_ = a.Login(ctx)

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(wctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
