package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/kouden/internal/client/collection"
	"github.com/dmitrijs2005/kouden/internal/client/services"
	"github.com/dmitrijs2005/kouden/internal/models"
)

// viewState is the list query a user builds up with search and sort.
type viewState struct {
	search string
	sortBy string
	dir    collection.Direction
	page   int
}

// entity describes how the REPL shows and edits one record type.
type entity[T models.Record[T]] struct {
	name     string
	store    func(*services.Workspace) *collection.Store[T]
	columns  []string
	cells    func(T) []string
	form     func(f *form, current T) T
	validate func(T) error
}

const entityUsage = `Usage: %s <command>
  list [page]              show a page of the list
  add                      create a record
  edit <id>                change a record
  rm <id>                  delete a record
  bulkrm <id> [id...]      delete several records at once
  search <text>            filter the list ("search" alone clears it)
  sort <field> [asc|desc]  order the list by field
  refresh                  reload from the server
`

// Entity dispatches "<entity> <command> [args]".
func (a *App) Entity(ctx context.Context, name string, args []string) error {
	if a.currentWorkspace() == nil {
		fmt.Fprintln(a.out, "Open a ledger first with 'use <ledger>'")
		return nil
	}
	switch name {
	case "telegram", "telegrams":
		return runEntity(ctx, a, telegramEntity, args)
	case "gift", "gifts":
		return runEntity(ctx, a, giftEntity, args)
	case "offering", "offerings":
		if len(args) > 0 && (args[0] == "photo" || args[0] == "photourl") {
			return a.offeringPhoto(ctx, args)
		}
		return runEntity(ctx, a, offeringEntity, args)
	}
	return fmt.Errorf("unknown entity %q", name)
}

func (a *App) view(name string) *viewState {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.views[name]
	if !ok {
		v = &viewState{dir: collection.Asc, page: 1}
		a.views[name] = v
	}
	return v
}

func runEntity[T models.Record[T]](ctx context.Context, a *App, e entity[T], args []string) error {
	w := a.currentWorkspace()
	store := e.store(w)
	v := a.view(e.name)

	cmd := "list"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "list", "l", "ls":
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Fprintln(a.out, "Page must be a positive number")
				return nil
			}
			v.page = n
		}
		return listEntity(a, e, store, v)

	case "search":
		v.search = strings.Join(args, " ")
		v.page = 1
		return listEntity(a, e, store, v)

	case "sort":
		if len(args) < 1 {
			fmt.Fprintf(a.out, "Usage: %s sort <field> [asc|desc]; fields: %s\n", e.name, strings.Join(store.SortKeyNames(), ", "))
			return nil
		}
		if !slices.Contains(store.SortKeyNames(), args[0]) {
			fmt.Fprintf(a.out, "Unknown field %q; fields: %s\n", args[0], strings.Join(store.SortKeyNames(), ", "))
			return nil
		}
		dir := collection.Asc
		if len(args) > 1 {
			d, err := collection.ParseDirection(args[1])
			if err != nil {
				fmt.Fprintln(a.out, err)
				return nil
			}
			dir = d
		}
		v.sortBy, v.dir, v.page = args[0], dir, 1
		return listEntity(a, e, store, v)

	case "refresh":
		if !a.online() {
			fmt.Fprintln(a.out, "Refreshing needs a connection to the server")
			return nil
		}
		if err := w.Refresh(ctx, store.Table()); err != nil {
			fmt.Fprintf(a.out, "Refresh failed: %v\n", err)
			return err
		}
		return listEntity(a, e, store, v)

	case "add":
		if !canWrite(a, w) {
			return nil
		}
		var zero T
		row, ok := fillForm(a, e, zero, false)
		if !ok {
			return nil
		}
		created, err := store.Create(ctx, row)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "id: %s\n", created.GetMeta().ID)
		return nil

	case "edit":
		if len(args) != 1 {
			fmt.Fprintf(a.out, "Usage: %s edit <id>\n", e.name)
			return nil
		}
		if !canWrite(a, w) {
			return nil
		}
		cur, found := store.State().Lookup(args[0])
		if !found {
			fmt.Fprintf(a.out, "No %s with id %s\n", e.name, args[0])
			return nil
		}
		row, ok := fillForm(a, e, cur, true)
		if !ok {
			return nil
		}
		_, err := store.Update(ctx, args[0], row)
		return err

	case "rm", "delete":
		if len(args) != 1 {
			fmt.Fprintf(a.out, "Usage: %s rm <id>\n", e.name)
			return nil
		}
		if !canWrite(a, w) {
			return nil
		}
		return store.Delete(ctx, args[0])

	case "bulkrm":
		if len(args) == 0 {
			fmt.Fprintf(a.out, "Usage: %s bulkrm <id> [id...]\n", e.name)
			return nil
		}
		if !canWrite(a, w) {
			return nil
		}
		return store.BulkDelete(ctx, args)

	case "help":
		fmt.Fprintf(a.out, entityUsage, e.name)
		return nil
	}

	fmt.Fprintf(a.out, entityUsage, e.name)
	return nil
}

func canWrite(a *App, w *services.Workspace) bool {
	if w.CanWrite() {
		return true
	}
	fmt.Fprintf(a.out, "You can only view %s\n", w.Ledger.Title)
	return false
}

func fillForm[T models.Record[T]](a *App, e entity[T], current T, edit bool) (T, bool) {
	f := &form{a: a, edit: edit}
	row := e.form(f, current)
	if f.err != nil {
		fmt.Fprintf(a.out, "Input error: %v\n", f.err)
		return row, false
	}
	if err := e.validate(row); err != nil {
		fmt.Fprintln(a.out, err)
		return row, false
	}
	return row, true
}

func listEntity[T models.Record[T]](a *App, e entity[T], store *collection.Store[T], v *viewState) error {
	p, err := store.View(collection.Query{
		Search:   v.search,
		SortBy:   v.sortBy,
		Dir:      v.dir,
		Page:     v.page,
		PageSize: a.config.PageSize,
	})
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t"+strings.Join(e.columns, "\t"))
	for _, r := range p.Rows {
		id := r.GetMeta().ID
		if r.GetMeta().IsPending() {
			id += " (saving)"
		}
		fmt.Fprintln(tw, id+"\t"+strings.Join(e.cells(r), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	footer := fmt.Sprintf("page %d/%d, %d %s", p.Page, p.Pages, p.Total, e.name+"s")
	if v.search != "" {
		footer += fmt.Sprintf(", search %q", v.search)
	}
	if v.sortBy != "" {
		footer += fmt.Sprintf(", sorted by %s %s", v.sortBy, v.dir)
	}
	fmt.Fprintln(a.out, footer)
	return nil
}
