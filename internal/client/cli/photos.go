package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/kouden/internal/client/notify"
	"github.com/dmitrijs2005/kouden/internal/models"
)

// offeringPhoto handles "offering photo <id> <path>" and
// "offering photourl <id>".
func (a *App) offeringPhoto(ctx context.Context, args []string) error {
	w := a.currentWorkspace()
	if !a.online() {
		fmt.Fprintln(a.out, "Photos need a connection to the server")
		return nil
	}

	switch args[0] {
	case "photo":
		if len(args) != 3 {
			fmt.Fprintln(a.out, "Usage: offering photo <id> <path>")
			return nil
		}
		if !canWrite(a, w) {
			return nil
		}
		id, path := args[1], args[2]
		if _, ok := w.Offerings.State().Lookup(id); !ok {
			fmt.Fprintf(a.out, "No offering with id %s\n", id)
			return nil
		}

		if _, err := a.photoService.Upload(ctx, id, path); err != nil {
			a.log.Error(ctx, "photo upload failed", "id", id, "err", err)
			a.notifier.Notify(ctx, notify.Notification{
				Title:       "Failed to upload photo",
				Description: err.Error(),
				Variant:     notify.VariantError,
			})
			return err
		}
		a.notifier.Notify(ctx, notify.Notification{Title: "Photo uploaded", Variant: notify.VariantSuccess})
		if err := w.Refresh(ctx, models.TableOfferings); err != nil {
			a.log.Warn(ctx, "refresh after upload failed", "err", err)
		}
		return nil

	default:
		if len(args) != 2 {
			fmt.Fprintln(a.out, "Usage: offering photourl <id>")
			return nil
		}
		url, err := a.photoService.URL(ctx, args[1])
		if err != nil {
			fmt.Fprintf(a.out, "No photo: %v\n", err)
			return err
		}
		fmt.Fprintln(a.out, url)
		return nil
	}
}
