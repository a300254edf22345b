package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/kouden/internal/client/collection"
	"github.com/dmitrijs2005/kouden/internal/client/services"
	"github.com/dmitrijs2005/kouden/internal/models"
)

// form collects field values. On add every prompt starts empty; on edit
// the current value is shown and kept on an empty answer. The first input
// error stops further prompts.
type form struct {
	a    *App
	edit bool
	err  error
}

func (f *form) text(prompt, current string) string {
	if f.err != nil {
		return current
	}
	var v string
	if f.edit {
		v, f.err = GetWithDefault(f.a.reader, prompt, current, f.a.out)
	} else {
		v, f.err = getSimpleText(f.a.reader, prompt, f.a.out)
	}
	if v == "" && !f.edit {
		return current
	}
	return v
}

func (f *form) multiline(prompt, current string) string {
	if f.err != nil {
		return current
	}
	var v string
	v, f.err = GetMultiline(f.a.reader, prompt, current, f.a.out)
	return v
}

// parsed reads a field whose empty answer keeps current.
func (f *form) parsed(prompt, shown string, parse func(string) error) {
	if f.err != nil {
		return
	}
	raw := f.text(prompt, shown)
	if f.err != nil || raw == shown || raw == "" {
		return
	}
	if err := parse(raw); err != nil {
		f.err = fmt.Errorf("%s: %w", prompt, err)
	}
}

func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer(",", "", "¥", "", "円", "", " ", "").Replace(s)
	return decimal.NewFromString(s)
}

func (f *form) money(prompt string, current decimal.Decimal) decimal.Decimal {
	v := current
	f.parsed(prompt, current.String(), func(s string) error {
		d, err := parseMoney(s)
		v = d
		return err
	})
	return v
}

// optionalMoney accepts "-" to clear the value.
func (f *form) optionalMoney(prompt string, current decimal.NullDecimal) decimal.NullDecimal {
	v := current
	f.parsed(prompt+" (- for none)", formatNullMoney(current), func(s string) error {
		if s == "-" {
			v = decimal.NullDecimal{}
			return nil
		}
		d, err := parseMoney(s)
		v = decimal.NewNullDecimal(d)
		return err
	})
	return v
}

func (f *form) integer(prompt string, current int) int {
	v := current
	f.parsed(prompt, strconv.Itoa(current), func(s string) error {
		n, err := strconv.Atoi(s)
		v = n
		return err
	})
	return v
}

func (f *form) yesNo(prompt string, current bool) bool {
	v := current
	f.parsed(prompt+" (y/n)", yesNo(current), func(s string) error {
		switch strings.ToLower(s) {
		case "y", "yes":
			v = true
		case "n", "no":
			v = false
		default:
			return fmt.Errorf("answer y or n")
		}
		return nil
	})
	return v
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func formatNullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.String()
}

var telegramEntity = entity[models.Telegram]{
	name:    "telegram",
	store:   func(w *services.Workspace) *collection.Store[models.Telegram] { return w.Telegrams },
	columns: []string{"SENDER", "ORGANIZATION", "POSITION", "DELIVERED", "MESSAGE"},
	cells: func(t models.Telegram) []string {
		return []string{t.SenderName, t.SenderOrganization, t.SenderPosition, yesNo(t.Delivered), firstLine(t.Message, 30)}
	},
	form: func(f *form, t models.Telegram) models.Telegram {
		t.SenderName = f.text("Sender name", t.SenderName)
		t.SenderOrganization = f.text("Organization", t.SenderOrganization)
		t.SenderPosition = f.text("Position", t.SenderPosition)
		t.Message = f.multiline("Message", t.Message)
		t.Notes = f.text("Notes", t.Notes)
		t.Delivered = f.yesNo("Read at the ceremony", t.Delivered)
		return t
	},
	validate: models.Telegram.Validate,
}

var giftEntity = entity[models.Gift]{
	name:    "gift",
	store:   func(w *services.Workspace) *collection.Store[models.Gift] { return w.Gifts },
	columns: []string{"GIVER", "ORGANIZATION", "RELATIONSHIP", "AMOUNT", "RETURN"},
	cells: func(g models.Gift) []string {
		return []string{g.GiverName, g.Organization, g.Relationship, g.Amount.String(), string(g.ReturnStatus)}
	},
	form: func(f *form, g models.Gift) models.Gift {
		if !f.edit && g.ReturnStatus == "" {
			g.ReturnStatus = models.ReturnPending
		}
		g.GiverName = f.text("Giver name", g.GiverName)
		g.Organization = f.text("Organization", g.Organization)
		g.Position = f.text("Position", g.Position)
		g.Relationship = f.text("Relationship", g.Relationship)
		g.Amount = f.money("Amount", g.Amount)
		g.ReturnStatus = models.ReturnStatus(f.text("Return gift (pending, arranged, sent, not_required)", string(g.ReturnStatus)))
		g.Notes = f.text("Notes", g.Notes)
		return g
	},
	validate: models.Gift.Validate,
}

var offeringEntity = entity[models.Offering]{
	name:    "offering",
	store:   func(w *services.Workspace) *collection.Store[models.Offering] { return w.Offerings },
	columns: []string{"TYPE", "PROVIDER", "ORGANIZATION", "PRICE", "QTY", "PHOTO"},
	cells: func(o models.Offering) []string {
		photo := "-"
		if o.PhotoKey != nil {
			photo = "yes"
		}
		return []string{o.OfferingType, o.ProviderName, o.Organization, formatNullMoney(o.Price), strconv.Itoa(o.Quantity), photo}
	},
	form: func(f *form, o models.Offering) models.Offering {
		if !f.edit && o.Quantity == 0 {
			o.Quantity = 1
		}
		o.OfferingType = f.text("Type (flowers, basket, ...)", o.OfferingType)
		o.ProviderName = f.text("Provider name", o.ProviderName)
		o.Organization = f.text("Organization", o.Organization)
		o.Price = f.optionalMoney("Price", o.Price)
		o.Quantity = f.integer("Quantity", o.Quantity)
		o.Notes = f.text("Notes", o.Notes)
		return o
	},
	validate: models.Offering.Validate,
}

func firstLine(s string, limit int) string {
	s, _, _ = strings.Cut(s, "\n")
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit-1]) + "…"
	}
	return s
}
