package collection

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// SortKey orders records by one field. IsNull may be nil for fields that
// are never null.
type SortKey[T any] struct {
	Name    string
	IsNull  func(T) bool
	Compare func(a, b T) int
}

// Query selects one page of the merged view.
type Query struct {
	Search   string
	SortBy   string
	Dir      Direction
	Page     int
	PageSize int
}

// Page is a slice of the filtered and sorted view.
type Page[T any] struct {
	Rows  []T
	Total int
	Page  int
	Pages int
}

func fold(s string) string {
	return cases.Fold().String(width.Fold.String(s))
}

// Filter keeps rows where any searchable field contains q, ignoring case
// and full-width/half-width differences. An empty query keeps everything.
// Relative order is preserved.
func Filter[T any](rows []T, q string, fields func(T) []string) []T {
	q = strings.TrimSpace(q)
	if q == "" || fields == nil {
		return slices.Clone(rows)
	}
	needle := fold(q)
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		for _, f := range fields(r) {
			if strings.Contains(fold(f), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Sort returns a stably sorted copy. Null values go last in both directions.
func Sort[T any](rows []T, key SortKey[T], dir Direction) []T {
	out := slices.Clone(rows)
	if key.Compare == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		if key.IsNull != nil {
			an, bn := key.IsNull(a), key.IsNull(b)
			switch {
			case an && bn:
				return 0
			case an:
				return 1
			case bn:
				return -1
			}
		}
		c := key.Compare(a, b)
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}

// Paginate returns rows[(page-1)*size : page*size]. Pages are 1-based;
// out-of-range pages are empty.
func Paginate[T any](rows []T, page, size int) []T {
	if size <= 0 {
		return slices.Clone(rows)
	}
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return []T{}
	}
	end := min(start+size, len(rows))
	return slices.Clone(rows[start:end])
}

// PageCount is the number of pages needed for total rows.
func PageCount(total, size int) int {
	if size <= 0 || total == 0 {
		return 1
	}
	return (total + size - 1) / size
}

// StringKey compares with Japanese collation. Empty strings count as null.
func StringKey[T any](name string, get func(T) string) SortKey[T] {
	var mu sync.Mutex
	col := collate.New(language.Japanese, collate.IgnoreCase, collate.IgnoreWidth)
	return SortKey[T]{
		Name:   name,
		IsNull: func(r T) bool { return strings.TrimSpace(get(r)) == "" },
		Compare: func(a, b T) int {
			mu.Lock()
			defer mu.Unlock()
			return col.CompareString(get(a), get(b))
		},
	}
}

func DecimalKey[T any](name string, get func(T) decimal.Decimal) SortKey[T] {
	return SortKey[T]{
		Name:    name,
		Compare: func(a, b T) int { return get(a).Cmp(get(b)) },
	}
}

func NullDecimalKey[T any](name string, get func(T) decimal.NullDecimal) SortKey[T] {
	return SortKey[T]{
		Name:    name,
		IsNull:  func(r T) bool { return !get(r).Valid },
		Compare: func(a, b T) int { return get(a).Decimal.Cmp(get(b).Decimal) },
	}
}

// TimeKey treats the zero time as null.
func TimeKey[T any](name string, get func(T) time.Time) SortKey[T] {
	return SortKey[T]{
		Name:    name,
		IsNull:  func(r T) bool { return get(r).IsZero() },
		Compare: func(a, b T) int { return get(a).Compare(get(b)) },
	}
}

func IntKey[T any](name string, get func(T) int) SortKey[T] {
	return SortKey[T]{
		Name:    name,
		Compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

// BoolKey orders false before true.
func BoolKey[T any](name string, get func(T) bool) SortKey[T] {
	return SortKey[T]{
		Name: name,
		Compare: func(a, b T) int {
			av, bv := get(a), get(b)
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		},
	}
}

// ViewOf runs the filter, sort and paginate pipeline over rows.
func ViewOf[T any](rows []T, q Query, fields func(T) []string, keys []SortKey[T]) (Page[T], error) {
	filtered := Filter(rows, q.Search, fields)

	if q.SortBy != "" {
		idx := slices.IndexFunc(keys, func(k SortKey[T]) bool { return k.Name == q.SortBy })
		if idx < 0 {
			return Page[T]{}, fmt.Errorf("unknown sort field %q", q.SortBy)
		}
		filtered = Sort(filtered, keys[idx], q.Dir)
	}

	page := q.Page
	if page == 0 {
		page = 1
	}
	return Page[T]{
		Rows:  Paginate(filtered, page, q.PageSize),
		Total: len(filtered),
		Page:  page,
		Pages: PageCount(len(filtered), q.PageSize),
	}, nil
}
