package product

import (
	"cmp"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Sortable fields accepted by order_by.
var sortFields = map[string]func(a, b Product) int{
	"id":           func(a, b Product) int { return cmp.Compare(a.ID, b.ID) },
	"name":         func(a, b Product) int { return strings.Compare(a.Name, b.Name) },
	"price":        func(a, b Product) int { return a.Price.Cmp(b.Price) },
	"description":  func(a, b Product) int { return strings.Compare(a.Description, b.Description) },
	"quantity":     func(a, b Product) int { return cmp.Compare(a.Quantity, b.Quantity) },
	"created_date": func(a, b Product) int { return a.CreatedDate.Compare(b.CreatedDate) },
	"location":     func(a, b Product) int { return strings.Compare(a.Location, b.Location) },
	"category":     func(a, b Product) int { return cmp.Compare(a.CategoryID, b.CategoryID) },
}

// ListQuery is the product list filter. Nil fields are not applied.
type ListQuery struct {
	Category   *int64
	Location   *string
	OrderBy    string
	Direction  string
	Quantity   *int
	NumberSold *int
}

// ParseListQuery reads category, location, order_by, direction, quantity and
// number_sold from a query string.
func ParseListQuery(values url.Values) (ListQuery, error) {
	var q ListQuery

	if v := values.Get("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return q, fmt.Errorf("%w: category must be an integer", ErrInvalidQuery)
		}
		q.Category = &id
	}

	if values.Has("location") {
		loc := values.Get("location")
		q.Location = &loc
	}

	if v := values.Get("order_by"); v != "" {
		if _, ok := sortFields[v]; !ok {
			return q, fmt.Errorf("%w: cannot order by %q", ErrInvalidQuery, v)
		}
		q.OrderBy = v
	}
	q.Direction = values.Get("direction")

	n, err := parseCount(values, "quantity")
	if err != nil {
		return q, err
	}
	q.Quantity = n

	n, err = parseCount(values, "number_sold")
	if err != nil {
		return q, err
	}
	q.NumberSold = n

	return q, nil
}

func parseCount(values url.Values, key string) (*int, error) {
	v := values.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidQuery, key)
	}
	return &n, nil
}

// Apply runs q over products in a fixed order: sort, location, category,
// quantity, number_sold. quantity discards the order_by sort, re-sorting by
// newest first with ties broken by ascending id, and truncates before
// number_sold filters, so combining the two can return fewer than quantity
// rows. The input slice is not modified.
func Apply(products []Product, q ListQuery) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	if compare, ok := sortFields[q.OrderBy]; ok {
		desc := q.Direction == "desc"
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return compare(out[j], out[i]) < 0
			}
			return compare(out[i], out[j]) < 0
		})
	}

	if q.Location != nil {
		out = filter(out, func(p Product) bool {
			return strings.Contains(p.Location, *q.Location)
		})
	}

	if q.Category != nil {
		out = filter(out, func(p Product) bool {
			return p.CategoryID == *q.Category
		})
	}

	if q.Quantity != nil {
		sort.Slice(out, func(i, j int) bool {
			return newestFirst(out[i], out[j]) < 0
		})
		if *q.Quantity < len(out) {
			out = out[:*q.Quantity]
		}
	}

	if q.NumberSold != nil {
		out = filter(out, func(p Product) bool {
			return p.NumberSold >= *q.NumberSold
		})
	}

	return out
}

func newestFirst(a, b Product) int {
	if c := b.CreatedDate.Compare(a.CreatedDate); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func filter(products []Product, keep func(Product) bool) []Product {
	kept := products[:0]
	for _, p := range products {
		if keep(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
