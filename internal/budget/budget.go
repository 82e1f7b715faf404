// Package budget computes the derived budget of a wedding.
//
// A budget category is not stored anywhere. It is recomputed on every
// read by joining the allocation rows with the spend recorded through
// bookings and manual expenses, matched on the canonical category key.
package budget

import (
	"sort"
	"strings"

	"github.com/sergiu811/perfect-wedding-sub000/internal/category"
	"github.com/shopspring/decimal"
)

// Booking statuses that count towards the spent total. Cancelled and
// completed-then-cancelled engagements must not move the budget.
var spendStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
}

// SyntheticIDPrefix marks categories that have spend but no backing
// allocation row. Clients use it to hide the delete control, since
// there is no row to delete.
const SyntheticIDPrefix = "spent-"

// Allocation is a budget allocation row as read from storage. The
// amount is kept as the raw string so that malformed legacy data
// degrades to zero instead of failing the whole computation.
type Allocation struct {
	ID       string
	Category string
	Amount   string
}

// Booking is the subset of a vendor booking that the aggregation
// consumes.
type Booking struct {
	VendorName     string
	VendorCategory string
	Status         string
	TotalPrice     string
	Date           string
}

// Expense is a manually recorded spend.
type Expense struct {
	Name     string
	Category string
	Amount   string
	Date     string
}

// Category is one line of the derived budget.
type Category struct {
	ID        string
	Key       string
	Name      string
	Color     string
	Allocated decimal.Decimal
	Spent     decimal.Decimal
}

// Synthetic reports whether the category has no backing allocation row.
func (c Category) Synthetic() bool {
	return strings.HasPrefix(c.ID, SyntheticIDPrefix)
}

// Remaining returns the unspent part of the allocation. It is negative
// when the category is over budget.
func (c Category) Remaining() decimal.Decimal {
	return c.Allocated.Sub(c.Spent)
}

// parseAmount parses a stored amount string. Unparsable amounts report
// ok as false and are handled by the caller.
func parseAmount(raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, false
	}

	return amount, true
}

// Compute reconciles allocations with the spend from bookings and
// expenses into one budget line per category.
//
// Every category key with a nonzero allocation or nonzero spend appears
// exactly once. Categories with an allocation row always appear, even
// at zero spend. Categories with spend but no allocation row appear
// with a synthetic ID. The result is sorted by spent, descending, with
// ties keeping their input order.
func Compute(allocations []Allocation, bookings []Booking, expenses []Expense) []Category {
	type allocated struct {
		id     string
		amount decimal.Decimal
	}

	allocationMap := make(map[string]allocated, len(allocations))
	keys := make([]string, 0, len(allocations))

	for _, allocation := range allocations {
		key := category.Normalize(allocation.Category)

		// Malformed allocation amounts count as zero
		amount, ok := parseAmount(allocation.Amount)
		if !ok {
			amount = decimal.Zero
		}

		if _, seen := allocationMap[key]; !seen {
			keys = append(keys, key)
		}
		allocationMap[key] = allocated{id: allocation.ID, amount: amount}
	}

	spentMap := make(map[string]decimal.Decimal)
	spentKeys := []string{}

	add := func(key string, amount decimal.Decimal) {
		if _, seen := spentMap[key]; !seen {
			spentKeys = append(spentKeys, key)
		}
		spentMap[key] = spentMap[key].Add(amount)
	}

	for _, booking := range bookings {
		if !spendStatuses[booking.Status] {
			continue
		}

		// Malformed booking prices are skipped entirely
		price, ok := parseAmount(booking.TotalPrice)
		if !ok {
			continue
		}

		add(category.Normalize(booking.VendorCategory), price)
	}

	for _, expense := range expenses {
		amount, ok := parseAmount(expense.Amount)
		if !ok {
			continue
		}

		add(category.Normalize(expense.Category), amount)
	}

	categories := make([]Category, 0, len(keys))

	// One line per allocation row, spend defaulting to zero. Rows with
	// nothing allocated and nothing spent are dropped.
	for _, key := range keys {
		allocation := allocationMap[key]
		if allocation.amount.IsZero() && spentMap[key].IsZero() {
			continue
		}

		categories = append(categories, Category{
			ID:        allocation.id,
			Key:       key,
			Name:      category.DisplayLabel(key),
			Color:     category.Color(key),
			Allocated: allocation.amount,
			Spent:     spentMap[key],
		})
	}

	// Spend without an allocation row still surfaces, with a synthetic
	// ID and nothing allocated
	for _, key := range spentKeys {
		if _, ok := allocationMap[key]; ok {
			continue
		}
		if !spentMap[key].IsPositive() {
			continue
		}

		categories = append(categories, Category{
			ID:        SyntheticIDPrefix + key,
			Key:       key,
			Name:      category.DisplayLabel(key),
			Color:     category.Color(key),
			Allocated: decimal.Zero,
			Spent:     spentMap[key],
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Spent.GreaterThan(categories[j].Spent)
	})

	return categories
}

// Totals sums up the allocation and spend over all budget lines.
func Totals(categories []Category) (allocated, spent decimal.Decimal) {
	for _, c := range categories {
		allocated = allocated.Add(c.Allocated)
		spent = spent.Add(c.Spent)
	}

	return
}
