package budget

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders money with thousands grouping, e.g. $12,500.
var printer = message.NewPrinter(language.English)

// money renders a decimal as a dollar string with grouped thousands.
// The report intentionally rounds to whole dollars.
func money(amount decimal.Decimal) string {
	return printer.Sprintf("$%d", amount.Round(0).IntPart())
}

// percent renders the spent share of an allocation as an integer
// percentage. Lines without an allocation render as 0%.
func percent(spent, allocated decimal.Decimal) string {
	if !allocated.IsPositive() {
		return "0%"
	}

	share := spent.Div(allocated).Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("%d%%", share.Round(0).IntPart())
}

// quote wraps a value in double quotes so that embedded commas do not
// break the column structure.
//
// Embedded double quotes are not escaped. A category or vendor name
// containing a quote character corrupts the line it is on. Kept as is
// until we know what character set clients actually produce, see the
// data quality notes in DESIGN.md.
func quote(value string) string {
	return `"` + value + `"`
}

// Filename returns the download name for a report generated at the
// given time.
func Filename(at time.Time) string {
	return fmt.Sprintf("wedding-budget-%s.csv", at.Format("2006-01-02"))
}

// Report builds the multi-section CSV budget report.
//
// Sections are separated by blank lines: summary totals, the
// per-category breakdown, bookings, expenses and allocations. The
// report is built entirely from the data passed in, no storage access
// happens here.
func Report(categories []Category, bookings []Booking, expenses []Expense, allocations []Allocation) string {
	allocated, spent := Totals(categories)

	var lines []string

	lines = append(lines,
		quote("Wedding Budget Report")+","+quote(time.Now().Format("2006-01-02")),
		"",
		quote("Total Allocated")+","+quote(money(allocated)),
		quote("Total Spent")+","+quote(money(spent)),
		quote("Total Remaining")+","+quote(money(allocated.Sub(spent))),
		"",
	)

	lines = append(lines, "Category,Allocated,Spent,Remaining,Percentage Spent")
	for _, c := range categories {
		lines = append(lines, strings.Join([]string{
			quote(c.Name),
			quote(money(c.Allocated)),
			quote(money(c.Spent)),
			quote(money(c.Remaining())),
			percent(c.Spent, c.Allocated),
		}, ","))
	}
	lines = append(lines, "")

	lines = append(lines, "Vendor,Category,Status,Price,Date")
	for _, b := range bookings {
		price, ok := parseAmount(b.TotalPrice)
		priceCell := quote(money(price))
		if !ok {
			priceCell = quote(b.TotalPrice)
		}

		lines = append(lines, strings.Join([]string{
			quote(b.VendorName),
			quote(b.VendorCategory),
			quote(b.Status),
			priceCell,
			quote(b.Date),
		}, ","))
	}
	lines = append(lines, "")

	lines = append(lines, "Name,Category,Amount,Date")
	for _, e := range expenses {
		amount, ok := parseAmount(e.Amount)
		amountCell := quote(money(amount))
		if !ok {
			amountCell = quote(e.Amount)
		}

		lines = append(lines, strings.Join([]string{
			quote(e.Name),
			quote(e.Category),
			amountCell,
			quote(e.Date),
		}, ","))
	}
	lines = append(lines, "")

	lines = append(lines, "Category,Allocated")
	for _, a := range allocations {
		amount, _ := parseAmount(a.Amount)
		lines = append(lines, quote(a.Category)+","+quote(money(amount)))
	}

	return strings.Join(lines, "\n") + "\n"
}
