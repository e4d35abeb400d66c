package quotation

import (
	"github.com/banquetdesk/banquet-backend/internal/menu"
)

// ComputeTotals derives the customized pricing summary for a quotation.
//
// The deduction is computed from the authoritative package item list: every
// package item NOT selected on the quotation counts as excluded and its
// price accumulates into TotalDeduction. Additional (non-package) lines are
// charged at their snapshotted unit additional price times quantity. The
// package price is the author's override when present, otherwise the
// package's derived base price.
//
// Historically the deduction was displayed but never subtracted from the
// charged total. applyDeduction false keeps that behavior; true subtracts
// the deduction unless an explicit override was supplied, since an override
// is taken as the author's final package price.
func ComputeTotals(q *Quotation, pkg *menu.Package, pkgItems []*menu.Item, applyDeduction bool) Totals {
	selected := make(map[string]bool)
	for _, line := range q.Lines {
		if line.IsPackageItem {
			selected[line.ItemID] = true
		}
	}

	var totals Totals
	for _, it := range pkgItems {
		if !selected[it.ID] {
			totals.ExcludedItemCount++
			totals.TotalDeduction += it.Price
		}
	}

	for _, line := range q.Lines {
		if !line.IsPackageItem {
			totals.AdditionalItemsTotal += line.UnitAdditionalPrice * float64(line.Quantity)
		}
	}

	totals.PackagePrice = pkg.Price
	if q.CustomPackagePrice != nil {
		totals.PackagePrice = *q.CustomPackagePrice
	}

	totals.TotalPrice = totals.PackagePrice + totals.AdditionalItemsTotal
	if applyDeduction && q.CustomPackagePrice == nil {
		totals.TotalPrice -= totals.TotalDeduction
	}

	return totals
}
