package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banquetdesk/banquet-backend/internal/menu"
)

func testPackage() (*menu.Package, []*menu.Item) {
	pkg := &menu.Package{ID: "pkg1", Name: "Silver", Type: menu.TypeVeg, Price: 1000}
	items := []*menu.Item{
		{ID: "i1", PackageID: "pkg1", Name: "Starter", Price: 300},
		{ID: "i2", PackageID: "pkg1", Name: "Main", Price: 450},
		{ID: "i3", PackageID: "pkg1", Name: "Dessert", Price: 250},
	}
	return pkg, items
}

func packageLine(itemID string) Line {
	return Line{ItemID: itemID, IsPackageItem: true, Quantity: 1}
}

func TestComputeTotals(t *testing.T) {
	t.Run("All Items Selected", func(t *testing.T) {
		pkg, items := testPackage()
		q := &Quotation{Lines: []Line{packageLine("i1"), packageLine("i2"), packageLine("i3")}}

		totals := ComputeTotals(q, pkg, items, false)
		assert.Equal(t, 0, totals.ExcludedItemCount)
		assert.Equal(t, 0.0, totals.TotalDeduction)
		assert.Equal(t, 1000.0, totals.TotalPrice)
	})

	t.Run("Excluded Item Counted And Priced", func(t *testing.T) {
		pkg, items := testPackage()
		// The 450 item is left out.
		q := &Quotation{Lines: []Line{packageLine("i1"), packageLine("i3")}}

		totals := ComputeTotals(q, pkg, items, false)
		assert.Equal(t, 1, totals.ExcludedItemCount)
		assert.Equal(t, 450.0, totals.TotalDeduction)
		// Historical behavior: the deduction is informational only.
		assert.Equal(t, 1000.0, totals.TotalPrice)
	})

	t.Run("Deduction Mode Subtracts", func(t *testing.T) {
		pkg, items := testPackage()
		q := &Quotation{Lines: []Line{packageLine("i1"), packageLine("i3")}}

		totals := ComputeTotals(q, pkg, items, true)
		assert.Equal(t, 450.0, totals.TotalDeduction)
		assert.Equal(t, 550.0, totals.TotalPrice)
	})

	t.Run("Additional Items Charged Per Unit", func(t *testing.T) {
		pkg, items := testPackage()
		q := &Quotation{Lines: []Line{
			packageLine("i1"), packageLine("i2"), packageLine("i3"),
			{ItemID: "x1", Name: "Live Counter", IsPackageItem: false, UnitAdditionalPrice: 150, Quantity: 2},
		}}

		totals := ComputeTotals(q, pkg, items, false)
		assert.Equal(t, 300.0, totals.AdditionalItemsTotal)
		assert.Equal(t, 1300.0, totals.TotalPrice)
	})

	t.Run("Override Replaces Base Price", func(t *testing.T) {
		pkg, items := testPackage()
		override := 900.0
		q := &Quotation{
			CustomPackagePrice: &override,
			Lines:              []Line{packageLine("i1"), packageLine("i3")},
		}

		totals := ComputeTotals(q, pkg, items, false)
		assert.Equal(t, 900.0, totals.PackagePrice)
		assert.Equal(t, 900.0, totals.TotalPrice)
	})

	t.Run("Override Wins Even In Deduction Mode", func(t *testing.T) {
		pkg, items := testPackage()
		override := 900.0
		q := &Quotation{
			CustomPackagePrice: &override,
			Lines:              []Line{packageLine("i1")},
		}

		totals := ComputeTotals(q, pkg, items, true)
		assert.Equal(t, 700.0, totals.TotalDeduction)
		assert.Equal(t, 900.0, totals.TotalPrice)
	})

	t.Run("Empty Selection Excludes Everything", func(t *testing.T) {
		pkg, items := testPackage()
		q := &Quotation{}

		totals := ComputeTotals(q, pkg, items, false)
		assert.Equal(t, 3, totals.ExcludedItemCount)
		assert.Equal(t, 1000.0, totals.TotalDeduction)
		assert.Equal(t, 1000.0, totals.TotalPrice)
	})
}
