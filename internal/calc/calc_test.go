package calc

import (
	"testing"

	"bunk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuelSale(t *testing.T) {
	liters, amount := FuelSale(1000.000, 1050.000, 5.000, 100.00)
	assert.Equal(t, 45.000, liters)
	assert.Equal(t, 4500.00, amount)
}

func TestFuelSaleNegativeIsComputable(t *testing.T) {
	liters, amount := FuelSale(1050, 1000, 5, 100)
	assert.Equal(t, -55.0, liters)
	assert.Equal(t, -5500.0, amount)
}

func TestOilSale(t *testing.T) {
	assert.Equal(t, 1050.00, OilSale(3, 350.00))
	assert.Equal(t, 0.0, OilSale(0, 350.00))
}

func TestTotals(t *testing.T) {
	// total_sales 10000; deductions qr=2000 advance=500 credit=300
	// expenses=200 phonepay=0; additions collections=150 yesterday=100
	totalSales, cashToDeposit := Totals(6000, 3000, 1000,
		2000, 500, 300, 200, 0,
		150, 100)
	assert.Equal(t, 10000.00, totalSales)
	assert.Equal(t, 7250.00, cashToDeposit)
}

func TestCleanItems(t *testing.T) {
	raw := []models.LineItem{
		{Name: "  Ravi ", Amount: 100.456},
		{Name: "", Amount: 50},
		{Name: "   ", Amount: 75},
		{Name: "Suresh", Amount: 0},
		{Name: "Mahesh", Amount: -10},
		{Name: "Lakshmi", Amount: 20},
	}

	cleaned := CleanItems(raw)
	require.Len(t, cleaned, 2)
	assert.Equal(t, models.LineItem{Name: "Ravi", Amount: 100.46}, cleaned[0])
	assert.Equal(t, models.LineItem{Name: "Lakshmi", Amount: 20.00}, cleaned[1])
}

func TestCleanItemsIdempotent(t *testing.T) {
	raw := []models.LineItem{
		{Name: " a ", Amount: 1.005},
		{Name: "b", Amount: 2.349},
		{Name: "", Amount: 3},
	}
	once := CleanItems(raw)
	twice := CleanItems(once)
	assert.Equal(t, once, twice)
}

func TestCleanItemsEmpty(t *testing.T) {
	assert.Empty(t, CleanItems(nil))
	assert.Empty(t, CleanItems([]models.LineItem{}))
}

func TestSumItems(t *testing.T) {
	items := []models.LineItem{{Name: "a", Amount: 10.50}, {Name: "b", Amount: 20.25}}
	assert.Equal(t, 30.75, SumItems(items))
	assert.Equal(t, 0.0, SumItems(nil))
}

func TestBuildReport(t *testing.T) {
	in := models.ReportInput{
		Date:         "2025-06-01",
		EmployeeName: "Sasi",
		POpen:        1000.000, PClose: 1050.000, PTest: 5.000, PRate: 100.00,
		DOpen: 2000.000, DClose: 2100.000, DTest: 5.000, DRate: 90.00,
		OilPackets: 3, OilPrice: 350.00,
		QRAmount: 2000, AdvancePaid: 500,
		YesterdayBalanceAmount: 100,
		CustomerCreditRows: []models.LineItem{
			{Name: "Ravi", Amount: 300},
			{Name: "", Amount: 999}, // dropped
		},
		DebtCollectionRows: []models.LineItem{{Name: "Suresh", Amount: 150}},
		OtherExpenseRows:   []models.LineItem{{Name: "Tea", Amount: 200}},
	}

	r := BuildReport(in)

	assert.Equal(t, 45.000, r.PetrolLitersSold)
	assert.Equal(t, 4500.00, r.PetrolAmount)
	assert.Equal(t, 95.000, r.DieselLitersSold)
	assert.Equal(t, 8550.00, r.DieselAmount)
	assert.Equal(t, 1050.00, r.OilAmount)
	assert.Equal(t, 300.00, r.CustomerCreditTotal)
	assert.Equal(t, 150.00, r.DebtCollectionsTotal)
	assert.Equal(t, 200.00, r.OtherExpensesTotal)
	assert.Equal(t, 14100.00, r.TotalSales)
	// 14100 - (2000+500+300+200+0) + 150 + 100
	assert.Equal(t, 11350.00, r.CashToDeposit)

	require.Len(t, r.Details.CustomerCreditRows, 1)
	assert.Equal(t, "Ravi", r.Details.CustomerCreditRows[0].Name)
}

func TestBuildReportRoundsAtBoundaryOnly(t *testing.T) {
	// 10.0005 L at 99.99 would drift if liters were rounded before
	// multiplying. The stored amount comes from the unrounded chain.
	in := models.ReportInput{
		Date:  "2025-06-02",
		POpen: 0, PClose: 10.0006, PTest: 0, PRate: 99.99,
	}
	r := BuildReport(in)
	assert.Equal(t, 10.001, r.PetrolLitersSold)           // 3dp boundary
	assert.Equal(t, Money(10.0006*99.99), r.PetrolAmount) // not Money(10.001*99.99)
}

func TestValidate(t *testing.T) {
	ok := models.DailyReport{PetrolLitersSold: 45, DieselLitersSold: 0}
	assert.NoError(t, Validate(ok))

	badPetrol := models.DailyReport{PetrolLitersSold: -1, DieselLitersSold: 10}
	err := Validate(badPetrol)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "petrol")

	badBoth := models.DailyReport{PetrolLitersSold: -1, DieselLitersSold: -2}
	err = Validate(badBoth)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "petrol and diesel")
}

func TestMoneyLiters(t *testing.T) {
	assert.Equal(t, 12.35, Money(12.346))
	assert.Equal(t, 12.34, Money(12.344))
	assert.Equal(t, 1.235, Liters(1.2346))
	assert.Equal(t, Money(5.5), Money(Money(5.5)))
}
