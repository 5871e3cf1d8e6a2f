// Package calc is the arithmetic engine for daily reports: pure
// functions from raw meter readings and cash figures to the computed
// report. No state, no I/O.
//
// Rounding happens only at the persistence/presentation boundary
// (BuildReport and CleanItems), never inside the formula chain:
// money to 2 decimals, liters to 3.
package calc

import (
	"fmt"
	"math"
	"strings"

	"bunk-backend/internal/models"
)

// Money rounds a monetary value to 2 decimal places.
func Money(x float64) float64 {
	return math.Round(x*100) / 100
}

// Liters rounds a volumetric value to 3 decimal places.
func Liters(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// FuelSale computes liters sold and sale amount for one fuel from its
// meter readings. litersSold = close - open - test; a negative result
// is a valid computation but an invalid business state that blocks
// persistence (see Validate).
func FuelSale(open, close, test, rate float64) (litersSold, amount float64) {
	litersSold = close - open - test
	amount = litersSold * rate
	return litersSold, amount
}

// OilSale computes the 2T oil sale amount.
func OilSale(packets int, price float64) float64 {
	return float64(packets) * price
}

// Totals computes total sales and the cash to deposit.
//
//	totalSales    = petrol + diesel + oil
//	cashToDeposit = totalSales
//	              - (qr + advance + creditTotal + expensesTotal + ownerPhonePay)
//	              + collectionsTotal + yesterdayBalance
func Totals(petrolAmount, dieselAmount, oilAmount,
	qr, advance, creditTotal, expensesTotal, ownerPhonePay,
	collectionsTotal, yesterdayBalance float64) (totalSales, cashToDeposit float64) {

	totalSales = petrolAmount + dieselAmount + oilAmount
	cashToDeposit = totalSales -
		(qr + advance + creditTotal + expensesTotal + ownerPhonePay) +
		collectionsTotal + yesterdayBalance
	return totalSales, cashToDeposit
}

// CleanItems keeps only meaningful sub-ledger rows: trimmed non-empty
// name and amount > 0, amount rounded to 2 decimals. Idempotent.
func CleanItems(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, 0, len(items))
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" || it.Amount <= 0 {
			continue
		}
		out = append(out, models.LineItem{Name: name, Amount: Money(it.Amount)})
	}
	return out
}

// SumItems totals the amounts of a cleaned sub-ledger.
func SumItems(items []models.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	return sum
}

// BuildReport computes a full DailyReport from raw input: cleans the
// sub-ledgers, runs the formula chain unrounded, then applies boundary
// rounding to every derived field. Raw readings and rates are stored
// as entered.
func BuildReport(in models.ReportInput) models.DailyReport {
	credits := CleanItems(in.CustomerCreditRows)
	collections := CleanItems(in.DebtCollectionRows)
	expenses := CleanItems(in.OtherExpenseRows)

	creditTotal := SumItems(credits)
	collectionsTotal := SumItems(collections)
	expensesTotal := SumItems(expenses)

	pLiters, pAmount := FuelSale(in.POpen, in.PClose, in.PTest, in.PRate)
	dLiters, dAmount := FuelSale(in.DOpen, in.DClose, in.DTest, in.DRate)
	oilAmount := OilSale(in.OilPackets, in.OilPrice)

	totalSales, cashToDeposit := Totals(pAmount, dAmount, oilAmount,
		in.QRAmount, in.AdvancePaid, creditTotal, expensesTotal, in.OwnerPhonePayAmount,
		collectionsTotal, in.YesterdayBalanceAmount)

	return models.DailyReport{
		Date:         in.Date,
		EmployeeName: in.EmployeeName,
		Notes:        in.Notes,

		POpen:  in.POpen,
		PClose: in.PClose,
		PTest:  in.PTest,
		PRate:  in.PRate,

		DOpen:  in.DOpen,
		DClose: in.DClose,
		DTest:  in.DTest,
		DRate:  in.DRate,

		PetrolLitersSold: Liters(pLiters),
		PetrolAmount:     Money(pAmount),
		DieselLitersSold: Liters(dLiters),
		DieselAmount:     Money(dAmount),

		OilPackets: in.OilPackets,
		OilPrice:   in.OilPrice,
		OilAmount:  Money(oilAmount),

		QRAmount:               in.QRAmount,
		AdvancePaid:            in.AdvancePaid,
		OwnerPhonePayAmount:    in.OwnerPhonePayAmount,
		YesterdayBalanceAmount: in.YesterdayBalanceAmount,

		CustomerCreditTotal:  Money(creditTotal),
		DebtCollectionsTotal: Money(collectionsTotal),
		OtherExpensesTotal:   Money(expensesTotal),

		TotalSales:    Money(totalSales),
		CashToDeposit: Money(cashToDeposit),

		Details: models.ReportDetails{
			CustomerCreditRows: credits,
			DebtCollectionRows: collections,
			OtherExpenseRows:   expenses,
		},
	}
}

// Validate rejects reports whose computed liters sold is negative for
// either fuel. Such a report must not be persisted at all.
func Validate(r models.DailyReport) error {
	var bad []string
	if r.PetrolLitersSold < 0 {
		bad = append(bad, "petrol")
	}
	if r.DieselLitersSold < 0 {
		bad = append(bad, "diesel")
	}
	if len(bad) > 0 {
		return fmt.Errorf("%s liters sold is negative: check readings and test values", strings.Join(bad, " and "))
	}
	return nil
}
