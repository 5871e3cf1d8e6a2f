package models

import "encoding/json"

// LineItem is one row of an itemized sub-ledger (credit given, debt
// collected, or an expense). Amount is in rupees.
type LineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ReportDetails holds the three itemized sub-ledgers that are stored
// nested inside the details_json column of a daily report row.
type ReportDetails struct {
	CustomerCreditRows []LineItem `json:"customer_credit_rows"`
	DebtCollectionRows []LineItem `json:"debt_collection_rows"`
	OtherExpenseRows   []LineItem `json:"other_expense_rows"`
}

// ParseReportDetails decodes a stored details_json payload. A
// malformed value yields empty sub-ledgers, never an error, with the
// same leniency as the settings lists: one corrupt cell must not make
// the stored reports unreadable.
func ParseReportDetails(raw string) ReportDetails {
	var details ReportDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return ReportDetails{}
	}
	return details
}

// DailyReport is the full computed sales/cash entry for one calendar
// date. One row per date; saving again for the same date replaces the
// stored row. Field names mirror the daily_reports columns.
type DailyReport struct {
	Date         string `json:"date"` // YYYY-MM-DD, unique key
	EmployeeName string `json:"employee_name"`
	Notes        string `json:"notes"`

	POpen  float64 `json:"p_open"`
	PClose float64 `json:"p_close"`
	PTest  float64 `json:"p_test"`
	PRate  float64 `json:"p_rate"`

	DOpen  float64 `json:"d_open"`
	DClose float64 `json:"d_close"`
	DTest  float64 `json:"d_test"`
	DRate  float64 `json:"d_rate"`

	PetrolLitersSold float64 `json:"petrol_liters_sold"`
	PetrolAmount     float64 `json:"petrol_amount"`
	DieselLitersSold float64 `json:"diesel_liters_sold"`
	DieselAmount     float64 `json:"diesel_amount"`

	OilPackets int     `json:"oil_packets"`
	OilPrice   float64 `json:"oil_price"`
	OilAmount  float64 `json:"oil_amount"`

	QRAmount               float64 `json:"qr_amount"`
	AdvancePaid            float64 `json:"advance_paid"`
	OwnerPhonePayAmount    float64 `json:"owner_phonepay_amount"`
	YesterdayBalanceAmount float64 `json:"yesterday_balance_amount"`

	CustomerCreditTotal  float64 `json:"customer_credit_total"`
	DebtCollectionsTotal float64 `json:"debt_collections_total"`
	OtherExpensesTotal   float64 `json:"other_expenses_total"`

	TotalSales    float64 `json:"total_sales"`
	CashToDeposit float64 `json:"cash_to_deposit"`

	Details ReportDetails `json:"details"`
}

// ReportInput is the raw daily entry as submitted, before computation
// and sub-ledger cleaning.
type ReportInput struct {
	Date         string `json:"date"`
	EmployeeName string `json:"employee_name"`
	Notes        string `json:"notes"`

	POpen  float64 `json:"p_open"`
	PClose float64 `json:"p_close"`
	PTest  float64 `json:"p_test"`
	PRate  float64 `json:"p_rate"`

	DOpen  float64 `json:"d_open"`
	DClose float64 `json:"d_close"`
	DTest  float64 `json:"d_test"`
	DRate  float64 `json:"d_rate"`

	OilPackets int     `json:"oil_packets"`
	OilPrice   float64 `json:"oil_price"`

	QRAmount               float64 `json:"qr_amount"`
	AdvancePaid            float64 `json:"advance_paid"`
	OwnerPhonePayAmount    float64 `json:"owner_phonepay_amount"`
	YesterdayBalanceAmount float64 `json:"yesterday_balance_amount"`

	CustomerCreditRows []LineItem `json:"customer_credit_rows"`
	DebtCollectionRows []LineItem `json:"debt_collection_rows"`
	OtherExpenseRows   []LineItem `json:"other_expense_rows"`
}

// CarryForward carries the previous day's closing readings and rates
// into the current day's opening fields. Nothing else is copied.
type CarryForward struct {
	POpen float64 `json:"p_open"`
	DOpen float64 `json:"d_open"`
	PRate float64 `json:"p_rate"`
	DRate float64 `json:"d_rate"`
}

// MonthlySummary is the read-only month view: every report in the
// month plus the month totals shown on the reports page.
type MonthlySummary struct {
	Month              string        `json:"month"` // YYYY-MM
	Reports            []DailyReport `json:"reports"`
	TotalSales         float64       `json:"total_sales"`
	TotalCashToDeposit float64       `json:"total_cash_to_deposit"`
	TotalQRAmount      float64       `json:"total_qr_amount"`
}
