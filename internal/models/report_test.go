package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReportDetails(t *testing.T) {
	details := ParseReportDetails(`{
		"customer_credit_rows": [{"name": "Ravi Transport", "amount": 500}],
		"debt_collection_rows": [{"name": "Suresh", "amount": 250}],
		"other_expense_rows": []
	}`)

	assert.Equal(t, []LineItem{{Name: "Ravi Transport", Amount: 500}}, details.CustomerCreditRows)
	assert.Equal(t, []LineItem{{Name: "Suresh", Amount: 250}}, details.DebtCollectionRows)
	assert.Empty(t, details.OtherExpenseRows)
}

func TestParseReportDetailsLenient(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"truncated json", `{"customer_credit_rows": [{"name": "Ravi"`},
		{"wrong shape", `["not", "an", "object"]`},
		{"empty string", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			details := ParseReportDetails(tc.raw)
			assert.Empty(t, details.CustomerCreditRows)
			assert.Empty(t, details.DebtCollectionRows)
			assert.Empty(t, details.OtherExpenseRows)
		})
	}
}
