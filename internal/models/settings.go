package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// Settings keys as stored in the settings table.
const (
	SettingEmployees    = "employees"
	SettingCustomers    = "customers"
	SettingExpenseNames = "expense_names"
	SettingOilPrices    = "oil_prices"
)

// Settings holds the configured option lists used by the daily entry
// form and the ledger: employees, credit customers, expense names and
// the allowed 2T oil price points. Values are stored as JSON lists in
// the settings table and overwritten wholesale on save.
type Settings struct {
	Employees    []string  `json:"employees"`
	Customers    []string  `json:"customers"`
	ExpenseNames []string  `json:"expense_names"`
	OilPrices    []float64 `json:"oil_prices"`
}

// Normalize trims and drops empty names and dedupes/sorts oil prices.
func (s *Settings) Normalize() {
	s.Employees = cleanStringList(s.Employees)
	s.Customers = cleanStringList(s.Customers)
	s.ExpenseNames = cleanStringList(s.ExpenseNames)

	seen := make(map[float64]bool, len(s.OilPrices))
	prices := make([]float64, 0, len(s.OilPrices))
	for _, p := range s.OilPrices {
		if !seen[p] {
			seen[p] = true
			prices = append(prices, p)
		}
	}
	sort.Float64s(prices)
	s.OilPrices = prices
}

func cleanStringList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ParseStringList decodes a stored JSON string list. A malformed value
// yields an empty list, never an error: one corrupt settings row must
// not make the whole tool unusable.
func ParseStringList(raw string) []string {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return cleanStringList(list)
}

// ParseFloatList decodes a stored JSON number list with the same
// leniency as ParseStringList.
func ParseFloatList(raw string) []float64 {
	var list []float64
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}
