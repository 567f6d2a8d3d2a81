package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSalary(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		salaryType SalaryType
		want       float64
	}{
		{"yearly divided by 12", 120_000_000, SalaryPerYear, 10_000_000},
		{"monthly unchanged", 10_000_000, SalaryPerMonth, 10_000_000},
		{"daily times 20 working days", 500_000, SalaryPerDay, 10_000_000},
		{"hourly times 180 working hours", 100_000, SalaryPerHour, 18_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeSalary(tt.value, tt.salaryType), 1e-6)
		})
	}
}

func TestDenormalizeSalary_RoundTrip(t *testing.T) {
	for _, salaryType := range []SalaryType{SalaryPerYear, SalaryPerMonth, SalaryPerDay, SalaryPerHour} {
		t.Run(string(salaryType), func(t *testing.T) {
			original := 12_345_678.0
			monthly := NormalizeSalary(original, salaryType)
			assert.InDelta(t, original, DenormalizeSalary(monthly, salaryType), 1e-6)
		})
	}
}

func TestValidateMonthlySalary(t *testing.T) {
	assert.NoError(t, ValidateMonthlySalary(MaxMonthlySalary))
	assert.NoError(t, ValidateMonthlySalary(0))
	assert.ErrorIs(t, ValidateMonthlySalary(MaxMonthlySalary+1), ErrSalaryTooHigh)
}
