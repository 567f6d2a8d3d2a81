package models

import "errors"

// SalaryType is the unit a user submitted a salary figure in.
type SalaryType string

const (
	SalaryPerYear  SalaryType = "YEAR"
	SalaryPerMonth SalaryType = "MONTH"
	SalaryPerDay   SalaryType = "DAY"
	SalaryPerHour  SalaryType = "HOUR"
)

// Working-time convention used for all salary unit conversions:
// 1 month = 20 working days, 1 day = 9 working hours.
const (
	workingDaysPerMonth = 20
	workingHoursPerDay  = 9
)

// MaxMonthlySalary is the validation ceiling for a normalized monthly figure.
const MaxMonthlySalary = 50_000_000

var ErrSalaryTooHigh = errors.New("salary exceeds the accepted maximum")

// NormalizeSalary converts a salary figure from the submitted unit to the
// canonical monthly unit.
func NormalizeSalary(value float64, salaryType SalaryType) float64 {
	switch salaryType {
	case SalaryPerYear:
		return value / 12
	case SalaryPerMonth:
		return value
	case SalaryPerDay:
		return value * workingDaysPerMonth
	default: // HOUR
		return value * workingDaysPerMonth * workingHoursPerDay
	}
}

// DenormalizeSalary converts a canonical monthly figure back to the unit the
// user originally submitted, for display.
func DenormalizeSalary(value float64, salaryType SalaryType) float64 {
	switch salaryType {
	case SalaryPerYear:
		return value * 12
	case SalaryPerMonth:
		return value
	case SalaryPerDay:
		return value / workingDaysPerMonth
	default: // HOUR
		return value / (workingDaysPerMonth * workingHoursPerDay)
	}
}

// ValidateMonthlySalary rejects normalized figures above the ceiling.
func ValidateMonthlySalary(monthly float64) error {
	if monthly > MaxMonthlySalary {
		return ErrSalaryTooHigh
	}
	return nil
}
