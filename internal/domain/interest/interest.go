// Package interest holds the pure accrual and eligibility arithmetic.
// Everything here is a function of (amount, epoch, now, config); nothing
// touches storage.
package interest

import (
	"math"
	"time"
)

const (
	hoursPerDay = 24
	daysPerWeek = 7
)

// WeeksElapsed returns the fractional number of weeks between epoch and
// now, floored at zero. Elapsed time is resolved to whole days first, then
// divided by seven, so the week count itself stays fractional and interest
// grows day by day rather than jumping at week boundaries.
func WeeksElapsed(epoch, now time.Time) float64 {
	return float64(DaysElapsed(epoch, now)) / daysPerWeek
}

// DaysElapsed returns the whole number of days between epoch and now,
// floored at zero.
func DaysElapsed(epoch, now time.Time) int {
	days := int(now.Sub(epoch).Hours() / hoursPerDay)
	if days < 0 {
		return 0
	}
	return days
}

// Accrued returns the compound interest earned on amount at weeklyRate per
// week over the elapsed weeks: amount * ((1+rate)^weeks - 1), or 0 when no
// time has passed.
func Accrued(amount, weeklyRate, weeksElapsed float64) float64 {
	if weeksElapsed <= 0 {
		return 0
	}
	return amount * (math.Pow(1+weeklyRate, weeksElapsed) - 1)
}

// AccruedSince is Accrued applied to a deposit epoch.
func AccruedSince(amount, weeklyRate float64, epoch, now time.Time) float64 {
	return Accrued(amount, weeklyRate, WeeksElapsed(epoch, now))
}

// EligibleAt reports whether the holding period of minInvestDays whole days
// has elapsed since epoch.
func EligibleAt(epoch, now time.Time, minInvestDays int) bool {
	return DaysElapsed(epoch, now) >= minInvestDays
}
