package forms

import (
	"math"
	"time"
)

// Cents converts a validated major-unit amount to integer minor units.
//
// Rounding policy is half-up (math.Round on amount*100): 9.994 stores as 999,
// 9.995 as 1000. The invariant downstream is that no currency value is ever
// stored as a floating binary fraction; every persisted amount is an int64
// number of cents.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// DateStamp formats the pipeline's execution clock as an ISO-8601 calendar
// date (YYYY-MM-DD, UTC). Applied on create only; the stored date is never
// taken from user input and never updated.
func DateStamp(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}
