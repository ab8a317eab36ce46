// Package trending holds the fixed vocabulary of the trending dataset
package trending

import (
	"time"
)

// Category is a coarse language bucket used to segment trending views
type Category string

// Period is the time window a trending snapshot represents
type Period string

// Categories mirror the scraped dataset segments
const (
	CategoryAll        Category = "all"
	CategoryPython     Category = "python"
	CategoryTypeScript Category = "typescript"
	CategoryJavaScript Category = "javascript"
	CategoryJupyter    Category = "jupyter"
	CategoryVue        Category = "vue"
)

// Periods supported by the dataset
const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Categories returns the full category set in display order
func Categories() []Category {
	return []Category{
		CategoryAll, CategoryPython, CategoryTypeScript,
		CategoryJavaScript, CategoryJupyter, CategoryVue,
	}
}

// Periods returns the full period set
func Periods() []Period {
	return []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}
}

// ValidCategory reports whether s names a known category
func ValidCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ValidPeriod reports whether s names a known period
func ValidPeriod(s string) bool {
	for _, p := range Periods() {
		if string(p) == s {
			return true
		}
	}
	return false
}

// DateLayout is the wire format for snapshot dates
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a YYYY-MM-DD date
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current UTC date in wire format
func Today() string { return time.Now().UTC().Format(DateLayout) }
