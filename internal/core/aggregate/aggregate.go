// Package aggregate holds the pure reductions behind the stats endpoints.
// Everything here is store-agnostic so the service layers can fall back to
// in-process grouping when a SQL aggregation function is unavailable
package aggregate

import (
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Quality labels for a single date's import coverage.
// A full scrape lands 400+ rows per date (all categories and periods);
// anything under half of that means the import did not finish
const (
	QualityComplete     = "complete"
	QualityPartial      = "partial"
	QualityInsufficient = "insufficient"
)

// Quality maps a per-date row count to its coverage label
func Quality(count int) string {
	switch {
	case count >= 400:
		return QualityComplete
	case count >= 200:
		return QualityPartial
	default:
		return QualityInsufficient
	}
}

// SnapshotRow is the minimal projection of a trending row the date
// reductions need
type SnapshotRow struct {
	Date       string
	Category   string
	Period     string
	Stars      int64
	StarsToday int64
	CreatedAt  time.Time
}

// BasicDateStat is the lightweight per-date summary
type BasicDateStat struct {
	Date         string `json:"date"`
	TotalRecords int    `json:"total_records"`
	DataQuality  string `json:"data_quality"`
}

// DateStat is the detailed per-date summary
type DateStat struct {
	Date            string `json:"date"`
	TotalRecords    int    `json:"total_records"`
	CategoriesCount int    `json:"categories_count"`
	PeriodsCount    int    `json:"periods_count"`
	AvgStars        int64  `json:"avg_stars"`
	TotalStarsToday int64  `json:"total_stars_today"`
	DataQuality     string `json:"data_quality"`
	FirstImportTime int64  `json:"first_import_time"`
	LastImportTime  int64  `json:"last_import_time"`
}

// GroupByDateBasic reduces snapshot rows into per-date counts with a quality
// label, newest date first. limit > 0 truncates the result after sorting
func GroupByDateBasic(rows []SnapshotRow, limit int) []BasicDateStat {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Date]++
	}

	out := make([]BasicDateStat, 0, len(counts))
	for date, n := range counts {
		out = append(out, BasicDateStat{Date: date, TotalRecords: n, DataQuality: Quality(n)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GroupByDate reduces snapshot rows into detailed per-date stats, newest
// date first. avg_stars rounds half away from zero; import times are epoch
// millis. limit > 0 truncates the result after sorting
func GroupByDate(rows []SnapshotRow, limit int) []DateStat {
	type acc struct {
		count      int
		stars      int64
		starsToday int64
		categories map[string]struct{}
		periods    map[string]struct{}
		first      time.Time
		last       time.Time
	}
	byDate := make(map[string]*acc)
	for _, r := range rows {
		a, ok := byDate[r.Date]
		if !ok {
			a = &acc{
				categories: make(map[string]struct{}),
				periods:    make(map[string]struct{}),
				first:      r.CreatedAt,
				last:       r.CreatedAt,
			}
			byDate[r.Date] = a
		}
		a.count++
		a.stars += r.Stars
		a.starsToday += r.StarsToday
		a.categories[r.Category] = struct{}{}
		a.periods[r.Period] = struct{}{}
		if !r.CreatedAt.IsZero() {
			if a.first.IsZero() || r.CreatedAt.Before(a.first) {
				a.first = r.CreatedAt
			}
			if r.CreatedAt.After(a.last) {
				a.last = r.CreatedAt
			}
		}
	}

	out := make([]DateStat, 0, len(byDate))
	for date, a := range byDate {
		avg := int64(0)
		if a.count > 0 {
			avg = int64(math.Round(float64(a.stars) / float64(a.count)))
		}
		ds := DateStat{
			Date:            date,
			TotalRecords:    a.count,
			CategoriesCount: len(a.categories),
			PeriodsCount:    len(a.periods),
			AvgStars:        avg,
			TotalStarsToday: a.starsToday,
			DataQuality:     Quality(a.count),
		}
		if !a.first.IsZero() {
			ds.FirstImportTime = a.first.UnixMilli()
			ds.LastImportTime = a.last.UnixMilli()
		}
		out = append(out, ds)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MonthlyStat summarizes one calendar month of trending snapshots
type MonthlyStat struct {
	Month        string `json:"month"`
	TotalRecords int    `json:"total_records"`
	ActiveDays   int    `json:"active_days"`
	AvgStars     int64  `json:"avg_stars"`
}

// GroupByMonth reduces snapshot rows into per-month stats, newest month
// first. The month key is the YYYY-MM prefix of the snapshot date
func GroupByMonth(rows []SnapshotRow) []MonthlyStat {
	type acc struct {
		count int
		stars int64
		days  map[string]struct{}
	}
	byMonth := make(map[string]*acc)
	for _, r := range rows {
		if len(r.Date) < 7 {
			continue
		}
		month := r.Date[:7]
		a, ok := byMonth[month]
		if !ok {
			a = &acc{days: make(map[string]struct{})}
			byMonth[month] = a
		}
		a.count++
		a.stars += r.Stars
		a.days[r.Date] = struct{}{}
	}

	out := make([]MonthlyStat, 0, len(byMonth))
	for month, a := range byMonth {
		avg := int64(0)
		if a.count > 0 {
			avg = int64(math.Round(float64(a.stars) / float64(a.count)))
		}
		out = append(out, MonthlyStat{
			Month:        month,
			TotalRecords: a.count,
			ActiveDays:   len(a.days),
			AvgStars:     avg,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}

// LangRow is the projection the language reduction needs
type LangRow struct {
	Language string
	Stars    int64
}

// LangStat summarizes one language bucket for a date
type LangStat struct {
	Language   string `json:"language"`
	RepoCount  int    `json:"repo_count"`
	TotalStars int64  `json:"total_stars"`
	AvgStars   int64  `json:"avg_stars"`
}

// GroupByLanguage reduces rows into per-language stats ordered by total
// stars descending, then language ascending for a stable tiebreak. Rows
// with a null or empty language are excluded from grouping
func GroupByLanguage(rows []LangRow) []LangStat {
	type acc struct {
		count int
		stars int64
	}
	byLang := make(map[string]*acc)
	for _, r := range rows {
		if strings.TrimSpace(r.Language) == "" {
			continue
		}
		a, ok := byLang[r.Language]
		if !ok {
			a = &acc{}
			byLang[r.Language] = a
		}
		a.count++
		a.stars += r.Stars
	}

	out := make([]LangStat, 0, len(byLang))
	for lang, a := range byLang {
		avg := int64(0)
		if a.count > 0 {
			avg = a.stars / int64(a.count)
		}
		out = append(out, LangStat{
			Language:   lang,
			RepoCount:  a.count,
			TotalStars: a.stars,
			AvgStars:   avg,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalStars != out[j].TotalStars {
			return out[i].TotalStars > out[j].TotalStars
		}
		return out[i].Language < out[j].Language
	})
	return out
}

// TopicCount is one topic's usage across the repository corpus
type TopicCount struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Count       int    `json:"count"`
}

var titler = cases.Title(language.English)

// TopicDisplayName renders a raw topic slug for display: hyphens become
// spaces and each word is title-cased
func TopicDisplayName(name string) string {
	return titler.String(strings.ReplaceAll(name, "-", " "))
}

// CountTopics tallies topic occurrences across repository topic arrays.
// Each array element counts once, so a repo listing a topic twice counts
// twice. Results order by count descending with name ascending as tiebreak
func CountTopics(lists [][]string) []TopicCount {
	counts := make(map[string]int)
	for _, topics := range lists {
		for _, t := range topics {
			if t == "" {
				continue
			}
			counts[t]++
		}
	}

	out := make([]TopicCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, TopicCount{
			Name:        name,
			DisplayName: TopicDisplayName(name),
			Count:       n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
