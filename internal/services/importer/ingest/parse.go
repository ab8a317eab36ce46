// Package ingest parses scraped trending files into import records
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"trendboard/internal/services/importer/domain"
)

var (
	countRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})*`)
	dateRe  = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)
)

// ParseCount turns a display count like "1,217" into an int, 0 when unparseable
func ParseCount(s string) int {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == ' ' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

// ParseStarsToday extracts the leading count from a phrase like
// "1,217 stars today", 0 when no count is present
func ParseStarsToday(s string) int {
	m := countRe.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// SplitName breaks a scraped "owner / repo" name into its parts.
// Names that do not match keep everything in repo with an empty owner
func SplitName(full string) (owner, repo string) {
	parts := strings.SplitN(full, " /", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return "", full
}

// ParseDate converts a scraped "06月17日" date into "YYYY-MM-DD" using year.
// Dates already in another format pass through unchanged
func ParseDate(s string, year int) string {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// DayBlock is one scraped date with its ranked repositories
type DayBlock struct {
	Date    string
	Entries []domain.TrendingEntry
}

// ReadDayBlocks decodes a trending jsonl stream. Each line maps a scraped
// date string to its ranked repositories; malformed lines are skipped and
// counted rather than failing the file
func ReadDayBlocks(r io.Reader, year int) (blocks []DayBlock, skipped int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), 16<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var day map[string][]domain.TrendingEntry
		if err := json.Unmarshal([]byte(line), &day); err != nil {
			skipped++
			continue
		}
		// deterministic order when a line carries several dates
		dates := make([]string, 0, len(day))
		for d := range day {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			blocks = append(blocks, DayBlock{Date: ParseDate(d, year), Entries: day[d]})
		}
	}
	return blocks, skipped, sc.Err()
}
