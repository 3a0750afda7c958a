package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NormalizeDOB converts a date of birth to ISO YYYY-MM-DD. Accepted inputs
// are MM/DD/YY, MM/DD/YYYY and ISO itself. Two-digit years expand by the
// pivot rule: above 50 means 19xx, 50 and below means 20xx.
func NormalizeDOB(dob string) string {
	if dob == "" {
		return ""
	}
	if strings.Contains(dob, "/") {
		parts := strings.Split(dob, "/")
		if len(parts) == 3 {
			month := pad2(parts[0])
			day := pad2(parts[1])
			year := parts[2]
			if len(year) == 2 {
				year = expandYear(year)
			}
			return fmt.Sprintf("%s-%s-%s", year, month, day)
		}
	}
	if t, err := time.Parse(time.RFC3339, dob); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02", dob); err == nil {
		return t.Format("2006-01-02")
	}
	return dob
}

func expandYear(year string) string {
	n, err := strconv.Atoi(year)
	if err != nil {
		return year
	}
	if n > 50 {
		return "19" + year
	}
	return "20" + year
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
