package utils

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate aceita YYYY-MM-DD ou um timestamp RFC3339 e devolve o dia do calendário em loc
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	dateStr = strings.TrimSpace(dateStr)
	for _, layout := range dateLayouts {
		var (
			parsed time.Time
			err    error
		)
		if layout == time.DateOnly || layout == "2006-01-02T15:04:05" {
			parsed, err = time.ParseInLocation(layout, dateStr, loc)
		} else {
			parsed, err = time.Parse(layout, dateStr)
		}
		if err == nil {
			return StartOfDay(parsed, loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida: %q", dateStr)
}

// ParseMonth aceita YYYY-MM (valor do seletor de mês) e devolve o primeiro dia do mês
func ParseMonth(monthStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	parsed, err := time.ParseInLocation("2006-01", strings.TrimSpace(monthStr), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido: %q", monthStr)
	}
	return parsed, nil
}

// StartOfDay trunca t para a meia-noite do mesmo dia em loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseReferenceDate aceita o dia (YYYY-MM-DD), o mês do seletor (YYYY-MM) ou o ano (YYYY)
func ParseReferenceDate(s string, loc *time.Location) (time.Time, error) {
	if date, err := ParseDate(s, loc); err == nil {
		return date, nil
	}
	if month, err := ParseMonth(s, loc); err == nil {
		return month, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if year, err := time.ParseInLocation("2006", strings.TrimSpace(s), loc); err == nil {
		return year, nil
	}
	return time.Time{}, fmt.Errorf("data de referência inválida: %q", s)
}
