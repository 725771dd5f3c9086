package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// timestampLayouts são os formatos aceitos para InvoiceDate, na ordem de tentativa
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	DateLayout,
}

// ParseDate interpreta uma data ISO (AAAA-MM-DD). String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseTimestamp interpreta o horário de uma venda em UTC.
// Horários com fuso explícito são convertidos para UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", value)
}
