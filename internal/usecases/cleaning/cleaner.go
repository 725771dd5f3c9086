package cleaning

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
	"github.com/vfg2006/revenue-forecast-api/pkg/utils"
)

// maxSamples limita quantos motivos de descarte ficam guardados no relatório
const maxSamples = 20

// CleanReport resume o resultado da limpeza. É informativo: nenhuma decisão do
// pipeline depende dele.
type CleanReport struct {
	Total               int                  `json:"total"`
	Retained            int                  `json:"retained"`
	DroppedMissing      int                  `json:"dropped_missing"`
	DroppedMalformed    int                  `json:"dropped_malformed"`
	DroppedCancelled    int                  `json:"dropped_cancelled"`
	DroppedInvalidPrice int                  `json:"dropped_invalid_price"`
	Samples             []*domain.InputError `json:"-"`
}

// Dropped retorna o total de linhas descartadas
func (r CleanReport) Dropped() int {
	return r.DroppedMissing + r.DroppedMalformed + r.DroppedCancelled + r.DroppedInvalidPrice
}

type Options struct {
	// RequireCustomerID descarta vendas sem cliente identificado
	RequireCustomerID bool
}

type Cleaner struct {
	opts Options
}

func NewCleaner(opts Options) *Cleaner {
	return &Cleaner{opts: opts}
}

// Clean valida as linhas brutas e calcula o valor de cada venda.
// Linhas inválidas são descartadas e contabilizadas no relatório, nunca retornadas como erro.
func (c *Cleaner) Clean(ctx context.Context, raw []domain.RawTransaction) ([]domain.TransactionRecord, CleanReport) {
	report := CleanReport{Total: len(raw)}
	records := make([]domain.TransactionRecord, 0, len(raw))

	for _, row := range raw {
		record, inputErr := c.cleanRow(row)
		if inputErr != nil {
			report.count(inputErr)
			continue
		}
		records = append(records, record)
	}

	report.Retained = len(records)

	log.ForContext(ctx).WithFields(log.Fields{
		"total":                 report.Total,
		"retained":              report.Retained,
		"dropped_missing":       report.DroppedMissing,
		"dropped_malformed":     report.DroppedMalformed,
		"dropped_cancelled":     report.DroppedCancelled,
		"dropped_invalid_price": report.DroppedInvalidPrice,
	}).Info("Limpeza das transações concluída")

	return records, report
}

func (r *CleanReport) count(err *domain.InputError) {
	switch err.Reason {
	case domain.DropMissingField:
		r.DroppedMissing++
	case domain.DropMalformed:
		r.DroppedMalformed++
	case domain.DropCancelled:
		r.DroppedCancelled++
	case domain.DropInvalidPrice:
		r.DroppedInvalidPrice++
	}

	if len(r.Samples) < maxSamples {
		r.Samples = append(r.Samples, err)
	}
}

func (c *Cleaner) cleanRow(row domain.RawTransaction) (domain.TransactionRecord, *domain.InputError) {
	invoiceID := strings.TrimSpace(row.InvoiceID)
	rawDate := strings.TrimSpace(row.InvoiceDate)
	rawQuantity := strings.TrimSpace(row.Quantity)
	rawPrice := strings.TrimSpace(row.UnitPrice)
	customerID := strings.TrimSpace(row.CustomerID)

	required := []struct {
		field string
		value string
	}{
		{"invoice_id", invoiceID},
		{"timestamp", rawDate},
		{"quantity", rawQuantity},
		{"unit_price", rawPrice},
	}
	for _, r := range required {
		if r.value == "" {
			return domain.TransactionRecord{}, inputError(row, r.field, domain.DropMissingField, r.value)
		}
	}

	if c.opts.RequireCustomerID && customerID == "" {
		return domain.TransactionRecord{}, inputError(row, "customer_id", domain.DropMissingField, customerID)
	}

	timestamp, err := utils.ParseTimestamp(rawDate)
	if err != nil {
		return domain.TransactionRecord{}, inputError(row, "timestamp", domain.DropMalformed, rawDate)
	}

	quantity, err := parseQuantity(rawQuantity)
	if err != nil {
		return domain.TransactionRecord{}, inputError(row, "quantity", domain.DropMalformed, rawQuantity)
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return domain.TransactionRecord{}, inputError(row, "unit_price", domain.DropMalformed, rawPrice)
	}

	if quantity <= 0 {
		return domain.TransactionRecord{}, inputError(row, "quantity", domain.DropCancelled, rawQuantity)
	}

	if !price.IsPositive() {
		return domain.TransactionRecord{}, inputError(row, "unit_price", domain.DropInvalidPrice, rawPrice)
	}

	record := domain.TransactionRecord{
		InvoiceID: invoiceID,
		Timestamp: timestamp,
		Quantity:  quantity,
		UnitPrice: price,
		Country:   strings.TrimSpace(row.Country),
		Amount:    price.Mul(decimal.NewFromInt(int64(quantity))),
	}
	if customerID != "" {
		record.CustomerID = &customerID
	}

	return record, nil
}

// parseQuantity aceita inteiros e números com parte decimal nula ("6.0"),
// formato comum em exports de planilha.
func parseQuantity(value string) (int, error) {
	if q, err := strconv.Atoi(value); err == nil {
		return q, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, strconv.ErrSyntax
	}

	return int(d.IntPart()), nil
}

func inputError(row domain.RawTransaction, field string, reason domain.DropReason, value string) *domain.InputError {
	return &domain.InputError{
		Line:   row.Line,
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}
