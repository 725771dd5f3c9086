package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTransaction representa uma linha do export de vendas, ainda sem validação.
// Todos os campos chegam como texto e qualquer um deles pode estar vazio.
type RawTransaction struct {
	Line        int
	InvoiceID   string
	StockCode   string
	Description string
	Quantity    string
	InvoiceDate string
	UnitPrice   string
	CustomerID  string
	Country     string
}

// TransactionRecord é uma linha de venda já validada pelo cleaner
type TransactionRecord struct {
	InvoiceID  string
	Timestamp  time.Time
	Quantity   int
	UnitPrice  decimal.Decimal
	CustomerID *string // nil quando a venda não tem cliente identificado
	Country    string
	Amount     decimal.Decimal // Quantity * UnitPrice
}

// Date retorna a data de calendário da venda (hora descartada)
func (t TransactionRecord) Date() time.Time {
	y, m, d := t.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
