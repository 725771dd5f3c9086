package ingestion

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

// Colunas do export Online Retail
const (
	ColumnInvoiceNo   = "invoiceno"
	ColumnStockCode   = "stockcode"
	ColumnDescription = "description"
	ColumnQuantity    = "quantity"
	ColumnInvoiceDate = "invoicedate"
	ColumnUnitPrice   = "unitprice"
	ColumnCustomerID  = "customerid"
	ColumnCountry     = "country"
)

var requiredColumns = []string{ColumnInvoiceNo, ColumnQuantity, ColumnInvoiceDate, ColumnUnitPrice}

type CSVReader struct{}

func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Read carrega o arquivo inteiro. Arquivo ausente ou sem as colunas obrigatórias
// é erro fatal; linhas com campos faltando seguem para o cleaner.
func (r *CSVReader) Read(ctx context.Context, path string) ([]domain.RawTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrPipelineFatal, "erro ao abrir arquivo de transações %s: %v", path, err)
	}
	defer f.Close()

	return r.Decode(ctx, f)
}

func (r *CSVReader) Decode(ctx context.Context, in io.Reader) ([]domain.RawTransaction, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(domain.ErrPipelineFatal, "erro ao ler cabeçalho: %v", err)
	}

	index := headerIndex(header)
	missing := make([]string, 0)
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(domain.ErrPipelineFatal, "colunas obrigatórias ausentes: %s", strings.Join(missing, ", "))
	}

	rows := make([]domain.RawTransaction, 0)
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// linha isolada ilegível é descartada como as demais inválidas
				rows = append(rows, domain.RawTransaction{Line: line})
				continue
			}
			return nil, errors.Wrapf(domain.ErrPipelineFatal, "erro ao ler linha %d: %v", line, err)
		}

		rows = append(rows, domain.RawTransaction{
			Line:        line,
			InvoiceID:   field(record, index, ColumnInvoiceNo),
			StockCode:   field(record, index, ColumnStockCode),
			Description: field(record, index, ColumnDescription),
			Quantity:    field(record, index, ColumnQuantity),
			InvoiceDate: field(record, index, ColumnInvoiceDate),
			UnitPrice:   field(record, index, ColumnUnitPrice),
			CustomerID:  field(record, index, ColumnCustomerID),
			Country:     field(record, index, ColumnCountry),
		})
	}

	return rows, nil
}

// headerIndex normaliza os nomes das colunas (caixa, espaços, BOM e underscores)
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.TrimPrefix(name, "\ufeff")
		key = strings.ToLower(strings.TrimSpace(key))
		key = strings.ReplaceAll(key, "_", "")
		key = strings.ReplaceAll(key, " ", "")
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}
	return index
}

func field(record []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
