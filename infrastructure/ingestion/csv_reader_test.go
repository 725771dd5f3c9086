package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

const sample = `InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country
536365,85123A,WHITE HANGING HEART T-LIGHT HOLDER,6,12/1/2010 8:26,2.55,17850,United Kingdom
536365,71053,"WHITE METAL LANTERN, LARGE",6,12/1/2010 8:26,3.39,17850,United Kingdom
C536379,D,Discount,-1,12/1/2010 9:41,27.5,14527,United Kingdom
536414,22139,,56,12/1/2010 11:52,0,,United Kingdom
`

func TestCSVReader_Decode(t *testing.T) {
	rows, err := NewCSVReader().Decode(context.Background(), strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, domain.RawTransaction{
		Line:        2,
		InvoiceID:   "536365",
		StockCode:   "85123A",
		Description: "WHITE HANGING HEART T-LIGHT HOLDER",
		Quantity:    "6",
		InvoiceDate: "12/1/2010 8:26",
		UnitPrice:   "2.55",
		CustomerID:  "17850",
		Country:     "United Kingdom",
	}, rows[0])

	assert.Equal(t, "WHITE METAL LANTERN, LARGE", rows[1].Description)
	assert.Equal(t, "-1", rows[2].Quantity)
	assert.Empty(t, rows[3].CustomerID)
	assert.Equal(t, 5, rows[3].Line)
}

func TestCSVReader_HeaderVariants(t *testing.T) {
	input := "\ufeffcountry,invoice_date,Unit Price,quantity,invoice_no\nFrance,2011-01-04 10:00:00,1.5,2,540001\n"

	rows, err := NewCSVReader().Decode(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "540001", rows[0].InvoiceID)
	assert.Equal(t, "1.5", rows[0].UnitPrice)
	assert.Equal(t, "France", rows[0].Country)
	assert.Empty(t, rows[0].CustomerID)
}

func TestCSVReader_ShortRowsKeepMissingFieldsEmpty(t *testing.T) {
	input := "InvoiceNo,Quantity,InvoiceDate,UnitPrice\n536365,6\n"

	rows, err := NewCSVReader().Decode(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "6", rows[0].Quantity)
	assert.Empty(t, rows[0].UnitPrice)
}

func TestCSVReader_FatalErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "Arquivo inexistente",
			run: func() error {
				_, err := NewCSVReader().Read(context.Background(), filepath.Join(t.TempDir(), "nao-existe.csv"))
				return err
			},
		},
		{
			name: "Arquivo vazio",
			run: func() error {
				_, err := NewCSVReader().Decode(context.Background(), strings.NewReader(""))
				return err
			},
		},
		{
			name: "Colunas obrigatórias ausentes",
			run: func() error {
				_, err := NewCSVReader().Decode(context.Background(), strings.NewReader("InvoiceNo,Description\n1,x\n"))
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), domain.ErrPipelineFatal)
		})
	}
}

func TestCSVReader_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retail.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	rows, err := NewCSVReader().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestCSVReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVReader().Decode(ctx, strings.NewReader(sample))
	assert.ErrorIs(t, err, context.Canceled)
}
