package featuretable

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write grava a tabela de features de forma atômica: escreve em um arquivo
// temporário no mesmo diretório e renomeia ao final.
func (w *Writer) Write(ctx context.Context, path string, rows []domain.FeatureRow) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Encode(tmp, rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "erro ao sincronizar tabela de features")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao fechar tabela de features")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "erro ao publicar tabela de features em %s", path)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"path": path,
		"rows": len(rows),
	}).Info("Tabela de features gravada")

	return nil
}

// Encode escreve o cabeçalho e as linhas em CSV
func Encode(out io.Writer, rows []domain.FeatureRow) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(Header()); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	record := make([]string, 0, len(domain.FeatureSchema)+1)
	for _, row := range rows {
		record = record[:0]
		record = append(record, row.Date.Format(time.DateOnly))

		vector := row.Vector()
		for _, name := range domain.FeatureSchema {
			record = append(record, formatValue(name, vector[name]))
		}

		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %s", row.Date.Format(time.DateOnly))
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "erro ao finalizar CSV")
}

func formatValue(name domain.FeatureName, v float64) string {
	switch name {
	case domain.FeatureTotalItems, domain.FeatureTotalTransactions, domain.FeatureUniqueCustomers,
		domain.FeatureYear, domain.FeatureMonth, domain.FeatureDayOfWeek, domain.FeatureDayOfMonth,
		domain.FeatureIsWeekend:
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
