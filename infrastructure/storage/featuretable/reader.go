package featuretable

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

type cachedRow struct {
	modTime time.Time
	row     *domain.FeatureRow
}

// Reader serve a última linha da tabela de features. Se existir um arquivo
// features_<PAÍS>.csv ao lado do arquivo padrão, ele tem prioridade.
type Reader struct {
	path string

	mu    sync.Mutex
	cache map[string]cachedRow
}

func NewReader(path string) *Reader {
	return &Reader{
		path:  path,
		cache: make(map[string]cachedRow),
	}
}

func (r *Reader) LatestFeatures(ctx context.Context, country string) (*domain.FeatureRow, error) {
	path, info, err := r.resolve(country)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[path]; ok && cached.modTime.Equal(info.ModTime()) {
		return cached.row, nil
	}

	row, err := readLast(path)
	if err != nil {
		return nil, err
	}

	r.cache[path] = cachedRow{modTime: info.ModTime(), row: row}

	log.ForContext(ctx).WithFields(log.Fields{
		"path":    path,
		"country": country,
		"date":    row.Date.Format(time.DateOnly),
	}).Debug("Tabela de features recarregada")

	return row, nil
}

func (r *Reader) resolve(country string) (string, os.FileInfo, error) {
	if country != "" {
		perCountry := filepath.Join(filepath.Dir(r.path), fmt.Sprintf("features_%s.csv", strings.ToUpper(country)))
		if info, err := os.Stat(perCountry); err == nil {
			return perCountry, info, nil
		}
	}

	info, err := os.Stat(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, errors.Wrapf(domain.ErrFeaturesNotFound, "arquivo %s", r.path)
		}
		return "", nil, errors.Wrapf(err, "erro ao acessar %s", r.path)
	}

	return r.path, info, nil
}

func readLast(path string) (*domain.FeatureRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer f.Close()

	rows, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(domain.ErrFeaturesNotFound, "tabela %s vazia", path)
	}

	last := rows[len(rows)-1]
	return &last, nil
}

// Decode lê uma tabela gravada por Encode
func Decode(in io.Reader) ([]domain.FeatureRow, error) {
	cr := csv.NewReader(in)

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range Header() {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("coluna ausente na tabela de features: %s", name)
		}
	}

	rows := make([]domain.FeatureRow, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha")
		}

		row, err := decodeRow(record, index)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func decodeRow(record []string, index map[string]int) (domain.FeatureRow, error) {
	date, err := time.Parse(time.DateOnly, record[index[ColumnDate]])
	if err != nil {
		return domain.FeatureRow{}, errors.Wrap(err, "data inválida")
	}

	vector := make(domain.FeatureVector, len(domain.FeatureSchema))
	for _, name := range domain.FeatureSchema {
		raw := record[index[string(name)]]
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.FeatureRow{}, errors.Wrapf(err, "valor inválido em %s (%s)", name, date.Format(time.DateOnly))
		}
		vector[name] = v
	}

	return domain.FeatureRowFromVector(date, vector), nil
}
