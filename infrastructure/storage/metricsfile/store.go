package metricsfile

import (
	"context"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store persiste o snapshot de métricas em um arquivo JSON
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load retorna nil, nil quando ainda não existe snapshot gravado
func (s *Store) Load(_ context.Context) (*domain.MetricsSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao ler métricas de %s", s.path)
	}

	var snapshot domain.MetricsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrapf(err, "arquivo de métricas corrompido em %s", s.path)
	}

	return &snapshot, nil
}

// Save grava o snapshot completo de forma atômica (temporário + rename),
// criando o diretório quando necessário.
func (s *Store) Save(ctx context.Context, snapshot domain.MetricsSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar métricas")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário de métricas")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "erro ao escrever métricas")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "erro ao sincronizar métricas")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao fechar arquivo de métricas")
	}

	return errors.Wrapf(os.Rename(tmpName, s.path), "erro ao publicar métricas em %s", s.path)
}
