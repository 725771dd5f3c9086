package model

import (
	"context"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrLoad indica que o artefato não pôde ser carregado (ausente, ilegível ou inválido)
var ErrLoad = errors.New("erro ao carregar artefato do modelo")

type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Load(ctx context.Context) (domain.Model, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, errors.Wrapf(ErrLoad, "%s: %v", l.path, err)
	}

	m := &LinearModel{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(ErrLoad, "%s: json inválido: %v", l.path, err)
	}
	if err := m.validate(); err != nil {
		return nil, errors.Wrapf(ErrLoad, "%s: %v", l.path, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"path":     l.path,
		"model":    m.Name,
		"version":  m.ModelVersion,
		"features": len(m.required),
	}).Info("Modelo carregado")

	return m, nil
}
