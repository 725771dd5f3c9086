package monitoring

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/vfg2006/revenue-forecast-api/internal/domain"
	"github.com/vfg2006/revenue-forecast-api/pkg/log"
)

// MetricsRepository é o armazenamento durável do snapshot.
// Load retorna nil, nil quando nada foi gravado ainda.
type MetricsRepository interface {
	Load(ctx context.Context) (*domain.MetricsSnapshot, error)
	Save(ctx context.Context, snapshot domain.MetricsSnapshot) error
}

type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "uninitialized"
}

// Store mantém as métricas de serviço do processo. RecordEvent é serializado
// e só altera o estado em memória depois da gravação durável.
type Store struct {
	repo MetricsRepository
	now  func() time.Time

	mu       sync.RWMutex
	state    State
	snapshot domain.MetricsSnapshot
}

func NewStore(repo MetricsRepository) *Store {
	return &Store{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Activate carrega o snapshot persistido ou grava um snapshot zerado.
// Chamadas repetidas após o sucesso não fazem nada.
func (s *Store) Activate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activateLocked(ctx)
}

func (s *Store) activateLocked(ctx context.Context) error {
	if s.state == StateReady {
		return nil
	}

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		return newPersistenceError(err)
	}

	if loaded != nil {
		s.snapshot = *loaded
		s.state = StateReady
		log.ForContext(ctx).WithFields(log.Fields{
			"predictions_count": loaded.PredictionsCount,
		}).Info("Métricas carregadas do armazenamento")
		return nil
	}

	zero := domain.MetricsSnapshot{LastUpdate: s.timestamp()}
	if err := s.repo.Save(ctx, zero); err != nil {
		return newPersistenceError(err)
	}

	s.snapshot = zero
	s.state = StateReady
	log.ForContext(ctx).Info("Métricas inicializadas com snapshot zerado")

	return nil
}

// RecordEvent registra uma previsão atendida. Em caso de erro de gravação o
// estado em memória permanece como antes da chamada.
func (s *Store) RecordEvent(ctx context.Context, success bool, latencyMs float64) error {
	if math.IsNaN(latencyMs) || latencyMs < 0 || math.IsInf(latencyMs, 0) {
		latencyMs = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activateLocked(ctx); err != nil {
		return err
	}

	next := s.snapshot
	next.PredictionsCount++
	n := float64(next.PredictionsCount)

	next.AverageResponseTime += (latencyMs - next.AverageResponseTime) / n

	failure := 0.0
	if !success {
		failure = 1
	}
	next.ErrorRate += (failure - next.ErrorRate) / n
	next.LastUpdate = s.timestamp()

	if err := s.repo.Save(ctx, next); err != nil {
		log.ForContext(ctx).WithError(err).Error("Falha ao persistir métricas; evento não registrado")
		return newPersistenceError(err)
	}

	s.snapshot = next
	return nil
}

// Snapshot retorna uma cópia com last_update igual ao instante da consulta.
// Não grava nada.
func (s *Store) Snapshot(ctx context.Context) (domain.MetricsSnapshot, error) {
	s.mu.RLock()
	state := s.state
	snapshot := s.snapshot
	s.mu.RUnlock()

	if state != StateReady {
		s.mu.Lock()
		err := s.activateLocked(ctx)
		snapshot = s.snapshot
		s.mu.Unlock()
		if err != nil {
			return domain.MetricsSnapshot{}, err
		}
	}

	snapshot.LastUpdate = s.timestamp()
	return snapshot, nil
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Round(0)
}
