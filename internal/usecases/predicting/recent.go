package predicting

import (
	"sync"

	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

// recentLog guarda as últimas previsões bem-sucedidas em um buffer circular
type recentLog struct {
	mu    sync.Mutex
	items []domain.PredictionResult
	next  int
	full  bool
}

func newRecentLog(capacity int) *recentLog {
	if capacity <= 0 {
		return nil
	}
	return &recentLog{items: make([]domain.PredictionResult, capacity)}
}

func (l *recentLog) add(result domain.PredictionResult) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.items[l.next] = result
	l.next = (l.next + 1) % len(l.items)
	if l.next == 0 {
		l.full = true
	}
}

// list retorna até limit previsões, da mais recente para a mais antiga
func (l *recentLog) list(limit int) []domain.PredictionResult {
	if l == nil {
		return []domain.PredictionResult{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	size := l.next
	if l.full {
		size = len(l.items)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]domain.PredictionResult, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (l.next - i + len(l.items)) % len(l.items)
		out = append(out, l.items[idx])
	}
	return out
}
