package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/pkg/metrics"
)

type entry struct {
	signature string
	verdict   domain.Verdict
	expiresAt time.Time
}

// VerdictCacheTTL — LRU-кэш вердиктов с TTL, ключом служит подпись вебхука.
// Повторная доставка того же тела получает сохранённый вердикт без похода
// в магазин. Хранятся только одобренные/отклонённые вердикты (StatusCode 200);
// отбор делает вызывающая сторона.
type VerdictCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewVerdictCacheTTL(capacity int, ttl time.Duration) *VerdictCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &VerdictCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *VerdictCacheTTL) Get(_ context.Context, signature string) (domain.Verdict, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[signature]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return domain.Verdict{}, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return domain.Verdict{}, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.verdict, true
}

func (c *VerdictCacheTTL) Set(_ context.Context, signature string, verdict domain.Verdict) error {
	if signature == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[signature]; ok {
		ent := elem.Value.(*entry)
		ent.verdict = verdict
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		signature: signature,
		verdict:   verdict,
		expiresAt: c.expiryFrom(now),
	})
	c.index[signature] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}
