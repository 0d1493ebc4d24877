package ports

import (
	"context"

	"github.com/cartverify/prepay-gateway/internal/domain"
)

// VerdictRecord — запись аудита одного вердикта.
type VerdictRecord struct {
	RequestID  string         `json:"request_id"`
	Provider   string         `json:"provider"`
	Verdict    domain.Verdict `json:"verdict"`
	StatusCode int            `json:"status_code"`
	ItemCount  int            `json:"item_count"`
}

// VerdictRepository — журнал аудита вынесенных вердиктов.
type VerdictRepository interface {
	// Save — записать вердикт. Ошибка записи не влияет на сам вердикт.
	Save(ctx context.Context, rec *VerdictRecord) error

	// LastN — последние n записей журнала (для операционного просмотра).
	LastN(ctx context.Context, n int) ([]*VerdictRecord, error)
}
