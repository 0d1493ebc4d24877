package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cartverify/prepay-gateway/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что VerdictRepository удовлетворяет интерфейсу VerdictRepository.
var _ ports.VerdictRepository = (*VerdictRepository)(nil)

// VerdictRepository — журнал аудита вердиктов на Postgres (pgxpool).
// Запись делается best-effort после ответа вебхуку: сбой журнала
// не влияет на сам вердикт.
type VerdictRepository struct {
	pool *pgxpool.Pool
}

// NewVerdictRepository - конструктор VerdictRepository.
func NewVerdictRepository(pool *pgxpool.Pool) *VerdictRepository { return &VerdictRepository{pool: pool} }

// Save — добавляет запись о вынесенном вердикте.
func (r *VerdictRepository) Save(ctx context.Context, rec *ports.VerdictRecord) error {
	if rec == nil {
		return errors.New("verdict record is nil")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO verdicts (request_id, provider, ok, details, status_code, item_count)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.RequestID, rec.Provider, rec.Verdict.OK, rec.Verdict.Details, rec.StatusCode, rec.ItemCount); err != nil {
		return fmt.Errorf("insert verdict: %w", err)
	}
	return nil
}

// LastN — последние n записей журнала, самые свежие первыми.
func (r *VerdictRepository) LastN(ctx context.Context, n int) ([]*ports.VerdictRecord, error) {
	if n <= 0 {
		n = 20
	}

	rows, err := r.pool.Query(ctx, `
		SELECT request_id, provider, ok, details, status_code, item_count
		FROM verdicts
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select verdicts: %w", err)
	}
	defer rows.Close()

	var out []*ports.VerdictRecord
	for rows.Next() {
		rec := new(ports.VerdictRecord)
		if err := rows.Scan(
			&rec.RequestID, &rec.Provider, &rec.Verdict.OK, &rec.Verdict.Details,
			&rec.StatusCode, &rec.ItemCount,
		); err != nil {
			return nil, fmt.Errorf("scan verdict: %w", err)
		}
		rec.Verdict.StatusCode = rec.StatusCode
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("verdict rows: %w", err)
	}

	return out, nil
}
