package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"interim-engine/internal/domain"
	"interim-engine/internal/recency"
)

const offerColumns = `id, title, company, location, description, salary, contract_type, duration, url, posted_at, logo_url`

// Insert adds offers to the corpus, preserving their order. Offers whose id
// is already present are skipped, keeping ids unique per corpus.
func (s *Store) Insert(ctx context.Context, offers []domain.JobOffer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR IGNORE INTO offers(`+offerColumns+`, title_fold, location_fold, freshness)
VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?);`)
	if err != nil {
		return fmt.Errorf("store insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range offers {
		if _, err := stmt.ExecContext(ctx,
			o.ID, o.Title, o.Company, o.Location, o.Description,
			o.Salary, o.ContractType, o.Duration, o.URL, o.PostedAt, o.LogoURL,
			strings.ToLower(o.Title), strings.ToLower(o.Location),
			recency.Score(o.PostedAt),
		); err != nil {
			return fmt.Errorf("store insert %s: %w", o.ID, err)
		}
	}
	return tx.Commit()
}

// SearchPage returns one page of the corpus, optionally narrowed by
// case-insensitive substring filters on location (city) and title. Both
// filters compose with AND. Out-of-range pages yield an empty slice and the
// unchanged total.
func (s *Store) SearchPage(ctx context.Context, city, jobTitle string, page, pageSize int) ([]domain.JobOffer, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}

	where := `WHERE (? = '' OR instr(location_fold, ?) > 0)
  AND (? = '' OR instr(title_fold, ?) > 0)`
	cityFold := strings.ToLower(city)
	titleFold := strings.ToLower(jobTitle)
	filterArgs := []any{cityFold, cityFold, titleFold, titleFold}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM offers `+where, filterArgs...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("store count: %w", err)
	}

	query := fmt.Sprintf(`
SELECT %s FROM offers %s
ORDER BY seq
LIMIT ? OFFSET ?;`, offerColumns, where)

	args := append(filterArgs, pageSize, (page-1)*pageSize)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("store search: %w", err)
	}
	defer rows.Close()

	var out []domain.JobOffer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("store search: %w", err)
	}
	return out, total, nil
}

// Get looks an offer up by exact id; nil means not in the corpus.
func (s *Store) Get(ctx context.Context, id string) (*domain.JobOffer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = ?;`, id)
	o, err := scanOffer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Count reports the corpus size.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM offers;`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(r rowScanner) (domain.JobOffer, error) {
	var o domain.JobOffer
	err := r.Scan(&o.ID, &o.Title, &o.Company, &o.Location, &o.Description,
		&o.Salary, &o.ContractType, &o.Duration, &o.URL, &o.PostedAt, &o.LogoURL)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return o, fmt.Errorf("store scan: %w", err)
	}
	return o, err
}
