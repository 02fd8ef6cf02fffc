package repository

import (
	"context"
	"fmt"

	"smarthome-data/internal/domain"
)

var kindTables = map[domain.EntityKind]string{
	domain.EntityKindSite:   "sites",
	domain.EntityKindRoom:   "rooms",
	domain.EntityKindDevice: "devices",
}

// EnsureExists gates dependent-entity creation: it must be called (and fail)
// before any insert that references the given parent. Returns
// *domain.IntegrityError when the parent row is missing.
func (s *Store) EnsureExists(ctx context.Context, kind domain.EntityKind, id int64) error {
	table, ok := kindTables[kind]
	if !ok {
		return fmt.Errorf("unknown entity kind %q", kind)
	}
	s.metrics.observe(table, "exists")

	var count int
	query := fmt.Sprintf(`SELECT COUNT(id) FROM %s WHERE id = $1`, table)
	if err := s.q.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return fmt.Errorf("check %s %d exists: %w", kind, id, err)
	}
	if count == 0 {
		return &domain.IntegrityError{Kind: kind, ID: id}
	}
	return nil
}
