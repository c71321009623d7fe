package admin

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
)

// Allowlisted tables the browser may touch. Everything else is rejected
// before any SQL is built.
var browsableTables = map[string]struct{}{
	"users":  {},
	"items":  {},
	"orders": {},
}

type rawQuerier interface {
	Raw(ctx context.Context, query string, args ...any) *gorm.DB
}

// Service implements the operator table browser.
type Service struct {
	db       rawQuerier
	rowLimit int
}

// NewService builds the admin browser with the configured row cap.
func NewService(db rawQuerier, rowLimit int) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db querier required")
	}
	if rowLimit <= 0 {
		rowLimit = 100
	}
	return &Service{db: db, rowLimit: rowLimit}, nil
}

// Tables lists the browsable table names.
func (s *Service) Tables() []string {
	names := make([]string, 0, len(browsableTables))
	for name := range browsableTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Browse returns up to limit rows from the named table at the given offset.
func (s *Service) Browse(ctx context.Context, table string, limit, offset int) ([]map[string]any, error) {
	if _, ok := browsableTables[table]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown table")
	}
	if limit <= 0 || limit > s.rowLimit {
		limit = s.rowLimit
	}
	if offset < 0 {
		offset = 0
	}

	// Table name comes from the allowlist above, never from caller input.
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY created_at DESC LIMIT ? OFFSET ?", table)

	var rows []map[string]any
	if err := s.db.Raw(ctx, query, limit, offset).Scan(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "browsing table")
	}

	// Credential hashes never leave the service.
	if table == "users" {
		for _, row := range rows {
			delete(row, "password_hash")
		}
	}
	return rows, nil
}
