package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	OperationServerStarted = "Launch Pad Started"
	OperationThemeSwitched = "Theme Switched"
)

// Operation is one entry of the operations feed shown to operators.
type Operation struct {
	ID         string            `json:"id"`
	Message    string            `json:"message"`
	Source     string            `json:"source"`
	Type       string            `json:"operation_type"`
	Detail     map[string]string `json:"detail,omitempty"`
	CreatedUTC time.Time         `json:"created_utc"`
}

func (s *Store) AppendOperation(ctx context.Context, op Operation) (Operation, error) {
	if strings.TrimSpace(op.Message) == "" {
		return Operation{}, fmt.Errorf("operation message is required")
	}
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	if op.CreatedUTC.IsZero() {
		op.CreatedUTC = time.Now().UTC()
	}
	detail := op.Detail
	if detail == nil {
		detail = map[string]string{}
	}
	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return Operation{}, fmt.Errorf("encode operation detail: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO operations (id, message, source, operation_type, detail_json, created_utc)
		VALUES (?, ?, ?, ?, ?, ?)
	`, op.ID, op.Message, op.Source, op.Type, string(detailJSON), op.CreatedUTC.Format(time.RFC3339Nano)); err != nil {
		return Operation{}, fmt.Errorf("insert operation: %w", err)
	}
	return op, nil
}

// ListOperations returns the newest operations first.
func (s *Store) ListOperations(ctx context.Context, limit int) ([]Operation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, message, source, operation_type, detail_json, created_utc
		FROM operations
		ORDER BY created_utc DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()

	out := make([]Operation, 0)
	for rows.Next() {
		var (
			op         Operation
			detailJSON string
			createdUTC string
		)
		if err := rows.Scan(&op.ID, &op.Message, &op.Source, &op.Type, &detailJSON, &createdUTC); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		_ = json.Unmarshal([]byte(detailJSON), &op.Detail)
		if len(op.Detail) == 0 {
			op.Detail = nil
		}
		op.CreatedUTC = parseTime(createdUTC)
		out = append(out, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operations: %w", err)
	}
	return out, nil
}
