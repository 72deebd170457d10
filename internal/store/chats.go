package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/scribe/internal/analyzer"
)

// ChatRecord is the persisted metadata of one analyzed chat upload.
// Range endpoints are nil for exports that produced no messages.
type ChatRecord struct {
	ID           uuid.UUID  `json:"id"`
	Filename     string     `json:"filename"`
	Participants []string   `json:"participants"`
	MessageCount int        `json:"message_count"`
	RangeStart   *time.Time `json:"range_start"`
	RangeEnd     *time.Time `json:"range_end"`
	Model        string     `json:"model"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SaveAnalysis writes the chat metadata and its analysis in one transaction.
// Tables: chats, chat_analyses.
func (s *Store) SaveAnalysis(ctx context.Context, rec ChatRecord, analysis *analyzer.Analysis) (uuid.UUID, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	chatID := uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO chats (id, filename, participants, message_count, range_start, range_end, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`,
		chatID, rec.Filename, rec.Participants, rec.MessageCount, rec.RangeStart, rec.RangeEnd,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert chat: %w", err)
	}

	payload, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal analysis: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO chat_analyses (id, chat_id, model, analysis, created_at)
		VALUES ($1, $2, $3, $4, now())`,
		uuid.New(), chatID, rec.Model, payload,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert analysis: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}

	return chatID, nil
}

// ListRecent returns the newest analyzed chats, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]ChatRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.filename, c.participants, c.message_count, c.range_start, c.range_end,
		       coalesce(a.model, ''), c.created_at
		FROM chats c
		LEFT JOIN chat_analyses a ON a.chat_id = c.id
		ORDER BY c.created_at DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query chats: %w", err)
	}
	defer rows.Close()

	var records []ChatRecord
	for rows.Next() {
		var rec ChatRecord
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.Participants, &rec.MessageCount,
			&rec.RangeStart, &rec.RangeEnd, &rec.Model, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chats: %w", err)
	}

	return records, nil
}

// GetAnalysis returns the stored analysis for one chat.
func (s *Store) GetAnalysis(ctx context.Context, chatID uuid.UUID) (*analyzer.Analysis, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `
		SELECT analysis FROM chat_analyses WHERE chat_id = $1
		ORDER BY created_at DESC LIMIT 1`, chatID,
	).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("query analysis: %w", err)
	}

	var analysis analyzer.Analysis
	if err := json.Unmarshal(payload, &analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return &analysis, nil
}
