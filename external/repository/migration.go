package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS sentence_logs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		session_id TEXT NOT NULL,
		participant_name TEXT NOT NULL,
		emotion_id TEXT NOT NULL,
		emotion_label TEXT NOT NULL,
		sentence_id INTEGER NOT NULL,
		sentence_text TEXT NOT NULL,
		shown_at TIMESTAMPTZ NOT NULL,
		pressed_at TIMESTAMPTZ NOT NULL,
		duration_ms BIGINT NOT NULL,
		audio_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sentence_logs_session ON sentence_logs (session_id, created_at)`,
}

func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range migrationStatements {
		stmt := strings.TrimSpace(s)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
