package repository

import (
	"context"

	"github.com/foxseedlab/emovoice/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.Repository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) InsertSentenceLog(ctx context.Context, input repository.InsertSentenceLogInput) (string, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO sentence_logs
		   (session_id, participant_name, emotion_id, emotion_label, sentence_id, sentence_text, shown_at, pressed_at, duration_ms, audio_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		input.SessionID, input.ParticipantName, input.EmotionID, input.EmotionLabel,
		input.SentenceID, input.SentenceText, input.ShownAt, input.PressedAt,
		input.DurationMs, nullableText(input.AudioURL))
	var id string
	if err := row.Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresRepository) ListSentenceLogsBySessionID(ctx context.Context, sessionID string) ([]repository.SentenceLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, session_id, participant_name, emotion_id, emotion_label, sentence_id, sentence_text, shown_at, pressed_at, duration_ms, COALESCE(audio_url, ''), created_at
		 FROM sentence_logs WHERE session_id = $1 ORDER BY created_at ASC`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.SentenceLog
	for rows.Next() {
		var l repository.SentenceLog
		if err := rows.Scan(&l.ID, &l.SessionID, &l.ParticipantName, &l.EmotionID, &l.EmotionLabel,
			&l.SentenceID, &l.SentenceText, &l.ShownAt, &l.PressedAt, &l.DurationMs, &l.AudioURL, &l.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
