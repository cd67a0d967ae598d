package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

func (r *Repository) GetNotesByUserID(userID int64) ([]*domain.Note, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, content, created_at, updated_at, version
		FROM notes
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		note := &domain.Note{
			UserID: userID,
		}
		if err := rows.Scan(&note.ID, &note.Content, &note.CreatedAt, &note.UpdatedAt, &note.Version); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *Repository) GetNoteByID(id string) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT user_id, content, created_at, updated_at, version
		FROM notes WHERE id = $1
	`

	note := &domain.Note{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&note.UserID, &note.Content, &note.CreatedAt, &note.UpdatedAt, &note.Version); err != nil {
		return nil, err
	}

	return note, nil
}

func (r *Repository) CreateNote(note *domain.Note) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO notes (id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, note.ID, note.UserID, note.Content).Scan(&note.CreatedAt, &note.UpdatedAt, &note.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateNote(note *domain.Note) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE notes
		SET
			content = $1,
			updated_at = now(),
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, note.Content, note.ID, note.Version).Scan(&note.UpdatedAt, &note.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteNote(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM notes WHERE id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
