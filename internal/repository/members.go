package repository

import (
	"context"
	"database/sql"

	"bioskop/internal/database"
	"bioskop/internal/models"
)

type MemberRepository struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *models.Membership) error {
	query := `INSERT INTO memberships (code, name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, member.Code, member.Name).Scan(&member.ID)
}

func (r *MemberRepository) GetByCode(ctx context.Context, code string) (*models.Membership, error) {
	member := &models.Membership{}
	query := `SELECT id, code, name FROM memberships WHERE code = $1`

	err := r.db.QueryRowContext(ctx, query, code).Scan(&member.ID, &member.Code, &member.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return member, err
}

func (r *MemberRepository) List(ctx context.Context) ([]models.Membership, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, name FROM memberships ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.Membership
	for rows.Next() {
		var member models.Membership
		if err := rows.Scan(&member.ID, &member.Code, &member.Name); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *MemberRepository) Update(ctx context.Context, member *models.Membership) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET code = $1, name = $2 WHERE id = $3`,
		member.Code, member.Name, member.ID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *MemberRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
