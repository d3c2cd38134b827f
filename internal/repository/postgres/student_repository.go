package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

type studentRepository struct {
	executor DBExecutor
}

func NewStudentRepository(db *sql.DB) *studentRepository {
	return &studentRepository{executor: db}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (name, nisn, class, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	var dbID int
	err := r.executor.QueryRowContext(
		ctx,
		query,
		student.Name,
		student.NISN,
		student.Class,
		time.Now(),
	).Scan(&dbID, &student.CreatedAt)
	if err != nil {
		return err
	}

	student.ID = intToStudentID(dbID)
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	dbID, err := studentIDToInt(id)
	if err != nil {
		return nil, domain.NewNotFoundError("student " + id)
	}

	query := `
		SELECT id, name, nisn, class, created_at
		FROM students
		WHERE id = $1
	`

	student := &domain.Student{}
	err = r.executor.QueryRowContext(ctx, query, dbID).Scan(
		&dbID,
		&student.Name,
		&student.NISN,
		&student.Class,
		&student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("student " + id)
		}
		return nil, err
	}

	student.ID = intToStudentID(dbID)
	return student, nil
}
