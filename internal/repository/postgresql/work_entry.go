package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workEntryRepository struct {
	db *database.DB
}

func NewWorkEntryRepository(db *database.DB) workentry.WorkEntryRepository {
	return &workEntryRepository{db: db}
}

const workEntryColumns = `
	id, user_id, company_id, department_id, project_id,
	work_title, description, date, start_time, end_time,
	hours_worked, status, created_at, updated_at
`

func scanWorkEntry(row pgx.Row) (workentry.WorkEntry, error) {
	var e workentry.WorkEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.DepartmentID, &e.ProjectID,
		&e.WorkTitle, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
		&e.HoursWorked, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements workentry.WorkEntryRepository.
func (r *workEntryRepository) Create(ctx context.Context, entry workentry.WorkEntry) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_entries (
			id, user_id, company_id, department_id, project_id,
			work_title, description, date, start_time, end_time,
			hours_worked, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.UserID,
		entry.CompanyID,
		entry.DepartmentID,
		entry.ProjectID,
		entry.WorkTitle,
		entry.Description,
		entry.Date,
		entry.StartTime,
		entry.EndTime,
		entry.HoursWorked,
		entry.Status,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return workentry.WorkEntry{}, fmt.Errorf("failed to create work entry: %w", err)
	}

	return entry, nil
}

// GetByID implements workentry.WorkEntryRepository.
func (r *workEntryRepository) GetByID(ctx context.Context, companyID, id string) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workEntryColumns + `
		FROM work_entries
		WHERE id = $1
		  AND company_id = $2
		LIMIT 1
	`

	entry, err := scanWorkEntry(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return workentry.WorkEntry{}, workentry.ErrWorkEntryNotFound
		}
		return workentry.WorkEntry{}, fmt.Errorf("failed to get work entry: %w", err)
	}

	return entry, nil
}

// ListByUser implements workentry.WorkEntryRepository.
func (r *workEntryRepository) ListByUser(ctx context.Context, companyID, userID string, from, to time.Time) ([]workentry.WorkEntry, error) {
	query := `
		SELECT ` + workEntryColumns + `
		FROM work_entries
		WHERE company_id = $1
		  AND user_id = $2
		  AND date >= $3
		  AND date < $4
		ORDER BY date ASC, created_at ASC
	`
	return r.list(ctx, query, companyID, userID, from, to)
}

// ListByCompany implements workentry.WorkEntryRepository.
func (r *workEntryRepository) ListByCompany(ctx context.Context, companyID string, from, to time.Time) ([]workentry.WorkEntry, error) {
	query := `
		SELECT ` + workEntryColumns + `
		FROM work_entries
		WHERE company_id = $1
		  AND date >= $2
		  AND date < $3
		ORDER BY date ASC, created_at ASC
	`
	return r.list(ctx, query, companyID, from, to)
}

// ListByDepartment implements workentry.WorkEntryRepository.
func (r *workEntryRepository) ListByDepartment(ctx context.Context, companyID, departmentID string, from, to time.Time) ([]workentry.WorkEntry, error) {
	query := `
		SELECT ` + workEntryColumns + `
		FROM work_entries
		WHERE company_id = $1
		  AND department_id = $2
		  AND date >= $3
		  AND date < $4
		ORDER BY date ASC, created_at ASC
	`
	return r.list(ctx, query, companyID, departmentID, from, to)
}

func (r *workEntryRepository) list(ctx context.Context, query string, args ...any) ([]workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work entries: %w", err)
	}
	defer rows.Close()

	var entries []workentry.WorkEntry
	for rows.Next() {
		entry, err := scanWorkEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work entries: %w", err)
	}

	return entries, nil
}
