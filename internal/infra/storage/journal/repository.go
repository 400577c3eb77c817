package journal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/pkg/psqlbuilder"
)

const (
	tableName = "transition_journal"

	defaultListLimit = 50
	maxListLimit     = 500
)

var columns = []string{
	"id",
	"appointment_id",
	"business_id",
	"action",
	"actor_id",
	"comment",
	"outcome",
	"error",
	"created_at",
}

// Repository журнал изменений статусов записей в PostgreSQL
type Repository struct {
	db    DBExecutor
	newID IDGenerator
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{
		db:    db,
		newID: uuid.NewString,
	}
}

// Record сохраняет запись журнала. Пустой ID заполняется новым UUID.
func (r *Repository) Record(ctx context.Context, entry *domain.JournalEntry) error {
	if entry.AppointmentID == "" || entry.Action == "" || entry.Outcome == "" {
		return fmt.Errorf("%w: appointment id, action and outcome are required", ErrInvalidEntry)
	}
	if entry.ID == "" {
		entry.ID = r.newID()
	}

	query, args, err := buildInsert(entry)
	if err != nil {
		return fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// List возвращает записи журнала бизнеса, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error) {
	query, args, err := buildList(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.JournalEntry, 0)
	for rows.Next() {
		var (
			entry   domain.JournalEntry
			comment sql.NullString
			errMsg  sql.NullString
		)

		err := rows.Scan(
			&entry.ID,
			&entry.AppointmentID,
			&entry.BusinessID,
			&entry.Action,
			&entry.ActorID,
			&comment,
			&entry.Outcome,
			&errMsg,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if comment.Valid {
			entry.Comment = &comment.String
		}
		if errMsg.Valid {
			entry.Error = &errMsg.String
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return entries, nil
}

func buildInsert(entry *domain.JournalEntry) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			entry.ID,
			entry.AppointmentID,
			entry.BusinessID,
			entry.Action,
			entry.ActorID,
			entry.Comment,
			entry.Outcome,
			entry.Error,
			entry.CreatedAt,
		).
		ToSql()
}

func buildList(filter domain.JournalFilter) (string, []interface{}, error) {
	limit := filter.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"business_id": filter.BusinessID})

	if filter.AppointmentID != nil {
		builder = builder.Where(squirrel.Eq{"appointment_id": *filter.AppointmentID})
	}

	return builder.
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
}
