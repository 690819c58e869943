package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlasova/GCA-SchedulingService/internal/domain"
	"github.com/avlasova/GCA-SchedulingService/pkg/dbmetrics"
	"github.com/avlasova/GCA-SchedulingService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"title",
	"description",
	"location",
	"type",
	"start_time",
	"end_time",
	"customer_id",
	"user_id",
	"contact_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Транзакция нужна при создании записи с проверкой пересечений,
// чтобы исключить гонку между проверкой и вставкой.
func (r *Repository) Create(ctx context.Context, app *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"title",
			"description",
			"location",
			"type",
			"start_time",
			"end_time",
			"customer_id",
			"user_id",
			"contact_id",
		).
		Values(
			app.Title,
			app.Description,
			app.Location,
			app.Type,
			app.Start,
			app.End,
			app.CustomerID,
			app.UserID,
			app.ContactID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&app.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time

	return app, nil
}

// Update обновляет существующую запись по ID
func (r *Repository) Update(ctx context.Context, app *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("title", app.Title).
		Set("description", app.Description).
		Set("location", app.Location).
		Set("type", app.Type).
		Set("start_time", app.Start).
		Set("end_time", app.End).
		Set("customer_id", app.CustomerID).
		Set("user_id", app.UserID).
		Set("contact_id", app.ContactID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": app.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time

	return app, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var app domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&app.ID,
		&app.Title,
		&app.Description,
		&app.Location,
		&app.Type,
		&app.Start,
		&app.End,
		&app.CustomerID,
		&app.UserID,
		&app.ContactID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time

	return &app, nil
}

// Delete удаляет запись по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// GetWithFilter получает записи с гибкой фильтрацией.
// Каждая операция движка берет свежий снимок данных этим запросом;
// результаты никогда не кешируются между вызовами.
//
// Поддерживает фильтрацию по:
// - Клиенту (CustomerID) - опционально
// - Пользователю (UserID) - опционально
// - Контакту (ContactID) - опционально
// - Периоду начала записи (StartFrom, StartTo) - опционально
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("start_time ASC, id ASC")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.ContactID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"contact_id": *filter.ContactID})
	}
	if filter.StartFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": *filter.StartFrom})
	}
	if filter.StartTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_time": *filter.StartTo})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует строки результата в список записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var app domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&app.ID,
			&app.Title,
			&app.Description,
			&app.Location,
			&app.Type,
			&app.Start,
			&app.End,
			&app.CustomerID,
			&app.UserID,
			&app.ContactID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		app.CreatedAt = createdAt.Time
		app.UpdatedAt = updatedAt.Time
		appointments = append(appointments, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
