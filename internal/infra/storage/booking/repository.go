package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

const tableBookings = "bookings"

// pgUniqueViolation код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"court_id",
	"user_id",
	"coach_id",
	"start_at",
	"end_at",
	"rackets",
	"shoes",
	"base_price",
	"weekend_surcharge",
	"time_multiplier",
	"equipment_fee",
	"coach_fee",
	"total",
	"is_peak",
	"is_weekend",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте есть транзакция (txmanager), запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsert(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			if pqErr.Constraint == "bookings_pkey" {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("%w: %s", ErrSlotNotAvailable, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created := booking.Clone()
	created.CreatedAt = createdAt.UTC()
	created.UpdatedAt = updatedAt.UTC()
	return created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования с фильтрацией
//
// Примеры:
//
// 1. История пользователя (сначала новые, включая отменённые):
//    domain.BookingsFilter{UserID: &userID, IncludeInactive: true}
//
// 2. Активные бронирования тренера (сначала ранние):
//    domain.BookingsFilter{CoachID: &coachID, SortAsc: true}
//
// 3. Занятость кортов за день:
//    domain.BookingsFilter{From: &dayStart, To: &dayEnd, SortAsc: true}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildList(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveInRange получает активные бронирования, пересекающие [start, end)
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) GetActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildActiveInRange(start, end, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if !isKnownStatus(status) {
		return ErrInvalidStatus
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func buildInsert(b *domain.Booking) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableBookings).
		Columns(bookingColumns[:17]...).
		Values(
			b.ID,
			b.CourtID,
			b.UserID,
			b.CoachID,
			b.Start.UTC(),
			b.End.UTC(),
			b.Rackets,
			b.Shoes,
			b.Price.BasePrice,
			b.Price.WeekendSurcharge,
			b.Price.TimeMultiplier,
			b.Price.EquipmentFee,
			b.Price.CoachFee,
			b.Price.Total,
			b.Price.IsPeak,
			b.Price.IsWeekend,
			string(b.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildList(filter domain.BookingsFilter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).From(tableBookings)

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.CoachID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"coach_id": *filter.CoachID})
	}
	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": filter.From.UTC()})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": filter.To.UTC()})
	}
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)})
	}

	if filter.SortAsc {
		selectBuilder = selectBuilder.OrderBy("start_at ASC", "created_at ASC", "id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("start_at DESC", "created_at DESC", "id ASC")
	}

	return selectBuilder.ToSql()
}

func buildActiveInRange(start, end time.Time, forUpdate bool) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		Where(squirrel.Lt{"start_at": end.UTC()}).
		Where(squirrel.Gt{"end_at": start.UTC()}).
		OrderBy("start_at ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder.ToSql()
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b       domain.Booking
		coachID sql.NullString
		status  string
	)

	err := row.Scan(
		&b.ID,
		&b.CourtID,
		&b.UserID,
		&coachID,
		&b.Start,
		&b.End,
		&b.Rackets,
		&b.Shoes,
		&b.Price.BasePrice,
		&b.Price.WeekendSurcharge,
		&b.Price.TimeMultiplier,
		&b.Price.EquipmentFee,
		&b.Price.CoachFee,
		&b.Price.Total,
		&b.Price.IsPeak,
		&b.Price.IsWeekend,
		&status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if coachID.Valid {
		b.CoachID = &coachID.String
	}
	b.Status = domain.BookingStatus(status)
	b.Start = b.Start.UTC()
	b.End = b.End.UTC()
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
