package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cinehall/cinema-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresScheduleRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScheduleRepository(db *pgxpool.Pool) *PostgresScheduleRepository {
	return &PostgresScheduleRepository{
		db: db,
	}
}

func (p *PostgresScheduleRepository) GetByScreeningKey(
	ctx context.Context,
	movieID int,
	showDate time.Time,
	timeSlot string) (*domain.Schedule, error) {

	query := `
		SELECT sc.id, sc.movie_id, sc.screen_id, s.screen_number, s.capacity, sc.show_date, sc.time_slot
		FROM schedules sc
		JOIN screens s ON sc.screen_id = s.id
		WHERE sc.movie_id = $1 AND sc.show_date = $2 AND sc.time_slot = $3
	`

	return p.scanSchedule(p.db.QueryRow(ctx, query, movieID, showDate, timeSlot))
}

func (p *PostgresScheduleRepository) GetById(ctx context.Context, scheduleID int) (*domain.Schedule, error) {
	query := `
		SELECT sc.id, sc.movie_id, sc.screen_id, s.screen_number, s.capacity, sc.show_date, sc.time_slot
		FROM schedules sc
		JOIN screens s ON sc.screen_id = s.id
		WHERE sc.id = $1
	`

	return p.scanSchedule(p.db.QueryRow(ctx, query, scheduleID))
}

func (p *PostgresScheduleRepository) scanSchedule(row pgx.Row) (*domain.Schedule, error) {
	var schedule domain.Schedule

	err := row.Scan(
		&schedule.ID,
		&schedule.MovieID,
		&schedule.ScreenID,
		&schedule.ScreenNumber,
		&schedule.Capacity,
		&schedule.ShowDate,
		&schedule.TimeSlot,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}

	return &schedule, nil
}

func (p *PostgresScheduleRepository) GetSchedulesByMovieId(ctx context.Context, movieID int) ([]domain.Schedule, error) {
	query := `
		SELECT sc.id, sc.movie_id, sc.screen_id, s.screen_number, s.capacity, sc.show_date, sc.time_slot
		FROM schedules sc
		JOIN screens s ON sc.screen_id = s.id
		WHERE sc.movie_id = $1
		ORDER BY sc.show_date, sc.time_slot
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]domain.Schedule, 0)

	for rows.Next() {
		var schedule domain.Schedule

		err := rows.Scan(
			&schedule.ID,
			&schedule.MovieID,
			&schedule.ScreenID,
			&schedule.ScreenNumber,
			&schedule.Capacity,
			&schedule.ShowDate,
			&schedule.TimeSlot,
		)
		if err != nil {
			return nil, err
		}

		schedules = append(schedules, schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}
