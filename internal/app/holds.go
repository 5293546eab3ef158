package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinehall/cinema-booking-system/api"
	"github.com/cinehall/cinema-booking-system/internal/domain"
	"github.com/redis/go-redis/v9"
)

const seatHoldTTL = 10 * time.Minute

var holdSeatsScript = redis.NewScript(`
    -- KEYS = seat hold keys (e.g., seat_hold:123:1, seat_hold:123:2 etc.)
    -- ARGV = [sessionID, ttl]

    for i=1, #KEYS do
        if redis.call("EXISTS", KEYS[i]) == 1 then
            return {err = "seat already held"}
        end
    end

    for i=1, #KEYS do
        redis.call("SET", KEYS[i], ARGV[1], "EX", ARGV[2])
    end

    return "OK"
`)

// CreateSeatHold places a short-lived hold on the requested seats so a
// customer can finish checkout without the seats being grabbed mid-flow.
// A session carries at most one hold at a time.
func (app *Application) CreateSeatHold(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	scheduleID, err := app.readIntParam(r, "scheduleID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CreateHoldRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	schedule, err := app.scheduleRepo.GetById(r.Context(), scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	for _, seatNumber := range input.SeatNumbers {
		if seatNumber > schedule.Capacity {
			app.unprocessableEntityResponse(w, r, domain.ErrInvalidSeat)
			return
		}
	}

	sessionID := app.sessionManager.Token(r.Context())

	existing, err := app.redis.Get(r.Context(), holdSessionKey(sessionID)).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failed to check for existing hold in redis", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	if existing != "" {
		logger.Warn("hold creation attempt rejected: a hold already exists for this session")
		app.badRequestResponse(w, r, fmt.Errorf("cannot create a new hold while one is active for this session"))
		return
	}

	occupied, err := app.bookingRepo.GetOccupiedSeatNumbers(r.Context(), scheduleID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	occupiedSet := make(map[int]bool, len(occupied))
	for _, seatNumber := range occupied {
		occupiedSet[seatNumber] = true
	}

	for _, seatNumber := range input.SeatNumbers {
		if occupiedSet[seatNumber] {
			logger.Warn("hold conflict: user selected an already occupied seat", "seat_number", seatNumber)
			app.editConflictResponseWithErr(w, r, domain.ErrSeatUnavailable)
			return
		}
	}

	err = app.tryHoldSeats(r.Context(), scheduleID, input.SeatNumbers, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatHeld):
			logger.Warn("hold conflict due to race condition: user selected an already held seat")
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, fmt.Errorf("seats couldn't be held: %w", err))
		}

		return
	}

	hold, err := app.storeSeatHold(r.Context(), scheduleID, input.SeatNumbers, sessionID)
	if err != nil {
		logger.Error("hold creation process failed", "error", err)
		app.serverErrorResponse(w, r, fmt.Errorf("hold couldn't be created: %w", err))
		return
	}

	resp := api.HoldResponse{
		HoldId:      hold.ID,
		ScheduleId:  hold.ScheduleID,
		SeatNumbers: hold.SeatNumbers,
		HoldTime:    int(seatHoldTTL.Seconds()),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteSeatHold drops the session's hold on a screening, freeing the seats
// immediately instead of waiting for the TTL.
func (app *Application) DeleteSeatHold(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := app.readIntParam(r, "scheduleID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sessionID := app.sessionManager.Token(r.Context())

	holdID, err := app.redis.Get(r.Context(), holdSessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	holdBytes, err := app.redis.Get(r.Context(), holdID).Bytes()
	if err != nil {
		if err == redis.Nil {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	var hold domain.SeatHold
	err = json.Unmarshal(holdBytes, &hold)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if hold.ScheduleID != scheduleID {
		app.notFoundResponse(w, r)
		return
	}

	pipe := app.redis.TxPipeline()
	for _, seatNumber := range hold.SeatNumbers {
		pipe.Del(r.Context(), holdSeatKey(scheduleID, seatNumber))
	}
	pipe.Del(r.Context(), holdSessionKey(sessionID))
	pipe.Del(r.Context(), holdID)

	_, err = pipe.Exec(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) tryHoldSeats(ctx context.Context, scheduleID int, seatNumbers []int, sessionID string) error {
	keys := make([]string, len(seatNumbers))
	for i, seatNumber := range seatNumbers {
		keys[i] = holdSeatKey(scheduleID, seatNumber)
	}

	err := holdSeatsScript.Run(ctx, app.redis, keys, sessionID, int(seatHoldTTL.Seconds())).Err()
	if err != nil {
		if redis.HasErrorPrefix(err, "seat already held") {
			return domain.ErrSeatHeld
		}

		return err
	}

	return nil
}

func (app *Application) storeSeatHold(ctx context.Context, scheduleID int, seatNumbers []int, sessionID string) (*domain.SeatHold, error) {
	hold := domain.NewSeatHold(scheduleID, seatNumbers)

	holdBytes, err := json.Marshal(hold)
	if err != nil {
		app.rollbackSeatHolds(ctx, scheduleID, seatNumbers)
		return nil, err
	}

	pipe := app.redis.TxPipeline()
	pipe.Set(ctx, holdSessionKey(sessionID), hold.ID, seatHoldTTL)
	pipe.Set(ctx, hold.ID, holdBytes, seatHoldTTL)

	_, err = pipe.Exec(ctx)
	if err != nil {
		app.rollbackSeatHolds(ctx, scheduleID, seatNumbers)
		return nil, err
	}

	return &hold, nil
}

func (app *Application) rollbackSeatHolds(ctx context.Context, scheduleID int, seatNumbers []int) {
	keys := make([]string, len(seatNumbers))
	for i, seatNumber := range seatNumbers {
		keys[i] = holdSeatKey(scheduleID, seatNumber)
	}

	err := app.redis.Del(ctx, keys...).Err()
	if err != nil {
		app.logger.Error("failed to rollback seat holds", "error", err)
	}
}

// releaseSeatHolds clears any hold keys for the given seats after a
// reservation commits. Best effort; leftover keys expire by TTL anyway.
func (app *Application) releaseSeatHolds(ctx context.Context, scheduleID int, seatNumbers []int) {
	keys := make([]string, len(seatNumbers))
	for i, seatNumber := range seatNumbers {
		keys[i] = holdSeatKey(scheduleID, seatNumber)
	}

	err := app.redis.Del(ctx, keys...).Err()
	if err != nil {
		app.logger.Error("failed to release seat holds after reservation", "error", err)
	}
}

func holdSessionKey(sessionID string) string {
	return fmt.Sprintf("hold:%s", sessionID)
}

func holdSeatKey(scheduleID, seatNumber int) string {
	return fmt.Sprintf("seat_hold:%d:%d", scheduleID, seatNumber)
}
