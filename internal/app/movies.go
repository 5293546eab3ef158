package app

import (
	"net/http"

	"github.com/cinehall/cinema-booking-system/api"
	"github.com/cinehall/cinema-booking-system/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toApiMovies(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieSchedules(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIntParam(r, "movieID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if _, err := app.movieRepo.GetById(r.Context(), movieID); err != nil {
		switch err {
		case domain.ErrRecordNotFound:
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	schedules, err := app.scheduleRepo.GetSchedulesByMovieId(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieSchedulesResponse{
		MovieId:   movieID,
		Schedules: toApiSchedules(schedules),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovies(movies []domain.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = api.Movie{
			Id:          movie.ID,
			Title:       movie.Title,
			Genre:       movie.Genre,
			PosterUrl:   movie.PosterUrl,
			TicketPrice: movie.TicketPrice,
		}
	}

	return apiMovies
}

func toApiSchedules(schedules []domain.Schedule) []api.ScheduleEntry {
	entries := make([]api.ScheduleEntry, len(schedules))

	for i, schedule := range schedules {
		entries[i] = api.ScheduleEntry{
			Id:           schedule.ID,
			ScreenNumber: schedule.ScreenNumber,
			Capacity:     schedule.Capacity,
			Date:         formatShowDate(schedule.ShowDate),
			TimeSlot:     schedule.TimeSlot,
		}
	}

	return entries
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
