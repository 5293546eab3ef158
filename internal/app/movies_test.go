package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cinehall/cinema-booking-system/api"
	"github.com/cinehall/cinema-booking-system/internal/domain"
	"github.com/cinehall/cinema-booking-system/internal/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestGetMovies(t *testing.T) {
	tests := []struct {
		name           string
		getAllFunc     func(context.Context) ([]domain.Movie, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.MovieListResponse
	}{
		{
			name: "lists the catalog",
			getAllFunc: func(ctx context.Context) ([]domain.Movie, error) {
				return []domain.Movie{
					{ID: 1, Title: "Interstellar", Genre: "Sci-Fi", PosterUrl: "http://example.com/interstellar.jpg", TicketPrice: decimal.NewFromFloat(12.50)},
					{ID: 2, Title: "Heat", Genre: "Crime", PosterUrl: "http://example.com/heat.jpg", TicketPrice: decimal.NewFromFloat(10)},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.MovieListResponse{
				Movies: []api.Movie{
					{Id: 1, Title: "Interstellar", Genre: "Sci-Fi", PosterUrl: "http://example.com/interstellar.jpg", TicketPrice: decimal.NewFromFloat(12.50)},
					{Id: 2, Title: "Heat", Genre: "Crime", PosterUrl: "http://example.com/heat.jpg", TicketPrice: decimal.NewFromFloat(10)},
				},
			},
		},
		{
			name: "returns an empty list when the catalog is empty",
			getAllFunc: func(ctx context.Context) ([]domain.Movie, error) {
				return []domain.Movie{}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.MovieListResponse{
				Movies: []api.Movie{},
			},
		},
		{
			name: "fails when the lookup errors",
			getAllFunc: func(ctx context.Context) ([]domain.Movie, error) {
				return nil, fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.movieRepo = &mocks.MockMovieRepo{
					GetAllFunc: tt.getAllFunc,
				}
			})

			w, r := executeRequest(t, http.MethodGet, "/movies", nil)

			app.GetMovies(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetMovies() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.MovieListResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetMovies() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetMovieSchedules(t *testing.T) {
	tests := []struct {
		name             string
		movieId          string
		getByIdFunc      func(context.Context, int) (*domain.Movie, error)
		getSchedulesFunc func(context.Context, int) ([]domain.Schedule, error)
		wantStatus       int
		wantErrMessage   string
		wantResponse     *api.MovieSchedulesResponse
	}{
		{
			name:    "lists the screenings of a movie",
			movieId: "1",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				return &domain.Movie{ID: 1, Title: "Interstellar"}, nil
			},
			getSchedulesFunc: func(ctx context.Context, movieID int) ([]domain.Schedule, error) {
				return []domain.Schedule{
					{
						ID:           4,
						MovieID:      1,
						ScreenID:     2,
						ScreenNumber: 2,
						Capacity:     60,
						ShowDate:     time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
						TimeSlot:     "6:30 PM",
					},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.MovieSchedulesResponse{
				MovieId: 1,
				Schedules: []api.ScheduleEntry{
					{Id: 4, ScreenNumber: 2, Capacity: 60, Date: "2026-09-12", TimeSlot: "6:30 PM"},
				},
			},
		},
		{
			name:           "fails when movie id is invalid",
			movieId:        "first",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid movieID parameter",
		},
		{
			name:    "fails when the movie does not exist",
			movieId: "42",
			getByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.movieRepo = &mocks.MockMovieRepo{
					GetByIdFunc: tt.getByIdFunc,
				}
				a.scheduleRepo = &mocks.MockScheduleRepo{
					GetSchedulesByMovieIdFunc: tt.getSchedulesFunc,
				}
			})

			w, r := executeRequest(t, http.MethodGet, fmt.Sprintf("/movies/%s/schedules", tt.movieId), nil)
			r = withUrlParams(r, map[string]string{"movieID": tt.movieId})

			app.GetMovieSchedules(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetMovieSchedules() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.MovieSchedulesResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetMovieSchedules() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
