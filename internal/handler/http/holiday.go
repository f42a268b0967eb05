package http

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
	"github.com/leavedesk/leave-backend-go/internal/pkg/holiday"
	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

type HolidayHandler interface {
	ListForYear(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	defaultRegion holiday.Region
}

func NewHolidayHandler(defaultRegion holiday.Region) HolidayHandler {
	return &HolidayHandlerImpl{defaultRegion: defaultRegion}
}

type holidayListResponse struct {
	Year     int      `json:"year"`
	Region   string   `json:"region"`
	Holidays []string `json:"holidays"`
}

// ListForYear implements HolidayHandler.
func (h *HolidayHandlerImpl) ListForYear(w http.ResponseWriter, r *http.Request) {
	year := time.Now().UTC().Year()
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil || !validator.IsValidYear(parsed) {
			response.BadRequest(w, "Invalid year parameter", nil)
			return
		}
		year = parsed
	}

	region := h.defaultRegion
	if regionParam := r.URL.Query().Get("region"); regionParam != "" {
		region = holiday.Region(regionParam)
	}

	set := holiday.ForYear(year, region)
	dates := make([]string, 0, len(set))
	for iso := range set {
		dates = append(dates, iso)
	}
	// ISO dates sort chronologically as strings.
	sort.Strings(dates)

	response.Success(w, holidayListResponse{
		Year:     year,
		Region:   string(region),
		Holidays: dates,
	})
}
