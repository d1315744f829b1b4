package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
)

const maxRankingLimit = 1000

type viewQueryRequest struct {
	Team   string `validate:"max=128"`
	Metric string `validate:"max=32"`
	Layout string `validate:"max=16"`
}

type rankingRequest struct {
	viewQueryRequest
	Limit int `validate:"min=0,max=1000"`
}

func parseViewQuery(values url.Values) viewQueryRequest {
	return viewQueryRequest{
		Team:   values.Get("team"),
		Metric: strings.TrimSpace(values.Get("metric")),
		Layout: strings.TrimSpace(values.Get("layout")),
	}
}

func parseRankingRequest(values url.Values) (rankingRequest, error) {
	req := rankingRequest{viewQueryRequest: parseViewQuery(values)}
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return rankingRequest{}, fmt.Errorf("%w: limit must be an integer between 0 and %d", usecase.ErrInvalidInput, maxRankingLimit)
		}
		req.Limit = limit
	}
	return req, nil
}
