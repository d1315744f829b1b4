package roundstat

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMetric = errors.New("unknown metric")

// Metric is a sortable statistic key.
type Metric string

const (
	MetricPoints      Metric = "points"
	MetricMinutes     Metric = "minutes"
	MetricGoals       Metric = "goals"
	MetricAssists     Metric = "assists"
	MetricCleanSheets Metric = "clean_sheets"
	MetricSaves       Metric = "saves"
	MetricBonus       Metric = "bonus"
	MetricYellowCards Metric = "yellow_cards"
	MetricRedCards    Metric = "red_cards"
)

// DefaultMetric ranks players by total fantasy points.
const DefaultMetric = MetricPoints

type MetricInfo struct {
	Key   Metric `json:"key"`
	Field string `json:"field"`
}

// metricCatalog is kept in the sheet's column order.
var metricCatalog = []MetricInfo{
	{Key: MetricMinutes, Field: FieldMinutes},
	{Key: MetricPoints, Field: FieldPoints},
	{Key: MetricGoals, Field: FieldGoals},
	{Key: MetricAssists, Field: FieldAssists},
	{Key: MetricCleanSheets, Field: FieldCleanSheets},
	{Key: MetricSaves, Field: FieldSaves},
	{Key: MetricBonus, Field: FieldBonus},
	{Key: MetricYellowCards, Field: FieldYellowCards},
	{Key: MetricRedCards, Field: FieldRedCards},
}

// Metrics returns every metric in column order.
func Metrics() []MetricInfo {
	return append([]MetricInfo(nil), metricCatalog...)
}

// ParseMetric resolves a metric key. An empty value yields DefaultMetric.
func ParseMetric(v string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(v))
	if key == "" {
		return DefaultMetric, nil
	}
	for _, info := range metricCatalog {
		if string(info.Key) == key {
			return info.Key, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, v)
}

func (m Metric) Valid() bool {
	for _, info := range metricCatalog {
		if info.Key == m {
			return true
		}
	}
	return false
}

// Field returns the sheet column backing m.
func (m Metric) Field() string {
	for _, info := range metricCatalog {
		if info.Key == m {
			return info.Field
		}
	}
	return ""
}
