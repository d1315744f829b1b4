package roundstat

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Normalize concatenates the team tables in order and coerces every numeric field.
// It never fails: values that do not parse as a non-negative number become zero.
func Normalize(tables []TeamTable) Dataset {
	total := 0
	for _, table := range tables {
		total += len(table.Rows)
	}

	out := make(Dataset, 0, total)
	for _, table := range tables {
		for _, raw := range table.Rows {
			rec := NormalizeRecord(table.Team, raw)
			rec.Seq = len(out)
			out = append(out, rec)
		}
	}

	return out
}

func NormalizeRecord(team string, raw RawRecord) Record {
	return Record{
		Name:     ToText(raw[FieldName]),
		Team:     team,
		Position: ToText(raw[FieldPosition]),
		Round:    ToText(raw[FieldRound]),
		Opponent: ToText(raw[FieldOpponent]),
		Stats: Stats{
			Minutes:     ToInt(raw[FieldMinutes]),
			Points:      ToInt(raw[FieldPoints]),
			Goals:       ToInt(raw[FieldGoals]),
			Assists:     ToInt(raw[FieldAssists]),
			CleanSheets: ToInt(raw[FieldCleanSheets]),
			Saves:       ToInt(raw[FieldSaves]),
			Bonus:       ToInt(raw[FieldBonus]),
			YellowCards: ToInt(raw[FieldYellowCards]),
			RedCards:    ToInt(raw[FieldRedCards]),
		},
	}
}

// ToInt coerces a raw cell to a non-negative int, truncating fractions.
func ToInt(v any) int {
	switch x := v.(type) {
	case nil:
		return 0
	case int:
		return clampInt64(int64(x))
	case int8:
		return clampInt64(int64(x))
	case int16:
		return clampInt64(int64(x))
	case int32:
		return clampInt64(int64(x))
	case int64:
		return clampInt64(x)
	case uint:
		return clampUint64(uint64(x))
	case uint8:
		return clampUint64(uint64(x))
	case uint16:
		return clampUint64(uint64(x))
	case uint32:
		return clampUint64(uint64(x))
	case uint64:
		return clampUint64(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case json.Number:
		return parseNumeric(x.String())
	case string:
		return parseNumeric(x)
	default:
		return 0
	}
}

func parseNumeric(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return clampInt64(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return fromFloat(f)
}

func fromFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	t := math.Trunc(f)
	if t <= 0 || t >= math.MaxInt64 {
		return 0
	}
	return clampInt64(int64(t))
}

func clampInt64(n int64) int {
	if n < 0 || n > math.MaxInt {
		return 0
	}
	return int(n)
}

func clampUint64(n uint64) int {
	if n > math.MaxInt {
		return 0
	}
	return int(n)
}

// ToText renders an identity cell as a string. Strings are kept verbatim.
func ToText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
