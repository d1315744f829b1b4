package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	roundstatmock "github.com/riskibarqy/fkl-dashboard/internal/mocks/domain/roundstat"
	basecache "github.com/riskibarqy/fkl-dashboard/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestRoundStatSource_CallsUpstreamOncePerTTL(t *testing.T) {
	t.Parallel()

	upstream := roundstatmock.NewSource(t)
	tables := []roundstat.TeamTable{{Team: "Ulsan", Rows: []roundstat.RawRecord{{roundstat.FieldName: "Kim"}}}}
	upstream.On("FetchTeams", mock.Anything).Return(tables, nil).Once()

	source := NewRoundStatSource(upstream, basecache.NewStore[[]roundstat.TeamTable](time.Minute))

	for i := 0; i < 3; i++ {
		got, err := source.FetchTeams(context.Background())
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if len(got) != 1 || got[0].Team != "Ulsan" {
			t.Fatalf("unexpected tables: %+v", got)
		}
		got[0].Rows[0][roundstat.FieldName] = "mutated"
	}

	again, _ := source.FetchTeams(context.Background())
	if again[0].Rows[0][roundstat.FieldName] != "Kim" {
		t.Fatalf("cached rows must not be shared with callers")
	}
}

func TestRoundStatSource_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	upstream := roundstatmock.NewSource(t)
	boom := errors.New("sheets 503")
	upstream.On("FetchTeams", mock.Anything).Return(nil, boom).Once()
	upstream.On("FetchTeams", mock.Anything).Return([]roundstat.TeamTable{{Team: "Ulsan"}}, nil).Once()

	source := NewRoundStatSource(upstream, basecache.NewStore[[]roundstat.TeamTable](time.Minute))

	if _, err := source.FetchTeams(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if _, err := source.FetchTeams(context.Background()); err != nil {
		t.Fatalf("failed fetch must not be cached: %v", err)
	}
	if _, err := source.FetchTeams(context.Background()); err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
}
