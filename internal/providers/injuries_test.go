package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betscope/betscope/internal/cache"
	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/storage"
)

type fakeInjuryStore struct {
	rows     map[string][]storage.PlayerInjury
	readErr  error
	recorded []string
}

func (f *fakeInjuryStore) TeamInjuries(_ context.Context, teamName string) ([]storage.PlayerInjury, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.rows[teamName], nil
}

func (f *fakeInjuryStore) RecordInjury(_ context.Context, teamName, playerName, _, status, _, _ string) error {
	f.recorded = append(f.recorded, teamName+"/"+playerName+"/"+status)
	return nil
}

func newInjuryClientWithStore(store *fakeInjuryStore, feedURL string, stars []string) *InjuryClient {
	client := NewInjuryClient(nil, cache.NewMemoryStore(cache.TTLs{}), feedURL, stars, testLogger())
	client.reader = store
	client.recorder = store
	return client
}

func TestTeamInjuriesOrderedBySeverity(t *testing.T) {
	store := &fakeInjuryStore{rows: map[string][]storage.PlayerInjury{
		"Kansas City Chiefs": {
			{Player: "Wide Receiver A", Position: "WR", Status: "Questionable", InjuryType: "Ankle"},
			{Player: "Quarterback B", Position: "QB", Status: "Out", InjuryType: "Torn ACL"},
			{Player: "Linebacker C", Position: "LB", Status: "Doubtful", InjuryType: "Hamstring"},
			{Player: "Cornerback D", Position: "CB", Status: "Out", InjuryType: "Concussion"},
		},
	}}
	client := newInjuryClientWithStore(store, "", nil)

	res := client.TeamInjuries(context.Background(), models.TeamIdentity{CanonicalName: "Kansas City Chiefs"})
	require.Equal(t, StatusOK, res.Status)
	require.Len(t, res.Data, 4)

	// Out first (name tiebreak), then Doubtful, then Questionable.
	assert.Equal(t, "Cornerback D", res.Data[0].Player)
	assert.Equal(t, "Quarterback B", res.Data[1].Player)
	assert.Equal(t, "Linebacker C", res.Data[2].Player)
	assert.Equal(t, "Wide Receiver A", res.Data[3].Player)
}

func TestTeamInjuriesStoreFailure(t *testing.T) {
	store := &fakeInjuryStore{readErr: fmt.Errorf("connection refused")}
	client := newInjuryClientWithStore(store, "", nil)

	res := client.TeamInjuries(context.Background(), models.TeamIdentity{CanonicalName: "Kansas City Chiefs"})
	assert.Equal(t, StatusUnavailable, res.Status)
	assert.Contains(t, res.Reason, "store read failed")
}

func TestTeamInjuriesEmptyTeamIsOK(t *testing.T) {
	client := newInjuryClientWithStore(&fakeInjuryStore{}, "", nil)

	res := client.TeamInjuries(context.Background(), models.TeamIdentity{CanonicalName: "Green Bay Packers"})
	require.Equal(t, StatusOK, res.Status)
	assert.Empty(t, res.Data)
}

func TestClassifyImpact(t *testing.T) {
	client := newInjuryClientWithStore(&fakeInjuryStore{}, "", []string{"Star Quarterback"})

	tests := []struct {
		name       string
		status     string
		player     string
		injuryType string
		expected   models.InjuryImpact
	}{
		{"severe injury type", "Questionable", "Someone", "Torn ACL", models.ImpactHigh},
		{"surgery is severe", "Questionable", "Someone", "offseason surgery", models.ImpactHigh},
		{"moderate injury type", "Questionable", "Someone", "Ankle sprain", models.ImpactMedium},
		{"unlisted type is low", "Questionable", "Someone", "Illness", models.ImpactLow},
		{"out overrides to high", "Out", "Someone", "Illness", models.ImpactHigh},
		{"doubtful raises low to medium", "Doubtful", "Someone", "Illness", models.ImpactMedium},
		{"doubtful keeps severe high", "Doubtful", "Someone", "Fractured wrist", models.ImpactHigh},
		{"star bump low to medium", "Questionable", "Star Quarterback", "Illness", models.ImpactMedium},
		{"star bump medium to high", "Questionable", "Star Quarterback", "Knee soreness", models.ImpactHigh},
		{"star case insensitive", "Questionable", "STAR QUARTERBACK", "Illness", models.ImpactMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, client.ClassifyImpact(tt.status, tt.player, tt.injuryType))
		})
	}
}

func TestUpdateInjuriesFromFeed(t *testing.T) {
	feed := `[
	  {"team": "Kansas City Chiefs", "player": "Quarterback B", "position": "QB", "status": "Out", "injury_type": "Torn ACL", "source": "league report"},
	  {"team": "Kansas City Chiefs", "player": "Wide Receiver A", "position": "WR", "status": "Questionable", "injury_type": "Ankle", "source": "league report"},
	  {"team": "", "player": "Nameless", "status": "Out"},
	  {"team": "Green Bay Packers", "player": "", "status": "Out"}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feed))
	}))
	defer srv.Close()

	store := &fakeInjuryStore{}
	client := newInjuryClientWithStore(store, srv.URL, nil)

	require.NoError(t, client.UpdateInjuries(context.Background()))
	// Rows without a team or player are skipped.
	assert.Equal(t, []string{
		"Kansas City Chiefs/Quarterback B/Out",
		"Kansas City Chiefs/Wide Receiver A/Questionable",
	}, store.recorded)
}

func TestUpdateInjuriesFeedErrors(t *testing.T) {
	t.Run("no feed configured", func(t *testing.T) {
		client := newInjuryClientWithStore(&fakeInjuryStore{}, "", nil)
		assert.Error(t, client.UpdateInjuries(context.Background()))
	})

	t.Run("upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := newInjuryClientWithStore(&fakeInjuryStore{}, srv.URL, nil)
		err := client.UpdateInjuries(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("malformed feed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"oops"`))
		}))
		defer srv.Close()

		client := newInjuryClientWithStore(&fakeInjuryStore{}, srv.URL, nil)
		err := client.UpdateInjuries(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed injury feed")
	})
}

func TestSortInjuriesStatusRanking(t *testing.T) {
	injuries := []models.Injury{
		{Player: "B", Status: "Questionable"},
		{Player: "A", Status: "Probable"},
		{Player: "C", Status: "Out"},
		{Player: "D", Status: "Doubtful"},
	}
	SortInjuries(injuries)

	statuses := make([]string, len(injuries))
	for i, inj := range injuries {
		statuses[i] = inj.Status
	}
	assert.Equal(t, []string{"Out", "Doubtful", "Questionable", "Probable"}, statuses)
}
