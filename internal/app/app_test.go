package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ridwaanhall/SpaceX/internal/envelope"
	"github.com/ridwaanhall/SpaceX/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statsBody = `{"id":1,"documentId":"stats-doc","totalLaunches":510,"totalLandings":470,"totalReflights":440}`

const dragonBody = `{
	"glass.dragon.gps_time_f64": 1420070400.5,
	"glass.dragon.mission_time_f64": 3725.9,
	"glass.dgn_alt_geod_f64": 408123.4,
	"glass.dgn_speed_f64": 7660.123,
	"glass.predict_iss_r_lla_v3": [51.6412345, -12.3456789, 418000.129],
	"glass.prop_iss_r_ecef_v3": [[1, 2, 3], [4, 5, 6]],
	"vendor.extra": "kept"
}`

func TestHandleStats(t *testing.T) {
	tests := []struct {
		name         string
		response     upstreamResponse
		wantStatus   int
		wantSuccess  bool
		wantMessage  string
		wantWarnings string
	}{
		{
			name:        "Validated",
			response:    upstreamResponse{body: statsBody},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: envelope.MsgStats,
		},
		{
			name:         "Degraded keeps raw payload",
			response:     upstreamResponse{body: `{"id":1,"documentId":"stats-doc","totalLaunches":510}`},
			wantStatus:   http.StatusOK,
			wantSuccess:  true,
			wantMessage:  envelope.MsgStats,
			wantWarnings: "2",
		},
		{
			name:        "Upstream 5xx",
			response:    upstreamResponse{status: http.StatusBadGateway, body: `{}`},
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: envelope.MsgUnavailable,
		},
		{
			name:        "Upstream 404",
			response:    upstreamResponse{status: http.StatusNotFound, body: `{}`},
			wantStatus:  http.StatusNotFound,
			wantMessage: envelope.MsgNotFound,
		},
		{
			name:        "Not JSON",
			response:    upstreamResponse{body: `<html>maintenance</html>`},
			wantStatus:  http.StatusBadRequest,
			wantMessage: envelope.MsgPayload,
		},
		{
			name:        "Array instead of object",
			response:    upstreamResponse{body: `[]`},
			wantStatus:  http.StatusBadRequest,
			wantMessage: envelope.MsgPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := newFakeUpstream(t, map[string]upstreamResponse{"/stats": tt.response})
			router := newTestRouter(t, up, true)

			w := doGet(t, router, "/stats/")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantWarnings, w.Header().Get(envelope.WarningsHeader))
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

			env := decodeEnvelope(t, w)
			assert.Equal(t, tt.wantSuccess, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
			if tt.wantSuccess {
				// Данные совпадают с ответом провайдера в обоих режимах
				assert.JSONEq(t, tt.response.body, string(env.Data))
			} else {
				assert.Equal(t, "null", string(env.Data))
			}
			assert.True(t, notContainsHost(w.Body.String(), up.URL))
		})
	}
}

func TestRouter_TrailingSlashOptional(t *testing.T) {
	up := newFakeUpstream(t, map[string]upstreamResponse{"/stats": {body: statsBody}})
	router := newTestRouter(t, up, true)

	for _, target := range []string{"/stats", "/stats/"} {
		t.Run(target, func(t *testing.T) {
			w := doGet(t, router, target)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestHandleUpcoming(t *testing.T) {
	broken := upcomingItem(3, "upcoming", "starlink", "Falcon 9")
	delete(broken, "title")
	items := []any{
		upcomingItem(1, "upcoming", "starlink", "Falcon 9"),
		upcomingItem(2, "upcoming", "crew", "Falcon 9"),
		broken,
		upcomingItem(4, "completed", "starlink", "Starship"),
	}
	up := newFakeUpstream(t, map[string]upstreamResponse{"/upcoming": {body: jsonString(t, items)}})
	router := newTestRouter(t, up, true)

	t.Run("List", func(t *testing.T) {
		w := doGet(t, router, "/upcoming/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get(envelope.WarningsHeader))

		env := decodeEnvelope(t, w)
		assert.Equal(t, envelope.MsgUpcoming, env.Message)

		var data struct {
			TotalCount    int              `json:"total_count"`
			UpcomingCount int              `json:"upcoming_count"`
			StarlinkCount int              `json:"starlink_count"`
			Launches      []map[string]any `json:"launches"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, 3, data.TotalCount)
		assert.Equal(t, 2, data.UpcomingCount)
		assert.Equal(t, 2, data.StarlinkCount)
		assert.Len(t, data.Launches, 3)
	})

	t.Run("Stats over full raw set", func(t *testing.T) {
		w := doGet(t, router, "/upcoming/stats/")
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		assert.Equal(t, envelope.MsgUpcomingStats, env.Message)

		var data struct {
			TotalLaunches    int            `json:"total_launches"`
			UpcomingLaunches int            `json:"upcoming_launches"`
			StarlinkMissions int            `json:"starlink_missions"`
			Vehicles         map[string]int `json:"vehicles"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, 4, data.TotalLaunches)
		assert.Equal(t, 3, data.UpcomingLaunches)
		assert.Equal(t, 3, data.StarlinkMissions)
		assert.Equal(t, map[string]int{"Falcon 9": 3, "Starship": 1}, data.Vehicles)
	})

	t.Run("By id", func(t *testing.T) {
		tests := []struct {
			target      string
			wantStatus  int
			wantMessage string
		}{
			{"/upcoming/2/", http.StatusOK, envelope.MsgUpcomingItem},
			{"/upcoming/42", http.StatusNotFound, envelope.MsgNotFound},
			{"/upcoming/abc", http.StatusBadRequest, envelope.MsgValidation},
		}
		for _, tt := range tests {
			t.Run(tt.target, func(t *testing.T) {
				w := doGet(t, router, tt.target)
				assert.Equal(t, tt.wantStatus, w.Code)
				assert.Equal(t, tt.wantMessage, decodeEnvelope(t, w).Message)
			})
		}
	})
}

func TestHandleLaunches_Sorted(t *testing.T) {
	items := []any{
		launchItem(1, "a", "2024-01-01", "10:00"),
		launchItem(2, "b", "2024-01-01", "09:00"),
		launchItem(3, "c", "2023-12-31", "23:59"),
	}
	up := newFakeUpstream(t, map[string]upstreamResponse{"/launches": {body: jsonString(t, items)}})
	router := newTestRouter(t, up, true)

	tests := []struct {
		target  string
		wantIDs []int
	}{
		{"/launches/", []int{1, 2, 3}},
		{"/launches?sort=datetime", []int{1, 2, 3}},
		{"/launches/?sort=datetime&order=asc", []int{3, 2, 1}},
		{"/launches?sort=DateTime&order=bogus", []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := doGet(t, router, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			env := decodeEnvelope(t, w)
			assert.Equal(t, envelope.MsgLaunches, env.Message)

			var data struct {
				TotalLaunches int `json:"total_launches"`
				Launches      []struct {
					ID int `json:"id"`
				} `json:"launches"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, 3, data.TotalLaunches)
			ids := make([]int, len(data.Launches))
			for i, l := range data.Launches {
				ids[i] = l.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestHandleLaunch(t *testing.T) {
	detail := launchItem(11, "crew-11", "2025-08-01", "15:43:42")
	up := newFakeUpstream(t, map[string]upstreamResponse{"/launches/crew-11": {body: jsonString(t, detail)}})
	router := newTestRouter(t, up, true)

	t.Run("Found", func(t *testing.T) {
		w := doGet(t, router, "/launches/crew-11/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, envelope.MsgLaunch, decodeEnvelope(t, w).Message)
		assert.Equal(t, 1, up.hitCount("/launches/crew-11"))
	})

	t.Run("Unknown link", func(t *testing.T) {
		w := doGet(t, router, "/launches/crew-99")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid link never reaches upstream", func(t *testing.T) {
		w := doGet(t, router, "/launches/bad.link")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, envelope.MsgValidation, decodeEnvelope(t, w).Message)
		assert.Zero(t, up.hitCount("/launches/bad.link"))
	})
}

func TestHandleDragon(t *testing.T) {
	up := newFakeUpstream(t, map[string]upstreamResponse{"/dragon": {body: dragonBody}})
	router := newTestRouter(t, up, true)

	t.Run("Telemetry keeps provider keys", func(t *testing.T) {
		w := doGet(t, router, "/dragon/")
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		assert.Equal(t, envelope.MsgDragon, env.Message)
		assert.JSONEq(t, dragonBody, string(env.Data))
		assert.Empty(t, w.Header().Get(envelope.WarningsHeader))
	})

	t.Run("Summary", func(t *testing.T) {
		w := doGet(t, router, "/dragon/summary")
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		assert.Equal(t, envelope.MsgDragonSummary, env.Message)

		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "01:02:05", data["mission_time_formatted"])
		assert.Equal(t, 408.12, data["altitude_km"])
		assert.EqualValues(t, 2, data["iss_propagation_points"])
		assert.Nil(t, data["dragon_coordinates"])
	})
}

func TestHandleHealth(t *testing.T) {
	up := newFakeUpstream(t, nil)
	router := newTestRouter(t, up, true)

	tests := []struct {
		target  string
		message string
	}{
		{"/stats/health/", HealthStats},
		{"/upcoming/health", HealthUpcoming},
		{"/launches/health/", HealthLaunches},
		{"/dragon/health", HealthDragon},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := doGet(t, router, tt.target)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"status":"healthy","message":"`+tt.message+`"}`, w.Body.String())
		})
	}
	// Проверки не обращаются к провайдеру
	assert.Zero(t, up.hitCount("/launches/health"))
}

func TestHandlers_DecryptionFailure(t *testing.T) {
	up := newFakeUpstream(t, map[string]upstreamResponse{"/stats": {body: statsBody}})
	router := newRouterWithTokens(t, encryptEndpoints(t, up.URL, "some-other-secret"), true)

	w := doGet(t, router, "/stats")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"`+envelope.MsgDecryption+`","data":null}`, w.Body.String())
	assert.Zero(t, up.hitCount("/stats"))
}
