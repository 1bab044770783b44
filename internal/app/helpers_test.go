package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ridwaanhall/SpaceX/internal/endpoint"
	"github.com/ridwaanhall/SpaceX/internal/service"
	"github.com/ridwaanhall/SpaceX/internal/upstream"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "integration-secret"

// upstreamResponse описывает ответ тестового провайдера
type upstreamResponse struct {
	status int
	body   string
}

// fakeUpstream - тестовый провайдер, считающий обращения по путям
type fakeUpstream struct {
	*httptest.Server
	mu     sync.Mutex
	routes map[string]upstreamResponse
	hits   map[string]int
}

func newFakeUpstream(t *testing.T, routes map[string]upstreamResponse) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{routes: routes, hits: map[string]int{}}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[r.URL.Path]++
		resp, ok := f.routes[r.URL.Path]
		f.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if resp.status != 0 {
			w.WriteHeader(resp.status)
		}
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeUpstream) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

var upstreamPaths = map[endpoint.Kind]string{
	endpoint.KindStats:        "/stats",
	endpoint.KindUpcoming:     "/upcoming",
	endpoint.KindLaunches:     "/launches",
	endpoint.KindLaunchDetail: "/launches/",
	endpoint.KindDragon:       "/dragon",
}

// encryptEndpoints шифрует адреса тестового провайдера указанным секретом
func encryptEndpoints(t *testing.T, baseURL, secret string) map[endpoint.Kind]string {
	t.Helper()
	out := make(map[endpoint.Kind]string, len(upstreamPaths))
	for kind, path := range upstreamPaths {
		token, err := endpoint.Encrypt(baseURL+path, secret)
		require.NoError(t, err)
		out[kind] = token
	}
	return out
}

// newTestRouter собирает полный конвейер поверх тестового провайдера
func newTestRouter(t *testing.T, up *fakeUpstream, available bool) chi.Router {
	t.Helper()
	return newRouterWithTokens(t, encryptEndpoints(t, up.URL, testSecret), available)
}

func newRouterWithTokens(t *testing.T, tokens map[endpoint.Kind]string, available bool) chi.Router {
	t.Helper()
	resolver, err := endpoint.NewResolver(testSecret, tokens, zap.NewNop())
	require.NoError(t, err)
	client := upstream.New(upstream.Options{Timeout: 2 * time.Second}, zap.NewNop())
	svc := service.NewService(resolver, client, zap.NewNop())
	return NewRouter(NewApp(svc, zap.NewNop(), available), zap.NewNop())
}

// envelopeBody - конверт ответа с сырым полем data
type envelopeBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doGet(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var env envelopeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func jsonString(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func launchItem(id int, link, date, clock string) map[string]any {
	return map[string]any{
		"id": id, "documentId": "doc-" + link, "title": "Mission " + link, "link": link,
		"callToAction": "watch", "missionStatus": "completed", "vehicle": "Falcon 9",
		"launchSite": "SLC-40", "isOngoing": false, "launchDate": date, "launchTime": clock,
		"missionType": "starlink", "directToCell": false, "isLive": false,
		"showLaunchTimeInsteadOfWindow": "false",
	}
}

func upcomingItem(id int, status, missionType, vehicle string) map[string]any {
	return map[string]any{
		"id": id, "documentId": "up-doc", "title": "Upcoming", "missionStatus": status,
		"missionType": missionType, "vehicle": vehicle, "launchSite": "SLC-40",
		"launchDate": "2025-01-15", "launchTime": "10:30",
	}
}

func notContainsHost(body, host string) bool {
	return !strings.Contains(body, strings.TrimPrefix(host, "http://"))
}
