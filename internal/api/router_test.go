package api

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cessao-fidc/internal/charts"
	"cessao-fidc/internal/config"
	"cessao-fidc/internal/dashboard"
	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/logging"
	"cessao-fidc/internal/model"
	"cessao-fidc/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// client replays the session cookie like a browser would.
type client struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newTestClient(t *testing.T) *client {
	return &client{t: t, router: newTestRouter(t, config.Default())}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	provider := fixtures.Default()
	store := session.NewStore(time.Minute, func() *dashboard.Dashboard {
		return dashboard.New(dashboard.Options{Provider: provider, DownloadDelay: 20 * time.Millisecond})
	})
	t.Cleanup(store.CloseAll)

	router, err := NewRouter(Deps{
		Config:   cfg,
		Logger:   logging.Nop(),
		Provider: provider,
		Sessions: store,
		Charts:   charts.NewRenderer(provider, charts.NewCache(time.Minute), 400, 300),
	})
	require.NoError(t, err)
	return router
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "cessao_session" {
			c.cookie = ck
		}
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

type notificationBody struct {
	Notification model.Notification `json:"notification"`
}

type notificationsBody struct {
	Notifications []model.Notification `json:"notifications"`
}

type errorBody struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestHealth(t *testing.T) {
	c := newTestClient(t)
	w := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSession_CookieKeepsState(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, c.cookie)
	snap := decode[dashboard.Snapshot](t, w)
	assert.Equal(t, dashboard.TabDataSubmission, snap.ActiveTab)

	w = c.do(http.MethodPut, "/api/v1/tab", map[string]string{"tab": "downloads"})
	require.Equal(t, http.StatusOK, w.Code)

	snap = decode[dashboard.Snapshot](t, c.do(http.MethodGet, "/api/v1/session", nil))
	assert.Equal(t, dashboard.TabDownloads, snap.ActiveTab)

	// a second browser gets its own page
	other := &client{t: t, router: c.router}
	snap = decode[dashboard.Snapshot](t, other.do(http.MethodGet, "/api/v1/session", nil))
	assert.Equal(t, dashboard.TabDataSubmission, snap.ActiveTab)
}

func TestTab_Unknown(t *testing.T) {
	c := newTestClient(t)
	w := c.do(http.MethodPut, "/api/v1/tab", map[string]string{"tab": "relatorios"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNKNOWN_TAB", decode[errorBody](t, w).Error.Code)
}

func TestWidgets_DropPickRemove(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPut, "/api/v1/widgets/cnab/files", map[string]any{
		"modality": "drop",
		"files": []map[string]any{
			{"fileName": "a.txt", "fileSizeBytes": 1024},
			{"fileName": "b.txt", "fileSizeBytes": 2048},
			{"fileName": "c.txt", "fileSizeBytes": 4096},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":3`)

	w = c.do(http.MethodDelete, "/api/v1/widgets/cnab/files/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	snap := decode[dashboard.Snapshot](t, c.do(http.MethodGet, "/api/v1/session", nil))
	require.Len(t, snap.Widgets, 2)
	files := snap.Widgets[0].Files
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Name)
	assert.Equal(t, "c.txt", files[1].Name)

	// pick replaces rather than appends
	w = c.do(http.MethodPut, "/api/v1/widgets/cnab/files", map[string]any{
		"modality": "pick",
		"files":    []map[string]any{{"fileName": "d.cnab", "fileSizeBytes": 10}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestWidgets_ConcurrentSelectionsStayConsistent(t *testing.T) {
	c := newTestClient(t)
	c.do(http.MethodGet, "/api/v1/session", nil)
	require.NotNil(t, c.cookie)

	var wg sync.WaitGroup
	for k := 1; k <= 8; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			files := make([]map[string]any, k)
			for i := range files {
				files[i] = map[string]any{"fileName": fmt.Sprintf("r%d-%d.txt", k, i), "fileSizeBytes": 1}
			}
			b, _ := json.Marshal(map[string]any{"modality": "drop", "files": files})
			req := httptest.NewRequest(http.MethodPut, "/api/v1/widgets/cnab/files", strings.NewReader(string(b)))
			req.Header.Set("Content-Type", "application/json")
			req.AddCookie(c.cookie)
			c.router.ServeHTTP(httptest.NewRecorder(), req)
		}(k)
	}
	wg.Wait()

	snap := decode[dashboard.Snapshot](t, c.do(http.MethodGet, "/api/v1/session", nil))
	held := len(snap.Widgets[0].Files)
	require.NotZero(t, held)

	n := decode[notificationBody](t, c.do(http.MethodPost, "/api/v1/submission/transform-batch", nil)).Notification
	assert.Equal(t, fmt.Sprintf("Transformando %d arquivo(s) CNAB para formato Finaxis...", held), n.Description)
}

func TestWidgets_FileNameRequired(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPut, "/api/v1/widgets/cnab/files", map[string]any{
		"modality": "drop",
		"files":    []map[string]any{{"fileName": "ok.txt"}, {"fileSizeBytes": 10}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode[errorBody](t, w).Error.Code)

	snap := decode[dashboard.Snapshot](t, c.do(http.MethodGet, "/api/v1/session", nil))
	assert.Empty(t, snap.Widgets[0].Files)
}

func TestSubmission_ApplyCriteriaWithFormBody(t *testing.T) {
	c := newTestClient(t)

	c.do(http.MethodPatch, "/api/v1/submission/form", map[string]string{"cession_rate_percent": "2.5"})
	w := c.do(http.MethodPost, "/api/v1/submission/apply-criteria", map[string]string{
		"portfolio_date":           "2024-01-15",
		"cession_potential_amount": "1000000",
		"simulation_count":         "3",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Critérios aplicados", decode[notificationBody](t, w).Notification.Title)

	snap := decode[dashboard.Snapshot](t, c.do(http.MethodGet, "/api/v1/session", nil))
	assert.Equal(t, "3", snap.Form.SimulationCount)
	assert.Equal(t, "2.5", snap.Form.CessionRatePercent)
}

func TestWidgets_Errors(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodDelete, "/api/v1/widgets/cnab/files/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "FILE_NOT_FOUND", decode[errorBody](t, w).Error.Code)

	w = c.do(http.MethodDelete, "/api/v1/widgets/cnab/files/x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/api/v1/widgets/boletos/drag", map[string]bool{"over": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodPut, "/api/v1/widgets/cnab/files", map[string]any{"modality": "paste"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWidgets_Drag(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPost, "/api/v1/widgets/notas-fiscais/drag", map[string]bool{"over": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"drag_over":true`)

	w = c.do(http.MethodPost, "/api/v1/widgets/notas-fiscais/drag", map[string]bool{"over": false})
	assert.Contains(t, w.Body.String(), `"drag_over":false`)
}

func TestSubmission_Actions(t *testing.T) {
	c := newTestClient(t)

	n := decode[notificationBody](t, c.do(http.MethodPost, "/api/v1/submission/transform-batch", nil)).Notification
	assert.Equal(t, model.VariantDestructive, n.Variant)
	assert.Equal(t, "Selecione ao menos um arquivo CNAB para transformar.", n.Description)

	c.do(http.MethodPut, "/api/v1/widgets/cnab/files", map[string]any{
		"modality": "pick",
		"files":    []map[string]any{{"fileName": "a.txt", "fileSizeBytes": 1}, {"fileName": "b.txt", "fileSizeBytes": 1}},
	})
	w := c.do(http.MethodPost, "/api/v1/submission/transform-batch", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	n = decode[notificationBody](t, w).Notification
	assert.Equal(t, model.VariantDefault, n.Variant)
	assert.Equal(t, "Transformando 2 arquivo(s) CNAB para formato Finaxis...", n.Description)

	n = decode[notificationBody](t, c.do(http.MethodPost, "/api/v1/submission/send-invoices", nil)).Notification
	assert.True(t, n.IsError())
}

func TestSubmission_ApplyCriteria(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPatch, "/api/v1/submission/form", map[string]string{
		"cession_rate_percent": "2.5",
		"portfolio_date":       "2024-01-15",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"missing":["cession_potential_amount","simulation_count"]`)

	n := decode[notificationBody](t, c.do(http.MethodPost, "/api/v1/submission/apply-criteria", nil)).Notification
	assert.Equal(t, "Campos obrigatórios", n.Title)

	c.do(http.MethodPatch, "/api/v1/submission/form", map[string]string{
		"cession_potential_amount": "1000000",
		"simulation_count":         "3",
	})
	n = decode[notificationBody](t, c.do(http.MethodPost, "/api/v1/submission/apply-criteria", nil)).Notification
	assert.Equal(t, "Critérios aplicados", n.Title)
}

func TestStatisticsAndResults(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/api/v1/statistics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"portfolio_total":1280000`)

	w = c.do(http.MethodPut, "/api/v1/statistics/simulation", map[string]string{"id": "3"})
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodGet, "/api/v1/statistics", nil)
	assert.Contains(t, w.Body.String(), `"simulation":"3"`)
	assert.Contains(t, w.Body.String(), `"portfolio_total":1280000`)

	w = c.do(http.MethodPut, "/api/v1/results/simulation", map[string]string{"id": "9"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodGet, "/api/v1/results", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"simulation":"1"`)
	assert.Contains(t, w.Body.String(), `"total_rejections":600`)
}

func TestStatistics_Chart(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/api/v1/statistics/charts/maturity.svg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<svg")

	w = c.do(http.MethodGet, "/api/v1/statistics/charts/radar.svg", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloads_Flow(t *testing.T) {
	c := newTestClient(t)

	n := decode[notificationBody](t, c.do(http.MethodPost, "/api/v1/downloads", nil)).Notification
	assert.Equal(t, "Selecione uma simulação para realizar o download.", n.Description)

	c.do(http.MethodPut, "/api/v1/downloads/simulation", map[string]string{"id": "2"})
	n = decode[notificationBody](t, c.do(http.MethodPost, "/api/v1/downloads", nil)).Notification
	assert.Equal(t, "Selecione ao menos um tipo de arquivo para download.", n.Description)

	w := c.do(http.MethodPut, "/api/v1/downloads/options/carteira-nova", map[string]bool{"checked": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready":true`)
	assert.Contains(t, w.Body.String(), `"estimated_size_mb":2.5`)

	w = c.do(http.MethodPut, "/api/v1/downloads/options/relatorio", map[string]bool{"checked": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// drain the validation failures
	c.do(http.MethodGet, "/api/v1/notifications", nil)

	n = decode[notificationBody](t, c.do(http.MethodPost, "/api/v1/downloads", nil)).Notification
	assert.Equal(t, "Download iniciado", n.Title)
	assert.Equal(t, "Gerando 1 arquivo(s) da Simulação 2...", n.Description)

	var titles []string
	require.Eventually(t, func() bool {
		body := decode[notificationsBody](t, c.do(http.MethodGet, "/api/v1/notifications", nil))
		for _, n := range body.Notifications {
			titles = append(titles, n.Title)
		}
		return len(titles) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"Download iniciado", "Download concluído"}, titles)
}

func TestSimulations(t *testing.T) {
	c := newTestClient(t)
	w := c.do(http.MethodGet, "/api/v1/simulations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":3`)
}

func TestExports(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/api/v1/exports/1/creditos-recusados", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "simulacao-1-creditos-recusados.xlsx")
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))

	w = c.do(http.MethodGet, "/api/v1/exports/1/creditos-recusados?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "Motivo,Quantidade"))

	w = c.do(http.MethodGet, "/api/v1/exports/7/carteira-nova", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodGet, "/api/v1/exports/1/carteira-nova?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExports_Disabled(t *testing.T) {
	cfg := config.Default()
	cfg.Exports.Enabled = false
	c := &client{t: t, router: newTestRouter(t, cfg)}

	w := c.do(http.MethodGet, "/api/v1/exports/1/carteira-nova", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, w).Error.Code)
}

func TestPage_RendersActiveTabAndToasts(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Plataforma FIDC")
	assert.Contains(t, body, "Upload CNAB (400 ou 600)")

	c.do(http.MethodPost, "/api/v1/submission/send-invoices", nil)
	w = c.do(http.MethodGet, "/?tab=resultados-criterios", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, "Motivos de Recusa")
	assert.Contains(t, body, "Selecione ao menos uma Nota Fiscal para enviar.")
	assert.Contains(t, body, "R$ 980.000")

	// toasts are drained once rendered
	w = c.do(http.MethodGet, "/", nil)
	assert.NotContains(t, w.Body.String(), "Selecione ao menos uma Nota Fiscal para enviar.")
}

func TestPage_Assets(t *testing.T) {
	c := newTestClient(t)
	w := c.do(http.MethodGet, "/assets/app.js", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodGet, "/assets/app.css", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotifications_Stream(t *testing.T) {
	router := newTestRouter(t, config.Default())
	srv := httptest.NewServer(router)
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	hc := &http.Client{Jar: jar}

	resp, err := hc.Post(srv.URL+"/api/v1/submission/transform-batch", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/notifications/stream", nil)
	require.NoError(t, err)
	resp, err = hc.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	var event, data string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event:") {
			event = strings.TrimPrefix(line, "event:")
		}
		if strings.HasPrefix(line, "data:") {
			data = strings.TrimPrefix(line, "data:")
			break
		}
	}
	assert.Equal(t, "notification", event)
	assert.Contains(t, data, "Selecione ao menos um arquivo CNAB para transformar.")
}
