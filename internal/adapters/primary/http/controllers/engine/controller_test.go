package engineController

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/admin/tg-bots/jyotish-engine/internal/adapters/secondary/ephem/analytic"
	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/chart"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/dasha"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/jyotish"
	"github.com/admin/tg-bots/jyotish-engine/internal/usecases/rules"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := analytic.New()
	engine := jyotish.New(chart.New(provider), dasha.New(provider), rules.New(provider), nil, nil, log)

	router := gin.New()
	New(engine, log).RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func birthBody() domain.BirthDetails {
	lat, lon := 28.6139, 77.209
	birthTime := "14:30"
	return domain.BirthDetails{
		Date:      "1990-03-15",
		Time:      &birthTime,
		Latitude:  &lat,
		Longitude: &lon,
		Timezone:  "Asia/Kolkata",
	}
}

func TestHandleChartOK(t *testing.T) {
	router := newRouter()

	w := postJSON(t, router, "/v1/charts/vedic", birthBody())
	require.Equal(t, http.StatusOK, w.Code)

	var chartData domain.ChartData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chartData))
	require.Len(t, chartData.Planets, len(domain.Planets))
	require.NotNil(t, chartData.Ascendant)
	require.Equal(t, domain.AyanamsaLahiri, chartData.Ayanamsa)
}

func TestHandleChartValidationError(t *testing.T) {
	router := newRouter()
	body := birthBody()
	body.Date = "15/03/1990"

	w := postJSON(t, router, "/v1/charts/vedic", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "validation_error", resp["code"])
	require.Contains(t, resp["error"], "date")
}

func TestHandleChartLocationUnresolved(t *testing.T) {
	router := newRouter()
	body := birthBody()
	body.Latitude = nil
	body.Longitude = nil
	body.Timezone = ""

	w := postJSON(t, router, "/v1/charts/vedic", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "location_unresolved", resp["code"])
}

func TestHandleChartUnsupportedAyanamsa(t *testing.T) {
	router := newRouter()
	body := birthBody()
	body.Ayanamsa = "tropical"

	w := postJSON(t, router, "/v1/charts/vedic", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "unsupported_configuration", resp["code"])
}

func TestHandleChartMalformedBody(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/charts/vedic", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePanchangOK(t *testing.T) {
	router := newRouter()
	lat, lon := 23.1765, 75.7885
	body := domain.PanchangRequest{
		Date:      "2024-06-01",
		Latitude:  &lat,
		Longitude: &lon,
		Timezone:  "Asia/Kolkata",
	}

	w := postJSON(t, router, "/v1/panchang", body)
	require.Equal(t, http.StatusOK, w.Code)

	var panchang domain.PanchangData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &panchang))
	require.NotEmpty(t, panchang.Tithi.Name)
	require.NotEmpty(t, panchang.Nakshatra.Name)
	require.NotEmpty(t, panchang.Vara.Name)
}

func TestHandleDashaOK(t *testing.T) {
	router := newRouter()

	w := postJSON(t, router, "/v1/dasha/vimshottari", birthBody())
	require.Equal(t, http.StatusOK, w.Code)

	var timeline domain.DashaTimeline
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &timeline))
	require.Len(t, timeline.Periods, len(domain.Planets))
}

func TestHandleRulesOK(t *testing.T) {
	router := newRouter()
	asOf := "2024-06-01"
	body := RulesRequest{Birth: birthBody(), AsOfDate: &asOf}

	w := postJSON(t, router, "/v1/analysis/rules", body)
	require.Equal(t, http.StatusOK, w.Code)

	var output domain.RulesOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &output))
	require.Len(t, output.Dignities, len(domain.Planets))
}

func TestHandleRulesBadAsOfDate(t *testing.T) {
	router := newRouter()
	asOf := "June 1st"
	body := RulesRequest{Birth: birthBody(), AsOfDate: &asOf}

	w := postJSON(t, router, "/v1/analysis/rules", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "validation_error", resp["code"])
	require.Contains(t, resp["error"], "as_of_date")
}

func TestHandleMatchOK(t *testing.T) {
	router := newRouter()
	groom := birthBody()
	groom.Date = "1988-11-02"
	body := MatchRequest{Bride: birthBody(), Groom: groom}

	w := postJSON(t, router, "/v1/match/ashtakoot", body)
	require.Equal(t, http.StatusOK, w.Code)

	var score domain.CompatibilityScore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &score))
	require.Len(t, score.Kutas, 8)
	require.Equal(t, domain.AshtakootMaxTotal, score.MaxTotal)
	require.NotEmpty(t, score.Verdict)
}

func TestHandleMatchMissingSide(t *testing.T) {
	router := newRouter()
	body := MatchRequest{Bride: birthBody()}

	w := postJSON(t, router, "/v1/match/ashtakoot", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
