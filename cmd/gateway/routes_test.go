package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/advisor"
	auth "github.com/mind-engage/mindengage-advisor/internal/auth/middleware"
	"github.com/mind-engage/mindengage-advisor/internal/config"
	"github.com/mind-engage/mindengage-advisor/internal/db"
	"github.com/mind-engage/mindengage-advisor/internal/metrics"
	syncx "github.com/mind-engage/mindengage-advisor/internal/sync"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

type gateway struct {
	t       *testing.T
	srv     *httptest.Server
	authSvc *auth.AuthService
	users   auth.UserStore
}

func newGateway(t *testing.T, ping error) *gateway {
	t.Helper()
	cfg := config.Defaults()
	cfg.RateLimitPerMinute = 0

	store := academic.NewInMemoryStore()
	users := auth.NewMemoryUsers()
	authSvc := auth.NewAuthService("test-secret", time.Hour)
	m := metrics.New()
	conn, err := db.Open(context.Background(), db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	events := syncx.NewEventRepo(conn, "test")
	h := newRouter(deps{
		cfg:     cfg,
		authSvc: authSvc,
		users:   users,
		store:   store,
		advisor: advisor.New(store, advisor.WithMetrics(m), advisor.WithEvents(events)),
		metrics: m,
		db:      pinger{err: ping},
		events:  events,
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &gateway{t: t, srv: srv, authSvc: authSvc, users: users}
}

func (g *gateway) do(method, path, token, body string) (int, map[string]any) {
	g.t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, g.srv.URL+path, rd)
	require.NoError(g.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(g.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(g.t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(g.t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (g *gateway) tokenFor(email, role string) string {
	g.t.Helper()
	u, err := g.users.Create(context.Background(), auth.User{Email: email, Role: role})
	require.NoError(g.t, err)
	tok, err := g.authSvc.IssueJWT(u.ID, u.Role)
	require.NoError(g.t, err)
	return tok
}

func (g *gateway) advisorToken() string { return g.tokenFor("advisor@uni.edu", "advisor") }

func TestGateway_StudentFlow(t *testing.T) {
	g := newGateway(t, nil)

	code, body := g.do(http.MethodPost, "/auth/register", "", `{"email":"sam@uni.edu","password":"pa55word!","fullName":"Sam Student","major":"CS"}`)
	require.Equal(t, http.StatusCreated, code, body)
	student := body["access_token"].(string)

	code, body = g.do(http.MethodPost, "/auth/login", "", `{"email":"sam@uni.edu","password":"pa55word!"}`)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["access_token"])

	code, body = g.do(http.MethodPut, "/students/me", student, `{"full_name":"Sam Student","major":"CS","academic_level":"Junior","current_gpa":3.6}`)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, 3.6, body["current_gpa"])

	adv := g.advisorToken()
	var courseIDs []string
	for _, c := range []string{
		`{"course_code":"CS101","course_name":"Intro","department":"CS","credits":3,"difficulty_level":1}`,
		`{"course_code":"CS301","course_name":"Algorithms","department":"CS","credits":4,"difficulty_level":5}`,
	} {
		code, body = g.do(http.MethodPost, "/courses", adv, c)
		require.Equal(t, http.StatusCreated, code, body)
		courseIDs = append(courseIDs, body["id"].(string))
	}

	code, body = g.do(http.MethodGet, "/recommendations", student, "")
	require.Equal(t, http.StatusOK, code)
	recs := body["recommendations"].([]any)
	require.Len(t, recs, 2)
	first := recs[0].(map[string]any)
	assert.Equal(t, "CS101", first["courseCode"])
	assert.Equal(t, "Ensemble (KNN + Decision Tree)", first["modelType"])

	code, body = g.do(http.MethodPost, "/predictions", student, `{"courseId":"`+courseIDs[1]+`"}`)
	require.Equal(t, http.StatusOK, code, body)
	assert.Contains(t, body, "predictedLetterGrade")
	assert.Contains(t, body, "factors")

	code, _ = g.do(http.MethodPost, "/students/me/grades", student, `{"course_id":"`+courseIDs[0]+`","grade":"A","semester":"Fall","year":2024,"attendance_rate":97}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = g.do(http.MethodPost, "/students/me/grades", student, `{"course_id":"`+courseIDs[1]+`","grade":"B-","semester":"Spring","year":2025}`)
	require.Equal(t, http.StatusCreated, code)

	code, body = g.do(http.MethodGet, "/recommendations", student, "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["recommendations"])
	assert.Equal(t, advisor.NoEligibleCoursesMessage, body["message"])

	code, body = g.do(http.MethodGet, "/students/me/grades", student, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["grades"], 2)

	code, _ = g.do(http.MethodPut, "/students/me/disability", student, `{"disability_type":"Visual","preferred_interaction_mode":"screen reader"}`)
	require.Equal(t, http.StatusOK, code)
	code, body = g.do(http.MethodGet, "/students/me", student, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["has_disability"])

	code, _ = g.do(http.MethodPut, "/students/me/preferences", student, `{"interests":["AI"],"goals":"grad school"}`)
	require.Equal(t, http.StatusOK, code)
	code, body = g.do(http.MethodGet, "/students/me/preferences", student, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"AI"}, body["interests"])

	code, body = g.do(http.MethodGet, "/students/me/peers", student, "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["peers"])
}

func TestGateway_Errors(t *testing.T) {
	g := newGateway(t, nil)

	code, body := g.do(http.MethodGet, "/recommendations", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", body["error"].(map[string]any)["code"])

	_, body = g.do(http.MethodPost, "/auth/register", "", `{"email":"kim@uni.edu","password":"pa55word!","fullName":"Kim"}`)
	student := body["access_token"].(string)

	code, body = g.do(http.MethodPost, "/predictions", student, `{"courseId":"missing"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "COURSE_NOT_FOUND", body["error"].(map[string]any)["code"])

	code, body = g.do(http.MethodPost, "/predictions", student, `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", body["error"].(map[string]any)["code"])

	code, _ = g.do(http.MethodPost, "/courses", student, `{"course_code":"X","course_name":"X","department":"X","credits":3,"difficulty_level":3}`)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = g.do(http.MethodGet, "/students/me/disability", student, "")
	assert.Equal(t, http.StatusNotFound, code)

	// an advisor account has no student profile
	adv := g.advisorToken()
	code, body = g.do(http.MethodGet, "/recommendations", adv, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "PROFILE_NOT_FOUND", body["error"].(map[string]any)["code"])
}

func TestGateway_HealthAndMetrics(t *testing.T) {
	g := newGateway(t, nil)
	code, _ := g.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = g.do(http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = g.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, code)

	down := newGateway(t, errors.New("down"))
	code, _ = down.do(http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestGateway_EventLog(t *testing.T) {
	g := newGateway(t, nil)
	_, body := g.do(http.MethodPost, "/auth/register", "", `{"email":"eve@uni.edu","password":"pa55word!","fullName":"Eve"}`)
	student := body["access_token"].(string)
	adv := g.advisorToken()
	code, body := g.do(http.MethodPost, "/courses", adv, `{"course_code":"MA101","course_name":"Calculus","department":"Math","credits":4,"difficulty_level":3}`)
	require.Equal(t, http.StatusCreated, code, body)
	courseID := body["id"].(string)

	code, _ = g.do(http.MethodGet, "/recommendations", student, "")
	require.Equal(t, http.StatusOK, code)
	code, _ = g.do(http.MethodPost, "/predictions", student, `{"courseId":"`+courseID+`"}`)
	require.Equal(t, http.StatusOK, code)

	code, _ = g.do(http.MethodGet, "/events", student, "")
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = g.do(http.MethodGet, "/events", adv, "")
	assert.Equal(t, http.StatusForbidden, code)

	admin := g.tokenFor("root@uni.edu", "admin")
	code, body = g.do(http.MethodGet, "/events?limit=1", admin, "")
	require.Equal(t, http.StatusOK, code, body)
	evs := body["events"].([]any)
	require.Len(t, evs, 1)
	first := evs[0].(map[string]any)
	assert.Equal(t, "RecommendationsServed", first["type"])
	assert.Equal(t, "test", first["site_id"])
	assert.Contains(t, first["data"], "served")

	code, body = g.do(http.MethodGet, "/events?after="+strconv.Itoa(int(body["next"].(float64))), admin, "")
	require.Equal(t, http.StatusOK, code)
	evs = body["events"].([]any)
	require.Len(t, evs, 1)
	assert.Equal(t, "PredictionComputed", evs[0].(map[string]any)["type"])
}
