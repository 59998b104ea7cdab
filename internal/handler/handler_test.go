package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tensorcube/tensorcube-web/config"
	"github.com/tensorcube/tensorcube-web/internal/handler"
	"github.com/tensorcube/tensorcube-web/internal/middleware"
	"github.com/tensorcube/tensorcube-web/internal/route"
	"github.com/tensorcube/tensorcube-web/internal/service"
	"github.com/tensorcube/tensorcube-web/pkg/healthcheck"
	"github.com/tensorcube/tensorcube-web/pkg/localizer"
	"github.com/tensorcube/tensorcube-web/pkg/logging"
	"github.com/tensorcube/tensorcube-web/pkg/utils"
	"github.com/tensorcube/tensorcube-web/pkg/validation"
)

type upstream struct {
	mu      sync.Mutex
	auth    []string
	queries []url.Values
}

func (u *upstream) lastAuth() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.auth) == 0 {
		return ""
	}

	return u.auth[len(u.auth)-1]
}

func (u *upstream) lastQuery() url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.queries) == 0 {
		return url.Values{}
	}

	return u.queries[len(u.queries)-1]
}

func (u *upstream) calls() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return len(u.auth)
}

// newTestApp wires the v1 routes against an API double that answers with
// status, body and the given header pairs.
func newTestApp(t *testing.T, status int, body string, headers ...string) (*fiber.App, *upstream) {
	t.Helper()

	up := &upstream{}
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		up.mu.Lock()
		up.auth = append(up.auth, r.Header.Get("Authorization"))
		up.queries = append(up.queries, r.URL.Query())
		up.mu.Unlock()

		for i := 0; i+1 < len(headers); i += 2 {
			w.Header().Set(headers[i], headers[i+1])
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(api.Close)

	config.NewConfigureManager()
	logger := logging.NewNullLogger()

	bundle, err := localizer.LoadBundle("../../locale", language.English, []language.Tag{language.English, language.Korean})
	require.NoError(t, err)

	app := fiber.New()
	validator := validation.InitValidator()
	app.Use(middleware.LocalizerMiddleware(bundle))
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(utils.ValidatorKey, validator)

		return c.Next()
	})

	health := handler.NewHealthCheckHandler()
	app.Get("/liveness", health.Liveness)
	app.Get("/readiness", health.Readiness)

	factory := service.NewAppServiceFactory(logger, service.NewAPIClient(logger, service.APIClientConfig{BaseURL: api.URL}))
	route.NewRoute(
		handler.NewAppHandler(),
		handler.NewUserHandler(factory),
		handler.NewProjectHandler(factory),
	).SetupRoutes(&route.AppContext{App: app})

	return app, up
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestLogin_ForwardsSetCookie(t *testing.T) {
	app, up := newTestApp(t, http.StatusOK, `{"access_token":"T","token_type":"bearer","username":"u@x.com"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login", strings.NewReader("username=u%40x.com&password=pw"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := strings.Join(resp.Header.Values(fiber.HeaderSetCookie), "\n")
	assert.Contains(t, cookies, "jwt=T; path=/")
	assert.Contains(t, cookies, "username=u%40x.com; path=/")
	assert.Contains(t, strings.ToLower(cookies), "samesite=lax")
	assert.Contains(t, strings.ToLower(cookies), "secure")

	body := decode(t, resp)
	assert.Equal(t, "login success", body["message"])
	assert.Empty(t, up.lastAuth())
}

func TestLogin_RejectedWritesNoCookie(t *testing.T) {
	app, _ := newTestApp(t, http.StatusBadRequest, `{"detail":"Incorrect password"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login", strings.NewReader(`{"username":"bad@x.com","password":"wrongpw"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, resp.Header.Values(fiber.HeaderSetCookie))
	assert.Equal(t, map[string]interface{}{"status": float64(400), "message": "Incorrect password"}, decode(t, resp))
}

func TestLogout_ExpiresCookies(t *testing.T) {
	app, up := newTestApp(t, http.StatusOK, "{}")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/logout", nil)
	req.Header.Set(fiber.HeaderCookie, "jwt=T; username=u%40x.com")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := resp.Header.Values(fiber.HeaderSetCookie)
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Contains(t, c, "expires=Thu, 01 Jan 1970 00:00:00 GMT")
	}
	assert.Zero(t, up.calls())
}

func TestGetProjectDataPairs_UsesCookieToken(t *testing.T) {
	app, up := newTestApp(t, http.StatusOK, `{"total_counts":120,"data_pair_ids":["a","b"]}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/project/datapairs?membership_id=m1&offset=0&pageSize=50", nil)
	req.Header.Set(fiber.HeaderCookie, "jwt=T; username=u%40x.com")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":200,"message":"success","data":{"total_counts":120,"data_pair_ids":["a","b"]}}`, string(body))
	assert.Equal(t, "Bearer T", up.lastAuth())
	assert.Equal(t, "50", up.lastQuery().Get("pageSize"))
}

func TestGetProjectDataPairs_PageSizeBound(t *testing.T) {
	app, up := newTestApp(t, http.StatusOK, "{}")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/project/datapairs?membership_id=m1&offset=0&pageSize=501", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decode(t, resp)
	attrs := body["attributes"].([]interface{})
	require.Len(t, attrs, 1)
	assert.Equal(t, "pageSize", attrs[0].(map[string]interface{})["name"])
	assert.Zero(t, up.calls())
}

func TestProject_UnauthorizedPassesThrough(t *testing.T) {
	app, _ := newTestApp(t, http.StatusUnauthorized, `{"detail":"Not authenticated"}`)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/project", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"status": float64(401), "message": "Unauthorized"}, decode(t, resp))
}

func TestGetProjectDataPairThumbnail_StreamsFile(t *testing.T) {
	app, _ := newTestApp(t, http.StatusOK, "jpeg-bytes", "x-filename", "cat.jpg", "Content-Type", "image/jpeg")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/project/datapair/thumbnail?membership_id=m1&datapair_id=dp1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "cat.jpg", resp.Header.Get("x-filename"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))
}

func TestGetProjectDataPair_MissingQuery(t *testing.T) {
	app, _ := newTestApp(t, http.StatusOK, "bytes")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/project/datapair?membership_id=m1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateProjectClassLabels(t *testing.T) {
	app, up := newTestApp(t, http.StatusOK, `{"class_labels":{"0":"cat"}}`)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/project/class-labels?membership_id=m1", strings.NewReader(`{"value":{"0":"cat"}}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, map[string]interface{}{"class_labels": map[string]interface{}{"0": "cat"}}, body["data"])
	assert.Equal(t, "m1", up.lastQuery().Get("membership_id"))
}

func TestRegister_InvalidInput(t *testing.T) {
	app, up := newTestApp(t, http.StatusOK, "{}")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/register", strings.NewReader(`{"email":"nope"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid input", decode(t, resp)["message"])
	assert.Zero(t, up.calls())
}

func TestMenu_Localized(t *testing.T) {
	app, _ := newTestApp(t, http.StatusOK, "{}")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	req.Header.Set(fiber.HeaderAcceptLanguage, "en-US,en;q=0.9")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]interface{})
	mainList := data["mainList"].([]interface{})
	require.Len(t, mainList, 3)
	assert.Equal(t, "Projects", mainList[0].(map[string]interface{})["label"])

	req = httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	req.Header.Set(fiber.HeaderAcceptLanguage, "ko-KR")

	resp, err = app.Test(req)
	require.NoError(t, err)

	data = decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "프로젝트", data["mainList"].([]interface{})[0].(map[string]interface{})["label"])
}

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApp(t, http.StatusOK, "{}")

	healthcheck.InitHealthCheck()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/readiness", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	healthcheck.ServerShutdown()
	t.Cleanup(healthcheck.InitHealthCheck)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/liveness", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "SHUTDOWN", decode(t, resp)["status"])
}
