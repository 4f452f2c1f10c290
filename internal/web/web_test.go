package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scoresheet/internal/factory"
	"github.com/mcoot/scoresheet/internal/model"
	"github.com/mcoot/scoresheet/internal/testutil"
	"github.com/mcoot/scoresheet/internal/web"
	"github.com/mcoot/scoresheet/internal/web/middleware"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	cookies *cookieJar
}

// newWebTestServer creates a new test server with mocked dependencies:
// the first sheet is AAAAAA and players are player-1, player-2, ...
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	app := factory.NewTestApp()

	router := web.NewRouter(web.RouterConfig{
		Logger:          testutil.NopLogger(),
		SheetController: app.SheetController,
		ScoringService:  app.ScoringService,
		StaticDir:       "static",
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil, false)
}

// post makes a POST request with form data (non-HTMX)
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, false)
}

// postHTMX makes a POST request with form data as an HTMX request
func (ts *webTestServer) postHTMX(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, true)
}

// page loads the score sheet and parses it
func (ts *webTestServer) page() *goquery.Document {
	ts.t.Helper()
	rr := ts.get("/")
	require.Equal(ts.t, http.StatusOK, rr.Code)
	return parseHTML(rr.Body)
}

// followRedirect follows a redirect and returns the response
// Works with both traditional Location headers and HTMX HX-Redirect headers
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("HX-Redirect")
	if location == "" {
		location = rr.Header().Get("Location")
	}
	require.NotEmpty(ts.t, location, "Expected Location or HX-Redirect header for redirect")
	return ts.get(location)
}

// sheet returns the stored state of the browser's sheet
func (ts *webTestServer) sheet() *model.Sheet {
	ts.t.Helper()
	code := ts.cookies.sheetCode()
	require.NotEmpty(ts.t, code, "Expected sheet cookie to be set")
	s, err := ts.app.SheetController.GetSheet(ts.t.Context(), model.SheetCode(code))
	require.NoError(ts.t, err)
	return s
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// sheetCode returns the code held in the sheet cookie
func (j *cookieJar) sheetCode() string {
	if c, ok := j.cookies[middleware.SheetCookieName]; ok {
		return c.Value
	}
	return ""
}

// Helper functions for common test operations

// addPlayer adds a player through the setup form
func (ts *webTestServer) addPlayer(name string) {
	ts.t.Helper()
	rr := ts.post("/players", url.Values{"name": {name}})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after adding player")
}

// startGame starts the game (uses HTMX request)
func (ts *webTestServer) startGame() {
	ts.t.Helper()
	rr := ts.postHTMX("/game/start", nil)
	require.Equal(ts.t, http.StatusNoContent, rr.Code, "Expected 204 No Content after starting game")
	require.Equal(ts.t, "/", rr.Header().Get("HX-Redirect"))
}

// startTwoPlayerGame sets up Alice (player-1) and Bob (player-2) and starts
func (ts *webTestServer) startTwoPlayerGame() {
	ts.t.Helper()
	ts.addPlayer("Alice")
	ts.addPlayer("Bob")
	ts.startGame()
}

// setScores posts score fields as htmx would on change
func (ts *webTestServer) setScores(fields map[string]string) *httptest.ResponseRecorder {
	ts.t.Helper()
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	return ts.postHTMX("/game/scores", form)
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
