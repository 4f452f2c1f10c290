package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scoresheet/internal/model"
	"github.com/mcoot/scoresheet/internal/storage"
	"github.com/mcoot/scoresheet/internal/web/middleware"
)

func TestUnknownSheetCookieGetsFreshSheet(t *testing.T) {
	ts := newWebTestServer(t)
	ts.cookies.cookies[middleware.SheetCookieName] = &http.Cookie{
		Name:  middleware.SheetCookieName,
		Value: "ZZZZZZ",
	}

	doc := ts.page()

	assert.Equal(t, "AAAAAA", ts.cookies.sheetCode())
	assertContainsText(t, doc, ".sheet-code code", "AAAAAA")
}

func TestExpiredSheetIsReplaced(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startTwoPlayerGame()
	require.NoError(t, ts.app.SheetController.DeleteSheet(t.Context(), "AAAAAA"))

	doc := ts.page()

	assert.Equal(t, "AAAAAB", ts.cookies.sheetCode())
	assertContainsElement(t, doc, "#setup")
	assertContainsText(t, doc, "#setup h2", "Players (0)")
}

func TestIdleSheetExpiresAfterTTL(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startTwoPlayerGame()

	ts.app.MockClock.Advance(storage.DefaultSheetTTL)
	doc := ts.page()

	assert.Equal(t, "AAAAAB", ts.cookies.sheetCode())
	assertContainsElement(t, doc, "#setup")
}

func TestCookielessVisitsDoNotAccumulateSheets(t *testing.T) {
	ts := newWebTestServer(t)

	var codes []model.SheetCode
	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		ts.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		for _, c := range rr.Result().Cookies() {
			if c.Name == middleware.SheetCookieName {
				codes = append(codes, model.SheetCode(c.Value))
			}
		}
	}
	require.Len(t, codes, 100)

	ts.app.MockClock.Advance(storage.DefaultSheetTTL)
	ts.get("/")

	for _, code := range codes {
		exists, err := ts.app.Storage.SheetExists(t.Context(), code)
		require.NoError(t, err)
		assert.False(t, exists, "sheet %s outlived its TTL", code)
	}
}

func TestFlashShownOnce(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("Zoë; O'Neil, Jr")

	doc := ts.page()
	assertContainsText(t, doc, ".flash", "Zoë; O'Neil, Jr added")

	doc = ts.page()
	assertNotContainsElement(t, doc, ".flash")
}

func TestPlayerNamesAreEscaped(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("<b>Mallory</b>")

	doc := ts.page()
	assertNotContainsElement(t, doc, "li.player b")
	assertContainsText(t, doc, "li.player .player-name", "<b>Mallory</b>")
}

func TestStaticFilesServed(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/static/style.css")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "table.scores")
	assert.Empty(t, ts.cookies.sheetCode(), "static files should not create sheets")
}

func TestUnknownRouteNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/lobby/ABC123")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWrongMethodRejected(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/game/start")
	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, rr.Code)
	assert.Empty(t, ts.cookies.sheetCode())
}
