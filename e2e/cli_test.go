package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scoresheet/internal/api"
	"github.com/mcoot/scoresheet/internal/factory"
	"github.com/mcoot/scoresheet/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	sheetFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "scoresheet-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/scoresheet")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		sheetFile:  filepath.Join(t.TempDir(), "sheet"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--sheet-file", r.sheetFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = append(os.Environ(), "SCORESHEET_SHEET=")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runSheet(t *testing.T, args ...string) sheetResponse {
	t.Helper()
	output, err := r.run(args...)
	require.NoError(t, err, "output: %s", output)

	var resp sheetResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp), "output: %s", output)
	return resp
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		SheetController: app.SheetController,
		ScoringService:  app.ScoringService,
	})
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:          logger,
		SheetController: app.SheetController,
		ScoringService:  app.ScoringService,
		StaticDir:       filepath.Join(findProjectRoot(t), "internal/web/static"),
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := api.NewServer(mux, api.DefaultServerConfig(), logger)
	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + listener.Addr().String()
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Scores []int  `json:"scores"`
	Total  int    `json:"total"`
	Medal  string `json:"medal"`
}

type sheetResponse struct {
	Code        string           `json:"code"`
	State       string           `json:"state"`
	GameStarted bool             `json:"game_started"`
	CanStart    bool             `json:"can_start"`
	RoundCount  int              `json:"round_count"`
	Players     []playerResponse `json:"players"`
}

type standingsResponse struct {
	Code      string  `json:"code"`
	Leader    *string `json:"leader"`
	Standings []struct {
		Position int    `json:"position"`
		PlayerID string `json:"player_id"`
		Name     string `json:"name"`
		Total    int    `json:"total"`
		Medal    string `json:"medal"`
	} `json:"standings"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_SheetCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	created := cli.runSheet(t, "sheet", "create")
	assert.Len(t, created.Code, 6)
	assert.Equal(t, "setup", created.State)

	// Code is remembered in the sheet file
	got := cli.runSheet(t, "sheet", "get")
	assert.Equal(t, created.Code, got.Code)

	output, err := cli.run("sheet", "delete")
	require.NoError(t, err, "output: %s", output)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Contains(t, msg.Message, created.Code)

	output, err = cli.run("--sheet", created.Code, "sheet", "get")
	require.Error(t, err)
	assert.Contains(t, output, "SHEET_NOT_FOUND")
}

func TestCLI_FullGameFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	cli.runSheet(t, "sheet", "create")
	cli.runSheet(t, "player", "add", "Alice")
	sheet := cli.runSheet(t, "player", "add", "Bob")
	require.Len(t, sheet.Players, 2)
	assert.True(t, sheet.CanStart)
	alice, bob := sheet.Players[0].ID, sheet.Players[1].ID

	sheet = cli.runSheet(t, "game", "start")
	assert.True(t, sheet.GameStarted)
	assert.Equal(t, 1, sheet.RoundCount)

	// Setup commands are ignored once the game is running
	sheet = cli.runSheet(t, "player", "add", "Carol")
	assert.Len(t, sheet.Players, 2)

	// Three rounds of play
	scores := []struct{ alice, bob string }{{"12", "30"}, {"45", "8"}, {"20", "x"}}
	for i, round := range scores {
		if i > 0 {
			cli.runSheet(t, "round", "add")
		}
		n := string(rune('1' + i))
		cli.runSheet(t, "score", "set", alice, n, round.alice)
		sheet = cli.runSheet(t, "score", "set", bob, n, round.bob)
	}

	assert.Equal(t, 3, sheet.RoundCount)
	assert.Equal(t, []int{12, 45, 20}, sheet.Players[0].Scores)
	assert.Equal(t, 77, sheet.Players[0].Total)
	assert.Equal(t, []int{30, 8, 0}, sheet.Players[1].Scores)
	assert.Equal(t, 38, sheet.Players[1].Total)
	assert.Equal(t, "gold", sheet.Players[0].Medal)
	assert.Equal(t, "silver", sheet.Players[1].Medal)

	output, err := cli.run("standings")
	require.NoError(t, err, "output: %s", output)
	var standings standingsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &standings))
	require.Len(t, standings.Standings, 2)
	assert.Equal(t, "Alice", standings.Standings[0].Name)
	assert.Equal(t, 1, standings.Standings[0].Position)
	require.NotNil(t, standings.Leader)
	assert.Equal(t, alice, *standings.Leader)

	// New game keeps the players
	sheet = cli.runSheet(t, "game", "reset")
	assert.False(t, sheet.GameStarted)
	assert.Len(t, sheet.Players, 2)
	assert.Equal(t, 0, sheet.Players[0].Total)
	assert.Empty(t, sheet.Players[0].Scores)
}

func TestCLI_ScoreRoundValidation(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)
	cli.runSheet(t, "sheet", "create")

	output, err := cli.run("score", "set", "someone", "0", "10")
	require.Error(t, err)
	assert.Contains(t, output, "round must be a number from 1")
}

func TestCLI_WebAndAPIShareSheets(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)
	created := cli.runSheet(t, "sheet", "create")
	cli.runSheet(t, "player", "add", "Alice")

	req, err := http.NewRequest(http.MethodGet, ts.addr+"/", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "sheet", Value: created.Code})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		assert.NotEqual(t, "sheet", c.Name, "existing sheet should be reused")
	}
}
