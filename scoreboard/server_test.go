package scoreboard

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/status"
)

type fakeSource struct {
	snap engine.Snapshot
	reg  *status.Registry
}

func (f *fakeSource) Snapshot() engine.Snapshot { return f.snap }
func (f *fakeSource) Status() *status.Registry  { return f.reg }

func newTestServer(t *testing.T, src Source) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewServer(src).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestScores(t *testing.T) {
	src := &fakeSource{
		snap: engine.Snapshot{History: []component.GameScore{
			{Score: 30, Date: "2024-01-01T00:00:00Z"},
			{Score: 10, Date: "2024-01-02T00:00:00Z"},
		}},
		reg: status.NewRegistry(),
	}
	ts := newTestServer(t, src)

	var body ScoresResponse
	resp := getJSON(t, ts.URL+"/scores", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type got %q", ct)
	}
	if len(body.Scores) != 2 || body.Scores[0].Score != 30 {
		t.Errorf("scores got %+v", body.Scores)
	}
}

func TestScoresEmptyIsArray(t *testing.T) {
	ts := newTestServer(t, &fakeSource{reg: status.NewRegistry()})

	resp, err := http.Get(ts.URL + "/scores")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if got, want := string(raw), "{\"scores\":[]}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStateFromGame(t *testing.T) {
	game, err := engine.NewGame(nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	ts := newTestServer(t, game)

	var snap engine.Snapshot
	getJSON(t, ts.URL+"/state", &snap)
	if snap.Phase != engine.PhaseWelcome {
		t.Errorf("phase got %q, want %q", snap.Phase, engine.PhaseWelcome)
	}
	if snap.Width <= 0 || snap.Height <= 0 {
		t.Errorf("viewport got %vx%v", snap.Width, snap.Height)
	}
}

func TestStatus(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyTicks).Store(42)
	reg.Strings.Get(status.KeyState).Store("Active")
	ts := newTestServer(t, &fakeSource{reg: reg})

	var body StatusResponse
	getJSON(t, ts.URL+"/status", &body)
	if got := body.Metrics[status.KeyTicks]; got != float64(42) {
		t.Errorf("ticks got %v, want 42", got)
	}
	if got := body.Metrics[status.KeyState]; got != "Active" {
		t.Errorf("state got %v, want Active", got)
	}
	if body.Uptime == "" {
		t.Error("uptime missing")
	}
}

func TestHeartbeatAndUnknownRoute(t *testing.T) {
	ts := newTestServer(t, &fakeSource{reg: status.NewRegistry()})

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp := getJSON(t, ts.URL+tt.path, nil)
		if resp.StatusCode != tt.want {
			t.Errorf("%s got %d, want %d", tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestStopWithoutStart(t *testing.T) {
	if err := NewServer(&fakeSource{}).Stop(); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}
