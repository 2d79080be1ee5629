package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stepview/pkg/errors"
	"github.com/matzehuels/stepview/pkg/playback"
	"github.com/matzehuels/stepview/pkg/session"
	"github.com/matzehuels/stepview/pkg/solver"
)

type stubRunner struct {
	res *solver.Result
	err error
}

func (s stubRunner) Run(context.Context, solver.Algorithm, string, []byte) (*solver.Result, error) {
	return s.res, s.err
}

func newTestServer(t *testing.T, runner session.Runner) (*httptest.Server, *playback.ManualClock) {
	t.Helper()
	clock := playback.NewManualClock()
	sess := session.New(session.WithPlayer(playback.New(playback.WithClock(clock))))
	srv := newServer(context.Background(), sess, runner, log.New(io.Discard))
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts, clock
}

func postSelect(t *testing.T, url, algorithm, filename, content string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("algorithm", algorithm)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte(content))
	mw.Close()

	resp, err := http.Post(url+"/api/select", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeSnapshot(t *testing.T, resp *http.Response) session.Snapshot {
	t.Helper()
	defer resp.Body.Close()
	var snap session.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return snap
}

func getStatus(t *testing.T, url string) session.Snapshot {
	t.Helper()
	resp, err := http.Get(url + "/api/status")
	if err != nil {
		t.Fatal(err)
	}
	return decodeSnapshot(t, resp)
}

func TestServeIndex(t *testing.T) {
	ts, _ := newTestServer(t, stubRunner{})
	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "/api/select") {
		t.Errorf("index: %d %q", resp.StatusCode, body)
	}
}

func TestServeSelectAndRun(t *testing.T) {
	res := &solver.Result{Algorithm: solver.BFS, Traversal: &solver.TraversalResult{
		Order: []int{0, 1, 2},
		Edges: []solver.Edge{{0, 1}, {1, 2}},
	}}
	ts, clock := newTestServer(t, stubRunner{res: res})

	resp := postSelect(t, ts.URL, "bfs", "path.txt", "3\n0,1,0\n1,0,1\n0,1,0")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("select status = %d", resp.StatusCode)
	}
	snap := decodeSnapshot(t, resp)
	if snap.Algorithm != "BFS" || snap.Filename != "path.txt" || snap.State != "idle" {
		t.Errorf("after select: %+v", snap)
	}

	resp, err := http.Post(ts.URL+"/api/run", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("run status = %d", resp.StatusCode)
	}
	snap = decodeSnapshot(t, resp)
	if snap.State != "running" || snap.Index != 0 || snap.Length != 2 {
		t.Errorf("after run: %+v", snap)
	}

	clock.Advance(2 * playback.DefaultInterval)
	snap = getStatus(t, ts.URL)
	if snap.State != "done" || snap.Index != 2 || !strings.HasPrefix(snap.Output, "Order: 0 1 2") {
		t.Errorf("after playback: %+v", snap)
	}

	frame, err := http.Get(ts.URL + "/api/frame.svg")
	if err != nil {
		t.Fatal(err)
	}
	defer frame.Body.Close()
	svg, _ := io.ReadAll(frame.Body)
	if ct := frame.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := strings.Count(string(svg), `class="tree-edge"`); got != 2 {
		t.Errorf("frame has %d tree edges, want 2", got)
	}
}

func TestServeRunSolverError(t *testing.T) {
	failure := &errors.StatusError{
		Err:    errors.New(errors.ErrCodeSolver, "Server error:\nbad matrix"),
		Status: http.StatusBadRequest,
	}
	ts, _ := newTestServer(t, stubRunner{err: failure})
	postSelect(t, ts.URL, "dfs", "g.txt", "2\n0 1\n1 0").Body.Close()

	resp, err := http.Post(ts.URL+"/api/run", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "Server error:\nbad matrix" || body.Code != errors.ErrCodeSolver {
		t.Errorf("error body = %+v", body)
	}
	if body.Status.Output != "Server error:\nbad matrix" {
		t.Errorf("output = %q", body.Status.Output)
	}

	if snap := getStatus(t, ts.URL); snap.Algorithm != "DFS" {
		t.Errorf("viewer lost its selection: %+v", snap)
	}
}

func TestServeSelectErrors(t *testing.T) {
	ts, _ := newTestServer(t, stubRunner{})
	tests := []struct {
		name      string
		algorithm string
		filename  string
		content   string
	}{
		{"unknown algorithm", "kruskal", "g.txt", "1"},
		{"empty file", "hull", "p.txt", "   \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postSelect(t, ts.URL, tt.algorithm, tt.filename, tt.content)
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}

	resp, err := http.Post(ts.URL+"/api/run", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("run without selection: status = %d", resp.StatusCode)
	}
}

func TestServeFrameFormats(t *testing.T) {
	ts, _ := newTestServer(t, stubRunner{})
	postSelect(t, ts.URL, "hull", "p.txt", "0 0\n3 1\n1 4").Body.Close()

	resp, err := http.Get(ts.URL + "/api/frame.png?scale=1")
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("png frame: %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/api/frame.gif")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("gif frame status = %d, want 404", resp.StatusCode)
	}
}

func TestServeCancel(t *testing.T) {
	res := &solver.Result{Algorithm: solver.BFS, Traversal: &solver.TraversalResult{
		Order: []int{0, 1},
		Edges: []solver.Edge{{0, 1}},
	}}
	ts, clock := newTestServer(t, stubRunner{res: res})
	postSelect(t, ts.URL, "bfs", "g.txt", "2\n0 1\n1 0").Body.Close()
	run, err := http.Post(ts.URL+"/api/run", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	run.Body.Close()

	resp, err := http.Post(ts.URL+"/api/cancel", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	snap := decodeSnapshot(t, resp)
	if snap.State != "cancelled" {
		t.Errorf("state = %q, want cancelled", snap.State)
	}
	clock.Advance(playback.DefaultInterval)
	if snap := getStatus(t, ts.URL); snap.Index != 0 {
		t.Errorf("frame advanced after cancel: %+v", snap)
	}
}
