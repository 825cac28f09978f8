package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/streak/pkg/auth"
	"tableflip.dev/streak/pkg/habit"
)

type fakeTokens struct {
	session *auth.Session
}

func (f *fakeTokens) Current() (*auth.Session, bool) {
	if f.session == nil {
		return nil, false
	}
	return f.session, true
}

func signedIn() *fakeTokens {
	return &fakeTokens{session: &auth.Session{AccessToken: "tok-1", UserID: "user-1"}}
}

type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

func recordingServer(t *testing.T, respond func(r recordedRequest, w http.ResponseWriter)) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var reqs []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec := recordedRequest{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: body}
		reqs = append(reqs, rec)
		if respond != nil {
			respond(rec, w)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func TestFetchOrdersBySortOrder(t *testing.T) {
	srv, reqs := recordingServer(t, func(r recordedRequest, w http.ResponseWriter) {
		rows := []Row{
			{UserID: "user-1", Title: "Read", Description: "daily reading", Color: "#112233", SortOrder: 0,
				Data: RowData{CompletedDates: []string{"2025-01-01"}, CreatedAt: "2024-12-01T00:00:00Z"}},
			{UserID: "user-1", Title: "Run", Description: "morning run", Color: "#445566", SortOrder: 1,
				Data: RowData{}},
		}
		_ = json.NewEncoder(w).Encode(rows)
	})

	a := &Adapter{Client: NewClient(srv.URL, "anon"), Session: signedIn()}
	habits := a.Fetch(context.Background())
	if len(habits) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(habits))
	}
	if habits[0].Title != "Read" || habits[1].Title != "Run" {
		t.Fatalf("row order lost")
	}
	if !habits[0].CompletedDates.Has("2025-01-01") {
		t.Fatalf("completed dates lost")
	}
	if habits[0].ID == "" || habits[1].CreatedAt.IsZero() {
		t.Fatalf("fetched habits must be fully migrated")
	}

	got := (*reqs)[0]
	if got.method != http.MethodGet || got.path != "/rest/v1/habits" {
		t.Fatalf("unexpected request: %s %s", got.method, got.path)
	}
	if got.query != "order=sort_order.asc&select=%2A" {
		t.Fatalf("expected sort_order ordering, got %q", got.query)
	}
}

func TestFetchSignedOutSkipsNetwork(t *testing.T) {
	srv, reqs := recordingServer(t, nil)
	a := &Adapter{Client: NewClient(srv.URL, "anon"), Session: &fakeTokens{}}
	if habits := a.Fetch(context.Background()); len(habits) != 0 {
		t.Fatalf("expected empty list when signed out")
	}
	if len(*reqs) != 0 {
		t.Fatalf("signed-out fetch must not issue a request")
	}
}

func TestFetchErrorDegradesToEmpty(t *testing.T) {
	srv, _ := recordingServer(t, func(r recordedRequest, w http.ResponseWriter) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	a := &Adapter{Client: NewClient(srv.URL, "anon"), Session: signedIn()}
	if habits := a.Fetch(context.Background()); len(habits) != 0 {
		t.Fatalf("fetch error should degrade to empty list")
	}
}

func TestSaveDeletesThenReinserts(t *testing.T) {
	srv, reqs := recordingServer(t, nil)
	a := &Adapter{Client: NewClient(srv.URL, "anon"), Session: signedIn()}

	mk := func(title string) *habit.Habit {
		h, err := habit.New(title, title+" habit", "#112233", "", habit.Now())
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		return h
	}
	list := []*habit.Habit{mk("Read"), mk("Run"), mk("Sleep")}
	list[0].CompletedDates.Add("2025-01-01")

	if err := a.Save(context.Background(), list); err != nil {
		t.Fatalf("save: %v", err)
	}

	if len(*reqs) != 2 {
		t.Fatalf("expected delete then insert, got %d requests", len(*reqs))
	}
	del := (*reqs)[0]
	if del.method != http.MethodDelete || del.query != "user_id=eq.user-1" {
		t.Fatalf("expected delete scoped to owner, got %s ?%s", del.method, del.query)
	}
	ins := (*reqs)[1]
	if ins.method != http.MethodPost {
		t.Fatalf("expected bulk insert, got %s", ins.method)
	}
	var rows []Row
	if err := json.Unmarshal(ins.body, &rows); err != nil {
		t.Fatalf("insert body: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.SortOrder != i {
			t.Fatalf("sort_order must be the list index: row %d has %d", i, row.SortOrder)
		}
		if row.UserID != "user-1" {
			t.Fatalf("rows must be owned by the session user")
		}
	}
	if rows[0].Data.CompletedDates[0] != "2025-01-01" {
		t.Fatalf("completion data missing from payload")
	}
}

func TestSaveSignedOutIsNoOp(t *testing.T) {
	srv, reqs := recordingServer(t, nil)
	a := &Adapter{Client: NewClient(srv.URL, "anon"), Session: &fakeTokens{}}
	if err := a.Save(context.Background(), nil); err != nil {
		t.Fatalf("signed-out save should no-op, got %v", err)
	}
	if len(*reqs) != 0 {
		t.Fatalf("signed-out save must not issue a request")
	}
}

func TestUnauthorizedSurfacesSentinel(t *testing.T) {
	srv, _ := recordingServer(t, func(r recordedRequest, w http.ResponseWriter) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"401","message":"JWT expired"}`))
	})
	c := NewClient(srv.URL, "anon")
	_, err := c.SelectHabits(context.Background(), "stale")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
