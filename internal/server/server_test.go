package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	kv, err := OpenKV(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	srv := NewServer(kv, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestTrekCRUD(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/treks", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]domain.Trek](t, resp))

	resp = doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{Name: "Markha Valley Trek", BaseName: "Ladakh", NumberOfClients: 12})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[domain.Trek](t, resp)
	assert.NotEmpty(t, created.ID, "server assigns an id")
	assert.False(t, created.CreatedAt.IsZero())

	resp = doJSON(t, http.MethodGet, ts.URL+"/treks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Markha Valley Trek", decodeBody[domain.Trek](t, resp).Name)

	created.NumberOfClients = 14
	resp = doJSON(t, http.MethodPut, ts.URL+"/treks/"+created.ID, created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[domain.Trek](t, resp)
	assert.Equal(t, 14, updated.NumberOfClients)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "creation time survives updates")

	resp = doJSON(t, http.MethodDelete, ts.URL+"/treks/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/treks/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTrekNotFoundErrorShape(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/treks/nope", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "trek not found", body["error"])
	assert.Contains(t, body["details"], "nope")
}

func TestCreateTrek_RejectsMissingName(t *testing.T) {
	ts := newTestServer(t)
	resp := doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{BaseName: "Ladakh"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTaskBulkUpsertAndList(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{Name: "Nubra Valley Trek"})
	trek := decodeBody[domain.Trek](t, resp)

	tasks := []domain.Task{
		{ID: "t2", Title: "Second", SectionNumber: 1, TaskNumber: 2, Category: domain.CategoryPermits},
		{ID: "t1", Title: "First", SectionNumber: 1, TaskNumber: 1, Category: domain.CategoryPermits},
	}
	resp = doJSON(t, http.MethodPost, ts.URL+"/treks/"+trek.ID+"/tasks/bulk", tasks)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/treks/"+trek.ID+"/tasks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[[]domain.Task](t, resp)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Title, "tasks come back in section/task order")
}

func TestBulkUpsert_RejectsTaskWithoutID(t *testing.T) {
	ts := newTestServer(t)
	resp := doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{Name: "X"})
	trek := decodeBody[domain.Trek](t, resp)

	resp = doJSON(t, http.MethodPost, ts.URL+"/treks/"+trek.ID+"/tasks/bulk", []domain.Task{{Title: "no id"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTask_PartialMergeLeavesOtherFieldsIntact(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{Name: "Markha Valley Trek"})
	trek := decodeBody[domain.Trek](t, resp)

	seeded := []domain.Task{{
		ID:        "mv-permit-1",
		Title:     "IMF Permit",
		Status:    domain.StatusNotStarted,
		Priority:  domain.PriorityHigh,
		InputType: domain.InputFile,
		Category:  domain.CategoryPermits,
	}}
	resp = doJSON(t, http.MethodPost, ts.URL+"/treks/"+trek.ID+"/tasks/bulk", seeded)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	patch := map[string]any{"inputValue": "permit.pdf", "status": "completed"}
	resp = doJSON(t, http.MethodPut, ts.URL+"/treks/"+trek.ID+"/tasks/mv-permit-1", patch)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[domain.Task](t, resp)
	assert.Equal(t, "permit.pdf", got.InputValue)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, "IMF Permit", got.Title, "untouched fields persist")
	assert.Equal(t, domain.PriorityHigh, got.Priority)
}

func TestUpdateTask_RejectsUnknownInputType(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{Name: "Markha Valley Trek"})
	trek := decodeBody[domain.Trek](t, resp)

	seeded := []domain.Task{{ID: "mv-1", Title: "Ration list", InputType: domain.InputTextarea}}
	resp = doJSON(t, http.MethodPost, ts.URL+"/treks/"+trek.ID+"/tasks/bulk", seeded)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, ts.URL+"/treks/"+trek.ID+"/tasks/mv-1", map[string]any{"inputType": "banana"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Contains(t, body["details"], "banana")

	resp = doJSON(t, http.MethodGet, ts.URL+"/treks/"+trek.ID+"/tasks", nil)
	got := decodeBody[[]domain.Task](t, resp)
	require.Len(t, got, 1)
	assert.Equal(t, domain.InputTextarea, got[0].InputType, "rejected patch leaves the record alone")
}

func TestBulkUpsert_RejectsUnknownInputType(t *testing.T) {
	ts := newTestServer(t)
	resp := doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{Name: "X"})
	trek := decodeBody[domain.Trek](t, resp)

	bad := []domain.Task{{ID: "t1", InputType: "spreadsheet"}}
	resp = doJSON(t, http.MethodPost, ts.URL+"/treks/"+trek.ID+"/tasks/bulk", bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTask_UnknownTaskIs404(t *testing.T) {
	ts := newTestServer(t)
	resp := doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{Name: "X"})
	trek := decodeBody[domain.Trek](t, resp)

	resp = doJSON(t, http.MethodPut, ts.URL+"/treks/"+trek.ID+"/tasks/ghost", map[string]any{"inputValue": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteTrek_CascadesToTasks(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{Name: "Doomed Trek"})
	doomed := decodeBody[domain.Trek](t, resp)
	resp = doJSON(t, http.MethodPost, ts.URL+"/treks", domain.Trek{Name: "Survivor Trek"})
	survivor := decodeBody[domain.Trek](t, resp)

	doJSON(t, http.MethodPost, ts.URL+"/treks/"+doomed.ID+"/tasks/bulk", []domain.Task{{ID: "d1"}})
	doJSON(t, http.MethodPost, ts.URL+"/treks/"+survivor.ID+"/tasks/bulk", []domain.Task{{ID: "s1"}})

	resp = doJSON(t, http.MethodDelete, ts.URL+"/treks/"+doomed.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/treks/"+doomed.ID+"/tasks", nil)
	assert.Empty(t, decodeBody[[]domain.Task](t, resp))

	resp = doJSON(t, http.MethodGet, ts.URL+"/treks/"+survivor.ID+"/tasks", nil)
	assert.Len(t, decodeBody[[]domain.Task](t, resp), 1, "other treks keep their tasks")
}

func TestStaff_GetAutoSeedsDefaults(t *testing.T) {
	ts := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/staff", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	staff := decodeBody[domain.StaffDirectory](t, resp)
	assert.Equal(t, seed.DefaultStaff(), staff)

	custom := domain.StaffDirectory{TripLeaders: []string{"Solo Leader"}}
	resp = doJSON(t, http.MethodPut, ts.URL+"/staff", custom)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/staff", nil)
	got := decodeBody[domain.StaffDirectory](t, resp)
	assert.Equal(t, []string{"Solo Leader"}, got.TripLeaders, "put replaces the seeded default")
}

func TestKV_PrefixIsolation(t *testing.T) {
	kv, err := OpenKV(":memory:")
	require.NoError(t, err)
	defer kv.Close()

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "task:a:1", []byte(`1`)))
	require.NoError(t, kv.Set(ctx, "task:a:2", []byte(`2`)))
	require.NoError(t, kv.Set(ctx, "task:ab:1", []byte(`3`)))

	values, err := kv.List(ctx, "task:a:")
	require.NoError(t, err)
	assert.Len(t, values, 2, "prefix match must not leak across the id separator")

	require.NoError(t, kv.DeletePrefix(ctx, "task:a:"))
	remaining, err := kv.List(ctx, "task:")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
