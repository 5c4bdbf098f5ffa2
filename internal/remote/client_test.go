package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListTreks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/treks", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.Trek{
			{ID: "t1", Name: "Markha Valley Trek", BaseName: "Ladakh", NumberOfClients: 12},
		})
	}))
	defer srv.Close()

	treks, err := NewClient(srv.URL).ListTreks(context.Background())
	require.NoError(t, err)
	require.Len(t, treks, 1)
	assert.Equal(t, "Markha Valley Trek", treks[0].Name)
}

func TestClient_CreateTrek(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/treks", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var trek domain.Trek
		require.NoError(t, json.NewDecoder(r.Body).Decode(&trek))
		assert.Equal(t, "Hampta Pass Trek", trek.Name)

		trek.ID = "server-assigned"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(trek)
	}))
	defer srv.Close()

	created, err := NewClient(srv.URL).CreateTrek(context.Background(), domain.Trek{Name: "Hampta Pass Trek"})
	require.NoError(t, err)
	assert.Equal(t, "server-assigned", created.ID)
}

func TestClient_UpdateTask_SendsOnlyPatchedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/treks/t1/tasks/task-9", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, map[string]any{
			"inputValue": "permit.pdf",
			"status":     "completed",
		}, raw, "unset patch fields must not appear in the body")

		json.NewEncoder(w).Encode(domain.Task{ID: "task-9", InputValue: "permit.pdf", Status: domain.StatusCompleted})
	}))
	defer srv.Close()

	value := "permit.pdf"
	status := domain.StatusCompleted
	task, err := NewClient(srv.URL).UpdateTask(context.Background(), "t1", "task-9", TaskPatch{
		InputValue: &value,
		Status:     &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "permit.pdf", task.InputValue)
}

func TestClient_BulkUpsertTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/treks/t1/tasks/bulk", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var tasks []domain.Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&tasks))
		assert.Len(t, tasks, 2)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).BulkUpsertTasks(context.Background(), "t1", []domain.Task{
		{ID: "a"}, {ID: "b"},
	})
	assert.NoError(t, err)
}

func TestClient_DeleteTrek(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/treks/t1", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, NewClient(srv.URL).DeleteTrek(context.Background(), "t1"))
}

func TestClient_StaffRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/staff", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(domain.StaffDirectory{TripLeaders: []string{"Tenzin Norbu"}})
		case http.MethodPut:
			var staff domain.StaffDirectory
			require.NoError(t, json.NewDecoder(r.Body).Decode(&staff))
			assert.Equal(t, []string{"Ramesh Thapa"}, staff.Cooks)
			w.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	staff, err := client.GetStaff(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Tenzin Norbu"}, staff.TripLeaders)

	assert.NoError(t, client.PutStaff(context.Background(), domain.StaffDirectory{Cooks: []string{"Ramesh Thapa"}}))
}

func TestClient_DecodesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "trek not found",
			"details": "no record for id t404",
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetTrek(context.Background(), "t404")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "trek not found", apiErr.Message)
	assert.Equal(t, "no record for id t404", apiErr.Details)
}

func TestClient_NonJSONErrorBodyStillSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListTreks(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Message, "gateway exploded")
}

func TestClient_Unavailable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1") // nothing listening
	_, err := client.ListTreks(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.URL).ListTreks(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_BearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]domain.Trek{})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, WithToken("sekrit")).ListTreks(context.Background())
	assert.NoError(t, err)
}
