package leadsdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/consultbase/leadsvc/pkg/leadsdk"
	"github.com/stretchr/testify/require"
)

func TestClientCreateLead(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/leads/create-for-consultation", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req leadsdk.CreateLeadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "consult-1", req.ConsultationID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(leadsdk.CreateLeadResponse{
			Success: true,
			LeadID:  "lead-1",
		})
	}))
	defer srv.Close()

	client := leadsdk.NewClient(srv.URL).WithToken("test-token")
	resp, err := client.CreateLeadForConsultation(context.Background(), leadsdk.CreateLeadRequest{
		ConsultationID: "consult-1",
		UserID:         "user-1",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "lead-1", resp.LeadID)
	require.False(t, resp.AlreadyExists)
}

func TestClientDecodesAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodePermissionDenied,
			ErrorDescription: "Only admins can assign consultants",
		})
	}))
	defer srv.Close()

	client := leadsdk.NewClient(srv.URL).WithToken("test-token")
	_, err := client.AssignConsultant(context.Background(), leadsdk.AssignConsultantRequest{
		LeadID:       "lead-1",
		ConsultantID: "consultant-1",
	})
	require.Error(t, err)
	require.True(t, leadsdk.IsCode(err, leadsdk.ErrorCodePermissionDenied))

	apiErr, ok := err.(*leadsdk.APIError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Contains(t, apiErr.Description, "assign consultants")
}

func TestClientNonJSONErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := leadsdk.NewClient(srv.URL)
	_, err := client.ListNotifications(context.Background())
	require.Error(t, err)
	require.True(t, leadsdk.IsCode(err, leadsdk.ErrorCodeInternal))
}
