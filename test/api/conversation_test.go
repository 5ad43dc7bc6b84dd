package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type directMessage struct {
	ID              int64  `json:"id"`
	SenderID        int64  `json:"sender_id"`
	ReceiverID      int64  `json:"receiver_id"`
	Message         string `json:"message"`
	OtherEmployeeID int64  `json:"other_employee_id"`
}

func send(t *testing.T, from, to int64, text string) directMessage {
	t.Helper()
	resp := makeRequest(t, http.MethodPost, "/umessages/send", map[string]interface{}{
		"sender_id":   from,
		"receiver_id": to,
		"message":     text,
	}, "")
	require.Equal(t, http.StatusCreated, resp.Code, resp.Message)
	var dm directMessage
	resp.decode(t, &dm)
	return dm
}

func TestConversationFlow(t *testing.T) {
	a := createTestEmployee(t, "Ann")
	b := createTestEmployee(t, "Bo")
	c := createTestEmployee(t, "Cy")

	send(t, a.ID, b.ID, "hi")
	send(t, b.ID, a.ID, "yo")
	last := send(t, c.ID, a.ID, "hey")

	// Thread is symmetric and oldest first
	forward := makeRequest(t, http.MethodGet, fmt.Sprintf("/umessages/%d/%d", a.ID, b.ID), nil, "")
	backward := makeRequest(t, http.MethodGet, fmt.Sprintf("/umessages/%d/%d", b.ID, a.ID), nil, "")
	var ab, ba []directMessage
	forward.decode(t, &ab)
	backward.decode(t, &ba)
	require.Len(t, ab, 2)
	assert.Equal(t, ab, ba)
	assert.Equal(t, "hi", ab[0].Message)
	assert.Equal(t, "yo", ab[1].Message)

	// One summary per counterpart, newest first
	latestResp := makeRequest(t, http.MethodGet, fmt.Sprintf("/umessages/latest/%d", a.ID), nil, "")
	require.Equal(t, http.StatusOK, latestResp.Code)
	var latest []directMessage
	latestResp.decode(t, &latest)
	require.Len(t, latest, 2)
	assert.Equal(t, last.ID, latest[0].ID)
	assert.Equal(t, c.ID, latest[0].OtherEmployeeID)
	assert.Equal(t, "yo", latest[1].Message)
	assert.Equal(t, b.ID, latest[1].OtherEmployeeID)
}

func TestSendToUnknownEmployee(t *testing.T) {
	a := createTestEmployee(t, "Ann")

	resp := makeRequest(t, http.MethodPost, "/umessages/send", map[string]interface{}{
		"sender_id":   a.ID,
		"receiver_id": 999999999,
		"message":     "hello?",
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
