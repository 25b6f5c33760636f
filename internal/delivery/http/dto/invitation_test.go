package dto

import (
	"encoding/json"
	"testing"
)

func TestRespondInvitationRequestBindsStatusField(t *testing.T) {
	var req RespondInvitationRequest
	if err := json.Unmarshal([]byte(`{"status":"accepted"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Status != "accepted" {
		t.Fatalf(`expected "accepted" from the status field, got %q`, req.Status)
	}

	req = RespondInvitationRequest{}
	if err := json.Unmarshal([]byte(`{"status":"declined"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Status != "declined" {
		t.Fatalf(`expected "declined" from the status field, got %q`, req.Status)
	}
}
