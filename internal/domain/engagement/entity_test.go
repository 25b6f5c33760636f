package engagement

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{ApplicationPending, ApplicationReviewed, true},
		{ApplicationPending, ApplicationAccepted, true},
		{ApplicationPending, ApplicationRejected, true},
		{ApplicationReviewed, ApplicationAccepted, true},
		{ApplicationReviewed, ApplicationRejected, true},
		{ApplicationReviewed, ApplicationPending, false},
		{ApplicationReviewed, ApplicationReviewed, false},
		{ApplicationAccepted, ApplicationPending, false},
		{ApplicationAccepted, ApplicationRejected, false},
		{ApplicationRejected, ApplicationAccepted, false},
		{ApplicationPending, ApplicationPending, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestParseApplicationStatus(t *testing.T) {
	if _, ok := ParseApplicationStatus("reviewed"); !ok {
		t.Fatal("reviewed should parse")
	}
	if _, ok := ParseApplicationStatus("withdrawn"); ok {
		t.Fatal("withdrawn is not a status")
	}
}

func TestParseInvitationDecision(t *testing.T) {
	if _, ok := ParseInvitationDecision("accepted"); !ok {
		t.Fatal("accepted should parse")
	}
	if _, ok := ParseInvitationDecision("declined"); !ok {
		t.Fatal("declined should parse")
	}
	if _, ok := ParseInvitationDecision("pending"); ok {
		t.Fatal("pending is not a decision")
	}
}
