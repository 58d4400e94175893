package models

import "testing"

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("expected %s to be a valid status", s)
		}
	}
	if AppointmentStatus("Rescheduled").Valid() {
		t.Error("expected unknown status to be invalid")
	}
	if AppointmentStatus("").Valid() {
		t.Error("expected empty status to be invalid")
	}
}

func TestStatusTransitions(t *testing.T) {
	if !StatusPending.CanTransition(StatusCancelled) {
		t.Error("Pending should transition to Cancelled")
	}
	if !StatusConfirmed.CanTransition(StatusCancelled) {
		t.Error("Confirmed should transition to Cancelled")
	}
	if StatusCancelled.CanTransition(StatusCancelled) {
		t.Error("Cancelled is terminal; no transition out of it")
	}
	if StatusPending.CanTransition(StatusConfirmed) {
		t.Error("Confirmed is not reachable through the lifecycle")
	}
}

func TestTerminalStatus(t *testing.T) {
	if StatusPending.Terminal() {
		t.Error("Pending is not terminal")
	}
	if StatusConfirmed.Terminal() {
		t.Error("Confirmed is not terminal")
	}
	if !StatusCancelled.Terminal() {
		t.Error("Cancelled is terminal")
	}
}
