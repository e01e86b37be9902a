package errors

import (
	"fmt"
	"testing"
)

func TestFluxError_Error(t *testing.T) {
	err := &FluxError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "record not found",
	}

	expected := "NOT_FOUND: record not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("date must be YYYY-MM-DD")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "date must be YYYY-MM-DD" {
		t.Errorf("Message = %q, want %q", err.Message, "date must be YYYY-MM-DD")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("2024-03-01")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["identifier"] != "2024-03-01" {
		t.Errorf("Details[identifier] = %v, want %q", err.Details["identifier"], "2024-03-01")
	}
}

func TestNewStorageFailure(t *testing.T) {
	err := NewStorageFailure("records", fmt.Errorf("disk full"))

	if err.Code != ErrStorageFailure {
		t.Errorf("Code = %q, want %q", err.Code, ErrStorageFailure)
	}
	if err.Status != 507 {
		t.Errorf("Status = %d, want 507", err.Status)
	}
	if err.Message != "disk full" {
		t.Errorf("Message = %q, want %q", err.Message, "disk full")
	}
	if err.Details["collection"] != "records" {
		t.Errorf("Details[collection] = %v, want %q", err.Details["collection"], "records")
	}
}

func TestNewStorageFailure_NilErr(t *testing.T) {
	err := NewStorageFailure("medications", nil)

	if err.Message != "storage write failed" {
		t.Errorf("Message = %q, want default message", err.Message)
	}
}

func TestNewCorruptData(t *testing.T) {
	err := NewCorruptData("safety_plan", fmt.Errorf("unexpected end of JSON input"))

	if err.Code != ErrCorruptData {
		t.Errorf("Code = %q, want %q", err.Code, ErrCorruptData)
	}
	if err.Status != 500 {
		t.Errorf("Status = %d, want 500", err.Status)
	}
	if err.Details["collection"] != "safety_plan" {
		t.Errorf("Details[collection] = %v, want %q", err.Details["collection"], "safety_plan")
	}
}

func TestNewInternal(t *testing.T) {
	err := NewInternal(fmt.Errorf("boom"))

	if err.Code != ErrInternal {
		t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
	}
	if err.Message != "boom" {
		t.Errorf("Message = %q, want %q", err.Message, "boom")
	}
}

func TestNewInternal_NilErr(t *testing.T) {
	err := NewInternal(nil)

	if err.Message != "internal error" {
		t.Errorf("Message = %q, want %q", err.Message, "internal error")
	}
}

func TestIs(t *testing.T) {
	err := NewNotFound("x")

	if !Is(err, ErrNotFound) {
		t.Error("Is(err, ErrNotFound) = false, want true")
	}
	if Is(err, ErrInternal) {
		t.Error("Is(err, ErrInternal) = true, want false")
	}
	if Is(fmt.Errorf("plain"), ErrNotFound) {
		t.Error("Is(plain error) = true, want false")
	}
	if Is(nil, ErrNotFound) {
		t.Error("Is(nil) = true, want false")
	}
}
