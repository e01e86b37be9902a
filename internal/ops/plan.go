package ops

import (
	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/journal"
	"github.com/hpungsan/flux/internal/store"
)

// PlanGetOutput contains the result of the PlanGet operation.
type PlanGetOutput struct {
	Plan journal.SafetyPlan `json:"plan"`
}

// PlanGet returns the safety plan loaded at session start (the built-in
// template when the user never saved one).
func PlanGet(s *Session) (*PlanGetOutput, error) {
	return &PlanGetOutput{Plan: s.Plan()}, nil
}

// PlanSaveInput contains parameters for the PlanSave operation.
type PlanSaveInput struct {
	Plan journal.SafetyPlan
}

// PlanSaveOutput contains the result of the PlanSave operation.
type PlanSaveOutput struct {
	Contacts  int `json:"contacts"`
	Reminders int `json:"reminders"`
}

// PlanSave replaces the safety plan. This is the only explicit save path
// for the plan singleton; unlike records it is never auto-persisted.
func PlanSave(s *Session, input PlanSaveInput) (*PlanSaveOutput, error) {
	if len(input.Plan.Contacts) == 0 && len(input.Plan.Reminders) == 0 {
		return nil, errors.NewInvalidRequest("plan must have at least one contact or reminder")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := store.SavePlan(s.db, input.Plan); err != nil {
		return nil, err
	}
	s.plan = input.Plan

	return &PlanSaveOutput{
		Contacts:  len(input.Plan.Contacts),
		Reminders: len(input.Plan.Reminders),
	}, nil
}
