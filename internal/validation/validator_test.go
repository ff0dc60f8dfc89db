// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package validation

import (
	"strings"
	"testing"
)

type testRequest struct {
	UserEmail  string   `json:"user_email" validate:"notblank,max=32"`
	Conditions []string `json:"conditions" validate:"max=3,dive,max=10"`
	Level      string   `json:"activity_level,omitempty" validate:"omitempty,oneof=beginner intermediate"`
	Age        int      `json:"age" validate:"gte=0,lte=130"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	req := testRequest{
		UserEmail:  "ana@example.com",
		Conditions: []string{"Artrosis"},
		Level:      "beginner",
		Age:        72,
	}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     testRequest
		wantField string
		wantMsg   string
	}{
		{
			name:      "blank email",
			input:     testRequest{UserEmail: "   "},
			wantField: "user_email",
			wantMsg:   "user_email is required",
		},
		{
			name:      "email too long",
			input:     testRequest{UserEmail: strings.Repeat("a", 40)},
			wantField: "user_email",
			wantMsg:   "user_email must be at most 32 characters",
		},
		{
			name:      "too many conditions",
			input:     testRequest{UserEmail: "a@b.c", Conditions: []string{"a", "b", "c", "d"}},
			wantField: "conditions",
			wantMsg:   "conditions must be at most 3 items",
		},
		{
			name:      "unknown level",
			input:     testRequest{UserEmail: "a@b.c", Level: "expert"},
			wantField: "activity_level",
			wantMsg:   "activity_level must be one of: beginner intermediate",
		},
		{
			name:      "age out of range",
			input:     testRequest{UserEmail: "a@b.c", Age: 200},
			wantField: "age",
			wantMsg:   "age must be less than or equal to 130",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if len(err.Errors()) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(err.Errors()), err)
			}
			if got := err.Fields()[0]; got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&testRequest{UserEmail: "", Age: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(err.Errors()))
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected joined messages, got %q", err.Error())
	}
}
