package dtos

import "testing"

func strptr(s string) *string { return &s }

func TestParseUpdateUserInput_NormalizesProjectIDs(t *testing.T) {
	input, err := ParseUpdateUserInput(&UpdateUserRequest{
		Unsubscribes: map[string]bool{"7": true, "12": false},
		Reminders:    []string{"5", "9"},
	})
	if err != nil {
		t.Fatalf("ParseUpdateUserInput failed: %v", err)
	}

	if got, ok := input.Subscriptions.ProjectToggles[7]; !ok || !got {
		t.Error("expected project 7 toggled subscribed")
	}
	if got, ok := input.Subscriptions.ProjectToggles[12]; !ok || got {
		t.Error("expected project 12 toggled unsubscribed")
	}

	if !input.Reminders.Submitted {
		t.Error("expected reminder section marked as submitted")
	}
	if len(input.Reminders.Keep) != 2 || input.Reminders.Keep[0] != 5 || input.Reminders.Keep[1] != 9 {
		t.Errorf("unexpected keep list: %v", input.Reminders.Keep)
	}
}

func TestParseUpdateUserInput_RejectsMalformedIDs(t *testing.T) {
	if _, err := ParseUpdateUserInput(&UpdateUserRequest{
		Unsubscribes: map[string]bool{"seven": true},
	}); err == nil {
		t.Error("expected error for malformed toggle key")
	}

	if _, err := ParseUpdateUserInput(&UpdateUserRequest{
		Reminders: []string{"5", "nine"},
	}); err == nil {
		t.Error("expected error for malformed reminder id")
	}
}

func TestParseUpdateUserInput_AbsentSections(t *testing.T) {
	input, err := ParseUpdateUserInput(&UpdateUserRequest{})
	if err != nil {
		t.Fatalf("ParseUpdateUserInput failed: %v", err)
	}

	if input.Reminders.Submitted {
		t.Error("absent reminder section must not be marked submitted")
	}
	if input.Subscriptions.ProjectToggles != nil {
		t.Error("absent toggle map must stay nil")
	}
	if input.Password != nil {
		t.Error("absent password pair must stay nil")
	}
}

func TestParseUpdateUserInput_PasswordPairDetection(t *testing.T) {
	input, err := ParseUpdateUserInput(&UpdateUserRequest{
		CurrentPassword: strptr("hunter2hunter2"),
	})
	if err != nil {
		t.Fatalf("ParseUpdateUserInput failed: %v", err)
	}
	if input.Password == nil {
		t.Fatal("present current_password must route to the password path")
	}

	input, err = ParseUpdateUserInput(&UpdateUserRequest{
		CurrentPassword: strptr(""),
		Password:        strptr(""),
	})
	if err != nil {
		t.Fatalf("ParseUpdateUserInput failed: %v", err)
	}
	if input.Password != nil {
		t.Error("blank password values must not route to the password path")
	}
}
