package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"ahmad@email.com", "petugas.dinas@pemkot.go.id"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("%s should be valid", email)
		}
	}

	invalid := []string{"", "bukan-email", "a@b", "spasi di@email.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("%s should be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("12345"); ok {
		t.Errorf("short password should fail")
	}
	if ok, msg := ValidatePassword("rahasia123"); !ok {
		t.Errorf("valid password rejected: %s", msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  Ahmad Rizki \x00"); got != "Ahmad Rizki" {
		t.Errorf("SanitizeInput = %q", got)
	}
}
