package cmd

import (
	"testing"
	"time"
)

func TestMonthPrefix(t *testing.T) {
	got, err := monthPrefix("2026-03")
	if err != nil {
		t.Fatalf("monthPrefix: %v", err)
	}
	if got != "2026-03" {
		t.Errorf("monthPrefix(\"2026-03\") = %q", got)
	}

	got, err = monthPrefix("")
	if err != nil {
		t.Fatalf("monthPrefix default: %v", err)
	}
	if want := time.Now().Format("2006-01"); got != want {
		t.Errorf("monthPrefix(\"\") = %q, want %q", got, want)
	}

	for _, bad := range []string{"2026", "03-2026", "2026-13", "march"} {
		if _, err := monthPrefix(bad); err == nil {
			t.Errorf("monthPrefix(%q) should fail", bad)
		}
	}
}
