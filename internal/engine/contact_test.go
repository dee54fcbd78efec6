package engine

import (
	"strings"
	"testing"
)

func TestContactInfoAllCoreItems(t *testing.T) {
	text := "Jane Doe | jane@example.com | (555) 123-4567 | linkedin.com/in/janedoe"
	res := ContactInfo(text)

	if res.Score < 90 {
		t.Fatalf("expected score >= 90 with all core items, got %.1f", res.Score)
	}
	for _, want := range []string{"✓ Email address found", "✓ Phone number found", "✓ LinkedIn profile found"} {
		if !containsLine(res.Feedback, want) {
			t.Fatalf("expected feedback %q, got %v", want, res.Feedback)
		}
	}
}

func TestContactInfoScoreCappedAt100(t *testing.T) {
	text := "jane@example.com (555) 123-4567 linkedin.com/in/jane github.com/jane www.jane.dev"
	res := ContactInfo(text)
	if res.Score != 100 {
		t.Fatalf("expected capped score 100, got %.1f", res.Score)
	}
}

func TestContactInfoMissingEverything(t *testing.T) {
	res := ContactInfo("A resume without any contact details at all.")
	if res.Score != 0 {
		t.Fatalf("expected score 0, got %.1f", res.Score)
	}
	for _, want := range []string{"✗ Missing email address", "✗ Missing phone number", "✗ LinkedIn profile missing"} {
		if !containsLine(res.Feedback, want) {
			t.Fatalf("expected feedback %q, got %v", want, res.Feedback)
		}
	}
}

func TestContactInfoSingleItem(t *testing.T) {
	res := ContactInfo("reach me at someone@mail.org")
	if res.Score < 33 || res.Score > 34 {
		t.Fatalf("expected roughly one third, got %.2f", res.Score)
	}
	if present, _ := res.Detail["email"].(bool); !present {
		t.Fatalf("expected email detail true, got %v", res.Detail)
	}
}

func TestContactInfoPhoneVariants(t *testing.T) {
	for _, text := range []string{
		"call +1 555-123-4567",
		"call 555.123.4567",
		"call (555) 123 4567",
		"call 5551234567",
	} {
		res := ContactInfo(text)
		if present, _ := res.Detail["phone"].(bool); !present {
			t.Fatalf("expected phone detected in %q", text)
		}
	}
}

func containsLine(lines []string, want string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}
