package domain_test

import (
	"encoding/json"
	"testing"

	"go.arvo.ch/waymark/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	s1 := "Berkshire Valley Road"
	s2 := "Berkshire Valley Road"

	is1 := domain.NewInternedString(s1)
	is2 := domain.NewInternedString(s2)

	// Identical strings share one handle, so the values compare equal.
	if is1 != is2 {
		t.Errorf("Expected interned values to be equal for identical strings, got %v and %v", is1, is2)
	}

	if is1.String() != s1 {
		t.Errorf("Expected String() to return %q, got %q", s1, is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString

	if zero.String() != "" {
		t.Errorf("Expected zero value to render as empty string, got %q", zero.String())
	}

	data, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("Failed to marshal zero InternedString: %v", err)
	}
	if string(data) != `""` {
		t.Errorf(`Expected zero value to marshal as "", got %s`, data)
	}
}

func TestInternedStringJSON(t *testing.T) {
	t.Run("Marshal and Unmarshal preserve string value", func(t *testing.T) {
		original := domain.NewInternedString("101 New Jersey 10, Whippany, NJ")

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Failed to marshal InternedString: %v", err)
		}

		expectedJSON := `"101 New Jersey 10, Whippany, NJ"`
		if string(data) != expectedJSON {
			t.Errorf("Expected JSON %q, got %q", expectedJSON, string(data))
		}

		var unmarshaled domain.InternedString
		err = json.Unmarshal(data, &unmarshaled)
		if err != nil {
			t.Fatalf("Failed to unmarshal InternedString: %v", err)
		}

		if unmarshaled.String() != original.String() {
			t.Errorf("Expected unmarshaled string %q, got %q", original.String(), unmarshaled.String())
		}
	})

	t.Run("Marshal and Unmarshal in struct", func(t *testing.T) {
		type TestStruct struct {
			Name domain.InternedString `json:"name"`
		}

		original := TestStruct{
			Name: domain.NewInternedString("waymark"),
		}

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Failed to marshal struct: %v", err)
		}

		expectedJSON := `{"name":"waymark"}`
		if string(data) != expectedJSON {
			t.Errorf("Expected JSON %q, got %q", expectedJSON, string(data))
		}

		var unmarshaled TestStruct
		err = json.Unmarshal(data, &unmarshaled)
		if err != nil {
			t.Fatalf("Failed to unmarshal struct: %v", err)
		}

		if unmarshaled.Name.String() != original.Name.String() {
			t.Errorf("Expected unmarshaled name %q, got %q", original.Name.String(), unmarshaled.Name.String())
		}
	})
}
