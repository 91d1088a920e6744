package protocol

import (
	"errors"
	"testing"
)

func TestResolvePort(t *testing.T) {
	tests := []struct {
		name string
		want byte
	}{
		{"A", 0x37},
		{"B", 0x38},
		{"AB", 0x39},
		{"C", 0x01},
		{"D", 0x02},
		{"a", 0x37},  // case-insensitive
		{"ab", 0x39}, // case-insensitive
	}
	for _, tt := range tests {
		got, err := ResolvePort(tt.name)
		if err != nil {
			t.Errorf("ResolvePort(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolvePort(%q) = 0x%02x, want 0x%02x", tt.name, got, tt.want)
		}
	}
}

func TestResolvePortUnknown(t *testing.T) {
	for _, name := range []string{"E", "BA", "", "A1"} {
		_, err := ResolvePort(name)
		if !errors.Is(err, ErrUnknownPort) {
			t.Errorf("ResolvePort(%q) error = %v, want ErrUnknownPort", name, err)
		}
	}
}

func TestResolveColorOrdinals(t *testing.T) {
	for i, name := range Colors() {
		got, err := ResolveColor(name)
		if err != nil {
			t.Errorf("ResolveColor(%q) error = %v", name, err)
			continue
		}
		if got != byte(i) {
			t.Errorf("ResolveColor(%q) = %d, want %d", name, got, i)
		}
	}
}

func TestResolveColorCaseInsensitive(t *testing.T) {
	got, err := ResolveColor("LightBlue")
	if err != nil {
		t.Fatalf("ResolveColor(LightBlue) error = %v", err)
	}
	if got != 4 {
		t.Errorf("ResolveColor(LightBlue) = %d, want 4", got)
	}
}

func TestResolveColorUnknown(t *testing.T) {
	_, err := ResolveColor("magenta")
	if !errors.Is(err, ErrUnknownColor) {
		t.Errorf("ResolveColor(magenta) error = %v, want ErrUnknownColor", err)
	}
}
