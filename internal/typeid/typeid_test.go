package typeid

import (
	"strings"
	"testing"
)

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == b {
		t.Fatalf("ids collide: %s", a)
	}
	if !strings.HasPrefix(a, PrefixSession+"_") {
		t.Errorf("id %q lacks prefix", a)
	}
	if err := Validate(a, PrefixSession); err != nil {
		t.Error(err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		prefix string
	}{
		{"wrong prefix", New("client"), PrefixSession},
		{"garbage", "not-an-id", PrefixSession},
		{"empty", "", PrefixSession},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.id, tt.prefix); err == nil {
				t.Errorf("Validate(%q, %q) succeeded", tt.id, tt.prefix)
			}
		})
	}
}
