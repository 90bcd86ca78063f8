package normalize

import "testing"

func TestNickname(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercases", "SHADOW", "shadow"},
		{"trims whitespace", "  foxy  ", "foxy"},
		{"trims and lowercases", "\tJonReluht.RAC ", "jonreluht.rac"},
		{"empty stays empty", "", ""},
		{"whitespace only collapses to empty", "   \t\n", ""},
		{"strips null bytes", "sha\x00dow", "shadow"},
		{"keeps decorations", "[TTV] Shadow_AST.pro", "[ttv] shadow_ast.pro"},
		{"unicode preserved", "Ünïcode", "ünïcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nickname(tt.raw); got != tt.want {
				t.Errorf("Nickname(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
