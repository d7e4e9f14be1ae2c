package prompt

import (
	"strings"
	"testing"

	"structai-be/internal/constant"
)

func TestForRoleTotalMapping(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantSuffix string
	}{
		{
			name:       "student gets stepwise suffix",
			role:       constant.RoleStudent,
			wantSuffix: roleSuffixes[constant.RoleStudent],
		},
		{
			name:       "engineer gets technical suffix",
			role:       constant.RoleEngineer,
			wantSuffix: roleSuffixes[constant.RoleEngineer],
		},
		{
			name:       "oldschool gets legacy-comparison suffix",
			role:       constant.RoleOldschool,
			wantSuffix: roleSuffixes[constant.RoleOldschool],
		},
		{
			name:       "unknown role falls back to engineer",
			role:       "architect",
			wantSuffix: roleSuffixes[constant.RoleEngineer],
		},
		{
			name:       "empty role falls back to engineer",
			role:       "",
			wantSuffix: roleSuffixes[constant.RoleEngineer],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForRole(tt.role)

			if !strings.HasPrefix(got, BasePolicy()) {
				t.Errorf("ForRole(%q) does not start with the base policy", tt.role)
			}
			if !strings.HasSuffix(got, tt.wantSuffix) {
				t.Errorf("ForRole(%q) does not end with the expected suffix", tt.role)
			}

			// Exactly one suffix: base + separator + suffix, nothing else.
			want := BasePolicy() + "\n\n" + tt.wantSuffix
			if got != want {
				t.Errorf("ForRole(%q) = %q, want %q", tt.role, got, want)
			}
		})
	}
}

func TestForRoleDeterministic(t *testing.T) {
	for _, role := range []string{constant.RoleStudent, constant.RoleEngineer, constant.RoleOldschool, "unknown"} {
		first := ForRole(role)
		for i := 0; i < 3; i++ {
			if ForRole(role) != first {
				t.Fatalf("ForRole(%q) is not byte-stable", role)
			}
		}
	}
}
