package navigation

import "testing"

func TestParseContentToken(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantKey  string
		wantBack string
		wantOk   bool
	}{
		{
			name:     "simple leaf",
			data:     "content_EN1990_about|en1990_main",
			wantKey:  "EN1990_about",
			wantBack: "en1990_main",
			wantOk:   true,
		},
		{
			name:     "back token with its own prefix",
			data:     "content_EN1990_s2_req|section_sec2",
			wantKey:  "EN1990_s2_req",
			wantBack: "section_sec2",
			wantOk:   true,
		},
		{
			name:   "missing separator",
			data:   "content_EN1990_about",
			wantOk: false,
		},
		{
			name:   "empty key",
			data:   "content_|en1990_main",
			wantOk: false,
		},
		{
			name:   "empty back token",
			data:   "content_EN1990_about|",
			wantOk: false,
		},
		{
			name:   "wrong prefix",
			data:   "section_sec1",
			wantOk: false,
		},
		{
			name:   "empty string",
			data:   "",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseContentToken(tt.data)
			if ok != tt.wantOk {
				t.Fatalf("ParseContentToken(%q) ok = %v, want %v", tt.data, ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if got.Key != tt.wantKey || got.Back != tt.wantBack {
				t.Errorf("ParseContentToken(%q) = %+v, want key=%q back=%q", tt.data, got, tt.wantKey, tt.wantBack)
			}
		})
	}
}

func TestContentTokenRoundTrip(t *testing.T) {
	token := ContentTokenFor("EN1990_s1_scope", "section_sec1")
	parsed, ok := ParseContentToken(token)
	if !ok {
		t.Fatalf("round trip failed for %q", token)
	}
	if parsed.Key != "EN1990_s1_scope" || parsed.Back != "section_sec1" {
		t.Errorf("round trip = %+v", parsed)
	}
}

func TestRoleFromToken(t *testing.T) {
	tests := []struct {
		data   string
		want   string
		wantOk bool
	}{
		{"user_student", "student", true},
		{"user_engineer", "engineer", true},
		{"user_oldschool", "oldschool", true},
		{"user_", "", false},
		{"mode_study", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := RoleFromToken(tt.data)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("RoleFromToken(%q) = (%q, %v), want (%q, %v)", tt.data, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestSectionFromToken(t *testing.T) {
	tests := []struct {
		data   string
		want   string
		wantOk bool
	}{
		{"section_sec1", "sec1", true},
		{"section_sec6", "sec6", true},
		{"section_", "", false},
		{"content_x|y", "", false},
	}

	for _, tt := range tests {
		got, ok := SectionFromToken(tt.data)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("SectionFromToken(%q) = (%q, %v), want (%q, %v)", tt.data, got, ok, tt.want, tt.wantOk)
		}
	}
}
