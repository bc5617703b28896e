package loader

import "testing"

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("PIECEWISE_TAB_WIDTH", "2")
	t.Setenv("PIECEWISE_LOG_LEVEL", "debug")
	t.Setenv("PIECEWISE_UI_STATUS_BACKGROUND", "#202020")

	config, err := NewEnvLoader("PIECEWISE_").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := Lookup(config, "logging.level"); !ok || val != "debug" {
		t.Errorf("logging.level = %v, want 'debug'", val)
	}
	if val, ok := Lookup(config, "editor.tabWidth"); !ok || val != int64(2) {
		t.Errorf("editor.tabWidth = %v (%T), want 2", val, val)
	}
	if val, ok := Lookup(config, "ui.statusBackground"); !ok || val != "#202020" {
		t.Errorf("ui.statusBackground = %v, want '#202020'", val)
	}
}

func TestEnvLoader_IgnoresOtherPrefixes(t *testing.T) {
	l := NewEnvLoader("PIECEWISE_")
	l.environ = func() []string {
		return []string{"HOME=/root", "PIECEWISEX=1", "PIECEWISE_EDITOR_SCROLL_OFF=3"}
	}

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(config) != 1 {
		t.Errorf("config = %v, want only the editor section", config)
	}
	if val, ok := Lookup(config, "editor.scrollOff"); !ok || val != int64(3) {
		t.Errorf("editor.scrollOff = %v, want 3", val)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader("PIECEWISE_")

	tests := []struct {
		env  string
		want string
	}{
		{"PIECEWISE_EDITOR_TAB_WIDTH", "editor.tabWidth"},
		{"PIECEWISE_UI_SHOW_LINE_NUMBERS", "ui.showLineNumbers"},
		{"PIECEWISE_LOGGING_LEVEL", "logging.level"},
		{"PIECEWISE_DEBUG", "debug"},
	}
	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"Off", false},
		{"42", int64(42)},
		{"#ffcc00", "#ffcc00"},
		{"info", "info"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
