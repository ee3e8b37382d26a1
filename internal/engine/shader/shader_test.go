package shader

import "testing"

func TestTerminate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "\x00"},
		{"void main() {}", "void main() {}\x00"},
		{"already\x00", "already\x00"},
	}
	for _, tt := range tests {
		if got := terminate(tt.in); got != tt.want {
			t.Errorf("terminate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInfoLogTrims(t *testing.T) {
	got := infoLog(8, func(buf []byte) {
		copy(buf, "err\n\x00\x00\x00\x00")
	})
	if got != "err" {
		t.Errorf("infoLog = %q, want %q", got, "err")
	}
	if got := infoLog(0, nil); got != "(no info log)" {
		t.Errorf("empty infoLog = %q", got)
	}
}

func TestUniformUnknown(t *testing.T) {
	p := &Program{uniforms: map[string]int32{"ModelView": 3}}
	if loc := p.Uniform("ModelView"); loc != 3 {
		t.Errorf("Uniform(ModelView) = %d, want 3", loc)
	}
	if loc := p.Uniform("missing"); loc != -1 {
		t.Errorf("Uniform(missing) = %d, want -1", loc)
	}
}
