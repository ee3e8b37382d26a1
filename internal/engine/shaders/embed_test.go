package shaders

import (
	"strings"
	"testing"
)

func TestSourcesStartWithVersion(t *testing.T) {
	sources := map[string]string{
		"ground":    GroundVertexShader,
		"wireframe": WireframeVertexShader(),
		"solid":     SolidVertexShader(),
		"color":     ColorFragmentShader,
	}
	for name, src := range sources {
		if !strings.HasPrefix(src, "#version 410 core\n") {
			t.Errorf("%s: must start with the version line, got %q", name, firstLine(src))
		}
	}
}

func TestRotatingShadersIncludeSnippet(t *testing.T) {
	for name, src := range map[string]string{
		"wireframe": WireframeVertexShader(),
		"solid":     SolidVertexShader(),
	} {
		if !strings.Contains(src, "vec4 rotate4(vec4 p)") {
			t.Errorf("%s: rotate4 not spliced in", name)
		}
		if strings.Count(src, "#version") != 1 {
			t.Errorf("%s: expected exactly one #version line", name)
		}
		if strings.Index(src, "uniform float sines[6]") > strings.Index(src, "void main()") {
			t.Errorf("%s: snippet must precede main", name)
		}
	}
	if strings.Contains(GroundVertexShader, "rotate4") {
		t.Error("ground shader should not rotate")
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"after version", "#version 410 core\nvoid main() {}\n", "#version 410 core\n\nS\nvoid main() {}\n"},
		{"leading comment", "// c\n#version 410 core\nx", "// c\n#version 410 core\n\nS\nx"},
		{"no version", "void main() {}", "S\nvoid main() {}"},
		{"version only", "#version 410 core", "#version 410 core\nS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.src, "S"); got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
