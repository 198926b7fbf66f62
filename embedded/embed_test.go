package embedded

import (
	"strings"
	"testing"
)

func TestTemplatesPresent(t *testing.T) {
	for _, name := range []string{"task_plan.md", "findings.md", "progress.md"} {
		if data := Template(name); len(data) == 0 {
			t.Errorf("expected embedded template for %s", name)
		}
	}
}

func TestTemplateUnknownName(t *testing.T) {
	if Template("nope.md") != nil {
		t.Error("expected nil for unknown template")
	}
}

func TestPlanTemplateMarkers(t *testing.T) {
	text := string(Template("task_plan.md"))
	if !strings.Contains(text, "## Current Phase\nPhase 1") {
		t.Error("plan template must carry the current-phase marker with a phase on the next line")
	}
	if !strings.Contains(text, "### Phase 1") {
		t.Error("plan template must carry numbered phase headings")
	}
}

func TestProgressTemplateTitleFirstLine(t *testing.T) {
	text := string(Template("progress.md"))
	if !strings.HasPrefix(text, "# Progress Log\n") {
		t.Error("progress template must start with the title line")
	}
}
