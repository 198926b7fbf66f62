package plan

import (
	"strings"
	"testing"
)

func TestCurrentPhase(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "marker followed by phase line",
			text: "# Task Plan\n\n## Current Phase\nPhase 3\n\n## Phases\n",
			want: "Phase 3",
		},
		{
			name: "marker followed by empty line defaults",
			text: "# Task Plan\n\n## Current Phase\n\nPhase 3\n",
			want: "Phase 1",
		},
		{
			name: "no marker defaults",
			text: "# Task Plan\n\n## Phases\n### Phase 1: Research\n",
			want: "Phase 1",
		},
		{
			name: "marker at end of document defaults",
			text: "# Task Plan\n\n## Current Phase",
			want: "Phase 1",
		},
		{
			name: "marker is case insensitive",
			text: "## current phase\nPhase 2\n",
			want: "Phase 2",
		},
		{
			name: "free text after marker is returned as-is",
			text: "## Current Phase\nPhase 2: Plan (blocked on review)\n",
			want: "Phase 2: Plan (blocked on review)",
		},
		{
			name: "empty document defaults",
			text: "",
			want: "Phase 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentPhase(tt.text); got != tt.want {
				t.Errorf("CurrentPhase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountStatuses(t *testing.T) {
	text := strings.Join([]string{
		"# Task Plan",
		"",
		"### Phase 1: Research",
		"**Status:** complete",
		"### Phase 2: Plan",
		"**Status:** complete",
		"### Phase 3: Implement",
		"**Status:** in_progress",
		"### Phase 4: Verify",
		"**Status:** pending",
		"### Phase 5: Ship",
		"**Status:** pending",
	}, "\n")

	got := CountStatuses(text)
	want := Tally{Total: 5, Complete: 2, InProgress: 1, Pending: 2}
	if got != want {
		t.Errorf("CountStatuses() = %+v, want %+v", got, want)
	}
}

func TestCountStatusesZeroMatches(t *testing.T) {
	got := CountStatuses("# Task Plan\n\nNothing here yet.\n")
	if got != (Tally{}) {
		t.Errorf("expected zero tally, got %+v", got)
	}
}

func TestCountStatusesIgnoresCurrentPhaseHeading(t *testing.T) {
	text := "## Current Phase\nPhase 2\n\n### Phase 1: Research\n### Phase 2: Plan\n"
	got := CountStatuses(text)
	if got.Total != 2 {
		t.Errorf("expected 2 phase headings, got %d", got.Total)
	}
}

func TestTallySummary(t *testing.T) {
	tally := Tally{Total: 5, Complete: 2, InProgress: 1, Pending: 2}
	want := "5 phases: 2 complete, 1 in progress, 2 pending"
	if got := tally.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
