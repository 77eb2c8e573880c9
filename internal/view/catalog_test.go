package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDiagrams() map[string]DiagramConfig {
	return map[string]DiagramConfig{
		MapDiagramKey: {
			Nodes: []DiagramNode{
				{ID: "intake", X: 12, Y: 40, Rationale: Rationale{Title: "Intake"}},
				{ID: "engine", X: 34, Y: 26, Rationale: Rationale{Title: "Engine"}},
			},
		},
		"copilot": {
			Nodes: []DiagramNode{
				{Rationale: Rationale{Title: "Ingestion"}},
				{Rationale: Rationale{Title: "Decisions"}},
				{Rationale: Rationale{Title: "Rollback"}},
			},
		},
	}
}

func testCases() map[string]Case {
	return map[string]Case{
		"serviceops": {
			Title:   "Service Ops Automation Platform",
			Summary: "Lifecycle orchestration with SLAs and auditability.",
			Meta:    []string{"RBAC", "rbac"},
			Modal: Modal{
				Tags: []string{"Audit Trail"},
				Sections: []Section{
					{Heading: "Problem Context", Paragraph: "Manual coordination breaks at volume."},
					{Heading: "Project Basics", Paragraph: "legacy section"},
					{Heading: "Key Design Decisions", List: []string{"Workflow-driven orchestration"}},
					{Heading: "Design rationale", Diagram: MapDiagramKey},
				},
			},
		},
		"copilot": {
			Title:   "Incident Response Copilot",
			Summary: "Confidence-gated automation.",
			Meta:    []string{"Automation"},
			Modal: Modal{
				Title: "Incident Response Copilot",
				Lead:  "Shorter incidents without acting blind.",
				Sections: []Section{
					{Heading: "Vision", Paragraph: "Gate everything."},
					{Heading: "Design rationale", Diagram: "copilot"},
				},
			},
		},
	}
}

func TestActivateUnknownKeyIsNoOp(t *testing.T) {
	c := NewCatalog(testCases(), testDiagrams())

	c.Activate("nope")
	assert.Nil(t, c.Active())

	c.Activate("serviceops")
	require.NotNil(t, c.Active())

	// A stale key afterwards must not disturb the current selection.
	c.Activate("gone")
	assert.Equal(t, "serviceops", c.Active().Key)
}

func TestActivateDeduplicatesTags(t *testing.T) {
	c := NewCatalog(testCases(), testDiagrams())

	c.Activate("serviceops")

	require.NotNil(t, c.Active())
	assert.Equal(t, []string{"RBAC", "Audit Trail"}, c.Active().Tags)
}

func TestActivateFiltersReservedHeading(t *testing.T) {
	c := NewCatalog(testCases(), testDiagrams())

	c.Activate("serviceops")

	require.NotNil(t, c.Active())
	headings := make([]string, 0)
	for _, sec := range c.Active().Sections {
		headings = append(headings, sec.Heading)
	}
	assert.Equal(t, []string{"Problem Context", "Key Design Decisions", "Design rationale"}, headings)
}

func TestReservedHeadingFilterIsCaseInsensitive(t *testing.T) {
	cases := map[string]Case{
		"x": {
			Title: "X",
			Modal: Modal{
				Sections: []Section{
					{Heading: "Overview", Paragraph: "a"},
					{Heading: "PROJECT BASICS", Paragraph: "b"},
					{Heading: "project basics", Paragraph: "c"},
					{Heading: "Outcome", Paragraph: "d"},
				},
			},
		},
	}
	c := NewCatalog(cases, nil)

	c.Activate("x")

	require.NotNil(t, c.Active())
	require.Len(t, c.Active().Sections, 2)
	assert.Equal(t, "Overview", c.Active().Sections[0].Heading)
	assert.Equal(t, "Outcome", c.Active().Sections[1].Heading)
}

func TestCollapsibleSectionsStartCollapsed(t *testing.T) {
	c := NewCatalog(testCases(), testDiagrams())

	c.Activate("serviceops")

	require.NotNil(t, c.Active())
	for _, sec := range c.Active().Sections {
		if sec.Heading == "Key Design Decisions" {
			assert.True(t, sec.Collapsible)
			assert.True(t, sec.Collapsed)
		} else {
			assert.False(t, sec.Collapsible, "section %q", sec.Heading)
			assert.False(t, sec.Collapsed, "section %q", sec.Heading)
		}
	}
}

func TestToggleSection(t *testing.T) {
	c := NewCatalog(testCases(), testDiagrams())

	c.Activate("serviceops")
	require.NotNil(t, c.Active())

	// index 1 is Key Design Decisions after filtering
	c.ToggleSection(1)
	assert.False(t, c.Active().Sections[1].Collapsed)

	c.ToggleSection(1)
	assert.True(t, c.Active().Sections[1].Collapsed)

	// non-collapsible and out-of-range are ignored
	c.ToggleSection(0)
	assert.False(t, c.Active().Sections[0].Collapsed)
	c.ToggleSection(99)
	c.ToggleSection(-1)
}

func TestActivateReplacesPreviousSelection(t *testing.T) {
	c := NewCatalog(testCases(), testDiagrams())

	c.Activate("serviceops")
	require.Len(t, c.MapDiagrams(), 1)

	// Pin a marker, then switch cases: nothing of the old selection may
	// survive, including the pinned node.
	c.MapDiagrams()[0].Toggle("intake")
	_, active := c.MapDiagrams()[0].ActiveNode()
	require.True(t, active)

	c.Activate("copilot")

	require.NotNil(t, c.Active())
	assert.Equal(t, "copilot", c.Active().Key)
	assert.Equal(t, "Incident Response Copilot", c.Active().Title)
	assert.Equal(t, "Shorter incidents without acting blind.", c.Active().Lead)
	assert.Equal(t, 0, c.Active().ScrollTop)
	assert.Empty(t, c.MapDiagrams())
	require.Len(t, c.TabDiagrams(), 1)
	assert.Equal(t, 0, c.TabDiagrams()[0].Selected())
}

func TestModalTitleFallsBackToCaseTitle(t *testing.T) {
	c := NewCatalog(testCases(), testDiagrams())

	c.Activate("serviceops")

	require.NotNil(t, c.Active())
	assert.Equal(t, "Service Ops Automation Platform", c.Active().Title)
	assert.Equal(t, "Lifecycle orchestration with SLAs and auditability.", c.Active().Lead)
}

func TestClose(t *testing.T) {
	c := NewCatalog(testCases(), testDiagrams())

	c.Activate("serviceops")
	require.NotNil(t, c.Active())

	c.Close()
	assert.Nil(t, c.Active())
	assert.Empty(t, c.MapDiagrams())
	assert.Empty(t, c.TabDiagrams())
}

func TestDedupeTags(t *testing.T) {
	tests := []struct {
		name  string
		meta  []string
		modal []string
		want  []string
	}{
		{
			name:  "case-insensitive collapse keeps first-seen casing",
			meta:  []string{"RBAC", "rbac"},
			modal: []string{"Audit Trail"},
			want:  []string{"RBAC", "Audit Trail"},
		},
		{
			name:  "order preserved across sources",
			meta:  []string{"Shipped", "Production"},
			modal: []string{"production", "Workflow Engine"},
			want:  []string{"Shipped", "Production", "Workflow Engine"},
		},
		{
			name:  "blank and whitespace tags dropped",
			meta:  []string{"", "  "},
			modal: []string{" SLA "},
			want:  []string{"SLA"},
		},
		{
			name: "both sources empty",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedupeTags(tt.meta, tt.modal))
		})
	}
}

func TestReducedMotionPropagates(t *testing.T) {
	c := NewCatalog(testCases(), testDiagrams(), WithReducedMotion())

	c.Activate("serviceops")

	assert.True(t, c.ReducedMotion())
	require.Len(t, c.MapDiagrams(), 1)
	assert.True(t, c.MapDiagrams()[0].ReducedMotion())

	// Selection logic is unchanged under reduced motion.
	c.MapDiagrams()[0].Toggle("intake")
	node, ok := c.MapDiagrams()[0].ActiveNode()
	require.True(t, ok)
	assert.Equal(t, "intake", node.ID)
}
