package content

import (
	"strings"

	"github.com/folio-dev/folio/internal/view"
)

func intPtr(i int) *int { return &i }

// Diagrams is the bundled design-rationale diagram set. The serviceops
// entry is the one map-variant diagram; everything else renders as tabs.
var Diagrams = map[string]view.DiagramConfig{
	"serviceops": {
		Nodes: []view.DiagramNode{
			{
				ID: "intake", X: 12, Y: 40,
				Rationale: view.Rationale{
					Title: "Intake & Job Creation",
					Why:   "Unstructured requests were dropped or delayed, creating SLA misses before work even started.",
					How: []string{
						"Standardized job schema with required fields",
						"Validation and dedupe before persistence",
					},
					Decisions: []string{
						"Enforced schema at the edge instead of cleaning later",
						"Required ownership and SLA tags before a job can exist",
					},
					NotAutomated: []string{
						"Ambiguous requests are queued for human triage",
						"Billing-affecting fields are never auto-populated",
					},
					Production: []string{
						"Validation errors return actionable messages",
						"All creates and updates are logged with request context",
					},
				},
			},
			{
				ID: "statemachine", X: 52, Y: 50,
				Rationale: view.Rationale{
					Title: "Job State Machine",
					Why:   "Free-form status edits led to skipped steps and untracked SLA drift.",
					How: []string{
						"Guards enforce allowed actions per role",
						"Each transition writes an event to the job timeline",
					},
					Decisions: []string{
						"Explicit state machine over free-form updates",
						"Forward-only flow with admin-only corrections",
					},
					NotAutomated: []string{
						"Backward transitions require human sign-off",
					},
					Production: []string{
						"Invalid transitions return clear errors",
						"Every change is audited with before/after state",
					},
				},
			},
			{
				ID: "reliability", X: 86, Y: 60,
				Rationale: view.Rationale{
					Title: "Reliability & Safety Rails",
					Why:   "Operational errors compound quickly without guardrails.",
					How: []string{
						"SLA timers and health checks watch workflow latency",
						"Idempotent commands protect against duplicate submissions",
					},
					Decisions: []string{
						"Fail-closed defaults over optimistic retries",
					},
					NotAutomated: []string{
						"Bulk data corrections require manual confirmation",
					},
					Production: []string{
						"Retries have bounded attempts with alerting on exhaustion",
					},
				},
			},
		},
	},
	"incident": {
		DefaultIndex: intPtr(1),
		Nodes: []view.DiagramNode{
			{
				Rationale: view.Rationale{
					Title: "Signal Ingestion",
					Why:   "Noisy alerts flooded ops and obscured real incidents.",
					How:   []string{"Sources normalized on entry", "Dedupe and thresholds before incident creation"},
				},
			},
			{
				Rationale: view.Rationale{
					Title: "Decision Engine & Guardrails",
					Why:   "Automation without gating led to bad fixes and regressions.",
					How:   []string{"Confidence thresholds gate eligible actions", "Human-in-the-loop below thresholds"},
				},
			},
			{
				Rationale: view.Rationale{
					Title: "Verification & Rollback",
					Why:   "Unverified fixes reintroduced incidents and hid true recovery time.",
					How:   []string{"Post-action verification checks signals", "Rollback routines paired with risky actions"},
				},
			},
		},
	},
}

// caseKey derives a stable catalog key from a title.
func caseKey(title string) string {
	key := strings.ToLower(title)
	if i := strings.IndexAny(key, " -"); i > 0 {
		key = key[:i]
	}
	return key
}

// BuildCases converts fetched case-study records into catalog entries,
// attaching a bundled diagram when the derived key has one.
func BuildCases(items []CaseStudy) map[string]view.Case {
	cases := make(map[string]view.Case, len(items))

	for _, item := range items {
		key := caseKey(item.Title)

		sections := []view.Section{
			{Heading: "Vision", Paragraph: item.Vision},
			{Heading: "Problem Context", Paragraph: item.Problem},
		}
		if len(item.PlannedFeatures) > 0 {
			sections = append(sections, view.Section{Heading: "Planned Features", List: item.PlannedFeatures})
		}
		if len(item.ArchitectureNotes) > 0 {
			sections = append(sections, view.Section{Heading: "Architecture Notes", List: item.ArchitectureNotes, Arch: true})
		}
		if len(item.Challenges) > 0 {
			sections = append(sections, view.Section{Heading: "Challenges", List: item.Challenges})
		}
		if _, ok := Diagrams[key]; ok {
			sections = append(sections, view.Section{Heading: "Design rationale", Diagram: key})
		}

		cases[key] = view.Case{
			Title:   item.Title,
			Summary: item.Vision,
			Meta:    []string{item.Status},
			Modal: view.Modal{
				Title:    item.Title,
				Lead:     item.Vision,
				Sections: sections,
			},
		}
	}

	return cases
}
