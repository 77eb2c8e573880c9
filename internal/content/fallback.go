package content

// Bundled snapshot served whenever a public source is unreachable or
// returns an unusable shape. Kept deliberately small: enough for the page
// to render something, not a mirror of the live content.

var FallbackProfile = Profile{
	Name:        "Jordan Hale",
	RoleTitle:   "Operations Automation Engineer",
	HeroTagline: "Automation systems for end-to-end data operations and workflow execution.",
	ValueLine:   "Systems that absorb complexity and remove manual touch points.",
	About: "I build production-grade automation systems: workflow engines, SLA-aware " +
		"routing, and the dashboards that keep operations teams honest.",
	Skills: []SkillGroup{
		{
			Label: "Backend Development",
			Items: []string{"REST APIs", "Authentication / RBAC", "Workflow engine design", "Rate limiting"},
		},
		{
			Label: "Operational Engineering",
			Items: []string{"SLA-based automation", "Audit trail design", "Incident-ready architecture"},
		},
	},
	Contacts: Contact{
		Email: "hello@example.com",
	},
}

var FallbackProjects = []Project{
	{
		Title:    "ServiceOps - Operations Automation Platform",
		Problem:  "Manual dispatch and status tracking broke down as job volume grew, with SLA misses and no audit trail.",
		Solution: "Workflow-driven orchestration of the full job lifecycle with SLA timers, escalations, and role-scoped dashboards.",
		Stack:    []string{"Workflow Engine", "RBAC", "SLA Timers"},
		Features: []string{
			"Mission-control dashboard with live job states",
			"Scenario runbooks with escalation guardrails",
			"Customer-ready status pages",
		},
		Visibility: "public",
	},
	{
		Title:    "Voice Intake Assistant",
		Problem:  "Phone-based intake consumed dispatcher time and dropped details under load.",
		Solution: "Streaming transcription with intent routing into the same workflow engine, with human fallback.",
		Stack:    []string{"Voice", "Intent Routing"},
		Features: []string{
			"Low-latency streaming responses",
			"Context handoff to human agents",
		},
		Visibility: "public",
	},
}

var FallbackCaseStudies = []CaseStudy{
	{
		Title:   "ServiceOps - Operations Automation Platform",
		Vision:  "A control plane where every dispatch decision and data flow is automated, auditable, and reversible.",
		Problem: "Manual job coordination breaks when volume increases: inconsistent handoffs, unclear ownership, SLA misses.",
		PlannedFeatures: []string{
			"Automated dispatch with SLA-aware queueing",
			"Role-scoped dashboards for admin, vendor, and customer",
			"Immutable audit timeline per job",
		},
		ArchitectureNotes: []string{
			"Workflow engine with retries, fallbacks, and auditable actions",
			"JWT and RBAC with scoped dashboards per role",
			"Blob-backed evidence and SOP document hub",
		},
		Challenges: []string{
			"Keeping SLA clocks correct across reassignment",
			"Making automation failures visible without paging on noise",
		},
		Status: "shipped",
	},
	{
		Title:   "Incident Response Copilot",
		Vision:  "Confidence-gated automation that shortens incidents without ever acting blind.",
		Problem: "Manual runbooks were slow and inconsistent, extending outages.",
		PlannedFeatures: []string{
			"Signal ingestion with dedupe and thresholds",
			"Playbooks with inline human approval on risky steps",
		},
		ArchitectureNotes: []string{
			"Rule-based classification before any automated action",
			"Verification and rollback paired with every risky step",
		},
		Challenges: []string{
			"Tuning confidence bands per incident type",
		},
		Status: "in-progress",
	},
}
