package blueprint

import (
	"fmt"
)

// DefaultRegistry returns a registry populated with the built-in blueprints.
// Built-ins are validated on every startup; a failure here is a packaging
// defect, not a runtime condition, so it panics.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, bp := range builtinBlueprints() {
		if err := r.Register(bp); err != nil {
			panic(fmt.Sprintf("built-in blueprint %q failed validation: %v", bp.Category, err))
		}
	}
	return r
}

// builtinBlueprints returns the shipped decomposition templates.
// These are pure data; changing how a category decomposes is a data change.
func builtinBlueprints() []*Blueprint {
	return []*Blueprint{
		{
			Category: CategoryDevelopment,
			Phases: []PhaseSpec{
				{
					Slug:        "design",
					Title:       "Design: {title}",
					Description: "Produce a technical design covering data model, interfaces, and edge cases.",
					Effort:      3,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"architecture",
					},
					AcceptanceCriteria: []string{
						"Design document reviewed and approved",
						"Open questions resolved or explicitly deferred",
					},
					Labels: []string{"design"},
				},
				{
					Slug:        "implement",
					Title:       "Implement: {title}",
					Description: "Implement the feature according to the approved design.",
					Effort:      5,
					Priority:    PriorityCritical,
					Capabilities: []string{
						"backend",
					},
					AcceptanceCriteria: []string{
						"Code compiles and passes linting",
						"Implementation matches the design",
					},
					Labels:    []string{"implementation"},
					DependsOn: []string{"design"},
				},
				{
					Slug:        "test",
					Title:       "Test: {title}",
					Description: "Write unit and regression tests for the new behavior.",
					Effort:      3,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"testing",
					},
					AcceptanceCriteria: []string{
						"New code paths covered by tests",
						"Full test suite green",
					},
					Labels:    []string{"testing"},
					DependsOn: []string{"implement"},
				},
				{
					Slug:        "integrate",
					Title:       "Integrate: {title}",
					Description: "Merge, resolve conflicts, and verify the feature in the integration environment.",
					Effort:      2,
					Priority:    PriorityMedium,
					Capabilities: []string{
						"devops",
					},
					AcceptanceCriteria: []string{
						"Feature verified end to end in integration",
					},
					Labels:    []string{"integration"},
					DependsOn: []string{"test"},
				},
				{
					Slug:        "document",
					Title:       "Document: {title}",
					Description: "Update user-facing and internal documentation for the change.",
					Effort:      1,
					Priority:    PriorityLow,
					Capabilities: []string{
						"technical-writing",
					},
					AcceptanceCriteria: []string{
						"Documentation merged alongside the feature",
					},
					Labels:    []string{"documentation"},
					DependsOn: []string{"integrate"},
				},
			},
		},
		{
			Category: CategoryResearch,
			Phases: []PhaseSpec{
				{
					Slug:        "scope-questions",
					Title:       "Scope research questions: {title}",
					Description: "Define the questions the research must answer and the success criteria.",
					Effort:      2,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"research",
					},
					AcceptanceCriteria: []string{
						"Research questions agreed with stakeholders",
					},
					Labels: []string{"research"},
				},
				{
					Slug:        "literature-review",
					Title:       "Review prior art: {title}",
					Description: "Survey existing approaches, internal and external, relevant to the questions.",
					Effort:      3,
					Priority:    PriorityMedium,
					Capabilities: []string{
						"research",
					},
					AcceptanceCriteria: []string{
						"Comparison of at least three existing approaches",
					},
					Labels:    []string{"research"},
					DependsOn: []string{"scope-questions"},
				},
				{
					Slug:        "prototype-spike",
					Title:       "Prototype spike: {title}",
					Description: "Build a throwaway prototype to answer the riskiest open question.",
					Effort:      5,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"prototyping",
					},
					AcceptanceCriteria: []string{
						"Prototype demonstrates feasibility or documents the blocker",
					},
					Labels:    []string{"spike"},
					DependsOn: []string{"scope-questions"},
				},
				{
					Slug:        "synthesize-findings",
					Title:       "Synthesize findings: {title}",
					Description: "Combine prior art and prototype results into a recommendation.",
					Effort:      3,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"technical-writing",
					},
					AcceptanceCriteria: []string{
						"Written recommendation with trade-offs",
					},
					Labels:    []string{"research"},
					DependsOn: []string{"literature-review", "prototype-spike"},
				},
			},
		},
		{
			Category: CategoryAnalysis,
			Phases: []PhaseSpec{
				{
					Slug:        "collect-data",
					Title:       "Collect data: {title}",
					Description: "Gather and clean the datasets needed for the analysis.",
					Effort:      3,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"data-engineering",
					},
					AcceptanceCriteria: []string{
						"Datasets validated for completeness",
					},
					Labels: []string{"analysis"},
				},
				{
					Slug:        "quantitative-analysis",
					Title:       "Quantitative analysis: {title}",
					Description: "Run the numeric analysis and produce the headline metrics.",
					Effort:      4,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"data-analysis",
					},
					AcceptanceCriteria: []string{
						"Metrics reproducible from the raw data",
					},
					Labels:    []string{"analysis"},
					DependsOn: []string{"collect-data"},
				},
				{
					Slug:        "qualitative-analysis",
					Title:       "Qualitative analysis: {title}",
					Description: "Review non-numeric signals and annotate notable cases.",
					Effort:      3,
					Priority:    PriorityMedium,
					Capabilities: []string{
						"data-analysis",
					},
					AcceptanceCriteria: []string{
						"Notable cases annotated with context",
					},
					Labels:    []string{"analysis"},
					DependsOn: []string{"collect-data"},
				},
				{
					Slug:        "draft-recommendations",
					Title:       "Draft recommendations: {title}",
					Description: "Turn the combined analysis into concrete, prioritized recommendations.",
					Effort:      2,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"technical-writing",
					},
					AcceptanceCriteria: []string{
						"Each recommendation tied to supporting evidence",
					},
					Labels:    []string{"analysis"},
					DependsOn: []string{"quantitative-analysis", "qualitative-analysis"},
				},
				{
					Slug:        "present-findings",
					Title:       "Present findings: {title}",
					Description: "Present the analysis and recommendations to stakeholders.",
					Effort:      1,
					Priority:    PriorityMedium,
					Capabilities: []string{
						"communication",
					},
					AcceptanceCriteria: []string{
						"Findings presented and follow-ups captured",
					},
					Labels:    []string{"analysis"},
					DependsOn: []string{"draft-recommendations"},
				},
			},
		},
		{
			Category: CategoryTesting,
			Phases: []PhaseSpec{
				{
					Slug:        "test-plan",
					Title:       "Test plan: {title}",
					Description: "Define scope, environments, and exit criteria for the test effort.",
					Effort:      2,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"testing",
					},
					AcceptanceCriteria: []string{
						"Test plan reviewed by the feature owner",
					},
					Labels: []string{"testing"},
				},
				{
					Slug:        "unit-tests",
					Title:       "Unit tests: {title}",
					Description: "Write unit tests for the components named in the test plan.",
					Effort:      3,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"testing",
					},
					AcceptanceCriteria: []string{
						"Unit coverage meets the plan's target",
					},
					Labels:    []string{"testing", "unit"},
					DependsOn: []string{"test-plan"},
				},
				{
					Slug:        "integration-tests",
					Title:       "Integration tests: {title}",
					Description: "Write integration tests across component boundaries.",
					Effort:      5,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"testing",
					},
					AcceptanceCriteria: []string{
						"Critical component interactions covered",
					},
					Labels:    []string{"testing", "integration"},
					DependsOn: []string{"test-plan"},
				},
				{
					Slug:        "e2e-tests",
					Title:       "End-to-end tests: {title}",
					Description: "Write end-to-end tests for the primary user flows.",
					Effort:      4,
					Priority:    PriorityMedium,
					Capabilities: []string{
						"testing",
					},
					AcceptanceCriteria: []string{
						"Primary user flows automated",
					},
					Labels:    []string{"testing", "e2e"},
					DependsOn: []string{"test-plan"},
				},
				{
					Slug:        "execute-suite",
					Title:       "Execute test suite: {title}",
					Description: "Run the full suite against the target environment and triage failures.",
					Effort:      2,
					Priority:    PriorityCritical,
					Capabilities: []string{
						"testing",
					},
					AcceptanceCriteria: []string{
						"All failures triaged or fixed",
					},
					Labels:    []string{"testing"},
					DependsOn: []string{"unit-tests", "integration-tests", "e2e-tests"},
				},
				{
					Slug:        "test-report",
					Title:       "Test report: {title}",
					Description: "Summarize coverage, results, and residual risk.",
					Effort:      1,
					Priority:    PriorityLow,
					Capabilities: []string{
						"technical-writing",
					},
					AcceptanceCriteria: []string{
						"Report shared with stakeholders",
					},
					Labels:    []string{"testing"},
					DependsOn: []string{"execute-suite"},
				},
			},
		},
		{
			Category: CategoryDocumentation,
			Phases: []PhaseSpec{
				{
					Slug:        "outline",
					Title:       "Outline: {title}",
					Description: "Draft the document structure and identify required inputs.",
					Effort:      1,
					Priority:    PriorityMedium,
					Capabilities: []string{
						"technical-writing",
					},
					AcceptanceCriteria: []string{
						"Outline approved by the subject-matter owner",
					},
					Labels: []string{"documentation"},
				},
				{
					Slug:        "draft",
					Title:       "Draft: {title}",
					Description: "Write the full draft following the approved outline.",
					Effort:      4,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"technical-writing",
					},
					AcceptanceCriteria: []string{
						"Draft covers every outline section",
					},
					Labels:    []string{"documentation"},
					DependsOn: []string{"outline"},
				},
				{
					Slug:        "review",
					Title:       "Review: {title}",
					Description: "Collect and resolve reviewer feedback on the draft.",
					Effort:      2,
					Priority:    PriorityMedium,
					Capabilities: []string{
						"technical-writing",
					},
					AcceptanceCriteria: []string{
						"All review comments resolved",
					},
					Labels:    []string{"documentation"},
					DependsOn: []string{"draft"},
				},
				{
					Slug:        "publish",
					Title:       "Publish: {title}",
					Description: "Publish the document and announce it to the audience.",
					Effort:      1,
					Priority:    PriorityLow,
					Capabilities: []string{
						"technical-writing",
					},
					AcceptanceCriteria: []string{
						"Document live at its canonical location",
					},
					Labels:    []string{"documentation"},
					DependsOn: []string{"review"},
				},
			},
		},
		{
			Category: CategoryArchitecture,
			Phases: []PhaseSpec{
				{
					Slug:        "gather-requirements",
					Title:       "Gather requirements: {title}",
					Description: "Collect functional and operational requirements from stakeholders.",
					Effort:      2,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"architecture",
					},
					AcceptanceCriteria: []string{
						"Requirements signed off by stakeholders",
					},
					Labels: []string{"architecture"},
				},
				{
					Slug:        "draft-proposal",
					Title:       "Draft proposal: {title}",
					Description: "Draft the architecture proposal, including component and data-flow diagrams.",
					Effort:      4,
					Priority:    PriorityCritical,
					Capabilities: []string{
						"architecture",
					},
					AcceptanceCriteria: []string{
						"Proposal addresses every requirement",
					},
					Labels:    []string{"architecture"},
					DependsOn: []string{"gather-requirements"},
				},
				{
					Slug:        "evaluate-options",
					Title:       "Evaluate alternatives: {title}",
					Description: "Evaluate alternative designs and technologies against the requirements.",
					Effort:      3,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"architecture",
					},
					AcceptanceCriteria: []string{
						"At least two alternatives compared with trade-offs",
					},
					Labels:    []string{"architecture"},
					DependsOn: []string{"gather-requirements"},
				},
				{
					Slug:        "design-review",
					Title:       "Design review: {title}",
					Description: "Run the design review and incorporate the outcome into the proposal.",
					Effort:      2,
					Priority:    PriorityHigh,
					Capabilities: []string{
						"architecture",
					},
					AcceptanceCriteria: []string{
						"Review outcome recorded with action items",
					},
					Labels:    []string{"architecture"},
					DependsOn: []string{"draft-proposal", "evaluate-options"},
				},
				{
					Slug:        "write-adr",
					Title:       "Record decision: {title}",
					Description: "Write the architecture decision record for the chosen design.",
					Effort:      1,
					Priority:    PriorityMedium,
					Capabilities: []string{
						"technical-writing",
					},
					AcceptanceCriteria: []string{
						"ADR merged into the decision log",
					},
					Labels:    []string{"architecture", "adr"},
					DependsOn: []string{"design-review"},
				},
			},
		},
	}
}
