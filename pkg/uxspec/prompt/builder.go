package prompt

import (
	"fmt"
	"strings"

	"tux-be/pkg/uxspec"
)

// User text is interpolated verbatim: embedded braces or quotes are not
// escaped, and the response parser makes no assumption that they were.

// MultiRole builds the prompt that simulates three reviewer personas and
// asks for a JSON object with exactly three named string fields.
func MultiRole(req *uxspec.Requirements) string {
	var b strings.Builder

	b.WriteString("You are an expert UX design team consisting of three roles:\n")
	b.WriteString("1. Product Designer - Focuses on user experience, interface design, and usability\n")
	b.WriteString("2. Business Analyst - Focuses on requirements analysis, user stories, and business logic\n")
	b.WriteString("3. UX Architect - Focuses on information architecture, user flows, and system design\n\n")
	b.WriteString("Analyze the following application requirements from each perspective:\n\n")

	writeRequirementFields(&b, req)

	b.WriteString("\nFor each role, provide insights in JSON format:\n")
	b.WriteString("{\n")
	b.WriteString("    \"designer\": \"Product Designer insights and recommendations\",\n")
	b.WriteString("    \"analyst\": \"Business Analyst insights and requirements breakdown\",\n")
	b.WriteString("    \"architect\": \"UX Architect insights on information architecture and flows\"\n")
	b.WriteString("}\n\n")
	b.WriteString("Focus on:\n")
	b.WriteString("- User experience best practices\n")
	b.WriteString("- Accessibility standards\n")
	b.WriteString("- Modern design patterns\n")
	b.WriteString("- Technical feasibility\n")
	b.WriteString("- Business value\n")

	return b.String()
}

// UXSpec builds the prompt asking for the full specification. When insights
// is nil the prior-analysis block is omitted entirely.
func UXSpec(req *uxspec.Requirements, insights *uxspec.RoleInsight) string {
	var b strings.Builder

	b.WriteString("Based on the following requirements, generate comprehensive UX specifications:\n\n")

	if insights != nil {
		b.WriteString("Previous Role Analysis:\n")
		b.WriteString(fmt.Sprintf("- Designer: %s\n", insights.Designer))
		b.WriteString(fmt.Sprintf("- Analyst: %s\n", insights.Analyst))
		b.WriteString(fmt.Sprintf("- Architect: %s\n", insights.Architect))
		b.WriteString("\n")
	}

	b.WriteString("Requirements:\n")
	writeRequirementFields(&b, req)

	b.WriteString("\nGenerate a detailed UX specification in JSON format with:\n")
	b.WriteString("{\n")
	b.WriteString("    \"screens\": [\n")
	b.WriteString("        {\n")
	b.WriteString("            \"name\": \"Screen Name\",\n")
	b.WriteString("            \"description\": \"What this screen does\",\n")
	b.WriteString("            \"elements\": [\"list\", \"of\", \"ui\", \"elements\"],\n")
	b.WriteString("            \"userFlow\": \"How users interact with this screen\",\n")
	b.WriteString("            \"interactions\": [\"list\", \"of\", \"interactions\"]\n")
	b.WriteString("        }\n")
	b.WriteString("    ],\n")
	b.WriteString("    \"ia_structure\": {\n")
	b.WriteString("        \"navigation\": \"Main navigation structure\",\n")
	b.WriteString("        \"hierarchy\": \"Information hierarchy\",\n")
	b.WriteString("        \"relationships\": \"How screens connect\"\n")
	b.WriteString("    },\n")
	b.WriteString("    \"standards\": {\n")
	b.WriteString("        \"accessibility\": \"Accessibility requirements\",\n")
	b.WriteString("        \"responsive\": \"Responsive design approach\",\n")
	b.WriteString("        \"patterns\": \"UI patterns to use\"\n")
	b.WriteString("    },\n")
	b.WriteString("    \"final_prompt_for_image_model\": \"Detailed prompt for generating UI mockups\"\n")
	b.WriteString("}\n\n")
	b.WriteString("Focus on modern UX best practices, accessibility, and user-centered design.\n")

	return b.String()
}

// HTMLLayout builds the prompt asking a model to render a specification as
// a single self-contained HTML fragment.
func HTMLLayout(spec *uxspec.UXSpecification, style string) string {
	if style == "" {
		style = "clean wireframe"
	}

	var b strings.Builder
	b.WriteString("Generate a single-screen HTML/CSS layout as one self-contained fragment ")
	b.WriteString("rooted at a <div> element, using only inline styles.\n\n")
	b.WriteString(fmt.Sprintf("Visual style: %s\n\n", style))
	b.WriteString("Layout brief:\n")
	b.WriteString(spec.FinalPrompt)
	b.WriteString("\n\nScreens to represent:\n")
	for _, s := range spec.Screens {
		b.WriteString(fmt.Sprintf("- %s: %s\n", s.Name, s.Description))
	}
	b.WriteString("\nAnswer with the HTML fragment only, no commentary.\n")

	return b.String()
}

func writeRequirementFields(b *strings.Builder, req *uxspec.Requirements) {
	demographics := req.Demographics
	if demographics == "" {
		demographics = "Not specified"
	}

	b.WriteString(fmt.Sprintf("Purpose: %s\n", req.Purpose))
	b.WriteString(fmt.Sprintf("Target Audience: %s\n", req.Audience))
	b.WriteString(fmt.Sprintf("Demographics: %s\n", demographics))
	b.WriteString(fmt.Sprintf("User Goals: %s\n", req.Goals))
	b.WriteString(fmt.Sprintf("Use Cases: %s\n", strings.Join(req.UseCases, ", ")))
}
