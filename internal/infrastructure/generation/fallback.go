package generation

import (
	"fmt"
	"strings"

	"github.com/draftly/backend/internal/domain/document"
)

// QuotaWarning is attached to results synthesized because the model quota
// ran out
const QuotaWarning = "Generated using fallback system due to API limits. For full functionality, please check your OpenAI API quota."

const genericFallback = "# Document\n\nContent could not be generated at this time. Please try again later."

// Synthesize builds a literal markdown document from the structured form
// payload. It uses only the supplied values, so it works without any model
// access.
func Synthesize(docType document.Type, data document.FallbackPayload) string {
	if data == nil {
		data = document.FallbackPayload{}
	}

	switch docType {
	case document.TypeProposal:
		return synthesizeProposal(data)
	case document.TypeEmail:
		return synthesizeEmail(data)
	case document.TypeInvoice:
		return synthesizeInvoice(data)
	default:
		return genericFallback
	}
}

func synthesizeProposal(data document.FallbackPayload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Proposal for %s\n\n", valueOr(data, "clientName", "Client"))

	b.WriteString("## Project Overview\n")
	if v := data["projectType"]; v != "" {
		fmt.Fprintf(&b, "Project Type: %s\n", v)
	}
	if v := data["projectScope"]; v != "" {
		fmt.Fprintf(&b, "\n%s\n", v)
	}

	b.WriteString("\n## Pricing\n")
	if v := data["price"]; v != "" {
		fmt.Fprintf(&b, "Estimated Cost: %s\n", v)
	} else {
		b.WriteString("Pricing to be determined\n")
	}

	b.WriteString("\n## Next Steps\n")
	b.WriteString("Please review this proposal and let us know if you have any questions.\n")

	writeSignature(&b, data["authorName"], data["authorPosition"], data["companyName"])
	return b.String()
}

func synthesizeEmail(data document.FallbackPayload) string {
	var b strings.Builder

	b.WriteString("# Welcome Email\n\n")
	fmt.Fprintf(&b, "Dear %s,\n\n", valueOr(data, "clientName", "Client"))
	b.WriteString("Thank you for choosing our services. We're excited to work with you!\n")
	if v := data["onboardingDetails"]; v != "" {
		fmt.Fprintf(&b, "\n%s\n", v)
	}
	b.WriteString("\nBest regards,\n")
	if v := data["authorName"]; v != "" {
		fmt.Fprintf(&b, "%s\n", v)
	}
	if v := data["authorPosition"]; v != "" {
		fmt.Fprintf(&b, "%s\n", v)
	}
	if v := data["companyName"]; v != "" {
		fmt.Fprintf(&b, "%s\n", v)
	}

	return b.String()
}

func synthesizeInvoice(data document.FallbackPayload) string {
	var b strings.Builder

	b.WriteString("# Invoice\n\n")
	fmt.Fprintf(&b, "**Client:** %s\n", valueOr(data, "clientName", "Client"))
	fmt.Fprintf(&b, "**Project:** %s\n", valueOr(data, "projectName", "Project"))
	fmt.Fprintf(&b, "**Amount Due:** %s\n", valueOr(data, "amountDue", "$0.00"))
	fmt.Fprintf(&b, "**Due Date:** %s\n", valueOr(data, "dueDate", "Upon receipt"))
	b.WriteString("\nThank you for your business!\n")

	writeSignature(&b, data["authorName"], data["authorPosition"], data["businessName"])
	return b.String()
}

func writeSignature(b *strings.Builder, lines ...string) {
	wrote := false
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !wrote {
			b.WriteString("\n")
			wrote = true
		}
		fmt.Fprintf(b, "%s\n", line)
	}
}

func valueOr(data document.FallbackPayload, key, fallback string) string {
	if v := data[key]; v != "" {
		return v
	}
	return fallback
}
