package template

import "github.com/draftly/backend/internal/domain/document"

// Catalog is the static template registry, keyed by document type then
// industry category
type Catalog map[document.Type]map[Category][]Template

// DefaultCatalog returns the built-in template registry
func DefaultCatalog() Catalog {
	c := Catalog{
		document.TypeProposal: {
			CategoryGeneral: {
				{
					ID:          "proposal-formal",
					Name:        "Formal Proposal",
					Description: "A professional, structured proposal suitable for corporate clients",
					Style:       StyleFormal,
					Sections: []Section{
						{ID: "intro", Name: "Introduction", Required: true},
						{ID: "services", Name: "Services Offered", Required: true},
						{ID: "timeline", Name: "Timeline", Required: true},
						{ID: "pricing", Name: "Pricing", Required: true},
						{ID: "next-steps", Name: "Next Steps", Required: true},
					},
				},
				{
					ID:          "proposal-creative",
					Name:        "Creative Proposal",
					Description: "A modern, visually-focused proposal for creative projects",
					Style:       StyleCreative,
					Sections: []Section{
						{ID: "vision", Name: "Vision", Required: true},
						{ID: "approach", Name: "Creative Approach", Required: true},
						{ID: "deliverables", Name: "Deliverables", Required: true},
						{ID: "investment", Name: "Investment", Required: true},
						{ID: "collaboration", Name: "Collaboration Process", Required: false},
					},
				},
				{
					ID:          "proposal-casual",
					Name:        "Casual Proposal",
					Description: "A friendly, conversational proposal for smaller projects",
					Style:       StyleCasual,
					Sections: []Section{
						{ID: "overview", Name: "Project Overview", Required: true},
						{ID: "work", Name: "What I'll Do", Required: true},
						{ID: "schedule", Name: "Schedule", Required: true},
						{ID: "costs", Name: "Costs", Required: true},
						{ID: "agreement", Name: "Simple Agreement", Required: false},
					},
				},
			},
			CategoryTech: {
				{
					ID:          "proposal-tech",
					Name:        "Technical Project Proposal",
					Description: "Detailed proposal for tech-focused projects",
					Style:       StyleTechnical,
					Sections: []Section{
						{ID: "executive-summary", Name: "Executive Summary", Required: true},
						{ID: "technical-approach", Name: "Technical Approach", Required: true},
						{ID: "architecture", Name: "Proposed Architecture", Required: true},
						{ID: "implementation", Name: "Implementation Plan", Required: true},
						{ID: "team", Name: "Technical Team", Required: false},
						{ID: "timeline", Name: "Timeline", Required: true},
						{ID: "pricing", Name: "Pricing & Licensing", Required: true},
					},
				},
			},
			CategoryLegal: {
				{
					ID:          "proposal-legal",
					Name:        "Legal Services Proposal",
					Description: "Formal proposal for legal services",
					Style:       StyleFormal,
					Sections: []Section{
						{ID: "summary", Name: "Executive Summary", Required: true},
						{ID: "legal-background", Name: "Legal Background", Required: true},
						{ID: "services", Name: "Services & Approach", Required: true},
						{ID: "team", Name: "Legal Team", Required: false},
						{ID: "fees", Name: "Fee Structure", Required: true},
						{ID: "terms", Name: "Terms & Conditions", Required: true},
					},
				},
			},
			CategoryHealthcare: {
				{
					ID:          "proposal-healthcare",
					Name:        "Healthcare Proposal",
					Description: "Specialized proposal for healthcare projects",
					Style:       StyleProfessional,
					Sections: []Section{
						{ID: "summary", Name: "Executive Summary", Required: true},
						{ID: "compliance", Name: "Compliance & Regulations", Required: true},
						{ID: "services", Name: "Services Description", Required: true},
						{ID: "implementation", Name: "Implementation Approach", Required: true},
						{ID: "timeline", Name: "Project Timeline", Required: true},
						{ID: "costs", Name: "Cost Breakdown", Required: true},
					},
				},
			},
			CategoryFreelance: {
				{
					ID:          "proposal-freelance",
					Name:        "Freelancer Proposal",
					Description: "Tailored proposal for freelance professionals",
					Style:       StyleCasual,
					Sections: []Section{
						{ID: "introduction", Name: "Introduction", Required: true},
						{ID: "expertise", Name: "Expertise & Experience", Required: true},
						{ID: "approach", Name: "Project Approach", Required: true},
						{ID: "deliverables", Name: "Deliverables", Required: true},
						{ID: "pricing", Name: "Pricing", Required: true},
						{ID: "terms", Name: "Terms & Timeline", Required: true},
					},
				},
			},
			CategoryConsulting: {
				{
					ID:          "proposal-consulting",
					Name:        "Consulting Proposal",
					Description: "Professional proposal for consulting services",
					Style:       StyleProfessional,
					Sections: []Section{
						{ID: "executive-summary", Name: "Executive Summary", Required: true},
						{ID: "problem-statement", Name: "Problem Statement", Required: true},
						{ID: "methodology", Name: "Consulting Methodology", Required: true},
						{ID: "deliverables", Name: "Deliverables", Required: true},
						{ID: "timeline", Name: "Project Timeline", Required: true},
						{ID: "team", Name: "Consulting Team", Required: false},
						{ID: "investment", Name: "Investment", Required: true},
						{ID: "terms", Name: "Terms & Conditions", Required: true},
					},
				},
			},
		},
		document.TypeInvoice: {
			CategoryGeneral: {
				{
					ID:          "invoice-standard",
					Name:        "Standard Invoice",
					Description: "A clean, professional invoice template",
					Style:       StyleFormal,
					Sections: []Section{
						{ID: "business-info", Name: "Business Information", Required: true},
						{ID: "client-info", Name: "Client Information", Required: true},
						{ID: "items", Name: "Invoice Items", Required: true},
						{ID: "totals", Name: "Totals", Required: true},
						{ID: "payment", Name: "Payment Information", Required: true},
					},
				},
				{
					ID:          "invoice-minimal",
					Name:        "Minimal Invoice",
					Description: "A simple, streamlined invoice design",
					Style:       StyleMinimal,
					Sections: []Section{
						{ID: "header", Name: "Header", Required: true},
						{ID: "items", Name: "Items", Required: true},
						{ID: "total", Name: "Total", Required: true},
						{ID: "notes", Name: "Notes", Required: false},
					},
				},
			},
			CategoryTech: {
				{
					ID:          "invoice-tech",
					Name:        "Tech Services Invoice",
					Description: "Specialized invoice for technical services",
					Style:       StyleTechnical,
					Sections: []Section{
						{ID: "vendor-info", Name: "Vendor Information", Required: true},
						{ID: "client-info", Name: "Client Information", Required: true},
						{ID: "service-details", Name: "Service Details", Required: true},
						{ID: "technical-specs", Name: "Technical Specifications", Required: false},
						{ID: "rates", Name: "Service Rates", Required: true},
						{ID: "totals", Name: "Totals & Taxes", Required: true},
						{ID: "payment-terms", Name: "Payment Terms", Required: true},
					},
				},
			},
			CategoryLegal: {
				{
					ID:          "invoice-legal",
					Name:        "Legal Services Invoice",
					Description: "Professional invoice for legal services",
					Style:       StyleFormal,
					Sections: []Section{
						{ID: "firm-info", Name: "Firm Information", Required: true},
						{ID: "client-info", Name: "Client Information", Required: true},
						{ID: "matter-info", Name: "Matter Information", Required: true},
						{ID: "services", Name: "Services Rendered", Required: true},
						{ID: "hours", Name: "Billable Hours", Required: true},
						{ID: "expenses", Name: "Expenses", Required: true},
						{ID: "totals", Name: "Totals", Required: true},
						{ID: "payment-terms", Name: "Payment Terms", Required: true},
					},
				},
			},
			CategoryHealthcare: {
				{
					ID:          "invoice-healthcare",
					Name:        "Healthcare Services Invoice",
					Description: "Invoice format for healthcare providers",
					Style:       StyleProfessional,
					Sections: []Section{
						{ID: "provider-info", Name: "Provider Information", Required: true},
						{ID: "patient-info", Name: "Patient Information", Required: true},
						{ID: "service-details", Name: "Service Details", Required: true},
						{ID: "insurance", Name: "Insurance Information", Required: false},
						{ID: "billing-codes", Name: "Billing Codes", Required: true},
						{ID: "totals", Name: "Charges & Payments", Required: true},
						{ID: "balance", Name: "Balance Due", Required: true},
					},
				},
			},
			CategoryFreelance: {
				{
					ID:          "invoice-freelance",
					Name:        "Freelancer Invoice",
					Description: "Tailored for freelancers with billable hours",
					Style:       StyleCasual,
					Sections: []Section{
						{ID: "freelancer-info", Name: "Freelancer Information", Required: true},
						{ID: "client-info", Name: "Client Information", Required: true},
						{ID: "project", Name: "Project Details", Required: true},
						{ID: "hours", Name: "Billable Hours", Required: true},
						{ID: "expenses", Name: "Expenses", Required: false},
						{ID: "totals", Name: "Totals", Required: true},
						{ID: "payment", Name: "Payment Information", Required: true},
					},
				},
			},
			CategoryConsulting: {
				{
					ID:          "invoice-consulting",
					Name:        "Consulting Invoice",
					Description: "Specifically designed for consulting services",
					Style:       StyleProfessional,
					Sections: []Section{
						{ID: "consultant", Name: "Consultant Information", Required: true},
						{ID: "client", Name: "Client Information", Required: true},
						{ID: "services", Name: "Consulting Services", Required: true},
						{ID: "rates", Name: "Rates & Hours", Required: true},
						{ID: "totals", Name: "Totals", Required: true},
						{ID: "terms", Name: "Terms & Conditions", Required: true},
					},
				},
			},
		},
		document.TypeEmail: {
			CategoryGeneral: {
				{
					ID:          "onboarding-welcome",
					Name:        "Welcome Email",
					Description: "A warm welcome email for new clients",
					Style:       StyleFriendly,
					Sections: []Section{
						{ID: "greeting", Name: "Personal Greeting", Required: true},
						{ID: "overview", Name: "Project Overview", Required: true},
						{ID: "next-steps", Name: "Next Steps", Required: true},
						{ID: "resources", Name: "Important Resources", Required: false},
						{ID: "contact", Name: "Contact Information", Required: true},
					},
				},
				{
					ID:          "onboarding-formal",
					Name:        "Formal Onboarding",
					Description: "A formal onboarding email for corporate clients",
					Style:       StyleFormal,
					Sections: []Section{
						{ID: "introduction", Name: "Introduction", Required: true},
						{ID: "project-details", Name: "Project Details", Required: true},
						{ID: "timeline", Name: "Project Timeline", Required: true},
						{ID: "team", Name: "Team Introduction", Required: false},
						{ID: "communication", Name: "Communication Protocol", Required: true},
						{ID: "closing", Name: "Closing", Required: true},
					},
				},
			},
			CategoryTech: {
				{
					ID:          "onboarding-tech",
					Name:        "Technical Onboarding",
					Description: "Onboarding email for technical projects with setup instructions",
					Style:       StyleTechnical,
					Sections: []Section{
						{ID: "welcome", Name: "Welcome", Required: true},
						{ID: "project-scope", Name: "Project Scope", Required: true},
						{ID: "technical-setup", Name: "Technical Setup", Required: true},
						{ID: "access-credentials", Name: "Access & Credentials", Required: false},
						{ID: "communication-tools", Name: "Communication Tools", Required: true},
						{ID: "next-milestones", Name: "Next Milestones", Required: true},
					},
				},
			},
			CategoryLegal: {
				{
					ID:          "onboarding-legal",
					Name:        "Legal Client Onboarding",
					Description: "Professional onboarding email for legal clients",
					Style:       StyleFormal,
					Sections: []Section{
						{ID: "welcome", Name: "Welcome", Required: true},
						{ID: "representation", Name: "Representation Details", Required: true},
						{ID: "expectations", Name: "Expectations & Process", Required: true},
						{ID: "documents", Name: "Required Documents", Required: true},
						{ID: "confidentiality", Name: "Confidentiality Notice", Required: true},
						{ID: "contact", Name: "Contact Information", Required: true},
					},
				},
			},
			CategoryHealthcare: {
				{
					ID:          "onboarding-healthcare",
					Name:        "Healthcare Onboarding",
					Description: "Onboarding email for healthcare clients",
					Style:       StyleProfessional,
					Sections: []Section{
						{ID: "welcome", Name: "Welcome", Required: true},
						{ID: "privacy", Name: "Privacy Information", Required: true},
						{ID: "service-details", Name: "Service Details", Required: true},
						{ID: "paperwork", Name: "Required Paperwork", Required: true},
						{ID: "insurance", Name: "Insurance Information", Required: false},
						{ID: "next-steps", Name: "Next Steps", Required: true},
					},
				},
			},
			CategoryFreelance: {
				{
					ID:          "onboarding-freelance",
					Name:        "Freelancer Client Onboarding",
					Description: "Friendly onboarding email for freelance clients",
					Style:       StyleCasual,
					Sections: []Section{
						{ID: "welcome", Name: "Personal Welcome", Required: true},
						{ID: "project-scope", Name: "Project Scope", Required: true},
						{ID: "process", Name: "Work Process", Required: true},
						{ID: "communication", Name: "Communication Channels", Required: true},
						{ID: "timeline", Name: "Timeline", Required: true},
						{ID: "payment", Name: "Payment Details", Required: true},
					},
				},
			},
			CategoryConsulting: {
				{
					ID:          "onboarding-consulting",
					Name:        "Consulting Client Onboarding",
					Description: "Professional onboarding email for consulting clients",
					Style:       StyleProfessional,
					Sections: []Section{
						{ID: "welcome", Name: "Welcome", Required: true},
						{ID: "engagement", Name: "Engagement Overview", Required: true},
						{ID: "methodology", Name: "Consulting Methodology", Required: true},
						{ID: "deliverables", Name: "Deliverables", Required: true},
						{ID: "team", Name: "Team Introduction", Required: true},
						{ID: "communication", Name: "Communication Protocol", Required: true},
						{ID: "next-steps", Name: "Next Steps", Required: true},
					},
				},
			},
		},
	}

	// Backfill type and category so callers don't need the map position
	for docType, byCategory := range c {
		for category, templates := range byCategory {
			for i := range templates {
				templates[i].Type = docType
				templates[i].Category = category
			}
		}
	}
	return c
}

// Templates flattens all categories for a document type.
// Unknown types yield an empty slice, never an error.
func (c Catalog) Templates(docType document.Type) []Template {
	all := make([]Template, 0)
	byCategory, ok := c[docType]
	if !ok {
		return all
	}
	for _, category := range Categories() {
		all = append(all, byCategory[category]...)
	}
	return all
}

// TemplatesByCategory returns templates for one type and category.
// Unknown categories yield an empty slice.
func (c Catalog) TemplatesByCategory(docType document.Type, category Category) []Template {
	byCategory, ok := c[docType]
	if !ok {
		return []Template{}
	}
	templates, ok := byCategory[category]
	if !ok {
		return []Template{}
	}
	return templates
}

// TemplateByID scans the whole catalog for a template id
func (c Catalog) TemplateByID(id string) (*Template, bool) {
	for _, byCategory := range c {
		for _, templates := range byCategory {
			for i := range templates {
				if templates[i].ID == id {
					return &templates[i], true
				}
			}
		}
	}
	return nil, false
}
