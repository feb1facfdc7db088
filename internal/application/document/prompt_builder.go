package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prompt is the generation input built from a form record: the natural
// language prompt plus the structured payload kept for fallback synthesis.
type Prompt struct {
	Text     string
	Fallback document.FallbackPayload
}

// PromptBuilder turns form records into generation prompts. Pure except for
// the wall-clock default applied when no date is supplied.
type PromptBuilder struct {
	now func() time.Time
}

// NewPromptBuilder creates a prompt builder using the system clock
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{now: time.Now}
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount the way US clients expect, e.g. "$1,234.56"
func FormatUSD(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return usd.Sprintf("$%.2f", f)
}

// FormatLongDate renders a date long-form, e.g. "January 2, 2006"
func FormatLongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func (b *PromptBuilder) dateOrNow(supplied string) string {
	if supplied != "" {
		return supplied
	}
	return FormatLongDate(b.now())
}

const proposalPromptTemplate = `Create a professional, concise business proposal without any filler content. Use only the information provided below, and if information is missing for a section, keep it brief rather than inventing details. Do not add any placeholders like "[Your name]" or "[Insert text here]" - only use the actual provided values.

AUTHOR INFORMATION:
- Author Name: %s
- Position/Title: %s
- Company Name: %s
- Contact Email: %s
- Contact Phone: %s
- Date: %s

CLIENT INFORMATION:
- Client Name: %s
- Client Background: %s
- Client Challenges: %s

PROJECT DETAILS:
- Project Type: %s
- Project Goals: %s
- Proposed Solution: %s
- Scope of Work: %s
- Specific Deliverables: %s
- Timeline: %s
- Price: %s
- Payment Terms: %s

VALUE PROPOSITION:
- Unique Selling Points: %s
- Competitive Advantages: %s
- Social Proof/Testimonials: %s

FORMAT REQUIREMENTS:
1. Use clean, professional markdown formatting
2. Be extremely concise but precise - eliminate all unnecessary words
3. Include only sections with substantive content
4. Focus on specific client benefits backed by concrete details
5. Use persuasive but professional language without fluff
6. Include a clear call-to-action at the end
7. Do not include any placeholder or generic text - if information is missing, don't make up content
8. Never add placeholders like "[Your name]" or "[Insert text here]" - if a field is empty, either omit it or use minimal content

The proposal should be immediately ready for presentation to the client with no additional editing required.`

// BuildProposalPrompt builds the proposal generation prompt. Missing
// optional fields stay empty in the prompt, they are never invented.
func (b *PromptBuilder) BuildProposalPrompt(cmd ProposalCommand) Prompt {
	date := b.dateOrNow(cmd.CurrentDate)
	formattedPrice := FormatUSD(cmd.Price)

	text := fmt.Sprintf(proposalPromptTemplate,
		cmd.AuthorName, cmd.AuthorPosition, cmd.CompanyName, cmd.ContactEmail, cmd.ContactPhone, date,
		cmd.ClientName, cmd.ClientBackground, cmd.ClientChallenges,
		cmd.ProjectType, cmd.ProjectGoals, cmd.ProposedSolution, cmd.ProjectScope,
		cmd.Deliverables, cmd.Timeline, formattedPrice, cmd.PaymentTerms,
		cmd.UniqueSellingPoints, cmd.CompetitiveAdvantages, cmd.SocialProof,
	)

	return Prompt{
		Text: text,
		Fallback: document.FallbackPayload{
			"clientName":     cmd.ClientName,
			"projectType":    cmd.ProjectType,
			"projectScope":   cmd.ProjectScope,
			"price":          formattedPrice,
			"authorName":     cmd.AuthorName,
			"authorPosition": cmd.AuthorPosition,
			"companyName":    cmd.CompanyName,
		},
	}
}

const emailPromptTemplate = `Create a professional, concise onboarding email without any filler content for:

Client Name: %s
Company Name: %s
Project Details: %s
Author Name: %s
Author Position: %s
Author Email: %s
Date: %s

The email should include:
- A brief, direct welcome message
- Specific next steps based on the provided details
- Only include links or resources section if specifically mentioned in the project details
- A professional but concise closing

Be concrete and specific. Don't add generic placeholders or filler content - if specific information is missing, keep that section brief and to the point rather than adding vague generalities. Never use placeholders like "[Your name]" or "[Insert text here]".`

// BuildEmailPrompt builds the onboarding email generation prompt
func (b *PromptBuilder) BuildEmailPrompt(cmd EmailCommand) Prompt {
	date := b.dateOrNow(cmd.CurrentDate)

	text := fmt.Sprintf(emailPromptTemplate,
		cmd.ClientName, cmd.CompanyName, cmd.OnboardingDetails,
		cmd.AuthorName, cmd.AuthorPosition, cmd.AuthorEmail, date,
	)

	return Prompt{
		Text: text,
		Fallback: document.FallbackPayload{
			"clientName":        cmd.ClientName,
			"companyName":       cmd.CompanyName,
			"onboardingDetails": cmd.OnboardingDetails,
			"authorName":        cmd.AuthorName,
			"authorPosition":    cmd.AuthorPosition,
		},
	}
}

const invoicePromptTemplate = `Create a professional, concise invoice without any filler content or placeholders:

Created By:
- Name: %s
- Position: %s
- Date Created: %s

Business:
- Name: %s
- Address: %s
- Phone: %s
- Email: %s

Client:
- Name: %s
- Address: %s
- Email: %s

Project: %s
Invoice Date: %s
Due Date: %s

Items:
%s

Subtotal: %s
Total Amount Due: %s

Format as a clean, structured invoice with only essential information. Use clear payment instructions. No generic placeholder text or unnecessary explanations. Never use placeholders like "[Your name]" or "[Insert text here]".`

// BuildInvoicePrompt builds the invoice generation prompt. Item amounts and
// the subtotal are derived from quantity and rate, not taken from the form.
func (b *PromptBuilder) BuildInvoicePrompt(cmd InvoiceCommand) Prompt {
	date := b.dateOrNow(cmd.CurrentDate)

	subtotal := decimal.Zero
	lines := make([]string, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		amount := item.Quantity.Mul(item.Rate)
		subtotal = subtotal.Add(amount)
		lines = append(lines, fmt.Sprintf("- Description: %s, Quantity: %s, Rate: %s, Amount: %s",
			item.Description, item.Quantity.String(), item.Rate.String(), amount.String()))
	}

	text := fmt.Sprintf(invoicePromptTemplate,
		cmd.AuthorName, cmd.AuthorPosition, date,
		cmd.Business.Name, cmd.Business.Address, cmd.Business.Phone, cmd.Business.Email,
		cmd.ClientName, orNA(cmd.Client.Address), orNA(cmd.Client.Email),
		cmd.ProjectName, FormatLongDate(b.now()), FormatLongDate(cmd.DueDate),
		strings.Join(lines, "\n"),
		FormatUSD(subtotal), FormatUSD(cmd.AmountDue),
	)

	return Prompt{
		Text: text,
		Fallback: document.FallbackPayload{
			"clientName":     cmd.ClientName,
			"projectName":    cmd.ProjectName,
			"amountDue":      FormatUSD(cmd.AmountDue),
			"dueDate":        FormatLongDate(cmd.DueDate),
			"authorName":     cmd.AuthorName,
			"authorPosition": cmd.AuthorPosition,
			"businessName":   cmd.Business.Name,
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
