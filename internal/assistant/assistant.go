package assistant

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"

	"github.com/zefanya/apptrack/internal/llm"
	"github.com/zefanya/apptrack/internal/prompts"
	"github.com/zefanya/apptrack/internal/seed"
	"github.com/zefanya/apptrack/internal/types"
)

// StrategyDraft pairs likely interview questions with the selling points to
// answer them.
type StrategyDraft struct {
	Questions  []string `json:"questions"`
	Highlights []string `json:"highlights"`
}

// CVCheckDraft summarizes how a profile lines up against a role.
type CVCheckDraft struct {
	Matches      []string `json:"matches"`
	Improvements []string `json:"improvements"`
}

// Attachment is one uploaded document to include in a profile analysis.
type Attachment struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Service builds prompts, calls the completion client and parses the results.
// Draft methods never fail: when the client errors or the response cannot be
// parsed, they log the cause and return deterministic fallback content with
// the fallback flag set.
type Service struct {
	client    llm.Client
	applicant string
}

// New creates a Service. The applicant name is embedded into email drafts.
func New(client llm.Client, applicant string) *Service {
	return &Service{client: client, applicant: applicant}
}

// emailActions maps an application status to the kind of follow-up to draft.
var emailActions = map[types.Status]string{
	types.StatusInterview: "a polite thank-you and results follow-up after an interview",
	types.StatusInReview:  "a polite general application status check (after waiting 10-14 days)",
	types.StatusSubmitted: "a polite general application status check (after waiting 10-14 days)",
	types.StatusOffer:     "a request for offer clarification and confirmation of the decision deadline",
}

const defaultEmailAction = "a polite general follow-up"

// EmailAction returns the follow-up style appropriate for a status.
func EmailAction(status types.Status) string {
	if action, ok := emailActions[status]; ok {
		return action
	}
	return defaultEmailAction
}

// DraftEmail generates a follow-up email for an application.
func (s *Service) DraftEmail(ctx context.Context, app types.Application, profile string) (EmailDraft, bool) {
	prompt := prompts.Format(prompts.MustGet("drafts.json", "follow_up_email"), map[string]string{
		"Role":        SanitizeInput(app.Role),
		"Company":     SanitizeInput(app.Company),
		"AppliedDate": SanitizeInput(app.AppliedDate),
		"ActionType":  EmailAction(app.Status),
		"Profile":     SanitizeInput(profile),
		"Applicant":   s.applicant,
	})

	text, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("email draft generation failed for %s: %v", app.ID, err)
		return FallbackEmail(s.applicant, app.Role, app.Company), true
	}

	draft, err := ParseEmail(text)
	if err != nil {
		log.Printf("email draft unparseable for %s: %v", app.ID, err)
		return FallbackEmail(s.applicant, app.Role, app.Company), true
	}
	return draft, false
}

// DraftStrategy generates interview questions and highlights for an
// application.
func (s *Service) DraftStrategy(ctx context.Context, app types.Application, profile string) (StrategyDraft, bool) {
	prompt := prompts.Format(prompts.MustGet("drafts.json", "interview_strategy"), map[string]string{
		"Role":    SanitizeInput(app.Role),
		"Company": SanitizeInput(app.Company),
		"Profile": SanitizeInput(profile),
	})

	text, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("strategy generation failed for %s: %v", app.ID, err)
		return FallbackStrategy(app.Role, app.Company), true
	}

	questions, highlights, err := ParseListSections(text)
	if err != nil {
		log.Printf("strategy draft unparseable for %s: %v", app.ID, err)
		return FallbackStrategy(app.Role, app.Company), true
	}
	return StrategyDraft{Questions: questions, Highlights: highlights}, false
}

// DraftCVCheck compares the stored profile against an application's role.
func (s *Service) DraftCVCheck(ctx context.Context, app types.Application, profile string) (CVCheckDraft, bool) {
	prompt := prompts.Format(prompts.MustGet("drafts.json", "cv_check"), map[string]string{
		"Role":    SanitizeInput(app.Role),
		"Company": SanitizeInput(app.Company),
		"Profile": SanitizeInput(profile),
	})

	text, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("cv check generation failed for %s: %v", app.ID, err)
		return FallbackCVCheck(app.Role), true
	}

	matches, improvements, err := ParseListSections(text)
	if err != nil {
		log.Printf("cv check draft unparseable for %s: %v", app.ID, err)
		return FallbackCVCheck(app.Role), true
	}
	return CVCheckDraft{Matches: matches, Improvements: improvements}, false
}

// GenerateNotes produces a numbered action plan for a role at a company.
func (s *Service) GenerateNotes(ctx context.Context, role, company, profile string) (string, bool) {
	prompt := prompts.Format(prompts.MustGet("drafts.json", "action_plan"), map[string]string{
		"Role":    SanitizeInput(role),
		"Company": SanitizeInput(company),
		"Profile": SanitizeInput(profile),
	})

	text, err := s.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("action plan generation failed: %v", err)
		return FallbackNotes(role, company), true
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackNotes(role, company), true
	}
	return text, false
}

// AnalyzeProfile synthesizes a profile summary from the uploaded documents.
// On failure it falls back to the base skills context.
func (s *Service) AnalyzeProfile(ctx context.Context, files []Attachment) (string, bool) {
	parts := make([]genai.Part, len(files)+1)

	g, _ := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			part, err := encodeAttachment(file)
			if err != nil {
				return err
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("profile document encoding failed: %v", err)
		return seed.BaseProfileContext, true
	}

	parts[len(files)] = genai.Text(prompts.Format(prompts.MustGet("drafts.json", "profile_analysis"), map[string]string{
		"Count":     strconv.Itoa(len(files)),
		"Applicant": s.applicant,
	}))

	text, err := s.client.Generate(ctx, llm.Request{Parts: parts, Tier: llm.TierAdvanced})
	if err != nil {
		log.Printf("profile analysis failed: %v", err)
		return seed.BaseProfileContext, true
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return seed.BaseProfileContext, true
	}
	return text, false
}

// ScanImage extracts application fields from a screenshot via structured OCR.
// Unlike the draft methods there is no useful fallback content, so failures
// are returned to the caller.
func (s *Service) ScanImage(ctx context.Context, mimeType string, data []byte, now time.Time) (ScanExtraction, error) {
	if len(data) == 0 {
		return ScanExtraction{}, fmt.Errorf("empty image payload")
	}

	text, err := s.client.Generate(ctx, llm.Request{
		Parts: []genai.Part{
			genai.Text(prompts.MustGet("drafts.json", "ocr_user")),
			genai.Blob{MIMEType: mimeType, Data: data},
		},
		System: prompts.MustGet("drafts.json", "ocr_system"),
		Schema: scanResultSchema(),
		Tier:   llm.TierLite,
	})
	if err != nil {
		return ScanExtraction{}, fmt.Errorf("image scan failed: %w", err)
	}

	return ParseScanResult(text, now)
}

// scanResultSchema constrains the OCR response to a single flat object.
func scanResultSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"companyName": {Type: genai.TypeString},
			"jobRole":     {Type: genai.TypeString},
			"date":        {Type: genai.TypeString},
		},
		Required: []string{"companyName", "jobRole", "date"},
	}
}

func encodeAttachment(file Attachment) (genai.Part, error) {
	if len(file.Data) == 0 {
		return nil, fmt.Errorf("attachment %q is empty", file.Name)
	}
	if strings.HasPrefix(file.MIMEType, "image/") || strings.Contains(file.MIMEType, "pdf") {
		return genai.Blob{MIMEType: file.MIMEType, Data: file.Data}, nil
	}
	return genai.Text(fmt.Sprintf("--- Start Document: %s ---\n%s\n--- End Document ---", file.Name, file.Data)), nil
}
