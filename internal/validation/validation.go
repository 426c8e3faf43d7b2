// Package validation checks raw submission input against the application
// form rules. All rule violations are collected and reported together,
// one structured message per field.
package validation

import (
	"net/mail"
	"net/url"
	"strings"
)

// EmailDomain is the institutional domain suffix applicants must use.
const EmailDomain = "@case.edu"

const maxAnswerLength = 600

// CategoryOptions is the fixed set of selectable categories, in form order.
var CategoryOptions = []string{
	"Photography / Film",
	"Art / Design",
	"Coding / Software",
	"Hardware / Electronics",
	"Other",
}

// SubmissionRequest is the raw application payload as received on the wire.
type SubmissionRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Categories     []string `json:"categories"`
	OtherCategory  string   `json:"otherCategory"`
	WtfIdea        string   `json:"wtfIdea"`
	CurrentProject string   `json:"currentProject"`
	YoutubeLink    string   `json:"youtubeLink"`
}

// Payload is a validated, normalized application-creation payload.
type Payload struct {
	Name           string
	Email          string
	Categories     []string
	OtherCategory  *string
	WtfIdea        string
	CurrentProject string
	YoutubeLink    string
}

// FieldError is a single rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error reports every violated rule of a submission at once.
type Error struct {
	Details []FieldError `json:"details"`
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Details))
	for i, d := range e.Details {
		msgs[i] = d.Field + ": " + d.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *Error) add(field, message string) {
	e.Details = append(e.Details, FieldError{Field: field, Message: message})
}

// ValidateSubmission evaluates every form rule against req. It returns the
// normalized payload, or an *Error listing all violations.
func ValidateSubmission(req *SubmissionRequest) (*Payload, *Error) {
	verr := &Error{}

	if len(req.Name) < 1 {
		verr.add("name", "Name is required")
	}

	if _, err := mail.ParseAddress(req.Email); err != nil || parsedAddress(req.Email) != req.Email {
		verr.add("email", "Invalid email address")
	} else if !strings.HasSuffix(req.Email, EmailDomain) {
		verr.add("email", "Must be a "+EmailDomain+" email")
	}

	categoriesValid := true
	if len(req.Categories) < 1 {
		verr.add("categories", "Please select at least one category")
		categoriesValid = false
	} else {
		for _, category := range req.Categories {
			if !isKnownCategory(category) {
				verr.add("categories", "Invalid category selection")
				categoriesValid = false
				break
			}
		}
	}

	if len(req.WtfIdea) < 1 {
		verr.add("wtfIdea", "Please tell us your WTF idea")
	} else if len(req.WtfIdea) > maxAnswerLength {
		verr.add("wtfIdea", "Maximum 100 words (approximately 600 characters)")
	}

	if len(req.CurrentProject) < 1 {
		verr.add("currentProject", "Please tell us about your current project")
	} else if len(req.CurrentProject) > maxAnswerLength {
		verr.add("currentProject", "Maximum 100 words (approximately 600 characters)")
	}

	if !isVideoLink(req.YoutubeLink) {
		verr.add("youtubeLink", "Please enter a valid YouTube URL")
	}

	// Cross-field rule, checked once the category selection itself is valid:
	// selecting "Other" requires a non-empty description.
	otherSelected := containsCategory(req.Categories, "Other")
	trimmedOther := strings.TrimSpace(req.OtherCategory)
	if categoriesValid && otherSelected && trimmedOther == "" {
		verr.add("otherCategory", "Please specify the other category")
	}

	if len(verr.Details) > 0 {
		return nil, verr
	}

	payload := &Payload{
		Name:           req.Name,
		Email:          req.Email,
		Categories:     req.Categories,
		WtfIdea:        req.WtfIdea,
		CurrentProject: req.CurrentProject,
		YoutubeLink:    req.YoutubeLink,
	}
	if otherSelected {
		payload.OtherCategory = &trimmedOther
	}
	return payload, nil
}

func parsedAddress(email string) string {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return ""
	}
	return addr.Address
}

func isKnownCategory(category string) bool {
	return containsCategory(CategoryOptions, category)
}

func containsCategory(categories []string, want string) bool {
	for _, c := range categories {
		if c == want {
			return true
		}
	}
	return false
}

func isVideoLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}
	host := u.Hostname()
	return host == "youtu.be" || host == "youtube.com" || strings.HasSuffix(host, ".youtube.com")
}
