package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-voice/internal/api/dto"
	"github.com/spec-kit/civic-voice/internal/auth"
	"github.com/spec-kit/civic-voice/internal/domain"
	"github.com/spec-kit/civic-voice/internal/service"
	apperrors "github.com/spec-kit/civic-voice/pkg/util"
)

// IssuesHandler manages issue reporting endpoints.
type IssuesHandler struct {
	issues *service.IssueService
}

// NewIssuesHandler constructs handler.
func NewIssuesHandler(issueService *service.IssueService) *IssuesHandler {
	return &IssuesHandler{issues: issueService}
}

// Report handles POST /api/issues.
func (h *IssuesHandler) Report(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}

	var req dto.ReportIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.IssueReportInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Location != nil {
		input.Location = &service.IssueLocationInput{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
		}
	}

	issue, err := h.issues.Report(c.Context(), principal.User.ID, input)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.IssueSummary{
		IssueID:    issue.ID,
		Title:      issue.Title,
		Category:   issue.Category,
		Status:     issue.Status,
		ReportedAt: issue.ReportedAt,
	}})
}

// ListCommunity handles GET /api/issues.
func (h *IssuesHandler) ListCommunity(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return apperrors.NewUnauthorized("user required")
	}

	entries, err := h.issues.ListCommunity(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.FeedIssueResponse, 0, len(entries))
	for i := range entries {
		items = append(items, feedIssueResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListMine handles GET /api/issues/my.
func (h *IssuesHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}

	issues, err := h.issues.ListMine(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}

	items := make([]dto.IssueResponse, 0, len(issues))
	for i := range issues {
		items = append(items, issueResponse(&issues[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func issueResponse(issue *domain.Issue) dto.IssueResponse {
	return dto.IssueResponse{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: issue.Description,
		Category:    issue.Category,
		Location: dto.IssueLocationResponse{
			Latitude:  issue.Location.Latitude,
			Longitude: issue.Location.Longitude,
			Address:   issue.Location.Address,
		},
		ReportedBy: issue.ReportedBy,
		Status:     issue.Status,
		ReportedAt: issue.ReportedAt,
	}
}

func feedIssueResponse(entry *domain.IssueWithReporter) dto.FeedIssueResponse {
	return dto.FeedIssueResponse{
		ID:          entry.ID,
		Title:       entry.Title,
		Description: entry.Description,
		Category:    entry.Category,
		Location: dto.IssueLocationResponse{
			Latitude:  entry.Location.Latitude,
			Longitude: entry.Location.Longitude,
			Address:   entry.Location.Address,
		},
		ReportedBy: dto.ReporterRef{
			DisplayName: entry.ReporterName,
			Email:       entry.ReporterEmail,
		},
		Status:     entry.Status,
		ReportedAt: entry.ReportedAt,
	}
}
