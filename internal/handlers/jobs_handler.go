package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"hrtek/ats-checker/internal/jobs"
	"hrtek/ats-checker/internal/models"
)

type JobsHandler struct{}

func NewJobsHandler() *JobsHandler {
	return &JobsHandler{}
}

// HandleListJobs handles GET /jobs: the catalog role names in fixed order,
// plus which entry requires user-supplied text.
func (h *JobsHandler) HandleListJobs(c *fiber.Ctx) error {
	return c.JSON(models.JobListResponse{
		Roles:      jobs.Roles(),
		CustomRole: jobs.CustomRole,
	})
}

// HandleGetJob handles GET /jobs/:name.
func (h *JobsHandler) HandleGetJob(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "invalid role name",
		})
	}

	description, ok := jobs.Description(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "unknown job role",
		})
	}

	return c.JSON(fiber.Map{
		"role":        name,
		"description": description,
		"custom":      jobs.IsCustom(name),
	})
}
