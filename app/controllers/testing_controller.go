package controllers

import (
	"log/slog"
	"net/http"

	"blogposts/app/services"
)

// TestingController exposes store maintenance for end-to-end test suites
type TestingController struct {
	testingService *services.TestingService
	logger         *slog.Logger
}

// NewTestingController creates a new TestingController
func NewTestingController(testingService *services.TestingService, logger *slog.Logger) *TestingController {
	return &TestingController{
		testingService: testingService,
		logger:         logger,
	}
}

// DeleteAll handles wiping every blog and post
func (tc *TestingController) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := tc.testingService.DeleteAll(r.Context()); err != nil {
		sendError(w, r, tc.logger, "Failed to delete all data", err)
		return
	}
	sendNoContent(w)
}
