package handler

import "github.com/creatorhub/userform-api/internal/core/domain"

// The submission endpoint is multipart, so there is no JSON request schema;
// field names are fixed by the form contract.
const (
	formFieldUsername    = "username"
	formFieldSocialMedia = "socialMedia"
	formFieldImages      = "images"

	// maxUploadFiles bounds how many image parts a single request may carry.
	maxUploadFiles = 999
)

type submitFormResponse struct {
	Message string `json:"message"`
}

type detailsResponse struct {
	Success bool                     `json:"success"`
	Data    []*domain.FormSubmission `json:"data"`
}

type deleteFormResponse struct {
	Message string `json:"message"`
}

// formErrorResponse is the {"message": ...} envelope the form endpoints use
// for their failure bodies.
type formErrorResponse struct {
	Message string `json:"message"`
}
