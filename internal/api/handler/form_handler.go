package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/creatorhub/userform-api/internal/api/metrics"
	"github.com/creatorhub/userform-api/internal/core/domain"
	"github.com/creatorhub/userform-api/internal/core/ports"
)

// FormHandler handles form submission, listing and deletion. It owns the
// upload step: files are written to the FileStore before the submission is
// persisted, and the stored names go into the record in upload order.
type FormHandler struct {
	service ports.FormService
	files   ports.FileStore
	log     zerolog.Logger
}

func NewFormHandler(service ports.FormService, files ports.FileStore, log zerolog.Logger) *FormHandler {
	return &FormHandler{service: service, files: files, log: log}
}

// Submit accepts a multipart form with image files plus username and
// socialMedia fields.
//
// @Summary      Submit a creator form
// @Tags         forms
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        username     formData  string  true   "Creator username"
// @Param        socialMedia  formData  string  true   "Social media handle"
// @Param        images       formData  file    false  "Image files (up to 999)"
// @Success      200  {object}  submitFormResponse
// @Failure      500  {object}  formErrorResponse
// @Router       /user-form [post]
func (h *FormHandler) Submit(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.log.Error().Err(err).Msg("reading multipart form failed")
		return c.JSON(http.StatusInternalServerError, formErrorResponse{Message: "Error submitting user data"})
	}

	files := form.File[formFieldImages]
	if len(files) > maxUploadFiles {
		h.log.Error().Int("files", len(files)).Msg("upload exceeds file limit")
		return c.JSON(http.StatusInternalServerError, formErrorResponse{Message: "Error submitting user data"})
	}

	names := make([]string, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			h.log.Error().Err(err).Str("file", fh.Filename).Msg("opening uploaded file failed")
			return c.JSON(http.StatusInternalServerError, formErrorResponse{Message: "Error submitting user data"})
		}

		name, err := h.files.Save(fh.Filename, src)
		src.Close()
		if err != nil {
			h.log.Error().Err(err).Str("file", fh.Filename).Msg("storing uploaded file failed")
			return c.JSON(http.StatusInternalServerError, formErrorResponse{Message: "Error submitting user data"})
		}
		names = append(names, name)
	}

	_, err = h.service.Submit(c.Request().Context(), ports.SubmitFormInput{
		Username:    c.FormValue(formFieldUsername),
		SocialMedia: c.FormValue(formFieldSocialMedia),
		Images:      names,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("persisting form submission failed")
		return c.JSON(http.StatusInternalServerError, formErrorResponse{Message: "Error submitting user data"})
	}

	metrics.UploadedFilesTotal.Add(float64(len(names)))
	metrics.FormSubmissionsTotal.Inc()
	return c.JSON(http.StatusOK, submitFormResponse{Message: "User submitted successfully!"})
}

// Details returns every stored submission, unfiltered.
//
// @Summary      List all form submissions
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  detailsResponse
// @Failure      500  {object}  formErrorResponse
// @Router       /details [get]
func (h *FormHandler) Details(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	forms, err := h.service.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listing form submissions failed")
		return c.JSON(http.StatusInternalServerError, formErrorResponse{Message: "Error fetching user data"})
	}

	return c.JSON(http.StatusOK, detailsResponse{Success: true, Data: forms})
}

// Delete removes a submission by id. Image files referenced by the record
// stay on disk.
//
// @Summary      Delete a form submission
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission id"
// @Success      200  {object}  deleteFormResponse
// @Failure      404  {object}  formErrorResponse
// @Failure      500  {object}  formErrorResponse
// @Router       /delete/{id} [delete]
func (h *FormHandler) Delete(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			return c.JSON(http.StatusNotFound, formErrorResponse{Message: "User form not found"})
		}
		h.log.Error().Err(err).Str("id", c.Param("id")).Msg("deleting form submission failed")
		return c.JSON(http.StatusInternalServerError, formErrorResponse{Message: "Error deleting user form"})
	}

	metrics.FormDeletionsTotal.Inc()
	return c.JSON(http.StatusOK, deleteFormResponse{Message: "User form deleted successfully"})
}
