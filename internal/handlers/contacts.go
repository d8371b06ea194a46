package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"corlog/internal/contacts"
	"corlog/internal/models"

	"github.com/labstack/echo/v4"
)

// ExtractContactsHandler pulls contact records out of pasted legacy
// documents.
// @Summary Extract contacts from a legacy document
// @Description Locates the contacts section of a pasted document and parses name, role, email and phone per contact. Returns an empty list when no section is found.
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body models.ExtractContactsRequest true "Document text"
// @Success 200 {object} models.ExtractContactsResponse
// @Failure 400 {object} map[string]string
// @Router /api/contacts/extract [post]
func ExtractContactsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ExtractContactsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if strings.TrimSpace(req.RawText) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "raw_text is required",
			})
		}

		result := contacts.ExtractContacts(req.RawText)
		return c.JSON(http.StatusOK, models.ExtractContactsResponse{
			SectionFound: result.SectionFound,
			Contacts:     result.Contacts,
		})
	}
}
