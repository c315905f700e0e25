package reports

import "github.com/thanachok11/CIS-Help-Me/internal/domain/models"

// createRequest is the JSON body for report creation. Multipart requests
// carry the same fields as form values plus an optional "image" file part.
// Latitude/longitude are pointers so a missing coordinate is
// distinguishable from zero.
type createRequest struct {
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	LocationText string   `json:"locationText"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	// ImageURL lets callers attach media that was already stored
	// externally instead of uploading a file part.
	ImageURL string `json:"imageUrl"`
}

// updateStatusRequest is the JSON body for PUT /{id}/status. Non-empty
// actionNotes overwrite the stored notes; empty notes leave them untouched.
type updateStatusRequest struct {
	Status      string `json:"status"`
	ActionNotes string `json:"actionNotes"`
}

type reportResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Report  models.Report `json:"report"`
}

type reportListResponse struct {
	Success bool            `json:"success"`
	Reports []models.Report `json:"reports"`
}
