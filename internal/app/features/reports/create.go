// internal/app/features/reports/create.go
package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	apierrors "github.com/thanachok11/CIS-Help-Me/internal/app/features/errors"
	"github.com/thanachok11/CIS-Help-Me/internal/app/policy/reportpolicy"
	reportstore "github.com/thanachok11/CIS-Help-Me/internal/app/store/reports"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/sanitize"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// maxUploadBytes bounds multipart report submissions (photo included).
const maxUploadBytes = 10 << 20

// ServeCreate handles POST /api/reports/create.
//
// Accepts either a JSON body or a multipart form with an optional "image"
// file part. The report owner is always the authenticated principal; an
// ownerId in the input is ignored. Every new report starts under review.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	scope := reportpolicy.ForRequest(r)
	if !scope.CanCreate {
		apierrors.Fail(w, http.StatusUnauthorized, "Unauthorized: no user in request")
		return
	}

	in, imageURL, ok := h.readCreateInput(w, r)
	if !ok {
		return
	}

	newReport := reportstore.NewReport{
		UserID:       scope.OwnerID,
		Type:         strings.TrimSpace(in.Type),
		Description:  sanitize.Text(in.Description),
		LocationText: sanitize.Text(in.LocationText),
		ImageURL:     imageURL,
	}
	if in.Latitude != nil {
		newReport.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		newReport.Longitude = *in.Longitude
	}

	if newReport.Type == "" || newReport.Description == "" || newReport.LocationText == "" ||
		in.Latitude == nil || in.Longitude == nil {
		apierrors.Fail(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	report, err := h.Reports.Create(ctx, newReport)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error creating report", err)
		return
	}

	h.Log.Info("emergency report created",
		zap.String("report_id", report.ID.Hex()),
		zap.String("user_id", report.UserID.Hex()),
		zap.String("type", report.Type))

	apierrors.JSON(w, http.StatusCreated, reportResponse{Success: true, Report: report})
}

// readCreateInput decodes the request into a createRequest, storing the
// photo for multipart submissions. A false return means the response has
// already been written.
func (h *Handler) readCreateInput(w http.ResponseWriter, r *http.Request) (createRequest, string, bool) {
	var in createRequest

	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			apierrors.Fail(w, http.StatusBadRequest, "Invalid request body")
			return in, "", false
		}
		return in, in.ImageURL, true
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		apierrors.Fail(w, http.StatusBadRequest, "Invalid multipart form")
		return in, "", false
	}

	in.Type = r.FormValue("type")
	in.Description = r.FormValue("description")
	in.LocationText = r.FormValue("locationText")

	if v := r.FormValue("latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			apierrors.Fail(w, http.StatusBadRequest, "Invalid latitude")
			return in, "", false
		}
		in.Latitude = &lat
	}
	if v := r.FormValue("longitude"); v != "" {
		lng, err := strconv.ParseFloat(v, 64)
		if err != nil {
			apierrors.Fail(w, http.StatusBadRequest, "Invalid longitude")
			return in, "", false
		}
		in.Longitude = &lng
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		// No photo attached; the report is still valid.
		return in, "", true
	}
	defer file.Close()

	url, err := h.Media.Save(r.Context(), header.Filename, file)
	if err != nil {
		h.ErrLog.Internal(w, r, "Error uploading image", err)
		return in, "", false
	}
	return in, url, true
}
