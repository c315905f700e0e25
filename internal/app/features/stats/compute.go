// internal/app/features/stats/compute.go
//
// Pure aggregation math over report data. Kept free of I/O so the
// rounding and zero-total edge cases are testable without a database.
package stats

import (
	"fmt"
	"math"

	reportstore "github.com/thanachok11/CIS-Help-Me/internal/app/store/reports"
	"github.com/thanachok11/CIS-Help-Me/internal/domain/models"
)

// typeNames maps the known incident type codes to their localized labels.
// Unknown codes pass through unchanged so new client-side categories show
// up in statistics without a server release.
var typeNames = map[string]string{
	"fire":     "เหตุเพลิงไหม้",
	"accident": "อุบัติเหตุ",
	"medical":  "เหตุทางการแพทย์",
	"test":     "ทดสอบระบบ",
	"other":    "เหตุอื่น ๆ",
}

func displayName(code string) string {
	if name, ok := typeNames[code]; ok {
		return name
	}
	return code
}

// buildDistribution turns raw count-by-type rows into display rows and the
// total report count. Percentages divide by the total, which is guarded
// against zero: with no reports every group reads "0.00".
func buildDistribution(rows []reportstore.TypeCount) (int64, []TypeDistributionRow) {
	var total int64
	for _, row := range rows {
		total += row.Count
	}

	out := make([]TypeDistributionRow, 0, len(rows))
	for _, row := range rows {
		pct := "0.00"
		if total > 0 {
			pct = fmt.Sprintf("%.2f", float64(row.Count)/float64(total)*100)
		}
		out = append(out, TypeDistributionRow{
			Type:        row.Type,
			DisplayName: displayName(row.Type),
			Count:       row.Count,
			Percentage:  pct,
		})
	}
	return total, out
}

// responseMinutes is the elapsed minutes between a report's creation and
// its last update. For resolved reports the last update is the resolution.
func responseMinutes(r models.Report) float64 {
	return r.UpdatedAt.Sub(r.CreatedAt).Minutes()
}

// averageResponse computes the mean response time over resolved reports,
// rounded to 2 decimals. An empty set averages to 0 rather than NaN.
func averageResponse(resolved []models.Report) AverageResponse {
	avg := 0.0
	if len(resolved) > 0 {
		var sum float64
		for _, r := range resolved {
			sum += responseMinutes(r)
		}
		avg = round2(sum / float64(len(resolved)))
	}
	return AverageResponse{Value: avg, Unit: "minutes"}
}

// buildDetailed renders the per-report response-time breakdown for
// resolved reports. A blank description becomes the "-" placeholder.
func buildDetailed(resolved []models.Report) []DetailedReport {
	out := make([]DetailedReport, 0, len(resolved))
	for _, r := range resolved {
		desc := r.Description
		if desc == "" {
			desc = "-"
		}
		out = append(out, DetailedReport{
			ID:           r.ID.Hex(),
			Type:         r.Type,
			Description:  desc,
			CreatedAt:    r.CreatedAt,
			ResolvedAt:   r.UpdatedAt,
			ResponseTime: fmt.Sprintf("%.2f", responseMinutes(r)),
		})
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
