package report

import "context"

// ReportService generates per-period productivity report documents.
type ReportService interface {
	GenerateProductivityReport(ctx context.Context, req ProductivityReportRequest) (ProductivityReport, error)
}
