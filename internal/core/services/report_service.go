package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// ReportService logs a treasury snapshot every evening so the committee
// has a daily record in the server log even though nothing is persisted.
type ReportService struct {
	financeService *FinanceService
	cron           *cron.Cron
}

// NewReportService creates a new report service
func NewReportService(financeService *FinanceService) *ReportService {
	return &ReportService{
		financeService: financeService,
		cron:           cron.New(),
	}
}

// Start schedules the nightly report (20:00 server time)
func (s *ReportService) Start() {
	s.cron.AddFunc("0 20 * * *", s.logSummary)
	s.cron.Start()
	log.Println("🕗 ReportService started (daily treasury report at 20:00)")
}

// Stop halts the scheduler; a running job finishes first
func (s *ReportService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 ReportService stopped")
}

func (s *ReportService) logSummary() {
	summary := s.financeService.Summarize()
	log.Printf("📊 Treasury report: balance=%.0f income=%.0f expenses=%.0f dues=%d",
		summary.TotalBalance, summary.TotalIncome, summary.TotalExpenses, summary.DuesCollected)
}
