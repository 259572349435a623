package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/alshifa/clinic-system/internal/core/domain"
	"github.com/alshifa/clinic-system/internal/core/ports"
)

// RevenueAgent answers finance questions for doctors and clinic owners over
// real invoice data.
type RevenueAgent struct {
	billing ports.BillingService
}

func NewRevenueAgent(billing ports.BillingService) *RevenueAgent {
	return &RevenueAgent{billing: billing}
}

func (a *RevenueAgent) Handle(ctx context.Context, in ChatInput) (*ChatReply, error) {
	if in.Role != domain.RoleDoctor && in.Role != domain.RoleOrganization {
		return &ChatReply{
			Response:    "Finance reports are only available to clinic staff.",
			ActionTaken: "refused",
		}, nil
	}

	query := strings.ToLower(in.Message)
	period := detectPeriod(query)

	summary, err := a.billing.Finance(ctx, in.UserID, period)
	if err != nil {
		return nil, err
	}

	switch detectIntent(query) {
	case "forecast":
		return &ChatReply{
			Response: fmt.Sprintf(
				"Based on current trends, your estimated %s income is approx %s %.0f (+10%% over the current %s %.0f).",
				string(summary.Period), summary.Currency, summary.Forecast, string(summary.Period), summary.TotalRevenue),
			ActionTaken: "forecast",
			Data:        summary,
		}, nil

	case "breakdown":
		if len(summary.Breakdown) == 0 {
			return &ChatReply{
				Response:    "No invoices in this period yet, so there is nothing to break down.",
				ActionTaken: "doctor_breakdown",
				Data:        summary,
			}, nil
		}
		top := summary.Breakdown[0]
		for _, row := range summary.Breakdown[1:] {
			if row.Revenue > top.Revenue {
				top = row
			}
		}
		return &ChatReply{
			Response: fmt.Sprintf(
				"Here is the %s breakdown by doctor. Top performer: %s (%s %.0f over %d appointments).",
				string(summary.Period), top.DoctorName, summary.Currency, top.Revenue, top.Appointments),
			ActionTaken: "doctor_breakdown",
			Data:        summary,
		}, nil

	default:
		return &ChatReply{
			Response: fmt.Sprintf(
				"Total revenue for this %s period is %s %.0f (%s %.0f collected, %d invoices pending).",
				string(summary.Period), summary.Currency, summary.TotalRevenue,
				summary.Currency, summary.PaidRevenue, summary.PendingCount),
			ActionTaken: "summary",
			Data:        summary,
		}, nil
	}
}

func detectPeriod(query string) ports.FinancePeriod {
	switch {
	case strings.Contains(query, "week"):
		return ports.PeriodWeekly
	case strings.Contains(query, "day") || strings.Contains(query, "today"):
		return ports.PeriodDaily
	default:
		return ports.PeriodMonthly
	}
}

func detectIntent(query string) string {
	switch {
	case strings.Contains(query, "forecast") || strings.Contains(query, "prediction") ||
		strings.Contains(query, "next") || strings.Contains(query, "going to be"):
		return "forecast"
	case strings.Contains(query, "doctor") || strings.Contains(query, "breakdown") ||
		strings.Contains(query, "who"):
		return "breakdown"
	default:
		return "summary"
	}
}
