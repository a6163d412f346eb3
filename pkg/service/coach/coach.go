// Package coach answers money questions with canned, keyword-matched tips.
// It makes no calls to an external model.
package coach

import (
	"context"
	"log/slog"
	"strings"
)

type tip struct {
	keywords []string
	reply    string
}

var tips = []tip{
	{
		keywords: []string{"50/30/20", "budget"},
		reply: "A 50/30/20 budget splits take-home pay into 50% needs, 30% wants " +
			"and 20% savings or debt payoff. Start by tagging last month's transactions into those buckets.",
	},
	{
		keywords: []string{"emergency", "rainy day"},
		reply: "Aim for an emergency fund covering three to six months of essential expenses, " +
			"kept in a separate savings account you do not spend from.",
	},
	{
		keywords: []string{"debt", "credit card", "interest"},
		reply: "List your debts by interest rate and pay the minimum on all of them, " +
			"then put every extra dollar on the highest rate first.",
	},
	{
		keywords: []string{"save", "saving"},
		reply:    "Automate savings: schedule a transfer on payday so the money moves before you can spend it.",
	},
	{
		keywords: []string{"invest", "retire"},
		reply: "Once you have an emergency fund, low-cost diversified index funds in a tax-advantaged " +
			"account are a common place to start. This is general information, not financial advice.",
	},
}

const fallback = "I can help with budgeting, saving, debt and emergency funds. " +
	"Try asking: \"What's a 50/30/20 budget?\""

// Service produces coaching replies.
type Service struct {
	logger *slog.Logger
}

// New creates a coach Service.
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Reply returns the first tip whose keyword appears in message.
func (s *Service) Reply(_ context.Context, message string) string {
	lower := strings.ToLower(message)
	for _, t := range tips {
		for _, k := range t.keywords {
			if strings.Contains(lower, k) {
				s.logger.Debug("coach tip matched", "keyword", k)
				return t.reply
			}
		}
	}
	return fallback
}
