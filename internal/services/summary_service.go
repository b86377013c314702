package services

import (
	"context"
	"fmt"
	"time"

	"budgy/internal/models/db_models"
	"budgy/internal/models/response_models"
	"budgy/internal/repositories"
	"budgy/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// summaryMonths is the length of the monthly income/expense series.
const summaryMonths = 12

type SummaryServiceInterface interface {
	BuildSummary(ctx context.Context, userID uuid.UUID) (*response_models.LedgerSummary, error)
}

type SummaryService struct {
	userRepo    repositories.UserRepository
	savingsRepo repositories.SavingsRepository
	alertRepo   repositories.AlertRepository
	summaryRepo repositories.SummaryRepository
	queries     LedgerQueryServiceInterface
	log         *zap.Logger
	now         func() time.Time
}

func NewSummaryService(
	userRepo repositories.UserRepository,
	savingsRepo repositories.SavingsRepository,
	alertRepo repositories.AlertRepository,
	summaryRepo repositories.SummaryRepository,
	queries LedgerQueryServiceInterface,
	log *zap.Logger,
) SummaryServiceInterface {
	return &SummaryService{
		userRepo:    userRepo,
		savingsRepo: savingsRepo,
		alertRepo:   alertRepo,
		summaryRepo: summaryRepo,
		queries:     queries,
		log:         log,
		now:         time.Now,
	}
}

func (s *SummaryService) BuildSummary(ctx context.Context, userID uuid.UUID) (*response_models.LedgerSummary, error) {
	user, err := s.userRepo.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, storeErr(s.log, "find user", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, userID)
	}

	out := &response_models.LedgerSummary{UserID: userID}
	end := s.now().UTC()
	y, m, _ := end.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(summaryMonths - 1), 0)

	var goals []db_models.Savings
	var incomeSeries, expenseSeries []repositories.BucketSum

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalIncome, err = s.queries.TotalIncomeByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		out.TotalExpenses, err = s.queries.TotalExpensesByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		if goals, err = s.savingsRepo.FindByUser(gctx, userID); err != nil {
			return storeErr(s.log, "list savings", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if out.UnreadAlerts, err = s.alertRepo.CountUnreadByUser(gctx, userID); err != nil {
			return storeErr(s.log, "count unread alerts", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if incomeSeries, err = s.summaryRepo.IncomeSeries(gctx, userID, start, end, "month"); err != nil {
			return storeErr(s.log, "income series", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if expenseSeries, err = s.summaryRepo.ExpenseSeries(gctx, userID, start, end, "month"); err != nil {
			return storeErr(s.log, "expense series", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.NetBalance = out.TotalIncome.Sub(out.TotalExpenses)
	out.Savings = summarizeSavings(goals)
	out.Monthly = monthlySeries(start, summaryMonths, incomeSeries, expenseSeries)
	return out, nil
}

func summarizeSavings(goals []db_models.Savings) response_models.SavingsSummary {
	sum := response_models.SavingsSummary{
		Goals:           len(goals),
		TotalTarget:     decimal.Zero,
		TotalCurrent:    decimal.Zero,
		OverallProgress: decimal.Zero,
	}
	for _, g := range goals {
		sum.TotalTarget = sum.TotalTarget.Add(g.TargetAmount)
		sum.TotalCurrent = sum.TotalCurrent.Add(g.CurrentAmount)
		if g.Reached() {
			sum.GoalsReached++
		}
	}
	if sum.TotalTarget.IsPositive() {
		sum.OverallProgress = sum.TotalCurrent.DivRound(sum.TotalTarget, 4)
	}
	return sum
}

// monthlySeries lays the sparse database buckets onto a dense run of months
// starting at start, filling gaps with zero.
func monthlySeries(start time.Time, months int, income, expenses []repositories.BucketSum) []response_models.MonthlyPoint {
	points := make([]response_models.MonthlyPoint, months)
	index := make(map[string]int, months)
	for i := range points {
		month := start.AddDate(0, i, 0)
		points[i] = response_models.MonthlyPoint{Month: month, Income: decimal.Zero, Expenses: decimal.Zero}
		index[month.Format("2006-01")] = i
	}
	for _, b := range income {
		if i, ok := index[b.Bucket.UTC().Format("2006-01")]; ok {
			points[i].Income = points[i].Income.Add(b.Sum)
		}
	}
	for _, b := range expenses {
		if i, ok := index[b.Bucket.UTC().Format("2006-01")]; ok {
			points[i].Expenses = points[i].Expenses.Add(b.Sum)
		}
	}
	return points
}
