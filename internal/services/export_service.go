package services

import (
	"bytes"
	"context"
	"fmt"

	"budgy/internal/models/db_models"
	"budgy/internal/repositories"
	"budgy/pkg/utils"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	SheetIncomes  = "Incomes"
	SheetExpenses = "Expenses"
	SheetSavings  = "Savings"
)

type ExportServiceInterface interface {
	// ExportUserLedger renders the user's incomes, expenses and savings goals
	// as an xlsx workbook.
	ExportUserLedger(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

type ExportService struct {
	userRepo    repositories.UserRepository
	incomeRepo  repositories.IncomeRepository
	expenseRepo repositories.ExpenseRepository
	savingsRepo repositories.SavingsRepository
	log         *zap.Logger
}

func NewExportService(
	userRepo repositories.UserRepository,
	incomeRepo repositories.IncomeRepository,
	expenseRepo repositories.ExpenseRepository,
	savingsRepo repositories.SavingsRepository,
	log *zap.Logger,
) ExportServiceInterface {
	return &ExportService{
		userRepo:    userRepo,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		savingsRepo: savingsRepo,
		log:         log,
	}
}

func (s *ExportService) ExportUserLedger(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := s.userRepo.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, storeErr(s.log, "find user", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, userID)
	}

	var (
		incomes  []db_models.Income
		expenses []db_models.Expense
		goals    []db_models.Savings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		incomes, err = s.incomeRepo.FindByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.expenseRepo.FindByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		goals, err = s.savingsRepo.FindByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeErr(s.log, "load ledger for export", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"047857"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("export style: %w", err)
	}

	w := &sheetWriter{f: f, headerStyle: headerStyle}
	w.renameSheet("Sheet1", SheetIncomes)
	w.header(SheetIncomes, "Date", "Amount", "Type", "Source", "Description")
	for i, in := range incomes {
		w.row(SheetIncomes, i+2, in.CreatedAt.UTC().Format(utils.DateTimeLayout),
			in.Amount.StringFixed(2), string(in.IncomeType), in.Source, in.Description)
	}

	w.newSheet(SheetExpenses)
	w.header(SheetExpenses, "Date", "Amount", "Category", "Description")
	for i, ex := range expenses {
		category := ""
		if ex.CategoryID != nil {
			category = ex.CategoryID.String()
		}
		w.row(SheetExpenses, i+2, ex.CreatedAt.UTC().Format(utils.DateTimeLayout),
			ex.Amount.StringFixed(2), category, ex.Description)
	}

	w.newSheet(SheetSavings)
	w.header(SheetSavings, "Name", "Target", "Current", "Progress", "Target date", "Priority")
	for i, sv := range goals {
		w.row(SheetSavings, i+2, sv.Name, sv.TargetAmount.StringFixed(2), sv.CurrentAmount.StringFixed(2),
			sv.Progress().StringFixed(4), utils.FormatDate(sv.TargetDate), string(sv.Priority))
	}
	if w.err != nil {
		return nil, fmt.Errorf("export write: %w", w.err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export encode: %w", err)
	}
	s.log.Info("ledger exported",
		zap.String("user_id", userID.String()),
		zap.Int("incomes", len(incomes)),
		zap.Int("expenses", len(expenses)),
		zap.Int("savings", len(goals)))
	return buf.Bytes(), nil
}

// sheetWriter keeps the first excelize error and turns later calls into no-ops.
type sheetWriter struct {
	f           *excelize.File
	headerStyle int
	err         error
}

func (w *sheetWriter) renameSheet(from, to string) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetSheetName(from, to)
}

func (w *sheetWriter) newSheet(name string) {
	if w.err != nil {
		return
	}
	_, w.err = w.f.NewSheet(name)
}

func (w *sheetWriter) header(sheet string, titles ...string) {
	w.row(sheet, 1, titles...)
	if w.err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheet, "A1", last, w.headerStyle)
}

func (w *sheetWriter) row(sheet string, row int, values ...string) {
	if w.err != nil {
		return
	}
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			w.err = err
			return
		}
		if err := w.f.SetCellValue(sheet, cell, v); err != nil {
			w.err = err
			return
		}
	}
}
