// Package services contains the application services of the Nomina client:
// payroll listing and aggregation, catalog maintenance, user administration,
// and document handling. Services validate input locally, delegate wire work
// to the api client, and never recompute amounts the backend already settled.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominapp/nominacli/internal/models"
)

const dateLayout = "2006-01-02"

// PayrollClient is the slice of the backend client the payroll service needs.
type PayrollClient interface {
	ListNominas(ctx context.Context) ([]models.PayrollRecord, error)
	GenerarNomina(ctx context.Context, req models.GenerarNominaRequest) error
	GetVoucher(ctx context.Context, idEmpleado int64, periodo string) (*models.Voucher, error)
}

// PeriodGroup is one payroll period with its records and derived totals.
// Total and Average are computed client-side from the backend's TotalNeto
// values; per-record amounts are never recomputed.
type PeriodGroup struct {
	Periodo string
	Records []models.PayrollRecord
	Total   decimal.Decimal
	Average decimal.Decimal
}

// PayrollService defines payroll operations for the CLI.
//
// Contract:
//   - List: fetch all payroll records.
//   - Periods: fetch and group records by period label.
//   - Generate: validate and submit a payroll run request.
//   - Voucher: fetch one employee's detailed receipt for a period.
//
// All methods must honor context cancellation/timeouts.
type PayrollService interface {
	List(ctx context.Context) ([]models.PayrollRecord, error)
	Periods(ctx context.Context) ([]PeriodGroup, error)
	Generate(ctx context.Context, req models.GenerarNominaRequest) error
	Voucher(ctx context.Context, idEmpleado int64, periodo string) (*models.Voucher, error)
}

type payrollService struct {
	client PayrollClient
}

// NewPayrollService constructs a PayrollService bound to the given client.
func NewPayrollService(client PayrollClient) PayrollService {
	return &payrollService{client: client}
}

func (s *payrollService) List(ctx context.Context) ([]models.PayrollRecord, error) {
	records, err := s.client.ListNominas(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nominas error: %w", err)
	}
	return records, nil
}

func (s *payrollService) Periods(ctx context.Context) ([]PeriodGroup, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByPeriod(records), nil
}

// GroupByPeriod partitions records by their period label. Periods appear in
// first-seen order and records keep their relative order inside each group,
// so flattening the groups reproduces the input ordering per period.
func GroupByPeriod(records []models.PayrollRecord) []PeriodGroup {
	index := make(map[string]int)
	groups := make([]PeriodGroup, 0)

	for _, r := range records {
		i, ok := index[r.Periodo]
		if !ok {
			i = len(groups)
			index[r.Periodo] = i
			groups = append(groups, PeriodGroup{Periodo: r.Periodo})
		}
		groups[i].Records = append(groups[i].Records, r)
		groups[i].Total = groups[i].Total.Add(r.TotalNeto)
	}

	for i := range groups {
		if n := len(groups[i].Records); n > 0 {
			groups[i].Average = groups[i].Total.Div(decimal.NewFromInt(int64(n)))
		}
	}
	return groups
}

// Generate validates the request locally and submits it. The backend decides
// duplicates and business rules; only shape problems are rejected here.
func (s *payrollService) Generate(ctx context.Context, req models.GenerarNominaRequest) error {
	if req.Periodo == "" {
		return fmt.Errorf("%w: periodo is required", ErrValidation)
	}
	inicio, err := time.Parse(dateLayout, req.FechaInicio)
	if err != nil {
		return fmt.Errorf("%w: fechaInicio must be YYYY-MM-DD", ErrValidation)
	}
	fin, err := time.Parse(dateLayout, req.FechaFin)
	if err != nil {
		return fmt.Errorf("%w: fechaFin must be YYYY-MM-DD", ErrValidation)
	}
	if fin.Before(inicio) {
		return fmt.Errorf("%w: fechaFin precedes fechaInicio", ErrValidation)
	}

	if err := s.client.GenerarNomina(ctx, req); err != nil {
		return fmt.Errorf("generar nomina error: %w", err)
	}
	return nil
}

func (s *payrollService) Voucher(ctx context.Context, idEmpleado int64, periodo string) (*models.Voucher, error) {
	if idEmpleado <= 0 {
		return nil, fmt.Errorf("%w: idEmpleado is required", ErrValidation)
	}
	if periodo == "" {
		return nil, fmt.Errorf("%w: periodo is required", ErrValidation)
	}

	v, err := s.client.GetVoucher(ctx, idEmpleado, periodo)
	if err != nil {
		return nil, fmt.Errorf("get voucher error: %w", err)
	}
	return v, nil
}
