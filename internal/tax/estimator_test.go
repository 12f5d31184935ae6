package tax_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cognitax/cognitax/internal/tax"
	"github.com/cognitax/cognitax/internal/transaction"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func credit(s string) *transaction.Transaction {
	return &transaction.Transaction{Type: transaction.TypeCredit, Amount: amt(s)}
}

func debit(s string) *transaction.Transaction {
	return &transaction.Transaction{Type: transaction.TypeDebit, Amount: amt(s)}
}

func TestCompute_Totals(t *testing.T) {
	txs := []*transaction.Transaction{
		credit("1000.00"),
		debit("400.00"),
	}

	f := tax.Compute(tax.DefaultPolicy(), txs)

	assert.True(t, amt("1000.00").Equal(f.TotalIncome))
	assert.True(t, amt("400.00").Equal(f.TotalExpenses))
	assert.True(t, amt("600.00").Equal(f.NetCashFlow))
	assert.True(t, amt("1000.00").Equal(f.EstimatedTurnover))
	assert.True(t, f.GSTAmount.IsZero())
	assert.True(t, f.ITRAmount.IsZero())
	assert.True(t, f.TDSAmount.IsZero())
}

func TestCompute_GSTThreshold(t *testing.T) {
	p := tax.DefaultPolicy()

	// Exactly at the threshold: no GST.
	f := tax.Compute(p, []*transaction.Transaction{credit("2000000.00")})
	assert.True(t, f.GSTAmount.IsZero())

	// One paisa over: 18% of the whole turnover.
	f = tax.Compute(p, []*transaction.Transaction{credit("2000000.01")})
	assert.True(t, amt("360000.0018").Equal(f.GSTAmount))
}

func TestCompute_ITR(t *testing.T) {
	p := tax.DefaultPolicy()

	// Net profit below the exemption: no income tax.
	f := tax.Compute(p, []*transaction.Transaction{
		credit("500000.00"),
		debit("300000.00"),
	})
	assert.True(t, f.ITRAmount.IsZero())

	// 30% of (turnover - expenses - exemption).
	f = tax.Compute(p, []*transaction.Transaction{
		credit("1000000.00"),
		debit("300000.00"),
	})
	assert.True(t, amt("135000.00").Equal(f.ITRAmount))
}

func TestCompute_TDSThreshold(t *testing.T) {
	p := tax.DefaultPolicy()

	f := tax.Compute(p, []*transaction.Transaction{credit("5000000.00")})
	assert.True(t, f.TDSAmount.IsZero())

	f = tax.Compute(p, []*transaction.Transaction{credit("6000000.00")})
	assert.True(t, amt("60000.00").Equal(f.TDSAmount))
}

func TestCompute_Empty(t *testing.T) {
	f := tax.Compute(tax.DefaultPolicy(), nil)

	assert.True(t, f.TotalIncome.IsZero())
	assert.True(t, f.TotalExpenses.IsZero())
	assert.True(t, f.NetCashFlow.IsZero())
	assert.True(t, f.GSTAmount.IsZero())
	assert.True(t, f.ITRAmount.IsZero())
	assert.True(t, f.TDSAmount.IsZero())
}

func TestCompute_Deterministic(t *testing.T) {
	txs := []*transaction.Transaction{
		credit("2500000.00"),
		debit("900000.00"),
		credit("125000.50"),
	}

	p := tax.DefaultPolicy()

	assert.Equal(t, tax.Compute(p, txs), tax.Compute(p, txs))
}

func TestService_Estimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tax.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCalculation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, calc *tax.Calculation) error {
			calc.ID = uuid.New()
			return nil
		})

	svc := tax.NewService(repo, tax.DefaultPolicy())

	userID, uploadID := uuid.New(), uuid.New()

	calc, err := svc.Estimate(context.Background(), userID, uploadID, []*transaction.Transaction{
		credit("3000000.00"),
		debit("500000.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, userID, calc.UserID)
	assert.Equal(t, uploadID, calc.UploadID)
	assert.True(t, amt("3000000.00").Equal(calc.EstimatedTurnover))
	assert.True(t, amt("540000.00").Equal(calc.GSTAmount))
	assert.NotEmpty(t, calc.OptimizationTips)

	// Baseline tips always lead, in fixed order.
	assert.Equal(t, "Maintain proper GST invoices for all transactions", calc.OptimizationTips[0])
	assert.Contains(t, calc.OptimizationTips, "Turnover is above the GST registration threshold; ensure GST registration and timely GSTR filings")
}
