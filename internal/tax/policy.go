package tax

import "github.com/shopspring/decimal"

// Policy is the fixed-rate table the estimator applies. Rates and
// thresholds are configuration, not law: they approximate the Indian
// regime but carry no jurisdictional accuracy guarantee.
type Policy struct {
	GSTRate      decimal.Decimal // applied to turnover above GSTThreshold
	GSTThreshold decimal.Decimal
	ITRRate      decimal.Decimal // applied to net income above ITRExemption
	ITRExemption decimal.Decimal
	TDSRate      decimal.Decimal // applied to turnover above TDSThreshold
	TDSThreshold decimal.Decimal
}

// DefaultPolicy matches the platform's original simplified tables:
// 18% GST over a 20 lakh turnover, 30% ITR over the 2.5 lakh exemption,
// 1% TDS over 50 lakh turnover.
func DefaultPolicy() Policy {
	return Policy{
		GSTRate:      decimal.NewFromFloat(0.18),
		GSTThreshold: decimal.NewFromInt(2_000_000),
		ITRRate:      decimal.NewFromFloat(0.30),
		ITRExemption: decimal.NewFromInt(250_000),
		TDSRate:      decimal.NewFromFloat(0.01),
		TDSThreshold: decimal.NewFromInt(5_000_000),
	}
}
