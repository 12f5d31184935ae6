package classifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cognitax/cognitax/internal/classifier"
	"github.com/cognitax/cognitax/internal/statement"
)

type stubModel struct {
	reply string
	err   error
}

func (s *stubModel) Send(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

type stubOverrides struct {
	category string
	mode     string
	err      error
}

func (s *stubOverrides) Find(_ context.Context, _ string) (string, string, error) {
	return s.category, s.mode, s.err
}

func classify(t *testing.T, c *classifier.Classifier, desc string) classifier.Result {
	t.Helper()
	return c.Classify(context.Background(), desc, decimal.NewFromInt(100), statement.DirectionDebit)
}

func TestClassify_Keyword(t *testing.T) {
	c := classifier.New(nil, nil, time.Second)

	tests := []struct {
		name         string
		desc         string
		wantCategory string
		wantMode     string
	}{
		{name: "FoodDelivery", desc: "UPI/SWIGGY/ORDER12345", wantCategory: classifier.CategoryFood, wantMode: classifier.ModeUPI},
		{name: "Salary", desc: "NEFT SALARY APRIL ACME LTD", wantCategory: classifier.CategorySalary, wantMode: classifier.ModeNEFT},
		{name: "Shopping", desc: "POS AMAZON RETAIL", wantCategory: classifier.CategoryShopping, wantMode: classifier.ModeCard},
		{name: "Transport", desc: "FASTAG TOLL PLAZA", wantCategory: classifier.CategoryTransport, wantMode: classifier.ModeUnknown},
		{name: "Investment", desc: "ZERODHA BROKING LTD", wantCategory: classifier.CategoryInvestment, wantMode: classifier.ModeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := classify(t, c, tt.desc)

			assert.Equal(t, tt.wantCategory, res.Category)
			assert.Equal(t, tt.wantMode, res.Mode)
			assert.Equal(t, "keyword", res.Source)
		})
	}
}

func TestClassify_LongestKeywordWins(t *testing.T) {
	c := classifier.New(nil, nil, time.Second)

	// "payment received" and "recharge" both contain shorter keywords;
	// the longer pattern must take precedence.
	res := classify(t, c, "PAYMENT RECEIVED INV-0042")
	assert.Equal(t, classifier.CategorySales, res.Category)
}

func TestClassify_FuzzyTypo(t *testing.T) {
	c := classifier.New(nil, nil, time.Second)

	res := classify(t, c, "SWIGGGY ORDER")

	assert.Equal(t, classifier.CategoryFood, res.Category)
	assert.Equal(t, "fuzzy", res.Source)
}

func TestClassify_OverrideTakesPrecedence(t *testing.T) {
	overrides := &stubOverrides{category: classifier.CategoryRent, mode: classifier.ModeNEFT}
	c := classifier.New(overrides, nil, time.Second)

	res := classify(t, c, "SWIGGY ORDER")

	assert.Equal(t, classifier.CategoryRent, res.Category)
	assert.Equal(t, classifier.ModeNEFT, res.Mode)
	assert.Equal(t, "override", res.Source)
}

func TestClassify_OverrideErrorIsAbsorbed(t *testing.T) {
	overrides := &stubOverrides{err: errors.New("db down")}
	c := classifier.New(overrides, nil, time.Second)

	res := classify(t, c, "SWIGGY ORDER")

	assert.Equal(t, classifier.CategoryFood, res.Category)
	assert.Equal(t, "keyword", res.Source)
}

func TestClassify_Model(t *testing.T) {
	tests := []struct {
		name         string
		reply        string
		err          error
		wantCategory string
		wantSource   string
	}{
		{
			name:         "PlainJSON",
			reply:        `{"category": "Bills", "mode": "UPI"}`,
			wantCategory: classifier.CategoryBills,
			wantSource:   "model",
		},
		{
			name:         "FencedJSON",
			reply:        "```json\n{\"category\": \"Medical\", \"mode\": \"Card\"}\n```",
			wantCategory: classifier.CategoryMedical,
			wantSource:   "model",
		},
		{
			name:         "UnknownCategoryRejected",
			reply:        `{"category": "Cryptocurrency", "mode": "UPI"}`,
			wantCategory: classifier.CategoryOther,
			wantSource:   "fallback",
		},
		{
			name:         "GarbageReply",
			reply:        "sure! that looks like a food expense",
			wantCategory: classifier.CategoryOther,
			wantSource:   "fallback",
		},
		{
			name:         "ModelError",
			err:          errors.New("quota exceeded"),
			wantCategory: classifier.CategoryOther,
			wantSource:   "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifier.New(nil, &stubModel{reply: tt.reply, err: tt.err}, time.Second)

			res := classify(t, c, "XJQW UNMATCHABLE NARRATION")

			assert.Equal(t, tt.wantCategory, res.Category)
			assert.Equal(t, tt.wantSource, res.Source)
		})
	}
}

func TestClassify_FallbackWithoutModel(t *testing.T) {
	c := classifier.New(nil, nil, time.Second)

	res := classify(t, c, "XJQW UNMATCHABLE NARRATION")

	assert.Equal(t, classifier.CategoryOther, res.Category)
	assert.Equal(t, classifier.ModeUnknown, res.Mode)
	assert.Equal(t, "fallback", res.Source)
}
