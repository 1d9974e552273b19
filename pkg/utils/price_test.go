package utils

import (
	"testing"

	"github.com/decker502/movieque/pkg/config"
)

// TestFormatPrice 测试价格格式化
func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency config.Currency
		want     string
	}{
		{"美元小数", 9.99, config.CurrencyUSD, "$9.99"},
		{"欧元", 13.99, config.CurrencyEUR, "€13.99"},
		{"英镑", 15.99, config.CurrencyGBP, "£15.99"},
		{"卢比整数", 799, config.CurrencyINR, "₹799"},
		{"日元整数", 1990, config.CurrencyJPY, "¥1990"},
		{"未知货币", 5, "BTC", "BTC 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.amount, tt.currency); got != tt.want {
				t.Errorf("FormatPrice(%v, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}

// TestPlanPrice 每个套餐在每种货币下都有价格
func TestPlanPrice(t *testing.T) {
	for _, plan := range config.Plans {
		for _, c := range config.Currencies {
			if got := PlanPrice(plan, c); got == "-" {
				t.Errorf("plan %s has no %s price", plan.Name, c)
			}
		}
	}

	if got := PlanPrice(config.Plan{Name: "Empty"}, config.CurrencyUSD); got != "-" {
		t.Errorf("PlanPrice without prices = %q, want -", got)
	}
	if got := PlanPrice(config.Plans[0], config.CurrencyUSD); got != "$9.99" {
		t.Errorf("Basic USD = %q, want $9.99", got)
	}
}
