package utils

import (
	"strconv"

	"github.com/decker502/movieque/pkg/config"
)

// FormatPrice 货币符号 + 金额，金额保留原始精度（9.99 / 799）
// 未知货币使用货币代码作为前缀
func FormatPrice(amount float64, currency config.Currency) string {
	symbol, ok := config.CurrencySymbols[currency]
	if !ok {
		symbol = string(currency) + " "
	}
	return symbol + strconv.FormatFloat(amount, 'f', -1, 64)
}

// PlanPrice 套餐在指定货币下的显示价格
func PlanPrice(plan config.Plan, currency config.Currency) string {
	amount, ok := plan.Prices[currency]
	if !ok {
		return "-"
	}
	return FormatPrice(amount, currency)
}
