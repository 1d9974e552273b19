package config

// Currency 价格显示货币
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
	CurrencyJPY Currency = "JPY"
)

// Currencies 货币切换顺序
var Currencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyINR, CurrencyJPY}

// CurrencySymbols 货币符号
var CurrencySymbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyINR: "₹",
	CurrencyJPY: "¥",
}

// Plan 订阅套餐
type Plan struct {
	Name     string
	Prices   map[Currency]float64
	Features []string
	Popular  bool
}

// Plans 服务页展示的套餐（静态数据）
var Plans = []Plan{
	{
		Name: "Basic",
		Prices: map[Currency]float64{
			CurrencyUSD: 9.99, CurrencyEUR: 8.99, CurrencyGBP: 7.99, CurrencyINR: 799, CurrencyJPY: 990,
		},
		Features: []string{"HD streaming", "1 device at a time", "Limited downloads", "Basic support"},
	},
	{
		Name: "Standard",
		Prices: map[Currency]float64{
			CurrencyUSD: 14.99, CurrencyEUR: 13.99, CurrencyGBP: 11.99, CurrencyINR: 1199, CurrencyJPY: 1490,
		},
		Features: []string{
			"Full HD streaming", "2 devices at a time", "Unlimited downloads",
			"Priority support", "Early access to new content",
		},
		Popular: true,
	},
	{
		Name: "Premium",
		Prices: map[Currency]float64{
			CurrencyUSD: 19.99, CurrencyEUR: 17.99, CurrencyGBP: 15.99, CurrencyINR: 1599, CurrencyJPY: 1990,
		},
		Features: []string{
			"4K Ultra HD streaming", "4 devices at a time", "Unlimited downloads",
			"24/7 VIP support", "Early access to new content", "Exclusive behind-the-scenes content",
		},
	},
}

// IsValid 是否为支持的货币
func (c Currency) IsValid() bool {
	_, ok := CurrencySymbols[c]
	return ok
}

// Next 返回切换顺序中的下一个货币，未知货币回到 USD
func (c Currency) Next() Currency {
	for i, cur := range Currencies {
		if cur == c {
			return Currencies[(i+1)%len(Currencies)]
		}
	}
	return CurrencyUSD
}
