// Package dashboard holds the static metrics rendered on the dashboard view.
package dashboard

// Trend is the direction of a KPI change.
type Trend int

const (
	TrendUp Trend = iota
	TrendDown
)

// Anomaly annotates a KPI with a generated explanation.
type Anomaly struct {
	Description string
}

// KPI is a single summary metric card.
type KPI struct {
	Title   string
	Value   string
	Change  string
	Trend   Trend
	Anomaly *Anomaly
}

// SalesPoint is one month of the revenue/profit series.
type SalesPoint struct {
	Month   string
	Revenue float64
	Profit  float64
}

// CategoryShare is one slice of the category breakdown.
type CategoryShare struct {
	Name  string
	Value float64
}

// Chart titles double as insight keys.
const (
	RevenueTrendsTitle   = "Revenue Trends"
	SalesByCategoryTitle = "Sales by Category"
)

// Dataset identities for the two charts.
const (
	SalesDataset    = "sales"
	CategoryDataset = "categories"
)

// KPIs returns the four cards shown at the top of the dashboard.
func KPIs() []KPI {
	return []KPI{
		{Title: "Total Revenue", Value: "$84,230", Change: "+12.5%", Trend: TrendUp},
		{Title: "Active Users", Value: "12,345", Change: "+5.2%", Trend: TrendUp},
		{
			Title:  "Sales Today",
			Value:  "$1,204",
			Change: "-2.4%",
			Trend:  TrendDown,
			Anomaly: &Anomaly{
				Description: "Today's sales are 35% lower than the average for a Tuesday, representing a statistically significant drop. The decrease is primarily from the 'Electronics' category.",
			},
		},
		{Title: "Avg. Order Value", Value: "$86.50", Change: "+8.1%", Trend: TrendUp},
	}
}

// SalesSeries returns revenue and profit by month, oldest first.
func SalesSeries() []SalesPoint {
	return []SalesPoint{
		{Month: "Jan", Revenue: 4000, Profit: 2400},
		{Month: "Feb", Revenue: 3000, Profit: 1398},
		{Month: "Mar", Revenue: 2000, Profit: 9800},
		{Month: "Apr", Revenue: 2780, Profit: 3908},
		{Month: "May", Revenue: 1890, Profit: 4800},
		{Month: "Jun", Revenue: 2390, Profit: 3800},
		{Month: "Jul", Revenue: 3490, Profit: 4300},
	}
}

// CategoryBreakdown returns sales volume per category.
func CategoryBreakdown() []CategoryShare {
	return []CategoryShare{
		{Name: "Electronics", Value: 400},
		{Name: "Clothing", Value: 300},
		{Name: "Groceries", Value: 300},
		{Name: "Home Goods", Value: 200},
	}
}

// Revenue extracts the revenue column of a series.
func Revenue(points []SalesPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Revenue
	}
	return out
}

// Profit extracts the profit column of a series.
func Profit(points []SalesPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Profit
	}
	return out
}

// Shares converts category values into fractions of the total. A zero total
// yields all zeros.
func Shares(categories []CategoryShare) []float64 {
	var total float64
	for _, c := range categories {
		total += c.Value
	}
	out := make([]float64, len(categories))
	if total <= 0 {
		return out
	}
	for i, c := range categories {
		out[i] = c.Value / total
	}
	return out
}
