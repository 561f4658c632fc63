package metrics

// Inventory is the inventory status card.
type Inventory struct {
	TotalItems    string `json:"total_items"`
	Value         string `json:"value"`
	ValueHidden   bool   `json:"value_hidden"`
	CriticalCount int    `json:"critical_count"`
}

// Financial is the financial overview card.
type Financial struct {
	NetPosition string `json:"net_position"`
	Receivables string `json:"receivables"`
	Payables    string `json:"payables"`
	GrossProfit string `json:"gross_profit"`
	NetProfit   string `json:"net_profit"`
	Margin      string `json:"margin"`
}

// PaymentMethod is one row of the payment-method distribution.
type PaymentMethod struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
	Amount  string `json:"amount"`
}

// Customer is one row of the top-customer ranking.
type Customer struct {
	Name         string `json:"name"`
	Spent        string `json:"spent"`
	Transactions int    `json:"transactions"`
}

// Overview groups the supplementary cards. They are the same for every
// branch.
type Overview struct {
	Inventory      Inventory       `json:"inventory"`
	Financial      Financial       `json:"financial"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	TopCustomers   []Customer      `json:"top_customers"`
}

// StaticOverview returns the supplementary card data.
func StaticOverview() Overview {
	return Overview{
		Inventory: Inventory{
			TotalItems:    "1,250",
			Value:         "$187,500",
			ValueHidden:   true,
			CriticalCount: 23,
		},
		Financial: Financial{
			NetPosition: "$13,000",
			Receivables: "$45,000",
			Payables:    "$32,000",
			GrossProfit: "$75,000",
			NetProfit:   "$47,000",
			Margin:      "20.89%",
		},
		PaymentMethods: []PaymentMethod{
			{Name: "Cash", Percent: 55, Amount: "$125,000"},
			{Name: "Card", Percent: 38, Amount: "$85,000"},
			{Name: "Bank Transfer", Percent: 7, Amount: "$15,000"},
		},
		TopCustomers: []Customer{
			{Name: "John Smith", Spent: "$12,500", Transactions: 28},
			{Name: "Sarah Johnson", Spent: "$9,800", Transactions: 22},
			{Name: "Michael Brown", Spent: "$8,750", Transactions: 19},
			{Name: "Emily Davis", Spent: "$7,200", Transactions: 16},
		},
	}
}
