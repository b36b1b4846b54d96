package dto

// SearchRequest asks for the current price of one company.
type SearchRequest struct {
	CompanyName string `json:"company_name"`
}

// SearchResponse carries a best-effort price lookup result. Success is
// false whenever no price could be resolved, with the reason in Error.
type SearchResponse struct {
	CompanyName string   `json:"company_name"`
	Price       *float64 `json:"price"`
	Success     bool     `json:"success"`
	Error       string   `json:"error,omitempty"`
}

// StockDetailsResponse carries the full extracted snapshot. Numeric
// fields are pointers because each one is independently optional.
type StockDetailsResponse struct {
	CompanyName string   `json:"company_name"`
	Price       *float64 `json:"price"`
	High        *float64 `json:"high"`
	Low         *float64 `json:"low"`
	MarketCap   string   `json:"market_cap,omitempty"`
	ROE         string   `json:"roe,omitempty"`
	ROCE        string   `json:"roce,omitempty"`
	Description string   `json:"description,omitempty"`
	Success     bool     `json:"success"`
	Error       string   `json:"error,omitempty"`
}

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
