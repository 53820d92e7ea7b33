package models

// Customer is created the first time a person appears in a transaction and is
// mutated in place as later transactions reuse it.
type Customer struct {
	CustID           string  `json:"cust_id"`
	CustName         string  `json:"cust_name"`
	CustBdate        *string `json:"cust_bdate"`
	CustAddress      *string `json:"cust_address"`
	CustEmail        *string `json:"cust_email"`
	CustContact      *string `json:"cust_contact"`
	TotalServices    int     `json:"total_services"`
	TotalExpenditure float64 `json:"total_expenditure"`
}

// LineItemService attaches one catalog service and a quantity to a line item.
type LineItemService struct {
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
}

type LineItem struct {
	LineItemID      string            `json:"line_item_id"`
	TransactionID   string            `json:"transaction_id"`
	Priority        string            `json:"priority"`
	CustID          string            `json:"cust_id"`
	Services        []LineItemService `json:"services"`
	StorageFee      float64           `json:"storage_fee"`
	BranchID        string            `json:"branch_id"`
	Shoes           string            `json:"shoes"`
	CurrentLocation string            `json:"current_location"`
	CurrentStatus   string            `json:"current_status"`
	DueDate         *string           `json:"due_date"`
	LatestUpdate    string            `json:"latest_update"`
	BeforeImg       *string           `json:"before_img"`
	AfterImg        *string           `json:"after_img"`
}

// Transaction owns its line items and payments by id reference. DateOut is set
// only when the transaction is fully paid.
type Transaction struct {
	TransactionID  string   `json:"transaction_id"`
	LineItemID     []string `json:"line_item_id"`
	BranchID       string   `json:"branch_id"`
	DateIn         string   `json:"date_in"`
	ReceivedBy     string   `json:"received_by"`
	DateOut        *string  `json:"date_out"`
	CustID         string   `json:"cust_id"`
	NoPairs        int      `json:"no_pairs"`
	NoReleased     int      `json:"no_released"`
	TotalAmount    float64  `json:"total_amount"`
	DiscountAmount float64  `json:"discount_amount"`
	AmountPaid     float64  `json:"amount_paid"`
	PaymentStatus  string   `json:"payment_status"`
	Payments       []string `json:"payments"`
	PaymentMode    *string  `json:"payment_mode"`
}

// Payment statuses carried by Transaction.PaymentStatus.
const (
	StatusPaid    = "PAID"
	StatusPartial = "PARTIAL"
	StatusNotPaid = "NP"
)

type Payment struct {
	PaymentID     string  `json:"payment_id"`
	TransactionID string  `json:"transaction_id"`
	PaymentAmount float64 `json:"payment_amount"`
	PaymentMode   string  `json:"payment_mode"`
	PaymentDate   string  `json:"payment_date"`
}

// Promo covers an explicit list of dates (YYYY-MM-DD) for one branch.
type Promo struct {
	PromoID          string   `json:"promo_id"`
	PromoTitle       string   `json:"promo_title"`
	PromoDescription string   `json:"promo_description"`
	PromoDates       []string `json:"promo_dates"`
	PromoDuration    string   `json:"promo_duration"`
	BranchID         string   `json:"branch_id"`
}

// Unavailability window types.
const (
	FullDay    = "Full Day"
	PartialDay = "Partial Day"
)

// Unavailability marks one branch date as closed (Full Day) or reduced
// (Partial Day, with start/end times).
type Unavailability struct {
	UnavailabilityID string  `json:"unavailability_id"`
	BranchID         string  `json:"branch_id"`
	DateUnavailable  string  `json:"date_unavailable"`
	Type             string  `json:"type"`
	TimeStart        *string `json:"time_start"`
	TimeEnd          *string `json:"time_end"`
	Note             string  `json:"note"`
}
