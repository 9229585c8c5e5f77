package sales

type RecordSaleRequest struct {
	ProductID     string  `json:"productId" validate:"required"`
	Customer      string  `json:"customer" validate:"omitempty,max=200"`
	SaleType      string  `json:"saleType" validate:"required,oneof=wholesale retail"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice     float64 `json:"unitPrice" validate:"gte=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=cash card upi bank_transfer credit"`
	PaymentStatus string  `json:"paymentStatus" validate:"required,oneof=paid pending partial"`
	WarehouseID   string  `json:"warehouseId" validate:"omitempty,max=100"`
	InvoiceNo     string  `json:"invoiceNo" validate:"omitempty,max=50"`
	Date          string  `json:"date" validate:"omitempty,max=50"`
}
