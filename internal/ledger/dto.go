package ledger

type CreateRestockOrderRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	ExpectedDate string `json:"expectedDate" validate:"omitempty,datetime=2006-01-02"`
	SupplierID   string `json:"supplierId" validate:"omitempty,max=100"`
}
