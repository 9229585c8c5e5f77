package products

type CreateProductRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	CategoryID     string  `json:"categoryId" validate:"required"`
	WarehouseID    string  `json:"warehouseId" validate:"required"`
	SKU            string  `json:"sku" validate:"required,max=100"`
	Barcode        string  `json:"barcode" validate:"omitempty,max=100"`
	PurchasePrice  float64 `json:"purchasePrice" validate:"gte=0"`
	WholesalePrice float64 `json:"wholesalePrice" validate:"gte=0"`
	RetailPrice    float64 `json:"retailPrice" validate:"gte=0"`
	Quantity       int     `json:"quantity" validate:"gte=0"`
	Unit           string  `json:"unit" validate:"omitempty,max=50"`
	ReorderLevel   int     `json:"reorderLevel" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	CategoryID     *string  `json:"categoryId,omitempty"`
	WarehouseID    *string  `json:"warehouseId,omitempty"`
	SKU            *string  `json:"sku,omitempty" validate:"omitempty,max=100"`
	Barcode        *string  `json:"barcode,omitempty" validate:"omitempty,max=100"`
	PurchasePrice  *float64 `json:"purchasePrice,omitempty" validate:"omitempty,gte=0"`
	WholesalePrice *float64 `json:"wholesalePrice,omitempty" validate:"omitempty,gte=0"`
	RetailPrice    *float64 `json:"retailPrice,omitempty" validate:"omitempty,gte=0"`
	Quantity       *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit           *string  `json:"unit,omitempty" validate:"omitempty,max=50"`
	ReorderLevel   *int     `json:"reorderLevel,omitempty" validate:"omitempty,gte=0"`
}

type RestockRequest struct {
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	CostPerUnit float64 `json:"costPerUnit" validate:"gte=0"`
}
