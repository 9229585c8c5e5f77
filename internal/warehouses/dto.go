package warehouses

type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Code     string `json:"code" validate:"required,max=50"`
	Location string `json:"location" validate:"omitempty,max=200"`
	Address  string `json:"address" validate:"omitempty,max=300"`
	Manager  string `json:"manager" validate:"omitempty,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Capacity int    `json:"capacity" validate:"gte=0"`
	Used     int    `json:"used" validate:"gte=0"`
}

type UpdateWarehouseRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Code     *string `json:"code,omitempty" validate:"omitempty,max=50"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=300"`
	Manager  *string `json:"manager,omitempty" validate:"omitempty,max=200"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Used     *int    `json:"used,omitempty" validate:"omitempty,gte=0"`
}
