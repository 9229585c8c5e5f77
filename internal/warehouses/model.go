package warehouses

// Warehouse is a physical storage location. Used capacity is maintained by
// hand; utilization is derived at read time and not bounded when used
// exceeds capacity.
type Warehouse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	Location   string `json:"location"`
	Address    string `json:"address"`
	Manager    string `json:"manager"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Capacity   int    `json:"capacity"`
	Used       int    `json:"used"`
	IsArchived bool   `json:"isArchived"`
}

func (w Warehouse) RecordID() string     { return w.ID }
func (w Warehouse) RecordArchived() bool { return w.IsArchived }
