package request

type CreateServiceDTO struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Charges     int      `json:"charges" validate:"required,gt=0"`
	CategoryID  uint     `json:"categoryId" validate:"required"`
	Images      []string `json:"images"`
}

type UpdateServiceDTO struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Charges     int    `json:"charges" validate:"required,gt=0"`
	CategoryID  uint   `json:"categoryId" validate:"required"`
}
