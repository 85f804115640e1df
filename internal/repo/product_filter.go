package repo

type ProductFilter struct {
	Name       string
	CategoryID *int
	Featured   *bool
	MinPrice   *float64
	MaxPrice   *float64
	MinStock   *int
	MaxStock   *int
	Offset     *int
	Limit      *int
}
