package request

// Pagination reads page/page_size query parameters with the defaults used
// across all list endpoints.
type Pagination struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// Normalize clamps zero values to the defaults. Useful when the struct is
// populated manually instead of through gin binding.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
}
