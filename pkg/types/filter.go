package types

// Filter es el filtro estándar parseado del query string:
// page/limit, search, sort[campo]=asc|desc y filter[campo]=valor.
type Filter struct {
	Page   int
	Limit  int
	Offset int
	Search string
	Sort   map[string]string
	Filter map[string]interface{}

	WithPagination bool
}
