package contextkeys

type contextKey string

const (
	InstaladorIDKey     contextKey = "InstaladorID"
	InstaladorNombreKey contextKey = "InstaladorNombre"
)
