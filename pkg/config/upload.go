package config

// UploadRules define qué se acepta en cada contexto de subida.
type UploadRules struct {
	PathPrefix        string
	MaxSizeMB         int64
	AllowedExtensions []string
}

// UploadContexts mapea el :context de la ruta de subida a sus reglas.
// productos y presupuestos reciben imágenes; planos acepta también PDF.
var UploadContexts = map[string]UploadRules{
	"productos": {
		PathPrefix:        "productos",
		MaxSizeMB:         10,
		AllowedExtensions: []string{".jpg", ".jpeg", ".png", ".webp"},
	},
	"presupuestos": {
		PathPrefix:        "presupuestos",
		MaxSizeMB:         10,
		AllowedExtensions: []string{".jpg", ".jpeg", ".png", ".webp"},
	},
	"planos": {
		PathPrefix:        "planos",
		MaxSizeMB:         25,
		AllowedExtensions: []string{".pdf", ".jpg", ".jpeg", ".png"},
	},
}
