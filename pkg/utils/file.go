package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gonzalolionelprieto/cerramientosxya/pkg/config"
)

// ValidateFile chequea extensión y tamaño del archivo contra las reglas del
// contexto de subida.
func ValidateFile(fileHeader *multipart.FileHeader, rules config.UploadRules) error {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	permitida := false
	for _, allowed := range rules.AllowedExtensions {
		if ext == allowed {
			permitida = true
			break
		}
	}
	if !permitida {
		return fmt.Errorf("extensión '%s' no permitida; se aceptan: %s", ext, strings.Join(rules.AllowedExtensions, ", "))
	}

	maxBytes := rules.MaxSizeMB * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return fmt.Errorf("el archivo pesa %d bytes y el máximo es %d MB", fileHeader.Size, rules.MaxSizeMB)
	}
	return nil
}
