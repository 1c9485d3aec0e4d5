// Package migrations embebe los archivos SQL de goose para que el binario
// de migración no dependa del directorio de trabajo.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
