package repositories

import (
	"context"
	"time"
)

type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
}

// Claves de listados por entidad. La invalidación es al por mayor: cualquier
// mutación sobre la entidad borra la clave entera de su listado.
const (
	CacheKeyClientes     = "listado:clientes"
	CacheKeyProductos    = "listado:productos"
	CacheKeyVehiculos    = "listado:vehiculos"
	CacheKeyHerramientas = "listado:herramientas"
	CacheKeyProveedores  = "listado:proveedores"
	CacheKeyInstaladores = "listado:instaladores"
)
