package repository

// RouteRepository puerto para la ruta configurada de un producto (pasos
// ordenados por posición). Vacío = usar la ruta por defecto.
type RouteRepository interface {
	GetStepsByProduct(productID string) ([]string, error)
	ReplaceForProduct(productID string, steps []string) error
}
