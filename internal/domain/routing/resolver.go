package routing

import (
	"strings"

	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// DefaultSteps ruta por defecto cuando el producto terminado no tiene una
// ruta configurada en routing_steps.
var DefaultSteps = []string{"Ensamblaje", "Control de Calidad", "Empaque"}

// Resolve devuelve la lista ordenada de pasos para un producto.
// Los productos no terminados no tienen ruta (no se fabrican).
func Resolve(isFinished bool, configured []string) []string {
	if !isFinished {
		return nil
	}
	steps := configured
	if len(steps) == 0 {
		steps = DefaultSteps
	}
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}

// MatchWorkCenter busca el centro de trabajo cuyo nombre coincide con el paso
// (sin distinguir mayúsculas). Sin coincidencia el paso queda como etiqueta
// sin centro asignado.
func MatchWorkCenter(step string, centers []*entity.WorkCenter) *entity.WorkCenter {
	for _, wc := range centers {
		if strings.EqualFold(wc.Name, step) {
			return wc
		}
	}
	return nil
}
