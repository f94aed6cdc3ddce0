package memoria

import (
	"errors"
	"fmt"
)

// ErrSinPaginasLibres indica que el mapa de páginas libres está agotado
var ErrSinPaginasLibres = errors.New("no hay páginas libres disponibles")

// Recursos por los que puede fallar la creación de un proceso
const (
	RecursoTablaPaginas = "page table"
	RecursoPaginaDatos  = "data page"
)

// ErrSinEspacio indica que no se pudo asignar una página durante la
// creación de un proceso. No es fatal: el flujo de comandos continúa.
type ErrSinEspacio struct {
	PID     int
	Recurso string
}

func (e *ErrSinEspacio) Error() string {
	return fmt.Sprintf("OOM: proc %d: %s", e.PID, e.Recurso)
}

func (e *ErrSinEspacio) Unwrap() error {
	return ErrSinPaginasLibres
}
