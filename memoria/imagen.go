package memoria

import (
	"github.com/fogleman/gg"

	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

const (
	celdaPx    = 24 // Lado de cada celda en píxeles
	celdasFila = 16 // Misma disposición que el mapa de texto
)

// GenerarImagenMapa dibuja el mapa de páginas libres como una grilla
// PNG: verde libre, rojo ocupada.
func (m *Memoria) GenerarImagenMapa(ruta string) error {
	filas := (m.offsetTablas + celdasFila - 1) / celdasFila

	ctx := gg.NewContext(celdasFila*celdaPx, filas*celdaPx)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	for i := 0; i < m.offsetTablas; i++ {
		x := float64((i % celdasFila) * celdaPx)
		y := float64((i / celdasFila) * celdaPx)

		if m.mem[m.ComponerDireccion(0, i)] == pagLibre {
			ctx.SetRGB(0.30, 0.69, 0.31)
		} else {
			ctx.SetRGB(0.90, 0.22, 0.21)
		}
		ctx.DrawRectangle(x+1, y+1, celdaPx-2, celdaPx-2)
		ctx.Fill()
	}

	if err := ctx.SavePNG(ruta); err != nil {
		utils.ErrorLog.Error("Error guardando imagen del mapa", "archivo", ruta, "error", err)
		return err
	}

	utils.InfoLog.Info("Imagen del mapa generada", "archivo", ruta, "páginas", m.offsetTablas)
	return nil
}
