package utils

import (
	"log/slog"
	"time"
)

// AplicarRetardo aplica un retardo simulado de acceso y lo registra
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	slog.Debug("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}

// ObtenerEntero extrae un campo entero de los datos de un mensaje.
// Los números JSON llegan como float64.
func ObtenerEntero(msg *Mensaje, clave string) (int, bool) {
	datosMap, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return 0, false
	}
	valor, ok := datosMap[clave].(float64)
	if !ok {
		return 0, false
	}
	return int(valor), true
}
