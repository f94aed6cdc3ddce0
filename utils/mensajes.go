package utils

// ============================================================================
// Constantes para tipos de mensajes entre la consola y el módulo memoria
// ============================================================================
const (
	// === COMUNICACIÓN BÁSICA ===
	MensajeHandshake = 1 // Conexión inicial

	// === ACCESOS A MEMORIA (10-19) ===
	MensajeLeerByte     = 10 // Leer un byte de una dirección lógica
	MensajeEscribirByte = 11 // Escribir un byte en una dirección lógica
	MensajeDump         = 15 // Volcado de memoria de un proceso

	// === GESTIÓN DE PROCESOS (20-29) ===
	MensajeNuevoProceso     = 20 // Crear proceso y asignar sus páginas
	MensajeFinalizarProceso = 21 // Finalizar proceso y liberar sus páginas

	// === CONSULTAS DE ESTADO (40-49) ===
	MensajeMapaLibres   = 40 // Mapa de páginas libres
	MensajeTablaPaginas = 41 // Tabla de páginas de un proceso
	MensajeMetricas     = 42 // Métricas de un proceso
)
