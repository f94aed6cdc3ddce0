package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/memoria"
	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

var (
	mem *memoria.Memoria

	// La memoria asume un único mutador a la vez; el servidor HTTP es
	// concurrente, así que cada handler serializa su acceso acá.
	memSem = utils.NewSemaforo(1)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/memoria.json\n", os.Args[0])
		os.Exit(1)
	}

	utils.InicializarLogger("info", "Memoria")

	utils.InfoLog.Info("Iniciando módulo Memoria")

	inicializarModulo(os.Args[1])

	utils.InfoLog.Info("Memoria inicializada correctamente")

	// Mantener el programa corriendo
	select {}
}

func inicializarModulo(rutaConfig string) {
	cargado, err := utils.CargarConfiguracion[MemoryConfig](rutaConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cargando configuración: %v\n", err)
		os.Exit(1)
	}
	config = cargado

	utils.InicializarLogger(config.LogLevel, "Memoria")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	mem, err = memoria.NuevaMemoria(memoria.Config{
		TamMemoria:   config.MemorySize,
		TamPagina:    config.PageSize,
		CantPaginas:  config.PageCount,
		OffsetTablas: config.TableOffset,
	})
	if err != nil {
		utils.ErrorLog.Error("Geometría de memoria inválida", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(config.DumpPath, 0755); err != nil {
		utils.InfoLog.Warn("No se pudo crear directorio para dumps", "error", err)
	}

	server := utils.NewHTTPServer(config.IPMemory, config.PortMemory, "Memoria")
	registrarHandlers(server)

	go func() {
		if err := server.Start(); err != nil {
			utils.ErrorLog.Error("Error al iniciar servidor HTTP", "error", err)
			os.Exit(1)
		}
	}()

	utils.InfoLog.Info("Servidor iniciado", "ip", config.IPMemory, "puerto", config.PortMemory)
}

func registrarHandlers(server *utils.HTTPServer) {
	server.RegisterHTTPHandler(utils.MensajeHandshake, handlerHandshake)
	server.RegisterHTTPHandler(utils.MensajeNuevoProceso, handlerNuevoProceso)
	server.RegisterHTTPHandler(utils.MensajeFinalizarProceso, handlerFinalizarProceso)
	server.RegisterHTTPHandler(utils.MensajeEscribirByte, handlerEscribirByte)
	server.RegisterHTTPHandler(utils.MensajeLeerByte, handlerLeerByte)
	server.RegisterHTTPHandler(utils.MensajeMapaLibres, handlerMapaLibres)
	server.RegisterHTTPHandler(utils.MensajeTablaPaginas, handlerTablaPaginas)
	server.RegisterHTTPHandler(utils.MensajeMetricas, handlerMetricas)
	server.RegisterHTTPHandler(utils.MensajeDump, handlerDump)

	utils.InfoLog.Info("Handlers registrados correctamente")
}
