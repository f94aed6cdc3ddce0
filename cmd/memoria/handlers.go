package main

import (
	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

// Handler para handshake: informa la geometría de la memoria
func handlerHandshake(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)

	return map[string]interface{}{
		"status":           "OK",
		"tam_pagina":       mem.TamPagina(),
		"cantidad_paginas": mem.CantPaginas(),
		"offset_tablas":    mem.OffsetTablas(),
	}, nil
}

func handlerNuevoProceso(msg *utils.Mensaje) (interface{}, error) {
	pid, ok := utils.ObtenerEntero(msg, "pid")
	if !ok {
		utils.ErrorLog.Error("PID no proporcionado o formato incorrecto", "datos", msg.Datos)
		return respuestaError("PID no proporcionado o formato incorrecto"), nil
	}
	cantPaginas, ok := utils.ObtenerEntero(msg, "paginas")
	if !ok {
		utils.ErrorLog.Error("Cantidad de páginas no proporcionada", "datos", msg.Datos)
		return respuestaError("cantidad de páginas no proporcionada o formato incorrecto"), nil
	}

	memSem.Wait()
	defer memSem.Signal()

	if err := mem.NuevoProceso(pid, cantPaginas); err != nil {
		return respuestaError(err.Error()), nil
	}

	return map[string]interface{}{"status": "OK"}, nil
}

func handlerFinalizarProceso(msg *utils.Mensaje) (interface{}, error) {
	pid, ok := utils.ObtenerEntero(msg, "pid")
	if !ok {
		utils.ErrorLog.Error("PID no proporcionado o formato incorrecto", "datos", msg.Datos)
		return respuestaError("PID no proporcionado o formato incorrecto"), nil
	}

	memSem.Wait()
	defer memSem.Signal()

	mem.FinalizarProceso(pid)

	return map[string]interface{}{"status": "OK"}, nil
}

func handlerEscribirByte(msg *utils.Mensaje) (interface{}, error) {
	pid, okPid := utils.ObtenerEntero(msg, "pid")
	dirLogica, okDir := utils.ObtenerEntero(msg, "direccion")
	valor, okValor := utils.ObtenerEntero(msg, "valor")
	if !okPid || !okDir || !okValor {
		utils.ErrorLog.Error("Parámetros de escritura incompletos", "datos", msg.Datos)
		return respuestaError("parámetros de escritura incompletos o formato incorrecto"), nil
	}

	utils.AplicarRetardo("escritura", config.MemoryDelay)

	memSem.Wait()
	defer memSem.Signal()

	acceso := mem.EscribirByte(pid, dirLogica, byte(valor))

	return map[string]interface{}{
		"status":     "OK",
		"dir_fisica": acceso.DirFisica,
		"valor":      int(acceso.Valor),
	}, nil
}

func handlerLeerByte(msg *utils.Mensaje) (interface{}, error) {
	pid, okPid := utils.ObtenerEntero(msg, "pid")
	dirLogica, okDir := utils.ObtenerEntero(msg, "direccion")
	if !okPid || !okDir {
		utils.ErrorLog.Error("Parámetros de lectura incompletos", "datos", msg.Datos)
		return respuestaError("parámetros de lectura incompletos o formato incorrecto"), nil
	}

	utils.AplicarRetardo("lectura", config.MemoryDelay)

	memSem.Wait()
	defer memSem.Signal()

	acceso := mem.LeerByte(pid, dirLogica)

	return map[string]interface{}{
		"status":     "OK",
		"dir_fisica": acceso.DirFisica,
		"valor":      int(acceso.Valor),
	}, nil
}

func handlerMapaLibres(msg *utils.Mensaje) (interface{}, error) {
	memSem.Wait()
	defer memSem.Signal()

	return map[string]interface{}{
		"status": "OK",
		"mapa":   mem.MapaLibresTexto(),
		"libres": mem.ContarPaginasLibres(),
	}, nil
}

func handlerTablaPaginas(msg *utils.Mensaje) (interface{}, error) {
	pid, ok := utils.ObtenerEntero(msg, "pid")
	if !ok {
		utils.ErrorLog.Error("PID no proporcionado o formato incorrecto", "datos", msg.Datos)
		return respuestaError("PID no proporcionado o formato incorrecto"), nil
	}

	memSem.Wait()
	defer memSem.Signal()

	return map[string]interface{}{
		"status": "OK",
		"tabla":  mem.TablaTexto(pid),
	}, nil
}

func handlerMetricas(msg *utils.Mensaje) (interface{}, error) {
	pid, ok := utils.ObtenerEntero(msg, "pid")
	if !ok {
		utils.ErrorLog.Error("PID no proporcionado o formato incorrecto", "datos", msg.Datos)
		return respuestaError("PID no proporcionado o formato incorrecto"), nil
	}

	memSem.Wait()
	defer memSem.Signal()

	met := mem.Metricas(pid)

	return map[string]interface{}{
		"status":       "OK",
		"asignaciones": met.Asignaciones,
		"liberaciones": met.Liberaciones,
		"lecturas":     met.Lecturas,
		"escrituras":   met.Escrituras,
		"traducciones": met.Traducciones,
	}, nil
}

func handlerDump(msg *utils.Mensaje) (interface{}, error) {
	pid, ok := utils.ObtenerEntero(msg, "pid")
	if !ok {
		utils.ErrorLog.Error("PID no proporcionado o formato incorrecto", "datos", msg.Datos)
		return respuestaError("PID no proporcionado o formato incorrecto"), nil
	}

	memSem.Wait()
	defer memSem.Signal()

	ruta, err := mem.CrearDump(pid, config.DumpPath)
	if err != nil {
		utils.ErrorLog.Error("Error al crear memory dump", "pid", pid, "error", err)
		return respuestaError(err.Error()), nil
	}

	return map[string]interface{}{
		"status":  "OK",
		"archivo": ruta,
	}, nil
}

func respuestaError(mensaje string) map[string]interface{} {
	return map[string]interface{}{"error": mensaje}
}
