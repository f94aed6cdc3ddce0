package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

var cliente *utils.HTTPClient

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/consola.json\n", os.Args[0])
		os.Exit(1)
	}

	utils.InicializarLogger("info", "Consola")

	cargado, err := utils.CargarConfiguracion[ConsoleConfig](os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cargando configuración: %v\n", err)
		os.Exit(1)
	}
	config = cargado
	utils.InicializarLogger(config.LogLevel, "Consola")

	cliente = utils.NewHTTPClient(config.IPMemory, config.PortMemory, "Consola")

	if err := cliente.VerificarConexion(); err != nil {
		fmt.Fprintf(os.Stderr, "No se pudo conectar con el módulo Memoria: %v\n", err)
		os.Exit(1)
	}

	respuesta, err := cliente.EnviarHTTPMensaje(utils.MensajeHandshake, "handshake", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Handshake fallido: %v\n", err)
		os.Exit(1)
	}
	utils.InfoLog.Info("Handshake completado", "respuesta", respuesta)

	ejecutarConsola()
}

// ejecutarConsola lee comandos línea por línea y los reenvía al módulo
// Memoria. Muestra el prompt solo cuando stdin es una terminal, para
// poder encadenar scripts por pipe sin ensuciar la salida.
func ejecutarConsola() {
	interactivo := term.IsTerminal(int(os.Stdin.Fd()))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactivo {
			fmt.Print("ptsim> ")
		}
		if !scanner.Scan() {
			break
		}

		campos := strings.Fields(scanner.Text())
		if len(campos) == 0 {
			continue
		}
		if campos[0] == "salir" {
			break
		}

		if err := ejecutarComando(campos); err != nil {
			fmt.Fprintf(os.Stderr, "consola: %v\n", err)
		}
	}
}

func ejecutarComando(campos []string) error {
	switch campos[0] {
	case "pfm":
		respuesta, err := cliente.EnviarHTTPMensaje(utils.MensajeMapaLibres, "pfm", nil)
		if err != nil {
			return err
		}
		fmt.Print(campoTexto(respuesta, "mapa"))

	case "ppt":
		if len(campos) < 2 {
			return fmt.Errorf("uso: ppt proc_num")
		}
		respuesta, err := cliente.EnviarHTTPMensaje(utils.MensajeTablaPaginas, "ppt",
			map[string]interface{}{"pid": atoi(campos[1])})
		if err != nil {
			return err
		}
		fmt.Print(campoTexto(respuesta, "tabla"))

	case "np":
		if len(campos) < 3 {
			return fmt.Errorf("uso: np proc_num cant_paginas")
		}
		respuesta, err := cliente.EnviarHTTPMensaje(utils.MensajeNuevoProceso, "np",
			map[string]interface{}{"pid": atoi(campos[1]), "paginas": atoi(campos[2])})
		if err != nil {
			return err
		}
		if mensaje := campoTexto(respuesta, "error"); mensaje != "" {
			fmt.Println(mensaje)
		}

	case "kp":
		if len(campos) < 2 {
			return fmt.Errorf("uso: kp proc_num")
		}
		_, err := cliente.EnviarHTTPMensaje(utils.MensajeFinalizarProceso, "kp",
			map[string]interface{}{"pid": atoi(campos[1])})
		if err != nil {
			return err
		}

	case "sb":
		if len(campos) < 4 {
			return fmt.Errorf("uso: sb proc_num direccion valor")
		}
		pid, dir, valor := atoi(campos[1]), atoi(campos[2]), atoi(campos[3])
		respuesta, err := cliente.EnviarHTTPMensaje(utils.MensajeEscribirByte, "sb",
			map[string]interface{}{"pid": pid, "direccion": dir, "valor": valor})
		if err != nil {
			return err
		}
		fmt.Printf("Store proc %d: %d => %d, value=%d\n",
			pid, dir, campoEntero(respuesta, "dir_fisica"), campoEntero(respuesta, "valor"))

	case "lb":
		if len(campos) < 3 {
			return fmt.Errorf("uso: lb proc_num direccion")
		}
		pid, dir := atoi(campos[1]), atoi(campos[2])
		respuesta, err := cliente.EnviarHTTPMensaje(utils.MensajeLeerByte, "lb",
			map[string]interface{}{"pid": pid, "direccion": dir})
		if err != nil {
			return err
		}
		fmt.Printf("Load proc %d: %d => %d, value=%d\n",
			pid, dir, campoEntero(respuesta, "dir_fisica"), campoEntero(respuesta, "valor"))

	case "dump":
		if len(campos) < 2 {
			return fmt.Errorf("uso: dump proc_num")
		}
		respuesta, err := cliente.EnviarHTTPMensaje(utils.MensajeDump, "dump",
			map[string]interface{}{"pid": atoi(campos[1])})
		if err != nil {
			return err
		}
		fmt.Printf("Dump proc %s: %s\n", campos[1], campoTexto(respuesta, "archivo"))

	case "met":
		if len(campos) < 2 {
			return fmt.Errorf("uso: met proc_num")
		}
		respuesta, err := cliente.EnviarHTTPMensaje(utils.MensajeMetricas, "met",
			map[string]interface{}{"pid": atoi(campos[1])})
		if err != nil {
			return err
		}
		fmt.Printf("--- PROCESS %s METRICS ---\n", campos[1])
		fmt.Printf("allocs=%d frees=%d reads=%d writes=%d translations=%d\n",
			campoEntero(respuesta, "asignaciones"), campoEntero(respuesta, "liberaciones"),
			campoEntero(respuesta, "lecturas"), campoEntero(respuesta, "escrituras"),
			campoEntero(respuesta, "traducciones"))

	default:
		return fmt.Errorf("comando desconocido: %s", campos[0])
	}

	return nil
}

// campoTexto extrae un campo string de una respuesta JSON genérica
func campoTexto(respuesta interface{}, clave string) string {
	if datos, ok := respuesta.(map[string]interface{}); ok {
		if texto, ok := datos[clave].(string); ok {
			return texto
		}
	}
	return ""
}

// campoEntero extrae un campo numérico de una respuesta JSON genérica
func campoEntero(respuesta interface{}, clave string) int {
	if datos, ok := respuesta.(map[string]interface{}); ok {
		if valor, ok := datos[clave].(float64); ok {
			return int(valor)
		}
	}
	return 0
}

// atoi convierte tolerando errores, como el driver local
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
