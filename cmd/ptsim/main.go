package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/memoria"
	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

func main() {
	rutaConfig := flag.String("config", "", "archivo de configuración JSON (opcional)")
	flag.Parse()

	utils.InicializarLogger("warn", "ptsim")

	config = &DriverConfig{
		LogLevel: "warn",
		DumpPath: "dumps",
	}
	cfgMem := memoria.ConfigPorDefecto()

	if *rutaConfig != "" {
		cargado, err := utils.CargarConfiguracion[DriverConfig](*rutaConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ptsim: %v\n", err)
			os.Exit(1)
		}
		config = cargado
		utils.InicializarLogger(config.LogLevel, "ptsim")

		cfgMem = memoria.Config{
			TamMemoria:   config.TamMemoria,
			TamPagina:    config.TamPagina,
			CantPaginas:  config.CantPaginas,
			OffsetTablas: config.OffsetTablas,
		}
	}

	comandos := flag.Args()
	if len(comandos) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ptsim commands")
		os.Exit(1)
	}

	mem, err := memoria.NuevaMemoria(cfgMem)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ptsim: %v\n", err)
		os.Exit(1)
	}

	ejecutarComandos(mem, comandos)
}

// ejecutarComandos recorre el flujo de comandos en orden, consumiendo
// los argumentos de cada uno. Un error de memoria no corta el flujo.
func ejecutarComandos(mem *memoria.Memoria, args []string) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "pfm":
			fmt.Print(mem.MapaLibresTexto())

		case "ppt":
			i++
			procNum := atoi(args[i])
			fmt.Print(mem.TablaTexto(procNum))

		case "np":
			procNum := atoi(args[i+1])
			cantPaginas := atoi(args[i+2])
			i += 2
			if err := mem.NuevoProceso(procNum, cantPaginas); err != nil {
				fmt.Println(err)
			}

		case "kp":
			i++
			procNum := atoi(args[i])
			mem.FinalizarProceso(procNum)

		case "sb":
			procNum := atoi(args[i+1])
			dirLogica := atoi(args[i+2])
			valor := byte(atoi(args[i+3]))
			i += 3
			acceso := mem.EscribirByte(procNum, dirLogica, valor)
			fmt.Printf("Store proc %d: %d => %d, value=%d\n",
				acceso.PID, acceso.DirLogica, acceso.DirFisica, acceso.Valor)

		case "lb":
			procNum := atoi(args[i+1])
			dirLogica := atoi(args[i+2])
			i += 2
			acceso := mem.LeerByte(procNum, dirLogica)
			fmt.Printf("Load proc %d: %d => %d, value=%d\n",
				acceso.PID, acceso.DirLogica, acceso.DirFisica, acceso.Valor)

		case "dump":
			i++
			procNum := atoi(args[i])
			ruta, err := mem.CrearDump(procNum, config.DumpPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ptsim: dump proc %d: %v\n", procNum, err)
				continue
			}
			fmt.Printf("Dump proc %d: %s\n", procNum, ruta)

		case "met":
			i++
			procNum := atoi(args[i])
			met := mem.Metricas(procNum)
			fmt.Printf("--- PROCESS %d METRICS ---\n", procNum)
			fmt.Printf("allocs=%d frees=%d reads=%d writes=%d translations=%d\n",
				met.Asignaciones, met.Liberaciones, met.Lecturas, met.Escrituras, met.Traducciones)

		case "img":
			i++
			ruta := args[i]
			if err := mem.GenerarImagenMapa(ruta); err != nil {
				fmt.Fprintf(os.Stderr, "ptsim: img: %v\n", err)
			}

		default:
			fmt.Fprintf(os.Stderr, "ptsim: comando desconocido: %s\n", args[i])
		}
	}
}

// atoi convierte tolerando errores: un argumento no numérico vale 0,
// como el atoi del driver original.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
