package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// component descreve um binário do museu e como compilá-lo.
type component struct {
	name   string
	dir    string
	output string
	cgo    bool
	static bool
	gui    bool
}

// components lista os três binários na ordem de compilação: o feed primeiro,
// o cliente por cima, o launcher por último.
func components(goos string) []component {
	return []component{
		{name: "SERVIDOR", dir: "servidor", output: filepath.Join("servidor", exeName("server", goos)), cgo: true, static: true},
		{name: "CLIENTE", dir: "cliente", output: filepath.Join("cliente", exeName("client", goos)), cgo: true, static: true, gui: true},
		{name: "LAUNCHER", dir: "launcher", output: exeName("MuseumVision", goos)},
	}
}

// exeName acrescenta a extensão de executável da plataforma.
func exeName(base, goos string) string {
	if goos == "windows" {
		return base + ".exe"
	}
	return base
}

// linkFlags monta os ldflags do componente. Link estático e subsistema GUI
// só existem no Windows; no Linux o raylib exige X11/GL dinâmicos.
func (c component) linkFlags(goos string) string {
	flags := []string{"-s", "-w"}
	if c.static && goos == "windows" {
		flags = append([]string{"-extldflags=-static"}, flags...)
	}
	if c.gui && goos == "windows" {
		flags = append(flags, "-H=windowsgui")
	}
	return strings.Join(flags, " ")
}

func main() {
	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║     MuseumVision Native Builder      ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()
	setupEnvironment()

	comps := components(runtime.GOOS)
	for i, c := range comps {
		fmt.Printf(ColorYellow+"\n[%d/%d] Compilando %s..."+ColorReset+"\n", i+1, len(comps), c.name)
		if err := build(c); err != nil {
			fatal(err)
		}
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Printf(ColorYellow+"Dica: Execute o '%s' para visitar o museu."+ColorReset+"\n", exeName("MuseumVision", runtime.GOOS))
	pause()
}

// setupEnvironment prepara o toolchain C que o raylib e o sqlite exigem via
// cgo. No Windows isso significa o gcc do MSYS2; nos demais sistemas o cc do
// ambiente já serve.
func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0/3] Configurando ambiente de compilação..." + ColorReset)

	if runtime.GOOS != "windows" {
		fmt.Println("  - Compilador C: o padrão do sistema (cgo)")
		return
	}

	msysPath := `C:\msys64\mingw64\bin`
	currentPath := os.Getenv("PATH")
	if !strings.Contains(currentPath, msysPath) {
		os.Setenv("PATH", msysPath+";"+currentPath)
		fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
	}
	os.Setenv("CC", "gcc")
	fmt.Println("  - Compilador C: gcc (MSYS2)")
}

func build(c component) error {
	cgoValue := "0"
	if c.cgo {
		cgoValue = "1"
	}
	os.Setenv("CGO_ENABLED", cgoValue)

	cmd := exec.Command("go", "build", "-ldflags", c.linkFlags(runtime.GOOS), "-o", c.output, "./"+c.dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %v", c.name, err)
	}

	fmt.Printf(ColorGreen+"  - %s pronto -> %s"+ColorReset+"\n", c.name, c.output)
	return nil
}

// pause segura o console aberto quando o builder roda por duplo clique no
// Windows; num terminal de verdade não há o que segurar.
func pause() {
	if runtime.GOOS != "windows" {
		return
	}
	fmt.Println("\nPressione Enter para sair...")
	fmt.Scanln()
}

func fatal(err error) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	pause()
	os.Exit(1)
}
