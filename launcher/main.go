package main

import (
	"fmt"
	"log"
	"net"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// feedAddr espelha a porta padrão do ServerURL do cliente.
const feedAddr = "127.0.0.1:8091"

func main() {
	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║       MuseumVision Launcher          ║")
	fmt.Println("╚══════════════════════════════════════╝")

	fmt.Println("[1/2] Iniciando o feed de acervo...")
	if err := launchServer(); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}

	fmt.Println("Aguardando o feed de acervo subir...")
	if waitFeed(feedAddr, 5*time.Second) {
		fmt.Println("Feed de acervo no ar.")
	} else {
		fmt.Println("Feed não respondeu; o museu abre com o acervo local.")
	}

	fmt.Println("[2/2] Abrindo o museu...")
	if err := launchClient(); err != nil {
		fmt.Printf("ERRO CRÍTICO: Não foi possível executar o cliente\n")
		fmt.Printf("Detalhes: %v\n", err)
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
		return
	}

	fmt.Println("\nSucesso! MuseumVision foi iniciado.")
	fmt.Println("O Launcher fechará automaticamente em 2 segundos...")
	time.Sleep(2 * time.Second)
}

// serverCommand monta o comando que sobe o feed: no Windows numa janela de
// console própria, para os logs ficarem visíveis; nos demais sistemas como
// processo filho direto, que já loga em tmp/server.log.
func serverCommand(goos string) *exec.Cmd {
	var cmd *exec.Cmd
	if goos == "windows" {
		cmd = exec.Command("cmd", "/c", "start", "MuseumVision SERVER", "server.exe")
	} else {
		cmd = exec.Command("./server")
	}
	cmd.Dir = "servidor"
	return cmd
}

func launchServer() error {
	cmd := serverCommand(runtime.GOOS)
	if runtime.GOOS == "windows" {
		// `start` retorna assim que a janela abre
		return cmd.Run()
	}
	return cmd.Start()
}

// launchClient abre o museu com o feed habilitado. O caminho absoluto evita
// ambiguidade de PATH; o diretório de trabalho é onde o cliente guarda
// config.json e acervo/.
func launchClient() error {
	absClientPath, err := filepath.Abs(filepath.Join("cliente", exeName("client", runtime.GOOS)))
	if err != nil {
		return fmt.Errorf("resolver caminho do cliente: %v", err)
	}

	cmd := exec.Command(absClientPath, "-sync")
	cmd.Dir = "cliente"
	return cmd.Start()
}

// waitFeed sonda a porta do feed até ela aceitar conexão, dentro do limite.
// O cliente tolera feed ausente, então o launcher nunca trava aqui.
func waitFeed(addr string, limit time.Duration) bool {
	deadline := time.Now().Add(limit)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
		if err == nil {
			conn.Close()
			return true
		}
		time.Sleep(250 * time.Millisecond)
	}
	return false
}

// exeName acrescenta a extensão de executável da plataforma.
func exeName(base, goos string) string {
	if goos == "windows" {
		return base + ".exe"
	}
	return base
}
