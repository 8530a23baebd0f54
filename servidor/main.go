package main

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"MuseumVision/servidor/internal/harvester"
	"MuseumVision/shared/catalog"
	"MuseumVision/shared/config"
	"MuseumVision/shared/proto/musenet"

	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub gerencia as conexões WebSocket ativas
type Hub struct {
	clients    map[*websocket.Conn]*sync.Mutex
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]*sync.Mutex),
		broadcast:  make(chan []byte, 256), // Bufferizado para evitar deadlocks e bloqueios
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *Hub) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Hub] Recuperado de pânico fatal: %v", r)
		}
	}()

	for {
		select {
		case client, ok := <-h.register:
			if !ok {
				return
			}
			h.mu.Lock()
			h.clients[client] = &sync.Mutex{}
			h.mu.Unlock()
			log.Printf("[Server] Visitante conectado: %s", client.RemoteAddr())
		case client, ok := <-h.unregister:
			if !ok {
				return
			}
			h.mu.Lock()
			if lock, ok := h.clients[client]; ok {
				lock.Lock()
				delete(h.clients, client)
				client.Close()
				lock.Unlock()
				log.Printf("[Server] Visitante desconectado: %s", client.RemoteAddr())
			}
			h.mu.Unlock()
		case message, ok := <-h.broadcast:
			if !ok {
				return
			}
			h.mu.Lock()
			// Copiamos a lista de clientes para iterar fora do lock do hub
			type clientEntry struct {
				conn *websocket.Conn
				lock *sync.Mutex
			}
			var targets []clientEntry
			for c, l := range h.clients {
				targets = append(targets, clientEntry{c, l})
			}
			h.mu.Unlock()

			for _, target := range targets {
				target.lock.Lock()
				err := target.conn.WriteMessage(websocket.BinaryMessage, message)
				if err != nil {
					log.Printf("[Server] Erro ao enviar para %s: %v", target.conn.RemoteAddr(), err)
					target.conn.Close()
					h.mu.Lock()
					delete(h.clients, target.conn)
					h.mu.Unlock()
				}
				target.lock.Unlock()
			}
		}
	}
}

// WriteSafe garante que apenas uma goroutine escreva no WebSocket por vez
func (h *Hub) WriteSafe(conn *websocket.Conn, messageType int, data []byte) error {
	h.mu.Lock()
	lock, ok := h.clients[conn]
	h.mu.Unlock()

	if !ok {
		// Log silenciado para não poluir se o cliente acabou de desconectar
		return fmt.Errorf("cliente não encontrado no hub")
	}

	lock.Lock()
	defer lock.Unlock()
	return conn.WriteMessage(messageType, data)
}

// safeSend envia para o canal de broadcast protegendo contra pânicos de canal fechado
func (h *Hub) safeSend(data []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Hub] Aviso: Falha ao enviar broadcast (canal fechado?): %v", r)
		}
	}()
	// IMPORTANTE: Não segurar h.mu.Lock() aqui, pois o h.broadcast <- data pode
	// bloquear se o buffer estiver cheio, e o run() precisaria do lock para esvaziar.
	h.broadcast <- data
}

// clientCount retorna quantos visitantes estão conectados ao feed.
func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// SendMessage serializa um envelope musenet e o envia a um único cliente.
func (h *Hub) SendMessage(conn *websocket.Conn, msgType musenet.EnvelopeType, payload []byte) {
	env := &musenet.Envelope{Type: msgType, Payload: payload}
	if err := h.WriteSafe(conn, websocket.BinaryMessage, env.Marshal()); err != nil {
		log.Printf("[Server] Erro ao enviar mensagem tipo %d: %v", msgType, err)
	}
}

// BroadcastStatus informa todos os visitantes sobre o estado do acervo.
func (h *Hub) BroadcastStatus(message string, ready bool, records int32) {
	status := &musenet.ServerStatus{
		Message:      message,
		CatalogReady: ready,
		RecordCount:  records,
	}
	env := &musenet.Envelope{Type: musenet.TypeServerStatus, Payload: status.Marshal()}
	h.safeSend(env.Marshal())
}

// BroadcastBatch distribui um lote de obras a todos os visitantes.
func (h *Hub) BroadcastBatch(recs []catalog.Record) {
	if len(recs) == 0 {
		return
	}
	batch := recordsToBatch(recs)
	env := &musenet.Envelope{Type: musenet.TypeArtworkBatch, Payload: batch.Marshal()}
	h.safeSend(env.Marshal())
}

// recordsToBatch converte obras do acervo para o formato do protocolo.
func recordsToBatch(recs []catalog.Record) *musenet.ArtworkBatch {
	batch := &musenet.ArtworkBatch{Records: make([]musenet.ArtworkRecord, 0, len(recs))}
	for _, rec := range recs {
		batch.Records = append(batch.Records, musenet.ArtworkRecord{
			ID:          rec.ID,
			Title:       rec.Title,
			Artist:      rec.Artist,
			Description: rec.Description,
			Year:        int32(rec.Year),
			Source:      rec.Source,
			URL:         rec.URL,
			Themes:      rec.Themes,
		})
	}
	return batch
}

func main() {
	// Garante que o working directory é o mesmo diretório do executável,
	// para que caminhos relativos (acervo/, tmp/) funcionem corretamente.
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		os.Chdir(exeDir)
	}

	log.SetFlags(log.Ltime | log.Lshortfile)

	// Configurar Log em Arquivo para depuração de crash
	if err := os.MkdirAll("tmp", 0755); err == nil {
		logFile, err := os.OpenFile("tmp/server.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			// MultiWriter para logar no console e no arquivo simultaneamente
			mw := io.MultiWriter(os.Stdout, logFile)
			log.SetOutput(mw)
		}
	}
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║     MuseumVision SERVER v0.1.0       ║")
	log.Println("╚══════════════════════════════════════╝")

	cfg := config.Load()

	// Abrir o acervo (SQLite). Num banco novo a coleção embutida é semeada.
	db, err := catalog.OpenInitialize(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("[Server] Erro fatal: não foi possível abrir o acervo: %v", err)
	}

	count, err := catalog.CountRecords(db)
	if err != nil {
		log.Printf("[Server] AVISO: contagem do acervo falhou: %v", err)
	}
	log.Printf("[Server] Acervo pronto: %d obras em %s", count, cfg.CatalogDBPath)

	hub := newHub()
	go hub.run()

	// O curador vigia o banco e empurra novidades e destaques ao feed.
	curator := NewCurator(db, hub)
	curator.Start()

	// Importação opcional da coleção aberta no arranque (HARVEST_PAGES=n).
	// Roda assíncrona; o curador difunde as novidades conforme chegam.
	if pagesStr := os.Getenv("HARVEST_PAGES"); pagesStr != "" {
		if pages, err := strconv.Atoi(pagesStr); err == nil && pages > 0 {
			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("[Harvester] Recuperado de pânico: %v", r)
					}
				}()
				added, err := harvester.Harvest(db, pages)
				if err != nil {
					log.Printf("[Server] AVISO: importação interrompida: %v", err)
				}
				log.Printf("[Server] Importação da coleção aberta: %d obras gravadas", added)
			}()
		}
	}

	http.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r, db)
	})

	addr := cfg.ListenAddr
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}

	// Iniciar Servidor HTTP/WebSocket com verificação de porta
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Printf("╔══════════════════════════════════════════════════════════════╗")
		log.Printf("║ ERRO CRÍTICO: Não foi possível abrir %s.              ║", addr)
		log.Printf("║ Provavelmente há outra instância do servidor rodando.        ║")
		log.Printf("╚══════════════════════════════════════════════════════════════╝")
		log.Fatalf("[Server] Erro ao iniciar servidor: %v", err)
	}
	ln.Close() // Fecha para o ListenAndServe reabrir

	log.Printf("[Server] Feed de acervo MuseumVision servindo em %s/feed", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("[Server] Erro fatal no servidor HTTP: %v", err)
	}
}

// serveWs maneja requisições websocket do peer.
func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Server] Erro no upgrade do WebSocket: %v", err)
		return
	}
	hub.register <- conn

	// Enviar status inicial
	count, _ := catalog.CountRecords(db)
	status := &musenet.ServerStatus{
		Message:      "Conectado ao feed de acervo MuseumVision",
		CatalogReady: true,
		RecordCount:  int32(count),
	}
	hub.SendMessage(conn, musenet.TypeServerStatus, status.Marshal())

	go func() {
		defer func() {
			hub.unregister <- conn
		}()

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Printf("[Server] Conexão encerrada: %v", err)
				break
			}

			var envelope musenet.Envelope
			if err := envelope.Unmarshal(message); err != nil {
				log.Printf("[Server] Erro ao desempacotar envelope: %v", err)
				continue
			}

			handleClientMessage(hub, conn, db, &envelope)
		}
	}()
}

func handleClientMessage(hub *Hub, conn *websocket.Conn, db *gorm.DB, env *musenet.Envelope) {
	switch env.Type {
	case musenet.TypePing:
		hub.SendMessage(conn, musenet.TypePong, nil)
	case musenet.TypeRequestThemes:
		var req musenet.RequestThemes
		if err := req.Unmarshal(env.Payload); err != nil {
			log.Printf("[Server] Erro ao ler RequestThemes: %v", err)
			return
		}

		recs, err := catalog.LoadByThemes(db, req.Themes)
		if err != nil {
			log.Printf("[Server] AVISO: consulta por temas falhou: %v", err)
			return
		}
		if req.Count > 0 && len(recs) > int(req.Count) {
			recs = recs[:req.Count]
		}

		log.Printf("[Server] RequestThemes %v → %d obras", req.Themes, len(recs))
		batch := recordsToBatch(recs)
		hub.SendMessage(conn, musenet.TypeArtworkBatch, batch.Marshal())
	}
}
