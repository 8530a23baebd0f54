// Package client implementa o lado cliente do feed de acervo: conexão
// websocket com o servidor de catálogo, decodificação dos envelopes musenet
// e entrega dos lotes ao acervo local (memória + sqlite).
package client

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"MuseumVision/shared/catalog"
	"MuseumVision/shared/proto/musenet"
)

// FeedClient mantém a conexão com o servidor de catálogo. O feed é um canal
// de enriquecimento: o museu funciona inteiro sem ele, só com a coleção
// local.
type FeedClient struct {
	url   string
	store *catalog.Store
	db    *gorm.DB

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool

	// Callbacks para o App; chamados da goroutine de leitura.
	OnStatus func(msg string, ready bool, records int32)
	OnBatch  func(added int)
}

// NewFeedClient cria o cliente apontando para o acervo local. db pode ser
// nil; nesse caso os lotes só atualizam a memória.
func NewFeedClient(url string, store *catalog.Store, db *gorm.DB) *FeedClient {
	return &FeedClient{
		url:   url,
		store: store,
		db:    db,
	}
}

// Connect tenta estabelecer a conexão com tentativas limitadas e inicia o
// laço de leitura.
func (c *FeedClient) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var conn *websocket.Conn
	var err error
	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		log.Printf("[Network] tentativa %d/%d em %s...", i+1, maxRetries, c.url)
		conn, _, err = dialer.Dial(c.url, nil)
		if err == nil {
			break
		}
		log.Printf("[Network] servidor de catálogo indisponível: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("conectando ao feed %s: %w", c.url, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	go c.readLoop()
	log.Printf("[Network] conectado ao feed de acervo em %s", c.url)
	return nil
}

// IsConnected informa se a conexão segue viva.
func (c *FeedClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Close encerra a conexão; o laço de leitura termina em seguida.
func (c *FeedClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
	if c.conn != nil {
		c.conn.Close()
	}
}

// RequestThemes pede ao servidor até count obras dos temas dados. As obras
// chegam depois como ArtworkBatch.
func (c *FeedClient) RequestThemes(themes []string, count int32) {
	req := musenet.RequestThemes{Themes: themes, Count: count}
	c.send(musenet.TypeRequestThemes, req.Marshal())
}

func (c *FeedClient) send(t musenet.EnvelopeType, payload []byte) {
	env := musenet.Envelope{Type: t, Payload: payload}
	data := env.Marshal()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected || c.conn == nil {
		return
	}
	if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		log.Printf("[Network] erro ao enviar: %v", err)
		c.connected = false
	}
}

func (c *FeedClient) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		if c.conn != nil {
			c.conn.Close()
		}
		c.mu.Unlock()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("[Network] conexão com o feed perdida: %v", err)
			return
		}

		var env musenet.Envelope
		if err := env.Unmarshal(message); err != nil {
			log.Printf("[Network] envelope inválido: %v", err)
			continue
		}
		c.handle(&env)
	}
}

func (c *FeedClient) handle(env *musenet.Envelope) {
	switch env.Type {
	case musenet.TypeServerStatus:
		var st musenet.ServerStatus
		if err := st.Unmarshal(env.Payload); err != nil {
			log.Printf("[Network] status inválido: %v", err)
			return
		}
		log.Printf("[Network] servidor: %s (acervo pronto: %v, %d obras)",
			st.Message, st.CatalogReady, st.RecordCount)
		if c.OnStatus != nil {
			c.OnStatus(st.Message, st.CatalogReady, st.RecordCount)
		}

	case musenet.TypeArtworkBatch:
		var batch musenet.ArtworkBatch
		if err := batch.Unmarshal(env.Payload); err != nil {
			log.Printf("[Network] lote inválido: %v", err)
			return
		}
		c.processBatch(&batch)

	case musenet.TypePing:
		c.send(musenet.TypePong, nil)
	}
}

// processBatch insere o lote no acervo em memória e, se houver banco, faz o
// upsert em sqlite. Obras repetidas entre lotes são ignoradas pelo Store.
func (c *FeedClient) processBatch(batch *musenet.ArtworkBatch) {
	recs := make([]catalog.Record, 0, len(batch.Records))
	for _, r := range batch.Records {
		recs = append(recs, catalog.Record{
			ID:          r.ID,
			Title:       r.Title,
			Artist:      r.Artist,
			Description: r.Description,
			Year:        int(r.Year),
			Source:      r.Source,
			URL:         r.URL,
			Themes:      r.Themes,
		})
	}

	added := c.store.AddAll(recs)
	log.Printf("[Network] lote de %d obras recebido (%d novas no acervo)", len(recs), added)

	if c.db != nil && added > 0 {
		if err := catalog.SaveRecords(c.db, recs); err != nil {
			log.Printf("[Network] AVISO: falha ao persistir lote: %v", err)
		}
	}

	if c.OnBatch != nil {
		c.OnBatch(added)
	}
}
