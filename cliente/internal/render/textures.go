package render

import (
	"fmt"
	"hash/fnv"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"MuseumVision/shared/util"
)

const (
	// procgenScheme marca obras sem arquivo de origem: a tela é sintetizada
	// localmente de forma determinística a partir da própria URL.
	procgenScheme = "procgen://"

	canvasTexSize = 256
	maxImageBytes = 16 << 20

	resultsBuffer = 512
)

// httpClient limita o tempo total de uma busca remota; uma origem lenta não
// pode segurar um worker indefinidamente.
var httpClient = &http.Client{Timeout: 12 * time.Second}

// TextureRequest pede a imagem de uma obra para um slot de um espaço.
type TextureRequest struct {
	SpaceKey string
	Slot     int
	URL      string
}

// TextureResult carrega a imagem decodificada em CPU, pronta para subir à
// GPU no laço principal. Placeholder indica que a origem falhou e a imagem é
// o xadrez padrão; a URL original permanece no registro da obra.
type TextureResult struct {
	SpaceKey    string
	Slot        int
	URL         string
	Image       *rl.Image
	Placeholder bool
}

// TextureLoader resolve imagens de obras fora do laço de renderização com um
// pool de workers alimentado por uma fila com chave única por espaço+slot.
// Quando um espaço é evictado, seus pedidos ainda na fila saem dela antes de
// ocupar um worker e os resultados em voo são engolidos antes de chegar à GPU.
type TextureLoader struct {
	queue   *util.UniqueQueue[string, TextureRequest]
	wake    chan struct{}
	results chan TextureResult
	stop    chan struct{}

	pendingMu sync.Mutex
	inFlight  map[string]bool
	perSpace  map[string]int
	canceled  map[string]bool
}

// NewTextureLoader inicia o pool com o número de workers dado.
func NewTextureLoader(workers int) *TextureLoader {
	if workers <= 0 {
		workers = 2
	}

	l := &TextureLoader{
		queue:    util.NewUniqueQueue[string, TextureRequest](),
		wake:     make(chan struct{}, workers),
		results:  make(chan TextureResult, resultsBuffer),
		stop:     make(chan struct{}),
		inFlight: make(map[string]bool),
		perSpace: make(map[string]int),
		canceled: make(map[string]bool),
	}
	for i := 0; i < workers; i++ {
		go l.worker(i)
	}
	log.Printf("[Textures] pool iniciado com %d workers", workers)
	return l
}

func requestKey(spaceKey string, slot int) string {
	return fmt.Sprintf("%s:%d", spaceKey, slot)
}

// Enqueue registra um pedido. Retorna false se o mesmo slot já está na fila
// ou em voo.
func (l *TextureLoader) Enqueue(req TextureRequest) bool {
	key := requestKey(req.SpaceKey, req.Slot)

	l.pendingMu.Lock()
	if l.inFlight[key] {
		l.pendingMu.Unlock()
		return false
	}
	if !l.queue.Enqueue(key, req) {
		l.pendingMu.Unlock()
		return false
	}
	l.perSpace[req.SpaceKey]++
	delete(l.canceled, req.SpaceKey)
	l.pendingMu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// CancelSpace descarta os pedidos do espaço: os ainda na fila saem dela na
// hora, os em voo são engolidos quando o worker terminar.
func (l *TextureLoader) CancelSpace(spaceKey string) {
	prefix := spaceKey + ":"
	removed := l.queue.RemoveWhere(func(k string) bool {
		return strings.HasPrefix(k, prefix)
	})

	l.pendingMu.Lock()
	defer l.pendingMu.Unlock()
	if removed > 0 {
		l.perSpace[spaceKey] -= removed
	}
	if l.perSpace[spaceKey] > 0 {
		l.canceled[spaceKey] = true
	} else {
		delete(l.perSpace, spaceKey)
		delete(l.canceled, spaceKey)
	}
}

// Results é o canal de imagens prontas, drenado pelo laço principal.
func (l *TextureLoader) Results() <-chan TextureResult {
	return l.results
}

// PendingCount informa quantos pedidos ainda não produziram resultado.
func (l *TextureLoader) PendingCount() int {
	l.pendingMu.Lock()
	inFlight := len(l.inFlight)
	l.pendingMu.Unlock()
	return inFlight + l.queue.Len()
}

// Stop encerra os workers. Pedidos restantes na fila são abandonados.
func (l *TextureLoader) Stop() {
	close(l.stop)
}

func (l *TextureLoader) isCanceled(spaceKey string) bool {
	l.pendingMu.Lock()
	defer l.pendingMu.Unlock()
	return l.canceled[spaceKey]
}

func (l *TextureLoader) forget(key, spaceKey string) {
	l.pendingMu.Lock()
	defer l.pendingMu.Unlock()
	delete(l.inFlight, key)
	l.perSpace[spaceKey]--
	if l.perSpace[spaceKey] <= 0 {
		delete(l.perSpace, spaceKey)
		delete(l.canceled, spaceKey)
	}
}

// next retira o pedido mais antigo e o marca em voo num passo só, para o
// cancelamento nunca ver um pedido em terra de ninguém.
func (l *TextureLoader) next() (TextureRequest, bool) {
	l.pendingMu.Lock()
	defer l.pendingMu.Unlock()

	key, req, ok := l.queue.Dequeue()
	if ok {
		l.inFlight[key] = true
	}
	return req, ok
}

func (l *TextureLoader) worker(id int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] worker de texturas %d: %v", id, r)
		}
	}()

	for {
		select {
		case <-l.stop:
			return
		case <-l.wake:
			for {
				select {
				case <-l.stop:
					return
				default:
				}
				req, ok := l.next()
				if !ok {
					break
				}
				l.process(req)
			}
		}
	}
}

func (l *TextureLoader) process(req TextureRequest) {
	defer l.forget(requestKey(req.SpaceKey, req.Slot), req.SpaceKey)

	if l.isCanceled(req.SpaceKey) {
		return
	}

	img, placeholder := loadArtImage(req.URL)
	if img == nil {
		return
	}

	// O espaço pode ter sido evictado durante o carregamento.
	if l.isCanceled(req.SpaceKey) {
		rl.UnloadImage(img)
		return
	}

	res := TextureResult{
		SpaceKey:    req.SpaceKey,
		Slot:        req.Slot,
		URL:         req.URL,
		Image:       img,
		Placeholder: placeholder,
	}
	select {
	case l.results <- res:
	case <-l.stop:
		rl.UnloadImage(img)
	}
}

// loadArtImage resolve a URL de uma obra numa imagem CPU. Qualquer falha cai
// no xadrez placeholder com o segundo retorno true; a obra continua
// exibível e a URL original fica preservada no registro.
func loadArtImage(url string) (*rl.Image, bool) {
	switch {
	case strings.HasPrefix(url, procgenScheme):
		return synthesizeCanvas(planCanvas(url)), false
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		if img := fetchRemote(url); img != nil {
			return img, false
		}
	default:
		img := rl.LoadImage(url)
		if img != nil && img.Width > 0 && img.Height > 0 {
			return img, false
		}
		log.Printf("[Textures] FALHA ao carregar arquivo %s, usando placeholder", url)
	}
	return placeholderImage(), true
}

func fetchRemote(url string) *rl.Image {
	resp, err := httpClient.Get(url)
	if err != nil {
		log.Printf("[Textures] FALHA na busca de %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Textures] FALHA na busca de %s: HTTP %d", url, resp.StatusCode)
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		log.Printf("[Textures] FALHA lendo %s: %v", url, err)
		return nil
	}

	img := rl.LoadImageFromMemory(imageExt(url), data, int32(len(data)))
	if img == nil || img.Width == 0 || img.Height == 0 {
		log.Printf("[Textures] FALHA decodificando %s", url)
		return nil
	}
	return img
}

// imageExt deduz a extensão para o decodificador; sem extensão conhecida
// tenta png.
func imageExt(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	switch ext := strings.ToLower(path.Ext(url)); ext {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tga", ".gif", ".qoi":
		return ext
	default:
		return ".png"
	}
}

type canvasKind int

const (
	canvasChecked canvasKind = iota
	canvasLinear
	canvasRadial
	canvasPerlin
	canvasCellular
	canvasKinds
)

// canvasPlan fixa os parâmetros de uma tela sintética. O plano deriva apenas
// da URL, então a mesma obra rende a mesma imagem em qualquer máquina e em
// qualquer sessão.
type canvasPlan struct {
	kind      canvasKind
	primary   rl.Color
	secondary rl.Color
	detail    int
}

func planCanvas(url string) canvasPlan {
	h := fnv.New64a()
	h.Write([]byte(url))
	sum := h.Sum64()

	// Primária escura, secundária clara: garante contraste em qualquer par.
	primary := rl.NewColor(uint8(sum)/2, uint8(sum>>8)/2, uint8(sum>>16)/2, 255)
	secondary := rl.NewColor(128+uint8(sum>>24)/2, 128+uint8(sum>>32)/2, 128+uint8(sum>>40)/2, 255)

	return canvasPlan{
		kind:      canvasKind(sum % uint64(canvasKinds)),
		primary:   primary,
		secondary: secondary,
		detail:    int(sum>>48%6) + 2,
	}
}

func synthesizeCanvas(plan canvasPlan) *rl.Image {
	switch plan.kind {
	case canvasLinear:
		return rl.GenImageGradientLinear(canvasTexSize, canvasTexSize, (plan.detail%4)*45, plan.primary, plan.secondary)
	case canvasRadial:
		return rl.GenImageGradientRadial(canvasTexSize, canvasTexSize, 0.2, plan.secondary, plan.primary)
	case canvasPerlin:
		return rl.GenImagePerlinNoise(canvasTexSize, canvasTexSize, plan.detail*17, plan.detail*31, 4.0)
	case canvasCellular:
		return rl.GenImageCellular(canvasTexSize, canvasTexSize, canvasTexSize/(plan.detail+2))
	default:
		return rl.GenImageChecked(canvasTexSize, canvasTexSize,
			canvasTexSize/(plan.detail*4), canvasTexSize/(plan.detail*4), plan.primary, plan.secondary)
	}
}

// placeholderImage é o xadrez neutro exibido quando a origem falha.
func placeholderImage() *rl.Image {
	return rl.GenImageChecked(canvasTexSize, canvasTexSize, 32, 32,
		rl.NewColor(210, 205, 198, 255), rl.NewColor(92, 88, 84, 255))
}
