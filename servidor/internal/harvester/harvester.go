// Package harvester importa obras de coleções abertas para o acervo do
// servidor. A fonte é a API pública do Art Institute of Chicago, que
// dispensa chave e serve imagens via IIIF.
package harvester

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"MuseumVision/shared/catalog"
)

const (
	articEndpoint = "https://api.artic.edu/api/v1/artworks"
	articFields   = "id,title,artist_title,date_start,medium_display,image_id,term_titles"
	pageSize      = 25
)

// Client consulta a coleção aberta e converte respostas em obras do acervo.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: 20 * time.Second},
		baseURL: articEndpoint,
	}
}

// articPage espelha o subconjunto da resposta JSON que interessa.
type articPage struct {
	Pagination struct {
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
	Data []struct {
		ID            int      `json:"id"`
		Title         string   `json:"title"`
		ArtistTitle   string   `json:"artist_title"`
		DateStart     int      `json:"date_start"`
		MediumDisplay string   `json:"medium_display"`
		ImageID       string   `json:"image_id"`
		TermTitles    []string `json:"term_titles"`
	} `json:"data"`
}

// FetchPage busca uma página da coleção e a converte para o acervo.
// Retorna também o total de páginas reportado pela API.
func (c *Client) FetchPage(page int) ([]catalog.Record, int, error) {
	url := fmt.Sprintf("%s?page=%d&limit=%d&fields=%s", c.baseURL, page, pageSize, articFields)

	resp, err := c.http.Get(url)
	if err != nil {
		return nil, 0, fmt.Errorf("consultar coleção aberta: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("coleção aberta respondeu %s", resp.Status)
	}

	var parsed articPage
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, 0, fmt.Errorf("decodificar página %d: %w", page, err)
	}

	recs := make([]catalog.Record, 0, len(parsed.Data))
	for _, item := range parsed.Data {
		// Sem imagem não há o que pendurar.
		if item.ImageID == "" || item.Title == "" {
			continue
		}
		recs = append(recs, catalog.Record{
			ID:          fmt.Sprintf("artic-%d", item.ID),
			Title:       item.Title,
			Artist:      item.ArtistTitle,
			Description: item.MediumDisplay,
			Year:        item.DateStart,
			Source:      "Art Institute of Chicago",
			URL:         fmt.Sprintf("https://www.artic.edu/iiif/2/%s/full/843,/0/default.jpg", item.ImageID),
			Themes:      classifyThemes(item.TermTitles),
		})
	}
	return recs, parsed.Pagination.TotalPages, nil
}

// themeKeywords traduz termos da coleção aberta para os temas das alas.
// Lista ordenada para que a classificação seja estável entre execuções.
var themeKeywords = []struct {
	keyword string
	theme   string
}{
	{"portrait", "portrait"},
	{"self-portrait", "portrait"},
	{"sculpture", "sculpture"},
	{"statue", "sculpture"},
	{"bronze", "sculpture"},
	{"landscape", "landscape"},
	{"seascape", "landscape"},
	{"abstract", "abstract"},
	{"cubism", "abstract"},
	{"modern", "modern"},
	{"modernism", "modern"},
	{"baroque", "baroque"},
	{"rococo", "baroque"},
	{"minimal", "minimalist"},
	{"geometric", "minimalist"},
	{"industrial", "industrial"},
	{"machine", "industrial"},
	{"classical", "classical"},
	{"ancient", "classical"},
	{"neoclassical", "classical"},
}

// classifyThemes mapeia os termos da API para o vocabulário de temas do
// museu. Sem correspondência a obra cai no tema "general", que toda sala
// aceita como complemento.
func classifyThemes(terms []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, 3)

	for _, term := range terms {
		lower := strings.ToLower(term)
		for _, kw := range themeKeywords {
			if strings.Contains(lower, kw.keyword) && !seen[kw.theme] {
				seen[kw.theme] = true
				out = append(out, kw.theme)
			}
		}
	}

	if len(out) == 0 {
		out = append(out, catalog.FallbackTheme)
	}
	return out
}

// Harvest importa até maxPages páginas para o banco do acervo e retorna
// quantas obras foram gravadas. Erros no meio do caminho preservam o que já
// foi importado.
func Harvest(db *gorm.DB, maxPages int) (int, error) {
	client := NewClient()
	total := 0

	for page := 1; page <= maxPages; page++ {
		recs, totalPages, err := client.FetchPage(page)
		if err != nil {
			return total, err
		}

		if err := catalog.SaveRecords(db, recs); err != nil {
			return total, err
		}
		total += len(recs)
		log.Printf("[Harvester] Página %d: %d obras gravadas no acervo", page, len(recs))

		if totalPages > 0 && page >= totalPages {
			break
		}
		// Cortesia com a API pública.
		time.Sleep(500 * time.Millisecond)
	}
	return total, nil
}
