package catalog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ArtworkModel é a representação persistida de uma obra no sqlite.
// Os temas são gravados como lista separada por ';' para permitir filtro
// com LIKE sem tabela de junção.
type ArtworkModel struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Artist      string `gorm:"index"`
	Description string
	Year        int
	Source      string
	URL         string
	Themes      string `gorm:"index"`
	Fallback    bool
	UpdatedAt   time.Time
}

// OpenInitialize abre (ou cria) o banco do acervo e garante o schema.
// Num banco recém-criado a coleção padrão embutida é semeada, para que o
// museu nunca abra sem obras.
func OpenInitialize(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("criar diretório do acervo: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir banco do acervo: %w", err)
	}

	if err := db.AutoMigrate(&ArtworkModel{}); err != nil {
		return nil, fmt.Errorf("migrar schema do acervo: %w", err)
	}

	var count int64
	db.Model(&ArtworkModel{}).Count(&count)
	if count == 0 {
		seed := DefaultCollection()
		if err := SaveRecords(db, seed); err != nil {
			return nil, fmt.Errorf("semear coleção padrão: %w", err)
		}
		log.Printf("[Persistence] Banco novo: %d obras da coleção padrão semeadas em %s", len(seed), path)
	} else {
		log.Printf("[Persistence] Acervo aberto com %d obras em %s", count, path)
	}

	return db, nil
}

// SaveRecords grava (upsert) um lote de obras.
func SaveRecords(db *gorm.DB, recs []Record) error {
	for _, rec := range recs {
		model := toModel(rec)
		if err := db.Save(&model).Error; err != nil {
			return fmt.Errorf("salvar obra %s: %w", rec.ID, err)
		}
	}
	return nil
}

// LoadRecords carrega todas as obras persistidas.
func LoadRecords(db *gorm.DB) ([]Record, error) {
	var models []ArtworkModel
	if err := db.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("carregar acervo: %w", err)
	}

	recs := make([]Record, 0, len(models))
	for _, m := range models {
		recs = append(recs, fromModel(m))
	}
	return recs, nil
}

// CountRecords conta as obras persistidas sem materializá-las.
func CountRecords(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&ArtworkModel{}).Count(&count).Error
	return count, err
}

// LoadUpdatedSince carrega obras gravadas ou alteradas depois do instante
// dado. O curador do servidor usa isso para empurrar só as novidades.
func LoadUpdatedSince(db *gorm.DB, since time.Time) ([]Record, error) {
	var models []ArtworkModel
	if err := db.Where("updated_at > ?", since).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("consultar novidades do acervo: %w", err)
	}

	recs := make([]Record, 0, len(models))
	for _, m := range models {
		recs = append(recs, fromModel(m))
	}
	return recs, nil
}

// LoadByThemes carrega obras cujo campo de temas contém qualquer um dos
// temas pedidos. Usado pelo servidor para responder RequestThemes sem
// materializar o acervo inteiro.
func LoadByThemes(db *gorm.DB, themes []string) ([]Record, error) {
	if len(themes) == 0 {
		return LoadRecords(db)
	}

	q := db.Model(&ArtworkModel{})
	for i, theme := range themes {
		pattern := "%" + theme + "%"
		if i == 0 {
			q = q.Where("themes LIKE ?", pattern)
		} else {
			q = q.Or("themes LIKE ?", pattern)
		}
	}

	var models []ArtworkModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("consultar temas %v: %w", themes, err)
	}

	recs := make([]Record, 0, len(models))
	for _, m := range models {
		recs = append(recs, fromModel(m))
	}
	return recs, nil
}

func toModel(rec Record) ArtworkModel {
	return ArtworkModel{
		ID:          rec.ID,
		Title:       rec.Title,
		Artist:      rec.Artist,
		Description: rec.Description,
		Year:        rec.Year,
		Source:      rec.Source,
		URL:         rec.URL,
		Themes:      strings.Join(rec.Themes, ";"),
		Fallback:    rec.Fallback,
	}
}

func fromModel(m ArtworkModel) Record {
	var themes []string
	if m.Themes != "" {
		themes = strings.Split(m.Themes, ";")
	}
	return Record{
		ID:          m.ID,
		Title:       m.Title,
		Artist:      m.Artist,
		Description: m.Description,
		Year:        m.Year,
		Source:      m.Source,
		URL:         m.URL,
		Themes:      themes,
		Fallback:    m.Fallback,
	}
}
