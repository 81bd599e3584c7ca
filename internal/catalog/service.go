package catalog

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
	"github.com/tusharoffice40/Whole-X/pkg/models"
)

const (
	descriptionPrompt = `Generate a professional B2B wholesale product description for a product titled %q in the %q category. Focus on selling points for retailers, such as quality, margins, and market appeal. Keep it under 100 words.`

	// descriptionEmptyFallback covers a successful call that returned no
	// text; descriptionErrorFallback covers a failed call. The two tiers
	// are deliberately distinct.
	descriptionEmptyFallback = "Could not generate description at this time."
	descriptionErrorFallback = "Standard professional product description for wholesale distribution."
)

// TextGenerator is the remote text-generation capability the catalog
// invokes for copy generation.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service exposes the immutable product catalog.
type Service interface {
	List() []models.Product
	Search(query, category string) []models.Product
	Get(id string) (models.Product, error)
	Categories() []string
	GenerateDescription(ctx context.Context, title, category string) string
}

type service struct {
	products []models.Product
	byID     map[string]models.Product
	gen      TextGenerator
	logg     *logger.Logger
}

// NewService seeds the catalog from compiled-in data. The generator may be
// nil; description generation then degrades to its error fallback.
func NewService(gen TextGenerator, logg *logger.Logger) (Service, error) {
	byID := make(map[string]models.Product, len(seedProducts))
	for _, product := range seedProducts {
		if _, exists := byID[product.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q in seed data", product.ID)
		}
		byID[product.ID] = product
	}

	return &service{
		products: seedProducts,
		byID:     byID,
		gen:      gen,
		logg:     logg,
	}, nil
}

func (s *service) List() []models.Product {
	return append([]models.Product(nil), s.products...)
}

// Search filters by case-insensitive name substring and exact category.
// Empty arguments match everything.
func (s *service) Search(query, category string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)

	matches := make([]models.Product, 0, len(s.products))
	for _, product := range s.products {
		if query != "" && !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}
		if category != "" && product.Category != category {
			continue
		}
		matches = append(matches, product)
	}
	return matches
}

func (s *service) Get(id string) (models.Product, error) {
	product, ok := s.byID[id]
	if !ok {
		return models.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) Categories() []string {
	return append([]string(nil), Categories...)
}

// GenerateDescription produces marketing copy for a listing. It never
// fails: a remote failure degrades to a fixed placeholder and an empty
// generation to a different one.
func (s *service) GenerateDescription(ctx context.Context, title, category string) string {
	if s.gen == nil {
		return descriptionErrorFallback
	}

	text, err := s.gen.GenerateText(ctx, fmt.Sprintf(descriptionPrompt, title, category))
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "product_title", title), "description generation failed")
		}
		return descriptionErrorFallback
	}
	if strings.TrimSpace(text) == "" {
		return descriptionEmptyFallback
	}
	return text
}
