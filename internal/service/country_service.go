package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/pkg/translator"
)

// 국가 에러 정의
var (
	ErrCountryInUse = errors.New("포트폴리오에서 사용 중")
)

var countryOrderColumns = map[string]bool{
	"name": true, "rank": true, "created_at": true,
}

// CountryView localizes a country row for the requesting user
type CountryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// CountryService country catalog interface
type CountryService interface {
	List(page, size int, search, orderBy string) ([]*domain.Country, int64, error)
	// SortedForLanguage returns every country rank-ordered, localized.
	// English names are filled lazily through the translator and
	// persisted on first use.
	SortedForLanguage(ctx context.Context, language string) ([]CountryView, error)
	// ExposedSorted filters to the countries named by a portfolio's
	// exposed_countries CSV.
	ExposedSorted(ctx context.Context, exposedCSV, language string) ([]CountryView, error)
	Create(name string) (*domain.Country, error)
	Update(id uint, name, englishName string) (*domain.Country, error)
	Delete(id uint) error
	MoveRank(id uint, direction string) error
	BulkRank(entries []repository.RankEntry) error
}

type countryService struct {
	countryRepo repository.CountryRepository
	translate   translator.Translator
}

// NewCountryService creates a new CountryService
func NewCountryService(countryRepo repository.CountryRepository, translate translator.Translator) CountryService {
	return &countryService{countryRepo: countryRepo, translate: translate}
}

func (s *countryService) List(page, size int, search, orderBy string) ([]*domain.Country, int64, error) {
	order := common.ParseOrderBy(orderBy, countryOrderColumns, "rank", false)
	return s.countryRepo.List(page, size, search, orderClause(order))
}

func (s *countryService) SortedForLanguage(ctx context.Context, language string) ([]CountryView, error) {
	countries, err := s.countryRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.localize(ctx, countries, language), nil
}

func (s *countryService) ExposedSorted(ctx context.Context, exposedCSV, language string) ([]CountryView, error) {
	ids := ParseCSVIDs(exposedCSV)
	countries, err := s.countryRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	return s.localize(ctx, countries, language), nil
}

func (s *countryService) localize(ctx context.Context, countries []*domain.Country, language string) []CountryView {
	views := make([]CountryView, 0, len(countries))
	for _, c := range countries {
		name := c.Name
		if language == domain.LanguageEnglish {
			if c.EnglishName == "" {
				// 최초 요청 시 번역해서 채운다
				translated := s.translate.Translate(ctx, c.Name, translator.LangKorean, translator.LangEnglish)
				if translated != c.Name {
					c.EnglishName = translated
					_ = s.countryRepo.Update(c)
				}
			}
			if c.EnglishName != "" {
				name = c.EnglishName
			}
		}
		views = append(views, CountryView{ID: c.ID, Name: name, Rank: c.Rank})
	}
	return views
}

func (s *countryService) Create(name string) (*domain.Country, error) {
	if name == "" {
		return nil, common.ErrInvalidInput
	}
	country := &domain.Country{Name: name}
	if err := s.countryRepo.Create(country); err != nil {
		return nil, err
	}
	return country, nil
}

func (s *countryService) Update(id uint, name, englishName string) (*domain.Country, error) {
	country, err := s.countryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		country.Name = name
	}
	if englishName != "" {
		country.EnglishName = englishName
	}
	if err := s.countryRepo.Update(country); err != nil {
		return nil, err
	}
	return country, nil
}

// Delete hard-deletes with a dependency guard on active portfolios
func (s *countryService) Delete(id uint) error {
	refs, err := s.countryRepo.CountReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrCountryInUse
	}
	return s.countryRepo.Delete(id)
}

func (s *countryService) MoveRank(id uint, direction string) error {
	return s.countryRepo.MoveRank(id, direction)
}

// BulkRank applies a full rank permutation. Partial lists are rejected
// so every row keeps a rank in 1..N.
func (s *countryService) BulkRank(entries []repository.RankEntry) error {
	if err := repository.ValidatePermutation(entries); err != nil {
		return err
	}
	total, err := s.countryRepo.Count()
	if err != nil {
		return err
	}
	if int64(len(entries)) != total {
		return common.ErrInvalidInput
	}
	return s.countryRepo.BulkRank(entries)
}

// ParseCSVIDs parses a comma-separated decimal ID list, skipping blanks
func ParseCSVIDs(csv string) []uint {
	parts := strings.Split(csv, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if n, err := strconv.ParseUint(p, 10, 32); err == nil {
			ids = append(ids, uint(n))
		}
	}
	return ids
}
