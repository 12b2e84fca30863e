package enduser

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
)

// CatalogHandler handles the read-only catalog lists of the Enduser tree
type CatalogHandler struct {
	brands    service.BrandService
	colors    service.ColorService
	images    service.ImageService
	countries service.CountryService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(
	brands service.BrandService,
	colors service.ColorService,
	images service.ImageService,
	countries service.CountryService,
) *CatalogHandler {
	return &CatalogHandler{
		brands:    brands,
		colors:    colors,
		images:    images,
		countries: countries,
	}
}

// Brands handles GET /enduser/brands/list
func (h *CatalogHandler) Brands(c *gin.Context) {
	brands, err := h.brands.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, brands, nil)
}

// Colors handles GET /enduser/colors/list, natural-sorted by name
func (h *CatalogHandler) Colors(c *gin.Context) {
	colors, err := h.colors.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, colors, nil)
}

// Images handles GET /enduser/images/list. Restricted images only show
// for the usernames they expose.
func (h *CatalogHandler) Images(c *gin.Context) {
	user := middleware.GetUser(c)
	images, err := h.images.ListForUser(c.Query("category"), user.Username)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, images, nil)
}

// CountriesSorted handles GET /enduser/countries/sorted, rank-ordered
// and localized to the caller's language
func (h *CatalogHandler) CountriesSorted(c *gin.Context) {
	user := middleware.GetUser(c)
	countries, err := h.countries.SortedForLanguage(c.Request.Context(), user.Language)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, countries, nil)
}

// CountriesExposedSorted handles GET /enduser/countries/exposed_sorted.
// The countries query carries the exposed_countries CSV to expand.
func (h *CatalogHandler) CountriesExposedSorted(c *gin.Context) {
	user := middleware.GetUser(c)
	countries, err := h.countries.ExposedSorted(c.Request.Context(), c.Query("countries"), user.Language)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, countries, nil)
}
