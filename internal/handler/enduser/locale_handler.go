package enduser

import (
	"github.com/gin-gonic/gin"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/middleware"
	"github.com/lenspick/lenspick-backend/internal/service"
	"github.com/lenspick/lenspick-backend/pkg/translator"
)

// LocaleHandler handles per-user language switching
type LocaleHandler struct {
	service   service.LocaleService
	translate translator.Translator
}

// NewLocaleHandler creates a new LocaleHandler
func NewLocaleHandler(service service.LocaleService, translate translator.Translator) *LocaleHandler {
	return &LocaleHandler{service: service, translate: translate}
}

// SetKorean handles POST /enduser/locale_kr
func (h *LocaleHandler) SetKorean(c *gin.Context) {
	h.set(c, domain.LanguageKorean)
}

// SetEnglish handles POST /enduser/locale_en
func (h *LocaleHandler) SetEnglish(c *gin.Context) {
	h.set(c, domain.LanguageEnglish)
}

func (h *LocaleHandler) set(c *gin.Context, language string) {
	user := middleware.GetUser(c)
	if err := h.service.Set(c.Request.Context(), user, language); err != nil {
		fail(c, err)
		return
	}
	// 언어 전환 시 번역 캐시를 비워 최신 번역을 받는다
	h.translate.Invalidate()
	common.SuccessResponse(c, gin.H{"language": language}, nil)
}

// Current handles GET /enduser/current_locale
func (h *LocaleHandler) Current(c *gin.Context) {
	user := middleware.GetUser(c)
	language, err := h.service.Current(c.Request.Context(), user)
	if err != nil {
		fail(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"language": language}, nil)
}
