package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	pkglogger "github.com/lenspick/lenspick-backend/pkg/logger"
)

// 지원 언어 코드
const (
	LangKorean  = "ko"
	LangEnglish = "en"
)

const cacheSize = 1000

// Translator translates text between Korean and English through an
// external machine-translation endpoint, with an LRU fast path.
type Translator interface {
	// Translate returns the translated text. On transport failure the
	// source text is returned unchanged (best-effort localization).
	Translate(ctx context.Context, text, source, target string) string
	// Invalidate drops every cached translation. Called when a user
	// flips language preference.
	Invalidate()
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

type httpTranslator struct {
	client   *resty.Client
	endpoint string
	cache    *lru.Cache[string, string]
}

// New creates a translator backed by the given endpoint
func New(endpoint string) (Translator, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(1)

	return &httpTranslator{
		client:   client,
		endpoint: endpoint,
		cache:    cache,
	}, nil
}

func cacheKey(text, source, target string) string {
	return fmt.Sprintf("%s|%s|%s", source, target, text)
}

func (t *httpTranslator) Translate(ctx context.Context, text, source, target string) string {
	text = strings.TrimSpace(text)
	if text == "" || source == target || t.endpoint == "" {
		return text
	}

	key := cacheKey(text, source, target)
	if cached, ok := t.cache.Get(key); ok {
		return cached
	}

	var result translateResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(translateRequest{Text: text, Source: source, Target: target}).
		SetResult(&result).
		Post(t.endpoint)
	if err != nil || resp.IsError() || result.TranslatedText == "" {
		// 번역 실패 시 원문 반환
		pkglogger.GetLogger().Warn().
			Err(err).
			Str("source", source).
			Str("target", target).
			Msg("translation failed, falling back to source text")
		return text
	}

	t.cache.Add(key, result.TranslatedText)
	return result.TranslatedText
}

func (t *httpTranslator) Invalidate() {
	t.cache.Purge()
}
