package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/accounts-api/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware escolhe o idioma das mensagens de erro de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{i18nService: i18nService}
}

// DetectLanguage detecta e configura o idioma da requisição.
// Prioridade: ?lang=, depois Accept-Language, depois o idioma padrão.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.resolve(c.Query("lang"))
		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

type weightedLanguage struct {
	tag    string
	weight float64
}

// parseAcceptLanguage devolve o idioma suportado de maior peso.
// Exemplo: "fr,pt;q=0.9,en;q=0.8" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	var candidates []weightedLanguage
	for _, part := range strings.Split(acceptLang, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}

		weight := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil || parsed <= 0 {
				continue
			}
			weight = parsed
		}
		candidates = append(candidates, weightedLanguage{tag: tag, weight: weight})
	}

	// estável: empates mantêm a ordem do header
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, candidate := range candidates {
		if lang := m.resolve(candidate.tag); lang != "" {
			return lang
		}
	}
	return ""
}

// resolve casa uma tag com um idioma suportado, ignorando caixa e região.
// "pt-br" -> "pt-BR", "es-MX" -> "es", "pt" -> "pt-BR"
func (m *I18nMiddleware) resolve(tag string) string {
	if tag == "" {
		return ""
	}

	supported := m.i18nService.GetSupportedLanguages()

	for _, lang := range supported {
		if strings.EqualFold(lang, tag) {
			return lang
		}
	}

	base, _, _ := strings.Cut(tag, "-")
	for _, lang := range supported {
		if strings.EqualFold(lang, base) {
			return lang
		}
	}
	for _, lang := range supported {
		langBase, _, _ := strings.Cut(lang, "-")
		if strings.EqualFold(langBase, base) {
			return lang
		}
	}
	return ""
}
