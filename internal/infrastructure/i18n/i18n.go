// Package i18n carrega as mensagens de erro traduzidas da API.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// message é uma tradução; tmpl só existe quando o texto tem parâmetros
type message struct {
	text string
	tmpl *template.Template
}

// Service resolve chaves de mensagem por idioma.
// É imutável depois de criado e pode ser compartilhado entre goroutines.
type Service struct {
	catalogs        map[string]map[string]message // [language][key]
	defaultLanguage string
}

// NewService carrega os arquivos <idioma>.json de localesDir
func NewService(localesDir, defaultLang string) (*Service, error) {
	return NewServiceFS(os.DirFS(localesDir), defaultLang)
}

// NewEmbeddedService usa as traduções embutidas no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locales: %w", err)
	}
	return NewServiceFS(sub, defaultLang)
}

// NewServiceFS carrega todos os arquivos *.json da raiz de fsys
func NewServiceFS(fsys fs.FS, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	s := &Service{
		catalogs:        make(map[string]map[string]message, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		catalog, err := loadCatalog(fsys, file)
		if err != nil {
			return nil, err
		}
		s.catalogs[lang] = catalog
	}

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func loadCatalog(fsys fs.FS, file string) (map[string]message, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	catalog := make(map[string]message, len(raw))
	for key, text := range raw {
		msg := message{text: text}
		if strings.Contains(text, "{{") {
			msg.tmpl, err = template.New(key).Option("missingkey=zero").Parse(text)
			if err != nil {
				return nil, fmt.Errorf("invalid template for %q in %s: %w", key, file, err)
			}
		}
		catalog[key] = msg
	}
	return catalog, nil
}

// T traduz uma chave para o idioma especificado, caindo para o idioma
// padrão e depois para a própria chave. Parâmetros preenchem {{.Nome}}.
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	msg, ok := s.lookup(lang, key)
	if !ok {
		msg, ok = s.lookup(s.defaultLanguage, key)
	}
	if !ok {
		return key
	}

	if msg.tmpl == nil || len(params) == 0 {
		return msg.text
	}

	var sb strings.Builder
	if err := msg.tmpl.Execute(&sb, params[0]); err != nil {
		return msg.text
	}
	return sb.String()
}

func (s *Service) lookup(lang, key string) (message, bool) {
	msg, ok := s.catalogs[lang][key]
	return msg, ok
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	langs := make([]string, 0, len(s.catalogs))
	for lang := range s.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}

// MissingKeys lista, por idioma, as chaves do idioma padrão sem tradução
func (s *Service) MissingKeys() map[string][]string {
	missing := make(map[string][]string)
	for key := range s.catalogs[s.defaultLanguage] {
		for lang, catalog := range s.catalogs {
			if _, ok := catalog[key]; !ok {
				missing[lang] = append(missing[lang], key)
			}
		}
	}
	for lang := range missing {
		sort.Strings(missing[lang])
	}
	return missing
}
