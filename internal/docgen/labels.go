package docgen

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the English text.
const (
	keyCustomTypes    = "Custom types"
	keyAPIList        = "API list"
	keyGlobal         = "Global"
	keyGroup          = "Group: "
	keySourceFile     = "Source file: "
	keyRequestParams  = "Request parameters"
	keyRequiredParams = "Required parameters"
	keyExamples       = "Examples"
	keyDefault        = "Default: "
	keyNoDefault      = "none"
	keyOneOf          = "%s (one of)"
)

const defaultListSeparator = ", "

var chineseLabels = map[string]string{
	keyCustomTypes:    "自定义类型",
	keyAPIList:        "API列表",
	keyGlobal:         "全局",
	keyGroup:          "分组：",
	keySourceFile:     "源文件：",
	keyRequestParams:  "请求参数",
	keyRequiredParams: "必须参数",
	keyExamples:       "使用示例",
	keyDefault:        "默认值:",
	keyNoDefault:      "无",
	keyOneOf:          "%s 其中一个",
}

var supportedLanguages = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var labelCatalog = newLabelCatalog()

func newLabelCatalog() *catalog.Builder {
	b, err := buildLabelCatalog(chineseLabels)
	if err != nil {
		panic(err)
	}
	return b
}

func buildLabelCatalog(translations map[string]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	var errs []error
	for key, zh := range translations {
		if err := b.SetString(language.English, key, key); err != nil {
			errs = append(errs, fmt.Errorf("label %q (en): %w", key, err))
		}
		if err := b.SetString(language.SimplifiedChinese, key, zh); err != nil {
			errs = append(errs, fmt.Errorf("label %q (zh): %w", key, err))
		}
	}
	return b, errors.Join(errs...)
}

// Labels is the localized label text handed to the presentation layer
type Labels struct {
	Language       string `json:"language"`
	CustomTypes    string `json:"customTypes"`
	APIList        string `json:"apiList"`
	Global         string `json:"global"`
	Group          string `json:"group"`
	SourceFile     string `json:"sourceFile"`
	RequestParams  string `json:"requestParams"`
	RequiredParams string `json:"requiredParams"`
	Examples       string `json:"examples"`
	Default        string `json:"default"`
	NoDefault      string `json:"noDefault"`
	ListSeparator  string `json:"listSeparator"`

	printer *message.Printer
}

// NewLabels resolves label text for a BCP 47 language; unsupported or empty
// languages fall back to English.
func NewLabels(lang string) Labels {
	tag := matchLanguage(lang)
	p := message.NewPrinter(tag, message.Catalog(labelCatalog))

	return Labels{
		Language:       tag.String(),
		CustomTypes:    p.Sprintf(keyCustomTypes),
		APIList:        p.Sprintf(keyAPIList),
		Global:         p.Sprintf(keyGlobal),
		Group:          p.Sprintf(keyGroup),
		SourceFile:     p.Sprintf(keySourceFile),
		RequestParams:  p.Sprintf(keyRequestParams),
		RequiredParams: p.Sprintf(keyRequiredParams),
		Examples:       p.Sprintf(keyExamples),
		Default:        p.Sprintf(keyDefault),
		NoDefault:      p.Sprintf(keyNoDefault),
		ListSeparator:  defaultListSeparator,
		printer:        p,
	}
}

// OneOfLabel decorates joined member names with the "exactly one of" suffix
func (l Labels) OneOfLabel(joined string) string {
	if l.printer == nil {
		return fmt.Sprintf(keyOneOf, joined)
	}
	return l.printer.Sprintf(keyOneOf, joined)
}

// Separator returns the member separator of one-of sets
func (l Labels) Separator() string {
	if l.ListSeparator == "" {
		return defaultListSeparator
	}
	return l.ListSeparator
}

// NoDefaultText returns the "no default" marker
func (l Labels) NoDefaultText() string {
	if l.NoDefault == "" {
		return keyNoDefault
	}
	return l.NoDefault
}

func matchLanguage(lang string) language.Tag {
	if lang == "" {
		return language.English
	}

	requested, err := language.Parse(lang)
	if err != nil {
		return language.English
	}

	matcher := language.NewMatcher(supportedLanguages)
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return language.English
	}
	return supportedLanguages[index]
}
