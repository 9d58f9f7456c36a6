package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"biblia/internal/domain"
)

// Supported lists the catalog languages; the first one is the default.
var Supported = []language.Tag{language.Spanish, language.English}

var entries = map[domain.MessageID][2]string{
	// id: {es, en}
	domain.MsgInvalidReference: {"Por favor ingresa un versículo válido (ej. 3:16)", "enter a valid verse reference (e.g. 3:16)"},
	domain.MsgInvalidChapter:   {"Por favor ingresa un capítulo válido (ej. 3)", "enter a valid chapter number (e.g. 3)"},
	domain.MsgInvalidRange:     {"Por favor ingresa ambos versículos (ej. 3:16 - 3:19)", "enter both verses (e.g. 3:16 - 3:19)"},
	domain.MsgInvalidTerm:      {"Por favor ingresa una palabra para buscar", "enter a word to search for"},
	domain.MsgInvalidKind:      {"Tipo de búsqueda desconocido", "unknown lookup kind"},
	domain.MsgUnknownBook:      {"Libro desconocido", "unknown book"},
	domain.MsgConnectionError:  {"Error de conexión", "connection error"},
	domain.MsgVerseNotFound:    {"Verso no encontrado", "verse not found"},
	domain.MsgChapterNotFound:  {"Capítulo no encontrado", "chapter not found"},
	domain.MsgRangeNotFound:    {"Rango no encontrado", "range not found"},
	domain.MsgNoResults:        {"No se encontraron resultados", "no results"},
}

var (
	cat     = mustBuild()
	matcher = language.NewMatcher(Supported)
)

func mustBuild() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for id, texts := range entries {
		for i, tag := range Supported {
			if err := b.SetString(tag, string(id), texts[i]); err != nil {
				panic("i18n: " + err.Error())
			}
		}
	}
	return b
}

// Match resolves a BCP 47 language string ("en", "es-MX", "") to one of the
// Supported tags. Unknown or empty input yields the default.
func Match(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Supported[0]
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Printer renders catalog messages in a single language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a Printer for the best supported match of lang.
func NewPrinter(lang string) *Printer {
	tag := Match(lang)
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Tag returns the resolved language.
func (p *Printer) Tag() language.Tag { return p.tag }

// Text returns the localized message for id.
func (p *Printer) Text(id domain.MessageID) string {
	return p.p.Sprintf(message.Key(string(id), string(id)))
}

// Describe turns a lookup error into the line shown to the user.
func (p *Printer) Describe(err error) string {
	if err == nil {
		return ""
	}
	var (
		verr *domain.ValidationError
		terr *domain.TransportError
		aerr *domain.ApplicationError
	)
	switch {
	case errors.As(err, &verr):
		return p.Text(verr.MessageID)
	case errors.As(err, &terr):
		return p.Text(domain.MsgConnectionError)
	case errors.As(err, &aerr):
		if aerr.Message != "" {
			return aerr.Message
		}
		return p.Text(aerr.MessageID)
	}
	return err.Error()
}
