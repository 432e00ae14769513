// Package i18n renders status notices in the player's language.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"schnapsen/internal/domain"
)

var supportedTags = []language.Tag{
	language.English,
	language.German,
}

var (
	tagMatcher = language.NewMatcher(supportedTags)
	builder    = catalog.NewBuilder(catalog.Fallback(language.English))
	printers   = map[language.Tag]*message.Printer{}
)

func init() {
	register(language.English, messagesEN)
	register(language.German, messagesDE)
	for _, tag := range supportedTags {
		printers[tag] = message.NewPrinter(tag, message.Catalog(builder))
	}
}

func register(tag language.Tag, messages map[domain.MessageKind]string) {
	for kind, text := range messages {
		if err := builder.SetString(tag, kind.String(), text); err != nil {
			panic(fmt.Sprintf("i18n: register %s/%s: %v", tag, kind, err))
		}
	}
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Match returns the supported tag closest to lang, falling back to English.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return Default()
	}
	_, i, _ := tagMatcher.Match(tag)
	return supportedTags[i]
}

// Text returns the notice text of kind in lang.
func Text(lang string, kind domain.MessageKind) string {
	if kind == domain.MsgNone {
		return ""
	}
	return printers[Match(lang)].Sprintf(kind.String())
}

// Sound names the attention cue a client plays for kind, if any.
func Sound(kind domain.MessageKind) string {
	return sounds[kind]
}
