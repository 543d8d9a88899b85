// scraper — реализация service.Scraper для RSS 2.0.
package scraper

// rss — корневая структура RSS-ленты.
type rss struct {
	Channel channel `xml:"channel"`
}

// channel — RSS-канал со списком материалов.
type channel struct {
	// Language — языковая подсказка канала (ISO 639, напр. "en-us").
	Language string `xml:"language"`
	Items    []item `xml:"item"`
}

// item описывает один материал RSS-ленты.
type item struct {
	// Title — заголовок материала.
	Title string `xml:"title"`
	// Link — ссылка на материал. У части издателей пустая/мусорная, тогда
	// fallback — guid, если он является полноценным URL.
	Link string `xml:"link"`
	// GUID — «перманентный» идентификатор записи. Может содержать URL и
	// служить заменой Link даже при isPermaLink="false".
	GUID guid `xml:"guid"`
	// PubDate — дата публикации в строковом виде.
	PubDate string `xml:"pubDate"`
	// Description — тизер; часто CDATA с HTML.
	Description string `xml:"description"`
	// ContentHTML — расширение content:encoded с полным HTML-телом.
	ContentHTML string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
}

// guid — обёртка над <guid> с атрибутом isPermaLink.
type guid struct {
	// IsPermaLink — строковый флаг "true"/"false".
	IsPermaLink string `xml:"isPermaLink,attr"`
	// Value — текстовое содержимое <guid>.
	Value string `xml:",chardata"`
}
