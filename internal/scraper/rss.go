package scraper

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/pkg/log"
)

// RSS реализует service.Scraper для RSS 2.0.
// Возвращает сырые models.ScrapedItem: ссылки не нормализуются (это делает
// дедупликатор), FetchedAt не проставляется (это делает оркестратор).
//
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.).
type RSS struct {
	client *http.Client
}

// NewRSS создаёт новый RSS-скрейпер.
func NewRSS(client *http.Client) *RSS {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return &RSS{client: client}
}

// Scrape загружает и парсит ленту источника.
func (r *RSS) Scrape(ctx context.Context, src models.Source) ([]models.ScrapedItem, error) {
	const op = "scraper.rss.Scrape"

	lg := log.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		lg.Warn("http_error",
			slog.String("op", op),
			slog.String("url", src.FeedURL),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	dec := xml.NewDecoder(resp.Body)
	var doc rss
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	language := normalizeLanguage(doc.Channel.Language)

	var output []models.ScrapedItem
	for _, it := range doc.Channel.Items {
		title := strings.TrimSpace(it.Title)
		link := itemLink(it.Link, it.GUID)

		if title == "" || link == "" {
			continue
		}

		var published *time.Time
		if pub, err := parsePubDate(it.PubDate); err != nil {
			lg.Warn("date_parse_failed",
				slog.String("op", op),
				slog.String("url", src.FeedURL),
				slog.String("value", it.PubDate),
				slog.String("err", err.Error()),
			)
		} else {
			published = &pub
		}

		output = append(output, models.ScrapedItem{
			URL:         link,
			Title:       title,
			Content:     pickContent(it),
			Language:    language,
			PublishedAt: published,
		})
	}

	return output, nil
}

// pickContent предпочитает полное тело content:encoded тизеру description.
func pickContent(it item) string {
	if body := strings.TrimSpace(it.ContentHTML); body != "" {
		return body
	}

	return strings.TrimSpace(it.Description)
}

// itemLink выбирает ссылку материала: link, иначе guid, если тот — URL.
func itemLink(raw string, g guid) string {
	str := strings.TrimSpace(raw)
	if str != "" {
		return str
	}

	if v := strings.TrimSpace(g.Value); strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}

	return ""
}

// normalizeLanguage обрезает региональный суффикс: "en-us" -> "en".
func normalizeLanguage(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))

	if i := strings.IndexByte(value, '-'); i > 0 {
		value = value[:i]
	}

	return value
}

// parsePubDate пробует набор популярных форматов и возвращает UTC-время.
func parsePubDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}

	layouts := []string{
		time.RFC1123Z,                   // Mon, 02 Jan 2006 15:04:05 -0700
		time.RFC1123,                    // Mon, 02 Jan 2006 15:04:05 MST
		"Mon, 02 Jan 06 15:04:05 -0700", // двухзначный год
		"Mon, 02 Jan 06 15:04:05 MST",   // двухзначный год
		time.RFC822Z,                    // 02 Jan 06 15:04 -0700
		time.RFC822,                     // 02 Jan 06 15:04 MST
		time.RFC3339,                    // 2006-01-02T15:04:05Z07:00
		"Mon, 02 Jan 2006 15:04:05 MST", // нестандарт: аббревиатура без смещения
	}

	var lastErr error
	for _, l := range layouts {
		if t, err := time.Parse(l, value); err == nil {
			return t.UTC(), nil
		} else {
			lastErr = err
		}
	}

	return time.Time{}, lastErr
}
