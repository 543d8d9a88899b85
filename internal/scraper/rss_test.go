package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
)

// mkRSS — собирает минимальный RSS 2.0 документ с нужными namespace.
func mkRSS(language string, items ...string) string {
	lang := ""
	if language != "" {
		lang = "<language>" + language + "</language>"
	}

	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
     xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    ` + lang + `
    ` + strings.Join(items, "\n") + `
  </channel>
</rss>`
}

// mkItem — утилита шаблона <item>.
func mkItem(fields map[string]string) string {
	var b strings.Builder
	b.WriteString("<item>\n")

	for tag, val := range fields {
		switch tag {
		case "title", "link", "pubDate", "description":
			b.WriteString(fmt.Sprintf("<%s>%s</%s>\n", tag, val, tag))
		case "guid":
			isPerm := ""
			value := val
			if left, right, ok := strings.Cut(val, "|"); ok {
				isPerm, value = left, right
			}

			if isPerm == "" {
				b.WriteString(fmt.Sprintf("<guid>%s</guid>\n", value))
			} else {
				b.WriteString(fmt.Sprintf("<guid isPermaLink=\"%s\">%s</guid>\n", isPerm, value))
			}
		}
	}

	if v, ok := fields["content"]; ok {
		b.WriteString(fmt.Sprintf("<content:encoded><![CDATA[%s]]></content:encoded>\n", v))
	}

	b.WriteString("</item>")
	return b.String()
}

// Test_parsePubDate — проверяем набор популярных форматов и ошибку на пустое значение.
func Test_parsePubDate(t *testing.T) {
	t.Parallel()

	type tc struct {
		in   string
		want time.Time
		ok   bool
	}
	cases := []tc{
		{"Tue, 16 Sep 2025 12:34:56 +0300", time.Date(2025, 9, 16, 9, 34, 56, 0, time.UTC), true},
		{"Tue, 16 Sep 2025 12:34:56 GMT", time.Date(2025, 9, 16, 12, 34, 56, 0, time.UTC), true},
		{"Tue, 16 Sep 25 12:34:56 +0300", time.Date(2025, 9, 16, 9, 34, 56, 0, time.UTC), true},
		{"2025-09-16T12:34:56+03:00", time.Date(2025, 9, 16, 9, 34, 56, 0, time.UTC), true},
		{"", time.Time{}, false},
	}
	for _, c := range cases {
		got, err := parsePubDate(c.in)
		if c.ok {
			require.NoError(t, err, c.in)
			require.True(t, got.Equal(c.want), "in=%q got=%s want=%s", c.in, got, c.want)
		} else {
			require.Error(t, err)
		}
	}
}

// Test_itemLink — выбор ссылки и fallback на GUID-URL.
func Test_itemLink(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://example.org/a?utm_source=x#frag",
		itemLink("  https://example.org/a?utm_source=x#frag ", guid{}))

	// Fallback на GUID-URL при пустом link — даже при isPermaLink="false".
	require.Equal(t, "https://example.org/gid",
		itemLink("", guid{IsPermaLink: "false", Value: "https://example.org/gid"}))

	// GUID, не являющийся URL, не годится.
	require.Equal(t, "", itemLink("", guid{Value: "urn:uuid:1234"}))
}

// Test_normalizeLanguage — региональный суффикс отрезается.
func Test_normalizeLanguage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "en", normalizeLanguage("en-US"))
	require.Equal(t, "ru", normalizeLanguage(" ru "))
	require.Equal(t, "", normalizeLanguage(""))
}

// Test_Scrape_HappyPath — успешная лента: фильтрация пустых, выбор контента,
// языковая подсказка, сырые ссылки без нормализации.
func Test_Scrape_HappyPath(t *testing.T) {
	t.Parallel()

	feed := mkRSS("en-US",
		mkItem(map[string]string{
			"title":       "  Hello  ",
			"link":        "https://example.org/a?utm_source=rss#frag",
			"pubDate":     "Tue, 16 Sep 2025 12:00:00 +0300",
			"description": "  teaser ",
			"content":     `<p>full body</p>`,
		}),
		mkItem(map[string]string{
			"title":       "No Link but GUID",
			"link":        "",
			"guid":        "false|https://example.org/guid",
			"pubDate":     "Tue, 16 Sep 2025 12:00:00 GMT",
			"description": "d",
		}),
		// Без title — отбрасывается.
		mkItem(map[string]string{
			"link": "https://example.org/no-title",
		}),
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer srv.Close()

	sc := NewRSS(srv.Client())

	items, err := sc.Scrape(context.Background(), models.Source{FeedURL: srv.URL})
	require.NoError(t, err)
	require.Len(t, items, 2)

	it1 := items[0]
	require.Equal(t, "Hello", it1.Title)
	// Ссылка отдаётся сырой: нормализация — обязанность дедупликатора.
	require.Equal(t, "https://example.org/a?utm_source=rss#frag", it1.URL)
	require.Equal(t, "<p>full body</p>", it1.Content)
	require.Equal(t, "en", it1.Language)
	require.NotNil(t, it1.PublishedAt)
	require.True(t, it1.PublishedAt.Equal(time.Date(2025, 9, 16, 9, 0, 0, 0, time.UTC)))

	it2 := items[1]
	require.Equal(t, "No Link but GUID", it2.Title)
	require.Equal(t, "https://example.org/guid", it2.URL)
	require.Equal(t, "d", it2.Content)
}

// Test_Scrape_HTTPError — не-200 ответ возвращает ошибку.
func Test_Scrape_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sc := NewRSS(srv.Client())

	_, err := sc.Scrape(context.Background(), models.Source{FeedURL: srv.URL})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=500")
}

// Test_Scrape_ContextTimeout — «подвисающий» хендлер + короткий таймаут.
func Test_Scrape_ContextTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(mkRSS("")))
	}))
	defer srv.Close()

	sc := NewRSS(srv.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := sc.Scrape(ctx, models.Source{FeedURL: srv.URL})
	require.Error(t, err)
}
