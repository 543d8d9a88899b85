package service

import (
	"context"

	"github.com/harisahmad000005/osint-news-platform/internal/models"
)

// Scraper описывает внешнюю границу исполнения скрейпа: реализация
// (RSS/Atom/HTML/API) забирает сырые материалы одного источника.
//
// Требования к реализации:
//  1. FetchedAt в возвращаемых элементах не проставляется — это делает
//     оркестратор в момент допуска;
//  2. URL отдаётся сырым: нормализацию и отпечаток считает дедупликатор;
//  3. реализация обязана уважать ctx — по таймауту попытки оркестратор
//     завершает ScrapeJob статусом timeout.
type Scraper interface {
	Scrape(ctx context.Context, src models.Source) ([]models.ScrapedItem, error)
}
