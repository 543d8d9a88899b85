// fingerprint вычисляет детерминированный отпечаток URL для дедупликации.
//
// Правила нормализации зафиксированы и являются частью контракта хранилища
// (отпечаток уникален на уровне БД), менять их можно только вместе с
// миграцией уже сохранённых отпечатков:
//  1. схема и хост приводятся к нижнему регистру;
//  2. фрагмент (#...) отбрасывается;
//  3. порт по умолчанию (80 для http, 443 для https) отбрасывается;
//  4. трекинговые query-параметры удаляются: любые utm_*, а также
//     fbclid, gclid, yclid, igshid, mc_cid, mc_eid, ref, ref_src;
//  5. оставшиеся query-параметры сортируются по ключу;
//  6. завершающий «/» у непустого пути отбрасывается ("/news/" -> "/news");
//     пустой путь становится «/».
//
// Отпечаток — hex(SHA-256(нормализованный URL)).
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

// trackingParams — точные имена отбрасываемых query-параметров.
var trackingParams = map[string]struct{}{
	"fbclid":  {},
	"gclid":   {},
	"yclid":   {},
	"igshid":  {},
	"mc_cid":  {},
	"mc_eid":  {},
	"ref":     {},
	"ref_src": {},
}

// Normalize приводит URL к канонической форме по правилам пакета.
func Normalize(raw string) (string, error) {
	const op = "fingerprint.Normalize"

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%s: empty url", op)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%s: url must be absolute: %q", op, raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""

	if host, ok := strings.CutSuffix(u.Host, ":80"); ok && u.Scheme == "http" {
		u.Host = host
	}
	if host, ok := strings.CutSuffix(u.Host, ":443"); ok && u.Scheme == "https" {
		u.Host = host
	}

	query := u.Query()
	for key := range query {
		if _, drop := trackingParams[strings.ToLower(key)]; drop {
			query.Del(key)
			continue
		}
		if strings.HasPrefix(strings.ToLower(key), "utm_") {
			query.Del(key)
		}
	}
	// Encode сортирует ключи — этого достаточно для детерминизма.
	u.RawQuery = query.Encode()

	if u.Path == "" {
		u.Path = "/"
	} else if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
	u.RawPath = ""

	return u.String(), nil
}

// Fingerprint возвращает нормализованный URL и его SHA-256 отпечаток (hex).
func Fingerprint(raw string) (normalized, hash string, err error) {
	normalized, err = Normalize(raw)
	if err != nil {
		return "", "", err
	}

	sum := sha256.Sum256([]byte(normalized))

	return normalized, hex.EncodeToString(sum[:]), nil
}
