package service

// Тесты дедупликации на входе (internal/service/dedup.go).
//
// Проверяем:
// - исход Created при успешной вставке;
// - нарушение уникальности отпечатка -> исход Duplicate с id существующей
//   статьи (не ошибка);
// - fast path через кэш отпечатков: попадание не ходит в БД;
// - ошибка кэша не ломает допуск;
// - невалидный URL -> ErrInvalidArgument.

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/harisahmad000005/osint-news-platform/internal/fingerprint"
	"github.com/harisahmad000005/osint-news-platform/internal/models"
	"github.com/harisahmad000005/osint-news-platform/internal/storage"
)

// stubCache — FingerprintCache в памяти для тестов fast path.
type stubCache struct {
	mu         sync.Mutex
	entries    map[string]uuid.UUID
	lookupErr  error
	remembered []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string]uuid.UUID{}}
}

func (c *stubCache) Lookup(_ context.Context, hash string) (uuid.UUID, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lookupErr != nil {
		return uuid.Nil, false, c.lookupErr
	}
	id, ok := c.entries[hash]
	return id, ok, nil
}

func (c *stubCache) Remember(_ context.Context, hash string, articleID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[hash] = articleID
	c.remembered = append(c.remembered, hash)
	return nil
}

func (c *stubCache) Close() error { return nil }

// Happy-path: вставка прошла — исход Created.
func TestService_Admit_Created(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	srcID := uuid.New()
	want := uuid.New()

	st.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Article) (uuid.UUID, error) {
			require.Equal(t, srcID, a.SourceID)
			require.NotEmpty(t, a.URLHash)
			require.Equal(t, "https://example.org/a", a.CanonicalURL)
			require.False(t, a.FetchedAt.IsZero())
			return want, nil
		})

	res, err := s.Admit(context.Background(), AdmitRequest{
		SourceID: srcID,
		URL:      "https://example.org/a?utm_source=feed#top",
		Title:    "hello",
	})
	require.NoError(t, err)
	require.Equal(t, models.AdmitCreated, res.Outcome)
	require.Equal(t, want, res.ArticleID)

	// Результат несёт отпечаток, от которого шла дедупликация.
	_, wantHash, err := fingerprint.Fingerprint("https://example.org/a?utm_source=feed#top")
	require.NoError(t, err)
	require.Equal(t, wantHash, res.URLHash)
}

// Нарушение уникальности -> Duplicate с id существующей статьи.
func TestService_Admit_Duplicate(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	existing := uuid.New()

	st.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, storage.ErrAlreadyExists)
	st.EXPECT().ArticleIDByFingerprint(gomock.Any(), gomock.Any()).
		Return(existing, nil)

	res, err := s.Admit(context.Background(), AdmitRequest{
		SourceID: uuid.New(),
		URL:      "https://example.org/a",
	})
	require.NoError(t, err)
	require.Equal(t, models.AdmitDuplicate, res.Outcome)
	require.Equal(t, existing, res.ArticleID)
	require.NotEmpty(t, res.URLHash)
}

// Два допуска одного URL: первый Created, второй Duplicate — ровно одна статья.
func TestService_Admit_SameURLTwice(t *testing.T) {
	s, st, ctrl := newTestService(t)
	defer ctrl.Finish()

	created := uuid.New()

	first := st.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).Return(created, nil)
	st.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, storage.ErrAlreadyExists).After(first)
	st.EXPECT().ArticleIDByFingerprint(gomock.Any(), gomock.Any()).Return(created, nil)

	// Разные сырые формы одного URL сводятся к одному отпечатку.
	res1, err := s.Admit(context.Background(), AdmitRequest{SourceID: uuid.New(), URL: "https://example.org/a"})
	require.NoError(t, err)
	require.Equal(t, models.AdmitCreated, res1.Outcome)

	res2, err := s.Admit(context.Background(), AdmitRequest{SourceID: uuid.New(), URL: "HTTPS://EXAMPLE.ORG/a?utm_medium=x"})
	require.NoError(t, err)
	require.Equal(t, models.AdmitDuplicate, res2.Outcome)
	require.Equal(t, res1.ArticleID, res2.ArticleID)
}

// Fast path: попадание в кэш возвращает Duplicate без похода в БД.
func TestService_Admit_CacheHit(t *testing.T) {
	cache := newStubCache()

	// Поход в CreateArticle не ожидается: любое обращение к моку упадёт.
	svc, _, ctrl := newTestService(t, WithFingerprintCache(cache))
	defer ctrl.Finish()

	existing := uuid.New()
	_, hash, err := fingerprint.Fingerprint("https://example.org/a")
	require.NoError(t, err)
	require.NoError(t, cache.Remember(context.Background(), hash, existing))

	res, err := svc.Admit(context.Background(), AdmitRequest{
		SourceID: uuid.New(),
		URL:      "https://example.org/a",
	})
	require.NoError(t, err)
	require.Equal(t, models.AdmitDuplicate, res.Outcome)
	require.Equal(t, existing, res.ArticleID)
}

// Ошибка кэша не ломает допуск: идём обычным путём через БД.
func TestService_Admit_CacheErrorIgnored(t *testing.T) {
	cache := newStubCache()
	cache.lookupErr = errors.New("redis down")

	s, st, ctrl := newTestService(t, WithFingerprintCache(cache))
	defer ctrl.Finish()

	want := uuid.New()
	st.EXPECT().CreateArticle(gomock.Any(), gomock.Any()).Return(want, nil)

	res, err := s.Admit(context.Background(), AdmitRequest{
		SourceID: uuid.New(),
		URL:      "https://example.org/a",
	})
	require.NoError(t, err)
	require.Equal(t, models.AdmitCreated, res.Outcome)
	require.Equal(t, want, res.ArticleID)
}

// Невалидный URL -> ErrInvalidArgument.
func TestService_Admit_InvalidURL(t *testing.T) {
	s, _, ctrl := newTestService(t)
	defer ctrl.Finish()

	_, err := s.Admit(context.Background(), AdmitRequest{
		SourceID: uuid.New(),
		URL:      "::not-a-url",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
