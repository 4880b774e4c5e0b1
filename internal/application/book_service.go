package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
)

var (
	ErrBookExists   = errors.New("book already exists")
	ErrBookNotFound = errors.New("book not found")
)

// BookService owns catalog reads and writes. Elasticsearch is optional:
// when no client is configured the catalog behaves identically and Search
// returns an empty result.
type BookService struct {
	Books        repository.BookRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESBooksIndex string
}

func NewBookService(books repository.BookRepository, logger *logrus.Logger, es *elasticsearch.Client, esBooksIndex string) *BookService {
	return &BookService{Books: books, Logger: logger, ES: es, ESBooksIndex: esBooksIndex}
}

func (s *BookService) List(ctx context.Context) ([]entity.Book, error) {
	return s.Books.List(ctx)
}

func (s *BookService) Get(ctx context.Context, title string) (*entity.Book, error) {
	b, err := s.Books.GetByTitle(ctx, title)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookNotFound
	}
	return b, err
}

// Add persists a new book. The title uniqueness check runs before the
// insert; the store's unique index closes the remaining race.
func (s *BookService) Add(ctx context.Context, b *entity.Book) (string, error) {
	_, err := s.Books.GetByTitle(ctx, b.Title)
	if err == nil {
		return "", ErrBookExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	id, err := s.Books.Create(ctx, b)
	if errors.Is(err, repository.ErrDuplicate) {
		return "", ErrBookExists
	}
	if err != nil {
		return "", err
	}
	_ = s.indexBook(ctx, b)
	return id, nil
}

// Update merges the provided fields into the record matching title. Patch
// fields are not validated beyond JSON shape.
func (s *BookService) Update(ctx context.Context, title string, patch entity.BookPatch) error {
	err := s.Books.UpdateByTitle(ctx, title, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBookNotFound
	}
	if errors.Is(err, repository.ErrDuplicate) {
		// Patch tried to rename onto an existing title.
		return ErrBookExists
	}
	if err != nil {
		return err
	}

	// Re-index under the post-update title.
	current := title
	if patch.Title != nil {
		current = *patch.Title
	}
	if b, gErr := s.Books.GetByTitle(ctx, current); gErr == nil {
		_ = s.indexBook(ctx, b)
	}
	return nil
}

func (s *BookService) Delete(ctx context.Context, title string) error {
	// Fetch first so the search index entry can be removed by document id.
	b, err := s.Books.GetByTitle(ctx, title)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBookNotFound
	}
	if err != nil {
		return err
	}

	err = s.Books.DeleteByTitle(ctx, title)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBookNotFound
	}
	if err != nil {
		return err
	}
	s.deleteFromIndex(ctx, b.ID.Hex())
	return nil
}

func (s *BookService) indexBook(ctx context.Context, b *entity.Book) error {
	if s.ES == nil || s.ESBooksIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":     b.ID.Hex(),
		"title":  b.Title,
		"author": b.Author,
		"year":   b.Year,
		"cover":  b.Cover,
		"url":    b.URL,
	}
	body, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESBooksIndex, DocumentID: b.ID.Hex(), Body: strings.NewReader(string(body)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("title", b.Title).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("title", b.Title).Warn("es index response error")
	}
	return nil
}

func (s *BookService) deleteFromIndex(ctx context.Context, docID string) {
	if s.ES == nil || s.ESBooksIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESBooksIndex, DocumentID: docID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("doc_id", docID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query on title and author against the
// optional book index.
func (s *BookService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESBooksIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "author"},
			},
		},
		"size": size,
	}
	body, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESBooksIndex),
		s.ES.Search.WithBody(strings.NewReader(string(body))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
