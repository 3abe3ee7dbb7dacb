package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"booky/internal/config"
	"booky/internal/entity"
	"booky/internal/logging"
	"booky/internal/store"
	"booky/internal/usecase"
)

type catalog struct {
	books        []entity.Book
	authors      []entity.Author
	publications []entity.Publication
	// links pair an ISBN with author or publication ids.
	authorLinks      map[string][]int
	publicationLinks map[string][]int
}

var fixtures = catalog{
	books: []entity.Book{
		{
			ISBN:     "12345ONE",
			Title:    "Getting started with MERN",
			PubDate:  "2021-07-07",
			Language: "en",
			NumPage:  250,
			Category: []string{"fiction", "programming", "tech", "web dev"},
		},
		{
			ISBN:     "12345Two",
			Title:    "Getting started with Python",
			PubDate:  "2021-07-07",
			Language: "en",
			NumPage:  250,
			Category: []string{"fiction", "tech", "web dev"},
		},
	},
	authors: []entity.Author{
		{ID: 1, Name: "pavan"},
		{ID: 2, Name: "Deepak"},
	},
	publications: []entity.Publication{
		{ID: 1, Name: "Chakra"},
		{ID: 2, Name: "Vickie Publications"},
	},
	authorLinks: map[string][]int{
		"12345ONE": {1, 2},
		"12345Two": {1},
	},
	publicationLinks: map[string][]int{
		"12345ONE": {1},
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logging.Default().Fatal().Err(err).Msg("invalid configuration")
	}
	logging.SetDefault(logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format))
	logger := logging.Default()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		logger.Fatal().Err(err).Msg("open store")
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	if err := seed(ctx, st, fixtures); err != nil {
		logger.Error().Err(err).Msg("seed failed")
		st.Close()
		os.Exit(1)
	}
	logger.Info().
		Int("books", len(fixtures.books)).
		Int("authors", len(fixtures.authors)).
		Int("publications", len(fixtures.publications)).
		Msg("catalog seeded")
}

// seed inserts the documents without references and then links them, so
// both sides of every reference agree. Documents whose key is already stored
// are left alone and linking is add-to-set, so reruns change nothing.
func seed(ctx context.Context, st *store.Store, c catalog) error {
	books := usecase.NewBookUsecase(st.Books)
	authors := usecase.NewAuthorUsecase(st.Authors)
	pubs := usecase.NewPublicationUsecase(st.Publications)
	links := usecase.NewLinkUsecase(st.Tx)

	existingBooks, err := books.List(ctx)
	if err != nil {
		return err
	}
	haveBook := make(map[string]bool, len(existingBooks))
	for _, b := range existingBooks {
		haveBook[b.ISBN] = true
	}
	for _, b := range c.books {
		if haveBook[b.ISBN] {
			continue
		}
		if _, err := books.Create(ctx, b); err != nil {
			return err
		}
	}

	existingAuthors, err := authors.List(ctx)
	if err != nil {
		return err
	}
	haveAuthor := make(map[int]bool, len(existingAuthors))
	for _, a := range existingAuthors {
		haveAuthor[a.ID] = true
	}
	for _, a := range c.authors {
		if haveAuthor[a.ID] {
			continue
		}
		if _, err := authors.Create(ctx, a); err != nil {
			return err
		}
	}

	existingPubs, err := pubs.List(ctx)
	if err != nil {
		return err
	}
	havePub := make(map[int]bool, len(existingPubs))
	for _, p := range existingPubs {
		havePub[p.ID] = true
	}
	for _, p := range c.publications {
		if havePub[p.ID] {
			continue
		}
		if _, err := pubs.Create(ctx, p); err != nil {
			return err
		}
	}

	for _, b := range c.books {
		for _, id := range c.authorLinks[b.ISBN] {
			if _, err := links.AddAuthor(ctx, b.ISBN, id); err != nil {
				return fmt.Errorf("link author %d to %s: %w", id, b.ISBN, err)
			}
		}
		for _, id := range c.publicationLinks[b.ISBN] {
			if _, err := links.AddPublication(ctx, b.ISBN, id); err != nil {
				return fmt.Errorf("link publication %d to %s: %w", id, b.ISBN, err)
			}
		}
	}
	return nil
}
