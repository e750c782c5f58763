package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"netflix-backend/internal/apperrors"
	"netflix-backend/internal/models"
	"netflix-backend/internal/normalizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPayload = `{"Search":[
	{"Title":"The Avengers","Year":"2012","imdbID":"tt0848228","Type":"movie","Poster":"https://img/avengers.jpg"},
	{"Title":"Avengers: Endgame","Year":"2019","imdbID":"tt4154796","Type":"movie","Poster":"N/A"}
],"totalResults":"2","Response":"True"}`

type fakeSearchAPI struct {
	mu      sync.Mutex
	queries []url.Values
	status  int
	body    string
}

func (f *fakeSearchAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.queries = append(f.queries, r.URL.Query())
	status, body := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeSearchAPI) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return nil
	}
	return f.queries[len(f.queries)-1]
}

func newTestCatalog(t *testing.T, api *fakeSearchAPI) CatalogService {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	cfg := testSearchConfig(server.URL)
	return NewCatalogService(NewSearchClient(cfg, testLogger()), testNormalizer(t), cfg, testLogger())
}

func TestCatalog_Categories(t *testing.T) {
	catalog := newTestCatalog(t, &fakeSearchAPI{body: searchPayload})

	cats := catalog.Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, models.Category{Slug: "trending", Title: "Trending Now", Term: "marvel"}, cats[0])
	assert.Equal(t, models.Category{Slug: "sci-fi", Title: "Sci-Fi Movies", Term: "science fiction"}, cats[6])

	cats[0].Term = "mutated"
	c, ok := catalog.Category("TRENDING")
	require.True(t, ok)
	assert.Equal(t, "marvel", c.Term)
}

func TestCatalog_RowLive(t *testing.T) {
	api := &fakeSearchAPI{body: searchPayload}
	catalog := newTestCatalog(t, api)

	list, err := catalog.Row(context.Background(), "sci-fi")
	require.NoError(t, err)

	assert.Equal(t, models.SourceLive, list.Source)
	assert.Equal(t, "Search", list.Container)
	require.Len(t, list.Movies, 2)
	assert.Equal(t, "tt0848228", list.Movies[0].ID)
	assert.Equal(t, "The Avengers", list.Movies[0].Title)
	assert.Equal(t, "2012", list.Movies[0].ReleaseDate)
	assert.Equal(t, normalizer.PlaceholderPoster, list.Movies[1].PosterPath)

	q := api.lastQuery()
	assert.Equal(t, "science fiction", q.Get("s"))
	assert.Equal(t, "movie", q.Get("type"))
	assert.Equal(t, "test-key", q.Get("apikey"))
}

func TestCatalog_RowUnknownSlug(t *testing.T) {
	api := &fakeSearchAPI{body: searchPayload}
	catalog := newTestCatalog(t, api)

	_, err := catalog.Row(context.Background(), "western")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, api.lastQuery())
}

func TestCatalog_FallbackOnFetchFailure(t *testing.T) {
	catalog := newTestCatalog(t, &fakeSearchAPI{status: http.StatusInternalServerError})

	list, err := catalog.Search(context.Background(), "heat")
	require.NoError(t, err)

	assert.Equal(t, models.SourceFallback, list.Source)
	assert.Equal(t, normalizer.ReasonFetchFailed, list.Reason)
	assert.GreaterOrEqual(t, len(list.Movies), 6)
	assert.LessOrEqual(t, len(list.Movies), 8)
}

func TestCatalog_FallbackOnNoRecords(t *testing.T) {
	catalog := newTestCatalog(t, &fakeSearchAPI{body: `{"Response":"False","Error":"Movie not found!"}`})

	list, err := catalog.Search(context.Background(), "zzzz")
	require.NoError(t, err)

	assert.Equal(t, models.SourceFallback, list.Source)
	assert.Equal(t, normalizer.ReasonNoUsableRecords, list.Reason)
	assert.NotEmpty(t, list.Movies)
}

func TestCatalog_SearchValidation(t *testing.T) {
	api := &fakeSearchAPI{body: searchPayload}
	catalog := newTestCatalog(t, api)

	_, err := catalog.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, api.lastQuery())

	_, err = catalog.Search(context.Background(), "  heat ")
	require.NoError(t, err)
	assert.Equal(t, "heat", api.lastQuery().Get("s"))
}

func TestCatalog_Banner(t *testing.T) {
	api := &fakeSearchAPI{body: searchPayload}
	catalog := newTestCatalog(t, api)

	list, err := catalog.Banner(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "avengers", api.lastQuery().Get("s"))
	assert.Equal(t, models.SourceLive, list.Source)
	require.Len(t, list.Movies, 1)
	assert.Contains(t, []string{"tt0848228", "tt4154796"}, list.Movies[0].ID)
}

func TestCatalog_Details(t *testing.T) {
	api := &fakeSearchAPI{body: `{"Title":"Heat","Year":"1995","imdbID":"tt0113277","Plot":"A group of robbers.","imdbRating":"8.3","Runtime":"170 min","Rated":"R","Genre":"Action, Crime","Response":"True"}`}
	catalog := newTestCatalog(t, api)

	list, err := catalog.Details(context.Background(), "tt0113277")
	require.NoError(t, err)

	assert.Equal(t, "tt0113277", api.lastQuery().Get("i"))
	assert.Equal(t, models.SourceLive, list.Source)
	require.Len(t, list.Movies, 1)

	movie := list.Movies[0]
	assert.Equal(t, "Heat", movie.Title)
	assert.Equal(t, 8.3, movie.VoteAverage)
	assert.Equal(t, "170 min", movie.Duration)
	assert.Equal(t, "R", movie.Maturity)
	assert.Equal(t, "Action, Crime", movie.Genre)
	assert.Equal(t, "A group of robbers.", movie.Overview)
}

func TestCatalog_DetailsRejected(t *testing.T) {
	catalog := newTestCatalog(t, &fakeSearchAPI{body: `{"Response":"False","Error":"Incorrect IMDb ID."}`})

	list, err := catalog.Details(context.Background(), "bogus")
	require.NoError(t, err)
	assert.Equal(t, models.SourceFallback, list.Source)
}

func TestCatalog_CancelledContextSkipsFallback(t *testing.T) {
	catalog := newTestCatalog(t, &fakeSearchAPI{status: http.StatusInternalServerError})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	list, err := catalog.Search(ctx, "heat")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, list.Movies)
}
