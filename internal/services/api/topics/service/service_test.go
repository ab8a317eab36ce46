package service

import (
	"context"
	"errors"
	"testing"

	"trendboard/internal/modkit/repokit"
	perr "trendboard/internal/platform/errors"
	"trendboard/internal/platform/store"
	"trendboard/internal/services/api/topics/domain"
	"trendboard/internal/services/api/topics/repo"
)

type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(fakeTx{})
}

type fakeRepo struct {
	lists     [][]string
	listsErr  error
	rows      []repo.Row
	total     int
	languages []string
	dates     []string
	filter    repo.Filter
}

func (f *fakeRepo) TopicLists(context.Context) ([][]string, error) { return f.lists, f.listsErr }

func (f *fakeRepo) ReposByTopic(_ context.Context, flt repo.Filter) ([]repo.Row, error) {
	f.filter = flt
	return f.rows, nil
}

func (f *fakeRepo) CountByTopic(context.Context, repo.Filter) (int, error) { return f.total, nil }

func (f *fakeRepo) LanguagesForTopic(context.Context, string) ([]string, error) {
	return f.languages, nil
}

func (f *fakeRepo) DatesForTopic(context.Context, string) ([]string, error) { return f.dates, nil }

func newSvc(f *fakeRepo) *Svc {
	return New(fakeTx{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f }))
}

func TestList_CountsAndPages(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{lists: [][]string{
		{"go", "cli"},
		{"go"},
		{"go", "web"},
	}}
	out, err := newSvc(f).List(context.Background(), domain.TopicsInput{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 3 {
		t.Errorf("total = %d, want 3 distinct topics", out.Total)
	}
	if len(out.Data) != 2 {
		t.Fatalf("page size not applied, got %d rows", len(out.Data))
	}
	if out.Data[0].Name != "go" || out.Data[0].Count != 3 {
		t.Errorf("unexpected top topic: %+v", out.Data[0])
	}
	if out.Data[0].DisplayName != "Go" {
		t.Errorf("display_name = %q, want %q", out.Data[0].DisplayName, "Go")
	}
}

func TestList_PageBeyondEnd(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{lists: [][]string{{"go"}}}
	out, err := newSvc(f).List(context.Background(), domain.TopicsInput{Page: 5, PageSize: 50})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Data) != 0 || out.Total != 1 {
		t.Errorf("expected empty page with total 1, got %+v", out)
	}
}

func TestRepos_AllSentinelsClearFilters(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{rows: []repo.Row{{FullName: "facebook/react"}}, total: 1}
	out, err := newSvc(f).Repos(context.Background(), "react", domain.TopicReposInput{
		Language: "all",
		Date:     "all",
	})
	if err != nil {
		t.Fatalf("Repos: %v", err)
	}
	if f.filter.Language != "" || f.filter.Date != "" {
		t.Errorf("sentinel filters not cleared: %+v", f.filter)
	}
	if f.filter.Topic != "react" || f.filter.Limit != 20 || f.filter.Offset != 0 {
		t.Errorf("filter translation wrong: %+v", f.filter)
	}
	if out.Total != 1 || out.Topic != "react" {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestList_StoreErrorMapsToDBCode(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{listsErr: errors.New("connection refused")}
	_, err := newSvc(f).List(context.Background(), domain.TopicsInput{})
	if err == nil {
		t.Fatal("expected error when the topic scan fails")
	}
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Errorf("code = %v, want db", perr.CodeOf(err))
	}
}

func TestRepos_BlankTopicRejected(t *testing.T) {
	t.Parallel()

	_, err := newSvc(&fakeRepo{}).Repos(context.Background(), "  ", domain.TopicReposInput{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Errorf("code = %v, want validation", perr.CodeOf(err))
	}
}
