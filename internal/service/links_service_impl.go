package service

import (
	"context"
	"sort"
	"time"

	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/rowanmaas/veriflow/internal/repository"
)

type linkService struct {
	links    repository.LinkRepo
	observer UseCaseObserver
}

func NewLinkService(links repository.LinkRepo, observers ...UseCaseObserver) LinkService {
	return &linkService{links: links, observer: useCaseObserverOrNoop(observers)}
}

// LinkedDocuments walks the link graph from the given document, keeping
// only allow-listed doctypes, and returns the discovered nodes sorted
// ascending by their own link count, plus the root's accepted link count.
func (s *linkService) LinkedDocuments(ctx context.Context, doctype domain.Doctype, name string) (result *contract.LinkedDocuments, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "linked-documents",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"doctype": string(doctype), "name": name},
		})
	}()

	t := &linkTraversal{
		links:   s.links,
		visited: make(map[linkKey]bool),
		docs:    make([]domain.LinkedDoc, 0),
	}
	count, err := t.walk(ctx, doctype, name)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(t.docs, func(i, j int) bool {
		return t.docs[i].LinkCount < t.docs[j].LinkCount
	})
	return &contract.LinkedDocuments{Docs: t.docs, Count: count}, nil
}

func (s *linkService) LinkedDoctypes(doctype domain.Doctype) []domain.Doctype {
	return s.links.LinkedDoctypes(doctype)
}

// linkKey identifies a visited node by doctype and name. Keying on the pair
// keeps same-named records of different doctypes distinct.
type linkKey struct {
	doctype domain.Doctype
	name    string
}

// linkTraversal owns the visited set and the accumulated nodes for one
// listing. Nodes are marked visited before recursion, so link cycles
// terminate instead of recursing forever.
type linkTraversal struct {
	links   repository.LinkRepo
	visited map[linkKey]bool
	docs    []domain.LinkedDoc
}

// walk returns the number of allow-listed direct links of the given
// document. Every accepted link counts, visited or not; only unvisited
// links are recursed into and appended.
func (t *linkTraversal) walk(ctx context.Context, doctype domain.Doctype, name string) (int, error) {
	refs, err := t.links.LinkedDocs(ctx, doctype, name)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, ref := range refs {
		if !domain.LinkAllowed(ref.Doctype) {
			continue
		}
		count++

		key := linkKey{ref.Doctype, ref.Name}
		if t.visited[key] {
			continue
		}
		t.visited[key] = true

		childCount, err := t.walk(ctx, ref.Doctype, ref.Name)
		if err != nil {
			return 0, err
		}
		t.docs = append(t.docs, domain.LinkedDoc{
			Doctype:   ref.Doctype,
			Name:      ref.Name,
			DocStatus: ref.DocStatus,
			LinkCount: childCount,
		})
	}
	return count, nil
}
