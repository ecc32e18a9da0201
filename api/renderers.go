package api

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/yldio/xbbcode/bbcode"
	db "github.com/yldio/xbbcode/db/sqlc"
	"github.com/yldio/xbbcode/profile"
)

// rendererRegistry caches one compiled renderer per profile. A renderer is
// immutable and share-safe, so the lock only guards the map itself. Entries
// are compiled on first use and dropped whenever the profile changes, which
// keeps every service instance at most one request behind the database.
type rendererRegistry struct {
	mu        sync.RWMutex
	renderers map[string]*bbcode.Renderer
}

func newRendererRegistry() *rendererRegistry {
	return &rendererRegistry{
		renderers: map[string]*bbcode.Renderer{
			profile.DefaultName: bbcode.NewRenderer(profile.Default()),
		},
	}
}

func (r *rendererRegistry) get(name string) (*bbcode.Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	return renderer, ok
}

func (r *rendererRegistry) set(name string, renderer *bbcode.Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.renderers[name] = renderer
}

func (r *rendererRegistry) drop(name string) {
	// the built-in entry never leaves the map
	if name == profile.DefaultName {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.renderers, name)
}

// rendererFor returns the compiled renderer of the named profile, loading
// and compiling it from the database on a registry miss.
// Returns ErrProfileNotFound if no such profile is stored.
func (s *Service) rendererFor(ctx *gin.Context, name string) (*bbcode.Renderer, error) {
	if renderer, ok := s.renderers.get(name); ok {
		return renderer, nil
	}

	stored, err := s.store.GetProfileByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	tagRules, err := s.store.ListTagRules(ctx, stored.ID)
	if err != nil {
		return nil, err
	}

	renderer := bbcode.NewRenderer(compileRules(tagRules))
	s.renderers.set(name, renderer)

	return renderer, nil
}

// compileRules turns stored tag rows into a rule table. The rows were
// validated on the way into the database, so compilation cannot fail.
func compileRules(tagRules []db.TagRule) bbcode.Rules {
	defs := make([]profile.TagDef, len(tagRules))

	for i, tagRule := range tagRules {
		defs[i] = profile.TagDef{
			Name:        tagRule.Name,
			Template:    tagRule.Template,
			SelfClosing: tagRule.SelfClosing,
			NoCode:      tagRule.NoCode,
		}
	}

	return profile.Definition{Tags: defs}.Rules()
}
