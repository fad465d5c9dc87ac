// Package memstore provides in-memory implementations of the category and
// tag store interfaces plus a fixture Guardian. It backs tests and the CLI;
// it is not a topic storage engine.
package memstore

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/topicfilter/core"
)

// Category is a fixture category record.
type Category struct {
	ID             core.CategoryID `yaml:"id"`
	Slug           string          `yaml:"slug"`
	ParentID       core.CategoryID `yaml:"parent_id,omitempty"`
	ReadRestricted bool            `yaml:"read_restricted,omitempty"`
}

// Tag is a fixture tag record. TargetTagID marks the tag as an alias.
// Hidden tags are visible to authenticated viewers only.
type Tag struct {
	ID          core.TagID `yaml:"id"`
	Name        string     `yaml:"name"`
	TargetTagID core.TagID `yaml:"target_tag_id,omitempty"`
	Hidden      bool       `yaml:"hidden,omitempty"`
}

// TagGroup is a fixture tag group.
type TagGroup struct {
	Name   string       `yaml:"name"`
	TagIDs []core.TagID `yaml:"tag_ids"`
}

// Fixture is the serializable store content.
type Fixture struct {
	Categories []Category `yaml:"categories"`
	Tags       []Tag      `yaml:"tags"`
	TagGroups  []TagGroup `yaml:"tag_groups"`
}

// Store implements core.CategoryStore and core.TagStore over fixture data.
type Store struct {
	categories map[core.CategoryID]Category
	bySlug     map[string]core.CategoryID
	children   map[core.CategoryID][]core.CategoryID
	tagsByName map[string]Tag
	groups     map[string][]core.TagID
}

// New builds a store from fixture data.
func New(fx Fixture) *Store {
	s := &Store{
		categories: make(map[core.CategoryID]Category),
		bySlug:     make(map[string]core.CategoryID),
		children:   make(map[core.CategoryID][]core.CategoryID),
		tagsByName: make(map[string]Tag),
		groups:     make(map[string][]core.TagID),
	}
	for _, c := range fx.Categories {
		s.categories[c.ID] = c
		s.bySlug[c.Slug] = c.ID
		if c.ParentID != 0 {
			s.children[c.ParentID] = append(s.children[c.ParentID], c.ID)
		}
	}
	for _, t := range fx.Tags {
		s.tagsByName[t.Name] = t
	}
	for _, g := range fx.TagGroups {
		s.groups[g.Name] = g.TagIDs
	}
	return s
}

// Load reads a YAML fixture and builds a store from it.
func Load(r io.Reader) (*Store, error) {
	var fx Fixture
	if err := yaml.NewDecoder(r).Decode(&fx); err != nil {
		return nil, fmt.Errorf("memstore: decode fixture: %w", err)
	}
	return New(fx), nil
}

// IDsFromSlugs implements core.CategoryStore. Unknown slugs are dropped.
func (s *Store) IDsFromSlugs(_ context.Context, slugs []string) ([]core.CategoryID, error) {
	var ids []core.CategoryID
	for _, slug := range slugs {
		if id, ok := s.bySlug[slug]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// SubcategoryIDs implements core.CategoryStore: the id itself plus every
// descendant, in ascending order.
func (s *Store) SubcategoryIDs(_ context.Context, id core.CategoryID) ([]core.CategoryID, error) {
	set := roaring64.New()
	queue := []core.CategoryID{id}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if set.Contains(uint64(next)) {
			continue
		}
		set.Add(uint64(next))
		queue = append(queue, s.children[next]...)
	}

	ids := make([]core.CategoryID, 0, set.GetCardinality())
	it := set.Iterator()
	for it.HasNext() {
		ids = append(ids, core.CategoryID(it.Next()))
	}
	return ids, nil
}

// TagsByName implements core.TagStore. Hidden tags are dropped for
// anonymous viewers.
func (s *Store) TagsByName(_ context.Context, g core.Guardian, names []string) ([]core.Tag, error) {
	var tags []core.Tag
	for _, name := range names {
		t, ok := s.tagsByName[name]
		if !ok {
			continue
		}
		if t.Hidden && !g.Authenticated() {
			continue
		}
		tags = append(tags, core.Tag{ID: t.ID, Name: t.Name, TargetTagID: t.TargetTagID})
	}
	return tags, nil
}

// TagGroupMemberIDs implements core.TagStore.
func (s *Store) TagGroupMemberIDs(_ context.Context, _ core.Guardian, name string) ([]core.TagID, error) {
	return slices.Clone(s.groups[name]), nil
}

// Viewer is a fixture Guardian. A zero ID means anonymous.
type Viewer struct {
	ID               core.UserID
	HiddenCategories []core.CategoryID
	SeeDeleted       bool
}

func (v Viewer) Authenticated() bool { return v.ID != 0 }

func (v Viewer) UserID() core.UserID { return v.ID }

func (v Viewer) CanSeeCategory(id core.CategoryID) bool {
	return !slices.Contains(v.HiddenCategories, id)
}

func (v Viewer) CanSeeDeletedTopics(*core.CategoryID) bool { return v.SeeDeleted }
