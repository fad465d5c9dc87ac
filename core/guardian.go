package core

// Guardian is the permission oracle scoping visibility-sensitive lookups and
// personalized joins.
type Guardian interface {
	// Authenticated reports whether the viewer is logged in.
	Authenticated() bool

	// UserID returns the stable viewer id. Only meaningful when
	// Authenticated reports true.
	UserID() UserID

	// CanSeeCategory reports whether the viewer may see the category.
	CanSeeCategory(id CategoryID) bool

	// CanSeeDeletedTopics reports whether the viewer may see deleted topics
	// in the given category. A nil id means "in any category".
	CanSeeDeletedTopics(id *CategoryID) bool
}

// Anonymous is the Guardian of a logged-out viewer: it sees every regular
// category, no personalized state, and no deleted topics.
var Anonymous Guardian = anonymous{}

type anonymous struct{}

func (anonymous) Authenticated() bool                  { return false }
func (anonymous) UserID() UserID                       { return 0 }
func (anonymous) CanSeeCategory(CategoryID) bool       { return true }
func (anonymous) CanSeeDeletedTopics(*CategoryID) bool { return false }
