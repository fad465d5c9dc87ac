package core

// TopicID identifies a topic.
type TopicID int64

// CategoryID identifies a category.
type CategoryID int64

// TagID identifies a tag.
type TagID int64

// UserID identifies a user.
type UserID int64

// NotificationLevel is a viewer's per-topic notification setting.
type NotificationLevel int

const (
	NotificationMuted NotificationLevel = iota
	NotificationRegular
	NotificationTracking
	NotificationWatching
	NotificationWatchingFirstPost
)

var notificationLevelNames = map[string]NotificationLevel{
	"muted":               NotificationMuted,
	"regular":             NotificationRegular,
	"normal":              NotificationRegular,
	"tracking":            NotificationTracking,
	"watching":            NotificationWatching,
	"watching_first_post": NotificationWatchingFirstPost,
}

// ParseNotificationLevel maps a level name from an "in:" filter value to its
// numeric level. "normal" is accepted as an alias for "regular".
func ParseNotificationLevel(name string) (NotificationLevel, bool) {
	level, ok := notificationLevelNames[name]
	return level, ok
}

// Tag is a tag visible to a viewer. TargetTagID is non-zero when the tag is
// an alias that redirects to a canonical tag.
type Tag struct {
	ID          TagID
	Name        string
	TargetTagID TagID
}
