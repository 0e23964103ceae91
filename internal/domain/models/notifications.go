// internal/domain/models/notifications.go
package models

// NotificationsDocument is the whole notifications.json file.
type NotificationsDocument struct {
	Notifications      []Notification `json:"notifications"`
	LastUpdated        string         `json:"lastUpdated,omitempty"` // ISO-8601
	TotalNotifications int            `json:"totalNotifications"`
	UnreadCount        int            `json:"unreadCount"`
}

// Notification is one dashboard notification. The portal replaces the whole
// list on update; ids are assigned server-side when missing.
type Notification struct {
	ID        string         `json:"id"`
	Type      string         `json:"type,omitempty"`
	Title     string         `json:"title,omitempty"`
	Message   string         `json:"message,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt string         `json:"createdAt,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// CountUnread returns the number of notifications not yet read.
func CountUnread(list []Notification) int {
	n := 0
	for _, item := range list {
		if !item.Read {
			n++
		}
	}
	return n
}
