package models

type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is a dismissible message surfaced to the user.
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
}

func NewInfoNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: NotificationDefault}
}

func NewErrorNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: NotificationDestructive}
}
