package widget

import "github.com/google/uuid"

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient, dismissible message shown after a user action.
type Notification struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

func NewNotification(title, description string, variant Variant) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Variant:     variant,
	}
}

func (n Notification) Destructive() bool {
	return n.Variant == VariantDestructive
}
