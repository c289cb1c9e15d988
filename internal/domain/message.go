package domain

// AttachmentType is the media tag of an attachment ("image", "file", ...).
type AttachmentType string

type Attachment struct {
	ID   string         `json:"id" yaml:"id"`
	URL  string         `json:"url" yaml:"url"`
	Type AttachmentType `json:"type" yaml:"type"`
}

func (a Attachment) Validate() error {
	return firstError(
		requireString("id", a.ID),
		requireString("url", a.URL),
		requireString("type", string(a.Type)),
	)
}

func (Attachment) Shape() Shape {
	return Shape{Required: []string{"id", "url", "type"}}
}

// Message is a chat message with its author embedded and an optional attachment.
type Message struct {
	ID         string      `json:"id" yaml:"id"`
	Author     User        `json:"author" yaml:"author"`
	Body       string      `json:"body" yaml:"body"`
	SentAt     string      `json:"sent_at" yaml:"sent_at"`
	Attachment *Attachment `json:"attachment" yaml:"attachment"`
}

func (Message) Shape() Shape {
	return Shape{
		Required: []string{"id", "author", "body", "sent_at"},
		Nested: map[string]Shape{
			"author":     User{}.Shape(),
			"attachment": Attachment{}.Shape(),
		},
	}
}

func (m Message) Validate() error {
	if err := firstError(
		requireString("id", m.ID),
		requireString("sent_at", m.SentAt),
	); err != nil {
		return err
	}
	if err := m.Author.Validate(); err != nil {
		return PrefixPath("author", err)
	}
	if m.Attachment != nil {
		if err := m.Attachment.Validate(); err != nil {
			return PrefixPath("attachment", err)
		}
	}
	return nil
}
