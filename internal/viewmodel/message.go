package viewmodel

import "time"

// AttachmentKind mirrors the domain attachment type under its UI name.
type AttachmentKind string

type AttachmentView struct {
	ID   string         `json:"id" yaml:"id"`
	URL  string         `json:"url" yaml:"url"`
	Kind AttachmentKind `json:"kind" yaml:"kind"`
}

type MessageView struct {
	ID         string          `json:"id" yaml:"id"`
	Author     UserView        `json:"author" yaml:"author"`
	Text       string          `json:"text" yaml:"text"`
	SentAt     time.Time       `json:"sentAt" yaml:"sentAt"`
	Attachment *AttachmentView `json:"attachment" yaml:"attachment"`
}
