package mapper

import (
	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/format"
	"github.com/a2-coder/dvmm/internal/viewmodel"
)

type AttachmentMapper struct{}

var _ Mapper[domain.Attachment, viewmodel.AttachmentView] = AttachmentMapper{}

func (AttachmentMapper) ToViewModel(d domain.Attachment) (viewmodel.AttachmentView, error) {
	return viewmodel.AttachmentView{
		ID:   d.ID,
		URL:  d.URL,
		Kind: viewmodel.AttachmentKind(d.Type),
	}, nil
}

func (AttachmentMapper) ToDomainModel(v viewmodel.AttachmentView) (domain.Attachment, error) {
	return domain.Attachment{
		ID:   v.ID,
		URL:  v.URL,
		Type: domain.AttachmentType(v.Kind),
	}, nil
}

// MessageMapper embeds the author's view record and keeps a missing
// attachment missing.
type MessageMapper struct {
	Authors     Mapper[domain.User, viewmodel.UserView]
	Attachments Mapper[domain.Attachment, viewmodel.AttachmentView]
}

func NewMessageMapper() MessageMapper {
	return MessageMapper{
		Authors:     NewUserMapper(),
		Attachments: AttachmentMapper{},
	}
}

var _ Mapper[domain.Message, viewmodel.MessageView] = MessageMapper{}

func (m MessageMapper) ToViewModel(d domain.Message) (viewmodel.MessageView, error) {
	author, err := m.Authors.ToViewModel(d.Author)
	if err != nil {
		return viewmodel.MessageView{}, WithField("author", err)
	}
	sent, err := format.ParseTimestamp("sent_at", d.SentAt)
	if err != nil {
		return viewmodel.MessageView{}, err
	}
	att, err := Optional(m.Attachments, d.Attachment)
	if err != nil {
		return viewmodel.MessageView{}, WithField("attachment", err)
	}
	return viewmodel.MessageView{
		ID:         d.ID,
		Author:     author,
		Text:       d.Body,
		SentAt:     sent,
		Attachment: att,
	}, nil
}

func (m MessageMapper) ToDomainModel(v viewmodel.MessageView) (domain.Message, error) {
	author, err := m.Authors.ToDomainModel(v.Author)
	if err != nil {
		return domain.Message{}, WithField("author", err)
	}
	att, err := OptionalInverse(m.Attachments, v.Attachment)
	if err != nil {
		return domain.Message{}, WithField("attachment", err)
	}
	return domain.Message{
		ID:         v.ID,
		Author:     author,
		Body:       v.Text,
		SentAt:     format.FormatTimestamp(v.SentAt),
		Attachment: att,
	}, nil
}
