package models

import "time"

// Message представляет одно сообщение переписки.
// Сообщения неизменяемы после создания и упорядочены по created_at.
type Message struct {
	ID           int64     `json:"id"`            // ID сообщения
	SenderID     int64     `json:"sender"`        // ID отправителя
	SenderName   string    `json:"sender_name"`   // username отправителя (read-only)
	ReceiverID   int64     `json:"receiver"`      // ID получателя
	ReceiverName string    `json:"receiver_name"` // username получателя (read-only)
	Content      string    `json:"content"`       // текст сообщения
	IsRead       bool      `json:"is_read"`       // прочитано ли получателем
	CreatedAt    time.Time `json:"created_at"`    // время отправки
}

// Conversation представляет строку списка диалогов:
// собеседник, последнее сообщение и количество непрочитанных
type Conversation struct {
	User          User     `json:"user"`           // собеседник
	LatestMessage *Message `json:"latest_message"` // последнее сообщение, nil если переписки нет
	UnreadCount   int      `json:"unread_count"`   // непрочитанные от собеседника
}
