package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	b := New(nil, nil, 42, nil, nil, nil, nil, nil)

	tests := []struct {
		name string
		msg  *tgbotapi.Message
		want bool
	}{
		{"private chat", &tgbotapi.Message{From: &tgbotapi.User{ID: 42}, Chat: &tgbotapi.Chat{ID: 42}}, true},
		{"group chat", &tgbotapi.Message{From: &tgbotapi.User{ID: 42}, Chat: &tgbotapi.Chat{ID: -1001234}}, true},
		{"other user in admin's group", &tgbotapi.Message{From: &tgbotapi.User{ID: 7}, Chat: &tgbotapi.Chat{ID: 42}}, false},
		{"no author", &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.isAdmin(tt.msg))
		})
	}

	unset := New(nil, nil, 0, nil, nil, nil, nil, nil)
	assert.False(t, unset.isAdmin(&tgbotapi.Message{From: &tgbotapi.User{ID: 0}, Chat: &tgbotapi.Chat{ID: 0}}))
}
