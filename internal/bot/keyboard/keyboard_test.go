package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainMenu(t *testing.T) {
	markup := MainMenu()

	assert.True(t, markup.ResizeKeyboard)
	assert.False(t, markup.OneTimeKeyboard)

	require.Len(t, markup.ReplyKeyboard, 2)

	var labels []string
	for _, row := range markup.ReplyKeyboard {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}

	assert.Equal(t, []string{BtnAbout, BtnLinks, BtnAssets, BtnPrice, BtnFunding}, labels)
}

func TestLinks(t *testing.T) {
	markup := Links()

	require.Len(t, markup.InlineKeyboard, 3)

	var count int
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			count++
			assert.NotEmpty(t, btn.Text)
			assert.NotEmpty(t, btn.URL, "links keyboard must only contain URL buttons")
		}
	}

	assert.Equal(t, len(officialLinks), count)
}
