package keyboard

import (
	telebot "gopkg.in/telebot.v3"
)

// Official AEVO resources linked from the 🖌Links menu entry.
var officialLinks = []struct {
	Text string
	URL  string
}{
	{"Site", "https://www.aevo.xyz/"},
	{"Twitter", "https://twitter.com/aevoxyz"},
	{"Discord", "https://discord.com/invite/aevo"},
	{"Github", "https://github.com/aevoxyz"},
	{"Trading", "https://app.aevo.xyz/option/eth"},
}

const linksPerRow = 2

// Links builds the inline keyboard of official AEVO hyperlinks.
func Links() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}

	rows := make([]telebot.Row, 0, (len(officialLinks)+linksPerRow-1)/linksPerRow)
	row := make([]telebot.Btn, 0, linksPerRow)

	for _, link := range officialLinks {
		row = append(row, markup.URL(link.Text, link.URL))
		if len(row) == linksPerRow {
			rows = append(rows, markup.Row(row...))
			row = make([]telebot.Btn, 0, linksPerRow)
		}
	}
	if len(row) > 0 {
		rows = append(rows, markup.Row(row...))
	}

	markup.Inline(rows...)
	return markup
}
