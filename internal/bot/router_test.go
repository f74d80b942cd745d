package bot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/bot/handlers"
	"github.com/aevobot/aevo-helper-bot/internal/intent"
)

type fakeContext struct {
	telebot.Context

	sender *telebot.User
	text   string
	sent   []string
}

func (f *fakeContext) Sender() *telebot.User { return f.sender }

func (f *fakeContext) Text() string { return f.text }

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		f.sent = append(f.sent, s)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func recordingHandler(name string, calls *[]string) handlers.Handler {
	return func(telebot.Context) error {
		*calls = append(*calls, name)
		return nil
	}
}

func newTestRouter(t *testing.T, store intent.Store) (*Router, *[]string) {
	t.Helper()

	calls := &[]string{}
	dispatcher := NewDispatcher(store, testLogger())
	dispatcher.RegisterIntentHandler(intent.Price, recordingHandler("price_resolve", calls))
	dispatcher.RegisterIntentHandler(intent.Funding, recordingHandler("funding_resolve", calls))
	dispatcher.SetIdleHandler(recordingHandler("idle", calls))

	router := NewRouter(dispatcher, testLogger())
	router.RegisterCommand(CommandStart, recordingHandler("start", calls))
	router.RegisterButton("📈Price", recordingHandler("price_button", calls))

	return router, calls
}

func TestRouter_RoutesCommand(t *testing.T) {
	router, calls := newTestRouter(t, intent.NewMemoryStore())

	err := router.Route(&fakeContext{sender: &telebot.User{ID: 1}, text: "/start"})
	require.NoError(t, err)
	assert.Equal(t, []string{"start"}, *calls)
}

func TestRouter_RoutesCommandWithMentionAndPayload(t *testing.T) {
	router, calls := newTestRouter(t, intent.NewMemoryStore())

	err := router.Route(&fakeContext{sender: &telebot.User{ID: 1}, text: "/start@aevo_helper_bot deep-link"})
	require.NoError(t, err)
	assert.Equal(t, []string{"start"}, *calls)
}

func TestRouter_RoutesButtonByExactLabel(t *testing.T) {
	router, calls := newTestRouter(t, intent.NewMemoryStore())

	err := router.Route(&fakeContext{sender: &telebot.User{ID: 1}, text: "📈Price"})
	require.NoError(t, err)
	assert.Equal(t, []string{"price_button"}, *calls)
}

func TestRouter_FreeTextWithPendingIntent(t *testing.T) {
	store := intent.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), 1, intent.Funding))

	router, calls := newTestRouter(t, store)

	err := router.Route(&fakeContext{sender: &telebot.User{ID: 1}, text: "BTC"})
	require.NoError(t, err)
	assert.Equal(t, []string{"funding_resolve"}, *calls)
}

func TestRouter_FreeTextWithoutIntentHitsIdle(t *testing.T) {
	router, calls := newTestRouter(t, intent.NewMemoryStore())

	err := router.Route(&fakeContext{sender: &telebot.User{ID: 1}, text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, []string{"idle"}, *calls)
}

func TestRouter_UnknownCommandFallsThroughToIdle(t *testing.T) {
	router, calls := newTestRouter(t, intent.NewMemoryStore())

	err := router.Route(&fakeContext{sender: &telebot.User{ID: 1}, text: "/unknown"})
	require.NoError(t, err)
	assert.Equal(t, []string{"idle"}, *calls)
}

func TestRouter_MiddlewaresWrapInOrder(t *testing.T) {
	router, calls := newTestRouter(t, intent.NewMemoryStore())

	mw := func(name string) handlers.Middleware {
		return func(next handlers.Handler) handlers.Handler {
			return func(c telebot.Context) error {
				*calls = append(*calls, name)
				return next(c)
			}
		}
	}
	router.Use(mw("outer"))
	router.Use(mw("inner"))

	err := router.Route(&fakeContext{sender: &telebot.User{ID: 1}, text: "/start"})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "start"}, *calls)
}

type brokenStore struct {
	intent.Store
}

func (brokenStore) Get(context.Context, int64) (intent.Intent, error) {
	return intent.None, errors.New("store down")
}

func TestDispatcher_StoreFailureFallsBackToIdle(t *testing.T) {
	calls := &[]string{}
	dispatcher := NewDispatcher(brokenStore{}, testLogger())
	dispatcher.SetIdleHandler(recordingHandler("idle", calls))

	err := dispatcher.Dispatch(&fakeContext{sender: &telebot.User{ID: 1}, text: "BTC"})
	require.NoError(t, err)
	assert.Equal(t, []string{"idle"}, *calls)
}

func TestDispatcher_NoSenderIsIgnored(t *testing.T) {
	calls := &[]string{}
	dispatcher := NewDispatcher(intent.NewMemoryStore(), testLogger())
	dispatcher.SetIdleHandler(recordingHandler("idle", calls))

	err := dispatcher.Dispatch(&fakeContext{text: "BTC"})
	require.NoError(t, err)
	assert.Empty(t, *calls)
}
