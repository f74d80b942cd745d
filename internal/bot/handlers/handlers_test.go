package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"

	"github.com/aevobot/aevo-helper-bot/internal/intent"
	"github.com/aevobot/aevo-helper-bot/internal/market"
)

// fakeContext implements the slice of telebot.Context the handlers touch.
// Calls to any other method panic, which is fine in tests.
type fakeContext struct {
	telebot.Context

	sender *telebot.User
	text   string
	sent   []string
}

func newFakeContext(userID int64, text string) *fakeContext {
	return &fakeContext{
		sender: &telebot.User{ID: userID},
		text:   text,
	}
}

func (f *fakeContext) Sender() *telebot.User { return f.sender }

func (f *fakeContext) Text() string { return f.text }

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		f.sent = append(f.sent, s)
	}
	return nil
}

type fakeMarket struct {
	priceFn   func(ctx context.Context, asset string) (market.IndexPrice, error)
	assetsFn  func(ctx context.Context) ([]string, error)
	fundingFn func(ctx context.Context, asset string) (market.FundingRate, error)
}

func (f *fakeMarket) IndexPrice(ctx context.Context, asset string) (market.IndexPrice, error) {
	return f.priceFn(ctx, asset)
}

func (f *fakeMarket) Assets(ctx context.Context) ([]string, error) {
	return f.assetsFn(ctx)
}

func (f *fakeMarket) FundingRate(ctx context.Context, asset string) (market.FundingRate, error) {
	return f.fundingFn(ctx, asset)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pendingIntent(t *testing.T, store intent.Store, userID int64) intent.Intent {
	t.Helper()

	in, err := store.Get(context.Background(), userID)
	require.NoError(t, err)
	return in
}

func TestStartHandler_SendsWelcome(t *testing.T) {
	c := newFakeContext(1, "/start")

	err := NewStartHandler(testLogger())(c)
	require.NoError(t, err)
	assert.Equal(t, []string{MsgWelcome}, c.sent)
}

func TestHelpHandler_SendsCommandList(t *testing.T) {
	c := newFakeContext(1, "/help")

	err := NewHelpHandler(testLogger())(c)
	require.NoError(t, err)
	assert.Equal(t, []string{MsgHelp}, c.sent)
}

func TestPriceButton_SetsPendingIntent(t *testing.T) {
	store := intent.NewMemoryStore()
	c := newFakeContext(7, "📈Price")

	err := NewPriceButtonHandler(store, testLogger())(c)
	require.NoError(t, err)

	assert.Equal(t, intent.Price, pendingIntent(t, store, 7))
	assert.Equal(t, []string{MsgPricePrompt}, c.sent)
}

func TestPriceButton_OverwritesPendingFunding(t *testing.T) {
	store := intent.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), 7, intent.Funding))

	err := NewPriceButtonHandler(store, testLogger())(newFakeContext(7, "📈Price"))
	require.NoError(t, err)

	assert.Equal(t, intent.Price, pendingIntent(t, store, 7))
}

func TestFundingButton_SetsPendingIntent(t *testing.T) {
	store := intent.NewMemoryStore()
	c := newFakeContext(7, "📊Funding")

	err := NewFundingButtonHandler(store, testLogger())(c)
	require.NoError(t, err)

	assert.Equal(t, intent.Funding, pendingIntent(t, store, 7))
	assert.Equal(t, []string{MsgFundingPrompt}, c.sent)
}

func TestPriceResolve_FormatsPrice(t *testing.T) {
	store := intent.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), 7, intent.Price))

	md := &fakeMarket{
		priceFn: func(_ context.Context, asset string) (market.IndexPrice, error) {
			assert.Equal(t, "ETH", asset)
			return market.IndexPrice{Asset: asset, Price: decimal.RequireFromString("1234.5")}, nil
		},
	}

	c := newFakeContext(7, "ETH")
	err := NewPriceResolveHandler(store, md, testLogger())(c)
	require.NoError(t, err)

	assert.Equal(t, []string{MsgPleaseWait, "ETH - 1234.50$"}, c.sent)
	assert.Equal(t, intent.None, pendingIntent(t, store, 7))
}

func TestPriceResolve_UnavailableSendsFailureAndClears(t *testing.T) {
	store := intent.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), 7, intent.Price))

	md := &fakeMarket{
		priceFn: func(context.Context, string) (market.IndexPrice, error) {
			return market.IndexPrice{}, market.ErrUnavailable
		},
	}

	c := newFakeContext(7, "DOGE")
	err := NewPriceResolveHandler(store, md, testLogger())(c)
	require.NoError(t, err)

	assert.Equal(t, []string{MsgPleaseWait, MsgFailure}, c.sent)
	assert.Equal(t, intent.None, pendingIntent(t, store, 7))
}

func TestPriceResolve_RepeatableWithIdenticalResponses(t *testing.T) {
	store := intent.NewMemoryStore()
	md := &fakeMarket{
		priceFn: func(_ context.Context, asset string) (market.IndexPrice, error) {
			return market.IndexPrice{Asset: asset, Price: decimal.RequireFromString("1234.5")}, nil
		},
	}
	handler := NewPriceResolveHandler(store, md, testLogger())

	var replies []string
	for i := 0; i < 2; i++ {
		require.NoError(t, store.Set(context.Background(), 7, intent.Price))

		c := newFakeContext(7, "ETH")
		require.NoError(t, handler(c))
		replies = append(replies, c.sent[len(c.sent)-1])
	}

	assert.Equal(t, replies[0], replies[1])
}

func TestFundingResolve_FormatsRate(t *testing.T) {
	store := intent.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), 7, intent.Funding))

	md := &fakeMarket{
		fundingFn: func(_ context.Context, asset string) (market.FundingRate, error) {
			assert.Equal(t, "BTC", asset)
			return market.FundingRate{Asset: asset, Rate: decimal.RequireFromString("0.0001")}, nil
		},
	}

	c := newFakeContext(7, "BTC")
	err := NewFundingResolveHandler(store, md, testLogger())(c)
	require.NoError(t, err)

	assert.Equal(t, []string{MsgPleaseWait, "BTC - 0.000100"}, c.sent)
	assert.Equal(t, intent.None, pendingIntent(t, store, 7))
}

func TestFundingResolve_UnavailableSendsFailureAndClears(t *testing.T) {
	store := intent.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), 7, intent.Funding))

	md := &fakeMarket{
		fundingFn: func(context.Context, string) (market.FundingRate, error) {
			return market.FundingRate{}, market.ErrUnavailable
		},
	}

	c := newFakeContext(7, "BTC")
	err := NewFundingResolveHandler(store, md, testLogger())(c)
	require.NoError(t, err)

	assert.Equal(t, []string{MsgPleaseWait, MsgFailure}, c.sent)
	assert.Equal(t, intent.None, pendingIntent(t, store, 7))
}

func TestAssetsHandler_FormatsEnumeratedList(t *testing.T) {
	md := &fakeMarket{
		assetsFn: func(context.Context) ([]string, error) {
			return []string{"BTC", "ETH", "SOL"}, nil
		},
	}

	c := newFakeContext(7, "⚡Assets")
	err := NewAssetsHandler(md, testLogger())(c)
	require.NoError(t, err)

	assert.Equal(t, []string{MsgPleaseWait, "1) BTC\n2) ETH\n3) SOL"}, c.sent)
}

func TestAssetsHandler_Unavailable(t *testing.T) {
	md := &fakeMarket{
		assetsFn: func(context.Context) ([]string, error) {
			return nil, market.ErrUnavailable
		},
	}

	c := newFakeContext(7, "⚡Assets")
	err := NewAssetsHandler(md, testLogger())(c)
	require.NoError(t, err)

	assert.Equal(t, []string{MsgPleaseWait, MsgFailure}, c.sent)
}

func TestIdleHandler_SendsGuidance(t *testing.T) {
	c := newFakeContext(7, "hello")

	err := NewIdleHandler(testLogger())(c)
	require.NoError(t, err)
	assert.Equal(t, []string{MsgIdle}, c.sent)
}

func TestCancelHandler_ClearsPendingIntent(t *testing.T) {
	store := intent.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), 7, intent.Price))

	c := newFakeContext(7, "/cancel")
	err := NewCancelHandler(store, testLogger())(c)
	require.NoError(t, err)

	assert.Equal(t, intent.None, pendingIntent(t, store, 7))
	assert.Equal(t, []string{MsgCancelled}, c.sent)
}

type failingStore struct {
	intent.Store
}

func (failingStore) Set(context.Context, int64, intent.Intent) error {
	return errors.New("store down")
}

func TestPriceButton_StoreFailurePropagates(t *testing.T) {
	c := newFakeContext(7, "📈Price")

	err := NewPriceButtonHandler(failingStore{}, testLogger())(c)
	require.Error(t, err)
	assert.Empty(t, c.sent, "no prompt must be sent when the intent could not be recorded")
}
