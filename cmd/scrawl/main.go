package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/config"
	"github.com/scrawl-party/scrawl-cli/internal/dispatch"
	"github.com/scrawl-party/scrawl-cli/internal/transport"
	"github.com/scrawl-party/scrawl-cli/internal/view"
	"github.com/scrawl-party/scrawl-cli/internal/view/components/canvasview"
	"github.com/scrawl-party/scrawl-cli/pkg/game"
	"github.com/scrawl-party/scrawl-cli/pkg/protocol"
	"github.com/scrawl-party/scrawl-cli/pkg/relay"
	"github.com/scrawl-party/scrawl-cli/pkg/storage"
)

const canvasWidth = 64
const canvasHeight = 24

func main() {
	config.ParseArguments()
	config.SetupLogger()

	ctx, quit := context.WithCancel(context.Background())
	defer quit()

	endpoint, err := protocol.ResolveEndpoint(config.ServerURL())
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid server address: %s\n", err)
		os.Exit(1)
	}

	channel := transport.NewChannel(endpoint,
		transport.WithContext(ctx),
		transport.WithLogger(config.Logger),
	)
	defer channel.Stop()

	dispatcher := dispatch.New(config.Logger)
	inbound := channel.SubscribeToMessages()
	go dispatcher.Run(ctx, inbound.Ch)

	store := createStorage()
	playerName := resolvePlayerName(store)

	g := game.NewGame([]game.Option{
		game.WithContext(ctx),
		game.WithLogger(config.Logger),
		game.WithTransport(channel),
		game.WithDispatcher(dispatcher),
		game.WithPlayerName(playerName),
	})
	defer g.Stop()

	producer := relay.NewProducer(g, relay.WithLogger(config.Logger))
	defer producer.Stop()

	surface := canvasview.NewSurface(canvasWidth, canvasHeight)
	consumer := relay.NewConsumer(g, dispatcher, surface,
		relay.WithConsumerLogger(config.Logger),
	)
	consumer.Start()
	defer consumer.Stop()

	code := view.Run(g, channel, producer, surface, store)
	os.Exit(code)
}

func createStorage() storage.Service {
	if config.Anonymous() {
		return nil
	}

	store := storage.NewLocalStorage("")
	if err := store.Initialize(); err != nil {
		config.Logger.Warn("failed to initialize storage", zap.Error(err))
	}
	return store
}

func resolvePlayerName(store storage.Service) string {
	if name := config.PlayerName(); name != "" {
		return name
	}
	if store != nil {
		if name := store.PlayerName(); name != "" {
			return name
		}
	}
	if config.Anonymous() {
		return config.GeneratePlayerName()
	}
	// Empty name: the player is asked on startup.
	return ""
}
