package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/events"
)

type subscriber interface {
	Subscribe(kinds ...events.Kind) (<-chan events.Event, func())
}

// HostNotifier pings the property host's Telegram chat whenever the
// marketplace accepts a reservation. With an empty token it runs in disabled
// mode and only logs what it would have sent.
type HostNotifier struct {
	bot        *tgbotapi.BotAPI
	hostChatID int64
	logger     logger.Logger
}

func NewHostNotifier(token string, hostChatID int64, logger logger.Logger) (*HostNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, host notifications disabled")
		return &HostNotifier{bot: nil, hostChatID: hostChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &HostNotifier{bot: bot, hostChatID: hostChatID, logger: logger}, nil
}

// Run consumes reservation events until ctx is cancelled.
func (n *HostNotifier) Run(ctx context.Context, bus subscriber) {
	eventCh, cancel := bus.Subscribe(events.KindReservationCreated)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-eventCh:
			if !ok {
				return
			}
			if created, ok := e.(events.ReservationCreated); ok {
				n.notifyReservationCreated(ctx, created)
			}
		}
	}
}

func (n *HostNotifier) notifyReservationCreated(ctx context.Context, e events.ReservationCreated) {
	text := fmt.Sprintf(
		"*New reservation!*\n\n"+"Property: %s\n"+"Total: $%.2f\n"+"Reservation ID: %s",
		e.PropertyID, e.Total, e.ReservationID,
	)
	n.send(ctx, text)
}

func (n *HostNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.hostChatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.hostChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.hostChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.hostChatID),
			logger.String("error", err.Error()),
		)
	}
}
