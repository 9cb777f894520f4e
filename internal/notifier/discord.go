package notifier

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/roamline/roamline-api/internal/config"
	"github.com/roamline/roamline-api/internal/models"
)

// Notifier announces booking reconciliation outcomes to the back office.
type Notifier interface {
	NotifyBookings(sessionID, status string, bookings []models.Booking) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, err
	}
	return &DiscordNotifier{
		session:   session,
		channelID: cfg.DiscordNotificationsChannelID,
	}, nil
}

func (n *DiscordNotifier) NotifyBookings(sessionID, status string, bookings []models.Booking) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	headline := "✅ **Bookings confirmed**"
	if status == models.BookingStatusCanceled {
		headline = "⚠️ **Checkout expired, bookings canceled**"
	}

	var lines []string
	var total float64
	currency := ""
	for _, b := range bookings {
		lines = append(lines, fmt.Sprintf("#%d %s:%s %.2f %s", b.ID, b.ProductType, b.ProductID, b.Price, b.Currency))
		total += b.Price
		currency = b.Currency
	}

	message := fmt.Sprintf("%s\n**Session:** %s\n%s\n**Total:** %.2f %s",
		headline,
		sessionID,
		strings.Join(lines, "\n"),
		total,
		strings.ToUpper(currency),
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
