package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/leaderboard"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/notifier"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// leaderboardSize caps how many rows are posted to the channel.
const leaderboardSize = 10

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendMatchResult(outcome rating.Outcome, dryRun bool) error {
	_, _, err := s.sendMessage(formatMatchResult(outcome), dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(entries []leaderboard.Entry, dryRun bool) error {
	_, _, err := s.sendMessage(formatLeaderboard(entries), dryRun)
	return err
}

func formatMatchResult(o rating.Outcome) slack.Message {
	var headline string
	switch o.Result {
	case rating.Win:
		headline = fmt.Sprintf("%s beat %s", o.Player1, o.Player2)
	case rating.Loss:
		headline = fmt.Sprintf("%s beat %s", o.Player2, o.Player1)
	default:
		headline = fmt.Sprintf("%s and %s drew", o.Player1, o.Player2)
	}

	header := slack.NewTextBlockObject("plain_text", "Match recorded", false, false)
	summary := slack.NewTextBlockObject("mrkdwn", "*"+headline+"*", false, false)
	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("mrkdwn", ratingLine(o.Player1, o.Player1Before, o.Player1After), false, false),
		slack.NewTextBlockObject("mrkdwn", ratingLine(o.Player2, o.Player2Before, o.Player2After), false, false),
	}
	kFactor := slack.NewTextBlockObject("plain_text", fmt.Sprintf("K-factor %g", o.KFactor), false, false)

	return slack.NewBlockMessage(
		slack.NewHeaderBlock(header),
		slack.NewSectionBlock(summary, fields, nil),
		slack.NewContextBlock("", kFactor),
	)
}

func ratingLine(name string, before, after float64) string {
	return fmt.Sprintf("%s: %.1f → %.1f (%+.1f)", name, before, after, after-before)
}

func formatLeaderboard(entries []leaderboard.Entry) slack.Message {
	header := slack.NewTextBlockObject("plain_text", "Leaderboard", false, false)
	if len(entries) == 0 {
		empty := slack.NewTextBlockObject("plain_text", leaderboard.EmptyMessage, false, false)
		return slack.NewBlockMessage(slack.NewHeaderBlock(header), slack.NewSectionBlock(empty, nil, nil))
	}

	shown := entries
	if len(shown) > leaderboardSize {
		shown = shown[:leaderboardSize]
	}

	var b strings.Builder
	for _, e := range shown {
		fmt.Fprintf(&b, "%d. *%s* %.1f (%dW %dL %dD)\n", e.Rank, e.Name, e.Rating, e.Wins, e.Losses, e.Draws)
	}
	body := slack.NewTextBlockObject("mrkdwn", strings.TrimSuffix(b.String(), "\n"), false, false)

	blocks := []slack.Block{slack.NewHeaderBlock(header), slack.NewSectionBlock(body, nil, nil)}
	if hidden := len(entries) - len(shown); hidden > 0 {
		more := slack.NewTextBlockObject("plain_text", fmt.Sprintf("and %d more", hidden), false, false)
		blocks = append(blocks, slack.NewContextBlock("", more))
	}
	return slack.NewBlockMessage(blocks...)
}
