package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/command"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/repository"
)

// ChatStore is the state the chat service reads and mutates
type ChatStore interface {
	FindUser(id string) (*model.User, error)
	FindEvent(id string) (*model.Event, error)
	CreateEvent(hostID string) *model.Event
	UpdateEvent(id string, fn func(event *model.Event) error) (*model.Event, error)
	DeleteEventIf(id string, check func(event *model.Event) error) (*model.Event, error)
	UpsertUser(id string, allergies []string) *model.User
	DeleteUser(id string)
	Snapshot() repository.Snapshot
}

// ChatService runs classified chat commands against the store
type ChatService struct {
	store        ChatStore
	logger       *slog.Logger
	serverURL    string
	debugEnabled bool
}

// ChatServiceConfig holds the dependencies of the chat service
type ChatServiceConfig struct {
	Store  ChatStore
	Logger *slog.Logger
	// ServerURL is where template images are served from
	ServerURL string
	// DebugEnabled allows the "debug" command to dump the store
	DebugEnabled bool
}

// NewChatService creates a new chat service
func NewChatService(cfg ChatServiceConfig) *ChatService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		store:        cfg.Store,
		logger:       logger,
		serverURL:    strings.TrimRight(cfg.ServerURL, "/"),
		debugEnabled: cfg.DebugEnabled,
	}
}

// Handle classifies text from senderID and runs it. It always produces a
// reply; failures become user-facing text.
func (s *ChatService) Handle(ctx context.Context, senderID, text string) (reply model.ReplyAction) {
	cmd := command.Classify(text)

	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "panic while handling command",
				slog.Any("error", r),
				slog.String("intent", string(cmd.Intent)),
				slog.String("sender_id", senderID),
				slog.String("stack", string(debug.Stack())),
			)
			reply = model.TextReply(ReplySomethingWrong)
		}
	}()

	s.logger.InfoContext(ctx, "command received",
		slog.String("intent", string(cmd.Intent)),
		slog.String("sender_id", senderID),
	)

	reply, err := s.execute(ctx, senderID, cmd)
	if err != nil {
		s.logger.DebugContext(ctx, "command failed",
			slog.String("intent", string(cmd.Intent)),
			slog.String("error", err.Error()),
		)
		return model.TextReply(replyForError(cmd.Intent, err))
	}
	return reply
}

// HandleQuickReply answers a tapped quick-reply payload
func (s *ChatService) HandleQuickReply(ctx context.Context, senderID, payload string) model.ReplyAction {
	s.logger.InfoContext(ctx, "quick reply received",
		slog.String("payload", payload),
		slog.String("sender_id", senderID),
	)
	return RouteOption(payload)
}

func (s *ChatService) execute(ctx context.Context, senderID string, cmd command.Command) (model.ReplyAction, error) {
	text := func(body string, err error) (model.ReplyAction, error) {
		if err != nil {
			return model.ReplyAction{}, err
		}
		return model.TextReply(body), nil
	}

	switch cmd.Intent {
	case command.IntentJoin:
		return text(ReplyJoined, s.JoinEvent(ctx, senderID, cmd.Arg))
	case command.IntentSetAllergies:
		_, err := s.SetAllergies(ctx, senderID, cmd.Arg)
		return text(ReplyAllergiesSet, err)
	case command.IntentEdit:
		return s.EditEvent(ctx, senderID, cmd.Arg)
	case command.IntentAllergyInfo:
		return text(s.AllergyInfo(ctx, cmd.Arg))
	case command.IntentSetName:
		_, err := s.SetEventField(ctx, senderID, cmd.Arg, model.EventFieldName)
		return text(ReplyEventUpdated, err)
	case command.IntentSetPage:
		_, err := s.SetEventField(ctx, senderID, cmd.Arg, model.EventFieldPage)
		return text(ReplyEventUpdated, err)
	case command.IntentInvite:
		return text(s.Invite(ctx, cmd.Arg))
	case command.IntentDelete:
		return text(ReplyEventDeleted, s.DeleteEvent(ctx, senderID, cmd.Arg))
	case command.IntentHi:
		return model.TextReply(ReplyHi), nil
	case command.IntentButton:
		return buttonTemplate(), nil
	case command.IntentGeneric:
		return genericTemplate(s.serverURL), nil
	case command.IntentQuickReply:
		return EventMenu(""), nil
	case command.IntentHost:
		return s.HostEvent(ctx, senderID)
	case command.IntentHelp:
		return model.TextReply(ReplyHelp), nil
	case command.IntentHelp2:
		return model.TextReply(ReplyHelp2), nil
	case command.IntentGameOver:
		s.RemoveUser(ctx, senderID)
		return model.TextReply(ReplyUserRemoved), nil
	case command.IntentDebug:
		return text(s.Debug(ctx))
	default:
		return model.TextReply(ReplyUnrecognized), nil
	}
}

// JoinEvent merges the sender's allergies into the event. A sender who
// never set allergies still joins successfully.
func (s *ChatService) JoinEvent(ctx context.Context, senderID, eventID string) error {
	eventID = strings.TrimSpace(eventID)

	user, err := s.findUser(senderID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}

	_, err = s.store.UpdateEvent(eventID, func(event *model.Event) error {
		if user != nil {
			event.TotalAllergies = MergeAllergies(event.TotalAllergies, user.Allergies)
		}
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEventNotFound
	}
	if err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "joined event",
		slog.String("event_id", eventID),
		slog.Bool("merged", user != nil),
	)
	return nil
}

// SetAllergies replaces the sender's allergy list with the comma separated
// entries of list
func (s *ChatService) SetAllergies(ctx context.Context, senderID, list string) (*model.User, error) {
	allergies := ParseAllergies(list)
	if len(allergies) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, ErrNoAllergies)
	}
	return s.store.UpsertUser(senderID, allergies), nil
}

// HostEvent creates an event owned by the sender, joins them to it and
// returns the event menu
func (s *ChatService) HostEvent(ctx context.Context, senderID string) (model.ReplyAction, error) {
	event := s.store.CreateEvent(senderID)
	if err := s.JoinEvent(ctx, senderID, event.ID); err != nil {
		return model.ReplyAction{}, err
	}

	s.logger.InfoContext(ctx, "event created",
		slog.String("event_id", event.ID),
		slog.String("host_id", senderID),
	)
	return EventMenu(event.ID), nil
}

// EditEvent shows the event menu for an existing event. Anyone may open
// the menu; the commands it suggests enforce host rights themselves.
func (s *ChatService) EditEvent(ctx context.Context, senderID, eventID string) (model.ReplyAction, error) {
	event, err := s.findEvent(strings.TrimSpace(eventID))
	if err != nil {
		return model.ReplyAction{}, err
	}
	return EventMenu(event.ID), nil
}

// SetEventField parses "<event id>, <value>" and sets field on the event.
// Existence is checked before host rights.
func (s *ChatService) SetEventField(ctx context.Context, senderID, arg string, field model.EventField) (*model.Event, error) {
	parts := strings.SplitN(arg, ", ", 2)
	if len(parts) != 2 {
		return nil, ErrMalformedInput
	}
	eventID, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if eventID == "" || value == "" {
		return nil, ErrMalformedInput
	}

	event, err := s.store.UpdateEvent(eventID, func(event *model.Event) error {
		if !event.IsHost(senderID) {
			return ErrNotEventHost
		}
		event.Set(field, value)
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "event updated",
		slog.String("event_id", eventID),
		slog.String("field", string(field)),
	)
	return event, nil
}

// AllergyInfo lists the event's allergies separated by spaces
func (s *ChatService) AllergyInfo(ctx context.Context, eventID string) (string, error) {
	event, err := s.findEvent(strings.TrimSpace(eventID))
	if err != nil {
		return "", err
	}
	if len(event.TotalAllergies) == 0 {
		return ReplyNoAllergies, nil
	}
	return strings.Join(event.TotalAllergies, " "), nil
}

// Invite composes an invitation message for the event
func (s *ChatService) Invite(ctx context.Context, eventID string) (string, error) {
	event, err := s.findEvent(strings.TrimSpace(eventID))
	if err != nil {
		return "", err
	}

	var msg strings.Builder
	if event.Name != nil {
		msg.WriteString("Come to " + *event.Name + ". ")
	}
	if event.Page != nil {
		msg.WriteString("Here's the event page: " + *event.Page + ". ")
	}
	fmt.Fprintf(&msg, ReplyInviteJoinLine, event.ID)
	return msg.String(), nil
}

// DeleteEvent removes an event. Only its host may delete it.
func (s *ChatService) DeleteEvent(ctx context.Context, senderID, eventID string) error {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return ErrMalformedInput
	}

	_, err := s.store.DeleteEventIf(eventID, func(event *model.Event) error {
		if !event.IsHost(senderID) {
			return ErrNotEventHost
		}
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEventNotFound
	}
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "event deleted", slog.String("event_id", eventID))
	return nil
}

// RemoveUser forgets everything stored about the sender
func (s *ChatService) RemoveUser(ctx context.Context, senderID string) {
	s.store.DeleteUser(senderID)
	s.logger.InfoContext(ctx, "user removed", slog.String("sender_id", senderID))
}

// Debug renders the whole store as JSON
func (s *ChatService) Debug(ctx context.Context) (string, error) {
	if !s.debugEnabled {
		return "", ErrDebugDisabled
	}
	data, err := json.Marshal(s.store.Snapshot())
	if err != nil {
		return "", fmt.Errorf("marshaling store: %w", err)
	}
	return string(data), nil
}

func (s *ChatService) findEvent(eventID string) (*model.Event, error) {
	event, err := s.store.FindEvent(eventID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *ChatService) findUser(senderID string) (*model.User, error) {
	user, err := s.store.FindUser(senderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
