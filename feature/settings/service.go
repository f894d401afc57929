package settings

import (
	"errors"

	"go.uber.org/zap"
)

// Reply is the outcome of a chat command. Broadcast goes to every player,
// Private only to the sender.
type Reply struct {
	Broadcast string   `json:"broadcast,omitempty"`
	Private   string   `json:"private,omitempty"`
	Settings  Settings `json:"settings"`
}

// Service executes sorter commands against the settings store.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new settings service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Store returns the backing settings store.
func (s *Service) Store() *Store {
	return s.store
}

// Current returns the active settings.
func (s *Service) Current() Settings {
	return s.store.Current()
}

// Execute parses and applies a chat message sent by player.
// Non-command messages return ErrNotCommand and leave the settings untouched.
func (s *Service) Execute(player Player, onlinePlayers int, msg string) (Reply, error) {
	cmd, err := ParseCommand(msg)
	if errors.Is(err, ErrNotCommand) {
		return Reply{Settings: s.store.Current()}, err
	}
	if !IsOperator(player, onlinePlayers) {
		s.logger.Warn("Settings change rejected",
			zap.String("player", player.Name),
			zap.String("command", string(cmd.Kind)),
		)
		return Reply{Private: "[ChestSort] Only operators or singleplayer can use this command.", Settings: s.store.Current()}, ErrNotOperator
	}
	if err != nil {
		return Reply{Private: "[ChestSort] Invalid usage. Use " + Usage(cmd.Kind), Settings: s.store.Current()}, err
	}

	var broadcast string
	next := s.store.Update(func(cur Settings) Settings {
		updated, msg := Apply(cur, cmd)
		broadcast = msg
		return updated
	})

	s.logger.Info(broadcast,
		zap.String("player", player.Name),
		zap.String("mode", string(next.Mode)),
		zap.Bool("verbose", next.Verbose),
		zap.Bool("sort_without_sneak", next.SortWithoutSneak),
	)
	return Reply{Broadcast: broadcast, Settings: next}, nil
}
