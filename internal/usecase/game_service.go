package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ukpkickball/roster/internal/domain/game"
	"github.com/ukpkickball/roster/internal/platform/logging"
)

// LogoStore holds team logo blobs keyed by generated filename. Implementations
// live under infrastructure/blob.
type LogoStore interface {
	Save(ctx context.Context, filename string, content []byte) error
	Delete(ctx context.Context, filename string) error
}

// IDGenerator mints opaque tokens used to build logo filenames.
type IDGenerator interface {
	NewID() (string, error)
}

var allowedLogoExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

// GameService owns game records and their logo references.
type GameService struct {
	gameRepo        game.Repository
	logoStore       LogoStore
	idGen           IDGenerator
	matchWeekday    time.Weekday
	defaultTeamName string
	logger          *logging.Logger
	now             func() time.Time
}

func NewGameService(
	gameRepo game.Repository,
	logoStore LogoStore,
	idGen IDGenerator,
	matchWeekday time.Weekday,
	defaultTeamName string,
	logger *logging.Logger,
) *GameService {
	if logger == nil {
		logger = logging.Default()
	}

	return &GameService{
		gameRepo:        gameRepo,
		logoStore:       logoStore,
		idGen:           idGen,
		matchWeekday:    matchWeekday,
		defaultTeamName: defaultTeamName,
		logger:          logger,
		now:             time.Now,
	}
}

// GetOrCreateCurrent resolves the game for the next match day, provisioning it
// when absent. This is the only auto-provisioning path; calling it twice on
// the same calendar day yields the same game.
func (s *GameService) GetOrCreateCurrent(ctx context.Context) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetOrCreateCurrent")
	defer span.End()

	matchDay := game.NextMatchDay(s.now(), s.matchWeekday)

	existing, found, err := s.gameRepo.GetByDate(ctx, matchDay)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game by date: %w", err)
	}
	if found {
		return existing, nil
	}

	created, err := s.gameRepo.Create(ctx, game.Game{
		Date:     matchDay,
		TeamName: s.defaultTeamName,
	})
	if err != nil {
		return game.Game{}, fmt.Errorf("create current game: %w", err)
	}

	s.logger.InfoContext(ctx, "provisioned game", "game_id", created.ID, "date", matchDay.Format(game.DateLayout))
	return created, nil
}

func (s *GameService) Get(ctx context.Context, id int64) (game.Game, error) {
	item, found, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game by id: %w", err)
	}
	if !found {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, id)
	}

	return item, nil
}

func (s *GameService) List(ctx context.Context) ([]game.Game, error) {
	items, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return items, nil
}

// Update overwrites the mutable fields unconditionally and bumps updated_at.
func (s *GameService) Update(ctx context.Context, id int64, date time.Time, teamName, opponentName string) error {
	teamName = strings.TrimSpace(teamName)
	opponentName = strings.TrimSpace(opponentName)
	if date.IsZero() {
		return fmt.Errorf("%w: game date is required", ErrInvalidInput)
	}
	if teamName == "" {
		return fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.gameRepo.Update(ctx, id, date, teamName, opponentName); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}

// SetLogo stores the image under a generated filename and replaces the game's
// logo reference. Removal of the previous blob is best effort.
func (s *GameService) SetLogo(ctx context.Context, id int64, content []byte, ext string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.SetLogo")
	defer span.End()

	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if _, ok := allowedLogoExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: unsupported logo file type %q", ErrInvalidInput, ext)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("%w: logo file is empty", ErrInvalidInput)
	}

	item, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	token, err := s.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate logo token: %w", err)
	}
	if len(token) > 8 {
		token = token[:8]
	}
	filename := fmt.Sprintf("game_%d_%s.%s", id, token, ext)

	if err := s.logoStore.Save(ctx, filename, content); err != nil {
		return "", fmt.Errorf("store logo: %w", err)
	}

	if item.LogoFile != "" {
		if err := s.logoStore.Delete(ctx, item.LogoFile); err != nil {
			s.logger.WarnContext(ctx, "delete previous logo failed", "game_id", id, "file", item.LogoFile, "error", err)
		}
	}

	if err := s.gameRepo.SetLogo(ctx, id, filename); err != nil {
		return "", fmt.Errorf("save logo reference: %w", err)
	}

	return filename, nil
}

func (s *GameService) ClearLogo(ctx context.Context, id int64) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if item.LogoFile != "" {
		if err := s.logoStore.Delete(ctx, item.LogoFile); err != nil {
			s.logger.WarnContext(ctx, "delete logo failed", "game_id", id, "file", item.LogoFile, "error", err)
		}
	}

	if err := s.gameRepo.ClearLogo(ctx, id); err != nil {
		return fmt.Errorf("clear logo reference: %w", err)
	}

	return nil
}
